package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tieubaoca/rag-chat-be/database"
	"github.com/tieubaoca/rag-chat-be/types"
)

type fakeRetriever struct {
	mode      RetrievalMode
	passages  []string
	lastQuery string
	searches  int
}

func (f *fakeRetriever) Mode() RetrievalMode {
	return f.mode
}

func (f *fakeRetriever) Search(ctx context.Context, query string) []string {
	f.searches++
	f.lastQuery = query
	return f.passages
}

func (f *fakeRetriever) AddDocument(ctx context.Context, text, metadata string) bool {
	return true
}

func (f *fakeRetriever) Stats(ctx context.Context) (database.CollectionStats, error) {
	return database.CollectionStats{}, nil
}

type fakeAI struct {
	reply      string
	err        error
	lastPrompt string
	calls      int
}

func (f *fakeAI) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestAssembleContext(t *testing.T) {
	assert.Equal(t, "", AssembleContext(nil))
	assert.Equal(t, "", AssembleContext([]string{}))
	assert.Equal(t, "one", AssembleContext([]string{"one"}))
	assert.Equal(t, "one two three", AssembleContext([]string{"one", "two", "three"}))
}

func TestBuildPrompt(t *testing.T) {
	withContext := BuildPrompt("some context", "hello")
	assert.Equal(t, "Context from vector database: some context\n\nUser: hello\n\nAnswer clearly and helpfully based on the context provided.", withContext)

	withoutContext := BuildPrompt("", "hello")
	assert.Equal(t, "User: hello\n\nAnswer clearly and helpfully.", withoutContext)
}

func TestChatEmptyMessage(t *testing.T) {
	retriever := &fakeRetriever{mode: ModeKeyword}
	ai := &fakeAI{reply: "should not be called"}
	s := NewChatService(retriever, ai)

	for _, message := range []string{"", "   ", "\t\n"} {
		res := s.Chat(context.Background(), message)
		assert.Equal(t, "Please provide a message to chat about.", res.Reply)
		assert.False(t, res.ContextFound)
		assert.Empty(t, res.SearchMethod)
	}
	assert.Zero(t, retriever.searches)
	assert.Zero(t, ai.calls)
}

func TestChatWithContext(t *testing.T) {
	retriever := &fakeRetriever{
		mode:     ModeVector,
		passages: []string{"passage one", "passage two"},
	}
	ai := &fakeAI{reply: "grounded answer"}
	s := NewChatService(retriever, ai)

	res := s.Chat(context.Background(), "what is this about?")
	assert.Equal(t, "grounded answer", res.Reply)
	assert.Equal(t, types.SearchMethodVector, res.SearchMethod)
	assert.True(t, res.ContextFound)
	assert.Equal(t, "what is this about?", retriever.lastQuery)

	// The assembled context is embedded literally in the prompt.
	assert.Contains(t, ai.lastPrompt, "Context from vector database: passage one passage two")
	assert.Contains(t, ai.lastPrompt, "User: what is this about?")
}

func TestChatKeywordMethodLabel(t *testing.T) {
	retriever := &fakeRetriever{
		mode:     ModeKeyword,
		passages: []string{"a matching document"},
	}
	s := NewChatService(retriever, &fakeAI{reply: "ok"})

	res := s.Chat(context.Background(), "some question")
	assert.Equal(t, types.SearchMethodKeyword, res.SearchMethod)
	assert.True(t, res.ContextFound)
}

func TestChatNoContextFound(t *testing.T) {
	retriever := &fakeRetriever{mode: ModeVector}
	ai := &fakeAI{reply: "general answer"}
	s := NewChatService(retriever, ai)

	res := s.Chat(context.Background(), "unknown topic question")
	assert.Equal(t, "general answer", res.Reply)
	assert.Empty(t, res.SearchMethod)
	assert.False(t, res.ContextFound)
	assert.Equal(t, "User: unknown topic question\n\nAnswer clearly and helpfully.", ai.lastPrompt)
}

func TestChatDemoModeWithoutProvider(t *testing.T) {
	retriever := &fakeRetriever{
		mode:     ModeKeyword,
		passages: []string{"a keyword matched document"},
	}
	s := NewChatService(retriever, nil)

	res := s.Chat(context.Background(), "tell me something")
	assert.Contains(t, res.Reply, "demo response")
	assert.Contains(t, res.Reply, "a keyword matched document")
	assert.Contains(t, res.Reply, "tell me something")
	assert.True(t, res.ContextFound)
}

func TestChatDemoModeNoContext(t *testing.T) {
	s := NewChatService(&fakeRetriever{mode: ModeKeyword}, nil)

	res := s.Chat(context.Background(), "anything here")
	assert.Contains(t, res.Reply, "I received your message: 'anything here'")
	assert.False(t, res.ContextFound)
}

func TestChatProviderErrorTemplates(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "quota",
			err:      errors.New("You exceeded your current quota: insufficient_quota"),
			contains: "quota exceeded",
		},
		{
			name:     "rate limit",
			err:      errors.New("Rate limit reached for requests"),
			contains: "Rate limit exceeded. Please wait a moment",
		},
		{
			name:     "generic",
			err:      errors.New("connection refused"),
			contains: "having trouble connecting to the AI service",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewChatService(&fakeRetriever{mode: ModeVector}, &fakeAI{err: tt.err})

			res := s.Chat(context.Background(), "my question")
			assert.Contains(t, res.Reply, tt.contains)
			if tt.name != "generic" {
				assert.Contains(t, res.Reply, "'my question'")
			}
		})
	}
}

func TestChatProviderErrorNeverFailsRequest(t *testing.T) {
	s := NewChatService(&fakeRetriever{mode: ModeVector}, &fakeAI{err: errors.New("boom")})

	res := s.Chat(context.Background(), "hello there")
	require.NotEmpty(t, res.Reply)
}

func TestTruncateStringCountsRunes(t *testing.T) {
	long := strings.Repeat("é", 150)
	out := truncateString(long, 100)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, strings.Repeat("é", 100), out)
}

func TestDemoReplyTruncatesContext(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	reply := demoReply(string(long), types.SearchMethodKeyword, "query words")
	assert.Contains(t, reply, string(long[:100])+"...")
	assert.NotContains(t, reply, string(long[:101])+"...")
}
