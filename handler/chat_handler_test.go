package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tieubaoca/rag-chat-be/service"
	"github.com/tieubaoca/rag-chat-be/types"
)

func TestHandleChat(t *testing.T) {
	retriever := &stubRetriever{
		mode:     service.ModeKeyword,
		passages: []string{"a matching document"},
	}
	h := NewChatHandler(service.NewChatService(retriever, nil))

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"what is this?"}`))
	rec := httptest.NewRecorder()
	h.HandleChat().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res types.ChatResponse
	require.NoError(t, decodeJSON(rec, &res))
	assert.NotEmpty(t, res.Reply)
	assert.True(t, res.ContextFound)
	assert.Equal(t, types.SearchMethodKeyword, res.SearchMethod)
}

func TestHandleChatEmptyMessage(t *testing.T) {
	h := NewChatHandler(service.NewChatService(&stubRetriever{mode: service.ModeKeyword}, nil))

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":""}`))
	rec := httptest.NewRecorder()
	h.HandleChat().ServeHTTP(rec, req)

	// Invalid input never fails the request; it resolves to a prompt for
	// input.
	require.Equal(t, http.StatusOK, rec.Code)

	var res types.ChatResponse
	require.NoError(t, decodeJSON(rec, &res))
	assert.Equal(t, "Please provide a message to chat about.", res.Reply)
}

func TestHandleChatMethodNotAllowed(t *testing.T) {
	h := NewChatHandler(service.NewChatService(&stubRetriever{mode: service.ModeKeyword}, nil))

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	rec := httptest.NewRecorder()
	h.HandleChat().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleChatInvalidBody(t *testing.T) {
	h := NewChatHandler(service.NewChatService(&stubRetriever{mode: service.ModeKeyword}, nil))

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`not json`))
	rec := httptest.NewRecorder()
	h.HandleChat().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
