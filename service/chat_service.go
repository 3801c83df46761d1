package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/tieubaoca/rag-chat-be/types"
)

// The two prompt templates are an observable behavioral contract: the
// framing of the generated answer depends on which branch was taken.
const (
	promptWithContext    = "Context from vector database: %s\n\nUser: %s\n\nAnswer clearly and helpfully based on the context provided."
	promptWithoutContext = "User: %s\n\nAnswer clearly and helpfully."
)

// ChatService runs the full pipeline for one message: retrieve context,
// assemble the prompt, generate an answer. It never returns an error;
// every failure resolves to a normal reply.
type ChatService struct {
	retriever Retriever
	ai        AIService
}

// NewChatService creates the chat pipeline. A nil ai means no completion
// provider is configured and demo replies are produced instead.
func NewChatService(retriever Retriever, ai AIService) *ChatService {
	return &ChatService{
		retriever: retriever,
		ai:        ai,
	}
}

func (s *ChatService) Chat(ctx context.Context, message string) types.ChatResponse {
	if strings.TrimSpace(message) == "" {
		return types.ChatResponse{
			Reply: "Please provide a message to chat about.",
		}
	}

	passages := s.retriever.Search(ctx, message)
	contextBlock := AssembleContext(passages)

	// The search method is reported only when context was actually found.
	searchMethod := ""
	if contextBlock != "" {
		switch s.retriever.Mode() {
		case ModeVector:
			searchMethod = types.SearchMethodVector
		case ModeKeyword:
			searchMethod = types.SearchMethodKeyword
		}
	}

	prompt := BuildPrompt(contextBlock, message)
	reply := s.generate(ctx, prompt, contextBlock, searchMethod, message)

	return types.ChatResponse{
		Reply:        reply,
		SearchMethod: searchMethod,
		ContextFound: contextBlock != "",
	}
}

// AssembleContext joins retrieved passages with single spaces. An empty
// input yields an empty string, which selects the context-free prompt.
func AssembleContext(passages []string) string {
	return strings.Join(passages, " ")
}

func BuildPrompt(contextBlock, message string) string {
	if contextBlock != "" {
		return fmt.Sprintf(promptWithContext, contextBlock, message)
	}
	return fmt.Sprintf(promptWithoutContext, message)
}

func (s *ChatService) generate(ctx context.Context, prompt, contextBlock, searchMethod, message string) string {
	if s.ai == nil {
		return demoReply(contextBlock, searchMethod, message)
	}

	answer, err := s.ai.Complete(ctx, prompt)
	if err != nil {
		log.Println("Error calling completion provider:", err)
		return errorReply(err, message)
	}
	return answer
}

func demoReply(contextBlock, searchMethod, message string) string {
	if contextBlock != "" {
		return fmt.Sprintf("Based on the context from %s search: %s... I understand you're asking about: %s. This is a demo response since no AI API key is configured.",
			searchMethod, truncateString(contextBlock, 100), message)
	}
	return fmt.Sprintf("Hello! I received your message: '%s'. This is a demo response since no AI API key is configured. Please add your API key to the .env file to get real AI responses.", message)
}

func errorReply(err error, message string) string {
	switch ClassifyProviderError(err).Kind {
	case ProviderErrorQuota:
		return fmt.Sprintf("AI provider quota exceeded. Please check your billing details. For now, here's a demo response: I understand you're asking about '%s'. This is a demo response since your API quota has been exceeded.", message)
	case ProviderErrorRateLimit:
		return fmt.Sprintf("Rate limit exceeded. Please wait a moment and try again. For now, here's a demo response: I understand you're asking about '%s'.", message)
	default:
		return fmt.Sprintf("I apologize, but I'm having trouble connecting to the AI service. Error: %v", err)
	}
}

// Helper function to truncate long strings for reply echoes. Counts
// runes, not bytes, so multibyte text is never split mid-sequence.
func truncateString(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength])
}
