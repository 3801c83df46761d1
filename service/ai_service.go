package service

import (
	"context"
)

// AIService generates a completion for an assembled prompt. Errors are
// *ProviderError values classified at the adapter boundary.
type AIService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
