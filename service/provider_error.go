package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ProviderErrorKind is the normalized failure category of a completion
// or embedding provider call. Provider-specific payloads are mapped to
// this enum once, here, so the rest of the pipeline never inspects raw
// error strings.
type ProviderErrorKind int

const (
	ProviderErrorOther ProviderErrorKind = iota
	ProviderErrorQuota
	ProviderErrorRateLimit
	ProviderErrorNetwork
	ProviderErrorUnauthorized
)

func (k ProviderErrorKind) String() string {
	switch k {
	case ProviderErrorQuota:
		return "quota"
	case ProviderErrorRateLimit:
		return "rate_limit"
	case ProviderErrorNetwork:
		return "network"
	case ProviderErrorUnauthorized:
		return "unauthorized"
	default:
		return "other"
	}
}

type ProviderError struct {
	Kind ProviderErrorKind
	Err  error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error (%s): %v", e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ClassifyProviderError wraps err in a ProviderError with the best
// matching kind. Already-classified errors pass through unchanged.
func ClassifyProviderError(err error) *ProviderError {
	var pErr *ProviderError
	if errors.As(err, &pErr) {
		return pErr
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if code, ok := apiErr.Code.(string); ok && code == "insufficient_quota" {
			return &ProviderError{Kind: ProviderErrorQuota, Err: err}
		}
		switch apiErr.HTTPStatusCode {
		case 401, 403:
			return &ProviderError{Kind: ProviderErrorUnauthorized, Err: err}
		case 429:
			return &ProviderError{Kind: ProviderErrorRateLimit, Err: err}
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return &ProviderError{Kind: ProviderErrorNetwork, Err: err}
	}

	// Fallback for providers that only expose error text.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "insufficient_quota") || strings.Contains(msg, "quota"):
		return &ProviderError{Kind: ProviderErrorQuota, Err: err}
	case strings.Contains(msg, "rate"):
		return &ProviderError{Kind: ProviderErrorRateLimit, Err: err}
	case strings.Contains(msg, "unauthorized") || strings.Contains(msg, "invalid api key"):
		return &ProviderError{Kind: ProviderErrorUnauthorized, Err: err}
	default:
		return &ProviderError{Kind: ProviderErrorOther, Err: err}
	}
}
