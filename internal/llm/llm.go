package llm

import (
	"context"
	"errors"

	"pathwise-backend/internal/match"
)

// Client abstracts LLM providers for summary polishing. The deterministic
// pipeline never depends on a Client being present; callers fall back to the
// templated summary when the provider is missing or fails.
type Client interface {
	SummarizeProfile(ctx context.Context, input SummaryInput) (string, error)
}

// SummaryInput captures the inputs for a professional summary.
type SummaryInput struct {
	ResumeText string
	Skills     []string
	RoleType   match.RoleType
}

// ErrNotConfigured is returned when no provider is wired.
var ErrNotConfigured = errors.New("llm provider not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// SummarizeProfile returns ErrNotConfigured.
func (PlaceholderClient) SummarizeProfile(ctx context.Context, input SummaryInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}
