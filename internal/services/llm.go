package services

import (
	"context"
)

// LLMService defines the interface for the language-model capability.
// Implementations return the raw model output for a single user
// prompt; the fixed system instruction is part of each
// implementation's configuration.
type LLMService interface {
	// GenerateReply produces raw model output for the given user prompt.
	GenerateReply(ctx context.Context, userPrompt string) (string, error)
}
