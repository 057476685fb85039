package banter

import (
	"context"
	"fmt"
)

// GenerateRequest carries one prompt to a text-generation backend.
type GenerateRequest struct {
	Prompt string
	Model  string // backend-specific model ID; empty = backend default
	Image  *Image // optional inline attachment
}

// Validate checks universal constraints on GenerateRequest.
// Generator implementations may apply additional backend-specific validation.
func (r GenerateRequest) Validate() error {
	if r.Prompt == "" && r.Image == nil {
		return fmt.Errorf("prompt or image required: %w", ErrValidation)
	}
	return nil
}

// Generator is a strategy pattern interface for text-generation backends.
// Generate blocks until the backend replies or fails; cancellation flows
// through the context. The returned text is the raw reply; callers trim it.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}
