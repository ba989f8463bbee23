package ports

import (
	"context"

	"pagerduty-event-action/internal/domain/model"
)

// Host is the CI runner executing the step.
type Host interface {
	// Input returns the named input, or "" when it is absent.
	// A required input that is absent is an error.
	Input(name string, required bool) (string, error)
	SetOutput(name, value string) error
	SetFailed(message string)
}

// ContextProvider supplies metadata about the triggering build.
type ContextProvider interface {
	Context(ctx context.Context) (model.ContextMetadata, error)
}
