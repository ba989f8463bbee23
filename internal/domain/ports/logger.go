package ports

import "context"

// Logger keeps use cases and adapters independent of the concrete log sink.
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
}
