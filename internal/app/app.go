package app

import (
	"context"

	"pagerduty-event-action/internal/domain/ports"
	"pagerduty-event-action/internal/usecase"
)

// App is the outer boundary of a step run: it turns the use case result
// into exactly one host signal.
type App struct {
	usecase *usecase.SendEvent
	host    ports.Host
}

// New constructs an App instance.
func New(sendEvent *usecase.SendEvent, host ports.Host) *App {
	return &App{
		usecase: sendEvent,
		host:    host,
	}
}

// Run sends the event and returns the process exit code.
func (a *App) Run(ctx context.Context) int {
	if _, err := a.usecase.Run(ctx); err != nil {
		a.host.SetFailed(err.Error())
		return 1
	}
	return 0
}
