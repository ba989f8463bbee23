//go:build wireinject

package di

import (
	"io"

	"github.com/google/wire"

	"pagerduty-event-action/internal/adapter/actions"
	"pagerduty-event-action/internal/adapter/logging"
	"pagerduty-event-action/internal/app"
	"pagerduty-event-action/internal/config"
	"pagerduty-event-action/internal/domain/ports"
	"pagerduty-event-action/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp(lookup config.Lookup, stdout io.Writer) (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideAction,
		actions.NewHost,
		wire.Bind(new(ports.Host), new(*actions.Host)),
		provideContextProvider,
		provideEventSender,
		usecase.NewSendEvent,
		app.New,
	)
	return nil, nil
}
