package di

import (
	"io"
	"log/slog"

	"github.com/sethvargo/go-githubactions"

	"pagerduty-event-action/internal/adapter/actions"
	"pagerduty-event-action/internal/adapter/github"
	"pagerduty-event-action/internal/adapter/logging"
	"pagerduty-event-action/internal/adapter/pagerduty"
	"pagerduty-event-action/internal/config"
	"pagerduty-event-action/internal/domain/ports"
)

func provideSlogLogger(cfg *config.Config, stdout io.Writer) *slog.Logger {
	return slog.New(logging.NewHandler(cfg.LogFormat, cfg.LogLevel, stdout))
}

func provideAction(lookup config.Lookup, stdout io.Writer) *githubactions.Action {
	return actions.NewAction(actions.LookupFunc(lookup), stdout)
}

func provideContextProvider(action *githubactions.Action) ports.ContextProvider {
	return github.NewEnvironment(action)
}

func provideEventSender(cfg *config.Config, logger ports.Logger) ports.EventSender {
	return pagerduty.NewClient(cfg.EventsURL, nil, logger)
}
