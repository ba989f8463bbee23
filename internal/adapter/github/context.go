package github

import (
	"context"
	"errors"

	"github.com/sethvargo/go-githubactions"

	"pagerduty-event-action/internal/domain/model"
	"pagerduty-event-action/internal/domain/ports"
)

// ErrRepositoryUnknown is returned when the runner does not identify the repository.
var ErrRepositoryUnknown = errors.New("context.repo requires a GITHUB_REPOSITORY environment variable like 'owner/repo'")

// Environment reads the triggering build metadata from the runner.
type Environment struct {
	action *githubactions.Action
}

var _ ports.ContextProvider = (*Environment)(nil)

// NewEnvironment creates a context provider backed by the Actions toolkit.
func NewEnvironment(action *githubactions.Action) *Environment {
	return &Environment{action: action}
}

// Context returns the metadata of the current workflow run.
func (e *Environment) Context(_ context.Context) (model.ContextMetadata, error) {
	gc, err := e.action.Context()
	if err != nil {
		return model.ContextMetadata{}, err
	}

	owner, repo := gc.Repo()
	if owner == "" && repo == "" {
		return model.ContextMetadata{}, ErrRepositoryUnknown
	}

	return model.ContextMetadata{
		Repository: repo,
		RepoOwner:  owner,
		SHA:        gc.SHA,
		Ref:        gc.Ref,
		Event:      gc.EventName,
		Actor:      gc.Actor,
	}, nil
}
