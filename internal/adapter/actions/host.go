package actions

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sethvargo/go-githubactions"

	"pagerduty-event-action/internal/domain/ports"
)

// ErrInputRequired is returned for a required input that was not supplied.
// The text matches what the Actions toolkit reports.
var ErrInputRequired = errors.New("Input required and not supplied")

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// NewAction builds a toolkit handle reading from lookup and writing
// workflow commands to stdout. Nil arguments select the process defaults.
func NewAction(lookup LookupFunc, stdout io.Writer) *githubactions.Action {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	return githubactions.New(
		githubactions.WithGetenv(func(key string) string {
			val, _ := lookup(key)
			return val
		}),
		githubactions.WithWriter(stdout),
	)
}

// InputEnvKey returns the variable the runner exposes an input under.
func InputEnvKey(name string) string {
	return "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}

// Host adapts the Actions toolkit to ports.Host.
type Host struct {
	action *githubactions.Action
}

var _ ports.Host = (*Host)(nil)

// NewHost creates a runner host.
func NewHost(action *githubactions.Action) *Host {
	return &Host{action: action}
}

// Input returns the trimmed input value.
func (h *Host) Input(name string, required bool) (string, error) {
	value := h.action.GetInput(name)
	if required && value == "" {
		return "", fmt.Errorf("%w: %s", ErrInputRequired, name)
	}
	return value, nil
}

// SetOutput records a step output through the GITHUB_OUTPUT file.
func (h *Host) SetOutput(name, value string) error {
	h.action.SetOutput(name, value)
	return nil
}

// SetFailed reports the message as an error annotation. The exit code is
// left to the caller.
func (h *Host) SetFailed(message string) {
	h.action.Errorf("%s", message)
}
