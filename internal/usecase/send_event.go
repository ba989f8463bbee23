package usecase

import (
	"context"
	"encoding/json"
	"time"

	"pagerduty-event-action/internal/domain/model"
	"pagerduty-event-action/internal/domain/ports"
)

// Step input names as declared in action.yml.
const (
	InputIntegrationKey = "integration-key"
	InputDedupKey       = "dedup-key"
	InputEventAction    = "event-action"
	InputSummary        = "summary"
	InputSource         = "source"
	InputSeverity       = "severity"
	InputClient         = "client"
	InputClientURL      = "client-url"

	// OutputTime is set only when the event was accepted.
	OutputTime = "time"
)

// TimeLayout renders the time of day followed by the zone offset and name.
const TimeLayout = "15:04:05 GMT-0700 (MST)"

// Result describes a successful run.
type Result struct {
	Response json.RawMessage
	Time     string
}

// SendEvent gathers the step inputs, builds the event and sends it once.
type SendEvent struct {
	host     ports.Host
	contexts ports.ContextProvider
	sender   ports.EventSender
	clock    func() time.Time
}

// NewSendEvent constructs a SendEvent use case.
func NewSendEvent(host ports.Host, contexts ports.ContextProvider, sender ports.EventSender) *SendEvent {
	return &SendEvent{
		host:     host,
		contexts: contexts,
		sender:   sender,
		clock:    time.Now,
	}
}

// WithClock overrides the clock used for the time output.
func (s *SendEvent) WithClock(clock func() time.Time) *SendEvent {
	s.clock = clock
	return s
}

// Run executes the step. Errors are returned unchanged so the caller can
// report them to the host exactly once.
func (s *SendEvent) Run(ctx context.Context) (Result, error) {
	inputs, err := s.gatherInputs()
	if err != nil {
		return Result{}, err
	}

	meta, err := s.contexts.Context(ctx)
	if err != nil {
		return Result{}, err
	}

	payload := BuildPayload(inputs, meta)
	response, err := s.sender.Send(ctx, inputs.RoutingKey, payload)
	if err != nil {
		return Result{}, err
	}

	now := s.clock().Format(TimeLayout)
	if err := s.host.SetOutput(OutputTime, now); err != nil {
		return Result{}, err
	}

	return Result{Response: response, Time: now}, nil
}

func (s *SendEvent) gatherInputs() (model.EventInputs, error) {
	routingKey, err := s.host.Input(InputIntegrationKey, true)
	if err != nil {
		return model.EventInputs{}, err
	}

	inputs := model.EventInputs{RoutingKey: routingKey}
	optional := []struct {
		name   string
		target *string
	}{
		{InputDedupKey, &inputs.DedupKey},
		{InputEventAction, &inputs.EventAction},
		{InputSummary, &inputs.Summary},
		{InputSource, &inputs.Source},
		{InputSeverity, &inputs.Severity},
		{InputClient, &inputs.Client},
		{InputClientURL, &inputs.ClientURL},
	}
	for _, in := range optional {
		value, err := s.host.Input(in.name, false)
		if err != nil {
			return model.EventInputs{}, err
		}
		*in.target = value
	}

	return inputs, nil
}
