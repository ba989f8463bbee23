package ports

import (
	"context"
	"encoding/json"

	"pagerduty-event-action/internal/domain/model"
)

// EventSender delivers a single event to the alerting provider.
type EventSender interface {
	Send(ctx context.Context, routingKey string, payload model.NotificationPayload) (json.RawMessage, error)
}
