package model

// NotificationPayload is the PagerDuty Events API v2 request body.
// Optional fields are always serialized, empty strings included.
type NotificationPayload struct {
	EventAction string       `json:"event_action"`
	DedupKey    string       `json:"dedup_key"`
	Payload     EventDetails `json:"payload"`
	Client      string       `json:"client"`
	ClientURL   string       `json:"client_url"`
}

// EventDetails carries the human-facing part of the event.
type EventDetails struct {
	Summary       string        `json:"summary"`
	Source        string        `json:"source"`
	Severity      string        `json:"severity"`
	CustomDetails CustomDetails `json:"custom_details"`
}

// CustomDetails is the free-form metadata attached to the event.
type CustomDetails struct {
	GitHub ContextMetadata `json:"github"`
}
