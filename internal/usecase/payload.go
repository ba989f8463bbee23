package usecase

import "pagerduty-event-action/internal/domain/model"

// BuildPayload maps step inputs and build metadata onto the Events API body.
// Values are copied as-is, empty strings included.
func BuildPayload(inputs model.EventInputs, meta model.ContextMetadata) model.NotificationPayload {
	return model.NotificationPayload{
		EventAction: inputs.EventAction,
		DedupKey:    inputs.DedupKey,
		Payload: model.EventDetails{
			Summary:  inputs.Summary,
			Source:   inputs.Source,
			Severity: inputs.Severity,
			CustomDetails: model.CustomDetails{
				GitHub: meta,
			},
		},
		Client:    inputs.Client,
		ClientURL: inputs.ClientURL,
	}
}
