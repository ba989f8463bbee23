package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagerduty-event-action/internal/domain/model"
)

var testMeta = model.ContextMetadata{
	Repository: "r",
	RepoOwner:  "o",
	SHA:        "s",
	Ref:        "ref",
	Event:      "push",
	Actor:      "a",
}

func TestBuildPayloadMapsEveryField(t *testing.T) {
	inputs := model.EventInputs{
		RoutingKey:  "rk1",
		DedupKey:    "dedup-123",
		EventAction: "trigger",
		Summary:     "Full test",
		Source:      "Test source",
		Severity:    "critical",
		Client:      "Test client",
		ClientURL:   "https://test.com",
	}

	got := BuildPayload(inputs, testMeta)

	assert.Equal(t, model.NotificationPayload{
		EventAction: "trigger",
		DedupKey:    "dedup-123",
		Payload: model.EventDetails{
			Summary:       "Full test",
			Source:        "Test source",
			Severity:      "critical",
			CustomDetails: model.CustomDetails{GitHub: testMeta},
		},
		Client:    "Test client",
		ClientURL: "https://test.com",
	}, got)
}

func TestBuildPayloadWireFormat(t *testing.T) {
	inputs := model.EventInputs{
		RoutingKey:  "rk1",
		EventAction: "trigger",
		Summary:     "S",
		Source:      "Src",
		Severity:    "critical",
	}

	body, err := json.Marshal(BuildPayload(inputs, testMeta))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, "trigger", decoded["event_action"])
	assert.Equal(t, "", decoded["dedup_key"])
	assert.Equal(t, "", decoded["client"])
	assert.Equal(t, "", decoded["client_url"])
	assert.NotContains(t, decoded, "routing_key")

	payload := decoded["payload"].(map[string]any)
	assert.Equal(t, "S", payload["summary"])
	assert.Equal(t, "Src", payload["source"])
	assert.Equal(t, "critical", payload["severity"])

	github := payload["custom_details"].(map[string]any)["github"]
	assert.Equal(t, map[string]any{
		"repository": "r",
		"repo_owner": "o",
		"sha":        "s",
		"ref":        "ref",
		"event":      "push",
		"actor":      "a",
	}, github)
}

func TestBuildPayloadKeepsEmptyValues(t *testing.T) {
	body, err := json.Marshal(BuildPayload(model.EventInputs{RoutingKey: "k"}, model.ContextMetadata{}))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"event_action": "",
		"dedup_key": "",
		"payload": {
			"summary": "",
			"source": "",
			"severity": "",
			"custom_details": {"github": {"repository": "", "repo_owner": "", "sha": "", "ref": "", "event": "", "actor": ""}}
		},
		"client": "",
		"client_url": ""
	}`, string(body))
}

func TestBuildPayloadEmbedsContextVerbatim(t *testing.T) {
	metas := []model.ContextMetadata{
		{},
		testMeta,
		{Repository: " spaced ", RepoOwner: "Org-Name", SHA: "abc123", Ref: "refs/tags/v1.0.0", Event: "workflow_dispatch", Actor: "dependabot[bot]"},
	}
	for _, meta := range metas {
		got := BuildPayload(model.EventInputs{RoutingKey: "k"}, meta)
		assert.Equal(t, meta, got.Payload.CustomDetails.GitHub)
	}
}
