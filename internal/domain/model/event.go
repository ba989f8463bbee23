package model

// EventInputs holds the step inputs. Absent optional inputs are empty strings.
type EventInputs struct {
	RoutingKey  string
	DedupKey    string
	EventAction string
	Summary     string
	Source      string
	Severity    string
	Client      string
	ClientURL   string
}

// ContextMetadata describes the build that triggered the step.
// Values are supplied by the host and passed through untouched.
type ContextMetadata struct {
	Repository string `json:"repository"`
	RepoOwner  string `json:"repo_owner"`
	SHA        string `json:"sha"`
	Ref        string `json:"ref"`
	Event      string `json:"event"`
	Actor      string `json:"actor"`
}
