package pagerduty

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"pagerduty-event-action/internal/domain/model"
	"pagerduty-event-action/internal/domain/ports"
)

// EventsURL is the Events API v2 enqueue endpoint.
const EventsURL = "https://events.pagerduty.com/v2/enqueue"

// StatusError reports a non-2xx answer from the Events API.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	if text := http.StatusText(e.StatusCode); text != "" {
		return text
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// Client sends events to the PagerDuty Events API.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.EventSender = (*Client)(nil)

// NewClient creates an Events API client. An empty endpoint selects EventsURL.
// A nil httpClient gets a client without an explicit timeout.
func NewClient(endpoint string, httpClient *http.Client, logger ports.Logger) *Client {
	if endpoint == "" {
		endpoint = EventsURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Send posts the event once and returns the response body.
func (c *Client) Send(ctx context.Context, routingKey string, payload model.NotificationPayload) (json.RawMessage, error) {
	body, err := c.send(ctx, routingKey, payload)
	if err != nil {
		c.logger.Error(ctx, fmt.Sprintf("Failed to send PagerDuty event: %s", err.Error()))
		return nil, err
	}

	c.logger.Info(ctx, "PagerDuty event sent successfully")
	c.logger.Info(ctx, renderBody(body))
	return body, nil
}

func (c *Client) send(ctx context.Context, routingKey string, payload model.NotificationPayload) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-routing-key", routingKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error prefixes the method and URL; report the cause alone.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return nil, urlErr.Err
		}
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: data}
	}

	return json.RawMessage(data), nil
}

// renderBody pretty-prints JSON bodies and passes anything else through.
func renderBody(body []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		return string(body)
	}
	return out.String()
}
