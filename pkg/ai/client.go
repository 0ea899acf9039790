// Package ai talks to the external description generation endpoint. One
// request, one outcome: there is no retry, no streaming and no partial
// application; failures are surfaced verbatim for the user to retry by hand.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client performs the single generation round trip.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

// Default is the client used by the description controller, set at startup.
var Default *Client

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GenerateRequest is the snapshot of the building form sent for generation.
// BuildingID is zero on the create screen, set on edit.
type GenerateRequest struct {
	BuildingID   uint                   `json:"building_id,omitempty"`
	BuildingData map[string]interface{} `json:"building_data"`
	Amenities    []string               `json:"amenities,omitempty"`
}

type generateResponse struct {
	Success     bool   `json:"success"`
	Description string `json:"description"`
	Error       string `json:"error"`
}

// GenerateDescription submits the snapshot and returns the generated text.
func (c *Client) GenerateDescription(ctx context.Context, req GenerateRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("could not encode generation request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("could not build generation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read generation response: %w", err)
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("unexpected generation response (status %d)", resp.StatusCode)
	}

	if !out.Success || resp.StatusCode != http.StatusOK {
		if out.Error != "" {
			return "", fmt.Errorf("generation failed: %s", out.Error)
		}
		return "", fmt.Errorf("generation failed with status %d", resp.StatusCode)
	}

	return out.Description, nil
}
