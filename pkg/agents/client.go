package agents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

// Client calls the external resolution-agents API. It is the only
// outbound dependency of the dispatch stage.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an agents API client. When an API key is set the
// underlying transport injects it as a bearer token on every request.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := &http.Client{Timeout: timeout}
	if cfg.APIKey != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIKey})
		httpClient = oauth2.NewClient(context.Background(), src)
		httpClient.Timeout = timeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}
}

// Execute runs an intent against the agent identified by agentID.
// Transport failures come back as wrapped errors; non-2xx responses as
// *StatusError so callers can distinguish the two.
func (c *Client) Execute(ctx context.Context, agentID string, req ExecuteRequest) (*ExecuteResponse, error) {
	url := fmt.Sprintf("%s/agents/%s/execute", c.baseURL, agentID)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("agents: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("agents: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("agents: call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	var out ExecuteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("agents: failed to decode response: %w", err)
	}

	return &out, nil
}

// Registry lists the agents known to the agents API.
func (c *Client) Registry(ctx context.Context) ([]RegistryEntry, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/agents/registry", nil)
	if err != nil {
		return nil, fmt.Errorf("agents: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("agents: call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	var out struct {
		Agents []RegistryEntry `json:"agents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("agents: failed to decode response: %w", err)
	}

	return out.Agents, nil
}
