package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Generator produces a reply for a prompt. The HTTP client below is the
// production implementation; tests substitute a scripted one.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client calls the remote generation endpoint: POST <base>/chat with a
// JSON body carrying the prompt and credential, returning the reply as
// text. No timeout is set on the client itself; callers bound the wait
// through ctx if they want one.
type Client struct {
	baseURL    string
	apiKey     string
	provider   string
	model      string
	httpClient *http.Client
}

// NewClient creates a generation client from config.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		provider:   cfg.Provider,
		model:      cfg.Model,
		httpClient: &http.Client{},
	}
}

type chatRequest struct {
	Prompt   string `json:"prompt"`
	APIKey   string `json:"apiKey"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
}

// Generate performs one round trip. Any transport failure, non-2xx
// status, or unreadable body comes back as a *TransportError.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Prompt:   prompt,
		APIKey:   c.apiKey,
		Provider: c.provider,
		Model:    c.model,
	})
	if err != nil {
		return "", &TransportError{Op: "request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return "", &TransportError{Op: "request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Op: "read", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &TransportError{
			Op:  "status",
			Err: fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(data))),
		}
	}

	// The endpoint replies with plain text, but some deployments wrap
	// the reply in a JSON string. Unwrap when it parses as one.
	reply := string(data)
	var unquoted string
	if json.Unmarshal(data, &unquoted) == nil {
		reply = unquoted
	}
	return reply, nil
}
