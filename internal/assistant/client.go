// Package assistant calls the external text-completion service behind the
// in-app help chat. The service has no structured contract beyond a
// request/response exchange of messages and free text.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnavailable is returned when no assistant endpoint is configured or
// the service cannot be reached. Handlers surface it as a plain message;
// the chat is a convenience, never a hard dependency.
var ErrUnavailable = errors.New("assistant unavailable")

// Message is one chat turn, role "user" or "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client sends the latest user message plus a bounded window of recent
// history to the completion endpoint.
type Client struct {
	base   string
	apiKey string
	window int
	http   *http.Client
}

// NewClient builds a Client. window caps how many trailing messages are
// forwarded per request; zero or negative falls back to 10.
func NewClient(baseURL, apiKey string, window int) *Client {
	if window <= 0 {
		window = 10
	}
	return &Client{
		base:   baseURL,
		apiKey: apiKey,
		window: window,
		http:   &http.Client{Timeout: 15 * time.Second},
	}
}

type completeReq struct {
	Messages []Message `json:"messages"`
}

type completeResp struct {
	Reply string `json:"reply"`
}

// Complete forwards the trailing window of history and returns the
// service's free-text reply.
func (c *Client) Complete(ctx context.Context, history []Message) (string, error) {
	if c.base == "" {
		return "", ErrUnavailable
	}
	if len(history) > c.window {
		history = history[len(history)-c.window:]
	}
	body, err := json.Marshal(completeReq{Messages: history})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	var out completeResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return out.Reply, nil
}
