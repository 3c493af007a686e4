package chatclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rhenlumbo/portfolio-backend/internal/model/chat"
)

// Client posts chat requests to the backend API.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a client for the given backend base URL, e.g.
// "http://localhost:5000".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// Slightly above the server's own remote-call timeout so the
		// server-side error arrives before the client gives up.
		httpc: &http.Client{Timeout: 75 * time.Second},
	}
}

type chatRequest struct {
	Message string      `json:"message"`
	History []chat.Turn `json:"history,omitempty"`
}

type chatResponse struct {
	Reply string `json:"reply"`
	Error string `json:"error"`
}

// Send posts one message with the supplied history and returns the reply.
func (c *Client) Send(ctx context.Context, message string, history []chat.Turn) (string, error) {
	body, err := json.Marshal(chatRequest{Message: message, History: history})
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if out.Error != "" {
			return "", fmt.Errorf("chat request rejected: %s", out.Error)
		}
		return "", fmt.Errorf("chat request rejected with status %d", resp.StatusCode)
	}

	return out.Reply, nil
}
