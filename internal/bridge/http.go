package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// envelope mirrors the host's pkg/response shape.
type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Data       json.RawMessage `json:"data,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// HTTPInvoker invokes commands on a remote host over HTTP. Used when the
// views run in a different process than the host.
type HTTPInvoker struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewHTTPInvoker(baseURL string) *HTTPInvoker {
	return &HTTPInvoker{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken attaches the session's bearer token to subsequent commands.
func (h *HTTPInvoker) SetToken(token string) {
	h.token = token
}

func (h *HTTPInvoker) Invoke(ctx context.Context, command string, args any, out any) error {
	body, err := json.Marshal(args)
	if err != nil {
		return &Error{Command: command, Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/api/command/"+command, bytes.NewReader(body))
	if err != nil {
		return &Error{Command: command, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return &Error{Command: command, Message: err.Error()}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &Error{Command: command, Message: err.Error()}
	}
	if env.Status != "success" {
		return &Error{Command: command, Message: env.Error}
	}
	if out == nil || env.Data == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &Error{Command: command, Message: err.Error()}
	}
	return nil
}
