// Package uitest implements the device driver against the on-device
// uitest agent, reached over a forwarded HTTP port.
package uitest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/devicelab-dev/hmgo/pkg/core"
	"github.com/devicelab-dev/hmgo/pkg/logger"
)

// Client communicates with the uitest agent.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates a client for the agent at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// errorEnvelope is the agent's error response body.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// request makes an HTTP request to the agent.
func (c *Client) request(method, path string, body interface{}) ([]byte, error) {
	start := time.Now()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		logger.Error("%s %s [%v] transport error: %v", method, path, elapsed, err)
		return nil, core.ErrAgentUnreachable.WithCause(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	status := "OK"
	if resp.StatusCode >= 400 {
		status = fmt.Sprintf("ERR:%d", resp.StatusCode)
	}
	logger.Debug("%s %s [%v] %s", method, path, elapsed, status)

	if resp.StatusCode >= 400 {
		var envelope errorEnvelope
		if json.Unmarshal(respBody, &envelope) == nil && envelope.Message != "" {
			return nil, fmt.Errorf("%s: %s", envelope.Error, envelope.Message)
		}
		return nil, fmt.Errorf("agent error %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// Status checks if the agent is ready.
func (c *Client) Status() (bool, error) {
	_, err := c.request("GET", "/status", nil)
	if err != nil {
		return false, err
	}
	return true, nil
}
