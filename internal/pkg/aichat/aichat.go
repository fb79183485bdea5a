package aichat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	errs "github.com/yucheng-lo/foundbot/pkg/errors"
)

// Client talks to a Gradio-style completion endpoint: the request wraps
// the user text as {"data": [text]} and the reply text comes back as the
// first element of the response "data" array.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
}

type request struct {
	Data []string `json:"data"`
}

type response struct {
	Data []string `json:"data"`
}

func New(endpoint, token string) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Complete sends the user text and returns the model reply. Callers are
// expected to substitute their own fallback text on error.
func (c *Client) Complete(ctx context.Context, text string) (string, error) {
	if c.endpoint == "" {
		return "", fmt.Errorf("%w: completion endpoint not configured", errs.ErrExternalService)
	}

	body, err := json.Marshal(request{Data: []string{text}})
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrExternalService, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrExternalService, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrExternalService, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", fmt.Errorf("%w: completion endpoint returned %d", errs.ErrExternalService, res.StatusCode)
	}

	var parsed response
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrExternalService, err)
	}
	if len(parsed.Data) == 0 {
		return "", fmt.Errorf("%w: completion response carried no data", errs.ErrExternalService)
	}

	return parsed.Data[0], nil
}
