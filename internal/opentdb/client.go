package opentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	DefaultBaseURL = "https://opentdb.com/api.php"
	DefaultTimeout = 5 * time.Second

	maxBodyBytes = 1 << 20
)

// Client fetches question batches. Every call is a single attempt.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client. Empty baseURL and non-positive timeout fall back to defaults.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchQuestions requests one batch of questions.
//
// A non-zero response_code is reported as *ResponseCodeError together with
// the decoded response, so callers can still inspect the code.
func (c *Client) FetchQuestions(ctx context.Context, q Query) (*Response, error) {
	url := c.baseURL + "?" + q.Values().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get questions: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var out Response
	if err = json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	if out.ResponseCode != CodeSuccess {
		return &out, &ResponseCodeError{Code: out.ResponseCode}
	}

	return &out, nil
}
