package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Emmie8/schedsim/internal/requests"
	"github.com/Emmie8/schedsim/internal/responses"
)

var ErrRemote = errors.New("remote comparison failed")

// Client talks to a schedsim HTTP service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Compare posts the workload to /api/v1/all.
func (c *Client) Compare(ctx context.Context, req requests.ScheduleRequest) (responses.ComparisonResponse, error) {
	var out responses.ComparisonResponse
	err := c.post(ctx, "/api/v1/all", req, &out)
	return out, err
}

// Schedule posts the workload to /api/v1/{policy}.
func (c *Client) Schedule(ctx context.Context, policy string, req requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	var out responses.ScheduleResponse
	err := c.post(ctx, "/api/v1/"+strings.ToLower(policy), req, &out)
	return out, err
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%w: encoding request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: building request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemote, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		var e responses.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
			return fmt.Errorf("%w: status %d", ErrRemote, resp.StatusCode)
		}
		return fmt.Errorf("%w: status %d: %s", ErrRemote, resp.StatusCode, e.Error)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrRemote, err)
	}
	return nil
}
