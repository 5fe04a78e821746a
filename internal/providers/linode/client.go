// Package linode implements a read-only client for the two Linode API v4
// listings this tool consumes: instance types and images.
//
// It uses a direct HTTP client rather than an SDK to keep the dependency
// tree light and the code consistent with the Cloudflare client.
package linode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"scaletrailhq/scaletrail/internal/catalog"
	"scaletrailhq/scaletrail/internal/domain"
)

const (
	defaultBaseURL = "https://api.linode.com/v4"
	requestTimeout = 30 * time.Second
)

// Client talks to the Linode API v4 with a personal access token.
type Client struct {
	token   string
	baseURL string
	client  *http.Client
}

// New creates a Client with the given personal access token.
func New(token string) *Client {
	return &Client{
		token:   token,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// NewWithBaseURL creates a Client against a custom API base URL. Intended
// for testing.
func NewWithBaseURL(token, baseURL string) *Client {
	c := New(token)
	c.baseURL = baseURL
	return c
}

// ListTypes retrieves every instance type, following pagination, and returns
// them as a single catalog listing.
func (c *Client) ListTypes(ctx context.Context) (catalog.TypesResponse, error) {
	var all catalog.TypesResponse
	page := 1

	for {
		var out catalog.TypesResponse
		path := fmt.Sprintf("/linode/types?page=%d&page_size=100", page)
		if err := c.getJSON(ctx, path, &out); err != nil {
			return catalog.TypesResponse{}, fmt.Errorf("failed to list instance types: %w", err)
		}

		all.Data = append(all.Data, out.Data...)
		all.Results = out.Results

		if out.Pages == 0 || page >= out.Pages {
			break
		}
		page++
	}

	all.Page = 1
	all.Pages = 1
	return all, nil
}

// ListImages retrieves every image, following pagination, and returns them
// as a single catalog listing.
func (c *Client) ListImages(ctx context.Context) (catalog.ImagesResponse, error) {
	var all catalog.ImagesResponse
	page := 1

	for {
		var out catalog.ImagesResponse
		path := fmt.Sprintf("/images?page=%d&page_size=100", page)
		if err := c.getJSON(ctx, path, &out); err != nil {
			return catalog.ImagesResponse{}, fmt.Errorf("failed to list images: %w", err)
		}

		all.Data = append(all.Data, out.Data...)
		all.Results = out.Results

		if out.Pages == 0 || page >= out.Pages {
			break
		}
		page++
	}

	all.Page = 1
	all.Pages = 1
	return all, nil
}

// apiError is one entry of the Linode error envelope.
type apiError struct {
	Reason string `json:"reason"`
	Field  string `json:"field"`
}

// apiErrors is the Linode error response body.
type apiErrors struct {
	Errors []apiError `json:"errors"`
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("linode: failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("linode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("linode: failed to decode response: %w", err)
	}

	return nil
}

// statusError maps a non-200 Linode response to a sentinel-wrapped error,
// carrying the API's own reason text when the body parses.
func statusError(resp *http.Response) error {
	reason := "unknown error"
	var body apiErrors
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && len(body.Errors) > 0 {
		reason = body.Errors[0].Reason
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("linode: %w: %s", domain.ErrUnauthorized, reason)
	case http.StatusNotFound:
		return fmt.Errorf("linode: %w: %s", domain.ErrNotFound, reason)
	case http.StatusTooManyRequests:
		return fmt.Errorf("linode: %w: %s", domain.ErrRateLimited, reason)
	}
	return fmt.Errorf("linode: unexpected status %d: %s", resp.StatusCode, reason)
}
