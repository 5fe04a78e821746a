// Package cloudflare implements the read-only Cloudflare API v4 calls this
// tool consumes: zone lookup and DNS record listing. It authenticates via a
// scoped API token with Zone:Read and DNS:Read permissions.
package cloudflare

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"scaletrailhq/scaletrail/internal/domain"
)

const (
	defaultBaseURL = "https://api.cloudflare.com/client/v4"
	requestTimeout = 30 * time.Second
)

// Client talks to the Cloudflare API v4.
type Client struct {
	token   string
	baseURL string
	client  *http.Client
}

// New creates a Client with the given API token.
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

// --- API request/response types ---

// cfError represents a single Cloudflare API error.
type cfError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// cfResultInfo holds pagination info from Cloudflare list responses.
type cfResultInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
	Count      int `json:"count"`
	TotalCount int `json:"total_count"`
}

// cfListEnvelope is the standard Cloudflare list response wrapper.
type cfListEnvelope[T any] struct {
	Success    bool         `json:"success"`
	Errors     []cfError    `json:"errors"`
	Result     []T          `json:"result"`
	ResultInfo cfResultInfo `json:"result_info"`
}

// cfZone is the Cloudflare zone object.
type cfZone struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// cfDNSRecord is the Cloudflare DNS record object.
type cfDNSRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content"`
	TTL     int    `json:"ttl"`
	Proxied bool   `json:"proxied"`
}

// --- HTTP helpers ---

// envelopeError extracts a single error from a Cloudflare response envelope,
// mapping known HTTP-level error codes to domain sentinels.
func envelopeError(success bool, errors []cfError, httpStatus int) error {
	if success {
		return nil
	}

	switch httpStatus {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, cfErrorString(errors))
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, cfErrorString(errors))
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", domain.ErrRateLimited, cfErrorString(errors))
	}

	return fmt.Errorf("cloudflare: %s", cfErrorString(errors))
}

// cfErrorString joins multiple Cloudflare errors into a single string.
func cfErrorString(errors []cfError) string {
	if len(errors) == 0 {
		return "unknown error"
	}
	msgs := make([]string, 0, len(errors))
	for _, e := range errors {
		msgs = append(msgs, fmt.Sprintf("[%d] %s", e.Code, e.Message))
	}
	return strings.Join(msgs, "; ")
}

// getJSONWithStatus performs a GET and captures the HTTP status code for use
// in error mapping.
func (c *Client) getJSONWithStatus(ctx context.Context, path string, out any) (int, error) {
	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, fmt.Errorf("cloudflare: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("cloudflare: request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("cloudflare: failed to decode response: %w", err)
	}

	return resp.StatusCode, nil
}

// --- Zone and record lookup ---

// GetZoneID resolves a root domain name to its Cloudflare zone ID.
func (c *Client) GetZoneID(ctx context.Context, domainName string) (string, error) {
	var out cfListEnvelope[cfZone]
	status, err := c.getJSONWithStatus(ctx, "/zones?name="+domainName+"&per_page=1", &out)
	if err != nil {
		return "", fmt.Errorf("failed to look up zone for %q: %w", domainName, err)
	}
	if apiErr := envelopeError(out.Success, out.Errors, status); apiErr != nil {
		return "", fmt.Errorf("failed to look up zone for %q: %w", domainName, apiErr)
	}

	if len(out.Result) == 0 {
		return "", fmt.Errorf("zone for %q: %w", domainName, domain.ErrNotFound)
	}

	return out.Result[0].ID, nil
}

// ListRecords returns the DNS record snapshot for a zone, following
// pagination.
func (c *Client) ListRecords(ctx context.Context, zoneID string) ([]domain.DNSRecord, error) {
	var allRecords []cfDNSRecord
	page := 1

	for {
		path := fmt.Sprintf("/zones/%s/dns_records?page=%d&per_page=100", zoneID, page)
		var out cfListEnvelope[cfDNSRecord]
		status, err := c.getJSONWithStatus(ctx, path, &out)
		if err != nil {
			return nil, fmt.Errorf("failed to list records for zone %q: %w", zoneID, err)
		}
		if apiErr := envelopeError(out.Success, out.Errors, status); apiErr != nil {
			return nil, fmt.Errorf("failed to list records for zone %q: %w", zoneID, apiErr)
		}

		allRecords = append(allRecords, out.Result...)

		if page >= out.ResultInfo.TotalPages {
			break
		}
		page++
	}

	records := make([]domain.DNSRecord, 0, len(allRecords))
	for _, r := range allRecords {
		records = append(records, domain.DNSRecord{
			ID:      r.ID,
			Name:    r.Name,
			Type:    domain.RecordType(r.Type),
			Content: r.Content,
			TTL:     r.TTL,
			Proxied: r.Proxied,
		})
	}
	return records, nil
}
