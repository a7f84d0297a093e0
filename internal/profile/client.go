package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Profile carries the enrichment fields the settings service returns beyond
// what the token claims contain.
type Profile struct {
	Username          string `json:"username"`
	Email             string `json:"email"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

var ErrBadPayload = errors.New("profile: unexpected response payload")

// Client fetches profile details from the settings service.
//
// The settings service owns the data; this client only shapes the response.
// Callers decide what a failure means (the session provider treats any
// failure as session invalidation).
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the settings service base URL.
// A nil httpClient falls back to http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Details performs GET {base}/details/{id} with bearer auth.
//
// The service responds with an array; only the first element is consumed.
// Any non-2xx status, empty array, or undecodable body is an error.
func (c *Client) Details(ctx context.Context, id, bearer string) (Profile, error) {
	if id == "" {
		return Profile{}, errors.New("profile: id is required")
	}

	endpoint := c.baseURL + "/details/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Profile{}, err
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Profile{}, fmt.Errorf("profile: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return Profile{}, fmt.Errorf("profile: unexpected status %d", resp.StatusCode)
	}

	var rows []Profile
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if len(rows) == 0 {
		return Profile{}, ErrBadPayload
	}
	return rows[0], nil
}
