package reporting

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// BearerSource supplies the stored token for upstream calls.
type BearerSource interface {
	Token(ctx context.Context) string
}

// HTTPRepo reads dashboard rows from the resource services. The services own
// filtering semantics; this repo only passes org and range along.
type HTTPRepo struct {
	baseURL string
	http    *http.Client
	bearer  BearerSource
}

func NewHTTPRepo(baseURL string, httpClient *http.Client, bearer BearerSource) *HTTPRepo {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPRepo{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		bearer:  bearer,
	}
}

func (r *HTTPRepo) ListAssets(ctx context.Context, orgID string) ([]Asset, error) {
	var out []Asset
	q := url.Values{"org_id": {orgID}}
	if err := r.getJSON(ctx, "/assets", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *HTTPRepo) ListTickets(ctx context.Context, orgID string, from, to time.Time) ([]Ticket, error) {
	var out []Ticket
	q := url.Values{
		"org_id": {orgID},
		"from":   {from.Format(time.RFC3339)},
		"to":     {to.Format(time.RFC3339)},
	}
	if err := r.getJSON(ctx, "/tickets", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *HTTPRepo) ListMeals(ctx context.Context, orgID string, from, to time.Time) ([]Meal, error) {
	var out []Meal
	q := url.Values{
		"org_id": {orgID},
		"from":   {from.Format(time.RFC3339)},
		"to":     {to.Format(time.RFC3339)},
	}
	if err := r.getJSON(ctx, "/meals", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *HTTPRepo) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if r.bearer != nil {
		if tok := r.bearer.Token(ctx); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := r.http.Do(req)
	if err != nil {
		return fmt.Errorf("reporting: %s request failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("reporting: %s unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("reporting: %s decode failed: %w", path, err)
	}
	return nil
}
