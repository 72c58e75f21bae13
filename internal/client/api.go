package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/homehaven/homehaven/backend/go-services/internal/property"
)

// APIError is a non-2xx response normalized to the message from the body's
// error field, with the original status kept for classification.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// NotFound reports a 404-class failure (unknown id).
func (e *APIError) NotFound() bool { return e.Status == http.StatusNotFound }

// Invalid reports a 400-class failure (missing required fields).
func (e *APIError) Invalid() bool { return e.Status >= 400 && e.Status < 404 }

// DeleteResult is the delete confirmation payload: the server echoes the
// removed record back.
type DeleteResult struct {
	Message  string             `json:"message"`
	Property *property.Property `json:"property"`
}

// Health is the liveness payload.
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// API is the HTTP client for the property service. It performs no business
// logic: it marshals requests, unmarshals records, and normalizes errors.
type API struct {
	base string
	hc   *http.Client
}

func NewAPI(base string) *API {
	return &API{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// ListProperties fetches listings, optionally restricted by type facet and
// search text. An empty or "All" facet and empty search return everything.
func (a *API) ListProperties(ctx context.Context, typeFacet, search string) ([]*property.Property, error) {
	q := url.Values{}
	if typeFacet != "" && typeFacet != property.FacetAll {
		q.Set("type", typeFacet)
	}
	if search != "" {
		q.Set("search", search)
	}
	var out []*property.Property
	if err := a.do(ctx, http.MethodGet, "/properties", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) GetProperty(ctx context.Context, id string) (*property.Property, error) {
	var out property.Property
	if err := a.do(ctx, http.MethodGet, "/properties/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) CreateProperty(ctx context.Context, in *property.Input) (*property.Property, error) {
	var out property.Property
	if err := a.do(ctx, http.MethodPost, "/properties", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) UpdateProperty(ctx context.Context, id string, in *property.Input) (*property.Property, error) {
	var out property.Property
	if err := a.do(ctx, http.MethodPut, "/properties/"+id, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) DeleteProperty(ctx context.Context, id string) (*DeleteResult, error) {
	var out DeleteResult
	if err := a.do(ctx, http.MethodDelete, "/properties/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) HealthCheck(ctx context.Context) (*Health, error) {
	var out Health
	if err := a.do(ctx, http.MethodGet, "/health", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) do(ctx context.Context, method, path string, q url.Values, body, out any) error {
	u := a.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.hc.Do(req)
	if err != nil {
		return fmt.Errorf("property api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// prefer the server's error field, fall back to a generic message
		var eb struct {
			Error string `json:"error"`
		}
		msg := fmt.Sprintf("request failed with status %d", resp.StatusCode)
		if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil && eb.Error != "" {
			msg = eb.Error
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
