// Package geocode turns postal addresses into coordinates through a hosted
// provider. Providers are interchangeable behind Geocoder and are selected
// by name at startup.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Provider names accepted by New.
const (
	ProviderOpenCage = "opencage"
	ProviderGoogle   = "google"
)

var (
	ErrUnknownProvider = errors.New("geocode: unknown provider")
	ErrMissingAPIKey   = errors.New("geocode: api key is required")

	// ErrProvider wraps every failure that originates at the provider:
	// transport errors, non-2xx responses, quota and auth rejections.
	ErrProvider = errors.New("geocode: provider error")
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Geocoder resolves a free-form address. A nil result with a nil error means
// the provider answered but found nothing.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Coordinates, error)
}

type options struct {
	client  *http.Client
	baseURL string
}

// Option configures a provider client.
type Option func(*options)

// WithHTTPClient sets the HTTP client (default: 10s timeout).
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.client = c }
}

// WithBaseURL points the provider at another endpoint. Tests use it with
// httptest servers.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

func buildOptions(defaultBase string, opts []Option) options {
	o := options{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBase,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns the geocoder for provider. An empty provider means OpenCage.
func New(provider, apiKey string, opts ...Option) (Geocoder, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", ProviderOpenCage:
		return NewOpenCage(apiKey, opts...), nil
	case ProviderGoogle:
		return NewGoogle(apiKey, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
}

// FormatAddress joins the non-empty parts with ", ".
func FormatAddress(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

// getJSON performs a GET and decodes a JSON body into dst. Non-2xx statuses
// are reported as ErrProvider.
func getJSON(ctx context.Context, client *http.Client, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: http %d", ErrProvider, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrProvider, err)
	}
	return nil
}
