package geocode

import (
	"context"
	"fmt"
	"net/url"
)

const googleBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

// Google talks to the Google Maps Geocoding API.
type Google struct {
	apiKey string
	opts   options
}

// NewGoogle creates a Google geocoder.
func NewGoogle(apiKey string, opts ...Option) *Google {
	return &Google{apiKey: apiKey, opts: buildOptions(googleBaseURL, opts)}
}

type googleResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (g *Google) Geocode(ctx context.Context, address string) (*Coordinates, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", g.apiKey)

	var body googleResponse
	if err := getJSON(ctx, g.opts.client, g.opts.baseURL+"?"+q.Encode(), &body); err != nil {
		return nil, err
	}

	switch body.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, nil
	default:
		msg := body.ErrorMessage
		if msg == "" {
			msg = "unknown error"
		}
		return nil, fmt.Errorf("%w: google: %s: %s", ErrProvider, body.Status, msg)
	}
	if len(body.Results) == 0 {
		return nil, nil
	}

	loc := body.Results[0].Geometry.Location
	return &Coordinates{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}
