package geocode

import (
	"context"
	"fmt"
	"net/url"
)

const openCageBaseURL = "https://api.opencagedata.com/geocode/v1/json"

// OpenCage talks to the OpenCage forward geocoding API.
type OpenCage struct {
	apiKey string
	opts   options
}

// NewOpenCage creates an OpenCage geocoder.
func NewOpenCage(apiKey string, opts ...Option) *OpenCage {
	return &OpenCage{apiKey: apiKey, opts: buildOptions(openCageBaseURL, opts)}
}

type openCageResponse struct {
	Status struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
	} `json:"results"`
}

func (g *OpenCage) Geocode(ctx context.Context, address string) (*Coordinates, error) {
	q := url.Values{}
	q.Set("q", address)
	q.Set("key", g.apiKey)
	q.Set("limit", "1")
	q.Set("no_annotations", "1")

	var body openCageResponse
	if err := getJSON(ctx, g.opts.client, g.opts.baseURL+"?"+q.Encode(), &body); err != nil {
		return nil, err
	}

	if body.Status.Code != 200 {
		return nil, fmt.Errorf("%w: opencage: %s", ErrProvider, body.Status.Message)
	}
	if len(body.Results) == 0 {
		return nil, nil
	}

	geo := body.Results[0].Geometry
	return &Coordinates{Latitude: geo.Lat, Longitude: geo.Lng}, nil
}
