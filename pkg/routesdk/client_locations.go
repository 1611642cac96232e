package routesdk

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

func (c *Client) ListLocations(ctx context.Context, orgID string) ([]Location, error) {
	var out []Location
	if err := c.call(ctx, http.MethodGet, "/v1/organizations/"+url.PathEscape(orgID)+"/locations", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateLocation(ctx context.Context, req CreateLocationRequest) (*Location, error) {
	var out Location
	if err := c.call(ctx, http.MethodPost, "/v1/locations", req, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetLocation(ctx context.Context, id string) (*Location, error) {
	var out Location
	if err := c.call(ctx, http.MethodGet, "/v1/locations/"+url.PathEscape(id), nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateLocation(ctx context.Context, id string, req UpdateLocationRequest) (*Location, error) {
	var out Location
	if err := c.call(ctx, http.MethodPut, "/v1/locations/"+url.PathEscape(id), req, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteLocation(ctx context.Context, id string) error {
	return c.callNoContent(ctx, http.MethodDelete, "/v1/locations/"+url.PathEscape(id), nil)
}

// GeocodeLocation resolves and stores one location's coordinates.
func (c *Client) GeocodeLocation(ctx context.Context, id string) (*Location, error) {
	var out Location
	if err := c.call(ctx, http.MethodPost, "/v1/locations/"+url.PathEscape(id)+"/geocode", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GeocodeLocations(ctx context.Context, ids []string) (*GeocodeBulkResult, error) {
	var out GeocodeBulkResult
	if err := c.call(ctx, http.MethodPost, "/v1/locations/geocode-bulk", GeocodeBulkRequest{IDs: ids}, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ImportLocations submits rows as JSON.
func (c *Client) ImportLocations(ctx context.Context, req ImportLocationsRequest) (*ImportResult, error) {
	var out ImportResult
	if err := c.call(ctx, http.MethodPost, "/v1/locations/import", req, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ImportLocationsCSV streams a CSV file with a header line into orgID.
func (c *Client) ImportLocationsCSV(ctx context.Context, orgID string, csv io.Reader) (*ImportResult, error) {
	path := "/v1/locations/import?organizationId=" + url.QueryEscape(orgID)
	resp, err := c.doRequest(ctx, http.MethodPost, path, csv, map[string]string{"Content-Type": "text/csv"})
	if err != nil {
		return nil, err
	}

	var out ImportResult
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
