package routesdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Encode renders q as a query string, leaving out zero values.
func (q TechnicianQuery) Encode() string {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.EmploymentType != "" {
		v.Set("employment_type", q.EmploymentType)
	}
	if q.Active != nil {
		v.Set("active", strconv.FormatBool(*q.Active))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Dir != "" {
		v.Set("dir", q.Dir)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(q.PageSize))
	}
	return v.Encode()
}

func (c *Client) ListTechnicians(ctx context.Context, orgID string, q TechnicianQuery) (*TechnicianList, error) {
	path := "/v1/organizations/" + url.PathEscape(orgID) + "/technicians"
	if qs := q.Encode(); qs != "" {
		path += "?" + qs
	}

	var out TechnicianList
	if err := c.call(ctx, http.MethodGet, path, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTechnician(ctx context.Context, req CreateTechnicianRequest) (*Technician, error) {
	var out Technician
	if err := c.call(ctx, http.MethodPost, "/v1/technicians", req, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetTechnician(ctx context.Context, id string) (*Technician, error) {
	var out Technician
	if err := c.call(ctx, http.MethodGet, "/v1/technicians/"+url.PathEscape(id), nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTechnician(ctx context.Context, id string, req UpdateTechnicianRequest) (*Technician, error) {
	var out Technician
	if err := c.call(ctx, http.MethodPut, "/v1/technicians/"+url.PathEscape(id), req, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTechnician(ctx context.Context, id string) error {
	return c.callNoContent(ctx, http.MethodDelete, "/v1/technicians/"+url.PathEscape(id), nil)
}
