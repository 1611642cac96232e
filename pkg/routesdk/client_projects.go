package routesdk

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListProjects(ctx context.Context, orgID string) ([]Project, error) {
	var out []Project
	if err := c.call(ctx, http.MethodGet, "/v1/organizations/"+url.PathEscape(orgID)+"/projects", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	var out Project
	if err := c.call(ctx, http.MethodPost, "/v1/projects", req, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetProject(ctx context.Context, id string) (*Project, error) {
	var out Project
	if err := c.call(ctx, http.MethodGet, "/v1/projects/"+url.PathEscape(id), nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, req UpdateProjectRequest) (*Project, error) {
	var out Project
	if err := c.call(ctx, http.MethodPatch, "/v1/projects/"+url.PathEscape(id), req, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.callNoContent(ctx, http.MethodDelete, "/v1/projects/"+url.PathEscape(id), nil)
}
