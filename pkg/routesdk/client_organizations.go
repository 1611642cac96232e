package routesdk

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListOrganizations(ctx context.Context) ([]OrganizationSummary, error) {
	var out []OrganizationSummary
	if err := c.call(ctx, http.MethodGet, "/v1/organizations", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateOrganization creates an organization owned by the caller.
func (c *Client) CreateOrganization(ctx context.Context, req CreateOrganizationRequest) (*Organization, error) {
	var out Organization
	if err := c.call(ctx, http.MethodPost, "/v1/organizations", req, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetOrganization(ctx context.Context, id string) (*OrganizationWithRole, error) {
	var out OrganizationWithRole
	if err := c.call(ctx, http.MethodGet, "/v1/organizations/"+url.PathEscape(id), nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOrganization(ctx context.Context, id string, req UpdateOrganizationRequest) (*Organization, error) {
	var out Organization
	if err := c.call(ctx, http.MethodPatch, "/v1/organizations/"+url.PathEscape(id), req, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteOrganization(ctx context.Context, id string) error {
	return c.callNoContent(ctx, http.MethodDelete, "/v1/organizations/"+url.PathEscape(id), nil)
}

func (c *Client) ListMembers(ctx context.Context, orgID string) ([]Member, error) {
	var out []Member
	if err := c.call(ctx, http.MethodGet, "/v1/organizations/"+url.PathEscape(orgID)+"/members", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateMemberRole(ctx context.Context, orgID, memberID, role string) (*Member, error) {
	var out Member
	path := "/v1/organizations/" + url.PathEscape(orgID) + "/members/" + url.PathEscape(memberID)
	if err := c.call(ctx, http.MethodPatch, path, UpdateMemberRequest{Role: role}, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveMember(ctx context.Context, orgID, memberID string) error {
	path := "/v1/organizations/" + url.PathEscape(orgID) + "/members/" + url.PathEscape(memberID)
	return c.callNoContent(ctx, http.MethodDelete, path, nil)
}

// LeaveOrganization removes the caller's own membership.
func (c *Client) LeaveOrganization(ctx context.Context, orgID string) error {
	return c.callNoContent(ctx, http.MethodPost, "/v1/organizations/"+url.PathEscape(orgID)+"/leave", nil)
}
