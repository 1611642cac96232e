package routesdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateInvitation invites an email address. Sending the same address again
// while the first invitation is pending returns it with Resent set.
func (c *Client) CreateInvitation(ctx context.Context, req CreateInvitationRequest) (*CreateInvitationResponse, error) {
	var out CreateInvitationResponse
	if err := c.call(ctx, http.MethodPost, "/v1/invitations", req, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListInvitations(ctx context.Context, orgID string) ([]Invitation, error) {
	var out []Invitation
	if err := c.call(ctx, http.MethodGet, "/v1/organizations/"+url.PathEscape(orgID)+"/invitations", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RevokeInvitation(ctx context.Context, id string) error {
	return c.callNoContent(ctx, http.MethodDelete, "/v1/invitations/"+url.PathEscape(id), nil)
}

// GetInvitation looks up a pending invitation by token. No credentials are
// needed.
func (c *Client) GetInvitation(ctx context.Context, token string) (*InvitationDetails, error) {
	var out InvitationDetails
	if err := c.call(ctx, http.MethodGet, "/v1/invitations/token/"+url.PathEscape(token), nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptInvitation joins the caller to the inviting organization.
func (c *Client) AcceptInvitation(ctx context.Context, token string) (*AcceptInvitationResponse, error) {
	var out AcceptInvitationResponse
	if err := c.call(ctx, http.MethodPost, "/v1/invitations/accept/"+url.PathEscape(token), nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
