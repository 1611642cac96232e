package routesdk

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) GetMyProfile(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := c.call(ctx, http.MethodGet, "/v1/profiles/me", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMyProfile(ctx context.Context, req UpdateProfileRequest) (*Profile, error) {
	var out Profile
	if err := c.call(ctx, http.MethodPatch, "/v1/profiles/me", req, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetProfile(ctx context.Context, userID string) (*PublicProfile, error) {
	var out PublicProfile
	if err := c.call(ctx, http.MethodGet, "/v1/profiles/"+url.PathEscape(userID), nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
