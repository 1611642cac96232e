package routesdk

import (
	"net/http"
	"strings"
	"time"
)

// Client talks to one RouteMaker deployment.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

// NewClient creates an unauthenticated client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WithToken returns a copy of c that sends token as a bearer credential.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}
