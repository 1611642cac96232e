/*
Package routesdk is a Go client for the RouteMaker API and the home of its
wire types. The server encodes responses with these types, so a client built
from this package always agrees with the server on field names.

# Client

Public endpoints need no credentials:

	client := routesdk.NewClient("https://api.example.com")
	health, err := client.GetLiveness(ctx)
	details, err := client.GetInvitation(ctx, token)

Everything else needs an access token from the identity provider:

	client = client.WithToken(accessToken)
	org, err := client.CreateOrganization(ctx, routesdk.CreateOrganizationRequest{Name: "Acme"})

	res, err := client.CreateInvitation(ctx, routesdk.CreateInvitationRequest{
		OrganizationID: org.ID,
		Email:          "bob@example.com",
		Role:           "admin",
	})

# Errors

Non-2xx responses come back as *APIError carrying the status code and the
server's message:

	var apiErr *routesdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
		// not a member, or role too low
	}

Bulk endpoints (location import and bulk geocode) answer 200 with per-item
errors in the body; inspect ImportResult.Errors and GeocodeBulkResult.Errors.

# Thread Safety

A Client is immutable after construction and safe for concurrent use.
WithToken returns a copy.
*/
package routesdk
