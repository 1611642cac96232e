package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	rmhttp "github.com/aussiebroadwan/routemaker/internal/routemaker/http"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/notify"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/service"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/store/drivers/sqlite"
	"github.com/aussiebroadwan/routemaker/pkg/geocode"
	"github.com/aussiebroadwan/routemaker/pkg/jwtx"
	"github.com/aussiebroadwan/routemaker/pkg/routesdk"
	"github.com/aussiebroadwan/routemaker/pkg/slogx"
)

const testSecret = "test-secret-that-is-at-least-32-bytes"

type user struct {
	id    string
	email string
}

var (
	alice   = user{"0f8fad5b-d9cb-469f-a165-70867728950e", "alice@example.com"}
	bob     = user{"7c9e6679-7425-40de-944b-e07fc1f90ae7", "bob@example.com"}
	mallory = user{"9b2c4a1e-3f5d-4c7b-8e6a-1d2f3a4b5c6d", "mallory@example.com"}
)

// stubGeocoder resolves only the addresses it was given.
type stubGeocoder map[string]geocode.Coordinates

func (g stubGeocoder) Geocode(_ context.Context, address string) (*geocode.Coordinates, error) {
	if c, ok := g[address]; ok {
		return &c, nil
	}
	return nil, nil
}

type testServer struct {
	*httptest.Server
	signer *jwtx.HS256Signer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "http.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	verifier, err := jwtx.NewHS256Verifier([]byte(testSecret), jwtx.VerifyOptions{})
	require.NoError(t, err)

	geo := stubGeocoder{
		"1 Main St, Springfield, IL, 62701, US": {Latitude: 39.8, Longitude: -89.6},
	}

	r := rmhttp.NewRouter(verifier, "test", st, slogx.Discard(), rmhttp.Options{IsDevelopment: true})
	r.OrganizationService = &service.OrganizationService{Store: st}
	r.InvitationService = &service.InvitationService{Store: st, Mailer: notify.NewNoopMailer(), BaseURL: "https://app.example.com"}
	r.ProfileService = &service.ProfileService{Store: st}
	r.ProjectService = &service.ProjectService{Store: st}
	r.LocationService = &service.LocationService{Store: st, Geocoder: geo}
	r.TechnicianService = &service.TechnicianService{Store: st}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, signer: jwtx.NewHS256Signer([]byte(testSecret))}
}

func (s *testServer) token(t *testing.T, u user) string {
	t.Helper()

	tok, err := s.signer.Sign(jwtx.NewIdentityClaims(u.id, u.email, time.Hour, "", nil, time.Now()))
	require.NoError(t, err)
	return tok
}

func (s *testServer) as(t *testing.T, u user) *routesdk.Client {
	t.Helper()
	return routesdk.NewClient(s.URL).WithToken(s.token(t, u))
}

// raw sends body as-is, for payloads the SDK will not produce.
func (s *testServer) raw(t *testing.T, u user, method, path string, body any) *http.Response {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequestWithContext(t.Context(), method, s.URL+path, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token(t, u))

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func requireAPIError(t *testing.T, err error, status int, msg string) {
	t.Helper()

	var apiErr *routesdk.APIError
	require.True(t, errors.As(err, &apiErr), "want *routesdk.APIError, got %v", err)
	require.Equal(t, status, apiErr.StatusCode, apiErr.Message)
	if msg != "" {
		require.Equal(t, msg, apiErr.Message)
	}
}

func tokenFromURL(t *testing.T, inviteURL string) string {
	t.Helper()

	token, ok := strings.CutPrefix(inviteURL, "https://app.example.com/invite/")
	require.True(t, ok, inviteURL)
	return token
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	c := routesdk.NewClient(srv.URL)

	live, err := c.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := c.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}

func TestAuthenticationRequired(t *testing.T) {
	srv := newTestServer(t)

	_, err := routesdk.NewClient(srv.URL).ListOrganizations(t.Context())
	requireAPIError(t, err, http.StatusUnauthorized, "authentication required")

	_, err = routesdk.NewClient(srv.URL).WithToken("not-a-jwt").ListOrganizations(t.Context())
	requireAPIError(t, err, http.StatusUnauthorized, "")

	// Subjects must be UUIDs.
	_, err = srv.as(t, user{"user-alice", "alice@example.com"}).ListOrganizations(t.Context())
	requireAPIError(t, err, http.StatusUnauthorized, "")
}

func TestInvitationAcceptanceFlow(t *testing.T) {
	srv := newTestServer(t)
	ctx := t.Context()
	ac, bc := srv.as(t, alice), srv.as(t, bob)

	org, err := ac.CreateOrganization(ctx, routesdk.CreateOrganizationRequest{Name: "Acme"})
	require.NoError(t, err)
	require.Equal(t, "acme", org.Slug)

	inv, err := ac.CreateInvitation(ctx, routesdk.CreateInvitationRequest{OrganizationID: org.ID, Email: "Bob@Example.com"})
	require.NoError(t, err)
	require.False(t, inv.Resent)
	require.Equal(t, "bob@example.com", inv.Invitation.Email)
	require.Equal(t, "member", inv.Invitation.Role)
	token := tokenFromURL(t, inv.InviteURL)

	// Inviting the same address again resends the same link.
	again, err := ac.CreateInvitation(ctx, routesdk.CreateInvitationRequest{OrganizationID: org.ID, Email: "bob@example.com"})
	require.NoError(t, err)
	require.True(t, again.Resent)
	require.Equal(t, inv.InviteURL, again.InviteURL)

	// The invite page looks the token up without signing in.
	details, err := routesdk.NewClient(srv.URL).GetInvitation(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "Acme", details.Organization.Name)
	require.Equal(t, "pending", details.Status)

	// Non-members cannot see the organization yet.
	_, err = bc.GetOrganization(ctx, org.ID)
	requireAPIError(t, err, http.StatusForbidden, "not a member of this organization")

	accepted, err := bc.AcceptInvitation(ctx, token)
	require.NoError(t, err)
	require.Equal(t, org.ID, accepted.OrganizationID)
	require.Equal(t, "member", accepted.Role)

	got, err := bc.GetOrganization(ctx, org.ID)
	require.NoError(t, err)
	require.Equal(t, "member", got.Role)

	orgs, err := bc.ListOrganizations(ctx)
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	require.Equal(t, "Acme", orgs[0].Name)

	members, err := ac.ListMembers(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	// A second accept fails and the token page now reports it as used.
	_, err = bc.AcceptInvitation(ctx, token)
	requireAPIError(t, err, http.StatusConflict, "invitation is no longer valid")
	_, err = routesdk.NewClient(srv.URL).GetInvitation(ctx, token)
	requireAPIError(t, err, http.StatusBadRequest, "invitation is no longer valid")

	// Members cannot invite.
	_, err = bc.CreateInvitation(ctx, routesdk.CreateInvitationRequest{OrganizationID: org.ID, Email: "carol@example.com"})
	requireAPIError(t, err, http.StatusForbidden, "insufficient role for this action")
}

func TestInvitationErrors(t *testing.T) {
	srv := newTestServer(t)
	ctx := t.Context()
	ac := srv.as(t, alice)

	org, err := ac.CreateOrganization(ctx, routesdk.CreateOrganizationRequest{Name: "Acme"})
	require.NoError(t, err)

	_, err = routesdk.NewClient(srv.URL).GetInvitation(ctx, "no-such-token")
	requireAPIError(t, err, http.StatusNotFound, "invitation not found")

	_, err = ac.CreateInvitation(ctx, routesdk.CreateInvitationRequest{OrganizationID: org.ID, Email: "not an email"})
	requireAPIError(t, err, http.StatusBadRequest, "")

	inv, err := ac.CreateInvitation(ctx, routesdk.CreateInvitationRequest{OrganizationID: org.ID, Email: bob.email})
	require.NoError(t, err)
	token := tokenFromURL(t, inv.InviteURL)

	_, err = srv.as(t, mallory).AcceptInvitation(ctx, token)
	requireAPIError(t, err, http.StatusForbidden, "this invitation was sent to a different email address")

	require.NoError(t, ac.RevokeInvitation(ctx, inv.Invitation.ID))
	_, err = srv.as(t, bob).AcceptInvitation(ctx, token)
	requireAPIError(t, err, http.StatusConflict, "invitation is no longer valid")

	list, err := ac.ListInvitations(ctx, org.ID)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestOrganizationMembers(t *testing.T) {
	srv := newTestServer(t)
	ctx := t.Context()
	ac, bc := srv.as(t, alice), srv.as(t, bob)

	org, err := ac.CreateOrganization(ctx, routesdk.CreateOrganizationRequest{Name: "Acme"})
	require.NoError(t, err)

	inv, err := ac.CreateInvitation(ctx, routesdk.CreateInvitationRequest{OrganizationID: org.ID, Email: bob.email, Role: "admin"})
	require.NoError(t, err)
	_, err = bc.AcceptInvitation(ctx, tokenFromURL(t, inv.InviteURL))
	require.NoError(t, err)

	members, err := ac.ListMembers(ctx, org.ID)
	require.NoError(t, err)
	var aliceMember, bobMember routesdk.Member
	for _, m := range members {
		switch m.UserID {
		case alice.id:
			aliceMember = m
		case bob.id:
			bobMember = m
		}
	}
	require.Equal(t, "owner", aliceMember.Role)
	require.Equal(t, "admin", bobMember.Role)

	// The only owner can neither leave nor be demoted.
	err = ac.LeaveOrganization(ctx, org.ID)
	requireAPIError(t, err, http.StatusConflict, "organization must keep at least one owner")
	_, err = bc.UpdateMemberRole(ctx, org.ID, aliceMember.ID, "member")
	requireAPIError(t, err, http.StatusForbidden, "")

	_, err = ac.UpdateMemberRole(ctx, org.ID, bobMember.ID, "superuser")
	requireAPIError(t, err, http.StatusBadRequest, "")

	updated, err := ac.UpdateMemberRole(ctx, org.ID, bobMember.ID, "member")
	require.NoError(t, err)
	require.Equal(t, "member", updated.Role)

	// Admin-only settings are now out of reach for bob.
	name := "Acme Pty Ltd"
	_, err = bc.UpdateOrganization(ctx, org.ID, routesdk.UpdateOrganizationRequest{Name: &name})
	requireAPIError(t, err, http.StatusForbidden, "")

	require.NoError(t, bc.LeaveOrganization(ctx, org.ID))
	orgs, err := bc.ListOrganizations(ctx)
	require.NoError(t, err)
	require.Empty(t, orgs)

	require.NoError(t, ac.DeleteOrganization(ctx, org.ID))
	_, err = ac.GetOrganization(ctx, org.ID)
	requireAPIError(t, err, http.StatusForbidden, "")
}

func TestMalformedPathIDs(t *testing.T) {
	srv := newTestServer(t)
	ac := srv.as(t, alice)

	_, err := ac.GetLocation(t.Context(), "not-a-ulid")
	requireAPIError(t, err, http.StatusNotFound, "location not found")

	_, err = ac.GetProject(t.Context(), "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV")
	requireAPIError(t, err, http.StatusNotFound, "project not found")

	_, err = ac.GetProfile(t.Context(), "user-alice")
	requireAPIError(t, err, http.StatusNotFound, "profile not found")
}

func TestLocationOrganizationIsImmutable(t *testing.T) {
	srv := newTestServer(t)
	ctx := t.Context()
	ac := srv.as(t, alice)

	home, err := ac.CreateOrganization(ctx, routesdk.CreateOrganizationRequest{Name: "Home"})
	require.NoError(t, err)
	other, err := ac.CreateOrganization(ctx, routesdk.CreateOrganizationRequest{Name: "Other"})
	require.NoError(t, err)

	loc, err := ac.CreateLocation(ctx, routesdk.CreateLocationRequest{
		OrganizationID: home.ID,
		LocationFields: routesdk.LocationFields{
			Name: "Depot", Type: "commercial", AddressLine1: "1 Main St",
			City: "Springfield", State: "IL", PostalCode: "62701",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "US", loc.Country)
	require.True(t, loc.IsActive)

	resp := srv.raw(t, alice, http.MethodPut, "/v1/locations/"+loc.ID, map[string]any{
		"name":            "Main Depot",
		"organization_id": other.ID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got, err := ac.GetLocation(ctx, loc.ID)
	require.NoError(t, err)
	require.Equal(t, "Main Depot", got.Name)
	require.Equal(t, home.ID, got.OrganizationID)

	otherList, err := ac.ListLocations(ctx, other.ID)
	require.NoError(t, err)
	require.Empty(t, otherList)
}

func TestLocationImport(t *testing.T) {
	srv := newTestServer(t)
	ctx := t.Context()
	ac := srv.as(t, alice)

	org, err := ac.CreateOrganization(ctx, routesdk.CreateOrganizationRequest{Name: "Acme"})
	require.NoError(t, err)

	t.Run("csv", func(t *testing.T) {
		csv := strings.Join([]string{
			"name,type,address_line1,city,state,postal_code,latitude",
			"Alpha,residential,1 Main St,Springfield,IL,62701,39.8",
			"Bravo,warehouse,2 Main St,Springfield,IL,62701,",
			`"Charlie, Jr",Commercial,3 Main St,Springfield,IL,62701,`,
		}, "\n")

		res, err := ac.ImportLocationsCSV(ctx, org.ID, strings.NewReader(csv))
		require.NoError(t, err)
		require.Equal(t, 2, res.Success)
		require.Equal(t, 1, res.Failed)
		require.Len(t, res.Errors, 1)
		require.Equal(t, 2, res.Errors[0].Row)
		require.Equal(t, "Bravo", res.Errors[0].Data.Name)
		require.Equal(t, `Invalid type. Must be "residential" or "commercial"`, res.Errors[0].Error)
	})

	t.Run("csv with malformed rows", func(t *testing.T) {
		csv := strings.Join([]string{
			"name,type,address_line1,city,state,postal_code",
			`Golf,residential,5" Oak St,Springfield,IL,62701`,
			"Hotel,residential,6 Oak St, Unit 2,Springfield,IL,62701",
			"India,residential,7 Oak St,Springfield,IL,62701",
		}, "\n")

		res, err := ac.ImportLocationsCSV(ctx, org.ID, strings.NewReader(csv))
		require.NoError(t, err)
		require.Equal(t, 2, res.Success)
		require.Equal(t, 1, res.Failed)
		require.Len(t, res.Errors, 1)
		require.Equal(t, 2, res.Errors[0].Row)
		require.Equal(t, "Hotel", res.Errors[0].Data.Name)
		require.Contains(t, res.Errors[0].Error, "malformed CSV record")

		list, err := ac.ListLocations(ctx, org.ID)
		require.NoError(t, err)
		var streets []string
		for _, l := range list {
			streets = append(streets, l.AddressLine1)
		}
		require.Contains(t, streets, `5" Oak St`)
		require.NotContains(t, streets, "6 Oak St")
	})

	t.Run("json", func(t *testing.T) {
		res, err := ac.ImportLocations(ctx, routesdk.ImportLocationsRequest{
			OrganizationID: org.ID,
			Locations: []routesdk.LocationFields{
				{Name: "Delta", Type: "residential", AddressLine1: "4 Main St", City: "Springfield", State: "IL", PostalCode: "62701"},
				{Name: "Echo", Type: "residential"},
			},
		})
		require.NoError(t, err)
		require.Equal(t, 1, res.Success)
		require.Equal(t, 1, res.Failed)
		require.Equal(t, 2, res.Errors[0].Row)
		require.Equal(t, "Missing required fields", res.Errors[0].Error)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ac.ImportLocations(ctx, routesdk.ImportLocationsRequest{OrganizationID: org.ID})
		requireAPIError(t, err, http.StatusBadRequest, "locations array is required")
	})

	t.Run("non-member", func(t *testing.T) {
		_, err := srv.as(t, mallory).ImportLocations(ctx, routesdk.ImportLocationsRequest{
			OrganizationID: org.ID,
			Locations:      []routesdk.LocationFields{{Name: "Foxtrot"}},
		})
		requireAPIError(t, err, http.StatusForbidden, "")
	})

	list, err := ac.ListLocations(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, list, 5)
}

func TestGeocoding(t *testing.T) {
	srv := newTestServer(t)
	ctx := t.Context()
	ac := srv.as(t, alice)

	org, err := ac.CreateOrganization(ctx, routesdk.CreateOrganizationRequest{Name: "Acme"})
	require.NoError(t, err)

	create := func(street string) routesdk.Location {
		l, err := ac.CreateLocation(ctx, routesdk.CreateLocationRequest{
			OrganizationID: org.ID,
			LocationFields: routesdk.LocationFields{
				Name: street, Type: "residential", AddressLine1: street,
				City: "Springfield", State: "IL", PostalCode: "62701",
			},
		})
		require.NoError(t, err)
		return *l
	}
	known, unknown := create("1 Main St"), create("99 Nowhere Rd")

	got, err := ac.GeocodeLocation(ctx, known.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Latitude)
	require.InDelta(t, 39.8, *got.Latitude, 1e-9)

	_, err = ac.GeocodeLocation(ctx, unknown.ID)
	requireAPIError(t, err, http.StatusBadRequest, "Could not geocode address")

	res, err := ac.GeocodeLocations(ctx, []string{unknown.ID, known.ID, unknown.ID})
	require.NoError(t, err)
	require.Equal(t, 1, res.Success)
	require.Equal(t, 1, res.Failed)
	require.Equal(t, []routesdk.GeocodeItemError{{ID: unknown.ID, Error: "Could not geocode address"}}, res.Errors)

	_, err = srv.as(t, mallory).GeocodeLocations(ctx, []string{known.ID})
	requireAPIError(t, err, http.StatusForbidden, "Access denied to one or more locations")

	_, err = ac.GeocodeLocations(ctx, nil)
	requireAPIError(t, err, http.StatusBadRequest, "ids array is required")
}

func TestTechnicians(t *testing.T) {
	srv := newTestServer(t)
	ctx := t.Context()
	ac := srv.as(t, alice)

	org, err := ac.CreateOrganization(ctx, routesdk.CreateOrganizationRequest{Name: "Acme"})
	require.NoError(t, err)

	for _, tc := range []struct {
		name string
		kind string
	}{
		{"Ada Lovelace", "employee"},
		{"Grace Hopper", "contractor"},
		{"Alan Turing", "employee"},
	} {
		_, err := ac.CreateTechnician(ctx, routesdk.CreateTechnicianRequest{
			OrganizationID: org.ID, FullName: tc.name, EmploymentType: tc.kind, CostAmount: 40,
		})
		require.NoError(t, err)
	}

	list, err := ac.ListTechnicians(ctx, org.ID, routesdk.TechnicianQuery{EmploymentType: "employee", Sort: "full_name", Dir: "asc"})
	require.NoError(t, err)
	require.Equal(t, 2, list.Count)
	require.Equal(t, "Ada Lovelace", list.Data[0].FullName)
	require.Equal(t, "Alan Turing", list.Data[1].FullName)

	list, err = ac.ListTechnicians(ctx, org.ID, routesdk.TechnicianQuery{Search: "HOPPER"})
	require.NoError(t, err)
	require.Equal(t, 1, list.Count)
	tech := list.Data[0]
	require.Equal(t, "hourly", tech.CostBasis)
	require.Equal(t, "#22C55E", tech.ColorHex)
	require.True(t, tech.Active)

	list, err = ac.ListTechnicians(ctx, org.ID, routesdk.TechnicianQuery{PageSize: 2, Page: 2})
	require.NoError(t, err)
	require.Equal(t, 3, list.Count)
	require.Equal(t, 2, list.TotalPages)
	require.Len(t, list.Data, 1)

	_, err = ac.ListTechnicians(ctx, org.ID, routesdk.TechnicianQuery{EmploymentType: "intern"})
	requireAPIError(t, err, http.StatusBadRequest, "")

	inactive := false
	updated, err := ac.UpdateTechnician(ctx, tech.ID, routesdk.UpdateTechnicianRequest{Active: &inactive})
	require.NoError(t, err)
	require.False(t, updated.Active)

	_, err = srv.as(t, mallory).GetTechnician(ctx, tech.ID)
	requireAPIError(t, err, http.StatusForbidden, "")

	require.NoError(t, ac.DeleteTechnician(ctx, tech.ID))
	_, err = ac.GetTechnician(ctx, tech.ID)
	requireAPIError(t, err, http.StatusNotFound, "technician not found")
}

func TestProjectsAndProfiles(t *testing.T) {
	srv := newTestServer(t)
	ctx := t.Context()
	ac, bc := srv.as(t, alice), srv.as(t, bob)

	org, err := ac.CreateOrganization(ctx, routesdk.CreateOrganizationRequest{Name: "Acme"})
	require.NoError(t, err)
	inv, err := ac.CreateInvitation(ctx, routesdk.CreateInvitationRequest{OrganizationID: org.ID, Email: bob.email})
	require.NoError(t, err)
	_, err = bc.AcceptInvitation(ctx, tokenFromURL(t, inv.InviteURL))
	require.NoError(t, err)

	p, err := bc.CreateProject(ctx, routesdk.CreateProjectRequest{OrganizationID: org.ID, Name: "Spring routes"})
	require.NoError(t, err)
	require.Equal(t, bob.id, p.CreatedBy)

	// Members create, only admins delete.
	err = bc.DeleteProject(ctx, p.ID)
	requireAPIError(t, err, http.StatusForbidden, "")
	require.NoError(t, ac.DeleteProject(ctx, p.ID))

	first := "Bob"
	me, err := bc.UpdateMyProfile(ctx, routesdk.UpdateProfileRequest{FirstName: &first})
	require.NoError(t, err)
	require.Equal(t, bob.email, me.Email)
	require.Equal(t, "Bob", *me.FirstName)

	public, err := ac.GetProfile(ctx, bob.id)
	require.NoError(t, err)
	require.Equal(t, bob.id, public.ID)
	require.Equal(t, "Bob", *public.FirstName)
}
