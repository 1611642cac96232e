package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/notify"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/store"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/store/drivers/sqlite"
	"github.com/aussiebroadwan/routemaker/pkg/geocode"
	"github.com/stretchr/testify/require"
)

var (
	alice   = domain.Identity{UserID: "user-alice", Email: "alice@example.com"}
	bob     = domain.Identity{UserID: "user-bob", Email: "bob@example.com"}
	carol   = domain.Identity{UserID: "user-carol", Email: "carol@example.com"}
	mallory = domain.Identity{UserID: "user-mallory", Email: "mallory@example.com"}
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "service.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

// fakeClock is a settable time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// recordingMailer keeps every message it is asked to send.
type recordingMailer struct {
	mu   sync.Mutex
	sent []notify.InvitationEmail
	err  error
}

func (m *recordingMailer) SendInvitation(_ context.Context, msg notify.InvitationEmail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return m.err
}

func (m *recordingMailer) Sent() []notify.InvitationEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]notify.InvitationEmail(nil), m.sent...)
}

// fakeGeocoder answers from a fixed table keyed by formatted address.
// Unknown addresses resolve to nothing.
type fakeGeocoder struct {
	mu      sync.Mutex
	results map[string]geocode.Coordinates
	errs    map[string]error
	calls   []string
}

func (g *fakeGeocoder) Geocode(_ context.Context, address string) (*geocode.Coordinates, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, address)

	if err, ok := g.errs[address]; ok {
		return nil, err
	}
	if c, ok := g.results[address]; ok {
		return &c, nil
	}
	return nil, nil
}

// fixture wires every service to one store and clock.
type fixture struct {
	store       store.Store
	clock       *fakeClock
	mailer      *recordingMailer
	geocoder    *fakeGeocoder
	orgs        *OrganizationService
	invites     *InvitationService
	profiles    *ProfileService
	projects    *ProjectService
	locations   *LocationService
	technicians *TechnicianService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st := newTestStore(t)
	clock := newFakeClock()
	mailer := &recordingMailer{}
	geo := &fakeGeocoder{results: map[string]geocode.Coordinates{}, errs: map[string]error{}}

	return &fixture{
		store:       st,
		clock:       clock,
		mailer:      mailer,
		geocoder:    geo,
		orgs:        &OrganizationService{Store: st, Now: clock.Now},
		invites:     &InvitationService{Store: st, Mailer: mailer, BaseURL: "https://app.example.com/", Now: clock.Now},
		profiles:    &ProfileService{Store: st, Now: clock.Now},
		projects:    &ProjectService{Store: st, Now: clock.Now},
		locations:   &LocationService{Store: st, Geocoder: geo, Concurrency: 2, Now: clock.Now},
		technicians: &TechnicianService{Store: st, Now: clock.Now},
	}
}

// join invites who into org with role on behalf of inviter and accepts it.
func (f *fixture) join(t *testing.T, inviter domain.Identity, orgID string, who domain.Identity, role domain.Role) {
	t.Helper()
	ctx := context.Background()

	res, err := f.invites.Create(ctx, inviter, domain.InvitationInput{OrganizationID: orgID, Email: who.Email, Role: role})
	require.NoError(t, err)
	_, err = f.invites.Accept(ctx, who, res.Invitation.Token)
	require.NoError(t, err)
}

func (f *fixture) createOrg(t *testing.T, owner domain.Identity, name string) domain.Organization {
	t.Helper()

	org, err := f.orgs.Create(context.Background(), owner, domain.OrganizationInput{Name: name})
	require.NoError(t, err)
	return org
}

func ptr[T any](v T) *T { return &v }
