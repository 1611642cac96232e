// Package storetest is a conformance suite run against every store driver.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/store"
	"github.com/aussiebroadwan/routemaker/pkg/cryptox"
	"github.com/aussiebroadwan/routemaker/pkg/idx"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Factory returns a fresh, migrated store for one test.
type Factory func(t *testing.T) store.Store

// Run executes the suite against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("organizations", func(t *testing.T) { testOrganizations(t, newStore(t)) })
	t.Run("members", func(t *testing.T) { testMembers(t, newStore(t)) })
	t.Run("invitations", func(t *testing.T) { testInvitations(t, newStore(t)) })
	t.Run("profiles", func(t *testing.T) { testProfiles(t, newStore(t)) })
	t.Run("locations", func(t *testing.T) { testLocations(t, newStore(t)) })
	t.Run("technicians", func(t *testing.T) { testTechnicians(t, newStore(t)) })
	t.Run("transactions", func(t *testing.T) { testTransactions(t, newStore(t)) })
	t.Run("organization lock", func(t *testing.T) { testOrganizationLock(t, newStore(t)) })
}

var epoch = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// SeedOrganization inserts an organization with ownerID as its owner.
func SeedOrganization(t *testing.T, s store.Store, name, slug, ownerID string) domain.Organization {
	t.Helper()
	ctx := context.Background()

	org := domain.Organization{
		ID:        idx.New().String(),
		Name:      name,
		Slug:      slug,
		Settings:  map[string]any{},
		CreatedBy: ownerID,
		CreatedAt: epoch,
		UpdatedAt: epoch,
	}
	require.NoError(t, s.Organizations().CreateOrganization(ctx, org))
	SeedMember(t, s, org.ID, ownerID, domain.RoleOwner)
	return org
}

// SeedMember inserts a membership.
func SeedMember(t *testing.T, s store.Store, orgID, userID string, role domain.Role) domain.Membership {
	t.Helper()

	m := domain.Membership{
		ID:             idx.New().String(),
		OrganizationID: orgID,
		UserID:         userID,
		Role:           role,
		CreatedAt:      epoch,
		UpdatedAt:      epoch,
	}
	require.NoError(t, s.Members().CreateMembership(context.Background(), m))
	return m
}

func newInvitation(orgID, email, invitedBy string, expiresAt time.Time) domain.Invitation {
	return domain.Invitation{
		ID:             idx.New().String(),
		OrganizationID: orgID,
		Email:          email,
		Role:           domain.RoleMember,
		InvitedBy:      invitedBy,
		Token:          cryptox.MustGenerateToken(cryptox.TokenSize256),
		Status:         domain.InvitationPending,
		ExpiresAt:      expiresAt,
		CreatedAt:      epoch,
		UpdatedAt:      epoch,
	}
}

func testOrganizations(t *testing.T, s store.Store) {
	ctx := context.Background()
	alice := uuid.NewString()

	zeta := SeedOrganization(t, s, "Zeta Lawns", "zeta-lawns", alice)
	acme := SeedOrganization(t, s, "Acme", "acme", alice)

	exists, err := s.Organizations().SlugExists(ctx, "acme")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = s.Organizations().SlugExists(ctx, "acme-2")
	require.NoError(t, err)
	require.False(t, exists)

	dup := acme
	dup.ID = idx.New().String()
	err = s.Organizations().CreateOrganization(ctx, dup)
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	logo := "https://cdn.example.com/acme.png"
	acme.LogoURL = &logo
	acme.Settings = map[string]any{"timezone": "America/Denver", "max_stops": float64(40)}
	acme.UpdatedAt = epoch.Add(time.Hour)
	require.NoError(t, s.Organizations().UpdateOrganization(ctx, acme))

	got, err := s.Organizations().GetOrganizationByID(ctx, acme.ID)
	require.NoError(t, err)
	require.Equal(t, logo, *got.LogoURL)
	require.Equal(t, "America/Denver", got.Settings["timezone"])
	require.Equal(t, float64(40), got.Settings["max_stops"])
	require.WithinDuration(t, epoch.Add(time.Hour), got.UpdatedAt, time.Second)

	orgs, err := s.Organizations().ListOrganizationsForUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, orgs, 2)
	require.Equal(t, "Acme", orgs[0].Name)
	require.Equal(t, zeta.ID, orgs[1].ID)
	require.Equal(t, domain.RoleOwner, orgs[0].Role)

	none, err := s.Organizations().ListOrganizationsForUser(ctx, uuid.NewString())
	require.NoError(t, err)
	require.Empty(t, none)

	// Deleting cascades to memberships.
	require.NoError(t, s.Organizations().DeleteOrganization(ctx, zeta.ID))
	_, err = s.Members().GetMembership(ctx, zeta.ID, alice)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.Organizations().DeleteOrganization(ctx, zeta.ID), store.ErrNotFound)

	_, err = s.Organizations().GetOrganizationByID(ctx, zeta.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testMembers(t *testing.T, s store.Store) {
	ctx := context.Background()
	alice, bob := uuid.NewString(), uuid.NewString()
	org := SeedOrganization(t, s, "Acme", "acme", alice)

	_, err := s.Profiles().EnsureProfile(ctx, bob, "Bob@Example.com", epoch)
	require.NoError(t, err)

	bobM := SeedMember(t, s, org.ID, bob, domain.RoleMember)

	err = s.Members().CreateMembership(ctx, domain.Membership{
		ID: idx.New().String(), OrganizationID: org.ID, UserID: bob, Role: domain.RoleAdmin,
		CreatedAt: epoch, UpdatedAt: epoch,
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	n, err := s.Members().CountOwners(ctx, org.ID)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	require.NoError(t, s.Members().UpdateMembershipRole(ctx, bobM.ID, domain.RoleOwner, epoch.Add(time.Minute)))
	n, err = s.Members().CountOwners(ctx, org.ID)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	isMember, err := s.Members().IsEmailMember(ctx, org.ID, "BOB@example.com")
	require.NoError(t, err)
	require.True(t, isMember)

	isMember, err = s.Members().IsEmailMember(ctx, org.ID, "carol@example.com")
	require.NoError(t, err)
	require.False(t, isMember)

	members, err := s.Members().ListMembers(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	var bobRow domain.Member
	for _, m := range members {
		if m.UserID == bob {
			bobRow = m
		}
	}
	require.Equal(t, "bob@example.com", bobRow.Email)
	require.Equal(t, domain.RoleOwner, bobRow.Role)

	require.NoError(t, s.Members().DeleteMembership(ctx, bobM.ID))
	require.ErrorIs(t, s.Members().DeleteMembership(ctx, bobM.ID), store.ErrNotFound)
	require.ErrorIs(t, s.Members().UpdateMembershipRole(ctx, bobM.ID, domain.RoleAdmin, epoch), store.ErrNotFound)
}

func testInvitations(t *testing.T, s store.Store) {
	ctx := context.Background()
	alice, bob := uuid.NewString(), uuid.NewString()
	org := SeedOrganization(t, s, "Acme", "acme", alice)
	now := epoch.Add(24 * time.Hour)

	inv := newInvitation(org.ID, "bob@example.com", alice, now.Add(7*24*time.Hour))
	require.NoError(t, s.Invitations().CreateInvitation(ctx, inv))

	// Only one pending invitation per (organization, email).
	second := newInvitation(org.ID, "bob@example.com", alice, now.Add(time.Hour))
	require.ErrorIs(t, s.Invitations().CreateInvitation(ctx, second), store.ErrAlreadyExists)

	pending, err := s.Invitations().GetPendingInvitation(ctx, org.ID, "bob@example.com")
	require.NoError(t, err)
	require.Equal(t, inv.Token, pending.Token)

	details, err := s.Invitations().GetInvitationByToken(ctx, inv.Token)
	require.NoError(t, err)
	require.Equal(t, "Acme", details.OrganizationName)
	require.Equal(t, inv.ID, details.ID)

	_, err = s.Invitations().GetInvitationByToken(ctx, "nope")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Not yet overdue, so expiring is a no-op.
	changed, err := s.Invitations().ExpireInvitation(ctx, inv.ID, now)
	require.NoError(t, err)
	require.False(t, changed)

	ok, err := s.Invitations().AcceptInvitation(ctx, inv.ID, bob, now)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.Invitations().AcceptInvitation(ctx, inv.ID, bob, now)
	require.NoError(t, err)
	require.False(t, ok, "second accept must not match")

	got, err := s.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationAccepted, got.Status)
	require.Equal(t, bob, *got.AcceptedBy)
	require.NotNil(t, got.AcceptedAt)

	// The accepted row no longer blocks a new pending invitation.
	require.NoError(t, s.Invitations().CreateInvitation(ctx, second))

	// An overdue pending invitation cannot be accepted and is swept.
	stale := newInvitation(org.ID, "carol@example.com", alice, now.Add(-time.Minute))
	require.NoError(t, s.Invitations().CreateInvitation(ctx, stale))

	ok, err = s.Invitations().AcceptInvitation(ctx, stale.ID, bob, now)
	require.NoError(t, err)
	require.False(t, ok)

	n, err := s.Invitations().ExpireOverdueInvitations(ctx, now)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	n, err = s.Invitations().ExpireOverdueInvitations(ctx, now)
	require.NoError(t, err)
	require.Zero(t, n)

	list, err := s.Invitations().ListInvitations(ctx, org.ID,
		[]domain.InvitationStatus{domain.InvitationPending, domain.InvitationExpired})
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NoError(t, s.Invitations().RevokeInvitation(ctx, stale.ID, now))
	got, err = s.Invitations().GetInvitationByID(ctx, stale.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationRevoked, got.Status)
	require.ErrorIs(t, s.Invitations().RevokeInvitation(ctx, idx.New().String(), now), store.ErrNotFound)
}

func testProfiles(t *testing.T, s store.Store) {
	ctx := context.Background()
	id := uuid.NewString()

	_, err := s.Profiles().GetProfile(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)

	p, err := s.Profiles().EnsureProfile(ctx, id, " Dana@Example.com ", epoch)
	require.NoError(t, err)
	require.Equal(t, "dana@example.com", p.Email)

	// An empty email never clobbers a known one.
	p, err = s.Profiles().EnsureProfile(ctx, id, "", epoch.Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, "dana@example.com", p.Email)

	first := "Dana"
	p.FirstName = &first
	p.UpdatedAt = epoch.Add(2 * time.Hour)
	require.NoError(t, s.Profiles().UpdateProfile(ctx, p))

	p, err = s.Profiles().EnsureProfile(ctx, id, "dana@new.example.com", epoch.Add(3*time.Hour))
	require.NoError(t, err)
	require.Equal(t, "dana@new.example.com", p.Email)
	require.Equal(t, "Dana", *p.FirstName)
}

func testLocations(t *testing.T, s store.Store) {
	ctx := context.Background()
	alice := uuid.NewString()
	org := SeedOrganization(t, s, "Acme", "acme", alice)

	mk := func(name string) domain.Location {
		l := domain.Location{
			ID:             idx.New().String(),
			OrganizationID: org.ID,
			Name:           name,
			Type:           domain.LocationResidential,
			AddressLine1:   "1 Main St",
			City:           "Boulder",
			State:          "CO",
			PostalCode:     "80301",
			Country:        domain.DefaultCountry,
			IsActive:       true,
			CreatedAt:      epoch,
			UpdatedAt:      epoch,
		}
		require.NoError(t, s.Locations().CreateLocation(ctx, l))
		return l
	}
	a, b := mk("B House"), mk("A House")

	list, err := s.Locations().ListLocations(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, b.ID, list[0].ID)

	require.NoError(t, s.Locations().UpdateLocationCoordinates(ctx, a.ID, 40.01, -105.27, epoch.Add(time.Hour)))
	got, err := s.Locations().GetLocationByID(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, got.HasCoordinates())
	require.InDelta(t, 40.01, *got.Latitude, 1e-9)
	require.Nil(t, got.AddressLine2)

	found, err := s.Locations().GetLocationsByIDs(ctx, []string{a.ID, b.ID, idx.New().String()})
	require.NoError(t, err)
	require.Len(t, found, 2)

	got.IsActive = false
	got.Name = "Renamed"
	require.NoError(t, s.Locations().UpdateLocation(ctx, got))
	got, err = s.Locations().GetLocationByID(ctx, a.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)
	require.Equal(t, "Renamed", got.Name)

	require.NoError(t, s.Locations().DeleteLocation(ctx, a.ID))
	require.ErrorIs(t, s.Locations().DeleteLocation(ctx, a.ID), store.ErrNotFound)
}

func testTechnicians(t *testing.T, s store.Store) {
	ctx := context.Background()
	alice := uuid.NewString()
	org := SeedOrganization(t, s, "Acme", "acme", alice)
	other := SeedOrganization(t, s, "Other", "other", alice)

	mk := func(orgID, name string, et domain.EmploymentType, active bool, offset time.Duration) {
		require.NoError(t, s.Technicians().CreateTechnician(ctx, domain.Technician{
			ID:             idx.New().String(),
			OrganizationID: orgID,
			FullName:       name,
			EmploymentType: et,
			CostBasis:      domain.CostHourly,
			CostAmount:     25,
			ColorHex:       domain.DefaultTechnicianColor,
			Active:         active,
			CreatedBy:      alice,
			CreatedAt:      epoch.Add(offset),
			UpdatedAt:      epoch.Add(offset),
		}))
	}
	mk(org.ID, "Maria Lopez", domain.EmploymentEmployee, true, 1*time.Minute)
	mk(org.ID, "Mario 100%", domain.EmploymentContractor, true, 2*time.Minute)
	mk(org.ID, "Sam Jones", domain.EmploymentContractor, false, 3*time.Minute)
	mk(other.ID, "Maria Other", domain.EmploymentEmployee, true, 4*time.Minute)

	list := func(f domain.TechnicianFilter) ([]domain.Technician, int) {
		items, total, err := s.Technicians().ListTechnicians(ctx, org.ID, f.Normalize())
		require.NoError(t, err)
		return items, total
	}

	items, total := list(domain.TechnicianFilter{})
	require.Equal(t, 3, total)
	require.Equal(t, "Sam Jones", items[0].FullName, "newest first by default")

	items, total = list(domain.TechnicianFilter{Search: "MARI"})
	require.Equal(t, 2, total)
	require.Len(t, items, 2)

	items, total = list(domain.TechnicianFilter{Search: "100%"})
	require.Equal(t, 1, total)
	require.Equal(t, "Mario 100%", items[0].FullName)

	contractor := domain.EmploymentContractor
	active := true
	_, total = list(domain.TechnicianFilter{EmploymentType: &contractor, Active: &active})
	require.Equal(t, 1, total)

	items, total = list(domain.TechnicianFilter{Sort: domain.SortTechnicianFullName, Page: 2, PageSize: 2})
	require.Equal(t, 3, total)
	require.Len(t, items, 1)
	require.Equal(t, "Sam Jones", items[0].FullName)
}

func testTransactions(t *testing.T, s store.Store) {
	ctx := context.Background()
	alice := uuid.NewString()
	org := SeedOrganization(t, s, "Acme", "acme", alice)

	boom := errTest("boom")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Projects().CreateProject(ctx, domain.Project{
			ID: idx.New().String(), OrganizationID: org.ID, Name: "Spring",
			CreatedBy: alice, CreatedAt: epoch, UpdatedAt: epoch,
		}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	projects, err := s.Projects().ListProjects(ctx, org.ID)
	require.NoError(t, err)
	require.Empty(t, projects, "rolled back")

	err = s.WithTx(ctx, func(tx store.Tx) error {
		require.Error(t, tx.WithTx(ctx, func(store.Tx) error { return nil }), "nested tx")
		return tx.Projects().CreateProject(ctx, domain.Project{
			ID: idx.New().String(), OrganizationID: org.ID, Name: "Summer",
			CreatedBy: alice, CreatedAt: epoch, UpdatedAt: epoch,
		})
	})
	require.NoError(t, err)

	projects, err = s.Projects().ListProjects(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
}

// testOrganizationLock holds the lock in one transaction while a second
// transaction waits to count owners. The waiter must see the first
// transaction's delete once it gets the lock.
func testOrganizationLock(t *testing.T, s store.Store) {
	ctx := context.Background()
	alice, bob := uuid.NewString(), uuid.NewString()
	org := SeedOrganization(t, s, "Acme", "acme", alice)
	second := SeedMember(t, s, org.ID, bob, domain.RoleOwner)

	require.ErrorIs(t, s.Organizations().LockOrganization(ctx, uuid.NewString()), store.ErrNotFound)

	tx, err := s.Tx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	require.NoError(t, tx.Organizations().LockOrganization(ctx, org.ID))
	require.NoError(t, tx.Members().DeleteMembership(ctx, second.ID))

	type counted struct {
		n   int
		err error
	}
	done := make(chan counted, 1)
	go func() {
		var n int
		err := s.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Organizations().LockOrganization(ctx, org.ID); err != nil {
				return err
			}
			var err error
			n, err = tx.Members().CountOwners(ctx, org.ID)
			return err
		})
		done <- counted{n: n, err: err}
	}()

	select {
	case got := <-done:
		t.Fatalf("second transaction did not wait for the lock: %+v", got)
	case <-time.After(150 * time.Millisecond):
	}

	require.NoError(t, tx.Commit())

	select {
	case got := <-done:
		require.NoError(t, got.err)
		require.Equal(t, 1, got.n)
	case <-time.After(10 * time.Second):
		t.Fatal("second transaction never got the lock")
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
