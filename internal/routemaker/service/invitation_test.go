package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
	"github.com/aussiebroadwan/routemaker/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestInvitationAcmeScenario(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	org := f.createOrg(t, alice, "Acme")

	// Alice invites Bob as an admin.
	res, err := f.invites.Create(ctx, alice, domain.InvitationInput{
		OrganizationID: org.ID,
		Email:          " Bob@Example.com ",
		Role:           domain.RoleAdmin,
	})
	require.NoError(t, err)
	require.False(t, res.Resent)
	require.Equal(t, "bob@example.com", res.Invitation.Email)
	require.Equal(t, domain.InvitationPending, res.Invitation.Status)
	require.Equal(t, f.clock.Now().Add(domain.DefaultInvitationTTL), res.Invitation.ExpiresAt)

	sent := f.mailer.Sent()
	require.Len(t, sent, 1)
	require.Equal(t, "bob@example.com", sent[0].To)
	require.Equal(t, "Acme", sent[0].OrganizationName)
	require.Equal(t, "https://app.example.com/invite/"+res.Invitation.Token, sent[0].InviteURL)

	// Bob previews and accepts.
	details, err := f.invites.GetByToken(ctx, res.Invitation.Token)
	require.NoError(t, err)
	require.Equal(t, "Acme", details.OrganizationName)
	require.Equal(t, domain.RoleAdmin, details.Role)

	accepted, err := f.invites.Accept(ctx, bob, res.Invitation.Token)
	require.NoError(t, err)
	require.Equal(t, org.ID, accepted.OrganizationID)
	require.Equal(t, domain.RoleAdmin, accepted.Role)

	// Bob can now invite, but not owners.
	_, err = f.invites.Create(ctx, bob, domain.InvitationInput{OrganizationID: org.ID, Email: carol.Email})
	require.NoError(t, err)
	_, err = f.invites.Create(ctx, bob, domain.InvitationInput{OrganizationID: org.ID, Email: "dave@example.com", Role: domain.RoleOwner})
	require.ErrorIs(t, err, ErrInsufficientRole)

	// Inviting an existing member is a conflict.
	_, err = f.invites.Create(ctx, alice, domain.InvitationInput{OrganizationID: org.ID, Email: "BOB@example.com"})
	require.ErrorIs(t, err, ErrAlreadyMember)

	// The accepted invitation is gone from the admin listing; Carol's is there.
	list, err := f.invites.ListForOrganization(ctx, alice, org.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, carol.Email, list[0].Email)
	require.Equal(t, domain.RoleMember, list[0].Role)
}

func TestInvitationCreateRules(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	org := f.createOrg(t, alice, "Acme")
	f.join(t, alice, org.ID, carol, domain.RoleMember)

	t.Run("members cannot invite", func(t *testing.T) {
		_, err := f.invites.Create(ctx, carol, domain.InvitationInput{OrganizationID: org.ID, Email: bob.Email})
		require.ErrorIs(t, err, ErrInsufficientRole)
	})

	t.Run("outsiders cannot invite", func(t *testing.T) {
		_, err := f.invites.Create(ctx, mallory, domain.InvitationInput{OrganizationID: org.ID, Email: bob.Email})
		require.ErrorIs(t, err, ErrNotAMember)
	})

	t.Run("email must be an address", func(t *testing.T) {
		for _, email := range []string{"", "not-an-email", "Bob <bob@example.com>"} {
			_, err := f.invites.Create(ctx, alice, domain.InvitationInput{OrganizationID: org.ID, Email: email})
			require.ErrorIs(t, err, ErrValidation, "email %q", email)
		}
	})

	t.Run("resend keeps the token", func(t *testing.T) {
		first, err := f.invites.Create(ctx, alice, domain.InvitationInput{OrganizationID: org.ID, Email: bob.Email})
		require.NoError(t, err)

		second, err := f.invites.Create(ctx, alice, domain.InvitationInput{OrganizationID: org.ID, Email: "BOB@example.com"})
		require.NoError(t, err)
		require.True(t, second.Resent)
		require.Equal(t, first.Invitation.ID, second.Invitation.ID)
		require.Equal(t, first.Invitation.Token, second.Invitation.Token)

		list, err := f.invites.ListForOrganization(ctx, alice, org.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("an overdue invitation is replaced", func(t *testing.T) {
		first, err := f.invites.Create(ctx, alice, domain.InvitationInput{OrganizationID: org.ID, Email: "erin@example.com"})
		require.NoError(t, err)

		f.clock.Advance(domain.DefaultInvitationTTL + time.Minute)

		second, err := f.invites.Create(ctx, alice, domain.InvitationInput{OrganizationID: org.ID, Email: "erin@example.com"})
		require.NoError(t, err)
		require.False(t, second.Resent)
		require.NotEqual(t, first.Invitation.Token, second.Invitation.Token)

		old, err := f.store.Invitations().GetInvitationByID(ctx, first.Invitation.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationExpired, old.Status)
	})

	t.Run("mail failures do not fail the invite", func(t *testing.T) {
		f.mailer.err = errors.New("smtp down")
		defer func() { f.mailer.err = nil }()

		res, err := f.invites.Create(ctx, alice, domain.InvitationInput{OrganizationID: org.ID, Email: "frank@example.com"})
		require.NoError(t, err)
		require.NotEmpty(t, res.Invitation.Token)
	})
}

func TestInvitationAccept(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	org := f.createOrg(t, alice, "Acme")
	invite := func(email string, role domain.Role) domain.Invitation {
		t.Helper()
		res, err := f.invites.Create(ctx, alice, domain.InvitationInput{OrganizationID: org.ID, Email: email, Role: role})
		require.NoError(t, err)
		return res.Invitation
	}

	t.Run("unknown tokens are not found", func(t *testing.T) {
		_, err := f.invites.Accept(ctx, bob, "no-such-token")
		require.ErrorIs(t, err, ErrInvitationNotFound)
		_, err = f.invites.GetByToken(ctx, "no-such-token")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("identity without email is rejected", func(t *testing.T) {
		inv := invite(bob.Email, domain.RoleMember)
		_, err := f.invites.Accept(ctx, domain.Identity{UserID: bob.UserID}, inv.Token)
		require.ErrorIs(t, err, ErrNoIdentityEmail)
	})

	t.Run("another address cannot accept", func(t *testing.T) {
		inv := invite(bob.Email, domain.RoleMember)
		_, err := f.invites.Accept(ctx, mallory, inv.Token)
		require.ErrorIs(t, err, ErrEmailMismatch)

		d, err := f.invites.GetByToken(ctx, inv.Token)
		require.NoError(t, err)
		require.True(t, d.IsPending())
	})

	t.Run("second accept fails without a duplicate membership", func(t *testing.T) {
		inv := invite(bob.Email, domain.RoleMember)
		_, err := f.invites.Accept(ctx, bob, inv.Token)
		require.NoError(t, err)

		_, err = f.invites.Accept(ctx, bob, inv.Token)
		require.ErrorIs(t, err, ErrInvitationInvalid)
		_, err = f.invites.GetByToken(ctx, inv.Token)
		require.ErrorIs(t, err, ErrInvitationInvalid)

		members, err := f.orgs.ListMembers(ctx, alice, org.ID)
		require.NoError(t, err)
		require.Len(t, members, 2)

		stored, err := f.store.Invitations().GetInvitationByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationAccepted, stored.Status)
		require.NotNil(t, stored.AcceptedBy)
		require.Equal(t, bob.UserID, *stored.AcceptedBy)
	})

	t.Run("expired invitations cannot be accepted", func(t *testing.T) {
		inv := invite(carol.Email, domain.RoleMember)
		f.clock.Advance(domain.DefaultInvitationTTL + time.Second)

		_, err := f.invites.Accept(ctx, carol, inv.Token)
		require.ErrorIs(t, err, ErrInvitationExpired)

		stored, err := f.store.Invitations().GetInvitationByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationExpired, stored.Status)

		_, err = f.invites.GetByToken(ctx, inv.Token)
		require.ErrorIs(t, err, ErrInvitationExpired)

		_, err = (&MembershipService{Store: f.store}).ResolveRole(ctx, carol.UserID, org.ID)
		require.ErrorIs(t, err, ErrNotAMember)
	})

	t.Run("revoked invitations cannot be accepted", func(t *testing.T) {
		inv := invite("grace@example.com", domain.RoleMember)
		require.NoError(t, f.invites.Revoke(ctx, alice, inv.ID))

		grace := domain.Identity{UserID: "user-grace", Email: "grace@example.com"}
		_, err := f.invites.Accept(ctx, grace, inv.Token)
		require.ErrorIs(t, err, ErrInvitationInvalid)
	})

	t.Run("accepting a higher role raises an existing membership", func(t *testing.T) {
		other := f.createOrg(t, mallory, "Other")
		f.join(t, mallory, other.ID, carol, domain.RoleMember)

		res, err := f.invites.Create(ctx, mallory, domain.InvitationInput{OrganizationID: other.ID, Email: "carol-alt@example.com", Role: domain.RoleAdmin})
		require.NoError(t, err)

		// Carol signs in with a second address that was invited separately.
		alt := domain.Identity{UserID: carol.UserID, Email: "carol-alt@example.com"}
		got, err := f.invites.Accept(ctx, alt, res.Invitation.Token)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, got.Role)

		role, err := (&MembershipService{Store: f.store}).ResolveRole(ctx, carol.UserID, other.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, role)
	})
}

func TestInvitationRevoke(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	org := f.createOrg(t, alice, "Acme")
	f.join(t, alice, org.ID, carol, domain.RoleMember)

	res, err := f.invites.Create(ctx, alice, domain.InvitationInput{OrganizationID: org.ID, Email: bob.Email})
	require.NoError(t, err)

	require.ErrorIs(t, f.invites.Revoke(ctx, carol, res.Invitation.ID), ErrInsufficientRole)
	require.ErrorIs(t, f.invites.Revoke(ctx, mallory, res.Invitation.ID), ErrNotAMember)
	require.ErrorIs(t, f.invites.Revoke(ctx, alice, "missing"), ErrInvitationNotFound)
	require.NoError(t, f.invites.Revoke(ctx, alice, res.Invitation.ID))

	list, err := f.invites.ListForOrganization(ctx, alice, org.ID)
	require.NoError(t, err)
	require.Empty(t, list)

	// A fresh invite is allowed once the old one is revoked.
	again, err := f.invites.Create(ctx, alice, domain.InvitationInput{OrganizationID: org.ID, Email: bob.Email})
	require.NoError(t, err)
	require.False(t, again.Resent)
	require.NotEqual(t, res.Invitation.Token, again.Invitation.Token)
}

func TestHousekeepingSweep(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	org := f.createOrg(t, alice, "Acme")
	for _, email := range []string{"a@example.com", "b@example.com"} {
		_, err := f.invites.Create(ctx, alice, domain.InvitationInput{OrganizationID: org.ID, Email: email})
		require.NoError(t, err)
	}

	hk := NewHousekeepingService(f.store, slogx.Discard(), time.Hour)
	hk.Now = f.clock.Now

	require.Zero(t, hk.Sweep(ctx))

	f.clock.Advance(domain.DefaultInvitationTTL + time.Minute)
	require.EqualValues(t, 2, hk.Sweep(ctx))
	require.Zero(t, hk.Sweep(ctx))

	list, err := f.invites.ListForOrganization(ctx, alice, org.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, inv := range list {
		require.Equal(t, domain.InvitationExpired, inv.Status)
	}
}

func TestHousekeepingStartStop(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	hk := NewHousekeepingService(f.store, slogx.Discard(), 10*time.Millisecond)
	hk.Start()
	time.Sleep(30 * time.Millisecond)
	hk.Stop()
}
