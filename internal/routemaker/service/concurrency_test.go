package service

import (
	"context"
	"sync"
	"testing"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/store"
	"github.com/aussiebroadwan/routemaker/pkg/idx"
	"github.com/stretchr/testify/require"
)

const racers = 8

// race runs fn from n goroutines released together and returns their errors
// in launch order.
func race(n int, fn func(i int) error) []error {
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make([]error, n)
	)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			errs[i] = fn(i)
		}()
	}
	close(start)
	wg.Wait()
	return errs
}

func TestConcurrentInvitationCreate(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	org := f.createOrg(t, alice, "Acme")

	results := make([]CreateResult, racers)
	errs := race(racers, func(i int) error {
		var err error
		results[i], err = f.invites.Create(ctx, alice, domain.InvitationInput{
			OrganizationID: org.ID,
			Email:          bob.Email,
			Role:           domain.RoleMember,
		})
		return err
	})

	tokens := map[string]bool{}
	fresh := 0
	for i, err := range errs {
		require.NoError(t, err)
		tokens[results[i].Invitation.Token] = true
		if !results[i].Resent {
			fresh++
		}
	}
	require.Len(t, tokens, 1, "every caller sees the same pending invitation")
	require.Equal(t, 1, fresh)

	pending, err := f.invites.ListForOrganization(ctx, alice, org.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
}

func TestConcurrentInvitationAccept(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	org := f.createOrg(t, alice, "Acme")

	res, err := f.invites.Create(ctx, alice, domain.InvitationInput{OrganizationID: org.ID, Email: bob.Email, Role: domain.RoleAdmin})
	require.NoError(t, err)

	errs := race(racers, func(int) error {
		_, err := f.invites.Accept(ctx, bob, res.Invitation.Token)
		return err
	})

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
			continue
		}
		require.ErrorIs(t, err, ErrInvitationInvalid)
	}
	require.Equal(t, 1, accepted)

	members, err := f.orgs.ListMembers(ctx, alice, org.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
}

func TestConcurrentOwnersLeave(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	org := f.createOrg(t, alice, "Acme")
	f.join(t, alice, org.ID, bob, domain.RoleOwner)

	owners := []domain.Identity{alice, bob}
	errs := race(len(owners), func(i int) error {
		return f.orgs.Leave(ctx, owners[i], org.ID)
	})

	left := 0
	for _, err := range errs {
		if err == nil {
			left++
			continue
		}
		require.ErrorIs(t, err, ErrLastOwner)
	}
	require.Equal(t, 1, left)

	n, err := f.store.Members().CountOwners(ctx, org.ID)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestConcurrentOwnerDemotions(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	org := f.createOrg(t, alice, "Acme")
	f.join(t, alice, org.ID, bob, domain.RoleOwner)

	members, err := f.orgs.ListMembers(ctx, alice, org.ID)
	require.NoError(t, err)
	ids := map[string]string{}
	for _, m := range members {
		ids[m.UserID] = m.ID
	}

	// Each owner demotes the other.
	errs := race(2, func(i int) error {
		actor, target := alice, bob
		if i == 1 {
			actor, target = bob, alice
		}
		_, err := f.orgs.UpdateMemberRole(ctx, actor, org.ID, ids[target.UserID], domain.RoleAdmin)
		return err
	})

	n, err := f.store.Members().CountOwners(ctx, org.ID)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	failed := 0
	for _, err := range errs {
		if err != nil {
			require.ErrorIs(t, err, ErrInsufficientRole)
			failed++
		}
	}
	require.Equal(t, 1, failed)
}

// staleMembers hides existing memberships from GetMembership, as if another
// transaction granted one after this one looked.
type staleMembers struct{ store.Members }

func (staleMembers) GetMembership(context.Context, string, string) (domain.Membership, error) {
	return domain.Membership{}, store.ErrNotFound
}

type staleTx struct{ store.Tx }

func (t staleTx) Members() store.Members { return staleMembers{t.Tx.Members()} }

type staleStore struct{ store.Store }

func (s staleStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error { return fn(staleTx{tx}) })
}

func TestInvitationAcceptMembershipConflict(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	org := f.createOrg(t, alice, "Acme")

	res, err := f.invites.Create(ctx, alice, domain.InvitationInput{OrganizationID: org.ID, Email: bob.Email, Role: domain.RoleMember})
	require.NoError(t, err)

	// bob becomes a member between the lookup and the insert
	require.NoError(t, f.store.Members().CreateMembership(ctx, domain.Membership{
		ID:             idx.New().String(),
		OrganizationID: org.ID,
		UserID:         bob.UserID,
		Role:           domain.RoleMember,
		CreatedAt:      f.clock.Now(),
		UpdatedAt:      f.clock.Now(),
	}))

	invites := &InvitationService{Store: staleStore{f.store}, Mailer: f.mailer, Now: f.clock.Now}
	_, err = invites.Accept(ctx, bob, res.Invitation.Token)
	require.ErrorIs(t, err, ErrAlreadyMember)
	require.ErrorIs(t, err, ErrConflict)

	d, err := f.invites.GetByToken(ctx, res.Invitation.Token)
	require.NoError(t, err)
	require.True(t, d.IsPending(), "the rolled back accept leaves the invitation pending")
}
