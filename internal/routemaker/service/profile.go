package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/store"
	"github.com/aussiebroadwan/routemaker/pkg/slogx"
)

type ProfileService struct {
	Store store.Store
	Now   func() time.Time
}

// Me returns the caller's profile, creating it on first use and syncing the
// email from the identity.
func (s *ProfileService) Me(ctx context.Context, actor domain.Identity) (domain.Profile, error) {
	p, err := s.Store.Profiles().EnsureProfile(ctx, actor.UserID, actor.Email, nowFrom(s.Now))
	if err != nil {
		slogx.FromContext(ctx).Error("failed to ensure profile", slog.Any("error", err))
		return domain.Profile{}, err
	}
	return p, nil
}

// UpdateMe applies patch to the caller's own profile.
func (s *ProfileService) UpdateMe(ctx context.Context, actor domain.Identity, patch domain.ProfilePatch) (domain.Profile, error) {
	log := slogx.FromContext(ctx)

	if err := validateStruct(patch); err != nil {
		return domain.Profile{}, err
	}

	now := nowFrom(s.Now)
	var p domain.Profile
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		p, err = tx.Profiles().EnsureProfile(ctx, actor.UserID, actor.Email, now)
		if err != nil {
			return err
		}

		if patch.FirstName != nil {
			p.FirstName = blankToNil(patch.FirstName)
		}
		if patch.LastName != nil {
			p.LastName = blankToNil(patch.LastName)
		}
		if patch.AvatarURL != nil {
			p.AvatarURL = blankToNil(patch.AvatarURL)
		}
		if patch.Bio != nil {
			p.Bio = blankToNil(patch.Bio)
		}
		p.UpdatedAt = now

		return tx.Profiles().UpdateProfile(ctx, p)
	})
	if err != nil {
		log.Error("failed to update profile", slog.Any("error", err))
		return domain.Profile{}, err
	}

	log.Info("profile updated")
	return p, nil
}

// Get returns the public part of another user's profile.
func (s *ProfileService) Get(ctx context.Context, userID string) (domain.PublicProfile, error) {
	p, err := s.Store.Profiles().GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.PublicProfile{}, ErrProfileNotFound
		}
		return domain.PublicProfile{}, err
	}
	return p.Public(), nil
}
