package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/store"
	"github.com/aussiebroadwan/routemaker/pkg/idx"
	"github.com/aussiebroadwan/routemaker/pkg/slogx"
	"github.com/gosimple/slug"
)

// maxSlugAttempts bounds the acme, acme-2, acme-3... search.
const maxSlugAttempts = 50

type OrganizationService struct {
	Store store.Store
	Now   func() time.Time
}

// ListForUser returns every organization the caller belongs to, with the
// caller's role, ordered by name.
func (s *OrganizationService) ListForUser(ctx context.Context, actor domain.Identity) ([]domain.OrganizationSummary, error) {
	orgs, err := s.Store.Organizations().ListOrganizationsForUser(ctx, actor.UserID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list organizations", slog.Any("error", err))
		return nil, err
	}
	return orgs, nil
}

// Get returns an organization and the caller's role in it.
func (s *OrganizationService) Get(ctx context.Context, actor domain.Identity, orgID string) (domain.Organization, domain.Role, error) {
	role, err := resolveRole(ctx, s.Store, actor.UserID, orgID)
	if err != nil {
		return domain.Organization{}, "", err
	}

	org, err := s.Store.Organizations().GetOrganizationByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Organization{}, "", ErrOrganizationNotFound
		}
		return domain.Organization{}, "", err
	}
	return org, role, nil
}

// Create makes a new organization with the caller as its only owner.
func (s *OrganizationService) Create(ctx context.Context, actor domain.Identity, in domain.OrganizationInput) (domain.Organization, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return domain.Organization{}, err
	}

	now := nowFrom(s.Now)
	org := domain.Organization{
		ID:        idx.New().String(),
		Name:      in.Name,
		Settings:  map[string]any{},
		CreatedBy: actor.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 2. Profile, organization and owner membership land together
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Profiles().EnsureProfile(ctx, actor.UserID, actor.Email, now); err != nil {
			return err
		}

		slugValue, err := uniqueSlug(ctx, tx, in.Name)
		if err != nil {
			return err
		}
		org.Slug = slugValue

		if err := tx.Organizations().CreateOrganization(ctx, org); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrSlugTaken
			}
			return err
		}

		return tx.Members().CreateMembership(ctx, domain.Membership{
			ID:             idx.New().String(),
			OrganizationID: org.ID,
			UserID:         actor.UserID,
			Role:           domain.RoleOwner,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	})
	if err != nil {
		if !errors.Is(err, ErrConflict) {
			log.Error("failed to create organization", slog.Any("error", err))
		}
		return domain.Organization{}, err
	}

	log.Info("organization created",
		slog.String("organization_id", org.ID),
		slog.String("slug", org.Slug),
	)
	return org, nil
}

// uniqueSlug derives a URL-safe slug from name and suffixes it until it is
// free.
func uniqueSlug(ctx context.Context, st store.Store, name string) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = "org"
	}

	for i := 1; i <= maxSlugAttempts; i++ {
		candidate := base
		if i > 1 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}
		taken, err := st.Organizations().SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", ErrSlugTaken
}

// Update changes name, logo or settings. Admins and owners only.
func (s *OrganizationService) Update(ctx context.Context, actor domain.Identity, orgID string, patch domain.OrganizationPatch) (domain.Organization, error) {
	log := slogx.FromContext(ctx)

	patch.Name = trimmed(patch.Name)
	if err := validateStruct(patch); err != nil {
		return domain.Organization{}, err
	}

	var org domain.Organization
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := requireRole(ctx, tx, actor.UserID, orgID, domain.RoleAdmin); err != nil {
			return err
		}

		var err error
		org, err = tx.Organizations().GetOrganizationByID(ctx, orgID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrOrganizationNotFound
			}
			return err
		}

		if patch.Name != nil {
			org.Name = *patch.Name
		}
		if patch.LogoURL != nil {
			org.LogoURL = blankToNil(patch.LogoURL)
		}
		if patch.Settings != nil {
			org.Settings = *patch.Settings
		}
		org.UpdatedAt = nowFrom(s.Now)

		return tx.Organizations().UpdateOrganization(ctx, org)
	})
	if err != nil {
		return domain.Organization{}, err
	}

	log.Info("organization updated", slog.String("organization_id", orgID))
	return org, nil
}

// Delete removes the organization and everything it owns. Owners only.
func (s *OrganizationService) Delete(ctx context.Context, actor domain.Identity, orgID string) error {
	log := slogx.FromContext(ctx)

	if _, err := requireRole(ctx, s.Store, actor.UserID, orgID, domain.RoleOwner); err != nil {
		return err
	}

	if err := s.Store.Organizations().DeleteOrganization(ctx, orgID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrOrganizationNotFound
		}
		log.Error("failed to delete organization",
			slog.String("organization_id", orgID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("organization deleted", slog.String("organization_id", orgID))
	return nil
}

// ListMembers returns the organization's members with their profile details.
func (s *OrganizationService) ListMembers(ctx context.Context, actor domain.Identity, orgID string) ([]domain.Member, error) {
	if _, err := resolveRole(ctx, s.Store, actor.UserID, orgID); err != nil {
		return nil, err
	}
	return s.Store.Members().ListMembers(ctx, orgID)
}

// UpdateMemberRole changes another member's role. Admins may shuffle
// admins and members; only owners may grant or take away owner.
func (s *OrganizationService) UpdateMemberRole(ctx context.Context, actor domain.Identity, orgID, memberID string, role domain.Role) (domain.Membership, error) {
	log := slogx.FromContext(ctx)

	if !role.Valid() {
		return domain.Membership{}, invalid("role must be one of: owner, admin, member")
	}

	var target domain.Membership
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := lockOrganization(ctx, tx, orgID); err != nil {
			return err
		}

		actorRole, err := requireRole(ctx, tx, actor.UserID, orgID, domain.RoleAdmin)
		if err != nil {
			return err
		}

		target, err = memberInOrg(ctx, tx, orgID, memberID)
		if err != nil {
			return err
		}

		if (role == domain.RoleOwner || target.Role == domain.RoleOwner) && actorRole != domain.RoleOwner {
			return ErrInsufficientRole
		}
		if target.Role == role {
			return nil
		}
		if target.Role == domain.RoleOwner {
			if err := ensureAnotherOwner(ctx, tx, orgID); err != nil {
				return err
			}
		}

		now := nowFrom(s.Now)
		if err := tx.Members().UpdateMembershipRole(ctx, target.ID, role, now); err != nil {
			return err
		}
		log.Info("member role changed",
			slog.String("organization_id", orgID),
			slog.String("membership_id", target.ID),
			slog.String("from", target.Role.String()),
			slog.String("to", role.String()),
		)
		target.Role = role
		target.UpdatedAt = now
		return nil
	})
	if err != nil {
		return domain.Membership{}, err
	}
	return target, nil
}

// RemoveMember deletes another member. Removing an owner takes an owner.
func (s *OrganizationService) RemoveMember(ctx context.Context, actor domain.Identity, orgID, memberID string) error {
	log := slogx.FromContext(ctx)

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := lockOrganization(ctx, tx, orgID); err != nil {
			return err
		}

		actorRole, err := requireRole(ctx, tx, actor.UserID, orgID, domain.RoleAdmin)
		if err != nil {
			return err
		}

		target, err := memberInOrg(ctx, tx, orgID, memberID)
		if err != nil {
			return err
		}

		if target.Role == domain.RoleOwner {
			if actorRole != domain.RoleOwner {
				return ErrInsufficientRole
			}
			if err := ensureAnotherOwner(ctx, tx, orgID); err != nil {
				return err
			}
		}

		if err := tx.Members().DeleteMembership(ctx, target.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrMemberNotFound
			}
			return err
		}

		log.Info("member removed",
			slog.String("organization_id", orgID),
			slog.String("membership_id", target.ID),
		)
		return nil
	})
}

// Leave removes the caller's own membership. The last owner cannot leave.
func (s *OrganizationService) Leave(ctx context.Context, actor domain.Identity, orgID string) error {
	log := slogx.FromContext(ctx)

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := lockOrganization(ctx, tx, orgID); err != nil {
			return err
		}

		m, err := tx.Members().GetMembership(ctx, orgID, actor.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotAMember
			}
			return err
		}

		if m.Role == domain.RoleOwner {
			if err := ensureAnotherOwner(ctx, tx, orgID); err != nil {
				return err
			}
		}

		if err := tx.Members().DeleteMembership(ctx, m.ID); err != nil {
			return err
		}

		log.Info("member left organization", slog.String("organization_id", orgID))
		return nil
	})
}

func memberInOrg(ctx context.Context, st store.Store, orgID, memberID string) (domain.Membership, error) {
	m, err := st.Members().GetMembershipByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Membership{}, ErrMemberNotFound
		}
		return domain.Membership{}, err
	}
	if m.OrganizationID != orgID {
		return domain.Membership{}, ErrMemberNotFound
	}
	return m, nil
}

// lockOrganization serializes membership changes in orgID for the rest of
// tx. A missing organization has no members, so it reads as ErrNotAMember.
func lockOrganization(ctx context.Context, tx store.Tx, orgID string) error {
	if err := tx.Organizations().LockOrganization(ctx, orgID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotAMember
		}
		return err
	}
	return nil
}

// ensureAnotherOwner fails with ErrLastOwner unless orgID has more than one
// owner, so the caller may demote or remove one of them. The caller must
// hold lockOrganization.
func ensureAnotherOwner(ctx context.Context, st store.Store, orgID string) error {
	n, err := st.Members().CountOwners(ctx, orgID)
	if err != nil {
		return err
	}
	if n <= 1 {
		slogx.FromContext(ctx).Warn("refused to drop the last owner",
			slog.String("organization_id", orgID),
		)
		return ErrLastOwner
	}
	return nil
}
