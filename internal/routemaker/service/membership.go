package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/store"
	"github.com/aussiebroadwan/routemaker/pkg/slogx"
)

// MembershipService answers "what may this user do in this organization".
// It never mutates anything.
type MembershipService struct {
	Store store.Store
}

// ResolveRole returns userID's role in orgID.
func (s *MembershipService) ResolveRole(ctx context.Context, userID, orgID string) (domain.Role, error) {
	return resolveRole(ctx, s.Store, userID, orgID)
}

// RequireRole returns userID's role in orgID if it is at least min.
func (s *MembershipService) RequireRole(ctx context.Context, userID, orgID string, min domain.Role) (domain.Role, error) {
	return requireRole(ctx, s.Store, userID, orgID, min)
}

// resolveRole works against either the root store or a transaction.
func resolveRole(ctx context.Context, st store.Store, userID, orgID string) (domain.Role, error) {
	log := slogx.FromContext(ctx)

	if userID == "" || orgID == "" {
		return "", ErrNotAMember
	}

	m, err := st.Members().GetMembership(ctx, orgID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrNotAMember
		}
		log.Error("failed to resolve membership",
			slog.String("organization_id", orgID),
			slog.Any("error", err),
		)
		return "", err
	}

	if !m.Role.Valid() {
		log.Warn("membership carries an unknown role",
			slog.String("organization_id", orgID),
			slog.String("membership_id", m.ID),
			slog.String("role", string(m.Role)),
		)
		return "", ErrInvalidRole
	}
	return m.Role, nil
}

func requireRole(ctx context.Context, st store.Store, userID, orgID string, min domain.Role) (domain.Role, error) {
	role, err := resolveRole(ctx, st, userID, orgID)
	if err != nil {
		return "", err
	}
	if !role.Meets(min) {
		slogx.FromContext(ctx).Warn("role check denied",
			slog.String("organization_id", orgID),
			slog.String("role", role.String()),
			slog.String("required", min.String()),
		)
		return "", ErrInsufficientRole
	}
	return role, nil
}
