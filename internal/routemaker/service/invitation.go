package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/metrics"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/notify"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/store"
	"github.com/aussiebroadwan/routemaker/pkg/cryptox"
	"github.com/aussiebroadwan/routemaker/pkg/idx"
	"github.com/aussiebroadwan/routemaker/pkg/slogx"
)

// InvitationService runs the invitation state machine:
//
//	pending -> accepted | revoked | expired
//
// Expiry happens lazily when an overdue invitation is read, and in bulk
// from the housekeeping worker.
type InvitationService struct {
	Store  store.Store
	Mailer notify.Mailer

	// BaseURL is the web client's origin; invite links are BaseURL/invite/<token>.
	BaseURL string
	TTL     time.Duration
	Now     func() time.Time
}

// CreateResult is a freshly minted or resent invitation.
type CreateResult struct {
	Invitation domain.Invitation
	Resent     bool
}

// AcceptResult names the organization the caller just joined.
type AcceptResult struct {
	OrganizationID string
	Role           domain.Role
}

func (s *InvitationService) ttl() time.Duration {
	if s.TTL <= 0 {
		return domain.DefaultInvitationTTL
	}
	return s.TTL
}

// InviteURL is the link an invitee follows.
func (s *InvitationService) InviteURL(token string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/invite/" + token
}

// normalizeEmail lower-cases and checks an address, rejecting display-name
// forms like "Bob <bob@example.com>".
func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", invalid("email must be a valid email address")
	}
	return email, nil
}

// Create invites email to orgID with role. If a live pending invitation for
// the same address exists it is resent instead and keeps its token.
func (s *InvitationService) Create(ctx context.Context, actor domain.Identity, in domain.InvitationInput) (CreateResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	if in.Role == "" {
		in.Role = domain.RoleMember
	}
	if err := validateStruct(in); err != nil {
		return CreateResult{}, err
	}
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return CreateResult{}, err
	}
	orgID := in.OrganizationID

	// 2. Authorize: admins invite, only owners hand out owner
	actorRole, err := requireRole(ctx, s.Store, actor.UserID, orgID, domain.RoleAdmin)
	if err != nil {
		return CreateResult{}, err
	}
	if in.Role == domain.RoleOwner && actorRole != domain.RoleOwner {
		log.Warn("non-owner attempted to invite an owner",
			slog.String("organization_id", orgID),
		)
		return CreateResult{}, ErrInsufficientRole
	}

	now := nowFrom(s.Now)
	var (
		result  CreateResult
		orgName string
	)

	// 3. Reuse or mint inside one transaction
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		org, err := tx.Organizations().GetOrganizationByID(ctx, orgID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrOrganizationNotFound
			}
			return err
		}
		orgName = org.Name

		member, err := tx.Members().IsEmailMember(ctx, orgID, email)
		if err != nil {
			return err
		}
		if member {
			return ErrAlreadyMember
		}

		existing, err := tx.Invitations().GetPendingInvitation(ctx, orgID, email)
		switch {
		case err == nil && !existing.IsOverdue(now):
			result = CreateResult{Invitation: existing, Resent: true}
			return nil
		case err == nil:
			if _, err := tx.Invitations().ExpireInvitation(ctx, existing.ID, now); err != nil {
				return err
			}
			metrics.RecordInvitation(metrics.InvitationExpired)
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		token, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return err
		}
		inv := domain.Invitation{
			ID:             idx.New().String(),
			OrganizationID: orgID,
			Email:          email,
			Role:           in.Role,
			InvitedBy:      actor.UserID,
			Token:          token,
			Status:         domain.InvitationPending,
			ExpiresAt:      now.Add(s.ttl()),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := tx.Invitations().CreateInvitation(ctx, inv); err != nil {
			return err
		}
		result = CreateResult{Invitation: inv}
		return nil
	})

	// 4. A concurrent create won the partial unique index; resend theirs
	if errors.Is(err, store.ErrAlreadyExists) {
		existing, getErr := s.Store.Invitations().GetPendingInvitation(ctx, orgID, email)
		if getErr != nil {
			return CreateResult{}, getErr
		}
		result, err = CreateResult{Invitation: existing, Resent: true}, nil
	}
	if err != nil {
		if !errors.Is(err, ErrConflict) && !errors.Is(err, ErrNotFound) {
			log.Error("failed to create invitation",
				slog.String("organization_id", orgID),
				slog.Any("error", err),
			)
		}
		return CreateResult{}, err
	}

	event := metrics.InvitationCreated
	if result.Resent {
		event = metrics.InvitationResent
	}
	metrics.RecordInvitation(event)

	log.Info("invitation issued",
		slog.String("invitation_id", result.Invitation.ID),
		slog.String("organization_id", orgID),
		slog.String("role", result.Invitation.Role.String()),
		slog.String("token_fp", cryptox.ShortFingerprint(result.Invitation.Token)),
		slog.Bool("resent", result.Resent),
	)

	// 5. Email is best effort
	s.sendEmail(ctx, result.Invitation, orgName)
	return result, nil
}

func (s *InvitationService) sendEmail(ctx context.Context, inv domain.Invitation, orgName string) {
	if s.Mailer == nil {
		return
	}
	err := s.Mailer.SendInvitation(ctx, notify.InvitationEmail{
		To:               inv.Email,
		OrganizationName: orgName,
		Role:             inv.Role.String(),
		InviteURL:        s.InviteURL(inv.Token),
		ExpiresAt:        inv.ExpiresAt,
	})
	metrics.RecordEmail("invitation", err)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to send invitation email",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
	}
}

// GetByToken returns a still-pending invitation with its organization
// details. Overdue invitations are expired on the spot.
func (s *InvitationService) GetByToken(ctx context.Context, token string) (domain.InvitationDetails, error) {
	log := slogx.FromContext(ctx)

	d, err := s.Store.Invitations().GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.InvitationDetails{}, ErrInvitationNotFound
		}
		log.Error("failed to look up invitation", slog.Any("error", err))
		return domain.InvitationDetails{}, err
	}

	now := nowFrom(s.Now)
	if d.IsOverdue(now) {
		if _, err := s.expire(ctx, s.Store, d.ID, now); err != nil {
			return domain.InvitationDetails{}, err
		}
		return domain.InvitationDetails{}, ErrInvitationExpired
	}
	if !d.IsPending() {
		if d.Status == domain.InvitationExpired {
			return domain.InvitationDetails{}, ErrInvitationExpired
		}
		return domain.InvitationDetails{}, ErrInvitationInvalid
	}
	return d, nil
}

func (s *InvitationService) expire(ctx context.Context, st store.Store, id string, now time.Time) (bool, error) {
	changed, err := st.Invitations().ExpireInvitation(ctx, id, now)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to expire invitation",
			slog.String("invitation_id", id),
			slog.Any("error", err),
		)
		return false, err
	}
	if changed {
		metrics.RecordInvitation(metrics.InvitationExpired)
		slogx.FromContext(ctx).Info("invitation expired", slog.String("invitation_id", id))
	}
	return changed, nil
}

// Accept consumes token for the caller: the invitation is marked accepted
// and the membership granted in one transaction. An existing member keeps
// the higher of their current and the invited role.
func (s *InvitationService) Accept(ctx context.Context, actor domain.Identity, token string) (AcceptResult, error) {
	log := slogx.FromContext(ctx)

	if actor.Email == "" {
		return AcceptResult{}, ErrNoIdentityEmail
	}

	now := nowFrom(s.Now)
	var result AcceptResult
	expired := false

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Look up and check state
		d, err := tx.Invitations().GetInvitationByToken(ctx, token)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvitationNotFound
			}
			return err
		}
		inv := d.Invitation

		if inv.IsOverdue(now) {
			expired = true
			return ErrInvitationExpired
		}
		if !inv.IsPending() {
			if inv.Status == domain.InvitationExpired {
				return ErrInvitationExpired
			}
			return ErrInvitationInvalid
		}

		// 2. The invitation belongs to one address
		if !strings.EqualFold(strings.TrimSpace(actor.Email), inv.Email) {
			log.Warn("invitation accepted by a different email",
				slog.String("invitation_id", inv.ID),
			)
			return ErrEmailMismatch
		}

		// 3. Consume it; the conditional update loses to any concurrent accept
		ok, err := tx.Invitations().AcceptInvitation(ctx, inv.ID, actor.UserID, now)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvitationInvalid
		}

		// 4. Grant or raise the membership
		if _, err := tx.Profiles().EnsureProfile(ctx, actor.UserID, actor.Email, now); err != nil {
			return err
		}

		role := inv.Role
		existing, err := tx.Members().GetMembership(ctx, inv.OrganizationID, actor.UserID)
		switch {
		case err == nil:
			if existing.Role.Rank() >= inv.Role.Rank() {
				role = existing.Role
			} else if err := tx.Members().UpdateMembershipRole(ctx, existing.ID, inv.Role, now); err != nil {
				return err
			}
		case errors.Is(err, store.ErrNotFound):
			err := tx.Members().CreateMembership(ctx, domain.Membership{
				ID:             idx.New().String(),
				OrganizationID: inv.OrganizationID,
				UserID:         actor.UserID,
				Role:           inv.Role,
				CreatedAt:      now,
				UpdatedAt:      now,
			})
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAlreadyMember
			}
			if err != nil {
				return err
			}
		default:
			return err
		}

		result = AcceptResult{OrganizationID: inv.OrganizationID, Role: role}
		return nil
	})

	// The transaction rolled back; record the expiry on its own.
	if expired {
		if d, getErr := s.Store.Invitations().GetInvitationByToken(ctx, token); getErr == nil {
			_, _ = s.expire(ctx, s.Store, d.ID, now)
		}
	}
	if err != nil {
		if !errors.Is(err, ErrConflict) && !errors.Is(err, ErrForbidden) && !errors.Is(err, ErrNotFound) {
			log.Error("failed to accept invitation", slog.Any("error", err))
		}
		return AcceptResult{}, err
	}

	metrics.RecordInvitation(metrics.InvitationAccepted)
	log.Info("invitation accepted",
		slog.String("organization_id", result.OrganizationID),
		slog.String("role", result.Role.String()),
		slog.String("token_fp", cryptox.ShortFingerprint(token)),
	)
	return result, nil
}

// Revoke cancels an invitation. Admins of its organization only.
func (s *InvitationService) Revoke(ctx context.Context, actor domain.Identity, invitationID string) error {
	log := slogx.FromContext(ctx)

	inv, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return err
	}

	if _, err := requireRole(ctx, s.Store, actor.UserID, inv.OrganizationID, domain.RoleAdmin); err != nil {
		return err
	}

	if err := s.Store.Invitations().RevokeInvitation(ctx, inv.ID, nowFrom(s.Now)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		log.Error("failed to revoke invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return err
	}

	metrics.RecordInvitation(metrics.InvitationRevoked)
	log.Info("invitation revoked",
		slog.String("invitation_id", inv.ID),
		slog.String("organization_id", inv.OrganizationID),
	)
	return nil
}

// ListForOrganization returns pending and expired invitations, newest
// first. Overdue rows are expired before they are returned.
func (s *InvitationService) ListForOrganization(ctx context.Context, actor domain.Identity, orgID string) ([]domain.Invitation, error) {
	if _, err := requireRole(ctx, s.Store, actor.UserID, orgID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	list, err := s.Store.Invitations().ListInvitations(ctx, orgID,
		[]domain.InvitationStatus{domain.InvitationPending, domain.InvitationExpired})
	if err != nil {
		return nil, err
	}

	now := nowFrom(s.Now)
	for i := range list {
		if !list[i].IsOverdue(now) {
			continue
		}
		if _, err := s.expire(ctx, s.Store, list[i].ID, now); err != nil {
			return nil, err
		}
		list[i].Status = domain.InvitationExpired
		list[i].UpdatedAt = now
	}
	return list, nil
}
