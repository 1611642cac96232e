package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
)

type invitationsRepo struct{ conn }

const invitationColumns = `id, organization_id, email, role, invited_by, token, status, expires_at, accepted_at, accepted_by, created_at, updated_at`

// invitationDest returns scan targets for invitationColumns. fix must be
// called after a successful Scan.
func invitationDest(inv *domain.Invitation) (dest []any, fix func()) {
	var (
		acceptedAt sql.NullTime
		acceptedBy sql.NullString
	)
	dest = []any{
		&inv.ID, &inv.OrganizationID, &inv.Email, &inv.Role, &inv.InvitedBy, &inv.Token,
		&inv.Status, &inv.ExpiresAt, &acceptedAt, &acceptedBy, &inv.CreatedAt, &inv.UpdatedAt,
	}
	fix = func() {
		inv.AcceptedAt = timePtr(acceptedAt)
		inv.AcceptedBy = stringPtr(acceptedBy)
		inv.ExpiresAt = inv.ExpiresAt.UTC()
		inv.CreatedAt = inv.CreatedAt.UTC()
		inv.UpdatedAt = inv.UpdatedAt.UTC()
	}
	return dest, fix
}

func scanInvitation(row rowScanner) (domain.Invitation, error) {
	var inv domain.Invitation
	dest, fix := invitationDest(&inv)
	if err := row.Scan(dest...); err != nil {
		return domain.Invitation{}, err
	}
	fix()
	return inv, nil
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.exec(ctx,
		`INSERT INTO invitations (`+invitationColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.OrganizationID, inv.Email, inv.Role, inv.InvitedBy, inv.Token, inv.Status,
		inv.ExpiresAt.UTC(), nullTime(inv.AcceptedAt), nullString(inv.AcceptedBy),
		inv.CreatedAt.UTC(), inv.UpdatedAt.UTC(),
	)
	return err
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	inv, err := scanInvitation(r.queryRow(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE id = ?`, id))
	return inv, r.mapErr(err)
}

func (r *invitationsRepo) GetInvitationByToken(ctx context.Context, token string) (domain.InvitationDetails, error) {
	var (
		d    domain.InvitationDetails
		logo sql.NullString
	)
	dest, fix := invitationDest(&d.Invitation)
	dest = append(dest, &d.OrganizationName, &logo)

	err := r.queryRow(ctx, `
		SELECT i.id, i.organization_id, i.email, i.role, i.invited_by, i.token, i.status,
		       i.expires_at, i.accepted_at, i.accepted_by, i.created_at, i.updated_at,
		       o.name, o.logo_url
		FROM invitations i
		JOIN organizations o ON o.id = i.organization_id
		WHERE i.token = ?`, token).Scan(dest...)
	if err != nil {
		return domain.InvitationDetails{}, r.mapErr(err)
	}
	fix()
	d.OrganizationLogoURL = stringPtr(logo)
	return d, nil
}

func (r *invitationsRepo) GetPendingInvitation(ctx context.Context, orgID, email string) (domain.Invitation, error) {
	inv, err := scanInvitation(r.queryRow(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE organization_id = ? AND email = ? AND status = ?`,
		orgID, email, domain.InvitationPending))
	return inv, r.mapErr(err)
}

func (r *invitationsRepo) ListInvitations(ctx context.Context, orgID string, statuses []domain.InvitationStatus) ([]domain.Invitation, error) {
	if len(statuses) == 0 {
		return nil, nil
	}
	args := make([]any, 0, len(statuses)+1)
	args = append(args, orgID)
	for _, s := range statuses {
		args = append(args, s)
	}

	rows, err := r.query(ctx,
		`SELECT `+invitationColumns+` FROM invitations
		WHERE organization_id = ? AND status IN (`+placeholders(len(statuses))+`)
		ORDER BY created_at DESC, id DESC`, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanInvitation)
}

func (r *invitationsRepo) ExpireInvitation(ctx context.Context, id string, now time.Time) (bool, error) {
	n, err := r.execCount(ctx,
		`UPDATE invitations SET status = ?, updated_at = ?
		WHERE id = ? AND status = ? AND expires_at < ?`,
		domain.InvitationExpired, now.UTC(), id, domain.InvitationPending, now.UTC())
	return n > 0, err
}

func (r *invitationsRepo) ExpireOverdueInvitations(ctx context.Context, now time.Time) (int64, error) {
	return r.execCount(ctx,
		`UPDATE invitations SET status = ?, updated_at = ?
		WHERE status = ? AND expires_at < ?`,
		domain.InvitationExpired, now.UTC(), domain.InvitationPending, now.UTC())
}

func (r *invitationsRepo) AcceptInvitation(ctx context.Context, id, userID string, now time.Time) (bool, error) {
	n, err := r.execCount(ctx,
		`UPDATE invitations SET status = ?, accepted_at = ?, accepted_by = ?, updated_at = ?
		WHERE id = ? AND status = ? AND expires_at >= ?`,
		domain.InvitationAccepted, now.UTC(), userID, now.UTC(), id, domain.InvitationPending, now.UTC())
	return n > 0, err
}

func (r *invitationsRepo) RevokeInvitation(ctx context.Context, id string, now time.Time) error {
	return r.execOne(ctx,
		`UPDATE invitations SET status = ?, updated_at = ? WHERE id = ?`,
		domain.InvitationRevoked, now.UTC(), id)
}
