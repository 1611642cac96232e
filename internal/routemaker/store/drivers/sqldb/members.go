package sqldb

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
)

type membersRepo struct{ conn }

const membershipColumns = `id, organization_id, user_id, role, created_at, updated_at`

func scanMembership(row rowScanner) (domain.Membership, error) {
	var m domain.Membership
	if err := row.Scan(&m.ID, &m.OrganizationID, &m.UserID, &m.Role, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return domain.Membership{}, err
	}
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return m, nil
}

func (r *membersRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	_, err := r.exec(ctx,
		`INSERT INTO memberships (`+membershipColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.OrganizationID, m.UserID, m.Role, m.CreatedAt.UTC(), m.UpdatedAt.UTC(),
	)
	return err
}

func (r *membersRepo) GetMembership(ctx context.Context, orgID, userID string) (domain.Membership, error) {
	m, err := scanMembership(r.queryRow(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE organization_id = ? AND user_id = ?`,
		orgID, userID))
	return m, r.mapErr(err)
}

func (r *membersRepo) GetMembershipByID(ctx context.Context, id string) (domain.Membership, error) {
	m, err := scanMembership(r.queryRow(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE id = ?`, id))
	return m, r.mapErr(err)
}

func (r *membersRepo) ListMembers(ctx context.Context, orgID string) ([]domain.Member, error) {
	rows, err := r.query(ctx, `
		SELECT m.id, m.organization_id, m.user_id, m.role, m.created_at, m.updated_at,
		       COALESCE(p.email, ''), p.first_name, p.last_name, p.avatar_url
		FROM memberships m
		LEFT JOIN profiles p ON p.id = m.user_id
		WHERE m.organization_id = ?
		ORDER BY m.created_at, m.id`, orgID)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row rowScanner) (domain.Member, error) {
		var (
			m                      domain.Member
			first, last, avatarURL sql.NullString
		)
		err := row.Scan(
			&m.ID, &m.OrganizationID, &m.UserID, &m.Role, &m.CreatedAt, &m.UpdatedAt,
			&m.Email, &first, &last, &avatarURL,
		)
		if err != nil {
			return m, err
		}
		m.CreatedAt = m.CreatedAt.UTC()
		m.UpdatedAt = m.UpdatedAt.UTC()
		m.FirstName = stringPtr(first)
		m.LastName = stringPtr(last)
		m.AvatarURL = stringPtr(avatarURL)
		return m, nil
	})
}

func (r *membersRepo) UpdateMembershipRole(ctx context.Context, id string, role domain.Role, now time.Time) error {
	return r.execOne(ctx,
		`UPDATE memberships SET role = ?, updated_at = ? WHERE id = ?`, role, now.UTC(), id)
}

func (r *membersRepo) DeleteMembership(ctx context.Context, id string) error {
	return r.execOne(ctx, `DELETE FROM memberships WHERE id = ?`, id)
}

func (r *membersRepo) CountOwners(ctx context.Context, orgID string) (int, error) {
	var n int
	err := r.queryRow(ctx,
		`SELECT COUNT(*) FROM memberships WHERE organization_id = ? AND role = ?`,
		orgID, domain.RoleOwner).Scan(&n)
	return n, r.mapErr(err)
}

func (r *membersRepo) IsEmailMember(ctx context.Context, orgID, email string) (bool, error) {
	var exists bool
	err := r.queryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM memberships m
			JOIN profiles p ON p.id = m.user_id
			WHERE m.organization_id = ? AND LOWER(p.email) = ?
		)`, orgID, strings.ToLower(email)).Scan(&exists)
	return exists, r.mapErr(err)
}
