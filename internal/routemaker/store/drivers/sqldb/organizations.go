package sqldb

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
)

type organizationsRepo struct{ conn }

const organizationColumns = `id, name, slug, logo_url, settings, created_by, created_at, updated_at`

func scanOrganization(row rowScanner) (domain.Organization, error) {
	var (
		o        domain.Organization
		logo     sql.NullString
		settings []byte
	)
	err := row.Scan(&o.ID, &o.Name, &o.Slug, &logo, &settings, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return domain.Organization{}, err
	}

	if o.Settings, err = decodeSettings(settings); err != nil {
		return domain.Organization{}, err
	}
	o.LogoURL = stringPtr(logo)
	o.CreatedAt = o.CreatedAt.UTC()
	o.UpdatedAt = o.UpdatedAt.UTC()
	return o, nil
}

func (r *organizationsRepo) CreateOrganization(ctx context.Context, o domain.Organization) error {
	settings, err := encodeSettings(o.Settings)
	if err != nil {
		return err
	}
	_, err = r.exec(ctx,
		`INSERT INTO organizations (`+organizationColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.Name, o.Slug, nullString(o.LogoURL), settings, o.CreatedBy, o.CreatedAt.UTC(), o.UpdatedAt.UTC(),
	)
	return err
}

func (r *organizationsRepo) GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error) {
	o, err := scanOrganization(r.queryRow(ctx,
		`SELECT `+organizationColumns+` FROM organizations WHERE id = ?`, id))
	return o, r.mapErr(err)
}

func (r *organizationsRepo) LockOrganization(ctx context.Context, id string) error {
	var locked string
	err := r.queryRow(ctx,
		`SELECT id FROM organizations WHERE id = ?`+r.d.RowLock, id).Scan(&locked)
	return r.mapErr(err)
}

func (r *organizationsRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.queryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM organizations WHERE slug = ?)`, slug).Scan(&exists)
	return exists, r.mapErr(err)
}

func (r *organizationsRepo) UpdateOrganization(ctx context.Context, o domain.Organization) error {
	settings, err := encodeSettings(o.Settings)
	if err != nil {
		return err
	}
	return r.execOne(ctx,
		`UPDATE organizations SET name = ?, logo_url = ?, settings = ?, updated_at = ? WHERE id = ?`,
		o.Name, nullString(o.LogoURL), settings, o.UpdatedAt.UTC(), o.ID,
	)
}

func (r *organizationsRepo) DeleteOrganization(ctx context.Context, id string) error {
	return r.execOne(ctx, `DELETE FROM organizations WHERE id = ?`, id)
}

func (r *organizationsRepo) ListOrganizationsForUser(ctx context.Context, userID string) ([]domain.OrganizationSummary, error) {
	rows, err := r.query(ctx, `
		SELECT o.id, o.name, o.slug, o.logo_url, m.role
		FROM organizations o
		JOIN memberships m ON m.organization_id = o.id
		WHERE m.user_id = ?
		ORDER BY o.name, o.id`, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row rowScanner) (domain.OrganizationSummary, error) {
		var (
			s    domain.OrganizationSummary
			logo sql.NullString
		)
		if err := row.Scan(&s.ID, &s.Name, &s.Slug, &logo, &s.Role); err != nil {
			return s, err
		}
		s.LogoURL = stringPtr(logo)
		return s, nil
	})
}
