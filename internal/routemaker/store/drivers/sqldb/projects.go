package sqldb

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
)

type projectsRepo struct{ conn }

const projectColumns = `id, organization_id, name, description, created_by, created_at, updated_at`

func scanProject(row rowScanner) (domain.Project, error) {
	var (
		p    domain.Project
		desc sql.NullString
	)
	if err := row.Scan(&p.ID, &p.OrganizationID, &p.Name, &desc, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.Project{}, err
	}
	p.Description = stringPtr(desc)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.exec(ctx,
		`INSERT INTO projects (`+projectColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.OrganizationID, p.Name, nullString(p.Description), p.CreatedBy, p.CreatedAt.UTC(), p.UpdatedAt.UTC())
	return err
}

func (r *projectsRepo) GetProjectByID(ctx context.Context, id string) (domain.Project, error) {
	p, err := scanProject(r.queryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id))
	return p, r.mapErr(err)
}

func (r *projectsRepo) ListProjects(ctx context.Context, orgID string) ([]domain.Project, error) {
	rows, err := r.query(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE organization_id = ? ORDER BY created_at DESC, id DESC`, orgID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanProject)
}

func (r *projectsRepo) UpdateProject(ctx context.Context, p domain.Project) error {
	return r.execOne(ctx,
		`UPDATE projects SET name = ?, description = ?, updated_at = ? WHERE id = ?`,
		p.Name, nullString(p.Description), p.UpdatedAt.UTC(), p.ID)
}

func (r *projectsRepo) DeleteProject(ctx context.Context, id string) error {
	return r.execOne(ctx, `DELETE FROM projects WHERE id = ?`, id)
}
