package sqldb

import (
	"context"
	"database/sql"
	"strings"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
)

type techniciansRepo struct{ conn }

const technicianColumns = `id, organization_id, full_name, employment_type, email, phone, address_line1, address_line2, city, state, postal_code, cost_basis, cost_amount, color_hex, active, notes, created_by, created_at, updated_at`

// technicianSortColumns whitelists ORDER BY targets.
var technicianSortColumns = map[domain.TechnicianSort]string{
	domain.SortTechnicianUpdatedAt: "updated_at",
	domain.SortTechnicianCreatedAt: "created_at",
	domain.SortTechnicianFullName:  "full_name",
	domain.SortTechnicianCost:      "cost_amount",
}

func scanTechnician(row rowScanner) (domain.Technician, error) {
	var (
		t                                domain.Technician
		email, phone, line1, line2, city sql.NullString
		state, postal, notes             sql.NullString
	)
	err := row.Scan(
		&t.ID, &t.OrganizationID, &t.FullName, &t.EmploymentType, &email, &phone, &line1, &line2,
		&city, &state, &postal, &t.CostBasis, &t.CostAmount, &t.ColorHex, &t.Active, &notes,
		&t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return domain.Technician{}, err
	}
	t.Email = stringPtr(email)
	t.Phone = stringPtr(phone)
	t.AddressLine1 = stringPtr(line1)
	t.AddressLine2 = stringPtr(line2)
	t.City = stringPtr(city)
	t.State = stringPtr(state)
	t.PostalCode = stringPtr(postal)
	t.Notes = stringPtr(notes)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}

func (r *techniciansRepo) CreateTechnician(ctx context.Context, t domain.Technician) error {
	_, err := r.exec(ctx,
		`INSERT INTO technicians (`+technicianColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.OrganizationID, t.FullName, t.EmploymentType, nullString(t.Email), nullString(t.Phone),
		nullString(t.AddressLine1), nullString(t.AddressLine2), nullString(t.City), nullString(t.State),
		nullString(t.PostalCode), t.CostBasis, t.CostAmount, t.ColorHex, t.Active, nullString(t.Notes),
		t.CreatedBy, t.CreatedAt.UTC(), t.UpdatedAt.UTC(),
	)
	return err
}

func (r *techniciansRepo) GetTechnicianByID(ctx context.Context, id string) (domain.Technician, error) {
	t, err := scanTechnician(r.queryRow(ctx,
		`SELECT `+technicianColumns+` FROM technicians WHERE id = ?`, id))
	return t, r.mapErr(err)
}

// escapeLike escapes LIKE wildcards so search text matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *techniciansRepo) ListTechnicians(ctx context.Context, orgID string, f domain.TechnicianFilter) ([]domain.Technician, int, error) {
	where := []string{"organization_id = ?"}
	args := []any{orgID}

	if s := strings.TrimSpace(f.Search); s != "" {
		where = append(where, `LOWER(full_name) LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(strings.ToLower(s))+"%")
	}
	if f.EmploymentType != nil {
		where = append(where, "employment_type = ?")
		args = append(args, *f.EmploymentType)
	}
	if f.Active != nil {
		where = append(where, "active = ?")
		args = append(args, *f.Active)
	}
	clause := strings.Join(where, " AND ")

	var total int
	if err := r.queryRow(ctx, `SELECT COUNT(*) FROM technicians WHERE `+clause, args...).Scan(&total); err != nil {
		return nil, 0, r.mapErr(err)
	}

	col, ok := technicianSortColumns[f.Sort]
	if !ok {
		col = "updated_at"
	}
	dir := "ASC"
	if f.Descending {
		dir = "DESC"
	}

	pageArgs := append(append([]any{}, args...), f.PageSize, f.Offset())
	rows, err := r.query(ctx,
		`SELECT `+technicianColumns+` FROM technicians WHERE `+clause+
			` ORDER BY `+col+` `+dir+`, id `+dir+` LIMIT ? OFFSET ?`, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	items, err := collect(rows, scanTechnician)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *techniciansRepo) UpdateTechnician(ctx context.Context, t domain.Technician) error {
	return r.execOne(ctx, `
		UPDATE technicians SET
			full_name = ?, employment_type = ?, email = ?, phone = ?, address_line1 = ?, address_line2 = ?,
			city = ?, state = ?, postal_code = ?, cost_basis = ?, cost_amount = ?, color_hex = ?,
			active = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		t.FullName, t.EmploymentType, nullString(t.Email), nullString(t.Phone), nullString(t.AddressLine1),
		nullString(t.AddressLine2), nullString(t.City), nullString(t.State), nullString(t.PostalCode),
		t.CostBasis, t.CostAmount, t.ColorHex, t.Active, nullString(t.Notes), t.UpdatedAt.UTC(), t.ID,
	)
}

func (r *techniciansRepo) DeleteTechnician(ctx context.Context, id string) error {
	return r.execOne(ctx, `DELETE FROM technicians WHERE id = ?`, id)
}
