package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
)

type locationsRepo struct{ conn }

const locationColumns = `id, organization_id, name, type, address_line1, address_line2, city, state, postal_code, country, latitude, longitude, notes, is_active, created_at, updated_at`

func scanLocation(row rowScanner) (domain.Location, error) {
	var (
		l           domain.Location
		line2, note sql.NullString
		lat, lng    sql.NullFloat64
	)
	err := row.Scan(
		&l.ID, &l.OrganizationID, &l.Name, &l.Type, &l.AddressLine1, &line2, &l.City, &l.State,
		&l.PostalCode, &l.Country, &lat, &lng, &note, &l.IsActive, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return domain.Location{}, err
	}
	l.AddressLine2 = stringPtr(line2)
	l.Notes = stringPtr(note)
	l.Latitude = floatPtr(lat)
	l.Longitude = floatPtr(lng)
	l.CreatedAt = l.CreatedAt.UTC()
	l.UpdatedAt = l.UpdatedAt.UTC()
	return l, nil
}

func (r *locationsRepo) CreateLocation(ctx context.Context, l domain.Location) error {
	_, err := r.exec(ctx,
		`INSERT INTO locations (`+locationColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.OrganizationID, l.Name, l.Type, l.AddressLine1, nullString(l.AddressLine2), l.City, l.State,
		l.PostalCode, l.Country, nullFloat(l.Latitude), nullFloat(l.Longitude), nullString(l.Notes), l.IsActive,
		l.CreatedAt.UTC(), l.UpdatedAt.UTC(),
	)
	return err
}

func (r *locationsRepo) GetLocationByID(ctx context.Context, id string) (domain.Location, error) {
	l, err := scanLocation(r.queryRow(ctx,
		`SELECT `+locationColumns+` FROM locations WHERE id = ?`, id))
	return l, r.mapErr(err)
}

func (r *locationsRepo) GetLocationsByIDs(ctx context.Context, ids []string) ([]domain.Location, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.query(ctx,
		`SELECT `+locationColumns+` FROM locations WHERE id IN (`+placeholders(len(ids))+`)`, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanLocation)
}

func (r *locationsRepo) ListLocations(ctx context.Context, orgID string) ([]domain.Location, error) {
	rows, err := r.query(ctx,
		`SELECT `+locationColumns+` FROM locations WHERE organization_id = ? ORDER BY name, id`, orgID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanLocation)
}

func (r *locationsRepo) UpdateLocation(ctx context.Context, l domain.Location) error {
	return r.execOne(ctx, `
		UPDATE locations SET
			name = ?, type = ?, address_line1 = ?, address_line2 = ?, city = ?, state = ?,
			postal_code = ?, country = ?, latitude = ?, longitude = ?, notes = ?, is_active = ?,
			updated_at = ?
		WHERE id = ?`,
		l.Name, l.Type, l.AddressLine1, nullString(l.AddressLine2), l.City, l.State,
		l.PostalCode, l.Country, nullFloat(l.Latitude), nullFloat(l.Longitude), nullString(l.Notes), l.IsActive,
		l.UpdatedAt.UTC(), l.ID,
	)
}

func (r *locationsRepo) UpdateLocationCoordinates(ctx context.Context, id string, lat, lng float64, now time.Time) error {
	return r.execOne(ctx,
		`UPDATE locations SET latitude = ?, longitude = ?, updated_at = ? WHERE id = ?`,
		lat, lng, now.UTC(), id)
}

func (r *locationsRepo) DeleteLocation(ctx context.Context, id string) error {
	return r.execOne(ctx, `DELETE FROM locations WHERE id = ?`, id)
}
