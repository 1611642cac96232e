package sqldb

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
)

type profilesRepo struct{ conn }

const profileColumns = `id, email, first_name, last_name, avatar_url, bio, created_at, updated_at`

func scanProfile(row rowScanner) (domain.Profile, error) {
	var (
		p                           domain.Profile
		first, last, avatarURL, bio sql.NullString
	)
	err := row.Scan(&p.ID, &p.Email, &first, &last, &avatarURL, &bio, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Profile{}, err
	}
	p.FirstName = stringPtr(first)
	p.LastName = stringPtr(last)
	p.AvatarURL = stringPtr(avatarURL)
	p.Bio = stringPtr(bio)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}

func (r *profilesRepo) GetProfile(ctx context.Context, id string) (domain.Profile, error) {
	p, err := scanProfile(r.queryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = ?`, id))
	return p, r.mapErr(err)
}

func (r *profilesRepo) EnsureProfile(ctx context.Context, id, email string, now time.Time) (domain.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := r.exec(ctx, `
		INSERT INTO profiles (id, email, created_at, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			email = CASE WHEN excluded.email <> '' THEN excluded.email ELSE profiles.email END,
			updated_at = CASE
				WHEN excluded.email <> '' AND excluded.email <> profiles.email THEN excluded.updated_at
				ELSE profiles.updated_at
			END`,
		id, email, now.UTC(), now.UTC())
	if err != nil {
		return domain.Profile{}, err
	}
	return r.GetProfile(ctx, id)
}

func (r *profilesRepo) UpdateProfile(ctx context.Context, p domain.Profile) error {
	return r.execOne(ctx,
		`UPDATE profiles SET first_name = ?, last_name = ?, avatar_url = ?, bio = ?, updated_at = ? WHERE id = ?`,
		nullString(p.FirstName), nullString(p.LastName), nullString(p.AvatarURL), nullString(p.Bio),
		p.UpdatedAt.UTC(), p.ID)
}
