package domain

import "time"

// Profile is the application-side record for an identity-provider user.
// ID equals the provider's user id.
type Profile struct {
	ID        string
	Email     string
	FirstName *string
	LastName  *string
	AvatarURL *string
	Bio       *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfilePatch updates the caller's own profile.
type ProfilePatch struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
	Bio       *string `json:"bio" validate:"omitempty,max=2000"`
}

// PublicProfile is the subset visible to other users.
type PublicProfile struct {
	ID        string
	FirstName *string
	LastName  *string
	AvatarURL *string
	Bio       *string
}

func (p Profile) Public() PublicProfile {
	return PublicProfile{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		AvatarURL: p.AvatarURL,
		Bio:       p.Bio,
	}
}
