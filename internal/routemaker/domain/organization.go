package domain

import "time"

// Organization is the tenant boundary. Everything else hangs off one.
type Organization struct {
	ID        string
	Name      string
	Slug      string
	LogoURL   *string
	Settings  map[string]any
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrganizationSummary is one row of "organizations I belong to".
type OrganizationSummary struct {
	ID      string
	Name    string
	Slug    string
	LogoURL *string
	Role    Role
}

// OrganizationInput creates an organization.
type OrganizationInput struct {
	Name string `json:"name" validate:"required,max=120"`
}

// OrganizationPatch updates an organization. Nil fields are left alone.
type OrganizationPatch struct {
	Name     *string         `json:"name" validate:"omitempty,min=1,max=120"`
	LogoURL  *string         `json:"logo_url" validate:"omitempty,url"`
	Settings *map[string]any `json:"settings"`
}

// Membership links a user to an organization with a role.
type Membership struct {
	ID             string
	OrganizationID string
	UserID         string
	Role           Role
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Member is a membership joined with the member's profile.
type Member struct {
	Membership

	Email     string
	FirstName *string
	LastName  *string
	AvatarURL *string
}
