package domain

import "time"

type Project struct {
	ID             string
	OrganizationID string
	Name           string
	Description    *string
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ProjectInput struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

// ProjectPatch has no organization field: a project never changes tenant.
type ProjectPatch struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}
