package routesdk

import "time"

// ============================================================================
// Common
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// ============================================================================
// Organizations and members
// ============================================================================

type Organization struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Slug      string         `json:"slug"`
	LogoURL   *string        `json:"logo_url"`
	Settings  map[string]any `json:"settings"`
	CreatedBy string         `json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// OrganizationWithRole is an organization plus the caller's role in it.
type OrganizationWithRole struct {
	Organization
	Role string `json:"role"`
}

// OrganizationSummary is one entry of the caller's organization list.
type OrganizationSummary struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Slug    string  `json:"slug"`
	LogoURL *string `json:"logo_url"`
	Role    string  `json:"role"`
}

type CreateOrganizationRequest struct {
	Name string `json:"name"`
}

// UpdateOrganizationRequest changes the non-nil fields.
type UpdateOrganizationRequest struct {
	Name     *string         `json:"name,omitempty"`
	LogoURL  *string         `json:"logo_url,omitempty"`
	Settings *map[string]any `json:"settings,omitempty"`
}

// Member is a membership joined with the member's profile.
type Member struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	UserID         string    `json:"user_id"`
	Role           string    `json:"role"`
	Email          string    `json:"email"`
	FirstName      *string   `json:"first_name"`
	LastName       *string   `json:"last_name"`
	AvatarURL      *string   `json:"avatar_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type UpdateMemberRequest struct {
	Role string `json:"role"`
}

// ============================================================================
// Invitations
// ============================================================================

type Invitation struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	Email          string     `json:"email"`
	Role           string     `json:"role"`
	Status         string     `json:"status"`
	InvitedBy      string     `json:"invited_by"`
	ExpiresAt      time.Time  `json:"expires_at"`
	AcceptedAt     *time.Time `json:"accepted_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type CreateInvitationRequest struct {
	OrganizationID string `json:"organization_id"`
	Email          string `json:"email"`
	Role           string `json:"role,omitempty"`
}

// CreateInvitationResponse carries the invite link. Resent is true when an
// existing pending invitation was reused.
type CreateInvitationResponse struct {
	Invitation Invitation `json:"invitation"`
	InviteURL  string     `json:"invite_url"`
	Resent     bool       `json:"resent"`
}

// InvitationOrganization is the public face of the inviting organization.
type InvitationOrganization struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	LogoURL *string `json:"logo_url"`
}

// InvitationDetails is what an invitee sees before accepting.
type InvitationDetails struct {
	ID           string                 `json:"id"`
	Email        string                 `json:"email"`
	Role         string                 `json:"role"`
	Status       string                 `json:"status"`
	ExpiresAt    time.Time              `json:"expires_at"`
	Organization InvitationOrganization `json:"organization"`
}

type AcceptInvitationResponse struct {
	OrganizationID string `json:"organization_id"`
	Role           string `json:"role"`
}

// ============================================================================
// Profiles
// ============================================================================

type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	AvatarURL *string   `json:"avatar_url"`
	Bio       *string   `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicProfile is another user's profile without contact details.
type PublicProfile struct {
	ID        string  `json:"id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	AvatarURL *string `json:"avatar_url"`
	Bio       *string `json:"bio"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}

// ============================================================================
// Projects
// ============================================================================

type Project struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateProjectRequest struct {
	OrganizationID string  `json:"organization_id"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ============================================================================
// Locations
// ============================================================================

type Location struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	AddressLine1   string    `json:"address_line1"`
	AddressLine2   *string   `json:"address_line2"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	PostalCode     string    `json:"postal_code"`
	Country        string    `json:"country"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	Notes          *string   `json:"notes"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// LocationFields is one location as submitted for create or import.
type LocationFields struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	AddressLine1 string   `json:"address_line1"`
	AddressLine2 *string  `json:"address_line2,omitempty"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	PostalCode   string   `json:"postal_code"`
	Country      string   `json:"country,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

type CreateLocationRequest struct {
	OrganizationID string `json:"organization_id"`
	LocationFields
}

// UpdateLocationRequest changes the non-nil fields. There is no
// organization field; a location never changes tenant.
type UpdateLocationRequest struct {
	Name         *string  `json:"name,omitempty"`
	Type         *string  `json:"type,omitempty"`
	AddressLine1 *string  `json:"address_line1,omitempty"`
	AddressLine2 *string  `json:"address_line2,omitempty"`
	City         *string  `json:"city,omitempty"`
	State        *string  `json:"state,omitempty"`
	PostalCode   *string  `json:"postal_code,omitempty"`
	Country      *string  `json:"country,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

type ImportLocationsRequest struct {
	OrganizationID string           `json:"organizationId"`
	Locations      []LocationFields `json:"locations"`
}

// ImportRowError reports one rejected row. Row is 1-based.
type ImportRowError struct {
	Row   int            `json:"row"`
	Error string         `json:"error"`
	Data  LocationFields `json:"data"`
}

type ImportResult struct {
	Success int              `json:"success"`
	Failed  int              `json:"failed"`
	Errors  []ImportRowError `json:"errors"`
}

type GeocodeBulkRequest struct {
	IDs []string `json:"ids"`
}

type GeocodeItemError struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// GeocodeBulkResult lists failures in request order.
type GeocodeBulkResult struct {
	Success int                `json:"success"`
	Failed  int                `json:"failed"`
	Errors  []GeocodeItemError `json:"errors"`
}

// ============================================================================
// Technicians
// ============================================================================

type Technician struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	FullName       string    `json:"full_name"`
	EmploymentType string    `json:"employment_type"`
	Email          *string   `json:"email"`
	Phone          *string   `json:"phone"`
	AddressLine1   *string   `json:"address_line1"`
	AddressLine2   *string   `json:"address_line2"`
	City           *string   `json:"city"`
	State          *string   `json:"state"`
	PostalCode     *string   `json:"postal_code"`
	CostBasis      string    `json:"cost_basis"`
	CostAmount     float64   `json:"cost_amount"`
	ColorHex       string    `json:"color_hex"`
	Active         bool      `json:"active"`
	Notes          *string   `json:"notes"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateTechnicianRequest struct {
	OrganizationID string  `json:"organization_id"`
	FullName       string  `json:"full_name"`
	EmploymentType string  `json:"employment_type"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	AddressLine1   *string `json:"address_line1,omitempty"`
	AddressLine2   *string `json:"address_line2,omitempty"`
	City           *string `json:"city,omitempty"`
	State          *string `json:"state,omitempty"`
	PostalCode     *string `json:"postal_code,omitempty"`
	CostBasis      string  `json:"cost_basis,omitempty"`
	CostAmount     float64 `json:"cost_amount"`
	ColorHex       string  `json:"color_hex,omitempty"`
	Active         *bool   `json:"active,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

type UpdateTechnicianRequest struct {
	FullName       *string  `json:"full_name,omitempty"`
	EmploymentType *string  `json:"employment_type,omitempty"`
	Email          *string  `json:"email,omitempty"`
	Phone          *string  `json:"phone,omitempty"`
	AddressLine1   *string  `json:"address_line1,omitempty"`
	AddressLine2   *string  `json:"address_line2,omitempty"`
	City           *string  `json:"city,omitempty"`
	State          *string  `json:"state,omitempty"`
	PostalCode     *string  `json:"postal_code,omitempty"`
	CostBasis      *string  `json:"cost_basis,omitempty"`
	CostAmount     *float64 `json:"cost_amount,omitempty"`
	ColorHex       *string  `json:"color_hex,omitempty"`
	Active         *bool    `json:"active,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// TechnicianList is one page of technicians.
type TechnicianList struct {
	Data       []Technician `json:"data"`
	Count      int          `json:"count"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int          `json:"total_pages"`
}

// TechnicianQuery filters ListTechnicians. Zero values are omitted.
type TechnicianQuery struct {
	Search         string
	EmploymentType string
	Active         *bool
	Sort           string
	Dir            string
	Page           int
	PageSize       int
}
