package domain

import "time"

// LocationType classifies a service location.
type LocationType string

const (
	LocationResidential LocationType = "residential"
	LocationCommercial  LocationType = "commercial"
)

// DefaultCountry is used when an address omits one.
const DefaultCountry = "US"

type Location struct {
	ID             string
	OrganizationID string
	Name           string
	Type           LocationType
	AddressLine1   string
	AddressLine2   *string
	City           string
	State          string
	PostalCode     string
	Country        string
	Latitude       *float64
	Longitude      *float64
	Notes          *string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AddressParts returns the address components in postal order, ready for
// geocoding.
func (l Location) AddressParts() []string {
	line2 := ""
	if l.AddressLine2 != nil {
		line2 = *l.AddressLine2
	}
	return []string{l.AddressLine1, line2, l.City, l.State, l.PostalCode, l.Country}
}

// HasCoordinates reports whether both latitude and longitude are set.
func (l Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// LocationInput creates a location, either directly or as one import row.
type LocationInput struct {
	Name         string       `json:"name" validate:"required,max=200"`
	Type         LocationType `json:"type" validate:"required,oneof=residential commercial"`
	AddressLine1 string       `json:"address_line1" validate:"required,max=200"`
	AddressLine2 *string      `json:"address_line2,omitempty" validate:"omitempty,max=200"`
	City         string       `json:"city" validate:"required,max=100"`
	State        string       `json:"state" validate:"required,max=100"`
	PostalCode   string       `json:"postal_code" validate:"required,max=20"`
	Country      string       `json:"country,omitempty" validate:"omitempty,max=56"`
	Latitude     *float64     `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64     `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Notes        *string      `json:"notes,omitempty" validate:"omitempty,max=5000"`
	IsActive     *bool        `json:"is_active,omitempty"`
}

// LocationPatch updates a location. It has no organization
// field, so a payload carrying organization_id cannot move the row.
type LocationPatch struct {
	Name         *string       `json:"name" validate:"omitempty,min=1,max=200"`
	Type         *LocationType `json:"type" validate:"omitempty,oneof=residential commercial"`
	AddressLine1 *string       `json:"address_line1" validate:"omitempty,min=1,max=200"`
	AddressLine2 *string       `json:"address_line2" validate:"omitempty,max=200"`
	City         *string       `json:"city" validate:"omitempty,min=1,max=100"`
	State        *string       `json:"state" validate:"omitempty,min=1,max=100"`
	PostalCode   *string       `json:"postal_code" validate:"omitempty,min=1,max=20"`
	Country      *string       `json:"country" validate:"omitempty,min=1,max=56"`
	Latitude     *float64      `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64      `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Notes        *string       `json:"notes" validate:"omitempty,max=5000"`
	IsActive     *bool         `json:"is_active"`
}
