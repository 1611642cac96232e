package domain

import "time"

type EmploymentType string

const (
	EmploymentContractor EmploymentType = "contractor"
	EmploymentEmployee   EmploymentType = "employee"
)

type CostBasis string

const (
	CostHourly  CostBasis = "hourly"
	CostSalary  CostBasis = "salary"
	CostPerStop CostBasis = "per_stop"
	CostOther   CostBasis = "other"
)

// DefaultTechnicianColor is the map pin color for new technicians.
const DefaultTechnicianColor = "#22C55E"

type Technician struct {
	ID             string
	OrganizationID string
	FullName       string
	EmploymentType EmploymentType
	Email          *string
	Phone          *string
	AddressLine1   *string
	AddressLine2   *string
	City           *string
	State          *string
	PostalCode     *string
	CostBasis      CostBasis
	CostAmount     float64
	ColorHex       string
	Active         bool
	Notes          *string
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type TechnicianInput struct {
	FullName       string         `json:"full_name" validate:"required,min=2,max=200"`
	EmploymentType EmploymentType `json:"employment_type" validate:"required,oneof=contractor employee"`
	Email          *string        `json:"email" validate:"omitempty,email,max=254"`
	Phone          *string        `json:"phone" validate:"omitempty,max=40"`
	AddressLine1   *string        `json:"address_line1" validate:"omitempty,max=200"`
	AddressLine2   *string        `json:"address_line2" validate:"omitempty,max=200"`
	City           *string        `json:"city" validate:"omitempty,max=100"`
	State          *string        `json:"state" validate:"omitempty,max=100"`
	PostalCode     *string        `json:"postal_code" validate:"omitempty,max=20"`
	CostBasis      CostBasis      `json:"cost_basis" validate:"omitempty,oneof=hourly salary per_stop other"`
	CostAmount     float64        `json:"cost_amount" validate:"gte=0"`
	ColorHex       string         `json:"color_hex" validate:"omitempty,len=7,hexcolor"`
	Active         *bool          `json:"active"`
	Notes          *string        `json:"notes" validate:"omitempty,max=5000"`
}

// TechnicianPatch has no organization field; see LocationPatch.
type TechnicianPatch struct {
	FullName       *string         `json:"full_name" validate:"omitempty,min=2,max=200"`
	EmploymentType *EmploymentType `json:"employment_type" validate:"omitempty,oneof=contractor employee"`
	Email          *string         `json:"email" validate:"omitempty,email,max=254"`
	Phone          *string         `json:"phone" validate:"omitempty,max=40"`
	AddressLine1   *string         `json:"address_line1" validate:"omitempty,max=200"`
	AddressLine2   *string         `json:"address_line2" validate:"omitempty,max=200"`
	City           *string         `json:"city" validate:"omitempty,max=100"`
	State          *string         `json:"state" validate:"omitempty,max=100"`
	PostalCode     *string         `json:"postal_code" validate:"omitempty,max=20"`
	CostBasis      *CostBasis      `json:"cost_basis" validate:"omitempty,oneof=hourly salary per_stop other"`
	CostAmount     *float64        `json:"cost_amount" validate:"omitempty,gte=0"`
	ColorHex       *string         `json:"color_hex" validate:"omitempty,len=7,hexcolor"`
	Active         *bool           `json:"active"`
	Notes          *string         `json:"notes" validate:"omitempty,max=5000"`
}

// TechnicianSort names the sortable columns.
type TechnicianSort string

const (
	SortTechnicianUpdatedAt TechnicianSort = "updated_at"
	SortTechnicianCreatedAt TechnicianSort = "created_at"
	SortTechnicianFullName  TechnicianSort = "full_name"
	SortTechnicianCost      TechnicianSort = "cost_amount"
)

// TechnicianFilter narrows and pages a technician listing.
type TechnicianFilter struct {
	Search         string
	EmploymentType *EmploymentType
	Active         *bool
	Sort           TechnicianSort
	Descending     bool
	Page           int
	PageSize       int
}

// Default and maximum page sizes for paged listings.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Normalize fills defaults and clamps paging.
func (f TechnicianFilter) Normalize() TechnicianFilter {
	switch f.Sort {
	case SortTechnicianUpdatedAt, SortTechnicianCreatedAt, SortTechnicianFullName, SortTechnicianCost:
	default:
		f.Sort = SortTechnicianUpdatedAt
		f.Descending = true
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	return f
}

// Offset is the row offset of the current page.
func (f TechnicianFilter) Offset() int { return (f.Page - 1) * f.PageSize }

// Page is one page of a listing.
type Page[T any] struct {
	Items      []T
	Count      int
	Page       int
	PageSize   int
	TotalPages int
}

// NewPage computes TotalPages from count and pageSize.
func NewPage[T any](items []T, count, page, pageSize int) Page[T] {
	total := 0
	if pageSize > 0 {
		total = (count + pageSize - 1) / pageSize
	}
	return Page[T]{Items: items, Count: count, Page: page, PageSize: pageSize, TotalPages: total}
}
