package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement it. Repositories hang off it as methods so a Tx can
// hand out the same repositories bound to the transaction, and so nobody
// opens a transaction inside a transaction by accident.
type Store interface {
	Organizations() Organizations
	Members() Members
	Invitations() Invitations
	Profiles() Profiles
	Projects() Projects
	Locations() Locations
	Technicians() Technicians

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction. A nil return commits, anything
	// else rolls back. Inside fn only the tx argument may be used.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Organizations interface {
	// CreateOrganization inserts o. A duplicate slug is ErrAlreadyExists.
	CreateOrganization(ctx context.Context, o domain.Organization) error

	GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error)

	// LockOrganization holds a row lock on the organization until the
	// surrounding transaction ends. Membership changes that must keep an
	// owner take it before counting owners. Outside a transaction it only
	// checks that the organization exists.
	LockOrganization(ctx context.Context, id string) error

	// SlugExists reports whether any organization already uses slug.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// UpdateOrganization writes name, logo_url, settings and updated_at.
	UpdateOrganization(ctx context.Context, o domain.Organization) error

	// DeleteOrganization cascades to memberships, invitations, projects,
	// locations and technicians.
	DeleteOrganization(ctx context.Context, id string) error

	// ListOrganizationsForUser returns every organization userID belongs
	// to with the caller's role, ordered by name.
	ListOrganizationsForUser(ctx context.Context, userID string) ([]domain.OrganizationSummary, error)
}

type Members interface {
	// CreateMembership inserts m. A second membership for the same
	// (organization, user) is ErrAlreadyExists.
	CreateMembership(ctx context.Context, m domain.Membership) error

	// GetMembership looks up userID's membership in orgID.
	GetMembership(ctx context.Context, orgID, userID string) (domain.Membership, error)

	GetMembershipByID(ctx context.Context, id string) (domain.Membership, error)

	// ListMembers returns the members of orgID joined with their profiles,
	// oldest membership first.
	ListMembers(ctx context.Context, orgID string) ([]domain.Member, error)

	UpdateMembershipRole(ctx context.Context, id string, role domain.Role, now time.Time) error

	DeleteMembership(ctx context.Context, id string) error

	// CountOwners returns how many owners orgID has.
	CountOwners(ctx context.Context, orgID string) (int, error)

	// IsEmailMember reports whether a member of orgID has a profile with
	// the given (lower-cased) email.
	IsEmailMember(ctx context.Context, orgID, email string) (bool, error)
}

type Invitations interface {
	// CreateInvitation inserts inv. A second pending invitation for the
	// same (organization, email) is ErrAlreadyExists.
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// GetInvitationByToken returns the invitation with its organization's
	// name and logo.
	GetInvitationByToken(ctx context.Context, token string) (domain.InvitationDetails, error)

	// GetPendingInvitation returns the pending invitation for (orgID, email).
	GetPendingInvitation(ctx context.Context, orgID, email string) (domain.Invitation, error)

	// ListInvitations returns the invitations of orgID in any of the given
	// statuses, newest first.
	ListInvitations(ctx context.Context, orgID string, statuses []domain.InvitationStatus) ([]domain.Invitation, error)

	// ExpireInvitation flips id to expired if it is still pending and its
	// expires_at is before now. It reports whether a row changed.
	ExpireInvitation(ctx context.Context, id string, now time.Time) (bool, error)

	// ExpireOverdueInvitations flips every overdue pending invitation to
	// expired and returns how many changed.
	ExpireOverdueInvitations(ctx context.Context, now time.Time) (int64, error)

	// AcceptInvitation marks id accepted by userID if it is still pending
	// and not past expires_at. It reports whether a row changed.
	AcceptInvitation(ctx context.Context, id, userID string, now time.Time) (bool, error)

	// RevokeInvitation sets revoked regardless of the current status.
	RevokeInvitation(ctx context.Context, id string, now time.Time) error
}

type Profiles interface {
	GetProfile(ctx context.Context, id string) (domain.Profile, error)

	// EnsureProfile creates the profile for id if missing and syncs email
	// when it is non-empty. It returns the stored profile.
	EnsureProfile(ctx context.Context, id, email string, now time.Time) (domain.Profile, error)

	// UpdateProfile writes the editable fields and updated_at.
	UpdateProfile(ctx context.Context, p domain.Profile) error
}

type Projects interface {
	CreateProject(ctx context.Context, p domain.Project) error
	GetProjectByID(ctx context.Context, id string) (domain.Project, error)
	ListProjects(ctx context.Context, orgID string) ([]domain.Project, error)

	// UpdateProject writes everything but id, organization_id, created_by
	// and created_at.
	UpdateProject(ctx context.Context, p domain.Project) error
	DeleteProject(ctx context.Context, id string) error
}

type Locations interface {
	CreateLocation(ctx context.Context, l domain.Location) error
	GetLocationByID(ctx context.Context, id string) (domain.Location, error)

	// GetLocationsByIDs returns the rows that exist, in no particular order.
	GetLocationsByIDs(ctx context.Context, ids []string) ([]domain.Location, error)

	// ListLocations returns orgID's locations ordered by name.
	ListLocations(ctx context.Context, orgID string) ([]domain.Location, error)

	// UpdateLocation writes everything but id, organization_id and
	// created_at.
	UpdateLocation(ctx context.Context, l domain.Location) error

	UpdateLocationCoordinates(ctx context.Context, id string, lat, lng float64, now time.Time) error
	DeleteLocation(ctx context.Context, id string) error
}

type Technicians interface {
	CreateTechnician(ctx context.Context, t domain.Technician) error
	GetTechnicianByID(ctx context.Context, id string) (domain.Technician, error)

	// ListTechnicians returns one page of orgID's technicians matching f
	// (already normalized) and the total number of matches.
	ListTechnicians(ctx context.Context, orgID string, f domain.TechnicianFilter) ([]domain.Technician, int, error)

	// UpdateTechnician writes everything but id, organization_id,
	// created_by and created_at.
	UpdateTechnician(ctx context.Context, t domain.Technician) error
	DeleteTechnician(ctx context.Context, id string) error
}
