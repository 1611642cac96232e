package service

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers map these to status codes with errors.Is; every
// specific error below wraps exactly one of them.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation failed")
	ErrUpstream        = errors.New("upstream service failed")
)

var (
	ErrNotAMember       = kind(ErrForbidden, "not a member of this organization")
	ErrInsufficientRole = kind(ErrForbidden, "insufficient role for this action")
	ErrInvalidRole      = kind(ErrForbidden, "membership has an unrecognised role")
	ErrEmailMismatch    = kind(ErrForbidden, "this invitation was sent to a different email address")

	ErrOrganizationNotFound = kind(ErrNotFound, "organization not found")
	ErrMemberNotFound       = kind(ErrNotFound, "member not found")
	ErrInvitationNotFound   = kind(ErrNotFound, "invitation not found")
	ErrProfileNotFound      = kind(ErrNotFound, "profile not found")
	ErrProjectNotFound      = kind(ErrNotFound, "project not found")
	ErrLocationNotFound     = kind(ErrNotFound, "location not found")
	ErrTechnicianNotFound   = kind(ErrNotFound, "technician not found")

	ErrAlreadyMember     = kind(ErrConflict, "user is already a member of this organization")
	ErrLastOwner         = kind(ErrConflict, "organization must keep at least one owner")
	ErrInvitationInvalid = kind(ErrConflict, "invitation is no longer valid")
	ErrInvitationExpired = kind(ErrConflict, "invitation has expired")
	ErrSlugTaken         = kind(ErrConflict, "organization slug is already taken")

	ErrCouldNotGeocode = kind(ErrValidation, "Could not geocode address")
	ErrNoIdentityEmail = kind(ErrValidation, "identity has no email address")
)

// kindError is a specific error with its own message that still matches
// its kind under errors.Is.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func kind(k error, msg string) error {
	return &kindError{kind: k, msg: msg}
}

// invalid builds an ErrValidation with a caller-facing message.
func invalid(format string, args ...any) error {
	return kind(ErrValidation, fmt.Sprintf(format, args...))
}

// upstream wraps a dependency failure so it maps to ErrUpstream but keeps
// the cause's message.
func upstream(err error) error {
	return kind(ErrUpstream, err.Error())
}
