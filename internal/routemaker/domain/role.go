package domain

import (
	"errors"
	"strings"
)

// Role is a member's standing within one organization. The set is closed
// and totally ordered: owner > admin > member.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// ErrUnknownRole is returned by ParseRole for anything outside the enum.
var ErrUnknownRole = errors.New("unknown role")

// Rank orders roles. Unknown roles rank 0 so they never satisfy a check.
func (r Role) Rank() int {
	switch r {
	case RoleOwner:
		return 3
	case RoleAdmin:
		return 2
	case RoleMember:
		return 1
	default:
		return 0
	}
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool { return r.Rank() > 0 }

// Meets reports whether r is at least min. Both sides must be valid.
func (r Role) Meets(min Role) bool {
	return r.Valid() && min.Valid() && r.Rank() >= min.Rank()
}

func (r Role) String() string { return string(r) }

// ParseRole normalizes and validates s.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", ErrUnknownRole
	}
	return r, nil
}
