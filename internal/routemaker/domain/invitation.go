package domain

import "time"

// InvitationStatus is the lifecycle state of an invitation. pending is the
// only non-terminal state.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationExpired  InvitationStatus = "expired"
	InvitationRevoked  InvitationStatus = "revoked"
)

// DefaultInvitationTTL is how long a freshly minted invitation stays valid.
const DefaultInvitationTTL = 7 * 24 * time.Hour

// Invitation offers email a role in an organization until ExpiresAt.
type Invitation struct {
	ID             string
	OrganizationID string
	Email          string
	Role           Role
	InvitedBy      string
	Token          string
	Status         InvitationStatus
	ExpiresAt      time.Time
	AcceptedAt     *time.Time
	AcceptedBy     *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsPending reports whether the invitation has not reached a terminal state.
func (i Invitation) IsPending() bool { return i.Status == InvitationPending }

// IsOverdue reports a pending invitation whose window has closed but which
// has not yet been flipped to expired.
func (i Invitation) IsOverdue(now time.Time) bool {
	return i.IsPending() && now.After(i.ExpiresAt)
}

// InvitationDetails is what an invitee sees before accepting.
type InvitationDetails struct {
	Invitation

	OrganizationName    string
	OrganizationLogoURL *string
}

// InvitationInput creates an invitation.
type InvitationInput struct {
	OrganizationID string `json:"organization_id" validate:"required"`
	Email          string `json:"email" validate:"required,email,max=254"`
	Role           Role   `json:"role" validate:"omitempty,oneof=owner admin member"`
}
