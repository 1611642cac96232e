// Package notify delivers outbound email.
package notify

import (
	"context"
	"time"
)

// InvitationEmail is everything needed to tell someone they were invited.
type InvitationEmail struct {
	To               string
	OrganizationName string
	Role             string
	InviteURL        string
	ExpiresAt        time.Time
}

// Mailer sends transactional email. Implementations must be safe for
// concurrent use.
type Mailer interface {
	SendInvitation(ctx context.Context, msg InvitationEmail) error
}
