package notify

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/routemaker/pkg/slogx"
)

// NoopMailer drops mail when no provider is configured.
type NoopMailer struct{}

func NewNoopMailer() *NoopMailer { return &NoopMailer{} }

func (NoopMailer) SendInvitation(ctx context.Context, msg InvitationEmail) error {
	slogx.FromContext(ctx).Debug("email delivery disabled, dropping invitation email",
		slog.String("organization", msg.OrganizationName),
	)
	return nil
}

var _ Mailer = NoopMailer{}
