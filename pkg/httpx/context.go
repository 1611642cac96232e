package httpx

import (
	"context"

	"github.com/aussiebroadwan/routemaker/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyEmail  ctxKey = "email"
	CtxKeyClaims ctxKey = "claims"
)

// Identity is the authenticated caller as established by AuthnMiddleware.
type Identity struct {
	UserID string
	Email  string
}

// IdentityFromContext returns the caller identity, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	userID, _ := ctx.Value(CtxKeyUserID).(string)
	if userID == "" {
		return Identity{}, false
	}
	email, _ := ctx.Value(CtxKeyEmail).(string)
	return Identity{UserID: userID, Email: email}, true
}

// ClaimsFromContext returns the full verified claims.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}

// ContextWithIdentity injects claims the same way AuthnMiddleware does.
// Handler tests use it to skip token minting.
func ContextWithIdentity(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyEmail, c.NormalizedEmail())
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}
