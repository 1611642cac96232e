package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/routemaker/pkg/jwtx"
	"github.com/aussiebroadwan/routemaker/pkg/slogx"
	"github.com/google/uuid"
)

// AuthnMiddleware verifies the bearer token and injects the caller identity.
// The identity provider keys users by UUID, so a subject that does not parse
// as one is rejected before any handler runs.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			if _, err := uuid.Parse(claims.Subject); err != nil {
				log.Warn("jwt subject is not a uuid", "sub", claims.Subject)
				writeBearerError(w, "invalid subject")
				return
			}

			ctx = ContextWithIdentity(ctx, claims)
			ctx = slogx.WithUserID(ctx, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "authentication required")
}
