package httpx

import "net/http"

// RequireEmailClaim rejects callers whose token carries no email. Invitation
// flows match on email, so they cannot work for phone or anonymous sessions.
func RequireEmailClaim() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				WriteError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if id.Email == "" {
				WriteError(w, http.StatusForbidden, "an email address is required for this operation")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
