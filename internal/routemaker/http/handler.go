package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/service"
	"github.com/aussiebroadwan/routemaker/pkg/httpx"
	"github.com/aussiebroadwan/routemaker/pkg/idx"
	"github.com/aussiebroadwan/routemaker/pkg/slogx"
)

// actor returns the authenticated caller, writing a 401 when there is none.
// Routes are wrapped in AuthnMiddleware, so a miss means a wiring bug.
func actor(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "authentication required")
		return domain.Identity{}, false
	}
	return domain.Identity{UserID: id.UserID, Email: id.Email}, true
}

// decode reads a JSON body, writing a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, limit int64, dst any) bool {
	if err := httpx.DecodeJSON(w, r, limit, dst); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// statusFor maps a service error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError writes err as {"error": ...}. Unclassified errors are
// logged and replaced with a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		httpx.WriteError(w, code, "internal server error")
		return
	}
	httpx.WriteError(w, code, err.Error())
}

// pathID reads a ULID path value. Malformed ids can never match a row, so
// they are answered with notFound without touching the store.
func pathID(w http.ResponseWriter, r *http.Request, name string, notFound error) (string, bool) {
	id := r.PathValue(name)
	if !idx.Valid(id) {
		httpx.WriteError(w, http.StatusNotFound, notFound.Error())
		return "", false
	}
	return id, true
}
