package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/service"
	"github.com/aussiebroadwan/routemaker/pkg/httpx"
	"github.com/aussiebroadwan/routemaker/pkg/routesdk"
)

type ProfilesHandler struct {
	ProfileService *service.ProfileService
}

// HandleGetMe handles GET /v1/profiles/me
//
//	@Summary		Get My Profile
//	@Description	Returns the caller's profile, creating it from the token's email on first use.
//	@Tags			Profiles
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	routesdk.Profile
//	@Failure		401	{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/profiles/me [get].
func (h *ProfilesHandler) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}

	p, err := h.ProfileService.Me(r.Context(), me)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProfile(p))
}

// HandleUpdateMe handles PATCH /v1/profiles/me
//
//	@Summary		Update My Profile
//	@Description	Changes the supplied fields. An empty string clears a field.
//	@Tags			Profiles
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		routesdk.UpdateProfileRequest	true	"Fields to change"
//	@Success		200		{object}	routesdk.Profile
//	@Failure		400		{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/profiles/me [patch].
func (h *ProfilesHandler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}

	var req routesdk.UpdateProfileRequest
	if !decode(w, r, httpx.MaxBodyBytes, &req) {
		return
	}

	p, err := h.ProfileService.UpdateMe(r.Context(), me, domain.ProfilePatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProfile(p))
}

// HandleGet handles GET /v1/profiles/{userId}
//
//	@Summary		Get Public Profile
//	@Description	Returns another user's name, avatar and bio. Email is never included.
//	@Tags			Profiles
//	@Produce		json
//	@Security		BearerAuth
//	@Param			userId	path		string	true	"User ID (UUID)"
//	@Success		200		{object}	routesdk.PublicProfile
//	@Failure		404		{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/profiles/{userId} [get].
func (h *ProfilesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if _, ok := actor(w, r); !ok {
		return
	}

	// User ids come from the identity provider and are UUIDs, not ULIDs.
	userID := r.PathValue("userId")
	if _, err := uuid.Parse(userID); err != nil {
		httpx.WriteError(w, http.StatusNotFound, service.ErrProfileNotFound.Error())
		return
	}

	p, err := h.ProfileService.Get(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPublicProfile(p))
}
