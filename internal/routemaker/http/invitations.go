package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/service"
	"github.com/aussiebroadwan/routemaker/pkg/httpx"
	"github.com/aussiebroadwan/routemaker/pkg/routesdk"
)

// maxTokenLen bounds the token path segment before it reaches the store.
const maxTokenLen = 128

// InvitationsHandler serves the invitation lifecycle.
type InvitationsHandler struct {
	InvitationService *service.InvitationService
}

// HandleList handles GET /v1/organizations/{id}/invitations
//
//	@Summary		List Invitations
//	@Description	Lists pending and expired invitations, newest first. Requires admin or owner.
//	@Tags			Invitations
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Organization ID"
//	@Success		200	{array}		routesdk.Invitation
//	@Failure		403	{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/organizations/{id}/invitations [get].
func (h *InvitationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id", service.ErrOrganizationNotFound)
	if !ok {
		return
	}

	list, err := h.InvitationService.ListForOrganization(r.Context(), me, orgID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInvitations(list))
}

// HandleCreate handles POST /v1/invitations
//
//	@Summary		Invite Member
//	@Description	Invites an email address into an organization and sends the invite link. A live pending invitation for the same address is resent with its original token.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		routesdk.CreateInvitationRequest	true	"Invitation"
//	@Success		201		{object}	routesdk.CreateInvitationResponse	"invitation, invite_url, resent"
//	@Failure		400		{object}	routesdk.ErrorResponse				"error"
//	@Failure		403		{object}	routesdk.ErrorResponse				"error"
//	@Failure		409		{object}	routesdk.ErrorResponse				"error"
//	@Router			/v1/invitations [post].
func (h *InvitationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}

	var req routesdk.CreateInvitationRequest
	if !decode(w, r, httpx.MaxBodyBytes, &req) {
		return
	}

	res, err := h.InvitationService.Create(r.Context(), me, domain.InvitationInput{
		OrganizationID: strings.TrimSpace(req.OrganizationID),
		Email:          req.Email,
		Role:           domain.Role(strings.ToLower(strings.TrimSpace(req.Role))),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, routesdk.CreateInvitationResponse{
		Invitation: toInvitation(res.Invitation),
		InviteURL:  h.InvitationService.InviteURL(res.Invitation.Token),
		Resent:     res.Resent,
	})
}

// HandleRevoke handles DELETE /v1/invitations/{id}
//
//	@Summary		Revoke Invitation
//	@Tags			Invitations
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Invitation ID"
//	@Success		204
//	@Failure		403	{object}	routesdk.ErrorResponse	"error"
//	@Failure		404	{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/invitations/{id} [delete].
func (h *InvitationsHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", service.ErrInvitationNotFound)
	if !ok {
		return
	}

	if err := h.InvitationService.Revoke(r.Context(), me, id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.NoContent(w)
}

func tokenParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := r.PathValue("token")
	if token == "" || len(token) > maxTokenLen {
		httpx.WriteError(w, http.StatusNotFound, service.ErrInvitationNotFound.Error())
		return "", false
	}
	return token, true
}

// HandleGetByToken handles GET /v1/invitations/token/{token}
//
//	@Summary		Look Up Invitation
//	@Description	Public endpoint used by the invite page. Returns the invitation and the inviting organization while it is still pending.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string	true	"Invitation token"
//	@Success		200		{object}	routesdk.InvitationDetails
//	@Failure		400		{object}	routesdk.ErrorResponse	"error - invitation expired or no longer valid"
//	@Failure		404		{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/invitations/token/{token} [get].
func (h *InvitationsHandler) HandleGetByToken(w http.ResponseWriter, r *http.Request) {
	token, ok := tokenParam(w, r)
	if !ok {
		return
	}

	d, err := h.InvitationService.GetByToken(r.Context(), token)
	if err != nil {
		// The invite page treats a dead link as a bad request, not a conflict.
		if errors.Is(err, service.ErrInvitationExpired) || errors.Is(err, service.ErrInvitationInvalid) {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInvitationDetails(d))
}

// HandleAccept handles POST /v1/invitations/accept/{token}
//
//	@Summary		Accept Invitation
//	@Description	Joins the caller to the inviting organization. The token's email claim must match the invited address.
//	@Tags			Invitations
//	@Produce		json
//	@Security		BearerAuth
//	@Param			token	path		string	true	"Invitation token"
//	@Success		200		{object}	routesdk.AcceptInvitationResponse	"organization_id, role"
//	@Failure		400		{object}	routesdk.ErrorResponse				"error"
//	@Failure		403		{object}	routesdk.ErrorResponse				"error - email mismatch"
//	@Failure		404		{object}	routesdk.ErrorResponse				"error"
//	@Failure		409		{object}	routesdk.ErrorResponse				"error - already accepted, revoked or expired"
//	@Router			/v1/invitations/accept/{token} [post].
func (h *InvitationsHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	token, ok := tokenParam(w, r)
	if !ok {
		return
	}

	res, err := h.InvitationService.Accept(r.Context(), me, token)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, routesdk.AcceptInvitationResponse{
		OrganizationID: res.OrganizationID,
		Role:           res.Role.String(),
	})
}
