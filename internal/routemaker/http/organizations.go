package http

import (
	"net/http"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/service"
	"github.com/aussiebroadwan/routemaker/pkg/httpx"
	"github.com/aussiebroadwan/routemaker/pkg/routesdk"
)

// OrganizationsHandler serves organizations and their member lists.
type OrganizationsHandler struct {
	OrganizationService *service.OrganizationService
}

// HandleList handles GET /v1/organizations
//
//	@Summary		List My Organizations
//	@Description	Lists every organization the caller belongs to, with the caller's role in each.
//	@Tags			Organizations
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		routesdk.OrganizationSummary
//	@Failure		401	{object}	routesdk.ErrorResponse	"error"
//	@Failure		500	{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/organizations [get].
func (h *OrganizationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}

	orgs, err := h.OrganizationService.ListForUser(r.Context(), me)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toOrganizationSummaries(orgs))
}

// HandleCreate handles POST /v1/organizations
//
//	@Summary		Create Organization
//	@Description	Creates an organization with a unique slug derived from its name. The caller becomes its owner.
//	@Tags			Organizations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		routesdk.CreateOrganizationRequest	true	"Organization name"
//	@Success		201		{object}	routesdk.Organization
//	@Failure		400		{object}	routesdk.ErrorResponse	"error"
//	@Failure		401		{object}	routesdk.ErrorResponse	"error"
//	@Failure		500		{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/organizations [post].
func (h *OrganizationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}

	var req routesdk.CreateOrganizationRequest
	if !decode(w, r, httpx.MaxBodyBytes, &req) {
		return
	}

	org, err := h.OrganizationService.Create(r.Context(), me, domain.OrganizationInput{Name: req.Name})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toOrganization(org))
}

// HandleGet handles GET /v1/organizations/{id}
//
//	@Summary		Get Organization
//	@Tags			Organizations
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Organization ID"
//	@Success		200	{object}	routesdk.OrganizationWithRole
//	@Failure		401	{object}	routesdk.ErrorResponse	"error"
//	@Failure		403	{object}	routesdk.ErrorResponse	"error"
//	@Failure		404	{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/organizations/{id} [get].
func (h *OrganizationsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id", service.ErrOrganizationNotFound)
	if !ok {
		return
	}

	org, role, err := h.OrganizationService.Get(r.Context(), me, orgID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, routesdk.OrganizationWithRole{
		Organization: toOrganization(org),
		Role:         role.String(),
	})
}

// HandleUpdate handles PATCH /v1/organizations/{id}
//
//	@Summary		Update Organization
//	@Description	Changes name, logo or settings. Requires admin or owner. The slug never changes.
//	@Tags			Organizations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string								true	"Organization ID"
//	@Param			request	body		routesdk.UpdateOrganizationRequest	true	"Fields to change"
//	@Success		200		{object}	routesdk.Organization
//	@Failure		400		{object}	routesdk.ErrorResponse	"error"
//	@Failure		403		{object}	routesdk.ErrorResponse	"error"
//	@Failure		404		{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/organizations/{id} [patch].
func (h *OrganizationsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id", service.ErrOrganizationNotFound)
	if !ok {
		return
	}

	var req routesdk.UpdateOrganizationRequest
	if !decode(w, r, httpx.MaxBodyBytes, &req) {
		return
	}

	org, err := h.OrganizationService.Update(r.Context(), me, orgID, domain.OrganizationPatch{
		Name:     req.Name,
		LogoURL:  req.LogoURL,
		Settings: req.Settings,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toOrganization(org))
}

// HandleDelete handles DELETE /v1/organizations/{id}
//
//	@Summary		Delete Organization
//	@Description	Deletes the organization and everything it owns. Owner only.
//	@Tags			Organizations
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Organization ID"
//	@Success		204
//	@Failure		403	{object}	routesdk.ErrorResponse	"error"
//	@Failure		404	{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/organizations/{id} [delete].
func (h *OrganizationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id", service.ErrOrganizationNotFound)
	if !ok {
		return
	}

	if err := h.OrganizationService.Delete(r.Context(), me, orgID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// HandleListMembers handles GET /v1/organizations/{id}/members
//
//	@Summary		List Members
//	@Tags			Members
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Organization ID"
//	@Success		200	{array}		routesdk.Member
//	@Failure		403	{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/organizations/{id}/members [get].
func (h *OrganizationsHandler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id", service.ErrOrganizationNotFound)
	if !ok {
		return
	}

	members, err := h.OrganizationService.ListMembers(r.Context(), me, orgID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMembers(members))
}

// HandleUpdateMember handles PATCH /v1/organizations/{id}/members/{memberId}
//
//	@Summary		Change Member Role
//	@Description	Admins may move members between member and admin. Only owners may grant or take away owner, and the last owner cannot be demoted.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id			path		string							true	"Organization ID"
//	@Param			memberId	path		string							true	"Membership ID"
//	@Param			request		body		routesdk.UpdateMemberRequest	true	"New role"
//	@Success		200			{object}	routesdk.Member
//	@Failure		400			{object}	routesdk.ErrorResponse	"error"
//	@Failure		403			{object}	routesdk.ErrorResponse	"error"
//	@Failure		404			{object}	routesdk.ErrorResponse	"error"
//	@Failure		409			{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/organizations/{id}/members/{memberId} [patch].
func (h *OrganizationsHandler) HandleUpdateMember(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id", service.ErrOrganizationNotFound)
	if !ok {
		return
	}
	memberID, ok := pathID(w, r, "memberId", service.ErrMemberNotFound)
	if !ok {
		return
	}

	var req routesdk.UpdateMemberRequest
	if !decode(w, r, httpx.MaxBodyBytes, &req) {
		return
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "role must be one of: owner, admin, member")
		return
	}

	m, err := h.OrganizationService.UpdateMemberRole(r.Context(), me, orgID, memberID, role)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMember(domain.Member{Membership: m}))
}

// HandleRemoveMember handles DELETE /v1/organizations/{id}/members/{memberId}
//
//	@Summary		Remove Member
//	@Tags			Members
//	@Security		BearerAuth
//	@Param			id			path	string	true	"Organization ID"
//	@Param			memberId	path	string	true	"Membership ID"
//	@Success		204
//	@Failure		403	{object}	routesdk.ErrorResponse	"error"
//	@Failure		404	{object}	routesdk.ErrorResponse	"error"
//	@Failure		409	{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/organizations/{id}/members/{memberId} [delete].
func (h *OrganizationsHandler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id", service.ErrOrganizationNotFound)
	if !ok {
		return
	}
	memberID, ok := pathID(w, r, "memberId", service.ErrMemberNotFound)
	if !ok {
		return
	}

	if err := h.OrganizationService.RemoveMember(r.Context(), me, orgID, memberID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// HandleLeave handles POST /v1/organizations/{id}/leave
//
//	@Summary		Leave Organization
//	@Description	Removes the caller's own membership. The last owner cannot leave.
//	@Tags			Members
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Organization ID"
//	@Success		204
//	@Failure		403	{object}	routesdk.ErrorResponse	"error"
//	@Failure		409	{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/organizations/{id}/leave [post].
func (h *OrganizationsHandler) HandleLeave(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id", service.ErrOrganizationNotFound)
	if !ok {
		return
	}

	if err := h.OrganizationService.Leave(r.Context(), me, orgID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.NoContent(w)
}
