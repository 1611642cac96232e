package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/service"
	"github.com/aussiebroadwan/routemaker/pkg/httpx"
	"github.com/aussiebroadwan/routemaker/pkg/routesdk"
)

type ProjectsHandler struct {
	ProjectService *service.ProjectService
}

// HandleList handles GET /v1/organizations/{id}/projects
//
//	@Summary		List Projects
//	@Tags			Projects
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Organization ID"
//	@Success		200	{array}		routesdk.Project
//	@Failure		403	{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/organizations/{id}/projects [get].
func (h *ProjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id", service.ErrOrganizationNotFound)
	if !ok {
		return
	}

	list, err := h.ProjectService.List(r.Context(), me, orgID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProjects(list))
}

// HandleCreate handles POST /v1/projects
//
//	@Summary		Create Project
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		routesdk.CreateProjectRequest	true	"Project"
//	@Success		201		{object}	routesdk.Project
//	@Failure		400		{object}	routesdk.ErrorResponse	"error"
//	@Failure		403		{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/projects [post].
func (h *ProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}

	var req routesdk.CreateProjectRequest
	if !decode(w, r, httpx.MaxBodyBytes, &req) {
		return
	}
	orgID := strings.TrimSpace(req.OrganizationID)
	if orgID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "organization_id is required")
		return
	}

	p, err := h.ProjectService.Create(r.Context(), me, orgID, domain.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toProject(p))
}

// HandleGet handles GET /v1/projects/{id}
//
//	@Summary		Get Project
//	@Tags			Projects
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Project ID"
//	@Success		200	{object}	routesdk.Project
//	@Failure		403	{object}	routesdk.ErrorResponse	"error"
//	@Failure		404	{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/projects/{id} [get].
func (h *ProjectsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", service.ErrProjectNotFound)
	if !ok {
		return
	}

	p, err := h.ProjectService.Get(r.Context(), me, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProject(p))
}

// HandleUpdate handles PATCH /v1/projects/{id}
//
//	@Summary		Update Project
//	@Description	Changes name or description. The owning organization cannot be changed.
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Project ID"
//	@Param			request	body		routesdk.UpdateProjectRequest	true	"Fields to change"
//	@Success		200		{object}	routesdk.Project
//	@Failure		400		{object}	routesdk.ErrorResponse	"error"
//	@Failure		403		{object}	routesdk.ErrorResponse	"error"
//	@Failure		404		{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/projects/{id} [patch].
func (h *ProjectsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", service.ErrProjectNotFound)
	if !ok {
		return
	}

	var req routesdk.UpdateProjectRequest
	if !decode(w, r, httpx.MaxBodyBytes, &req) {
		return
	}

	p, err := h.ProjectService.Update(r.Context(), me, id, domain.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProject(p))
}

// HandleDelete handles DELETE /v1/projects/{id}
//
//	@Summary		Delete Project
//	@Description	Requires admin or owner of the project's organization.
//	@Tags			Projects
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Project ID"
//	@Success		204
//	@Failure		403	{object}	routesdk.ErrorResponse	"error"
//	@Failure		404	{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/projects/{id} [delete].
func (h *ProjectsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", service.ErrProjectNotFound)
	if !ok {
		return
	}

	if err := h.ProjectService.Delete(r.Context(), me, id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.NoContent(w)
}
