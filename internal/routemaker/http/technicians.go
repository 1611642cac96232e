package http

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/service"
	"github.com/aussiebroadwan/routemaker/pkg/httpx"
	"github.com/aussiebroadwan/routemaker/pkg/routesdk"
)

type TechniciansHandler struct {
	TechnicianService *service.TechnicianService
}

// technicianFilter reads the list query. Out of range paging and unknown
// sort keys are normalized later; a bad enum is rejected here.
func technicianFilter(q url.Values) (domain.TechnicianFilter, string) {
	f := domain.TechnicianFilter{
		Search:     strings.TrimSpace(q.Get("search")),
		Sort:       domain.TechnicianSort(q.Get("sort")),
		Descending: strings.EqualFold(q.Get("dir"), "desc"),
	}
	f.Page, _ = strconv.Atoi(q.Get("page"))
	f.PageSize, _ = strconv.Atoi(q.Get("page_size"))

	if v := q.Get("employment_type"); v != "" {
		et := domain.EmploymentType(strings.ToLower(v))
		if et != domain.EmploymentContractor && et != domain.EmploymentEmployee {
			return f, `employment_type must be "contractor" or "employee"`
		}
		f.EmploymentType = &et
	}
	if v := q.Get("active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, "active must be true or false"
		}
		f.Active = &b
	}
	return f, ""
}

// HandleList handles GET /v1/organizations/{id}/technicians
//
//	@Summary		List Technicians
//	@Description	Pages through an organization's technicians with optional name search and filters.
//	@Tags			Technicians
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id				path		string	true	"Organization ID"
//	@Param			search			query		string	false	"Case-insensitive name search"
//	@Param			employment_type	query		string	false	"contractor or employee"
//	@Param			active			query		bool	false	"Filter on active flag"
//	@Param			page			query		int		false	"Page, starting at 1"
//	@Param			page_size		query		int		false	"Page size, at most 100"
//	@Param			sort			query		string	false	"updated_at, created_at, full_name or cost_amount"
//	@Param			dir				query		string	false	"asc or desc"
//	@Success		200				{object}	routesdk.TechnicianList	"data, count, page, page_size, total_pages"
//	@Failure		400				{object}	routesdk.ErrorResponse	"error"
//	@Failure		403				{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/organizations/{id}/technicians [get].
func (h *TechniciansHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id", service.ErrOrganizationNotFound)
	if !ok {
		return
	}

	f, problem := technicianFilter(r.URL.Query())
	if problem != "" {
		httpx.WriteError(w, http.StatusBadRequest, problem)
		return
	}

	page, err := h.TechnicianService.List(r.Context(), me, orgID, f)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTechnicianList(page))
}

// HandleCreate handles POST /v1/technicians
//
//	@Summary		Create Technician
//	@Description	cost_basis defaults to hourly, color_hex to #22C55E and active to true.
//	@Tags			Technicians
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		routesdk.CreateTechnicianRequest	true	"Technician"
//	@Success		201		{object}	routesdk.Technician
//	@Failure		400		{object}	routesdk.ErrorResponse	"error"
//	@Failure		403		{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/technicians [post].
func (h *TechniciansHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}

	var req routesdk.CreateTechnicianRequest
	if !decode(w, r, httpx.MaxBodyBytes, &req) {
		return
	}
	orgID := strings.TrimSpace(req.OrganizationID)
	if orgID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "organization_id is required")
		return
	}

	t, err := h.TechnicianService.Create(r.Context(), me, orgID, technicianInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toTechnician(t))
}

// HandleGet handles GET /v1/technicians/{id}
//
//	@Summary		Get Technician
//	@Tags			Technicians
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Technician ID"
//	@Success		200	{object}	routesdk.Technician
//	@Failure		403	{object}	routesdk.ErrorResponse	"error"
//	@Failure		404	{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/technicians/{id} [get].
func (h *TechniciansHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", service.ErrTechnicianNotFound)
	if !ok {
		return
	}

	t, err := h.TechnicianService.Get(r.Context(), me, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTechnician(t))
}

// HandleUpdate handles PUT /v1/technicians/{id}
//
//	@Summary		Update Technician
//	@Description	Changes the supplied fields. An empty email clears it.
//	@Tags			Technicians
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string								true	"Technician ID"
//	@Param			request	body		routesdk.UpdateTechnicianRequest	true	"Fields to change"
//	@Success		200		{object}	routesdk.Technician
//	@Failure		400		{object}	routesdk.ErrorResponse	"error"
//	@Failure		403		{object}	routesdk.ErrorResponse	"error"
//	@Failure		404		{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/technicians/{id} [put].
func (h *TechniciansHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", service.ErrTechnicianNotFound)
	if !ok {
		return
	}

	var req routesdk.UpdateTechnicianRequest
	if !decode(w, r, httpx.MaxBodyBytes, &req) {
		return
	}

	t, err := h.TechnicianService.Update(r.Context(), me, id, technicianPatch(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTechnician(t))
}

// HandleDelete handles DELETE /v1/technicians/{id}
//
//	@Summary		Delete Technician
//	@Tags			Technicians
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Technician ID"
//	@Success		204
//	@Failure		403	{object}	routesdk.ErrorResponse	"error"
//	@Failure		404	{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/technicians/{id} [delete].
func (h *TechniciansHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", service.ErrTechnicianNotFound)
	if !ok {
		return
	}

	if err := h.TechnicianService.Delete(r.Context(), me, id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.NoContent(w)
}
