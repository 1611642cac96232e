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

// LocationsHandler serves locations, bulk import and geocoding.
type LocationsHandler struct {
	LocationService *service.LocationService
}

// HandleList handles GET /v1/organizations/{id}/locations
//
//	@Summary		List Locations
//	@Tags			Locations
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Organization ID"
//	@Success		200	{array}		routesdk.Location
//	@Failure		403	{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/organizations/{id}/locations [get].
func (h *LocationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id", service.ErrOrganizationNotFound)
	if !ok {
		return
	}

	list, err := h.LocationService.List(r.Context(), me, orgID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toLocations(list))
}

// HandleCreate handles POST /v1/locations
//
//	@Summary		Create Location
//	@Description	Country defaults to US and is_active to true.
//	@Tags			Locations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		routesdk.CreateLocationRequest	true	"Location"
//	@Success		201		{object}	routesdk.Location
//	@Failure		400		{object}	routesdk.ErrorResponse	"error"
//	@Failure		403		{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/locations [post].
func (h *LocationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}

	var req routesdk.CreateLocationRequest
	if !decode(w, r, httpx.MaxBodyBytes, &req) {
		return
	}
	orgID := strings.TrimSpace(req.OrganizationID)
	if orgID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "organization_id is required")
		return
	}

	l, err := h.LocationService.Create(r.Context(), me, orgID, locationInput(req.LocationFields))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toLocation(l))
}

// HandleGet handles GET /v1/locations/{id}
//
//	@Summary		Get Location
//	@Tags			Locations
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Location ID"
//	@Success		200	{object}	routesdk.Location
//	@Failure		403	{object}	routesdk.ErrorResponse	"error"
//	@Failure		404	{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/locations/{id} [get].
func (h *LocationsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", service.ErrLocationNotFound)
	if !ok {
		return
	}

	l, err := h.LocationService.Get(r.Context(), me, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toLocation(l))
}

// HandleUpdate handles PUT /v1/locations/{id}
//
//	@Summary		Update Location
//	@Description	Changes the supplied fields. Any organization_id in the body is ignored.
//	@Tags			Locations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Location ID"
//	@Param			request	body		routesdk.UpdateLocationRequest	true	"Fields to change"
//	@Success		200		{object}	routesdk.Location
//	@Failure		400		{object}	routesdk.ErrorResponse	"error"
//	@Failure		403		{object}	routesdk.ErrorResponse	"error"
//	@Failure		404		{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/locations/{id} [put].
func (h *LocationsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", service.ErrLocationNotFound)
	if !ok {
		return
	}

	var req routesdk.UpdateLocationRequest
	if !decode(w, r, httpx.MaxBodyBytes, &req) {
		return
	}

	l, err := h.LocationService.Update(r.Context(), me, id, locationPatch(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toLocation(l))
}

// HandleDelete handles DELETE /v1/locations/{id}
//
//	@Summary		Delete Location
//	@Tags			Locations
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Location ID"
//	@Success		204
//	@Failure		403	{object}	routesdk.ErrorResponse	"error"
//	@Failure		404	{object}	routesdk.ErrorResponse	"error"
//	@Router			/v1/locations/{id} [delete].
func (h *LocationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", service.ErrLocationNotFound)
	if !ok {
		return
	}

	if err := h.LocationService.Delete(r.Context(), me, id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// HandleImport handles POST /v1/locations/import
//
//	@Summary		Import Locations
//	@Description	Inserts many locations into one organization. Each row is validated on its own; bad rows are reported with their 1-based position and skipped.
//	@Description	Send JSON, or text/csv with a snake_case header line and the organization in ?organizationId=.
//	@Tags			Locations
//	@Accept			json
//	@Accept			text/csv
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request			body		routesdk.ImportLocationsRequest	true	"Rows to import"
//	@Param			organizationId	query		string							false	"Organization ID (CSV only)"
//	@Success		200				{object}	routesdk.ImportResult			"success, failed, errors"
//	@Failure		400				{object}	routesdk.ErrorResponse			"error"
//	@Failure		403				{object}	routesdk.ErrorResponse			"error"
//	@Router			/v1/locations/import [post].
func (h *LocationsHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}

	var (
		orgID    string
		rows     []domain.LocationInput
		rejected map[int]error
	)
	if isCSV(r) {
		orgID = r.URL.Query().Get("organizationId")
		var err error
		rows, rejected, err = parseLocationsCSV(http.MaxBytesReader(w, r.Body, maxImportBytes))
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
	} else {
		var req routesdk.ImportLocationsRequest
		if !decode(w, r, maxImportBytes, &req) {
			return
		}
		orgID = req.OrganizationID
		rows = make([]domain.LocationInput, 0, len(req.Locations))
		for _, f := range req.Locations {
			rows = append(rows, locationInput(f))
		}
	}

	res, err := h.LocationService.ImportParsed(r.Context(), me, strings.TrimSpace(orgID), rows, rejected)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toImportResult(res))
}

// HandleGeocode handles POST /v1/locations/{id}/geocode
//
//	@Summary		Geocode Location
//	@Description	Looks up the location's address and stores the coordinates.
//	@Tags			Locations
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Location ID"
//	@Success		200	{object}	routesdk.Location
//	@Failure		400	{object}	routesdk.ErrorResponse	"error - address could not be geocoded"
//	@Failure		403	{object}	routesdk.ErrorResponse	"error"
//	@Failure		404	{object}	routesdk.ErrorResponse	"error"
//	@Failure		502	{object}	routesdk.ErrorResponse	"error - geocoding provider failed"
//	@Router			/v1/locations/{id}/geocode [post].
func (h *LocationsHandler) HandleGeocode(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", service.ErrLocationNotFound)
	if !ok {
		return
	}

	l, err := h.LocationService.Geocode(r.Context(), me, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toLocation(l))
}

// HandleGeocodeBulk handles POST /v1/locations/geocode-bulk
//
//	@Summary		Geocode Many Locations
//	@Description	Geocodes up to 1000 locations. The caller must belong to every organization that owns one of them. Failures are itemized in request order.
//	@Tags			Locations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		routesdk.GeocodeBulkRequest	true	"Location IDs"
//	@Success		200		{object}	routesdk.GeocodeBulkResult	"success, failed, errors"
//	@Failure		400		{object}	routesdk.ErrorResponse		"error"
//	@Failure		403		{object}	routesdk.ErrorResponse		"error"
//	@Router			/v1/locations/geocode-bulk [post].
func (h *LocationsHandler) HandleGeocodeBulk(w http.ResponseWriter, r *http.Request) {
	me, ok := actor(w, r)
	if !ok {
		return
	}

	var req routesdk.GeocodeBulkRequest
	if !decode(w, r, httpx.MaxBodyBytes, &req) {
		return
	}

	res, err := h.LocationService.GeocodeBulk(r.Context(), me, req.IDs)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			httpx.WriteError(w, http.StatusForbidden, "Access denied to one or more locations")
			return
		}
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toGeocodeBulkResult(res))
}
