package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/metrics"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/store"
	"github.com/aussiebroadwan/routemaker/pkg/geocode"
	"github.com/aussiebroadwan/routemaker/pkg/idx"
	"github.com/aussiebroadwan/routemaker/pkg/slogx"
	"golang.org/x/sync/errgroup"
)

// DefaultGeocodeConcurrency bounds in-flight provider calls per bulk request.
const DefaultGeocodeConcurrency = 4

// MaxBulkItems caps the size of one import or bulk geocode request.
const MaxBulkItems = 1000

var errGeocoderDisabled = kind(ErrUpstream, "geocoding is not configured")

// LocationService is the tenant gateway for service locations plus the
// import and geocoding operations built on it.
type LocationService struct {
	Store    store.Store
	Geocoder geocode.Geocoder

	// Concurrency bounds GeocodeBulk; zero means DefaultGeocodeConcurrency.
	Concurrency int
	Now         func() time.Time
}

func (s *LocationService) List(ctx context.Context, actor domain.Identity, orgID string) ([]domain.Location, error) {
	if _, err := resolveRole(ctx, s.Store, actor.UserID, orgID); err != nil {
		return nil, err
	}
	return s.Store.Locations().ListLocations(ctx, orgID)
}

func (s *LocationService) Get(ctx context.Context, actor domain.Identity, id string) (domain.Location, error) {
	l, err := s.load(ctx, s.Store, id)
	if err != nil {
		return domain.Location{}, err
	}
	if _, err := resolveRole(ctx, s.Store, actor.UserID, l.OrganizationID); err != nil {
		return domain.Location{}, err
	}
	return l, nil
}

// normalizeLocationInput trims text fields and applies defaults.
func normalizeLocationInput(in domain.LocationInput) domain.LocationInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Type = domain.LocationType(strings.ToLower(strings.TrimSpace(string(in.Type))))
	in.AddressLine1 = strings.TrimSpace(in.AddressLine1)
	in.AddressLine2 = blankToNil(in.AddressLine2)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.PostalCode = strings.TrimSpace(in.PostalCode)
	in.Country = strings.TrimSpace(in.Country)
	if in.Country == "" {
		in.Country = domain.DefaultCountry
	}
	in.Notes = blankToNil(in.Notes)
	return in
}

// checkLocationInput reports import-style messages for the two common
// failures and falls back to field validation for the rest.
func checkLocationInput(in domain.LocationInput) error {
	if in.Name == "" || in.Type == "" || in.AddressLine1 == "" ||
		in.City == "" || in.State == "" || in.PostalCode == "" {
		return invalid("Missing required fields")
	}
	if in.Type != domain.LocationResidential && in.Type != domain.LocationCommercial {
		return invalid(`Invalid type. Must be "residential" or "commercial"`)
	}
	return validateStruct(in)
}

func newLocation(orgID string, in domain.LocationInput, now time.Time) domain.Location {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return domain.Location{
		ID:             idx.New().String(),
		OrganizationID: orgID,
		Name:           in.Name,
		Type:           in.Type,
		AddressLine1:   in.AddressLine1,
		AddressLine2:   in.AddressLine2,
		City:           in.City,
		State:          in.State,
		PostalCode:     in.PostalCode,
		Country:        in.Country,
		Latitude:       in.Latitude,
		Longitude:      in.Longitude,
		Notes:          in.Notes,
		IsActive:       active,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (s *LocationService) Create(ctx context.Context, actor domain.Identity, orgID string, in domain.LocationInput) (domain.Location, error) {
	in = normalizeLocationInput(in)
	if err := checkLocationInput(in); err != nil {
		return domain.Location{}, err
	}
	if _, err := resolveRole(ctx, s.Store, actor.UserID, orgID); err != nil {
		return domain.Location{}, err
	}

	l := newLocation(orgID, in, nowFrom(s.Now))
	if err := s.Store.Locations().CreateLocation(ctx, l); err != nil {
		slogx.FromContext(ctx).Error("failed to create location", slog.Any("error", err))
		return domain.Location{}, err
	}

	slogx.FromContext(ctx).Info("location created",
		slog.String("location_id", l.ID),
		slog.String("organization_id", orgID),
	)
	return l, nil
}

// Update applies patch. The owning organization never changes.
func (s *LocationService) Update(ctx context.Context, actor domain.Identity, id string, patch domain.LocationPatch) (domain.Location, error) {
	patch.Name = trimmed(patch.Name)
	patch.AddressLine1 = trimmed(patch.AddressLine1)
	patch.City = trimmed(patch.City)
	patch.State = trimmed(patch.State)
	patch.PostalCode = trimmed(patch.PostalCode)
	patch.Country = trimmed(patch.Country)
	if err := validateStruct(patch); err != nil {
		return domain.Location{}, err
	}

	var l domain.Location
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		if l, err = s.load(ctx, tx, id); err != nil {
			return err
		}
		if _, err := resolveRole(ctx, tx, actor.UserID, l.OrganizationID); err != nil {
			return err
		}

		applyLocationPatch(&l, patch)
		l.UpdatedAt = nowFrom(s.Now)
		return tx.Locations().UpdateLocation(ctx, l)
	})
	if err != nil {
		return domain.Location{}, err
	}
	return l, nil
}

func applyLocationPatch(l *domain.Location, p domain.LocationPatch) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Type != nil {
		l.Type = *p.Type
	}
	if p.AddressLine1 != nil {
		l.AddressLine1 = *p.AddressLine1
	}
	if p.AddressLine2 != nil {
		l.AddressLine2 = blankToNil(p.AddressLine2)
	}
	if p.City != nil {
		l.City = *p.City
	}
	if p.State != nil {
		l.State = *p.State
	}
	if p.PostalCode != nil {
		l.PostalCode = *p.PostalCode
	}
	if p.Country != nil {
		l.Country = *p.Country
	}
	if p.Latitude != nil {
		l.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		l.Longitude = p.Longitude
	}
	if p.Notes != nil {
		l.Notes = blankToNil(p.Notes)
	}
	if p.IsActive != nil {
		l.IsActive = *p.IsActive
	}
}

func (s *LocationService) Delete(ctx context.Context, actor domain.Identity, id string) error {
	l, err := s.load(ctx, s.Store, id)
	if err != nil {
		return err
	}
	if _, err := resolveRole(ctx, s.Store, actor.UserID, l.OrganizationID); err != nil {
		return err
	}
	if err := s.Store.Locations().DeleteLocation(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrLocationNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("location deleted", slog.String("location_id", id))
	return nil
}

// Import validates and inserts rows one by one into orgID. A bad row is
// reported and skipped; it never aborts the rest.
func (s *LocationService) Import(ctx context.Context, actor domain.Identity, orgID string, rows []domain.LocationInput) (domain.ImportResult, error) {
	return s.ImportParsed(ctx, actor, orgID, rows, nil)
}

// ImportParsed is Import for rows that came out of a file. rejected maps a
// row index to the reason the row could not be read; those rows count as
// failed without being validated or inserted.
func (s *LocationService) ImportParsed(ctx context.Context, actor domain.Identity, orgID string, rows []domain.LocationInput, rejected map[int]error) (domain.ImportResult, error) {
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(orgID) == "" {
		return domain.ImportResult{}, invalid("organizationId is required")
	}
	if len(rows) == 0 {
		return domain.ImportResult{}, invalid("locations array is required")
	}
	if len(rows) > MaxBulkItems {
		return domain.ImportResult{}, invalid("at most %d locations may be imported at once", MaxBulkItems)
	}
	if _, err := resolveRole(ctx, s.Store, actor.UserID, orgID); err != nil {
		return domain.ImportResult{}, err
	}

	result := domain.ImportResult{Errors: []domain.ImportRowError{}}
	fail := func(i int, row domain.LocationInput, err error) {
		result.Failed++
		result.Errors = append(result.Errors, domain.ImportRowError{Row: i + 1, Error: err.Error(), Data: row})
	}

	now := nowFrom(s.Now)
	for i, raw := range rows {
		if err, ok := rejected[i]; ok {
			fail(i, raw, err)
			continue
		}
		row := normalizeLocationInput(raw)
		if err := checkLocationInput(row); err != nil {
			fail(i, raw, err)
			continue
		}
		if err := s.Store.Locations().CreateLocation(ctx, newLocation(orgID, row, now)); err != nil {
			log.Warn("import row insert failed",
				slog.Int("row", i+1),
				slog.Any("error", err),
			)
			fail(i, raw, err)
			continue
		}
		result.Success++
	}

	metrics.RecordImport(result.Success, result.Failed)
	log.Info("locations imported",
		slog.String("organization_id", orgID),
		slog.Int("success", result.Success),
		slog.Int("failed", result.Failed),
	)
	return result, nil
}

// Geocode resolves one location's address and stores the coordinates.
func (s *LocationService) Geocode(ctx context.Context, actor domain.Identity, id string) (domain.Location, error) {
	log := slogx.FromContext(ctx)

	l, err := s.Get(ctx, actor, id)
	if err != nil {
		return domain.Location{}, err
	}
	if s.Geocoder == nil {
		return domain.Location{}, errGeocoderDisabled
	}

	coords, err := s.lookup(ctx, l)
	if err != nil {
		log.Warn("geocoding failed",
			slog.String("location_id", id),
			slog.Any("error", err),
		)
		return domain.Location{}, upstream(err)
	}
	if coords == nil {
		return domain.Location{}, ErrCouldNotGeocode
	}

	now := nowFrom(s.Now)
	if err := s.Store.Locations().UpdateLocationCoordinates(ctx, l.ID, coords.Latitude, coords.Longitude, now); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Location{}, ErrLocationNotFound
		}
		return domain.Location{}, err
	}

	l.Latitude, l.Longitude = &coords.Latitude, &coords.Longitude
	l.UpdatedAt = now
	return l, nil
}

func (s *LocationService) lookup(ctx context.Context, l domain.Location) (*geocode.Coordinates, error) {
	coords, err := s.Geocoder.Geocode(ctx, geocode.FormatAddress(l.AddressParts()...))
	switch {
	case err != nil:
		metrics.RecordGeocode(metrics.GeocodeError)
	case coords == nil:
		metrics.RecordGeocode(metrics.GeocodeNotFound)
	default:
		metrics.RecordGeocode(metrics.GeocodeFound)
	}
	return coords, err
}

// GeocodeBulk geocodes many locations with a bounded pool. The caller must
// belong to every organization that owns one of them. Item errors come back
// in input order.
func (s *LocationService) GeocodeBulk(ctx context.Context, actor domain.Identity, ids []string) (domain.GeocodeBulkResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate and dedupe, keeping first occurrence order
	if len(ids) == 0 {
		return domain.GeocodeBulkResult{}, invalid("ids array is required")
	}
	if len(ids) > MaxBulkItems {
		return domain.GeocodeBulkResult{}, invalid("at most %d ids may be geocoded at once", MaxBulkItems)
	}
	seen := make(map[string]struct{}, len(ids))
	ordered := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup || id == "" {
			continue
		}
		seen[id] = struct{}{}
		ordered = append(ordered, id)
	}

	// 2. Load and authorize every owning organization up front
	found, err := s.Store.Locations().GetLocationsByIDs(ctx, ordered)
	if err != nil {
		return domain.GeocodeBulkResult{}, err
	}
	byID := make(map[string]domain.Location, len(found))
	checked := make(map[string]struct{})
	for _, l := range found {
		byID[l.ID] = l
		if _, ok := checked[l.OrganizationID]; ok {
			continue
		}
		if _, err := resolveRole(ctx, s.Store, actor.UserID, l.OrganizationID); err != nil {
			return domain.GeocodeBulkResult{}, err
		}
		checked[l.OrganizationID] = struct{}{}
	}
	if s.Geocoder == nil {
		return domain.GeocodeBulkResult{}, errGeocoderDisabled
	}

	// 3. Geocode with a bounded pool; each worker owns one slot
	slots := make([]string, len(ordered))
	limit := s.Concurrency
	if limit <= 0 {
		limit = DefaultGeocodeConcurrency
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	now := nowFrom(s.Now)
	for i, id := range ordered {
		l, ok := byID[id]
		if !ok {
			slots[i] = ErrLocationNotFound.Error()
			continue
		}
		g.Go(func() error {
			coords, err := s.lookup(gctx, l)
			switch {
			case err != nil:
				slots[i] = err.Error()
			case coords == nil:
				slots[i] = ErrCouldNotGeocode.Error()
			default:
				if err := s.Store.Locations().UpdateLocationCoordinates(gctx, l.ID, coords.Latitude, coords.Longitude, now); err != nil {
					slots[i] = err.Error()
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	// 4. Fold slots into the summary
	result := domain.GeocodeBulkResult{Errors: []domain.GeocodeItemError{}}
	for i, msg := range slots {
		if msg == "" {
			result.Success++
			continue
		}
		result.Failed++
		result.Errors = append(result.Errors, domain.GeocodeItemError{ID: ordered[i], Error: msg})
	}

	log.Info("bulk geocode finished",
		slog.Int("requested", len(ordered)),
		slog.Int("success", result.Success),
		slog.Int("failed", result.Failed),
	)
	return result, nil
}

func (s *LocationService) load(ctx context.Context, st store.Store, id string) (domain.Location, error) {
	l, err := st.Locations().GetLocationByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Location{}, ErrLocationNotFound
	}
	return l, err
}
