package http

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
)

// maxImportBytes caps bulk import bodies, JSON or CSV.
const maxImportBytes = 10 << 20

// isCSV reports whether the request body is text/csv.
func isCSV(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "text/csv"
}

// parseLocationsCSV reads a header line followed by one location per record.
// Columns are matched by snake_case name in any order; unknown columns are
// ignored. Unparseable numbers and booleans are passed on as empty so the
// row fails validation on its own instead of aborting the import.
//
// Stray quotes are read literally. A record that still cannot be read, or
// that has more fields than the header, is kept in rows and reported in
// rejected under its index. Only a bad header or a failing body aborts.
func parseLocationsCSV(body io.Reader) (rows []domain.LocationInput, rejected map[int]error, err error) {
	cr := csv.NewReader(body)
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("invalid CSV header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}

	rejected = map[int]error{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		switch {
		case errors.As(err, &perr):
			rejected[len(rows)] = fmt.Errorf("malformed CSV record: %w", perr.Err)
		case err != nil:
			return nil, nil, fmt.Errorf("invalid CSV: %w", err)
		case len(rec) > len(header):
			rejected[len(rows)] = fmt.Errorf("malformed CSV record: %d fields, header has %d", len(rec), len(header))
		}

		get := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		opt := func(name string) *string {
			if v := get(name); v != "" {
				return &v
			}
			return nil
		}
		num := func(name string) *float64 {
			f, err := strconv.ParseFloat(get(name), 64)
			if err != nil {
				return nil
			}
			return &f
		}

		row := domain.LocationInput{
			Name:         get("name"),
			Type:         domain.LocationType(get("type")),
			AddressLine1: get("address_line1"),
			AddressLine2: opt("address_line2"),
			City:         get("city"),
			State:        get("state"),
			PostalCode:   get("postal_code"),
			Country:      get("country"),
			Latitude:     num("latitude"),
			Longitude:    num("longitude"),
			Notes:        opt("notes"),
		}
		if b, err := strconv.ParseBool(get("is_active")); err == nil {
			row.IsActive = &b
		}
		rows = append(rows, row)
	}
	return rows, rejected, nil
}
