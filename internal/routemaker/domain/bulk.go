package domain

// ImportRowError reports one rejected import row. Row is 1-based.
type ImportRowError struct {
	Row   int
	Error string
	Data  LocationInput
}

// ImportResult summarizes a bulk import. Success+Failed equals the number of
// rows submitted.
type ImportResult struct {
	Success int
	Failed  int
	Errors  []ImportRowError
}

// GeocodeItemError reports one location that could not be geocoded.
type GeocodeItemError struct {
	ID    string
	Error string
}

// GeocodeBulkResult summarizes a bulk geocode. Errors are in input order.
type GeocodeBulkResult struct {
	Success int
	Failed  int
	Errors  []GeocodeItemError
}
