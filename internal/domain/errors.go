package domain

import "errors"

// Domain errors. The catalog errors mark files that are skipped without
// failing the run.
var (
	ErrMalformedCatalog = errors.New("catalog is not a JSON object")
	ErrMissingSource    = errors.New("catalog has no string source")
	ErrUnknownSource    = errors.New("source is not in the mapping table")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrMalformedCatalog, "malformed_catalog"},
	{ErrMissingSource, "missing_source"},
	{ErrUnknownSource, "unknown_source"},
}

// Code returns the stable code of the domain error wrapped by err,
// or "" when err is not a domain error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
