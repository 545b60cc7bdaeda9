package output

import "context"

// CatalogStore gives access to the translation catalogs of one directory.
// Names are bare filenames relative to that directory.
type CatalogStore interface {
	// List returns the candidate catalog files.
	List(ctx context.Context) ([]string, error)
	// ReadSource returns the "source" recorded in the catalog. It returns
	// domain.ErrMalformedCatalog or domain.ErrMissingSource for files that
	// should be skipped; any other error is fatal.
	ReadSource(ctx context.Context, name string) (string, error)
	Rename(ctx context.Context, oldName, newName string) error
}
