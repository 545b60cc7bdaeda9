package filesystem

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"catalogrenamer/internal/domain"
	"catalogrenamer/internal/ports/output"
)

const catalogExt = ".json"

var _ output.CatalogStore = (*CatalogStore)(nil)

// CatalogStore implements output.CatalogStore on a single directory.
// Subdirectories are never entered.
type CatalogStore struct {
	dir string
}

// NewCatalogStore creates a CatalogStore rooted at dir.
func NewCatalogStore(dir string) *CatalogStore {
	return &CatalogStore{dir: dir}
}

// List returns the regular files (symlinks are followed) whose name ends in
// .json, sorted by name.
func (s *CatalogStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), catalogExt) || !s.isRegular(entry) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

func (s *CatalogStore) isRegular(entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.Type().IsRegular()
	}
	info, err := os.Stat(filepath.Join(s.dir, entry.Name()))
	if err != nil {
		// dangling link
		return false
	}
	return info.Mode().IsRegular()
}

// ReadSource decodes the catalog and returns its "source" field. Only that
// field is looked at.
func (s *CatalogStore) ReadSource(_ context.Context, name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("open catalog: %w", err)
	}

	var catalog map[string]json.RawMessage
	if err := json.Unmarshal(data, &catalog); err != nil || catalog == nil {
		return "", fmt.Errorf("%s: %w", name, domain.ErrMalformedCatalog)
	}

	raw, ok := catalog["source"]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", fmt.Errorf("%s: %w", name, domain.ErrMissingSource)
	}
	var source string
	if err := json.Unmarshal(raw, &source); err != nil {
		return "", fmt.Errorf("%s: %w", name, domain.ErrMissingSource)
	}
	return source, nil
}

// Rename moves oldName to newName inside the directory, replacing newName if
// it exists. Failures are the *os.LinkError, which already names both paths.
func (s *CatalogStore) Rename(_ context.Context, oldName, newName string) error {
	return os.Rename(filepath.Join(s.dir, oldName), filepath.Join(s.dir, newName))
}
