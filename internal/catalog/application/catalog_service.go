package catalog

import (
	"fmt"
	"os"

	catalog "github.com/organlabs/organon/internal/catalog/domain"
	"github.com/organlabs/organon/internal/catalogdata"
	"github.com/organlabs/organon/internal/log"
)

// CatalogService owns the loaded catalog and knows how to reload it from
// its source. The catalog itself stays immutable; Reload swaps in a freshly
// assembled one.
type CatalogService struct {
	cat  *catalog.Catalog
	path string // on-disk source; empty when the embedded default is in use
}

// NewCatalogService loads a catalog from the file at path, or from the
// embedded default catalog when path is empty.
func NewCatalogService(path string) (*CatalogService, error) {
	svc := &CatalogService{path: path}
	if err := svc.load(); err != nil {
		return nil, err
	}
	return svc, nil
}

// Catalog returns the currently loaded catalog.
func (s *CatalogService) Catalog() *catalog.Catalog {
	return s.cat
}

// Source describes where the catalog was loaded from.
func (s *CatalogService) Source() string {
	if s.path == "" {
		return "embedded"
	}
	return s.path
}

// Path returns the on-disk catalog path, or empty for the embedded default.
func (s *CatalogService) Path() string {
	return s.path
}

// Reload re-reads the catalog from its source. On failure the previously
// loaded catalog stays in place.
func (s *CatalogService) Reload() error {
	return s.load()
}

func (s *CatalogService) load() error {
	if s.path == "" {
		cat, err := LoadCatalogFromFS(catalogdata.CatalogFS(), catalogdata.DefaultCatalogPath)
		if err != nil {
			return fmt.Errorf("load embedded catalog: %w", err)
		}
		s.cat = cat
		log.Info(log.CatCatalog, "catalog loaded", "source", "embedded", "sectors", len(cat.Sectors()))
		return nil
	}

	content, err := os.ReadFile(s.path) //nolint:gosec // G304: path is user-configured catalog location
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", s.path, err)
	}
	cat, err := LoadCatalog(content)
	if err != nil {
		return fmt.Errorf("load catalog %s: %w", s.path, err)
	}
	s.cat = cat
	log.Info(log.CatCatalog, "catalog loaded", "source", s.path, "sectors", len(cat.Sectors()))
	return nil
}
