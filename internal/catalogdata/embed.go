// Package catalogdata embeds the default sector/tissue/organ catalog.
package catalogdata

import (
	"embed"
	"io/fs"
)

// defaultCatalog embeds the built-in catalog definition.
// The structure is:
//   - catalog/catalog.yaml
//
//go:embed catalog
var defaultCatalog embed.FS

// CatalogFS returns the embedded filesystem containing the default catalog.
// Deployments may replace it with an on-disk file via the catalog_path
// configuration key; the YAML shape is identical.
func CatalogFS() fs.FS {
	return defaultCatalog
}

// DefaultCatalogPath is the path of the catalog file inside CatalogFS.
const DefaultCatalogPath = "catalog/catalog.yaml"
