package catalog

import (
	"errors"
	"sort"
	"strings"
)

// Catalog lookup errors
var (
	ErrSectorNotFound    = errors.New("sector not found")
	ErrDuplicateSector   = errors.New("duplicate sector id")
	ErrDuplicateTissue   = errors.New("duplicate tissue name")
	ErrDuplicateOrgan    = errors.New("duplicate organ name")
	ErrDuplicateOverride = errors.New("duplicate cell override")
	ErrNilEntry          = errors.New("catalog entry cannot be nil")
)

// Catalog holds the full sector/tissue/organ registry plus integration
// lists and per-cell overrides. All lookups are read-only; the struct is
// safe for concurrent use once assembled.
type Catalog struct {
	sectors     []*Sector
	sectorsByID map[string]*Sector
	tissues     []*Tissue
	organs      []*Organ
	overrides   map[string]*CellOverride

	integrations       map[string][]string
	commonIntegrations []string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		sectorsByID:  make(map[string]*Sector),
		overrides:    make(map[string]*CellOverride),
		integrations: make(map[string][]string),
	}
}

// NormalizeSectorID converts a sector id to its canonical registry key.
func NormalizeSectorID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// AddSector registers a sector. Ids are matched case-insensitively, so two
// sectors differing only in case collide.
func (c *Catalog) AddSector(s *Sector) error {
	if s == nil {
		return ErrNilEntry
	}
	key := NormalizeSectorID(s.ID())
	if _, exists := c.sectorsByID[key]; exists {
		return ErrDuplicateSector
	}
	c.sectorsByID[key] = s
	c.sectors = append(c.sectors, s)
	return nil
}

// AddTissue registers a tissue.
func (c *Catalog) AddTissue(t *Tissue) error {
	if t == nil {
		return ErrNilEntry
	}
	for _, existing := range c.tissues {
		if existing.Name() == t.Name() {
			return ErrDuplicateTissue
		}
	}
	c.tissues = append(c.tissues, t)
	return nil
}

// AddOrgan registers an organ.
func (c *Catalog) AddOrgan(o *Organ) error {
	if o == nil {
		return ErrNilEntry
	}
	for _, existing := range c.organs {
		if existing.Name() == o.Name() {
			return ErrDuplicateOrgan
		}
	}
	c.organs = append(c.organs, o)
	return nil
}

// AddOverride registers a declarative per-cell override.
func (c *Catalog) AddOverride(ov *CellOverride) error {
	if ov == nil {
		return ErrNilEntry
	}
	if _, exists := c.overrides[ov.CellID()]; exists {
		return ErrDuplicateOverride
	}
	c.overrides[ov.CellID()] = ov
	return nil
}

// SetIntegrations registers the sector-keyed integration list for a sector id.
func (c *Catalog) SetIntegrations(sectorID string, integrations []string) {
	c.integrations[NormalizeSectorID(sectorID)] = append([]string(nil), integrations...)
}

// SetCommonIntegrations registers the integration list shared by all sectors.
func (c *Catalog) SetCommonIntegrations(integrations []string) {
	c.commonIntegrations = append([]string(nil), integrations...)
}

// GetSector looks up a sector by id, case-insensitively.
func (c *Catalog) GetSector(id string) (*Sector, error) {
	if s, ok := c.sectorsByID[NormalizeSectorID(id)]; ok {
		return s, nil
	}
	return nil, ErrSectorNotFound
}

// Sectors returns all sectors in registration order.
func (c *Catalog) Sectors() []*Sector {
	return append([]*Sector(nil), c.sectors...)
}

// Tissues returns all tissues in registration order.
func (c *Catalog) Tissues() []*Tissue {
	return append([]*Tissue(nil), c.tissues...)
}

// Organs returns all organs in registration order.
func (c *Catalog) Organs() []*Organ {
	return append([]*Organ(nil), c.organs...)
}

// TissueForCell returns the first tissue whose cell set contains the id.
// Absence is a valid business state, not an error - a cell may belong to
// no tissue.
func (c *Catalog) TissueForCell(cellID string) (string, bool) {
	for _, t := range c.tissues {
		if t.Contains(cellID) {
			return t.Name(), true
		}
	}
	return "", false
}

// OrganForCell returns the organ owning the cell's tissue, if any.
func (c *Catalog) OrganForCell(cellID string) (string, bool) {
	tissueName, ok := c.TissueForCell(cellID)
	if !ok {
		return "", false
	}
	for _, o := range c.organs {
		if o.ContainsTissue(tissueName) {
			return o.Name(), true
		}
	}
	return "", false
}

// CellOverride returns the declarative override for a cell id, if declared.
func (c *Catalog) CellOverride(cellID string) (*CellOverride, bool) {
	ov, ok := c.overrides[cellID]
	return ov, ok
}

// KnownCell reports whether the cell id appears in any sector's cell list.
func (c *Catalog) KnownCell(cellID string) bool {
	for _, s := range c.sectors {
		for _, id := range s.cellIDs {
			if id == cellID {
				return true
			}
		}
	}
	return false
}

// KnownCellIDs returns the sorted union of cell ids across all sectors.
func (c *Catalog) KnownCellIDs() []string {
	set := make(map[string]bool)
	for _, s := range c.sectors {
		for _, id := range s.cellIDs {
			set[id] = true
		}
	}

	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IntegrationsForSector returns the sector-specific integration list merged
// with the common list. The result is a pure lookup, independent of any
// session state.
func (c *Catalog) IntegrationsForSector(sectorID string) []string {
	sectorSpecific := c.integrations[NormalizeSectorID(sectorID)]

	merged := make([]string, 0, len(sectorSpecific)+len(c.commonIntegrations))
	seen := make(map[string]bool)
	for _, list := range [][]string{sectorSpecific, c.commonIntegrations} {
		for _, name := range list {
			if seen[name] {
				continue
			}
			seen[name] = true
			merged = append(merged, name)
		}
	}
	return merged
}
