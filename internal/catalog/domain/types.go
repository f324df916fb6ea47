// Package catalog defines the immutable sector/tissue/organ catalog.
// The catalog is loaded once at startup from declarative YAML and never
// mutated afterwards; every runtime question about domain structure is a
// lookup against it.
package catalog

import (
	"errors"
	"fmt"
)

// Domain validation errors
var (
	ErrEmptySectorID   = errors.New("sector id cannot be empty")
	ErrDuplicateCellID = errors.New("duplicate cell id within sector")
	ErrEmptyTissueName = errors.New("tissue name cannot be empty")
	ErrEmptyOrganName  = errors.New("organ name cannot be empty")
	ErrEmptyOverrideID = errors.New("cell override id cannot be empty")
)

// Sector is a top-level business domain with a fixed required cell list.
type Sector struct {
	id          string
	displayName string
	cellIDs     []string
}

// NewSector creates a sector after validating its cell list.
// Cell ids must be unique within the sector; order is preserved.
func NewSector(id, displayName string, cellIDs []string) (*Sector, error) {
	if id == "" {
		return nil, ErrEmptySectorID
	}

	seen := make(map[string]bool, len(cellIDs))
	for _, cellID := range cellIDs {
		if seen[cellID] {
			return nil, fmt.Errorf("sector %s: cell %s: %w", id, cellID, ErrDuplicateCellID)
		}
		seen[cellID] = true
	}

	return &Sector{
		id:          id,
		displayName: displayName,
		cellIDs:     append([]string(nil), cellIDs...),
	}, nil
}

// ID returns the sector identifier as registered.
func (s *Sector) ID() string {
	return s.id
}

// DisplayName returns the human-readable sector name.
func (s *Sector) DisplayName() string {
	return s.displayName
}

// CellIDs returns a copy of the sector's required cell ids in catalog order.
func (s *Sector) CellIDs() []string {
	return append([]string(nil), s.cellIDs...)
}

// Tissue is a named grouping of tightly related cell ids.
// Tissues are disjoint by convention, but lookups never assume it.
type Tissue struct {
	name    string
	cellIDs []string
}

// NewTissue creates a tissue.
func NewTissue(name string, cellIDs []string) (*Tissue, error) {
	if name == "" {
		return nil, ErrEmptyTissueName
	}
	return &Tissue{
		name:    name,
		cellIDs: append([]string(nil), cellIDs...),
	}, nil
}

// Name returns the tissue name.
func (t *Tissue) Name() string {
	return t.name
}

// CellIDs returns a copy of the tissue's cell ids.
func (t *Tissue) CellIDs() []string {
	return append([]string(nil), t.cellIDs...)
}

// Contains reports whether the tissue includes the given cell id.
func (t *Tissue) Contains(cellID string) bool {
	for _, id := range t.cellIDs {
		if id == cellID {
			return true
		}
	}
	return false
}

// Organ is a named grouping of tissues forming a coherent subsystem.
type Organ struct {
	name        string
	description string
	tissueNames []string
}

// NewOrgan creates an organ.
func NewOrgan(name, description string, tissueNames []string) (*Organ, error) {
	if name == "" {
		return nil, ErrEmptyOrganName
	}
	return &Organ{
		name:        name,
		description: description,
		tissueNames: append([]string(nil), tissueNames...),
	}, nil
}

// Name returns the organ name.
func (o *Organ) Name() string {
	return o.name
}

// Description returns the organ description.
func (o *Organ) Description() string {
	return o.description
}

// TissueNames returns a copy of the organ's tissue names.
func (o *Organ) TissueNames() []string {
	return append([]string(nil), o.tissueNames...)
}

// ContainsTissue reports whether the organ includes the given tissue.
func (o *Organ) ContainsTissue(tissueName string) bool {
	for _, name := range o.tissueNames {
		if name == tissueName {
			return true
		}
	}
	return false
}

// VoiceOverride declares the voice surface of a cell explicitly.
type VoiceOverride struct {
	Enabled            bool
	SupportedLanguages []string
	SampleCommands     []string
	CulturallyAdapted  bool
}

// CellOverride carries declarative per-cell tags from the catalog.
// Fields left empty fall back to the heuristic inference rules. Values are
// plain strings here; the composition layer parses them against the fixed
// type and capability vocabularies.
type CellOverride struct {
	cellID       string
	cellType     string
	capabilities []string
	voice        *VoiceOverride
}

// NewCellOverride creates a per-cell declarative override.
func NewCellOverride(cellID, cellType string, capabilities []string, voice *VoiceOverride) (*CellOverride, error) {
	if cellID == "" {
		return nil, ErrEmptyOverrideID
	}
	return &CellOverride{
		cellID:       cellID,
		cellType:     cellType,
		capabilities: append([]string(nil), capabilities...),
		voice:        voice,
	}, nil
}

// CellID returns the cell id the override applies to.
func (c *CellOverride) CellID() string {
	return c.cellID
}

// CellType returns the declared type, or empty when not declared.
func (c *CellOverride) CellType() string {
	return c.cellType
}

// Capabilities returns the declared capability names, or nil when not declared.
func (c *CellOverride) Capabilities() []string {
	if c.capabilities == nil {
		return nil
	}
	return append([]string(nil), c.capabilities...)
}

// Voice returns the declared voice surface, or nil when not declared.
func (c *CellOverride) Voice() *VoiceOverride {
	return c.voice
}
