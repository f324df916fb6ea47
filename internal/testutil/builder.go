// Package testutil provides a fluent catalog builder for tests that need
// more structure than a hand-rolled catalog but less than the embedded one.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	catalog "github.com/organlabs/organon/internal/catalog/domain"
)

// sectorData holds data for a sector to be added.
type sectorData struct {
	id          string
	displayName string
	cellIDs     []string
}

// organData holds data for an organ to be added.
type organData struct {
	name        string
	description string
	tissues     []string
}

// Builder accumulates catalog entries and adds them in the correct order.
type Builder struct {
	t                  *testing.T
	sectors            []sectorData
	tissues            map[string][]string
	tissueOrder        []string
	organs             []organData
	overrides          []*catalog.CellOverride
	integrations       map[string][]string
	commonIntegrations []string
}

// NewBuilder creates a catalog builder bound to the given test.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{
		t:            t,
		tissues:      make(map[string][]string),
		integrations: make(map[string][]string),
	}
}

// WithSector adds a sector. The display name defaults to the id unless
// overridden with an option.
func (b *Builder) WithSector(id string, opts ...SectorOption) *Builder {
	sector := sectorData{id: id, displayName: id}
	for _, opt := range opts {
		opt(&sector)
	}
	b.sectors = append(b.sectors, sector)
	return b
}

// WithTissue adds a tissue grouping the given cells.
func (b *Builder) WithTissue(name string, cellIDs ...string) *Builder {
	if _, ok := b.tissues[name]; !ok {
		b.tissueOrder = append(b.tissueOrder, name)
	}
	b.tissues[name] = append(b.tissues[name], cellIDs...)
	return b
}

// WithOrgan adds an organ grouping the given tissues.
func (b *Builder) WithOrgan(name, description string, tissues ...string) *Builder {
	b.organs = append(b.organs, organData{name: name, description: description, tissues: tissues})
	return b
}

// WithOverride adds a declarative per-cell override.
func (b *Builder) WithOverride(cellID, cellType string, capabilities []string, voice *catalog.VoiceOverride) *Builder {
	b.t.Helper()
	override, err := catalog.NewCellOverride(cellID, cellType, capabilities, voice)
	require.NoError(b.t, err)
	b.overrides = append(b.overrides, override)
	return b
}

// WithIntegrations sets the integration list for one sector.
func (b *Builder) WithIntegrations(sectorID string, integrations ...string) *Builder {
	b.integrations[sectorID] = integrations
	return b
}

// WithCommonIntegrations sets the integrations shared by every sector.
func (b *Builder) WithCommonIntegrations(integrations ...string) *Builder {
	b.commonIntegrations = integrations
	return b
}

// Build assembles the catalog, failing the test on any invalid entry.
func (b *Builder) Build() *catalog.Catalog {
	b.t.Helper()
	cat := catalog.NewCatalog()

	for _, data := range b.sectors {
		sector, err := catalog.NewSector(data.id, data.displayName, data.cellIDs)
		require.NoError(b.t, err)
		require.NoError(b.t, cat.AddSector(sector))
	}
	for _, name := range b.tissueOrder {
		tissue, err := catalog.NewTissue(name, b.tissues[name])
		require.NoError(b.t, err)
		require.NoError(b.t, cat.AddTissue(tissue))
	}
	for _, data := range b.organs {
		organ, err := catalog.NewOrgan(data.name, data.description, data.tissues)
		require.NoError(b.t, err)
		require.NoError(b.t, cat.AddOrgan(organ))
	}
	for _, override := range b.overrides {
		require.NoError(b.t, cat.AddOverride(override))
	}
	for sectorID, integrations := range b.integrations {
		cat.SetIntegrations(sectorID, integrations)
	}
	if b.commonIntegrations != nil {
		cat.SetCommonIntegrations(b.commonIntegrations)
	}

	return cat
}
