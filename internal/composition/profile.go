package composition

import (
	"context"

	"github.com/organlabs/organon/internal/cachemanager"
	catalog "github.com/organlabs/organon/internal/catalog/domain"
	"github.com/organlabs/organon/internal/inference"
	"github.com/organlabs/organon/internal/log"
)

// CellProfile is the resolved derivation for one cell: declared catalog
// overrides where present, heuristic inference everywhere else.
type CellProfile struct {
	Type         inference.CellType
	Capabilities []inference.Capability
	Voice        inference.VoiceInterface
}

// ProfileProvider resolves cell profiles with a read-through cache. A
// profile depends only on the cell id and the catalog, so entries never
// expire; the provider is discarded and rebuilt when the catalog reloads.
type ProfileProvider struct {
	cat   *catalog.Catalog
	store *cachemanager.InMemoryCacheManager[string, CellProfile]
	cache *cachemanager.ReadThroughCache[string, CellProfile, string]
}

// NewProfileProvider creates a provider over the given catalog.
func NewProfileProvider(cat *catalog.Catalog) *ProfileProvider {
	p := &ProfileProvider{
		cat:   cat,
		store: cachemanager.NewInMemoryCacheManager[string, CellProfile]("cell-profile", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval),
	}
	p.cache = cachemanager.NewReadThroughCache[string, CellProfile, string](p.store, p.derive, false)
	return p
}

// Profile returns the resolved profile for a cell.
func (p *ProfileProvider) Profile(ctx context.Context, cellID string) CellProfile {
	profile, _ := p.cache.Get(ctx, cellID, cellID, cachemanager.NeverExpire)
	return profile
}

// Capabilities implements status.ProfileSource.
func (p *ProfileProvider) Capabilities(ctx context.Context, cellID string) []inference.Capability {
	return p.Profile(ctx, cellID).Capabilities
}

// Voice implements status.ProfileSource.
func (p *ProfileProvider) Voice(ctx context.Context, cellID string) inference.VoiceInterface {
	return p.Profile(ctx, cellID).Voice
}

// Flush drops every cached profile.
func (p *ProfileProvider) Flush(ctx context.Context) error {
	return p.store.Flush(ctx)
}

// derive resolves one profile. Declared override fields win; unknown values
// inside an override are logged and skipped, falling back per field.
func (p *ProfileProvider) derive(ctx context.Context, cellID string) (CellProfile, error) {
	profile := CellProfile{
		Type:         inference.ClassifyCellType(cellID),
		Capabilities: inference.InferCapabilities(cellID),
		Voice:        inference.InferVoiceInterface(cellID),
	}

	override, ok := p.cat.CellOverride(cellID)
	if !ok {
		return profile, nil
	}

	if declared := override.CellType(); declared != "" {
		if cellType, valid := inference.ParseCellType(declared); valid {
			profile.Type = cellType
		} else {
			log.Warn(log.CatInference, "ignoring unknown declared cell type", "cell", cellID, "type", declared)
		}
	}

	if declared := override.Capabilities(); declared != nil {
		capabilities := make([]inference.Capability, 0, len(declared))
		for _, name := range declared {
			capability, valid := inference.ParseCapability(name)
			if !valid {
				log.Warn(log.CatInference, "ignoring unknown declared capability", "cell", cellID, "capability", name)
				continue
			}
			capabilities = append(capabilities, capability)
		}
		profile.Capabilities = capabilities
	}

	if voice := override.Voice(); voice != nil {
		profile.Voice = inference.VoiceInterface{
			Enabled:            voice.Enabled,
			SupportedLanguages: append([]string(nil), voice.SupportedLanguages...),
			SampleCommands:     append([]string(nil), voice.SampleCommands...),
			CulturallyAdapted:  voice.CulturallyAdapted,
		}
	}

	return profile, nil
}
