// Package status computes derived reporting views over an active
// composition. Every projection is recomputed on each call from the current
// active-cell set and the catalog; nothing here is cached or mutated.
package status

import (
	"context"
	"sort"

	catalog "github.com/organlabs/organon/internal/catalog/domain"
	"github.com/organlabs/organon/internal/inference"
)

// ProfileSource resolves the derived capability and voice profile of a cell.
// The composition layer provides an implementation that honors catalog
// overrides before falling back to heuristic inference.
type ProfileSource interface {
	Capabilities(ctx context.Context, cellID string) []inference.Capability
	Voice(ctx context.Context, cellID string) inference.VoiceInterface
}

// TissueStatus reports per-tissue completion against the catalog.
type TissueStatus struct {
	TotalCells           int
	ActiveCells          int
	CompletionPercentage float64
	ActiveCellIDs        []string
}

// TissueCompletion pairs a tissue name with its completion percentage.
type TissueCompletion struct {
	Tissue     string
	Completion float64
}

// OrganStatus reports per-organ operational state.
type OrganStatus struct {
	Name              string
	Description       string
	TissueCompletions []TissueCompletion
	OverallCompletion float64
	IsOperational     bool
}

// VoiceStatus aggregates the voice-interface coverage of active cells.
type VoiceStatus struct {
	EnabledCellCount           int
	SupportedLanguages         []string
	TotalSampleCommands        int
	CulturallyAdaptedCellCount int
}

// Architecture bundles all four projections for a single report.
type Architecture struct {
	Tissues      map[string]TissueStatus
	Organs       map[string]OrganStatus
	Capabilities map[inference.Capability]int
	Voice        VoiceStatus
}

// operationalThreshold is strict: an organ at exactly 50% is not operational.
const operationalThreshold = 50.0

// Aggregator computes read-only summaries for the presentation layer.
type Aggregator struct {
	cat      *catalog.Catalog
	profiles ProfileSource
}

// NewAggregator creates an aggregator over the given catalog and profile source.
func NewAggregator(cat *catalog.Catalog, profiles ProfileSource) *Aggregator {
	return &Aggregator{cat: cat, profiles: profiles}
}

// TissueStatus computes completion for every known tissue, including
// tissues untouched by the active sector.
func (a *Aggregator) TissueStatus(activeCells []string) map[string]TissueStatus {
	active := toSet(activeCells)

	result := make(map[string]TissueStatus)
	for _, tissue := range a.cat.Tissues() {
		cellIDs := tissue.CellIDs()

		var activeIDs []string
		for _, id := range cellIDs {
			if active[id] {
				activeIDs = append(activeIDs, id)
			}
		}

		completion := 0.0
		if len(cellIDs) > 0 {
			completion = 100 * float64(len(activeIDs)) / float64(len(cellIDs))
		}

		result[tissue.Name()] = TissueStatus{
			TotalCells:           len(cellIDs),
			ActiveCells:          len(activeIDs),
			CompletionPercentage: completion,
			ActiveCellIDs:        activeIDs,
		}
	}
	return result
}

// OrganStatus computes operational state for every known organ as the
// average of its tissue completions.
func (a *Aggregator) OrganStatus(activeCells []string) map[string]OrganStatus {
	tissueStatus := a.TissueStatus(activeCells)

	result := make(map[string]OrganStatus)
	for _, organ := range a.cat.Organs() {
		tissueNames := organ.TissueNames()

		completions := make([]TissueCompletion, 0, len(tissueNames))
		total := 0.0
		for _, name := range tissueNames {
			completion := tissueStatus[name].CompletionPercentage
			completions = append(completions, TissueCompletion{Tissue: name, Completion: completion})
			total += completion
		}

		overall := 0.0
		if len(tissueNames) > 0 {
			overall = total / float64(len(tissueNames))
		}

		result[organ.Name()] = OrganStatus{
			Name:              organ.Name(),
			Description:       organ.Description(),
			TissueCompletions: completions,
			OverallCompletion: overall,
			IsOperational:     overall > operationalThreshold,
		}
	}
	return result
}

// AggregateCapabilities counts, per capability flag, how many active cells
// exhibit it.
func (a *Aggregator) AggregateCapabilities(ctx context.Context, activeCells []string) map[inference.Capability]int {
	counts := make(map[inference.Capability]int)
	for _, cellID := range activeCells {
		for _, capability := range a.profiles.Capabilities(ctx, cellID) {
			counts[capability]++
		}
	}
	return counts
}

// VoiceInterfaceStatus aggregates voice coverage across active cells.
func (a *Aggregator) VoiceInterfaceStatus(ctx context.Context, activeCells []string) VoiceStatus {
	var vs VoiceStatus
	languages := make(map[string]bool)

	for _, cellID := range activeCells {
		voice := a.profiles.Voice(ctx, cellID)
		if !voice.Enabled {
			continue
		}
		vs.EnabledCellCount++
		vs.TotalSampleCommands += len(voice.SampleCommands)
		if voice.CulturallyAdapted {
			vs.CulturallyAdaptedCellCount++
		}
		for _, lang := range voice.SupportedLanguages {
			languages[lang] = true
		}
	}

	vs.SupportedLanguages = make([]string, 0, len(languages))
	for lang := range languages {
		vs.SupportedLanguages = append(vs.SupportedLanguages, lang)
	}
	sort.Strings(vs.SupportedLanguages)

	return vs
}

// Architecture computes all four projections in one pass.
func (a *Aggregator) Architecture(ctx context.Context, activeCells []string) Architecture {
	return Architecture{
		Tissues:      a.TissueStatus(activeCells),
		Organs:       a.OrganStatus(activeCells),
		Capabilities: a.AggregateCapabilities(ctx, activeCells),
		Voice:        a.VoiceInterfaceStatus(ctx, activeCells),
	}
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
