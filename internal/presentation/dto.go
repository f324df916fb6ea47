// Package presentation converts domain and composition values into stable
// JSON shapes for the CLI. DTOs keep wire names decoupled from domain
// getters.
package presentation

import (
	"sort"

	catalog "github.com/organlabs/organon/internal/catalog/domain"
	"github.com/organlabs/organon/internal/composition"
	"github.com/organlabs/organon/internal/status"
)

// SectorDTO represents one catalog sector.
type SectorDTO struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	CellIDs     []string `json:"cell_ids"`
}

// ConnectionDTO represents one derived edge.
type ConnectionDTO struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Type     string `json:"type"`
	Strength string `json:"strength"`
}

// VoiceDTO represents a cell's voice surface.
type VoiceDTO struct {
	Enabled            bool     `json:"enabled"`
	SupportedLanguages []string `json:"supported_languages,omitempty"`
	SampleCommands     []string `json:"sample_commands,omitempty"`
	CulturallyAdapted  bool     `json:"culturally_adapted"`
}

// CellConfigurationDTO represents the derived view of one cell.
type CellConfigurationDTO struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Tissue       string          `json:"tissue,omitempty"`
	Organ        string          `json:"organ,omitempty"`
	Capabilities []string        `json:"capabilities"`
	Connections  []ConnectionDTO `json:"connections"`
	Voice        VoiceDTO        `json:"voice"`
}

// SnapshotDTO represents the composition right after sector initialization.
type SnapshotDTO struct {
	Sector                string   `json:"sector"`
	SectorDisplayName     string   `json:"sector_display_name"`
	ActiveCells           []string `json:"active_cells"`
	AvailableIntegrations []string `json:"available_integrations"`
}

// TissueStatusDTO reports per-tissue completion.
type TissueStatusDTO struct {
	Name                 string   `json:"name"`
	TotalCells           int      `json:"total_cells"`
	ActiveCells          int      `json:"active_cells"`
	CompletionPercentage float64  `json:"completion_percentage"`
	ActiveCellIDs        []string `json:"active_cell_ids"`
}

// TissueCompletionDTO pairs a tissue with its completion inside an organ.
type TissueCompletionDTO struct {
	Tissue     string  `json:"tissue"`
	Completion float64 `json:"completion"`
}

// OrganStatusDTO reports per-organ operational state.
type OrganStatusDTO struct {
	Name              string                `json:"name"`
	Description       string                `json:"description"`
	TissueCompletions []TissueCompletionDTO `json:"tissue_completions"`
	OverallCompletion float64               `json:"overall_completion"`
	IsOperational     bool                  `json:"is_operational"`
}

// VoiceStatusDTO aggregates voice coverage over active cells.
type VoiceStatusDTO struct {
	EnabledCellCount           int      `json:"enabled_cell_count"`
	SupportedLanguages         []string `json:"supported_languages"`
	TotalSampleCommands        int      `json:"total_sample_commands"`
	CulturallyAdaptedCellCount int      `json:"culturally_adapted_cell_count"`
}

// ArchitectureDTO is the full status report.
type ArchitectureDTO struct {
	Tissues      []TissueStatusDTO `json:"tissues"`
	Organs       []OrganStatusDTO  `json:"organs"`
	Capabilities map[string]int    `json:"capabilities"`
	Voice        VoiceStatusDTO    `json:"voice"`
}

// FromSector converts a domain sector to a DTO.
func FromSector(sector *catalog.Sector) SectorDTO {
	return SectorDTO{
		ID:          sector.ID(),
		DisplayName: sector.DisplayName(),
		CellIDs:     sector.CellIDs(),
	}
}

// FromSectors converts a slice of domain sectors to DTOs.
func FromSectors(sectors []*catalog.Sector) []SectorDTO {
	dtos := make([]SectorDTO, len(sectors))
	for i, sector := range sectors {
		dtos[i] = FromSector(sector)
	}
	return dtos
}

// FromConnection converts a derived edge to a DTO.
func FromConnection(conn composition.Connection) ConnectionDTO {
	return ConnectionDTO{
		Source:   conn.Source,
		Target:   conn.Target,
		Type:     string(conn.Type),
		Strength: string(conn.Strength),
	}
}

// FromCellConfiguration converts a derived cell view to a DTO.
func FromCellConfiguration(config composition.CellConfiguration) CellConfigurationDTO {
	connections := make([]ConnectionDTO, len(config.Connections))
	for i, conn := range config.Connections {
		connections[i] = FromConnection(conn)
	}

	capabilities := make([]string, len(config.Capabilities))
	for i, capability := range config.Capabilities {
		capabilities[i] = string(capability)
	}

	return CellConfigurationDTO{
		ID:           config.ID,
		Type:         string(config.Type),
		Tissue:       config.Tissue,
		Organ:        config.Organ,
		Capabilities: capabilities,
		Connections:  connections,
		Voice: VoiceDTO{
			Enabled:            config.Voice.Enabled,
			SupportedLanguages: config.Voice.SupportedLanguages,
			SampleCommands:     config.Voice.SampleCommands,
			CulturallyAdapted:  config.Voice.CulturallyAdapted,
		},
	}
}

// FromSnapshot converts an initialization snapshot to a DTO.
func FromSnapshot(snapshot composition.Snapshot) SnapshotDTO {
	dto := SnapshotDTO{
		ActiveCells:           snapshot.ActiveCells,
		AvailableIntegrations: snapshot.AvailableIntegrations,
	}
	if snapshot.Sector != nil {
		dto.Sector = snapshot.Sector.ID()
		dto.SectorDisplayName = snapshot.Sector.DisplayName()
	}
	return dto
}

// FromArchitecture converts a status projection to a DTO. Map-shaped
// projections become name-sorted slices so output is deterministic.
func FromArchitecture(arch status.Architecture) ArchitectureDTO {
	tissues := make([]TissueStatusDTO, 0, len(arch.Tissues))
	for name, ts := range arch.Tissues {
		tissues = append(tissues, TissueStatusDTO{
			Name:                 name,
			TotalCells:           ts.TotalCells,
			ActiveCells:          ts.ActiveCells,
			CompletionPercentage: ts.CompletionPercentage,
			ActiveCellIDs:        ts.ActiveCellIDs,
		})
	}
	sort.Slice(tissues, func(i, j int) bool { return tissues[i].Name < tissues[j].Name })

	organs := make([]OrganStatusDTO, 0, len(arch.Organs))
	for _, os := range arch.Organs {
		completions := make([]TissueCompletionDTO, len(os.TissueCompletions))
		for i, tc := range os.TissueCompletions {
			completions[i] = TissueCompletionDTO{Tissue: tc.Tissue, Completion: tc.Completion}
		}
		organs = append(organs, OrganStatusDTO{
			Name:              os.Name,
			Description:       os.Description,
			TissueCompletions: completions,
			OverallCompletion: os.OverallCompletion,
			IsOperational:     os.IsOperational,
		})
	}
	sort.Slice(organs, func(i, j int) bool { return organs[i].Name < organs[j].Name })

	capabilities := make(map[string]int, len(arch.Capabilities))
	for capability, count := range arch.Capabilities {
		capabilities[string(capability)] = count
	}

	return ArchitectureDTO{
		Tissues:      tissues,
		Organs:       organs,
		Capabilities: capabilities,
		Voice: VoiceStatusDTO{
			EnabledCellCount:           arch.Voice.EnabledCellCount,
			SupportedLanguages:         arch.Voice.SupportedLanguages,
			TotalSampleCommands:        arch.Voice.TotalSampleCommands,
			CulturallyAdaptedCellCount: arch.Voice.CulturallyAdaptedCellCount,
		},
	}
}
