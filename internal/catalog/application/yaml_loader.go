package catalog

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	catalog "github.com/organlabs/organon/internal/catalog/domain"
)

// CatalogFile is the root structure for catalog.yaml
type CatalogFile struct {
	Catalog CatalogDef `yaml:"catalog"`
}

// CatalogDef holds every section of a catalog definition.
type CatalogDef struct {
	Sectors      []SectorDef     `yaml:"sectors"`
	Tissues      []TissueDef     `yaml:"tissues"`
	Organs       []OrganDef      `yaml:"organs"`
	Cells        []CellDef       `yaml:"cells"`        // Optional declarative per-cell overrides
	Integrations IntegrationsDef `yaml:"integrations"` // Sector-keyed and common integration lists
}

// SectorDef defines a single sector in YAML.
type SectorDef struct {
	ID          string   `yaml:"id"`
	DisplayName string   `yaml:"display_name"`
	Cells       []string `yaml:"cells"`
}

// TissueDef defines a named grouping of related cell ids.
type TissueDef struct {
	Name  string   `yaml:"name"`
	Cells []string `yaml:"cells"`
}

// OrganDef defines a named grouping of tissues.
type OrganDef struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tissues     []string `yaml:"tissues"`
}

// CellDef declares explicit tags for one cell, overriding inference.
type CellDef struct {
	ID           string    `yaml:"id"`
	Type         string    `yaml:"type"`         // One of the fixed cell-type vocabulary, or empty for heuristic
	Capabilities []string  `yaml:"capabilities"` // Capability names, or empty for heuristic
	Voice        *VoiceDef `yaml:"voice"`        // Explicit voice surface, or nil for heuristic
}

// VoiceDef declares a cell's voice-command surface.
type VoiceDef struct {
	Enabled            bool     `yaml:"enabled"`
	SupportedLanguages []string `yaml:"supported_languages"`
	SampleCommands     []string `yaml:"sample_commands"`
	CulturallyAdapted  bool     `yaml:"culturally_adapted"`
}

// IntegrationsDef declares available third-party integrations.
type IntegrationsDef struct {
	Common  []string            `yaml:"common"`
	Sectors map[string][]string `yaml:"sectors"`
}

// LoadCatalogFromFS reads and assembles a catalog from a YAML file inside fsys.
func LoadCatalogFromFS(fsys fs.FS, path string) (*catalog.Catalog, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return LoadCatalog(content)
}

// LoadCatalog assembles a catalog from raw YAML content.
func LoadCatalog(content []byte) (*catalog.Catalog, error) {
	var file CatalogFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	def := file.Catalog
	if len(def.Sectors) == 0 {
		return nil, fmt.Errorf("catalog defines no sectors")
	}

	cat := catalog.NewCatalog()

	for _, sd := range def.Sectors {
		sector, err := catalog.NewSector(sd.ID, sd.DisplayName, sd.Cells)
		if err != nil {
			return nil, fmt.Errorf("sector %s: %w", sd.ID, err)
		}
		if err := cat.AddSector(sector); err != nil {
			return nil, fmt.Errorf("sector %s: %w", sd.ID, err)
		}
	}

	for _, td := range def.Tissues {
		tissue, err := catalog.NewTissue(td.Name, td.Cells)
		if err != nil {
			return nil, fmt.Errorf("tissue %s: %w", td.Name, err)
		}
		if err := cat.AddTissue(tissue); err != nil {
			return nil, fmt.Errorf("tissue %s: %w", td.Name, err)
		}
	}

	for _, od := range def.Organs {
		organ, err := catalog.NewOrgan(od.Name, od.Description, od.Tissues)
		if err != nil {
			return nil, fmt.Errorf("organ %s: %w", od.Name, err)
		}
		if err := cat.AddOrgan(organ); err != nil {
			return nil, fmt.Errorf("organ %s: %w", od.Name, err)
		}
	}

	for _, cd := range def.Cells {
		override, err := buildOverride(cd)
		if err != nil {
			return nil, fmt.Errorf("cell %s: %w", cd.ID, err)
		}
		if err := cat.AddOverride(override); err != nil {
			return nil, fmt.Errorf("cell %s: %w", cd.ID, err)
		}
	}

	cat.SetCommonIntegrations(def.Integrations.Common)
	for sectorID, list := range def.Integrations.Sectors {
		cat.SetIntegrations(sectorID, list)
	}

	return cat, nil
}

// buildOverride converts a CellDef into a domain override.
func buildOverride(cd CellDef) (*catalog.CellOverride, error) {
	var voice *catalog.VoiceOverride
	if cd.Voice != nil {
		voice = &catalog.VoiceOverride{
			Enabled:            cd.Voice.Enabled,
			SupportedLanguages: cd.Voice.SupportedLanguages,
			SampleCommands:     cd.Voice.SampleCommands,
			CulturallyAdapted:  cd.Voice.CulturallyAdapted,
		}
	}
	return catalog.NewCellOverride(cd.ID, cd.Type, cd.Capabilities, voice)
}
