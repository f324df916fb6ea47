package presentation

import (
	"encoding/json"
	"io"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatSectors formats a list of sectors as JSON
func (f *Formatter) FormatSectors(sectors []SectorDTO) error {
	return f.encode(sectors)
}

// FormatSnapshot formats an initialization snapshot as JSON
func (f *Formatter) FormatSnapshot(snapshot SnapshotDTO) error {
	return f.encode(snapshot)
}

// FormatCellConfiguration formats a derived cell view as JSON
func (f *Formatter) FormatCellConfiguration(config CellConfigurationDTO) error {
	return f.encode(config)
}

// FormatArchitecture formats a status report as JSON
func (f *Formatter) FormatArchitecture(arch ArchitectureDTO) error {
	return f.encode(arch)
}

func (f *Formatter) encode(value any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
