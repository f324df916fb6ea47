package testutil

// SectorOption configures a sector added to the builder.
type SectorOption func(*sectorData)

// DisplayName sets the human-readable sector name.
func DisplayName(name string) SectorOption {
	return func(s *sectorData) { s.displayName = name }
}

// Cells sets the sector's cell roster.
func Cells(cellIDs ...string) SectorOption {
	return func(s *sectorData) { s.cellIDs = cellIDs }
}
