// Package composition maintains the active cell composition for a chosen
// sector: the active-cell set, the derived connection graph between active
// cells, and per-cell configuration. Registry and inference stay pure; this
// is the only mutable state in the engine, owned by a Session value created
// per caller rather than a process-wide singleton.
package composition

import (
	catalog "github.com/organlabs/organon/internal/catalog/domain"
	"github.com/organlabs/organon/internal/inference"
)

// ConnectionType distinguishes same-tissue edges from cross-tissue affinity
// edges.
type ConnectionType string

const (
	ConnectionTissue      ConnectionType = "tissue"
	ConnectionCrossTissue ConnectionType = "cross-tissue"
)

// Strength grades a connection.
type Strength string

const (
	StrengthStrong Strength = "strong"
	StrengthMedium Strength = "medium"
)

// Connection is a derived edge between two currently active cells. Edges
// exist only while both endpoints are active; deactivating either endpoint
// removes every edge that references it.
type Connection struct {
	Source   string
	Target   string
	Type     ConnectionType
	Strength Strength
}

// Snapshot describes the composition right after sector initialization.
type Snapshot struct {
	Sector                *catalog.Sector
	ActiveCells           []string
	AvailableIntegrations []string
}

// CellConfiguration is the full derived view of one active cell.
type CellConfiguration struct {
	ID           string
	Type         inference.CellType
	Connections  []Connection
	Tissue       string // empty when the cell belongs to no tissue
	Organ        string // empty when the cell's tissue belongs to no organ
	Capabilities []inference.Capability
	Voice        inference.VoiceInterface
}

// Event is the payload published on the session broker for lifecycle events.
type Event struct {
	SessionID string
	SectorID  string
	CellID    string // empty for sector-level events
}
