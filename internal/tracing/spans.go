package tracing

// Span attribute keys for composition tracing.
const (
	AttrSessionID = "session.id"
	AttrSectorID  = "sector.id"
	AttrCellID    = "cell.id"
	AttrCellType  = "cell.type"
	AttrTissue    = "cell.tissue"
	AttrOrgan     = "cell.organ"

	AttrActiveCellCount = "composition.active_cells"
	AttrConnectionCount = "composition.connections"

	AttrErrorMessage = "error.message"
)

// Span names for the four session operations.
const (
	SpanInitializeSector = "composition.initialize_sector"
	SpanActivateCell     = "composition.activate_cell"
	SpanDeactivateCell   = "composition.deactivate_cell"
	SpanArchitecture     = "composition.architecture_status"
)
