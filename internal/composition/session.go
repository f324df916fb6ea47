package composition

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	catalog "github.com/organlabs/organon/internal/catalog/domain"
	"github.com/organlabs/organon/internal/log"
	"github.com/organlabs/organon/internal/pubsub"
	"github.com/organlabs/organon/internal/status"
	"github.com/organlabs/organon/internal/tracing"
)

// ErrUndeclaredCell is returned by ActivateCell in strict mode when the cell
// id appears in no sector of the catalog.
var ErrUndeclaredCell = errors.New("cell not declared in any sector")

// Options configures session behavior.
type Options struct {
	// AllowUndeclaredCells permits activating cell ids that appear in no
	// sector. Such cells still receive inferred profiles and affinity
	// edges; they simply have no tissue or organ membership. Enabled by
	// default so callers can extend a sector composition ad hoc.
	AllowUndeclaredCells bool

	tracer trace.Tracer
}

// Option mutates session options.
type Option func(*Options)

// WithAllowUndeclaredCells toggles strict cell id checking.
func WithAllowUndeclaredCells(allow bool) Option {
	return func(o *Options) { o.AllowUndeclaredCells = allow }
}

// WithTracer overrides the tracer, mainly for tests.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *Options) { o.tracer = tracer }
}

// Session owns one caller's composition state. Sessions are independent:
// two sessions over the same catalog never observe each other's activations.
// All methods are safe for concurrent use.
type Session struct {
	id       uuid.UUID
	cat      *catalog.Catalog
	profiles *ProfileProvider
	agg      *status.Aggregator
	broker   *pubsub.Broker[Event]
	tracer   trace.Tracer
	opts     Options

	mu          sync.Mutex
	sector      *catalog.Sector
	active      map[string]bool
	order       []string // activation order, drives deterministic iteration
	connections map[string][]Connection
}

// NewSession creates an empty session over the catalog. Call
// InitializeForSector before activating cells that should carry sector
// context.
func NewSession(cat *catalog.Catalog, opts ...Option) *Session {
	options := Options{AllowUndeclaredCells: true}
	for _, opt := range opts {
		opt(&options)
	}
	if options.tracer == nil {
		options.tracer = otel.Tracer("github.com/organlabs/organon/internal/composition")
	}

	profiles := NewProfileProvider(cat)
	return &Session{
		id:          uuid.New(),
		cat:         cat,
		profiles:    profiles,
		agg:         status.NewAggregator(cat, profiles),
		broker:      pubsub.NewBroker[Event](),
		tracer:      options.tracer,
		opts:        options,
		active:      make(map[string]bool),
		connections: make(map[string][]Connection),
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Profiles exposes the session's profile provider for read-only inspection.
func (s *Session) Profiles() *ProfileProvider {
	return s.profiles
}

// Subscribe returns a channel of lifecycle events. The channel closes when
// ctx is cancelled or the session is closed.
func (s *Session) Subscribe(ctx context.Context) <-chan pubsub.Event[Event] {
	return s.broker.Subscribe(ctx)
}

// Close shuts down the session's event broker.
func (s *Session) Close() {
	s.broker.Close()
}

// InitializeForSector resets the session to the given sector's full cell
// roster. Sector lookup is case-insensitive. On an unknown sector the
// current composition is left untouched.
func (s *Session) InitializeForSector(ctx context.Context, sectorID string) (Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, tracing.SpanInitializeSector, trace.WithAttributes(
		attribute.String(tracing.AttrSessionID, s.id.String()),
		attribute.String(tracing.AttrSectorID, sectorID),
	))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Lookup before mutation: a failed lookup must not clear prior state.
	sector, err := s.cat.GetSector(sectorID)
	if err != nil {
		err = fmt.Errorf("initialize for sector %q: %w", sectorID, err)
		span.RecordError(err)
		span.SetAttributes(attribute.String(tracing.AttrErrorMessage, err.Error()))
		span.SetStatus(codes.Error, err.Error())
		return Snapshot{}, err
	}

	s.sector = sector
	s.active = make(map[string]bool)
	s.order = nil
	s.connections = make(map[string][]Connection)

	for _, cellID := range sector.CellIDs() {
		s.activateLocked(cellID)
	}

	span.SetAttributes(
		attribute.Int(tracing.AttrActiveCellCount, len(s.order)),
		attribute.Int(tracing.AttrConnectionCount, s.connectionCountLocked()),
	)
	log.Info(log.CatComposition, "initialized composition for sector",
		"session", s.id, "sector", sector.ID(), "cells", len(s.order))

	s.broker.Publish(pubsub.InitializedEvent, Event{SessionID: s.id.String(), SectorID: sector.ID()})

	return s.snapshotLocked(), nil
}

// ActivateCell adds a cell to the composition and derives its connections.
// Activating an already-active cell recomputes and returns its configuration
// without duplicating edges.
func (s *Session) ActivateCell(ctx context.Context, cellID string) (CellConfiguration, error) {
	ctx, span := s.tracer.Start(ctx, tracing.SpanActivateCell, trace.WithAttributes(
		attribute.String(tracing.AttrSessionID, s.id.String()),
		attribute.String(tracing.AttrCellID, cellID),
	))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opts.AllowUndeclaredCells && !s.cat.KnownCell(cellID) {
		err := fmt.Errorf("activate cell %q: %w", cellID, ErrUndeclaredCell)
		span.RecordError(err)
		span.SetAttributes(attribute.String(tracing.AttrErrorMessage, err.Error()))
		span.SetStatus(codes.Error, err.Error())
		return CellConfiguration{}, err
	}

	s.activateLocked(cellID)
	config := s.configurationLocked(ctx, cellID)

	span.SetAttributes(
		attribute.String(tracing.AttrCellType, string(config.Type)),
		attribute.Int(tracing.AttrConnectionCount, len(config.Connections)),
	)
	if config.Tissue != "" {
		span.SetAttributes(attribute.String(tracing.AttrTissue, config.Tissue))
	}
	if config.Organ != "" {
		span.SetAttributes(attribute.String(tracing.AttrOrgan, config.Organ))
	}
	log.Debug(log.CatComposition, "activated cell",
		"session", s.id, "cell", cellID, "connections", len(config.Connections))

	s.broker.Publish(pubsub.ActivatedEvent, Event{SessionID: s.id.String(), SectorID: s.sectorIDLocked(), CellID: cellID})

	return config, nil
}

// DeactivateCell removes a cell and every connection that references it.
// Deactivating an inactive cell is a no-op.
func (s *Session) DeactivateCell(ctx context.Context, cellID string) {
	_, span := s.tracer.Start(ctx, tracing.SpanDeactivateCell, trace.WithAttributes(
		attribute.String(tracing.AttrSessionID, s.id.String()),
		attribute.String(tracing.AttrCellID, cellID),
	))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active[cellID] {
		return
	}

	delete(s.active, cellID)
	for i, id := range s.order {
		if id == cellID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.purgeLocked(cellID)

	log.Debug(log.CatComposition, "deactivated cell", "session", s.id, "cell", cellID)

	s.broker.Publish(pubsub.DeactivatedEvent, Event{SessionID: s.id.String(), SectorID: s.sectorIDLocked(), CellID: cellID})
}

// ArchitectureStatus recomputes the full status projection from the current
// active set. Results are never cached.
func (s *Session) ArchitectureStatus(ctx context.Context) status.Architecture {
	ctx, span := s.tracer.Start(ctx, tracing.SpanArchitecture, trace.WithAttributes(
		attribute.String(tracing.AttrSessionID, s.id.String()),
	))
	defer span.End()

	active := s.ActiveCells()
	span.SetAttributes(attribute.Int(tracing.AttrActiveCellCount, len(active)))

	return s.agg.Architecture(ctx, active)
}

// Configuration returns the derived configuration of a cell, active or not.
// For inactive cells the connection list is empty.
func (s *Session) Configuration(ctx context.Context, cellID string) CellConfiguration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.configurationLocked(ctx, cellID)
}

// ActiveSector returns the sector of the last successful initialization,
// or nil.
func (s *Session) ActiveSector() *catalog.Sector {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sector
}

// ActiveCells returns the active cell ids in activation order.
func (s *Session) ActiveCells() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...)
}

// Connections returns the current edges of one cell.
func (s *Session) Connections(cellID string) []Connection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Connection(nil), s.connections[cellID]...)
}

// ConnectionCount returns the total number of directed edges in the graph.
func (s *Session) ConnectionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connectionCountLocked()
}

// Snapshot returns the current composition snapshot.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) activateLocked(cellID string) {
	if !s.active[cellID] {
		s.active[cellID] = true
		s.order = append(s.order, cellID)
	}
	s.rebuildConnectionsLocked(cellID)
}

// rebuildConnectionsLocked recomputes every edge touching cellID. Purging
// first makes activation idempotent: re-activating derives the same edge
// set instead of accumulating duplicates.
func (s *Session) rebuildConnectionsLocked(cellID string) {
	s.purgeLocked(cellID)

	tissue, inTissue := s.cat.TissueForCell(cellID)

	for _, otherID := range s.order {
		if otherID == cellID {
			continue
		}

		otherTissue, otherInTissue := s.cat.TissueForCell(otherID)
		if inTissue && otherInTissue && tissue == otherTissue {
			s.addEdgeLocked(cellID, otherID, ConnectionTissue, StrengthStrong)
			s.addEdgeLocked(otherID, cellID, ConnectionTissue, StrengthStrong)
			continue
		}

		if hasAffinity(cellID, otherID) {
			s.addEdgeLocked(cellID, otherID, ConnectionCrossTissue, StrengthMedium)
			s.addEdgeLocked(otherID, cellID, ConnectionCrossTissue, StrengthMedium)
		}
	}
}

func (s *Session) addEdgeLocked(source, target string, connType ConnectionType, strength Strength) {
	for _, edge := range s.connections[source] {
		if edge.Target == target && edge.Type == connType {
			return
		}
	}
	s.connections[source] = append(s.connections[source], Connection{
		Source:   source,
		Target:   target,
		Type:     connType,
		Strength: strength,
	})
}

// purgeLocked drops every edge with cellID as either endpoint.
func (s *Session) purgeLocked(cellID string) {
	delete(s.connections, cellID)
	for id, edges := range s.connections {
		kept := edges[:0]
		for _, edge := range edges {
			if edge.Source != cellID && edge.Target != cellID {
				kept = append(kept, edge)
			}
		}
		if len(kept) == 0 {
			delete(s.connections, id)
			continue
		}
		s.connections[id] = kept
	}
}

func (s *Session) configurationLocked(ctx context.Context, cellID string) CellConfiguration {
	profile := s.profiles.Profile(ctx, cellID)

	var tissueName, organName string
	if tissue, ok := s.cat.TissueForCell(cellID); ok {
		tissueName = tissue
		if organ, ok := s.cat.OrganForCell(cellID); ok {
			organName = organ
		}
	}

	return CellConfiguration{
		ID:           cellID,
		Type:         profile.Type,
		Connections:  append([]Connection(nil), s.connections[cellID]...),
		Tissue:       tissueName,
		Organ:        organName,
		Capabilities: profile.Capabilities,
		Voice:        profile.Voice,
	}
}

func (s *Session) snapshotLocked() Snapshot {
	snapshot := Snapshot{
		ActiveCells: append([]string(nil), s.order...),
	}
	if s.sector != nil {
		snapshot.Sector = s.sector
		snapshot.AvailableIntegrations = s.cat.IntegrationsForSector(s.sector.ID())
	}
	return snapshot
}

func (s *Session) sectorIDLocked() string {
	if s.sector == nil {
		return ""
	}
	return s.sector.ID()
}

func (s *Session) connectionCountLocked() int {
	total := 0
	for _, edges := range s.connections {
		total += len(edges)
	}
	return total
}
