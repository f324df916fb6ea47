package composition

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/organlabs/organon/internal/tracing"
)

// recordingSession builds a session whose spans land in an in-memory
// exporter, so tests can assert on recorded attributes.
func recordingSession(t *testing.T, opts ...Option) (*Session, *tracetest.InMemoryExporter) {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	opts = append(opts, WithTracer(provider.Tracer("organon-test")))
	return NewSession(testCatalog(t), opts...), exporter
}

func findSpan(t *testing.T, exporter *tracetest.InMemoryExporter, name string) tracetest.SpanStub {
	t.Helper()
	for _, span := range exporter.GetSpans() {
		if span.Name == name {
			return span
		}
	}
	t.Fatalf("no span named %s recorded", name)
	return tracetest.SpanStub{}
}

func spanAttr(span tracetest.SpanStub, key string) (string, bool) {
	for _, kv := range span.Attributes {
		if string(kv.Key) == key {
			return kv.Value.AsString(), true
		}
	}
	return "", false
}

func TestActivateCell_SpanCarriesMembership(t *testing.T) {
	session, exporter := recordingSession(t)
	ctx := context.Background()

	_, err := session.ActivateCell(ctx, "pos")
	require.NoError(t, err)

	span := findSpan(t, exporter, tracing.SpanActivateCell)

	tissue, ok := spanAttr(span, tracing.AttrTissue)
	require.True(t, ok, "tissue attribute missing")
	assert.Equal(t, "financial_operations", tissue)

	organ, ok := spanAttr(span, tracing.AttrOrgan)
	require.True(t, ok, "organ attribute missing")
	assert.Equal(t, "commerce_engine", organ)

	_, ok = spanAttr(span, tracing.AttrCellType)
	assert.True(t, ok, "cell type attribute missing")
}

func TestActivateCell_SpanOmitsMembershipForOrphanCells(t *testing.T) {
	session, exporter := recordingSession(t)
	ctx := context.Background()

	// Declared in the retail sector but grouped by no tissue.
	_, err := session.ActivateCell(ctx, "inventory")
	require.NoError(t, err)

	span := findSpan(t, exporter, tracing.SpanActivateCell)

	_, ok := spanAttr(span, tracing.AttrTissue)
	assert.False(t, ok, "unexpected tissue attribute")
	_, ok = spanAttr(span, tracing.AttrOrgan)
	assert.False(t, ok, "unexpected organ attribute")
}

func TestInitializeForSector_SpanRecordsFailure(t *testing.T) {
	session, exporter := recordingSession(t)
	ctx := context.Background()

	_, err := session.InitializeForSector(ctx, "atlantis")
	require.Error(t, err)

	span := findSpan(t, exporter, tracing.SpanInitializeSector)
	assert.Equal(t, codes.Error, span.Status.Code)

	msg, ok := spanAttr(span, tracing.AttrErrorMessage)
	require.True(t, ok, "error message attribute missing")
	assert.Contains(t, msg, "atlantis")
}

func TestActivateCell_SpanRecordsStrictModeFailure(t *testing.T) {
	session, exporter := recordingSession(t, WithAllowUndeclaredCells(false))
	ctx := context.Background()

	_, err := session.ActivateCell(ctx, "quantum_flux")
	require.ErrorIs(t, err, ErrUndeclaredCell)

	span := findSpan(t, exporter, tracing.SpanActivateCell)
	assert.Equal(t, codes.Error, span.Status.Code)

	msg, ok := spanAttr(span, tracing.AttrErrorMessage)
	require.True(t, ok, "error message attribute missing")
	assert.Contains(t, msg, "quantum_flux")
}
