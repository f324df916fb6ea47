package composition

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/organlabs/organon/internal/catalog/domain"
	"github.com/organlabs/organon/internal/inference"
)

func overrideCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat := testCatalog(t)

	add := func(cellID, cellType string, capabilities []string, voice *catalog.VoiceOverride) {
		override, err := catalog.NewCellOverride(cellID, cellType, capabilities, voice)
		require.NoError(t, err)
		require.NoError(t, cat.AddOverride(override))
	}

	// pos would classify as core by heuristics; the catalog pins it down.
	add("pos", "integration", []string{"automatedWorkflows"}, &catalog.VoiceOverride{
		Enabled:            true,
		SupportedLanguages: []string{"en", "sw"},
		SampleCommands:     []string{"Ring up {item}"},
		CulturallyAdapted:  true,
	})
	add("analytics", "", []string{"predictiveAnalytics", "warpDriveCalibration"}, nil)
	add("billing", "definitely_not_a_type", nil, nil)

	return cat
}

func TestProfileProvider_OverrideWinsOverHeuristics(t *testing.T) {
	provider := NewProfileProvider(overrideCatalog(t))

	profile := provider.Profile(context.Background(), "pos")

	assert.Equal(t, inference.CellTypeIntegration, profile.Type)
	assert.Equal(t, []inference.Capability{inference.CapabilityAutomatedWorkflows}, profile.Capabilities)
	assert.True(t, profile.Voice.Enabled)
	assert.Equal(t, []string{"en", "sw"}, profile.Voice.SupportedLanguages)
	assert.True(t, profile.Voice.CulturallyAdapted)
}

func TestProfileProvider_PartialOverrideFallsBackPerField(t *testing.T) {
	provider := NewProfileProvider(overrideCatalog(t))

	// analytics declares capabilities only; type and voice stay heuristic.
	profile := provider.Profile(context.Background(), "analytics")

	assert.Equal(t, inference.CellTypeAnalytics, profile.Type)
	assert.False(t, profile.Voice.Enabled)
}

func TestProfileProvider_UnknownDeclaredValuesAreSkipped(t *testing.T) {
	provider := NewProfileProvider(overrideCatalog(t))
	ctx := context.Background()

	// The unparseable capability is dropped, the valid one kept.
	analytics := provider.Profile(ctx, "analytics")
	assert.Equal(t, []inference.Capability{inference.CapabilityPredictiveAnalytics}, analytics.Capabilities)

	// An unparseable type falls back to classification.
	billing := provider.Profile(ctx, "billing")
	assert.Equal(t, inference.ClassifyCellType("billing"), billing.Type)
}

func TestProfileProvider_NoOverrideUsesHeuristics(t *testing.T) {
	provider := NewProfileProvider(overrideCatalog(t))

	profile := provider.Profile(context.Background(), "customer_management")

	assert.Equal(t, inference.ClassifyCellType("customer_management"), profile.Type)
	assert.Equal(t, inference.InferCapabilities("customer_management"), profile.Capabilities)
	assert.Equal(t, inference.InferVoiceInterface("customer_management"), profile.Voice)
}

func TestProfileProvider_CachesDerivations(t *testing.T) {
	provider := NewProfileProvider(overrideCatalog(t))
	ctx := context.Background()

	first := provider.Profile(ctx, "pos")
	second := provider.Profile(ctx, "pos")
	assert.Equal(t, first, second)

	require.NoError(t, provider.Flush(ctx))
	third := provider.Profile(ctx, "pos")
	assert.Equal(t, first, third)
}
