package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCellType(t *testing.T) {
	tests := []struct {
		name   string
		cellID string
		want   CellType
	}{
		{"management is core", "customer_management", CellTypeCore},
		{"tracking is core", "shipment_tracking", CellTypeCore},
		{"scheduling is core", "appointment_scheduling", CellTypeCore},
		{"portal is support", "parent_portal", CellTypeSupport},
		{"communication is support", "communication_hub", CellTypeSupport},
		{"analytics is analytics", "analytics", CellTypeAnalytics},
		{"reporting is analytics", "compliance_reporting", CellTypeAnalytics},
		{"api is integration", "api_bridge", CellTypeIntegration},
		{"connector is integration", "erp_connector", CellTypeIntegration},
		{"automation is automation", "maintenance_automation", CellTypeAutomation},
		{"workflow is automation", "approval_workflow", CellTypeAutomation},
		{"no keyword defaults to core", "pos", CellTypeCore},
		{"empty id defaults to core", "", CellTypeCore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCellType(tt.cellID))
		})
	}
}

// Rule order is a priority list: the core group wins over later groups even
// when both match.
func TestClassifyCellType_OrderedPriority(t *testing.T) {
	// Contains both "management" (core) and "analytics" (analytics).
	assert.Equal(t, CellTypeCore, ClassifyCellType("analytics_management"))
	// Contains both "portal" (support) and "api" (integration).
	assert.Equal(t, CellTypeSupport, ClassifyCellType("api_portal"))
}

func TestClassifyCellType_Deterministic(t *testing.T) {
	first := ClassifyCellType("customer_analytics")
	for i := 0; i < 100; i++ {
		require.Equal(t, first, ClassifyCellType("customer_analytics"))
	}
}

func TestInferCapabilities(t *testing.T) {
	tests := []struct {
		name   string
		cellID string
		want   []Capability
	}{
		{
			name:   "customer grants language, voice, cultural",
			cellID: "customer_portal",
			want: []Capability{
				CapabilityNaturalLanguageProcessing,
				CapabilityVoiceRecognition,
				CapabilityCulturalAdaptation,
			},
		},
		{
			name:   "analytics grants predictive and recommendations",
			cellID: "analytics",
			want: []Capability{
				CapabilityPredictiveAnalytics,
				CapabilityIntelligentRecommendations,
			},
		},
		{
			name:   "management grants workflows and recommendations",
			cellID: "fleet_management",
			want: []Capability{
				CapabilityAutomatedWorkflows,
				CapabilityIntelligentRecommendations,
			},
		},
		{
			name:   "no keyword yields no capabilities",
			cellID: "pos",
			want:   []Capability{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferCapabilities(tt.cellID))
		})
	}
}

// An id matching multiple groups receives the union of their grants, without
// duplicates and in canonical vocabulary order.
func TestInferCapabilities_UnionAcrossGroups(t *testing.T) {
	got := InferCapabilities("customer_analytics")

	assert.Equal(t, []Capability{
		CapabilityNaturalLanguageProcessing,
		CapabilityVoiceRecognition,
		CapabilityPredictiveAnalytics,
		CapabilityIntelligentRecommendations,
		CapabilityCulturalAdaptation,
	}, got)
}

// customer_management fires both the customer and the management groups;
// the shared recommendation flag must appear exactly once.
func TestInferCapabilities_NoDuplicates(t *testing.T) {
	got := InferCapabilities("customer_management")

	seen := make(map[Capability]int)
	for _, c := range got {
		seen[c]++
	}
	for c, n := range seen {
		require.Equal(t, 1, n, "capability %s appears %d times", c, n)
	}
	assert.Contains(t, got, CapabilityAutomatedWorkflows)
	assert.Contains(t, got, CapabilityVoiceRecognition)
}

func TestInferVoiceInterface(t *testing.T) {
	t.Run("disabled for non-matching id", func(t *testing.T) {
		vi := InferVoiceInterface("weather_integration")

		assert.False(t, vi.Enabled)
		assert.Empty(t, vi.SupportedLanguages)
		assert.Empty(t, vi.SampleCommands)
		assert.False(t, vi.CulturallyAdapted)
	})

	t.Run("customer id gets customer command set", func(t *testing.T) {
		vi := InferVoiceInterface("customer_management")

		require.True(t, vi.Enabled)
		assert.Equal(t, supportedVoiceLanguages, vi.SupportedLanguages)
		assert.Contains(t, vi.SampleCommands, "Find customer {name}")
		assert.True(t, vi.CulturallyAdapted)
	})

	t.Run("inventory management gets inventory command set", func(t *testing.T) {
		vi := InferVoiceInterface("inventory_management")

		require.True(t, vi.Enabled)
		assert.Contains(t, vi.SampleCommands, "Which items are running low?")
		// Operator-facing, not customer-facing.
		assert.False(t, vi.CulturallyAdapted)
	})

	t.Run("enabled id outside every command category has empty commands", func(t *testing.T) {
		vi := InferVoiceInterface("fleet_management")

		require.True(t, vi.Enabled)
		assert.Empty(t, vi.SampleCommands)
	})
}

func TestParseCellType(t *testing.T) {
	got, ok := ParseCellType("analytics")
	require.True(t, ok)
	assert.Equal(t, CellTypeAnalytics, got)

	_, ok = ParseCellType("quantum")
	assert.False(t, ok)
}

func TestParseCapability(t *testing.T) {
	got, ok := ParseCapability("voiceRecognition")
	require.True(t, ok)
	assert.Equal(t, CapabilityVoiceRecognition, got)

	_, ok = ParseCapability("telepathy")
	assert.False(t, ok)
}
