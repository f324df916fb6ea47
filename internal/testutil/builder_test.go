package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_AssemblesCatalog(t *testing.T) {
	cat := NewBuilder(t).
		WithSector("farm", DisplayName("Agriculture"), Cells("crop_monitoring", "irrigation")).
		WithTissue("field_ops", "crop_monitoring", "irrigation").
		WithOrgan("growth_engine", "field subsystem", "field_ops").
		WithOverride("irrigation", "automation", []string{"automatedWorkflows"}, nil).
		WithIntegrations("farm", "weather_api").
		WithCommonIntegrations("sms_notifications").
		Build()

	sector, err := cat.GetSector("farm")
	require.NoError(t, err)
	assert.Equal(t, "Agriculture", sector.DisplayName())

	tissue, ok := cat.TissueForCell("irrigation")
	require.True(t, ok)
	assert.Equal(t, "field_ops", tissue)

	organ, ok := cat.OrganForCell("irrigation")
	require.True(t, ok)
	assert.Equal(t, "growth_engine", organ)

	override, ok := cat.CellOverride("irrigation")
	require.True(t, ok)
	assert.Equal(t, "automation", override.CellType())

	assert.Equal(t, []string{"weather_api", "sms_notifications"}, cat.IntegrationsForSector("farm"))
}

func TestBuilder_RetailPreset(t *testing.T) {
	cat := NewBuilder(t).WithRetailPreset().Build()

	sector, err := cat.GetSector("retail")
	require.NoError(t, err)
	assert.Len(t, sector.CellIDs(), 5)
	assert.Len(t, cat.Tissues(), 3)
	assert.Len(t, cat.Organs(), 2)
}

func TestBuilder_TwoSectorPreset(t *testing.T) {
	cat := NewBuilder(t).WithTwoSectorPreset().Build()

	assert.Len(t, cat.Sectors(), 2)

	// billing is shared: declared by healthcare, tissue-grouped under retail's
	// financial_operations.
	assert.True(t, cat.KnownCell("billing"))
	tissue, ok := cat.TissueForCell("billing")
	require.True(t, ok)
	assert.Equal(t, "financial_operations", tissue)
}
