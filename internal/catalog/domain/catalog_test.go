package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSector(t *testing.T, id, name string, cells ...string) *Sector {
	t.Helper()
	s, err := NewSector(id, name, cells)
	require.NoError(t, err)
	return s
}

func mustTissue(t *testing.T, name string, cells ...string) *Tissue {
	t.Helper()
	tissue, err := NewTissue(name, cells)
	require.NoError(t, err)
	return tissue
}

func mustOrgan(t *testing.T, name, desc string, tissues ...string) *Organ {
	t.Helper()
	o, err := NewOrgan(name, desc, tissues)
	require.NoError(t, err)
	return o
}

func TestNewSector_Validation(t *testing.T) {
	_, err := NewSector("", "Nameless", []string{"a"})
	assert.ErrorIs(t, err, ErrEmptySectorID)

	_, err = NewSector("retail", "Retail", []string{"inventory", "inventory"})
	assert.ErrorIs(t, err, ErrDuplicateCellID)
}

func TestCatalog_GetSector_CaseInsensitive(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.AddSector(mustSector(t, "retail", "Retail", "inventory", "pos")))

	for _, id := range []string{"retail", "RETAIL", "Retail", "  retail "} {
		s, err := c.GetSector(id)
		require.NoError(t, err, "lookup %q", id)
		assert.Equal(t, "retail", s.ID())
	}
}

func TestCatalog_GetSector_NotFound(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.AddSector(mustSector(t, "retail", "Retail", "inventory")))

	_, err := c.GetSector("not_a_real_sector")
	assert.ErrorIs(t, err, ErrSectorNotFound)
}

func TestCatalog_AddSector_DuplicateByNormalizedID(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.AddSector(mustSector(t, "retail", "Retail", "inventory")))

	err := c.AddSector(mustSector(t, "RETAIL", "Retail Again", "pos"))
	assert.ErrorIs(t, err, ErrDuplicateSector)
}

func TestCatalog_TissueForCell(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.AddTissue(mustTissue(t, "customer_experience", "customer_management", "loyalty_programs")))
	require.NoError(t, c.AddTissue(mustTissue(t, "financial_operations", "billing", "pos")))

	name, ok := c.TissueForCell("billing")
	require.True(t, ok)
	assert.Equal(t, "financial_operations", name)

	// A cell outside every tissue is a valid state, not an error.
	_, ok = c.TissueForCell("weather_integration")
	assert.False(t, ok)
}

// Tissues are disjoint by convention but the catalog must not assume it:
// the first registered match wins.
func TestCatalog_TissueForCell_FirstMatchWins(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.AddTissue(mustTissue(t, "first", "shared_cell")))
	require.NoError(t, c.AddTissue(mustTissue(t, "second", "shared_cell")))

	name, ok := c.TissueForCell("shared_cell")
	require.True(t, ok)
	assert.Equal(t, "first", name)
}

func TestCatalog_OrganForCell(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.AddTissue(mustTissue(t, "financial_operations", "billing")))
	require.NoError(t, c.AddTissue(mustTissue(t, "orphan_tissue", "lonely_cell")))
	require.NoError(t, c.AddOrgan(mustOrgan(t, "commerce_engine", "revenue subsystem", "financial_operations")))

	organ, ok := c.OrganForCell("billing")
	require.True(t, ok)
	assert.Equal(t, "commerce_engine", organ)

	// Cell in a tissue owned by no organ.
	_, ok = c.OrganForCell("lonely_cell")
	assert.False(t, ok)

	// Cell in no tissue at all.
	_, ok = c.OrganForCell("unknown_cell")
	assert.False(t, ok)
}

func TestCatalog_KnownCell(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.AddSector(mustSector(t, "retail", "Retail", "inventory", "pos")))
	require.NoError(t, c.AddSector(mustSector(t, "healthcare", "Healthcare", "billing", "inventory")))

	assert.True(t, c.KnownCell("inventory"))
	assert.True(t, c.KnownCell("billing"))
	assert.False(t, c.KnownCell("experimental_cell"))

	assert.Equal(t, []string{"billing", "inventory", "pos"}, c.KnownCellIDs())
}

func TestCatalog_IntegrationsForSector(t *testing.T) {
	c := NewCatalog()
	c.SetIntegrations("retail", []string{"barcode_scanner", "payment_gateway"})
	c.SetCommonIntegrations([]string{"payment_gateway", "sms_notifications"})

	// Sector list first, then common, duplicates removed.
	assert.Equal(t,
		[]string{"barcode_scanner", "payment_gateway", "sms_notifications"},
		c.IntegrationsForSector("RETAIL"))

	// A sector without a specific list still gets the common integrations.
	assert.Equal(t,
		[]string{"payment_gateway", "sms_notifications"},
		c.IntegrationsForSector("healthcare"))
}

func TestCatalog_Overrides(t *testing.T) {
	c := NewCatalog()
	ov, err := NewCellOverride("pos", "core", []string{"automatedWorkflows"}, &VoiceOverride{Enabled: false})
	require.NoError(t, err)
	require.NoError(t, c.AddOverride(ov))

	got, ok := c.CellOverride("pos")
	require.True(t, ok)
	assert.Equal(t, "core", got.CellType())
	assert.Equal(t, []string{"automatedWorkflows"}, got.Capabilities())
	require.NotNil(t, got.Voice())
	assert.False(t, got.Voice().Enabled)

	dup, err := NewCellOverride("pos", "support", nil, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, c.AddOverride(dup), ErrDuplicateOverride)

	_, ok = c.CellOverride("inventory")
	assert.False(t, ok)
}

func TestCatalog_NilEntries(t *testing.T) {
	c := NewCatalog()
	assert.ErrorIs(t, c.AddSector(nil), ErrNilEntry)
	assert.ErrorIs(t, c.AddTissue(nil), ErrNilEntry)
	assert.ErrorIs(t, c.AddOrgan(nil), ErrNilEntry)
	assert.ErrorIs(t, c.AddOverride(nil), ErrNilEntry)
}
