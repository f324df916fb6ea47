package testutil

// WithRetailPreset adds a small retail-flavored catalog: one sector, three
// tissues, one organ. Mirrors the shapes exercised across the engine tests.
func (b *Builder) WithRetailPreset() *Builder {
	return b.
		WithSector("retail",
			DisplayName("Retail"),
			Cells("inventory", "pos", "customer_management", "loyalty_programs", "analytics")).
		WithTissue("customer_experience", "customer_management", "loyalty_programs").
		WithTissue("financial_operations", "billing", "pos").
		WithTissue("data_intelligence", "analytics").
		WithOrgan("commerce_engine", "revenue subsystem", "financial_operations", "customer_experience").
		WithOrgan("intelligence_hub", "analytics subsystem", "data_intelligence").
		WithCommonIntegrations("payment_gateway", "sms_notifications")
}

// WithTwoSectorPreset adds retail plus a healthcare sector sharing the
// billing cell, for tests that cross sector boundaries.
func (b *Builder) WithTwoSectorPreset() *Builder {
	return b.
		WithRetailPreset().
		WithSector("healthcare",
			DisplayName("Healthcare"),
			Cells("patient_records", "appointment_scheduling", "billing")).
		WithIntegrations("healthcare", "insurance_api")
}
