// Package inference derives cell facts from cell identifiers.
// Cells have no stored record of their own: their type, capabilities, and
// voice interface are computed on demand from naming conventions. The rules
// here are ordered substring heuristics and must stay deterministic - the
// catalog may carry explicit per-cell overrides that take precedence, in
// which case these functions act as the fallback for unlisted ids.
package inference

import "strings"

// CellType classifies the functional role of a cell.
type CellType string

const (
	CellTypeCore        CellType = "core"
	CellTypeSupport     CellType = "support"
	CellTypeAnalytics   CellType = "analytics"
	CellTypeIntegration CellType = "integration"
	CellTypeAutomation  CellType = "automation"
)

// ParseCellType converts a string to a CellType.
// Returns false for values outside the fixed vocabulary.
func ParseCellType(s string) (CellType, bool) {
	switch CellType(s) {
	case CellTypeCore, CellTypeSupport, CellTypeAnalytics, CellTypeIntegration, CellTypeAutomation:
		return CellType(s), true
	default:
		return "", false
	}
}

// Capability is a generic capability flag a cell may expose.
type Capability string

const (
	CapabilityNaturalLanguageProcessing  Capability = "naturalLanguageProcessing"
	CapabilityVoiceRecognition           Capability = "voiceRecognition"
	CapabilityPredictiveAnalytics        Capability = "predictiveAnalytics"
	CapabilityAutomatedWorkflows         Capability = "automatedWorkflows"
	CapabilityIntelligentRecommendations Capability = "intelligentRecommendations"
	CapabilityCulturalAdaptation         Capability = "culturalAdaptation"
)

// AllCapabilities lists the fixed capability vocabulary in canonical order.
var AllCapabilities = []Capability{
	CapabilityNaturalLanguageProcessing,
	CapabilityVoiceRecognition,
	CapabilityPredictiveAnalytics,
	CapabilityAutomatedWorkflows,
	CapabilityIntelligentRecommendations,
	CapabilityCulturalAdaptation,
}

// ParseCapability converts a string to a Capability.
// Returns false for values outside the fixed vocabulary.
func ParseCapability(s string) (Capability, bool) {
	for _, c := range AllCapabilities {
		if Capability(s) == c {
			return c, true
		}
	}
	return "", false
}

// VoiceInterface describes the voice-command surface of a cell.
type VoiceInterface struct {
	Enabled            bool
	SupportedLanguages []string
	SampleCommands     []string
	CulturallyAdapted  bool
}

// cellTypeRules is an ordered priority list: the first keyword group that
// matches the id decides the type. Order matters - an id like
// "analytics_management" is core, not analytics.
var cellTypeRules = []struct {
	cellType CellType
	keywords []string
}{
	{CellTypeCore, []string{"management", "tracking", "control", "scheduling"}},
	{CellTypeSupport, []string{"communication", "portal", "interface"}},
	{CellTypeAnalytics, []string{"analytics", "reporting", "dashboard", "kpi"}},
	{CellTypeIntegration, []string{"integration", "api", "sync", "connector"}},
	{CellTypeAutomation, []string{"automation", "ai", "workflow", "smart"}},
}

// capabilityRules grant capability flags per matching keyword group.
// Multiple groups may fire for a single id; grants are unioned.
var capabilityRules = []struct {
	keywords []string
	grants   []Capability
}{
	{
		keywords: []string{"customer", "client"},
		grants: []Capability{
			CapabilityNaturalLanguageProcessing,
			CapabilityVoiceRecognition,
			CapabilityCulturalAdaptation,
		},
	},
	{
		keywords: []string{"analytics", "reporting"},
		grants: []Capability{
			CapabilityPredictiveAnalytics,
			CapabilityIntelligentRecommendations,
		},
	},
	{
		keywords: []string{"management", "scheduling"},
		grants: []Capability{
			CapabilityAutomatedWorkflows,
			CapabilityIntelligentRecommendations,
		},
	},
}

// voiceKeywords enable the voice interface for customer-facing and
// operator-facing cells.
var voiceKeywords = []string{"customer", "client", "management", "service"}

// culturalKeywords mark customer-facing cells whose voice surface is
// adapted to local language and context.
var culturalKeywords = []string{"customer", "client", "service"}

// supportedVoiceLanguages is the fixed language list attached to every
// voice-enabled cell.
var supportedVoiceLanguages = []string{"en", "sw", "fr", "es", "hi", "ar", "pt", "zh"}

// voiceCommandTemplates maps a command category (chosen by substring match
// on the id) to its sample command set.
var voiceCommandTemplates = []struct {
	keywords []string
	commands []string
}{
	{
		keywords: []string{"inventory", "stock"},
		commands: []string{
			"How many {item} are left in stock?",
			"Add {quantity} {item} to inventory",
			"Which items are running low?",
		},
	},
	{
		keywords: []string{"customer", "client"},
		commands: []string{
			"Find customer {name}",
			"Show purchase history for {name}",
			"Add a follow-up note for {name}",
		},
	},
	{
		keywords: []string{"billing", "payment"},
		commands: []string{
			"Create an invoice for {name}",
			"Show unpaid invoices",
			"Record a payment of {amount}",
		},
	},
}

// ClassifyCellType returns the cell type for an id via the ordered keyword
// rules, defaulting to core when nothing matches.
func ClassifyCellType(cellID string) CellType {
	for _, rule := range cellTypeRules {
		if containsAny(cellID, rule.keywords) {
			return rule.cellType
		}
	}
	return CellTypeCore
}

// InferCapabilities returns the union of capability grants across all
// matching keyword groups, in canonical order and without duplicates.
// An id matching no group has no capabilities.
func InferCapabilities(cellID string) []Capability {
	granted := make(map[Capability]bool)
	for _, rule := range capabilityRules {
		if !containsAny(cellID, rule.keywords) {
			continue
		}
		for _, c := range rule.grants {
			granted[c] = true
		}
	}

	result := make([]Capability, 0, len(granted))
	for _, c := range AllCapabilities {
		if granted[c] {
			result = append(result, c)
		}
	}
	return result
}

// InferVoiceInterface derives the voice-command surface for an id.
// Voice is enabled only for ids matching the voice keyword groups; the
// sample command set is category-specific and may be empty when the id
// belongs to no known command category.
func InferVoiceInterface(cellID string) VoiceInterface {
	if !containsAny(cellID, voiceKeywords) {
		return VoiceInterface{}
	}

	var commands []string
	for _, tmpl := range voiceCommandTemplates {
		if containsAny(cellID, tmpl.keywords) {
			commands = append(commands, tmpl.commands...)
		}
	}

	return VoiceInterface{
		Enabled:            true,
		SupportedLanguages: append([]string(nil), supportedVoiceLanguages...),
		SampleCommands:     commands,
		CulturallyAdapted:  containsAny(cellID, culturalKeywords),
	}
}

// containsAny reports whether id contains any of the keywords as a substring.
func containsAny(id string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(id, kw) {
			return true
		}
	}
	return false
}
