package composition

import (
	"sort"
	"strings"
)

// crossTissueAffinities lists substring pairs that attract medium-strength
// edges between active cells of different tissues. The table is declared
// one-directional and symmetrized at init: affinity is an undirected
// relation, so customer_management attracting billing also makes billing
// attract customer_management.
var crossTissueAffinities = map[string][]string{
	"customer_management": {"billing", "analytics", "communication"},
	"inventory":           {"pos", "supplier", "analytics"},
	"billing":             {"payment", "account", "insurance"},
	"scheduling":          {"notification", "calendar", "portal"},
	"analytics":           {"reporting", "dashboard"},
	"tracking":            {"analytics", "integration"},
}

var affinityTable = symmetrize(crossTissueAffinities)

// symmetrize returns the undirected closure of the declared table with
// deterministic, deduplicated entries.
func symmetrize(declared map[string][]string) map[string][]string {
	closure := make(map[string]map[string]bool, len(declared))
	link := func(a, b string) {
		if closure[a] == nil {
			closure[a] = make(map[string]bool)
		}
		closure[a][b] = true
	}

	for key, affines := range declared {
		for _, affine := range affines {
			link(key, affine)
			link(affine, key)
		}
	}

	table := make(map[string][]string, len(closure))
	for key, affines := range closure {
		sorted := make([]string, 0, len(affines))
		for affine := range affines {
			sorted = append(sorted, affine)
		}
		sort.Strings(sorted)
		table[key] = sorted
	}
	return table
}

// hasAffinity reports whether two cell ids match some affinity pair by
// substring containment. The symmetrized table makes the check commutative.
func hasAffinity(cellID, otherID string) bool {
	for key, affines := range affinityTable {
		if !strings.Contains(cellID, key) {
			continue
		}
		for _, affine := range affines {
			if strings.Contains(otherID, affine) {
				return true
			}
		}
	}
	return false
}
