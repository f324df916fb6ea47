package composition

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// The cell pool mixes tissue members, tissue-less sector cells, and ids that
// appear in no sector at all.
var propCellPool = []string{
	"inventory", "pos", "customer_management", "loyalty_programs", "analytics",
	"patient_records", "appointment_scheduling", "billing",
	"customer_portal", "reporting_dashboard", "field_tracking",
}

func TestSessionProperties(t *testing.T) {
	cat := testCatalog(t)

	rapid.Check(t, func(rt *rapid.T) {
		session := NewSession(cat)
		ctx := context.Background()

		steps := rapid.SliceOfN(rapid.Custom(func(rt *rapid.T) [2]string {
			return [2]string{
				rapid.SampledFrom([]string{"activate", "deactivate"}).Draw(rt, "op"),
				rapid.SampledFrom(propCellPool).Draw(rt, "cell"),
			}
		}), 1, 40).Draw(rt, "steps")

		for _, step := range steps {
			op, cellID := step[0], step[1]
			switch op {
			case "activate":
				_, err := session.ActivateCell(ctx, cellID)
				require.NoError(rt, err)
			case "deactivate":
				session.DeactivateCell(ctx, cellID)
			}

			checkGraphInvariants(rt, session)
		}
	})
}

func TestActivationIdempotenceProperty(t *testing.T) {
	cat := testCatalog(t)

	rapid.Check(t, func(rt *rapid.T) {
		session := NewSession(cat)
		ctx := context.Background()

		warmup := rapid.SliceOfN(rapid.SampledFrom(propCellPool), 0, 8).Draw(rt, "warmup")
		for _, cellID := range warmup {
			_, err := session.ActivateCell(ctx, cellID)
			require.NoError(rt, err)
		}

		cellID := rapid.SampledFrom(propCellPool).Draw(rt, "cell")
		first, err := session.ActivateCell(ctx, cellID)
		require.NoError(rt, err)
		activeAfterFirst := session.ActiveCells()
		countAfterFirst := session.ConnectionCount()

		second, err := session.ActivateCell(ctx, cellID)
		require.NoError(rt, err)

		require.ElementsMatch(rt, first.Connections, second.Connections)
		require.Equal(rt, activeAfterFirst, session.ActiveCells())
		require.Equal(rt, countAfterFirst, session.ConnectionCount())
	})
}

// checkGraphInvariants asserts the structural rules that must hold after
// every mutation: edges only join active cells, every edge has its reverse,
// no self-edges, and no duplicate edges.
func checkGraphInvariants(rt *rapid.T, session *Session) {
	active := make(map[string]bool)
	for _, id := range session.ActiveCells() {
		active[id] = true
	}

	for _, id := range session.ActiveCells() {
		seen := make(map[string]bool)
		for _, edge := range session.Connections(id) {
			require.Equal(rt, id, edge.Source)
			require.NotEqual(rt, id, edge.Target, "self edge on %s", id)
			require.True(rt, active[edge.Target], "edge %s -> %s targets inactive cell", id, edge.Target)
			require.False(rt, seen[edge.Target], "duplicate edge %s -> %s", id, edge.Target)
			seen[edge.Target] = true

			reverse := false
			for _, back := range session.Connections(edge.Target) {
				if back.Target == id {
					require.Equal(rt, edge.Type, back.Type)
					require.Equal(rt, edge.Strength, back.Strength)
					reverse = true
					break
				}
			}
			require.True(rt, reverse, "missing reverse edge %s -> %s", edge.Target, id)
		}
	}
}
