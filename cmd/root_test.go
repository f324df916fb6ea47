package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organlabs/organon/internal/composition"
	"github.com/organlabs/organon/internal/pubsub"
)

func TestSubcommandsAreRegistered(t *testing.T) {
	want := []string{"sector:list", "sector:init", "cell:inspect", "status"}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range want {
		assert.True(t, registered[name], "missing subcommand %s", name)
	}
}

func TestSetVersion(t *testing.T) {
	defer SetVersion("dev")

	SetVersion("1.2.3 (commit: abc, built: now)")
	assert.Equal(t, "1.2.3 (commit: abc, built: now)", rootCmd.Version)
}

func TestStatusFlags(t *testing.T) {
	flags := statusCmd.Flags()

	for _, name := range []string{"sector", "activate", "deactivate", "watch"} {
		require.NotNil(t, flags.Lookup(name), "missing flag --%s", name)
	}
}

func TestFormatSessionEvent(t *testing.T) {
	activated := pubsub.Event[composition.Event]{
		Type:    pubsub.ActivatedEvent,
		Payload: composition.Event{SectorID: "retail", CellID: "billing"},
	}
	assert.Equal(t, "activated cell=billing", formatSessionEvent(activated))

	initialized := pubsub.Event[composition.Event]{
		Type:    pubsub.InitializedEvent,
		Payload: composition.Event{SectorID: "retail"},
	}
	assert.Equal(t, "initialized sector=retail", formatSessionEvent(initialized))
}
