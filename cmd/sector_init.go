package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/organlabs/organon/internal/presentation"
)

var sectorInitCmd = &cobra.Command{
	Use:   "sector:init <sector>",
	Short: "Initialize a composition for a sector",
	Long: `Initialize a composition for a sector and print the resulting snapshot
as JSON: the activated cells and the integrations available to the sector.

Sector ids are case-insensitive.

Examples:
  # Initialize the retail sector
  organon sector:init retail

  # Show only the activated cells
  organon sector:init retail | jq '.active_cells'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		defer eng.close(cmd.Context())

		snapshot, err := eng.session.InitializeForSector(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		formatter := presentation.NewFormatter(os.Stdout)
		return formatter.FormatSnapshot(presentation.FromSnapshot(snapshot))
	},
}

func init() {
	rootCmd.AddCommand(sectorInitCmd)
}
