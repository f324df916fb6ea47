package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/organlabs/organon/internal/presentation"
)

var inspectSector string

var cellInspectCmd = &cobra.Command{
	Use:   "cell:inspect <cell>",
	Short: "Show the derived configuration of a cell",
	Long: `Show the derived configuration of a cell as JSON: its type,
capabilities, voice interface, and tissue/organ membership.

Without --sector the cell is inspected in isolation and has no connections.
With --sector the sector is initialized first, so the cell's connections
within that composition are included.

Examples:
  # Inspect a cell's profile
  organon cell:inspect customer_management

  # Inspect it inside the retail composition
  organon cell:inspect customer_management --sector retail

  # Show only the capabilities
  organon cell:inspect analytics | jq '.capabilities'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		defer eng.close(cmd.Context())

		if inspectSector != "" {
			if _, err := eng.session.InitializeForSector(cmd.Context(), inspectSector); err != nil {
				return err
			}
		}

		config := eng.session.Configuration(cmd.Context(), args[0])

		formatter := presentation.NewFormatter(os.Stdout)
		return formatter.FormatCellConfiguration(presentation.FromCellConfiguration(config))
	},
}

func init() {
	cellInspectCmd.Flags().StringVarP(&inspectSector, "sector", "s", "", "Initialize this sector before inspecting")
	rootCmd.AddCommand(cellInspectCmd)
}
