package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/organlabs/organon/internal/presentation"
)

var sectorListCmd = &cobra.Command{
	Use:   "sector:list",
	Short: "List all sectors in the catalog",
	Long: `List all sectors in the catalog as JSON, including their cell rosters.

Examples:
  # List all sectors
  organon sector:list

  # List sectors from an external catalog
  organon sector:list --catalog ./catalog.yaml

  # Parse specific fields with jq
  organon sector:list | jq '.[].id'
  organon sector:list | jq '.[] | select(.id == "retail") | .cell_ids'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		defer eng.close(cmd.Context())

		formatter := presentation.NewFormatter(os.Stdout)
		return formatter.FormatSectors(presentation.FromSectors(eng.catalogs.Catalog().Sectors()))
	},
}

func init() {
	rootCmd.AddCommand(sectorListCmd)
}
