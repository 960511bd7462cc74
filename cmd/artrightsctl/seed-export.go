package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/artrights/pkg/seed"
)

// seedExportCmd represents the seed export command
var seedExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every record as fixtures",
	Long: `Write every record in the database as a fixtures document that
"artrightsctl seed load" accepts. Password hashes are not exported.

Example:
  artrightsctl seed export > fixtures.yml
  artrightsctl seed export --out fixtures.yml`,
	Run: func(cmd *cobra.Command, args []string) {
		out, _ := cmd.Flags().GetString("out")

		stores, err := openPostgresStores()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to connect: %v\n", err)
			os.Exit(1)
		}

		w := os.Stdout
		if out != "" {
			f, err := os.Create(out)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to create %s: %v\n", out, err)
				os.Exit(1)
			}
			defer func() { _ = f.Close() }()
			w = f
		}

		if err := seed.Export(cmd.Context(), stores, w); err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	seedCmd.AddCommand(seedExportCmd)
	seedExportCmd.Flags().StringP("out", "o", "", "output file (default: stdout)")
}
