package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/artrights/pkg/config"
	"github.com/doodlesbykumbi/artrights/pkg/seed"
)

// seedResetCmd represents the seed reset command
var seedResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every record",
	Long: `Delete every record from every collection. The schema is kept.

Example:
  artrightsctl seed reset --yes`,
	Run: func(cmd *cobra.Command, args []string) {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Fprintln(os.Stderr, "Refusing to delete every record without --yes")
			os.Exit(1)
		}

		stores, err := openPostgresStores()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to connect: %v\n", err)
			os.Exit(1)
		}
		err = seed.Reset(cmd.Context(), stores)
		dropSharedCache(cmd.Context(), config.Get())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Reset failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All records deleted")
	},
}

func init() {
	seedCmd.AddCommand(seedResetCmd)
	seedResetCmd.Flags().Bool("yes", false, "confirm deleting every record")
}
