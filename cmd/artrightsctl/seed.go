package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Manage fixture data",
	Long: `Load, export and reset fixture data in the PostgreSQL database.

Fixture files are YAML documents keyed by collection (users, projects,
artworks, contacts, media, rights_holders, rights_media, tasks, history,
work_statuses and the three category collections). Requires DATABASE_URL.
A Redis query cache is cleared after each write.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'seed' requires a subcommand (load, export, reset, watch)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
