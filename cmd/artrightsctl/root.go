package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "artrightsctl",
	Short: "Run and administer the artrights server",
	Long: `Run and administer the artrights server.

The server keeps projects, artworks, contacts, media and the rights held
over each artwork, and reconciles rights-holder media selections.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
