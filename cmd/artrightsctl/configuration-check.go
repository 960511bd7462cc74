package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/artrights/pkg/config"
	"github.com/doodlesbykumbi/artrights/pkg/db"
)

// configurationCheckCmd represents the configuration check command
var configurationCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration",
	Long: `Validate the configuration file and environment.

Fails when an attribute is out of range or when the postgres storage
backend is selected without DATABASE_URL.

Example:
  artrightsctl configuration check`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := checkConfiguration(); err != nil {
			fmt.Fprintf(os.Stderr, "Configuration is invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Configuration is valid.")
	},
}

func init() {
	configurationCmd.AddCommand(configurationCheckCmd)
}

func checkConfiguration() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fmt.Printf("Config file: %s\n", cfg.ConfigFilePath())

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.StorageBackend == config.BackendPostgres && db.URL() == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}
	return nil
}
