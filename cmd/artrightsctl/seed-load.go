package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/artrights/pkg/config"
	"github.com/doodlesbykumbi/artrights/pkg/seed"
	"github.com/doodlesbykumbi/artrights/pkg/server/store"
)

// seedLoadCmd represents the seed load command
var seedLoadCmd = &cobra.Command{
	Use:   "load [file]",
	Short: "Load fixtures into the database",
	Long: `Load fixtures from a YAML file, or the bundled demo fixtures when no
file is given. Use "-" to read from stdin.

Records whose id already exists make the load fail. Use --reset to clear
every collection first.

Example:
  artrightsctl seed load
  artrightsctl seed load fixtures.yml --reset`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reset, _ := cmd.Flags().GetBool("reset")
		path := ""
		if len(args) > 0 {
			path = args[0]
		}

		stores, err := openPostgresStores()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to connect: %v\n", err)
			os.Exit(1)
		}
		err = loadFixtures(cmd.Context(), stores, path, reset)
		dropSharedCache(cmd.Context(), config.Get())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load fixtures: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	seedCmd.AddCommand(seedLoadCmd)
	seedLoadCmd.Flags().Bool("reset", false, "delete every record before loading")
}

func readFixtures(path string) (*seed.Fixtures, error) {
	switch path {
	case "":
		return seed.Demo()
	case "-":
		return seed.Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixtures file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return seed.Parse(f)
}

func loadFixtures(ctx context.Context, stores *store.Stores, path string, reset bool) error {
	fixtures, err := readFixtures(path)
	if err != nil {
		return err
	}
	if reset {
		if err := seed.Reset(ctx, stores); err != nil {
			return err
		}
	}
	summary, err := fixtures.Apply(ctx, stores)
	printSummary(os.Stdout, summary)
	return err
}

func printSummary(w io.Writer, summary seed.Summary) {
	names := make([]string, 0, len(summary))
	for name := range summary {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		_, _ = fmt.Fprintf(w, "%-20s %d\n", name, summary[name])
	}
	_, _ = fmt.Fprintf(w, "%-20s %d\n", "total", summary.Total())
}
