package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/artrights/pkg/config"
)

// seedWatchCmd represents the seed watch command
var seedWatchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Watch a file and reload fixtures when it is modified",
	Long: `Watch a file and reload fixtures when it changes.

To trigger a reload, replace the contents of the watched file with the
path to a fixtures file. Every collection is cleared before the fixtures
are loaded. The path must be visible to the process running
"artrightsctl seed watch".

Example:
  artrightsctl seed watch /run/artrights/seed/load`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := watchFixtures(cmd.Context(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch fixtures: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	seedCmd.AddCommand(seedWatchCmd)
}

func watchFixtures(ctx context.Context, filename string) error {
	stores, err := openPostgresStores()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", filename, err)
	}

	fmt.Printf("Watching %s for fixture changes\n", filename)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			fmt.Printf("[%s] File modified, reloading fixtures...\n", time.Now().Format(time.RFC3339))

			content, err := os.ReadFile(filename)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
				continue
			}
			path := strings.TrimSpace(string(content))
			if path == "" {
				continue
			}

			err = loadFixtures(ctx, stores, path, true)
			dropSharedCache(ctx, config.Get())
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error loading fixtures: %v\n", err)
			} else {
				fmt.Printf("Fixtures loaded successfully from %s\n", path)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}
