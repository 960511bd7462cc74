package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/artrights/pkg/config"
	"github.com/doodlesbykumbi/artrights/pkg/logging"
	"github.com/doodlesbykumbi/artrights/pkg/seed"
	"github.com/doodlesbykumbi/artrights/pkg/server"
	"github.com/doodlesbykumbi/artrights/pkg/server/endpoints"
	"github.com/doodlesbykumbi/artrights/pkg/service"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8000
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the artrights application server",
	Long: `Run the artrights application server.

The storage backend is chosen by ARTRIGHTS_STORAGE_BACKEND. The postgres
backend requires DATABASE_URL, and database migrations are run on startup
unless --no-migrate is given.

Use --seed to load the bundled demo fixtures before serving.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}
		logging.InitLogger(cfg.LogLevel)

		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if cfg.StorageBackend == config.BackendPostgres && !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		stores, err := openStores(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to open %s storage: %v\n", cfg.StorageBackend, err)
			os.Exit(1)
		}

		ctx := context.Background()
		cache, closeCache, err := openCache(ctx, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to open query cache: %v\n", err)
			os.Exit(1)
		}
		defer closeCache()

		closeAudit, err := configureAudit(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to configure audit: %v\n", err)
			os.Exit(1)
		}
		defer closeAudit()

		images, err := openImages(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to open object store: %v\n", err)
			os.Exit(1)
		}

		if withSeed, _ := cmd.Flags().GetBool("seed"); withSeed {
			fixtures, err := seed.Demo()
			if err == nil {
				var summary seed.Summary
				summary, err = fixtures.Apply(ctx, stores)
				slog.Info("loaded demo fixtures", "records", summary.Total())
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to load demo fixtures: %v\n", err)
				os.Exit(1)
			}
		}

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(service.New(stores, cache), cfg, images, host, port)

		endpoints.RegisterAll(s)

		go shutdownOnSignal(s)

		log.Printf("Running server at http://%s:%s (storage: %s, cache: %s)...\n",
			host, port, cfg.StorageBackend, cfg.CacheBackend)
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	},
}

func shutdownOnSignal(s *server.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Printf("Shutdown failed: %v\n", err)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
	serverCmd.Flags().Bool("seed", false, "load the demo fixtures before serving")
}
