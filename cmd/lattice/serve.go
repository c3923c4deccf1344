package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/latticeui/lattice"
	"github.com/latticeui/lattice/internal/logging"
	httpAdapter "github.com/latticeui/lattice/pkg/adapters/http"
	redisAdapter "github.com/latticeui/lattice/pkg/adapters/redis"
	"github.com/latticeui/lattice/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long:  `Starts the Lattice engine in server mode, exposing resolved render trees as a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		site, _ := cmd.Flags().GetString("site")
		port, _ := cmd.Flags().GetString("port")
		level, _ := cmd.Flags().GetString("log-level")
		redisAddr, _ := cmd.Flags().GetString("redis")
		cacheTTL, _ := cmd.Flags().GetDuration("cache-ttl")

		logger := logging.New(logging.ParseLevel(level))

		opts := []lattice.Option{
			lattice.WithLogger(logger),
			lattice.WithMetrics(observability.New(prometheus.DefaultRegisterer)),
		}
		if redisAddr != "" {
			cache := redisAdapter.New(redisAddr, "", 0, redisAdapter.WithTTL(cacheTTL))
			defer cache.Close()
			opts = append(opts, lattice.WithCache(cache))
		}

		engine, err := lattice.New(site, opts...)
		if err != nil {
			fmt.Printf("Error initializing lattice: %v\n", err)
			os.Exit(1)
		}

		handler := httpAdapter.NewHandler(engine, lattice.Version)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Lattice Server on %s\n", srv.Addr)
			fmt.Printf("Serving site from: %s\n", site)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Lattice Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for the render cache (disabled when empty)")
	serveCmd.Flags().Duration("cache-ttl", 5*time.Minute, "TTL for cached render trees")
}
