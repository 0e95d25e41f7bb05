// ===== cmd/dhcpleases/serve.go =====
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"dhcpleases/internal/mac"
	"dhcpleases/internal/monitor"
	"dhcpleases/internal/web"
	"dhcpleases/pkg/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Watch the lease file and serve the query API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Printf("%s: Build %s, Time %s", repoName, sha1ver, buildTime)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// Initialize MAC database
		var macDB *mac.Database
		if cfg.MACDBFile != "" {
			db, err := mac.NewDatabase(cfg.MACDBFile, cfg.MACDBPreload)
			if !utils.CheckWarn(err, "MAC vendor lookup disabled") {
				macDB = db
				defer macDB.Close()
			}
		}

		// Initialize monitor
		mon := monitor.New(cfg)
		if err := mon.Start(); err != nil {
			return utils.WrapError(err, "failed to start monitor")
		}
		defer mon.Stop()

		// Initialize web server
		webServer := web.NewServer(cfg, mon, macDB)
		errCh := make(chan error, 1)
		go func() {
			log.Printf("Starting HTTP server on %s", cfg.HTTPListen)
			if err := webServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return utils.WrapError(err, "HTTP server failed")
		case <-ctx.Done():
		}

		log.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return webServer.Shutdown(shutdownCtx)
	},
}
