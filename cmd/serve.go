package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/minatoaquaMK2/vibe-kanban/internal/db"
	"github.com/minatoaquaMK2/vibe-kanban/internal/server"
)

const shutdownTimeout = 10 * time.Second

var (
	serveAddr   string
	serveDBPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the persistence service",
	Long: `Run the persistence service that owns the configuration record and the
board data. Client commands talk to it over HTTP; by default they expect it
at ` + "`" + `127.0.0.1:8467` + "`" + `.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8467", "Listen address")
	serveCmd.Flags().StringVar(&serveDBPath, "db", "", "Database path (default ~/.vibe-kanban/db.sqlite)")
}

func runServe(cmd *cobra.Command, args []string) error {
	dbPath := serveDBPath
	if dbPath == "" {
		var err error
		dbPath, err = db.DefaultDBPath()
		if err != nil {
			return err
		}
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close(database)

	srv := server.New(database)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(serveAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	slog.Info("persistence service listening", "addr", serveAddr, "db", dbPath)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-sigCh:
		slog.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
