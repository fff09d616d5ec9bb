package main

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/love-wall/cliparse"
	"github.com/danielhkuo/love-wall/db"
	"github.com/danielhkuo/love-wall/ledger"
	"github.com/danielhkuo/love-wall/metrics"
	"github.com/danielhkuo/love-wall/router"
)

func main() {
	var err error

	// A .env file is optional; real environment variables still win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err, "type", cfg.DatabaseType)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	if cfg.SeedFile != "" {
		if err := seedEvents(context.Background(), dbConn, cfg.SeedFile); err != nil {
			slog.Error("seeding events failed", "error", err, "file", cfg.SeedFile)
			os.Exit(1)
		}
	}

	// Create router
	handler := router.NewRouter(dbConn, cfg, metrics.New())

	// Create server
	server := http.Server{
		Handler:           handler,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal, then let in-flight requests finish
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Warn("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// seedEvents loads the seed file into an empty event table
func seedEvents(ctx context.Context, conn *sql.DB, path string) error {
	store := ledger.New(conn)

	existing, err := store.ListEvents(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		slog.Info("events already present, skipping seed", "count", len(existing))
		return nil
	}

	inputs, err := db.LoadSeed(path)
	if err != nil {
		return err
	}

	ids, err := store.AddEvents(ctx, inputs)
	if err != nil {
		return err
	}
	slog.Info("seeded events", "count", len(ids))
	return nil
}
