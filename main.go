package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/snipelabs/snipe-giveaway/cliparse"
	"github.com/snipelabs/snipe-giveaway/giveaway"
	"github.com/snipelabs/snipe-giveaway/middleware"
	"github.com/snipelabs/snipe-giveaway/router"
	"github.com/snipelabs/snipe-giveaway/store"
)

func main() {
	var err error

	// Load .env if present (deployment sets real env vars)
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the configured storage backend
	st, err := store.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	// Verify connection
	if err := st.Ping(context.Background()); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema and seed the stats row (idempotent)
	if err := st.Init(context.Background()); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "type", cfg.DatabaseType)

	// Create service and router
	svc := giveaway.NewService(st)
	mux := router.NewRouter(svc, st, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
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
