package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/cliparse"
	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/db"
	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/logging"
	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/realtime"
	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/router"
)

func main() {
	var err error

	// Load .env before reading configuration; a missing file is fine
	envErr := godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		slog.Error("logger setup failed", "error", err)
		os.Exit(1)
	}
	if envErr != nil && !os.IsNotExist(envErr) {
		slog.Warn(".env file could not be loaded", "error", envErr)
	}

	// Connect to the database
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	dbConn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	cancel()
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	registry := realtime.NewRegistry()

	// Create server
	server := http.Server{
		Handler: router.NewRouter(dbConn, cfg, registry),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		// Hijacked websockets are not closed by the server
		registry.Close()
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
