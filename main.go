package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dialectmap/okresy/cliparse"
	"github.com/dialectmap/okresy/dataset"
	"github.com/dialectmap/okresy/db"
	"github.com/dialectmap/okresy/ingest"
	"github.com/dialectmap/okresy/middleware"
	"github.com/dialectmap/okresy/router"
)

func main() {
	var err error

	// Parse configuration
	if err := cliparse.LoadEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(cliparse.NewLogger(os.Stderr, cfg.LogLevel))

	vocab, err := ingest.LoadVocabulary(cfg.VocabularyPath)
	if err != nil {
		slog.Error("vocabulary load failed", "error", err)
		os.Exit(1)
	}

	// Connect to the database when one is configured
	var dbConn *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err = db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
	}

	store := dataset.NewStore(dataset.Sources{
		VotesPath:    cfg.VotesPath,
		RecordsPath:  cfg.RecordsPath,
		DB:           dbConn,
		GeoPath:      cfg.GeoPath,
		Vocabulary:   vocab,
		WordColumn:   cfg.WordColumn,
		RegionColumn: cfg.RegionColumn,
	}, cfg.CacheTTL)

	// A failed first load is served as 503 until POST /admin/reload succeeds
	if _, err := store.Reload(context.Background()); err != nil {
		slog.Warn("starting without data", "error", err)
	}

	mux := router.NewRouter(store, cfg, vocab, dbConn)

	// Create server
	server := http.Server{
		Handler:           middleware.Recover(middleware.CORS(mux, cfg.AllowedOrigins)),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "admin", cfg.HasAdmin())
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}
}
