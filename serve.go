package main

import (
	"database/sql"
	"net/http"
	"os"
	"path"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "modernc.org/sqlite"

	"github.com/yumyai/homoindex/logger"
	homodb "github.com/yumyai/homoindex/pkg/db"
	"github.com/yumyai/homoindex/pkg/handler"
	"github.com/yumyai/homoindex/pkg/middle"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve orthogroup lookups over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default HOMOINDEX_ADDR or 0.0.0.0:8080)")

	return cmd
}

func runServe(addr string) error {

	homoindex_data := os.Getenv("HOMOINDEX_DATA")

	if homoindex_data == "" {
		logger.Warn("No local environment (HOMOINDEX_DATA), using current directory")
		homoindex_data = "."
	}

	if addr == "" {
		addr = os.Getenv("HOMOINDEX_ADDR")
	}
	if addr == "" {
		addr = "0.0.0.0:8080"
	}

	stats_sqlite := path.Join(homoindex_data, "db/lookup_stats.db")

	dbctx := &handler.DBContext{
		Genus_DB:  homodb.NewGenusDB(homoindex_data),
		Stats_DB:  openStatsDB(stats_sqlite),
		BatchJobs: handler.NewBatchJobManager(),
		Version:   VERSION,
	}
	if dbctx.Stats_DB != nil {
		defer dbctx.Stats_DB.Close()
	}

	logger.Info("Start:", zap.String("Version", VERSION))
	logger.Info("Serving genus data from", zap.String("DATA_LOC", homoindex_data))

	mux := NewRouter(dbctx)

	// Apply middleware
	mwLogger := middle.CreateMiddlewareLogger(zapcore.InfoLevel)
	wrapped := middle.RequestIDMiddleware(mwLogger)(middle.LoggingMiddleware(mwLogger)(mux))

	logger.Info("Server starting on", zap.String("addr", addr))
	httpErr := http.ListenAndServe(addr, wrapped)
	if httpErr != nil {
		logger.Error("Error starting server:", zap.String("error message", httpErr.Error()))
		return httpErr
	}
	return nil
}

// openStatsDB opens the lookup tally store. The server still runs
// when the store cannot be opened, it just stops counting.
func openStatsDB(sqlite_path string) *homodb.LookupStatsDB {

	if err := os.MkdirAll(path.Dir(sqlite_path), 0755); err != nil {
		logger.Warn("Cannot create stats db directory", zap.String("error", err.Error()))
		return nil
	}

	raw, err := sql.Open("sqlite", sqlite_path)
	if err != nil {
		logger.Warn("Cannot open lookup stats db", zap.String("error", err.Error()))
		return nil
	}

	stats, err := homodb.NewLookupStatsDB(raw)
	if err != nil {
		raw.Close()
		logger.Warn("Cannot init lookup stats db", zap.String("error", err.Error()))
		return nil
	}

	logger.Info("Lookup stats on", zap.String("DB_LOC", sqlite_path))
	return stats
}

// Move to router.go in the next iteration
func NewRouter(dbctx *handler.DBContext) *http.ServeMux {
	mux := http.NewServeMux()

	// Error route
	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	// Main routes
	mux.HandleFunc("GET /", dbctx.MainPage)
	mux.HandleFunc("GET /genus/{genus}/gene/{gene_id}", dbctx.GenePageHandler)

	// API routes
	mux.HandleFunc("GET /api/v1/health", handler.HealthCheck)
	mux.HandleFunc("GET /api/v1/genus", dbctx.ListGenusHandler)
	mux.HandleFunc("GET /api/v1/genus/{genus}", dbctx.GenusInfoHandler)
	mux.HandleFunc("GET /api/v1/genus/{genus}/gene/{gene_id}", dbctx.GeneQueryHandler)
	mux.HandleFunc("POST /api/v1/batch", dbctx.BatchSubmitHandler)
	mux.HandleFunc("GET /api/v1/batch/{job_id}", dbctx.BatchStatusHandler)
	mux.HandleFunc("GET /api/v1/stats", dbctx.StatsHandler)

	return mux
}
