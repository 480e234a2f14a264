// Handler for the lookup stats endpoint.

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/yumyai/homoindex/logger"
	homodb "github.com/yumyai/homoindex/pkg/db"
	"github.com/yumyai/homoindex/pkg/handler/request"
	"go.uber.org/zap"
)

const defaultStatsLimit = 50

type StatsPayload struct {
	TotalLookups int64                `json:"total_lookups"`
	Count        int                  `json:"count"`
	Order        string               `json:"order"`
	Lookups      []*homodb.LookupStat `json:"lookups"`
}

// Most-queried genes, ordered by hits or recency.
func (dbctx *DBContext) StatsHandler(w http.ResponseWriter, r *http.Request) {

	if dbctx.Stats_DB == nil {
		http.Error(w, "Lookup stats not available", http.StatusServiceUnavailable)
		return
	}

	limit := parsePositiveIntFallback(r.URL.Query().Get("limit"), defaultStatsLimit)
	order := request.NewStatsOrder(r.URL.Query().Get("order"))

	stats, err := dbctx.Stats_DB.Top(r.Context(), order, limit)
	if err != nil {
		logger.Error("Failed to query lookup stats", zap.String("error", err.Error()))
		http.Error(w, "Failed to query lookup stats", http.StatusInternalServerError)
		return
	}

	total, err := dbctx.Stats_DB.CountLookups(r.Context())
	if err != nil {
		logger.Error("Failed to count lookups", zap.String("error", err.Error()))
		http.Error(w, "Failed to count lookups", http.StatusInternalServerError)
		return
	}

	payload := StatsPayload{
		TotalLookups: total,
		Count:        len(stats),
		Order:        order.String(),
		Lookups:      stats,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

// Fallback on anything that is not a positive integer.
func parsePositiveIntFallback(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 1 {
		return fallback
	}
	return val
}
