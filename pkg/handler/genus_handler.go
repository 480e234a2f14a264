// Handlers for browsing the genus collection.

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yumyai/homoindex/logger"
	homodb "github.com/yumyai/homoindex/pkg/db"
	"github.com/yumyai/homoindex/pkg/model"
	"github.com/yumyai/homoindex/pkg/render"
	"go.uber.org/zap"
)

type GenusListPayload struct {
	Genus []string `json:"genus"`
	Count int      `json:"count"`
}

type GenusInfoPayload struct {
	Genus          string   `json:"genus"`
	NumSpecies     int      `json:"num_species"`
	NumOrthogroups int      `json:"num_orthogroups"`
	Species        []string `json:"species"`
}

// Landing page with the genus listing. Renders fine with nothing
// mounted yet.
func (dbctx *DBContext) MainPage(w http.ResponseWriter, r *http.Request) {

	names, err := dbctx.Genus_DB.ListGenus()
	if err != nil {
		names = nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := render.IndexPageData{Version: dbctx.Version, Genus: names}
	if err := render.RenderIndexPage(w, data); err != nil {
		logger.Error("Failed to render index page", zap.String("error", err.Error()))
	}
}

// List every genus under the data root.
func (dbctx *DBContext) ListGenusHandler(w http.ResponseWriter, r *http.Request) {

	names, err := dbctx.Genus_DB.ListGenus()
	if err != nil {
		if errors.Is(err, homodb.GenusRootNotExists) {
			http.Error(w, "No genus data available", http.StatusNotFound)
			return
		}
		logger.Error("Failed to list genus", zap.String("error", err.Error()))
		http.Error(w, "Failed to list genus", http.StatusInternalServerError)
		return
	}

	payload := GenusListPayload{
		Genus: names,
		Count: len(names),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

// Table totals and species for one genus. The table is read fresh on
// every request.
func (dbctx *DBContext) GenusInfoHandler(w http.ResponseWriter, r *http.Request) {

	genus := r.PathValue("genus")

	entry, err := dbctx.Genus_DB.Resolve(genus)
	if err != nil {
		logger.Debug("Genus lookup failed", zap.String("genus", genus), zap.String("error", err.Error()))
		http.Error(w, "Genus not found: "+genus, http.StatusNotFound)
		return
	}

	table, err := model.LoadOrthogroupTable(entry.TablePath)
	if err != nil {
		logger.Error("Failed to load orthogroup table",
			zap.String("genus", genus),
			zap.String("error", err.Error()))
		http.Error(w, "Failed to load orthogroup table", http.StatusInternalServerError)
		return
	}

	payload := GenusInfoPayload{
		Genus:          genus,
		NumSpecies:     table.NumSpecies(),
		NumOrthogroups: table.NumOrthogroups(),
		Species:        table.Species,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}
