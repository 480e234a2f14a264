// Handlers for single-gene orthogroup lookups.

package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/yumyai/homoindex/logger"
	homodb "github.com/yumyai/homoindex/pkg/db"
	"github.com/yumyai/homoindex/pkg/model"
	"github.com/yumyai/homoindex/pkg/render"
	"go.uber.org/zap"
)

type QueryPayload struct {
	Genus          string             `json:"genus"`
	GeneID         string             `json:"gene_id"`
	Found          bool               `json:"found"`
	NumSpecies     int                `json:"num_species"`
	NumOrthogroups int                `json:"num_orthogroups"`
	Result         *model.QueryResult `json:"result,omitempty"`
}

// JSON lookup of one gene in one genus.
func (dbctx *DBContext) GeneQueryHandler(w http.ResponseWriter, r *http.Request) {

	genus := r.PathValue("genus")
	gene_id := r.PathValue("gene_id")

	logger.Debug("Gene lookup", zap.String("genus", genus), zap.String("gene_id", gene_id))

	table, ok := dbctx.loadGenusTable(w, genus)
	if !ok {
		return
	}

	result, found := model.QueryGene(table, gene_id)
	dbctx.recordLookup(r.Context(), genus, gene_id, result)

	payload := QueryPayload{
		Genus:          genus,
		GeneID:         gene_id,
		Found:          found,
		NumSpecies:     table.NumSpecies(),
		NumOrthogroups: table.NumOrthogroups(),
		Result:         result,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

// HTML view of the same lookup.
func (dbctx *DBContext) GenePageHandler(w http.ResponseWriter, r *http.Request) {

	genus := r.PathValue("genus")
	gene_id := r.PathValue("gene_id")

	table, ok := dbctx.loadGenusTable(w, genus)
	if !ok {
		return
	}

	result, _ := model.QueryGene(table, gene_id)
	dbctx.recordLookup(r.Context(), genus, gene_id, result)

	data := render.OrthogroupPageData{
		Genus:          genus,
		GeneID:         gene_id,
		NumSpecies:     table.NumSpecies(),
		NumOrthogroups: table.NumOrthogroups(),
		Result:         result,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.RenderOrthogroupPage(w, data); err != nil {
		logger.Error("Failed to render gene page", zap.String("error", err.Error()))
	}
}

// loadGenusTable resolves the genus and reads its table, writing the
// HTTP error itself when either step fails.
func (dbctx *DBContext) loadGenusTable(w http.ResponseWriter, genus string) (*model.OrthogroupTable, bool) {

	entry, err := dbctx.Genus_DB.Resolve(genus)
	if err != nil {
		http.Error(w, "Genus not found: "+genus, http.StatusNotFound)
		return nil, false
	}

	table, err := model.LoadOrthogroupTable(entry.TablePath)
	if err != nil {
		logger.Error("Failed to load orthogroup table",
			zap.String("genus", genus),
			zap.String("error", err.Error()))
		http.Error(w, "Failed to load orthogroup table", http.StatusInternalServerError)
		return nil, false
	}
	return table, true
}

// recordLookup tallies the lookup when the stats store is around.
// Stats failures never fail the request.
func (dbctx *DBContext) recordLookup(ctx context.Context, genus, gene_id string, result *model.QueryResult) {

	if dbctx.Stats_DB == nil {
		return
	}

	outcome := homodb.OutcomeNotFound
	orthogroup_id := ""
	if result != nil {
		outcome = homodb.OutcomeFound
		orthogroup_id = result.OrthogroupID
	}

	if err := dbctx.Stats_DB.Record(ctx, genus, gene_id, outcome, orthogroup_id); err != nil {
		logger.Warn("Failed to record lookup", zap.String("error", err.Error()))
	}
}
