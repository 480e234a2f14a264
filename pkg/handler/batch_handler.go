// Handlers for batch gene list lookups.

package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/yumyai/homoindex/logger"
	homodb "github.com/yumyai/homoindex/pkg/db"
	"github.com/yumyai/homoindex/pkg/handler/request"
	"github.com/yumyai/homoindex/pkg/model"
	"go.uber.org/zap"
)

type BatchSubmitPayload struct {
	JobID  string         `json:"job_id"`
	Status BatchJobStatus `json:"status"`
}

// Accept a gene list and run it in the background.
func (dbctx *DBContext) BatchSubmitHandler(w http.ResponseWriter, r *http.Request) {

	var req request.BatchSubmitRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error(err.Error())
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Genus == "" {
		http.Error(w, "Genus cannot be empty", http.StatusBadRequest)
		return
	}
	if len(req.Gene_IDs) == 0 {
		http.Error(w, "Gene list cannot be empty", http.StatusBadRequest)
		return
	}

	entry, err := dbctx.Genus_DB.Resolve(req.Genus)
	if err != nil {
		http.Error(w, "Genus not found: "+req.Genus, http.StatusNotFound)
		return
	}

	job := dbctx.BatchJobs.NewJob(req.Genus, len(req.Gene_IDs))
	logger.Info("Batch job submitted",
		zap.String("job_id", job.ID),
		zap.String("genus", req.Genus),
		zap.Int("genes", len(req.Gene_IDs)))

	go dbctx.runBatchJob(job.ID, entry, req.Gene_IDs)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(BatchSubmitPayload{JobID: job.ID, Status: job.Status})
}

// Report the state of a submitted job.
func (dbctx *DBContext) BatchStatusHandler(w http.ResponseWriter, r *http.Request) {

	job_id := r.PathValue("job_id")

	job, ok := dbctx.BatchJobs.GetJob(job_id)
	if !ok {
		http.Error(w, "Job not found: "+job_id, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job)
}

// runBatchJob processes the gene list one gene at a time, re-reading
// the table per gene like a command line run does.
func (dbctx *DBContext) runBatchJob(jobID string, entry homodb.GenusEntry, gene_ids []string) {

	dbctx.BatchJobs.SetRunning(jobID)

	// The submitting request is long gone by the time genes resolve.
	ctx := context.Background()

	for _, gene_id := range gene_ids {
		table, err := model.LoadOrthogroupTable(entry.TablePath)
		if err != nil {
			logger.Error("Batch job failed",
				zap.String("job_id", jobID),
				zap.String("error", err.Error()))
			dbctx.BatchJobs.FailJob(jobID, err)
			return
		}

		result, _ := model.QueryGene(table, gene_id)
		dbctx.recordLookup(ctx, entry.Genus, gene_id, result)
		dbctx.BatchJobs.Progress(jobID, result, gene_id)
	}

	dbctx.BatchJobs.CompleteJob(jobID)
	logger.Info("Batch job completed", zap.String("job_id", jobID))
}
