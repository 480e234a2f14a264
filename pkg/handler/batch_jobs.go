package handler

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yumyai/homoindex/pkg/model"
)

// BatchJobStatus represents the lifecycle of a batch lookup.
type BatchJobStatus string

const (
	BatchJobQueued    BatchJobStatus = "queued"
	BatchJobRunning   BatchJobStatus = "running"
	BatchJobCompleted BatchJobStatus = "completed"
	BatchJobFailed    BatchJobStatus = "failed"
)

// BatchJob keeps track of one gene list run while it is processed.
type BatchJob struct {
	ID        string               `json:"job_id"`
	Genus     string               `json:"genus"`
	Status    BatchJobStatus       `json:"status"`
	Total     int                  `json:"total"`
	Queried   int                  `json:"queried"`
	Found     int                  `json:"found"`
	Results   []*model.QueryResult `json:"results,omitempty"`
	NotFound  []string             `json:"not_found,omitempty"`
	Error     string               `json:"error,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// BatchJobManager stores batch job states indexed by job ID.
type BatchJobManager struct {
	mu   sync.RWMutex
	jobs map[string]*BatchJob
}

// NewBatchJobManager constructs a job manager with no jobs.
func NewBatchJobManager() *BatchJobManager {
	return &BatchJobManager{
		jobs: make(map[string]*BatchJob),
	}
}

// NewJob registers a queued job for the provided genus and gene count.
func (m *BatchJobManager) NewJob(genus string, total int) *BatchJob {
	job := &BatchJob{
		ID:        uuid.New().String(),
		Genus:     genus,
		Status:    BatchJobQueued,
		Total:     total,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	m.mu.Lock()
	m.jobs[job.ID] = job
	m.mu.Unlock()
	return job
}

// SetRunning marks the job as running.
func (m *BatchJobManager) SetRunning(jobID string) {
	m.updateJob(jobID, func(job *BatchJob) {
		job.Status = BatchJobRunning
	})
}

// Progress records the outcome of one processed gene.
func (m *BatchJobManager) Progress(jobID string, result *model.QueryResult, gene_id string) {
	m.updateJob(jobID, func(job *BatchJob) {
		job.Queried++
		if result != nil {
			job.Found++
			job.Results = append(job.Results, result)
		} else {
			job.NotFound = append(job.NotFound, gene_id)
		}
	})
}

// CompleteJob marks the job complete.
func (m *BatchJobManager) CompleteJob(jobID string) {
	m.updateJob(jobID, func(job *BatchJob) {
		job.Status = BatchJobCompleted
	})
}

// FailJob records a failure and attaches a user-facing error message.
func (m *BatchJobManager) FailJob(jobID string, err error) {
	m.updateJob(jobID, func(job *BatchJob) {
		job.Status = BatchJobFailed
		job.Error = err.Error()
	})
}

// GetJob fetches a snapshot of a job by ID. Copying under the lock
// keeps readers off the runner's back.
func (m *BatchJobManager) GetJob(jobID string) (BatchJob, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	job, ok := m.jobs[jobID]
	if !ok {
		return BatchJob{}, false
	}
	return *job, true
}

func (m *BatchJobManager) updateJob(jobID string, update func(job *BatchJob)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return
	}

	update(job)
	job.UpdatedAt = time.Now()
}
