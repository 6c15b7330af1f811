package pipeline

import (
	"sync"
	"time"
)

// JobStatus represents the state of a parse job.
type JobStatus string

const (
	StatusQueued      JobStatus = "queued"
	StatusParsing     JobStatus = "parsing"
	StatusStructuring JobStatus = "structuring"
	StatusFixing      JobStatus = "fixing"
	StatusStoring     JobStatus = "storing"
	StatusCompleted   JobStatus = "completed"
	StatusFailed      JobStatus = "failed"
	StatusDupSkipped  JobStatus = "duplicate_skipped"
)

// Job tracks the state of a single contract parse.
type Job struct {
	mu sync.Mutex

	ID    string `json:"job_id"`
	DocID string `json:"doc_id"`

	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Filename string    `json:"filename"`
	Engine   string    `json:"engine"`
	Title    string    `json:"title"`

	Progress Progress `json:"progress"`

	ContentHash string    `json:"content_hash,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData []byte
	errors   []string
}

// Progress tracks processing progress.
type Progress struct {
	Pages      int      `json:"pages"`
	Sections   int      `json:"sections"`
	Clauses    int      `json:"clauses"`
	Violations []string `json:"violations"`
	Errors     []string `json:"errors"`
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// SetCounts records page, section and clause counts.
func (j *Job) SetCounts(pages, sections, clauses int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.Pages = pages
	j.Progress.Sections = sections
	j.Progress.Clauses = clauses
	j.UpdatedAt = time.Now()
}

// SetViolations records schema violations found after auto-fix.
func (j *Job) SetViolations(vs []string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.Violations = vs
	j.UpdatedAt = time.Now()
}

// SetIdentity records the content hash and the document ID derived from it.
// Status polls snapshot these fields concurrently with processing.
func (j *Job) SetIdentity(docID, contentHash string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.DocID = docID
	j.ContentHash = contentHash
	j.UpdatedAt = time.Now()
}

// SetTitle records the extracted contract title.
func (j *Job) SetTitle(title string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Title = title
	j.UpdatedAt = time.Now()
}

// SetFileData sets the raw file bytes for processing.
func (j *Job) SetFileData(data []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = data
}

// FileData returns the raw file bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID          string    `json:"job_id"`
	DocID       string    `json:"doc_id"`
	Status      JobStatus `json:"status"`
	Phase       string    `json:"phase"`
	Filename    string    `json:"filename"`
	Engine      string    `json:"engine"`
	Title       string    `json:"title"`
	ContentHash string    `json:"content_hash"`
	Progress    Progress  `json:"progress"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	vs := j.Progress.Violations
	if vs == nil {
		vs = []string{}
	}
	return JobSnapshot{
		ID:          j.ID,
		DocID:       j.DocID,
		Status:      j.Status,
		Phase:       j.Phase,
		Filename:    j.Filename,
		Engine:      j.Engine,
		Title:       j.Title,
		ContentHash: j.ContentHash,
		Progress: Progress{
			Pages:      j.Progress.Pages,
			Sections:   j.Progress.Sections,
			Clauses:    j.Progress.Clauses,
			Violations: vs,
			Errors:     errs,
		},
	}
}
