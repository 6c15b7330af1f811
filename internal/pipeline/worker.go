package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgallion1/clauseparse/internal/contract"
	"github.com/dgallion1/clauseparse/internal/llm"
	"github.com/dgallion1/clauseparse/internal/parser"
	"github.com/dgallion1/clauseparse/internal/rules"
	"github.com/dgallion1/clauseparse/internal/schema"
	"github.com/dgallion1/clauseparse/internal/store"
)

// Worker processes a single parse job.
type Worker struct {
	engine *rules.Engine
	claude *llm.Client
	db     *store.Store
	log    *slog.Logger

	pdfFallback bool
}

func NewWorker(engine *rules.Engine, claude *llm.Client, db *store.Store, log *slog.Logger, pdfFallback bool) *Worker {
	return &Worker{
		engine:      engine,
		claude:      claude,
		db:          db,
		log:         log,
		pdfFallback: pdfFallback,
	}
}

// Process runs the full parse pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)

	// Phase 1: Parse the source document into pages.
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if pdfp, ok := p.(*parser.PDFParser); ok {
		pdfp.FallbackPdftotext = w.pdfFallback
	}

	pages, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	contentHash := ContentHashHex([]byte(strings.Join(pages, "\f")))
	job.SetIdentity(DocIDFromHash(contentHash), contentHash)

	// Phase 1.5: Dedup check.
	existing, err := w.db.FindByHash(ctx, contentHash)
	if err != nil {
		log.Warn("dedup check failed, proceeding", "error", err)
	} else if existing != "" {
		log.Info("duplicate document, skipping", "existing_doc_id", existing)
		job.SetIdentity(existing, contentHash)
		job.SetStatus(StatusDupSkipped, "dedup")
		return
	}

	// Phase 2: Structure the text into a contract.
	job.SetStatus(StatusStructuring, "structuring")
	doc := w.structure(ctx, job, pages, log)

	// Phase 3: Validate the document, auto-fixing first when needed.
	job.SetStatus(StatusFixing, "fixing")
	if ok, _ := schema.Check(doc); !ok {
		doc = schema.Fix(doc)
		if ok, remaining := schema.Check(doc); !ok {
			job.SetViolations(remaining)
			log.Warn("schema violations remain after fix", "count", len(remaining))
		}
	}

	clauseCount := 0
	for _, s := range doc.Sections {
		clauseCount += len(s.Clauses)
	}
	job.SetCounts(len(pages), len(doc.Sections), clauseCount)
	job.SetTitle(doc.Title)

	// Phase 4: Persist the artifact.
	job.SetStatus(StatusStoring, "storing")
	data, err := json.Marshal(doc)
	if err != nil {
		log.Error("marshal failed", "error", err)
		job.AddError(fmt.Sprintf("marshal: %s", err))
		job.SetStatus(StatusFailed, "storing")
		return
	}

	rec := store.Record{
		DocID:         job.DocID,
		Filename:      job.Filename,
		ContentHash:   job.ContentHash,
		Title:         doc.Title,
		ContractType:  doc.ContractType,
		EffectiveDate: doc.EffectiveDate,
		Engine:        job.Engine,
		Document:      data,
		CreatedAt:     time.Now(),
	}
	if err := w.db.Put(ctx, rec); err != nil {
		log.Error("store failed", "error", err)
		job.AddError(fmt.Sprintf("store: %s", err))
		job.SetStatus(StatusFailed, "storing")
		return
	}

	log.Info("parse complete", "sections", len(doc.Sections), "clauses", clauseCount)
	job.SetStatus(StatusCompleted, "done")
}

// structure runs the selected engine and always yields a valid contract,
// falling back from the LLM to the rule engine and finally to a placeholder.
func (w *Worker) structure(ctx context.Context, job *Job, pages []string, log *slog.Logger) *contract.Contract {
	if !parser.HasText(pages) {
		log.Warn("no extractable text")
		job.AddError("no extractable text")
		return contract.Placeholder()
	}

	if job.Engine == "llm" && w.claude != nil {
		doc, err := w.structureLLM(ctx, pages)
		if err == nil {
			return doc
		}
		log.Warn("llm extraction failed, falling back to rules", "error", err)
		job.AddError(fmt.Sprintf("llm: %s", err))
	}

	return w.engine.Parse(pages)
}

func (w *Worker) structureLLM(ctx context.Context, pages []string) (*contract.Contract, error) {
	fullText := strings.Join(pages, "\n\n")

	var candidate map[string]any
	var lastErr error
	for attempt := range MaxRetries {
		candidate, lastErr = w.claude.ParseContract(ctx, fullText)
		if lastErr == nil || !IsRetryable(lastErr) {
			break
		}
		w.log.Warn("retryable llm error", "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}

	doc, err := schema.FixRaw(candidate)
	if err != nil {
		return nil, fmt.Errorf("candidate repair: %w", err)
	}
	return doc, nil
}
