// Package audit runs the AI audit of a dossier: documents are fetched and
// extracted, a prompt is composed per stage unit, the model is invoked and
// its verdicts are reconciled into checklist item statuses. Every run is
// recorded as an append-only audit record.
package audit

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	"github.com/carlosftapiap/arcsapp-sub001/internal/logging"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/extract"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/llm"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/locks"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/notify"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/reconcile"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/stages"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Fetcher reads document bodies from object storage.
type Fetcher interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

type Config struct {
	// Concurrency caps parallel units of a single-file stage.
	Concurrency int
	Invoke      llm.InvokeConfig
	// RunCeiling is the wall-clock budget of a run. Stages not started
	// within it are skipped. Zero disables it.
	RunCeiling    time.Duration
	NotifyTimeout time.Duration
}

// Deps are the collaborators of an Engine. Store, Storage, Extractor and
// Model are required.
type Deps struct {
	Store     Store
	Storage   Fetcher
	Extractor extract.Extractor
	Model     llm.Client
	Notifier  notify.Notifier
	Locker    locks.Locker
	Catalog   *stages.Catalog
	Registry  *Registry
	Logger    logging.Logger
}

type Engine struct {
	store     Store
	storage   Fetcher
	extractor extract.Extractor
	model     llm.Client
	notifier  notify.Notifier
	locker    locks.Locker
	catalog   *stages.Catalog
	registry  *Registry
	log       logging.Logger
	cfg       Config
	tracer    trace.Tracer
	now       func() time.Time
}

func NewEngine(d Deps, cfg Config) *Engine {
	if d.Logger == nil {
		d.Logger = logging.Nop{}
	}
	if d.Notifier == nil {
		d.Notifier = notify.NewLogNotifier(d.Logger)
	}
	if d.Locker == nil {
		d.Locker = locks.NewLocalLocker()
	}
	if d.Catalog == nil {
		d.Catalog = stages.Default()
	}
	if d.Registry == nil {
		d.Registry = NewRegistry()
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = 30 * time.Second
	}
	return &Engine{
		store:     d.Store,
		storage:   d.Storage,
		extractor: d.Extractor,
		model:     d.Model,
		notifier:  d.Notifier,
		locker:    d.Locker,
		catalog:   d.Catalog,
		registry:  d.Registry,
		log:       d.Logger.With("module", "audit"),
		cfg:       cfg,
		tracer:    otel.Tracer("github.com/carlosftapiap/arcsapp-sub001/internal/server/audit"),
		now:       time.Now,
	}
}

// CancelAudit cancels a running audit by id.
func (e *Engine) CancelAudit(auditID string) error {
	return e.registry.Cancel(auditID)
}

func (e *Engine) Registry() *Registry { return e.registry }

// Running lists the ids of audits executing in this process.
func (e *Engine) Running() []string { return e.registry.Running() }

// run is the mutable state of one RunAudit call.
type run struct {
	mu        sync.Mutex
	rec       *models.AuditRecord
	snap      *Snapshot
	tally     *reconcile.Tally
	deadline  time.Time
	cancelled bool
	log       logging.Logger
}

func (r *run) markCancelled() {
	r.mu.Lock()
	r.cancelled = true
	r.mu.Unlock()
}

func (r *run) wasCancelled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancelled
}

// RunAudit audits every stage of a dossier, or only stage when it is not
// empty. Stage and unit failures do not fail the call; they are reported in
// the record's outcomes. An error is returned only when the audit could not
// be recorded.
func (e *Engine) RunAudit(ctx context.Context, dossierID, stage string) (*models.AuditRecord, error) {
	start := e.now()

	snap, err := e.store.LoadDossier(ctx, dossierID)
	if err != nil {
		return nil, err
	}
	p, err := e.plan(snap, stage)
	if err != nil {
		return nil, err
	}

	rec := &models.AuditRecord{
		DossierID:    dossierID,
		Stage:        stage,
		ProductName:  snap.Dossier.ProductName,
		Manufacturer: snap.Dossier.Manufacturer,
		FileName:     p.fileNames(),
	}
	if err := e.store.CreateAudit(ctx, rec); err != nil {
		return nil, fmt.Errorf("create audit: %w", err)
	}

	ctx, span := e.tracer.Start(ctx, "audit.run", trace.WithAttributes(
		attribute.String("audit.id", rec.ID),
		attribute.String("dossier.id", dossierID),
		attribute.String("audit.stage", stage),
	))
	defer span.End()

	log := e.log.With("audit_id", rec.ID, "dossier_id", dossierID)
	log.Info(ctx, "audit started", "stages", len(p.stages), "documents", len(snap.Documents))

	if err := e.store.AdvanceDossier(ctx, dossierID); err != nil {
		log.Warn(ctx, "dossier status not advanced", "error", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	e.registry.register(rec.ID, cancel)
	defer e.registry.unregister(rec.ID)

	r := &run{rec: rec, snap: snap, tally: reconcile.NewTally(), log: log}
	if e.cfg.RunCeiling > 0 {
		r.deadline = start.Add(e.cfg.RunCeiling)
	}

	outcomes := make([]models.StageOutcome, 0, len(p.stages))
	for _, sp := range p.stages {
		out := e.runStage(runCtx, r, sp)
		out.AuditID = rec.ID
		outcomes = append(outcomes, out)
		log.Info(ctx, "stage finished", "stage", out.Stage, "outcome", out.Outcome, "problems_found", out.ProblemsFound)
	}

	// The caller may have given up; the record is still finalized.
	fctx := context.WithoutCancel(ctx)

	totals := r.tally.Totals()
	fin := e.now()
	r.mu.Lock()
	rec.Status = overallStatus(outcomes, r.cancelled)
	rec.StagesFound = totals.StagesFound
	rec.ProblemsFound = totals.ProblemsFound
	rec.TotalPages = totals.TotalPages
	rec.ProcessingTimeMS = fin.Sub(start).Milliseconds()
	rec.FinishedAt = &fin
	rec.Outcomes = outcomes
	r.mu.Unlock()

	span.SetAttributes(
		attribute.String("audit.status", string(rec.Status)),
		attribute.Int("audit.problems_found", rec.ProblemsFound),
	)

	if err := e.store.FinalizeAudit(fctx, rec); err != nil {
		span.RecordError(err)
		return rec, fmt.Errorf("finalize audit: %w", err)
	}
	if err := e.store.AdvanceDossier(fctx, dossierID); err != nil {
		log.Warn(ctx, "dossier status not advanced", "error", err)
	}
	log.Info(ctx, "audit finished",
		"status", rec.Status,
		"stages_found", rec.StagesFound,
		"problems_found", rec.ProblemsFound,
		"total_pages", rec.TotalPages,
		"processing_time_ms", rec.ProcessingTimeMS,
	)

	notify.FireAndForget(fctx, e.notifier, notify.EventFromRecord(rec), e.cfg.NotifyTimeout, log)
	return rec, nil
}

// overallStatus maps stage outcomes to the record status. A run is failed
// only when nothing was reconciled and something went wrong; stages without
// documents alone leave it completed.
func overallStatus(outcomes []models.StageOutcome, cancelled bool) models.AuditStatus {
	if cancelled {
		return models.AuditCancelled
	}
	var reconciled, failed bool
	for _, o := range outcomes {
		switch o.Outcome {
		case models.OutcomeCompleted, models.OutcomePartialFailure:
			reconciled = true
		case models.OutcomeFailed, models.OutcomeSkippedTimeout:
			failed = true
		}
	}
	if failed && !reconciled {
		return models.AuditFailed
	}
	return models.AuditCompleted
}

type stagePlan struct {
	stage stages.Stage
	multi bool
	items []*models.DossierItem
	docs  []*models.Document
}

type plan struct {
	stages []stagePlan
}

func (p plan) fileNames() string {
	var names []string
	for _, sp := range p.stages {
		for _, d := range sp.docs {
			names = append(names, d.FileName)
		}
	}
	return strings.Join(names, ",")
}

// plan groups items and their completed documents by stage in catalog
// order. Extra documents are not bound to an item and are not audited.
func (e *Engine) plan(snap *Snapshot, filter string) (plan, error) {
	byStage := make(map[string][]*models.DossierItem)
	for _, it := range snap.Items {
		byStage[it.Stage] = append(byStage[it.Stage], it)
	}
	if filter != "" {
		if _, ok := byStage[filter]; !ok {
			return plan{}, fmt.Errorf("%w: dossier has no stage %q", common.ErrorValidation, filter)
		}
	}

	docsByItem := make(map[string][]*models.Document)
	for _, d := range snap.Documents {
		if d.DossierItemID != "" {
			docsByItem[d.DossierItemID] = append(docsByItem[d.DossierItemID], d)
		}
	}

	codes := make([]string, 0, len(byStage))
	for code := range byStage {
		if filter == "" || code == filter {
			codes = append(codes, code)
		}
	}

	var p plan
	for _, code := range e.catalog.Order(codes) {
		items := append([]*models.DossierItem(nil), byStage[code]...)
		sort.SliceStable(items, func(i, j int) bool { return items[i].SortOrder < items[j].SortOrder })

		st := e.catalog.Stage(code)
		sp := stagePlan{stage: st, multi: stages.IsMultiFileStage(st, items), items: items}
		for _, it := range items {
			sp.docs = append(sp.docs, docsByItem[it.ID]...)
		}
		p.stages = append(p.stages, sp)
	}
	return p, nil
}

type unit struct {
	docs  []*models.Document
	items []*models.DossierItem
}

// units splits a stage: one joint unit for a multi-file stage, otherwise
// one unit per item over all of that item's documents, so every item gets
// exactly one verdict per run.
func (sp stagePlan) units() []unit {
	byID := make(map[string]*models.DossierItem, len(sp.items))
	for _, it := range sp.items {
		byID[it.ID] = it
	}

	if sp.multi {
		u := unit{docs: sp.docs}
		seen := make(map[string]bool)
		for _, d := range sp.docs {
			if !seen[d.DossierItemID] {
				seen[d.DossierItemID] = true
				u.items = append(u.items, byID[d.DossierItemID])
			}
		}
		return []unit{u}
	}

	var order []string
	docs := make(map[string][]*models.Document)
	for _, d := range sp.docs {
		if _, ok := docs[d.DossierItemID]; !ok {
			order = append(order, d.DossierItemID)
		}
		docs[d.DossierItemID] = append(docs[d.DossierItemID], d)
	}

	out := make([]unit, 0, len(order))
	for _, id := range order {
		out = append(out, unit{docs: docs[id], items: []*models.DossierItem{byID[id]}})
	}
	return out
}
