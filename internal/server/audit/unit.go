package audit

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/carlosftapiap/arcsapp-sub001/internal/server/audit/errs"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/extract"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/prompt"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/reconcile"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// Phase is the state of one audit unit.
type Phase string

const (
	PhaseQueued      Phase = "queued"
	PhaseExtracting  Phase = "extracting"
	PhaseComposing   Phase = "composing"
	PhaseInvoking    Phase = "invoking_model"
	PhaseReconciling Phase = "reconciling"
	PhaseCompleted   Phase = "completed"
	PhaseFailed      Phase = "failed"
)

type unitState int

const (
	unitCompleted unitState = iota
	unitFailed
	unitCancelled
	unitSkipped
)

type unitResult struct {
	state      unitState
	phase      Phase
	documentID string
	err        error
	evaluated  int
	incomplete []string
}

func (e *Engine) runStage(ctx context.Context, r *run, sp stagePlan) models.StageOutcome {
	out := models.StageOutcome{Stage: sp.stage.Code}

	switch {
	case len(sp.docs) == 0:
		out.Outcome = models.OutcomeSkippedNoDocuments
		return out
	case ctx.Err() != nil:
		r.markCancelled()
		out.Outcome = models.OutcomeCancelled
		return out
	case e.pastCeiling(r):
		out.Outcome = models.OutcomeSkippedTimeout
		out.ErrorKind = string(errs.Timeout)
		out.Message = "run ceiling reached before the stage started"
		return out
	}

	ctx, span := e.tracer.Start(ctx, "audit.stage", trace.WithAttributes(
		attribute.String("audit.stage", sp.stage.Code),
		attribute.Bool("audit.multi_file", sp.multi),
		attribute.Int("audit.documents", len(sp.docs)),
	))
	defer span.End()

	units := sp.units()
	results := make([]unitResult, len(units))
	if sp.multi {
		results[0] = e.runUnit(ctx, r, sp, units[0])
	} else {
		g := new(errgroup.Group)
		g.SetLimit(e.cfg.Concurrency)
		for i, u := range units {
			i, u := i, u
			g.Go(func() error {
				results[i] = e.runUnit(ctx, r, sp, u)
				return nil
			})
		}
		_ = g.Wait()
	}

	out = aggregate(out, results)
	out.ProblemsFound = r.tally.StageProblems(sp.stage.Code)
	if out.Outcome == models.OutcomeCancelled {
		r.markCancelled()
	}
	if out.ErrorKind != "" {
		span.SetStatus(codes.Error, out.Message)
	}
	span.SetAttributes(attribute.String("audit.outcome", string(out.Outcome)))
	return out
}

func (e *Engine) pastCeiling(r *run) bool {
	return !r.deadline.IsZero() && e.now().After(r.deadline)
}

// aggregate folds unit results into a stage outcome. The first failure in
// unit order is the one reported.
func aggregate(out models.StageOutcome, results []unitResult) models.StageOutcome {
	var ok, failed, cancelled, skipped int
	var first *unitResult
	incomplete := make(map[string]bool)

	for i := range results {
		res := &results[i]
		switch res.state {
		case unitCompleted:
			ok++
		case unitFailed:
			failed++
			if first == nil {
				first = res
			}
		case unitCancelled:
			cancelled++
		case unitSkipped:
			skipped++
		}
		out.ItemsEvaluated += res.evaluated
		for _, id := range res.incomplete {
			incomplete[id] = true
		}
	}
	for id := range incomplete {
		out.Incomplete = append(out.Incomplete, id)
	}
	sort.Strings(out.Incomplete)

	n := len(results)
	switch {
	case ok == n:
		out.Outcome = models.OutcomeCompleted
	case ok == 0 && failed > 0:
		out.Outcome = models.OutcomeFailed
	case ok == 0 && cancelled > 0:
		out.Outcome = models.OutcomeCancelled
	case ok == 0:
		out.Outcome = models.OutcomeSkippedTimeout
	default:
		out.Outcome = models.OutcomePartialFailure
	}

	switch {
	case first != nil:
		out.FailedDocumentID = first.documentID
		out.ErrorKind = errorKind(first.err)
		out.Message = fmt.Sprintf("%s: %v", first.phase, first.err)
	case skipped > 0:
		out.ErrorKind = string(errs.Timeout)
		out.Message = fmt.Sprintf("%d of %d units skipped at run ceiling", skipped, n)
	case cancelled > 0 && ok > 0:
		out.Message = fmt.Sprintf("%d of %d units cancelled", cancelled, n)
	}
	return out
}

func errorKind(err error) string {
	if k := errs.KindOf(err); k != "" {
		return string(k)
	}
	return "StorageError"
}

func (e *Engine) runUnit(ctx context.Context, r *run, sp stagePlan, u unit) (res unitResult) {
	res.phase = PhaseQueued
	if ctx.Err() != nil {
		res.state = unitCancelled
		return res
	}
	if e.pastCeiling(r) {
		res.state = unitSkipped
		return res
	}

	ctx, span := e.tracer.Start(ctx, "audit.unit", trace.WithAttributes(
		attribute.String("audit.stage", sp.stage.Code),
		attribute.Int("audit.documents", len(u.docs)),
	))
	defer span.End()
	log := r.log.With("stage", sp.stage.Code)

	fail := func(docID string, err error) unitResult {
		if ctx.Err() != nil && errors.Is(err, context.Canceled) {
			res.state = unitCancelled
			return res
		}
		span.RecordError(err)
		log.Warn(ctx, "audit unit failed", "phase", res.phase, "document_id", docID, "error", err)
		res.state = unitFailed
		res.documentID = docID
		res.err = err
		return res
	}

	res.phase = PhaseExtracting
	files := make([]prompt.File, 0, len(u.docs))
	for _, doc := range u.docs {
		f, err := e.extractDocument(ctx, doc)
		if err != nil {
			return fail(doc.ID, err)
		}
		files = append(files, f)
	}

	res.phase = PhaseComposing
	dossier := r.snap.Dossier
	bundle, err := prompt.Compose(sp.stage, files, prompt.DossierContext{
		DossierID:    dossier.ID,
		ProductName:  dossier.ProductName,
		Manufacturer: dossier.Manufacturer,
		ProductType:  dossier.ProductType,
		Items:        u.items,
		MultiFile:    sp.multi,
	})
	if err != nil {
		return fail("", err)
	}

	res.phase = PhaseInvoking
	raw, err := e.model.Invoke(ctx, bundle, e.cfg.Invoke)
	if err != nil {
		return fail("", err)
	}

	// Model output in hand is reconciled even if the run is cancelled now.
	res.phase = PhaseReconciling
	rctx := context.WithoutCancel(ctx)
	result, err := e.reconcileUnit(rctx, r, sp.stage.Code, raw, bundle.ItemIDs)
	if err != nil {
		return fail("", err)
	}

	docIDs := make([]string, 0, len(u.docs))
	for _, d := range u.docs {
		docIDs = append(docIDs, d.ID)
	}
	for i := range result.Findings {
		result.Findings[i].DocumentIDs = docIDs
	}
	r.tally.Record(result)
	for _, f := range files {
		r.tally.AddPages(f.DocumentID, f.Pages)
	}
	e.progress(rctx, r)

	log.Debug(ctx, "audit unit reconciled", "prompt_hash", bundle.Hash, "summary", result.Summary())
	res.phase = PhaseCompleted
	res.state = unitCompleted
	res.evaluated = len(result.Findings)
	res.incomplete = result.Incomplete
	return res
}

func (e *Engine) extractDocument(ctx context.Context, doc *models.Document) (prompt.File, error) {
	body, err := e.storage.Fetch(ctx, doc.StorageKey)
	if err != nil {
		if errs.KindOf(err) != "" {
			return prompt.File{}, errs.WithDocument(err, doc.ID)
		}
		return prompt.File{}, fmt.Errorf("fetch document %s: %w", doc.ID, err)
	}
	ex, err := e.extractor.Extract(ctx, extract.Input{
		DocumentID: doc.ID,
		FileName:   doc.FileName,
		MimeType:   doc.MimeType,
	}, body)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return prompt.File{}, err
		}
		return prompt.File{}, errs.WithDocument(err, doc.ID)
	}
	return prompt.File{
		DocumentID: doc.ID,
		FileName:   doc.FileName,
		ItemID:     doc.DossierItemID,
		Text:       ex.Text,
		Pages:      ex.PageCount,
	}, nil
}

// reconcileUnit applies the unit's verdicts under the per-dossier lock.
// Nothing is written when reconciliation fails.
func (e *Engine) reconcileUnit(ctx context.Context, r *run, stage, raw string, scope []string) (reconcile.Result, error) {
	release, err := e.locker.Lock(ctx, r.rec.DossierID)
	if err != nil {
		return reconcile.Result{}, err
	}
	defer func() {
		if err := release(ctx); err != nil {
			r.log.Warn(ctx, "dossier lock not released", "error", err)
		}
	}()

	var result reconcile.Result
	err = e.store.ApplyStage(ctx, r.rec.DossierID, func(current map[string]models.ItemStatus) ([]reconcile.Transition, error) {
		res, err := reconcile.Reconcile(stage, raw, scope, current)
		if err != nil {
			return nil, err
		}
		result = res
		return res.Transitions, nil
	})
	return result, err
}

// progress stores the running counters so a reader sees reconciled stages
// before the run ends.
func (e *Engine) progress(ctx context.Context, r *run) {
	totals := r.tally.Totals()
	r.mu.Lock()
	r.rec.StagesFound = totals.StagesFound
	r.rec.ProblemsFound = totals.ProblemsFound
	r.rec.TotalPages = totals.TotalPages
	snapshot := *r.rec
	r.mu.Unlock()

	if err := e.store.UpdateProgress(ctx, &snapshot); err != nil {
		r.log.Warn(ctx, "audit progress not stored", "error", err)
	}
}
