package reconcile

import (
	"sort"
	"sync"

	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
)

// Tally accumulates the counters of one audit run. Verdicts are keyed by
// stage and item and pages by document, so recording the same result or
// document twice changes nothing. A problem recorded for an item is not
// cleared by a later pass in the same run.
type Tally struct {
	mu       sync.Mutex
	verdicts map[string]map[string]models.Verdict
	pages    map[string]int
}

func NewTally() *Tally {
	return &Tally{
		verdicts: make(map[string]map[string]models.Verdict),
		pages:    make(map[string]int),
	}
}

// Record merges the findings of res and reports whether any counter moved.
func (t *Tally) Record(res Result) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	before := t.totalsLocked()
	for _, f := range res.Findings {
		stage := t.verdicts[f.Stage]
		if stage == nil {
			stage = make(map[string]models.Verdict)
			t.verdicts[f.Stage] = stage
		}
		if prev, ok := stage[f.ItemID]; ok && prev != models.VerdictPass && f.Verdict == models.VerdictPass {
			continue
		}
		stage[f.ItemID] = f.Verdict
	}
	return t.totalsLocked() != before
}

// AddPages counts a document's pages once.
func (t *Tally) AddPages(documentID string, pages int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pages[documentID] = pages
}

type Totals struct {
	StagesFound   int
	ProblemsFound int
	TotalPages    int
}

func (t *Tally) Totals() Totals {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalsLocked()
}

// StageProblems returns the problems recorded for one stage.
func (t *Tally) StageProblems(stage string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, v := range t.verdicts[stage] {
		if v != models.VerdictPass {
			n++
		}
	}
	return n
}

// Stages lists stages with at least one verdict.
func (t *Tally) Stages() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, 0, len(t.verdicts))
	for s, v := range t.verdicts {
		if len(v) > 0 {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func (t *Tally) totalsLocked() Totals {
	var tot Totals
	for _, items := range t.verdicts {
		if len(items) > 0 {
			tot.StagesFound++
		}
		for _, v := range items {
			if v != models.VerdictPass {
				tot.ProblemsFound++
			}
		}
	}
	for _, p := range t.pages {
		tot.TotalPages += p
	}
	return tot
}
