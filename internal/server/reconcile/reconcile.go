// Package reconcile turns raw model output into checklist item transitions.
// Output is parsed strictly; a unit either reconciles completely or not at
// all.
package reconcile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/carlosftapiap/arcsapp-sub001/internal/server/audit/errs"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
	"github.com/go-playground/validator/v10"
)

// Output is the only shape the model may answer with.
type Output struct {
	Items []ItemVerdict `json:"items" validate:"required,dive"`
}

type ItemVerdict struct {
	ItemID      string         `json:"item_id" validate:"required"`
	Verdict     models.Verdict `json:"verdict" validate:"required,oneof=pass fail observation"`
	Observation string         `json:"observation" validate:"required_unless=Verdict pass"`
}

type Transition struct {
	ItemID      string
	From        models.ItemStatus
	To          models.ItemStatus
	Observation string
}

type Result struct {
	Stage       string
	Findings    []models.Finding
	Transitions []Transition
	// Incomplete lists in-scope items the model did not evaluate. They keep
	// their status.
	Incomplete    []string
	StagesFound   int
	ProblemsFound int
}

var validate = validator.New()

// Parse decodes raw strictly: unknown fields, trailing data and missing
// required fields are MalformedModelOutput.
func Parse(raw string) (Output, error) {
	var out Output
	dec := json.NewDecoder(strings.NewReader(stripFence(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return Output{}, errs.Wrap(errs.MalformedModelOutput, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Output{}, errs.New(errs.MalformedModelOutput, "trailing data after JSON object")
	}
	if err := validate.Struct(out); err != nil {
		return Output{}, errs.Wrap(errs.MalformedModelOutput, err)
	}
	return out, nil
}

// stripFence removes a ```json fence some models add despite the response
// format.
func stripFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}

// Reconcile validates raw against the items in scope and diffs the verdicts
// against current statuses. pass approves an item; fail and observation
// observe it. An item already in the target status yields no transition,
// so replaying the same output is a no-op.
func Reconcile(stage, raw string, inScope []string, current map[string]models.ItemStatus) (Result, error) {
	out, err := Parse(raw)
	if err != nil {
		return Result{}, err
	}

	scope := make(map[string]bool, len(inScope))
	for _, id := range inScope {
		scope[id] = true
	}

	res := Result{Stage: stage}
	seen := make(map[string]bool, len(out.Items))
	for _, v := range out.Items {
		if !scope[v.ItemID] {
			return Result{}, errs.Errorf(errs.OutOfScopeReference, "item %q was not supplied for stage %s", v.ItemID, stage)
		}
		if seen[v.ItemID] {
			return Result{}, errs.Errorf(errs.MalformedModelOutput, "item %q evaluated twice", v.ItemID)
		}
		seen[v.ItemID] = true

		res.Findings = append(res.Findings, models.Finding{
			Stage:       stage,
			ItemID:      v.ItemID,
			Verdict:     v.Verdict,
			Observation: strings.TrimSpace(v.Observation),
		})
		if v.Verdict != models.VerdictPass {
			res.ProblemsFound++
		}

		from, ok := current[v.ItemID]
		if !ok || !from.Reviewable() {
			continue
		}
		to := TargetStatus(v.Verdict)
		if from == to {
			continue
		}
		res.Transitions = append(res.Transitions, Transition{
			ItemID:      v.ItemID,
			From:        from,
			To:          to,
			Observation: strings.TrimSpace(v.Observation),
		})
	}

	for _, id := range inScope {
		if !seen[id] {
			res.Incomplete = append(res.Incomplete, id)
		}
	}
	sort.Strings(res.Incomplete)

	if len(res.Findings) > 0 {
		res.StagesFound = 1
	}
	return res, nil
}

func TargetStatus(v models.Verdict) models.ItemStatus {
	if v == models.VerdictPass {
		return models.ItemApproved
	}
	return models.ItemObserved
}

// Summary renders a one-line description of r for logs and stage outcomes.
func (r Result) Summary() string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%d evaluated, %d problems, %d transitions", len(r.Findings), r.ProblemsFound, len(r.Transitions))
	if len(r.Incomplete) > 0 {
		fmt.Fprintf(&b, ", incomplete: %s", strings.Join(r.Incomplete, ","))
	}
	return b.String()
}
