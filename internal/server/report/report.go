// Package report renders audit records as XLSX workbooks.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
	"github.com/xuri/excelize/v2"
)

const (
	SheetAudit    = "Audit"
	SheetOutcomes = "Stages"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var outcomeHeadings = []string{
	"Stage", "Outcome", "Items evaluated", "Problems found", "Incomplete items",
	"Failed document", "Error kind", "Message",
}

// AuditWorkbook builds a two-sheet workbook: a key/value summary of the
// audit record and one row per stage outcome.
func AuditWorkbook(rec *models.AuditRecord) (*excelize.File, error) {
	if rec == nil {
		return nil, fmt.Errorf("nil audit record")
	}

	f := excelize.NewFile()
	// NewFile always starts with "Sheet1".
	if err := f.SetSheetName("Sheet1", SheetAudit); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeSummary(f, rec); err != nil {
		_ = f.Close()
		return nil, err
	}

	if _, err := f.NewSheet(SheetOutcomes); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeOutcomes(f, rec.Outcomes); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

// Render returns the workbook bytes for rec.
func Render(rec *models.AuditRecord) ([]byte, error) {
	f, err := AuditWorkbook(rec)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName is the suggested download name for rec's workbook.
func FileName(rec *models.AuditRecord) string {
	return fmt.Sprintf("audit-%s.xlsx", rec.ID)
}

func writeSummary(f *excelize.File, rec *models.AuditRecord) error {
	finished := ""
	if rec.FinishedAt != nil {
		finished = rec.FinishedAt.UTC().Format(time.RFC3339)
	}
	stage := rec.Stage
	if stage == "" {
		stage = "all"
	}

	rows := [][2]any{
		{"Audit", rec.ID},
		{"Dossier", rec.DossierID},
		{"Product", rec.ProductName},
		{"Manufacturer", rec.Manufacturer},
		{"Stage", stage},
		{"Files", rec.FileName},
		{"Status", string(rec.Status)},
		{"Total pages", rec.TotalPages},
		{"Stages with findings", rec.StagesFound},
		{"Problems found", rec.ProblemsFound},
		{"Processing time (ms)", rec.ProcessingTimeMS},
		{"Started", rec.CreatedAt.UTC().Format(time.RFC3339)},
		{"Finished", finished},
	}
	for i, r := range rows {
		if err := setRow(f, SheetAudit, i+1, r[0], r[1]); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetAudit, "A", "A", 24)
}

func writeOutcomes(f *excelize.File, outcomes []models.StageOutcome) error {
	heads := make([]any, len(outcomeHeadings))
	for i, h := range outcomeHeadings {
		heads[i] = h
	}
	if err := setRow(f, SheetOutcomes, 1, heads...); err != nil {
		return err
	}

	for i, o := range outcomes {
		err := setRow(f, SheetOutcomes, i+2,
			o.Stage,
			string(o.Outcome),
			o.ItemsEvaluated,
			o.ProblemsFound,
			strings.Join(o.Incomplete, ", "),
			o.FailedDocumentID,
			o.ErrorKind,
			o.Message,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
