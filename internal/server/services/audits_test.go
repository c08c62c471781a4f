package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestListAudits(t *testing.T) {
	rm := newFakeRepoManager()
	rm.audits.byID["a1"] = &models.AuditRecord{ID: "a1", DossierID: "d1"}
	rm.audits.byID["a2"] = &models.AuditRecord{ID: "a2", DossierID: "d2"}

	recs, err := NewAuditService(nil, rm).ListAudits(context.Background(), "d1")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "a1", recs[0].ID)
}

func TestExportAudit(t *testing.T) {
	rm := newFakeRepoManager()
	rm.audits.byID["a1"] = &models.AuditRecord{
		ID: "a1", DossierID: "d1", Status: models.AuditFailed,
		Outcomes: []models.StageOutcome{{Stage: "legal", Outcome: models.OutcomeFailed, ErrorKind: "Timeout"}},
	}
	svc := NewAuditService(nil, rm)

	name, data, err := svc.ExportAudit(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "audit-a1.xlsx", name)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue(report.SheetOutcomes, "G2")
	require.NoError(t, err)
	assert.Equal(t, "Timeout", v)

	_, _, err = svc.ExportAudit(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
