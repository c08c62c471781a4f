package audits

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

var recordCols = []string{"id", "dossier_id", "stage", "product_name", "manufacturer", "file_name", "total_pages",
	"stages_found", "problems_found", "status", "processing_time_ms", "created_at", "finished_at"}

func TestCreate_StartsRunning(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`(?s)INSERT INTO audit_records \(dossier_id, stage, product_name, manufacturer, file_name, status\).*'running'.*RETURNING id, created_at`).
		WithArgs("d1", "", "Amoxil", "Acme", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("a1", now))

	got, err := repo.Create(context.Background(), &models.AuditRecord{DossierID: "d1", ProductName: "Amoxil", Manufacturer: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)
	assert.Equal(t, models.AuditRunning, got.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

const finalizeQ = `(?s)UPDATE audit_records\s+SET status = \$1, file_name = \$2.*WHERE id = \$8 AND status = 'running'`

func TestFinalize(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	done := time.Now().UTC()
	rec := &models.AuditRecord{
		ID: "a1", Status: models.AuditCompleted, FileName: "a.pdf,b.pdf",
		TotalPages: 7, StagesFound: 2, ProblemsFound: 1, ProcessingTimeMS: 1500, FinishedAt: &done,
	}
	mock.ExpectExec(finalizeQ).
		WithArgs(models.AuditCompleted, "a.pdf,b.pdf", 7, 2, 1, int64(1500), &done, "a1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Finalize(context.Background(), rec))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFinalize_AlreadyTerminal(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(finalizeQ).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Finalize(context.Background(), &models.AuditRecord{ID: "a1", Status: models.AuditFailed})
	assert.ErrorIs(t, err, common.ErrAuditAlreadyTerminal)
}

func TestFinalize_RejectsRunning(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	err := repo.Finalize(context.Background(), &models.AuditRecord{ID: "a1", Status: models.AuditRunning})
	assert.ErrorIs(t, err, common.ErrorValidation)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProgress(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)UPDATE audit_records SET total_pages = \$1, stages_found = \$2, problems_found = \$3\s+WHERE id = \$4 AND status = 'running'`).
		WithArgs(4, 1, 0, "a1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateProgress(context.Background(), &models.AuditRecord{ID: "a1", TotalPages: 4, StagesFound: 1}))
}

func TestSaveOutcomes_Upserts(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)INSERT INTO audit_stage_outcomes.*ON CONFLICT \(audit_id, stage\) DO UPDATE SET`
	mock.ExpectExec(q).
		WithArgs("a1", "legal", models.OutcomeCompleted, "", "", "", 2, 0, "i3,i4").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).
		WithArgs("a1", "quality", models.OutcomeFailed, "doc9", "CorruptDocument", "no text", 0, 0, "").
		WillReturnError(errors.New("boom"))

	err := repo.SaveOutcomes(context.Background(), "a1", []models.StageOutcome{
		{Stage: "legal", Outcome: models.OutcomeCompleted, ItemsEvaluated: 2, Incomplete: []string{"i3", "i4"}},
		{Stage: "quality", Outcome: models.OutcomeFailed, FailedDocumentID: "doc9", ErrorKind: "CorruptDocument", Message: "no text"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `save outcome "quality"`)
}

func TestGet_WithOutcomes(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`FROM audit_records WHERE id = \$1`).WithArgs("a1").
		WillReturnRows(sqlmock.NewRows(recordCols).
			AddRow("a1", "d1", "", "Amoxil", "Acme", "a.pdf", 3, 1, 1, "completed", int64(900), now, now))
	mock.ExpectQuery(`FROM audit_stage_outcomes WHERE audit_id = \$1 ORDER BY stage`).WithArgs("a1").
		WillReturnRows(sqlmock.NewRows([]string{"audit_id", "stage", "outcome", "failed_document_id", "error_kind",
			"message", "items_evaluated", "problems_found", "incomplete"}).
			AddRow("a1", "legal", "partial_failure", "", "Timeout", "", 3, 1, "i7"))

	got, err := repo.Get(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, models.AuditCompleted, got.Status)
	require.NotNil(t, got.FinishedAt)
	require.Len(t, got.Outcomes, 1)
	assert.Equal(t, models.OutcomePartialFailure, got.Outcomes[0].Outcome)
	assert.Equal(t, []string{"i7"}, got.Outcomes[0].Incomplete)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM audit_records WHERE id = \$1`).WithArgs("zz").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "zz")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestListByDossier_NewestFirst(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	t1 := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	t0 := t1.Add(-time.Hour)
	mock.ExpectQuery(`(?s)FROM audit_records\s+WHERE dossier_id = \$1\s+ORDER BY created_at DESC, id`).WithArgs("d1").
		WillReturnRows(sqlmock.NewRows(recordCols).
			AddRow("a2", "d1", "", "Amoxil", "", "", 0, 0, 0, "running", int64(0), t1, nil).
			AddRow("a1", "d1", "legal", "Amoxil", "", "a.pdf", 2, 1, 0, "cancelled", int64(30), t0, t0))

	got, err := repo.ListByDossier(context.Background(), "d1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a2", got[0].ID)
	assert.Nil(t, got[0].FinishedAt)
	assert.Equal(t, models.AuditCancelled, got[1].Status)
}
