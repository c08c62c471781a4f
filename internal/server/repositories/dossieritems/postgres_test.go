package dossieritems

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

const copyQ = `(?s)INSERT INTO dossier_items \(dossier_id, checklist_item_id\)\s+SELECT \$1, id FROM checklist_items WHERE template_id = \$2`

func TestCreateFromTemplate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(copyQ).WithArgs("d1", "t1").WillReturnResult(sqlmock.NewResult(0, 12))

	n, err := repo.CreateFromTemplate(context.Background(), "d1", "t1")
	require.NoError(t, err)
	assert.EqualValues(t, 12, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFromTemplate_Duplicate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(copyQ).WithArgs("d1", "t1").WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.CreateFromTemplate(context.Background(), "d1", "t1")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestListByDossier(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	cols := []string{"id", "dossier_id", "checklist_item_id", "status", "observation",
		"code", "title", "description", "stage", "multi_file", "sort_order"}
	mock.ExpectQuery(`(?s)FROM dossier_items di\s+JOIN checklist_items ci ON ci.id = di.checklist_item_id\s+WHERE di.dossier_id = \$1`).
		WithArgs("d1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("i1", "d1", "c1", "uploaded", "", "A.1", "GMP", "", "legal", false, 1).
			AddRow("i2", "d1", "c2", "observed", "expired", "B.1", "Label", "", "quality", true, 1))

	got, err := repo.ListByDossier(context.Background(), "d1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.ItemUploaded, got[0].Status)
	assert.Equal(t, "expired", got[1].Observation)
	assert.True(t, got[1].MultiFile)
}

func TestLockStatuses(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, status FROM dossier_items WHERE dossier_id = \$1 FOR UPDATE`).
		WithArgs("d1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
			AddRow("i1", "uploaded").
			AddRow("i2", "pending"))

	got, err := repo.LockStatuses(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, map[string]models.ItemStatus{"i1": models.ItemUploaded, "i2": models.ItemPending}, got)
}

func TestUpdateStatus(t *testing.T) {
	q := `UPDATE dossier_items SET status = \$1, observation = \$2, updated_at = now\(\) WHERE id = \$3`

	t.Run("ok", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()
		mock.ExpectExec(q).WithArgs(models.ItemObserved, "label mismatch", "i1").WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.UpdateStatus(context.Background(), "i1", models.ItemObserved, "label mismatch"))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()
		mock.ExpectExec(q).WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, repo.UpdateStatus(context.Background(), "i9", models.ItemApproved, ""), common.ErrorNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()
		mock.ExpectExec(q).WillReturnError(errors.New("boom"))
		assert.Error(t, repo.UpdateStatus(context.Background(), "i1", models.ItemApproved, ""))
	})
}

func TestMarkUploaded(t *testing.T) {
	q := `UPDATE dossier_items SET status = 'uploaded', updated_at = now\(\) WHERE id = \$1 AND status = 'pending'`

	repo, mock, db := newRepoWithMock(t)
	defer db.Close()
	mock.ExpectExec(q).WithArgs("i1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("i1").WillReturnResult(sqlmock.NewResult(0, 0))

	moved, err := repo.MarkUploaded(context.Background(), "i1")
	require.NoError(t, err)
	assert.True(t, moved)

	moved, err = repo.MarkUploaded(context.Background(), "i1")
	require.NoError(t, err)
	assert.False(t, moved)
}

func TestAllApproved(t *testing.T) {
	q := `(?s)SELECT count\(\*\), count\(\*\) FILTER \(WHERE status <> 'approved'\)\s+FROM dossier_items WHERE dossier_id = \$1`

	cases := []struct {
		name        string
		total, open int
		want        bool
	}{
		{"all approved", 3, 0, true},
		{"one open", 3, 1, false},
		{"no items", 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()
			mock.ExpectQuery(q).WithArgs("d1").
				WillReturnRows(sqlmock.NewRows([]string{"total", "open"}).AddRow(tc.total, tc.open))
			got, err := repo.AllApproved(context.Background(), "d1")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
