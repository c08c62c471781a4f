package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	"github.com/carlosftapiap/arcsapp-sub001/internal/dbx"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/repositories/audits"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/repositories/checklists"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/repositories/documents"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/repositories/dossieritems"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/repositories/dossiers"
	"github.com/stretchr/testify/require"
)

// -------- test fakes --------

type fakeChecklists struct {
	checklists.Repository
	tmpl *models.ChecklistTemplate
	err  error
}

func (f *fakeChecklists) ActiveTemplate(ctx context.Context, pt models.ProductType) (*models.ChecklistTemplate, error) {
	return f.tmpl, f.err
}

type fakeDossiers struct {
	dossiers.Repository
	byID    map[string]*models.Dossier
	created []*models.Dossier
	moves   [][2]models.DossierStatus
	ptErr   error
}

func (f *fakeDossiers) Create(ctx context.Context, d *models.Dossier) (*models.Dossier, error) {
	d.ID = "d-new"
	f.created = append(f.created, d)
	return d, nil
}

func (f *fakeDossiers) Get(ctx context.Context, id string) (*models.Dossier, error) {
	d, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return d, nil
}

func (f *fakeDossiers) UpdateStatus(ctx context.Context, id string, from, to models.DossierStatus) error {
	f.moves = append(f.moves, [2]models.DossierStatus{from, to})
	return nil
}

func (f *fakeDossiers) UpdateProductType(ctx context.Context, id string, pt models.ProductType) error {
	return f.ptErr
}

type fakeItems struct {
	dossieritems.Repository
	copied   int64
	copyErr  error
	items    []*models.DossierItem
	uploaded []string
}

func (f *fakeItems) CreateFromTemplate(ctx context.Context, dossierID, templateID string) (int64, error) {
	return f.copied, f.copyErr
}

func (f *fakeItems) ListByDossier(ctx context.Context, dossierID string) ([]*models.DossierItem, error) {
	return f.items, nil
}

func (f *fakeItems) MarkUploaded(ctx context.Context, id string) (bool, error) {
	f.uploaded = append(f.uploaded, id)
	return true, nil
}

type fakeDocuments struct {
	documents.Repository
	byID      map[string]*models.Document
	created   []*models.Document
	completed map[string]int64
}

func (f *fakeDocuments) Create(ctx context.Context, d *models.Document) (*models.Document, error) {
	d.ID = "doc-new"
	f.created = append(f.created, d)
	return d, nil
}

func (f *fakeDocuments) Get(ctx context.Context, id string) (*models.Document, error) {
	d, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDocuments) MarkUploaded(ctx context.Context, id string, size int64) error {
	if f.completed == nil {
		f.completed = make(map[string]int64)
	}
	f.completed[id] = size
	return nil
}

type fakeAudits struct {
	audits.Repository
	byID map[string]*models.AuditRecord
}

func (f *fakeAudits) Get(ctx context.Context, id string) (*models.AuditRecord, error) {
	rec, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return rec, nil
}

func (f *fakeAudits) ListByDossier(ctx context.Context, dossierID string) ([]*models.AuditRecord, error) {
	var out []*models.AuditRecord
	for _, rec := range f.byID {
		if rec.DossierID == dossierID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeRepoManager struct {
	audits     *fakeAudits
	checklists *fakeChecklists
	dossiers   *fakeDossiers
	items      *fakeItems
	documents  *fakeDocuments
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		audits:     &fakeAudits{byID: map[string]*models.AuditRecord{}},
		checklists: &fakeChecklists{},
		dossiers:   &fakeDossiers{byID: map[string]*models.Dossier{}},
		items:      &fakeItems{},
		documents:  &fakeDocuments{byID: map[string]*models.Document{}},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error  { return nil }
func (m *fakeRepoManager) Checklists(dbx.DBTX) checklists.Repository     { return m.checklists }
func (m *fakeRepoManager) Dossiers(dbx.DBTX) dossiers.Repository         { return m.dossiers }
func (m *fakeRepoManager) DossierItems(dbx.DBTX) dossieritems.Repository { return m.items }
func (m *fakeRepoManager) Documents(dbx.DBTX) documents.Repository       { return m.documents }
func (m *fakeRepoManager) Audits(dbx.DBTX) audits.Repository             { return m.audits }

// newMockDB returns a sqlmock-backed *sql.DB for transaction boundaries.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}
