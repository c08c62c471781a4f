package repomanager

import (
	"context"
	"database/sql"

	"github.com/carlosftapiap/arcsapp-sub001/internal/dbx"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/repositories/audits"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/repositories/checklists"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/repositories/documents"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/repositories/dossieritems"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/repositories/dossiers"
)

// RepositoryManager vends repositories bound to a handle, so the same code
// path works on *sql.DB and inside dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Checklists(db dbx.DBTX) checklists.Repository
	Dossiers(db dbx.DBTX) dossiers.Repository
	DossierItems(db dbx.DBTX) dossieritems.Repository
	Documents(db dbx.DBTX) documents.Repository
	Audits(db dbx.DBTX) audits.Repository
}
