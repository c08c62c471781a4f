// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/carlosftapiap/arcsapp-sub001/internal/dbx"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/migrations"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/repositories/audits"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/repositories/checklists"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/repositories/documents"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/repositories/dossieritems"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/repositories/dossiers"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Checklists(db dbx.DBTX) checklists.Repository {
	return checklists.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Dossiers(db dbx.DBTX) dossiers.Repository {
	return dossiers.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) DossierItems(db dbx.DBTX) dossieritems.Repository {
	return dossieritems.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Documents(db dbx.DBTX) documents.Repository {
	return documents.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Audits(db dbx.DBTX) audits.Repository {
	return audits.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
