package audit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	"github.com/carlosftapiap/arcsapp-sub001/internal/dbx"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/reconcile"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/repositories/repomanager"
)

// Snapshot is the dossier state an audit starts from.
type Snapshot struct {
	Dossier   *models.Dossier
	Items     []*models.DossierItem
	Documents []*models.Document
}

// ApplyFunc computes transitions from the locked current statuses. Returning
// an error aborts the whole unit.
type ApplyFunc func(current map[string]models.ItemStatus) ([]reconcile.Transition, error)

// Store is the persistence the engine needs.
type Store interface {
	LoadDossier(ctx context.Context, dossierID string) (*Snapshot, error)
	CreateAudit(ctx context.Context, rec *models.AuditRecord) error
	// ApplyStage reads item statuses and writes transitions atomically,
	// serialized per dossier.
	ApplyStage(ctx context.Context, dossierID string, apply ApplyFunc) error
	UpdateProgress(ctx context.Context, rec *models.AuditRecord) error
	// FinalizeAudit writes the terminal record and its outcomes together.
	FinalizeAudit(ctx context.Context, rec *models.AuditRecord) error
	// AdvanceDossier moves the dossier status forward after audit activity:
	// draft to in_progress, and in_progress to ready once every item is
	// approved.
	AdvanceDossier(ctx context.Context, dossierID string) error
}

type PostgresStore struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewPostgresStore(db *sql.DB, repos repomanager.RepositoryManager) *PostgresStore {
	return &PostgresStore{db: db, repos: repos}
}

func (s *PostgresStore) LoadDossier(ctx context.Context, dossierID string) (*Snapshot, error) {
	d, err := s.repos.Dossiers(s.db).Get(ctx, dossierID)
	if err != nil {
		return nil, err
	}
	items, err := s.repos.DossierItems(s.db).ListByDossier(ctx, dossierID)
	if err != nil {
		return nil, err
	}
	docs, err := s.repos.Documents(s.db).ListCompletedByDossier(ctx, dossierID)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Dossier: d, Items: items, Documents: docs}, nil
}

func (s *PostgresStore) CreateAudit(ctx context.Context, rec *models.AuditRecord) error {
	_, err := s.repos.Audits(s.db).Create(ctx, rec)
	return err
}

func (s *PostgresStore) ApplyStage(ctx context.Context, dossierID string, apply ApplyFunc) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := dbx.AdvisoryXactLock(ctx, tx, "dossier:"+dossierID); err != nil {
			return err
		}
		items := s.repos.DossierItems(tx)
		current, err := items.LockStatuses(ctx, dossierID)
		if err != nil {
			return err
		}
		transitions, err := apply(current)
		if err != nil {
			return err
		}
		for _, t := range transitions {
			if err := items.UpdateStatus(ctx, t.ItemID, t.To, t.Observation); err != nil {
				return fmt.Errorf("item %s: %w", t.ItemID, err)
			}
		}
		return nil
	})
}

func (s *PostgresStore) UpdateProgress(ctx context.Context, rec *models.AuditRecord) error {
	return s.repos.Audits(s.db).UpdateProgress(ctx, rec)
}

func (s *PostgresStore) FinalizeAudit(ctx context.Context, rec *models.AuditRecord) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		audits := s.repos.Audits(tx)
		if err := audits.Finalize(ctx, rec); err != nil {
			return err
		}
		return audits.SaveOutcomes(ctx, rec.ID, rec.Outcomes)
	})
}

func (s *PostgresStore) AdvanceDossier(ctx context.Context, dossierID string) error {
	dossiers := s.repos.Dossiers(s.db)
	d, err := dossiers.Get(ctx, dossierID)
	if err != nil {
		return err
	}

	status := d.Status
	if status == models.DossierDraft {
		if err := advance(ctx, dossiers.UpdateStatus, dossierID, status, models.DossierInProgress); err != nil {
			return err
		}
		status = models.DossierInProgress
	}
	if status != models.DossierInProgress {
		return nil
	}

	done, err := s.repos.DossierItems(s.db).AllApproved(ctx, dossierID)
	if err != nil || !done {
		return err
	}
	return advance(ctx, dossiers.UpdateStatus, dossierID, status, models.DossierReady)
}

// advance tolerates losing a race with another writer.
func advance(ctx context.Context, update func(context.Context, string, models.DossierStatus, models.DossierStatus) error,
	id string, from, to models.DossierStatus) error {
	err := update(ctx, id, from, to)
	if errors.Is(err, common.ErrInvalidStatusTransition) {
		return nil
	}
	return err
}
