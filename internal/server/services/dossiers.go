package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	"github.com/carlosftapiap/arcsapp-sub001/internal/dbx"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/repositories/repomanager"
)

type DossierService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDossierService(db *sql.DB, repomanager repomanager.RepositoryManager) *DossierService {
	return &DossierService{db: db, repomanager: repomanager}
}

// CreateDossier stores a draft dossier bound to the active checklist
// template of its product type and copies the template items into it, in
// one transaction.
func (s *DossierService) CreateDossier(ctx context.Context, d *models.Dossier) (*models.Dossier, error) {
	d.ProductName = strings.TrimSpace(d.ProductName)
	d.Manufacturer = strings.TrimSpace(d.Manufacturer)
	if d.ProductName == "" || d.LabID == "" {
		return nil, fmt.Errorf("%w: product name and lab are required", common.ErrorValidation)
	}
	if !d.ProductType.Valid() {
		return nil, fmt.Errorf("%w: unknown product type %q", common.ErrorValidation, d.ProductType)
	}

	var created *models.Dossier
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		tmpl, err := s.repomanager.Checklists(tx).ActiveTemplate(ctx, d.ProductType)
		if err != nil {
			return err
		}

		d.TemplateID = tmpl.ID
		d.Status = models.DossierDraft
		created, err = s.repomanager.Dossiers(tx).Create(ctx, d)
		if err != nil {
			return err
		}

		n, err := s.repomanager.DossierItems(tx).CreateFromTemplate(ctx, created.ID, tmpl.ID)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: template %s has no items", common.ErrorValidation, tmpl.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *DossierService) GetDossier(ctx context.Context, id string) (*models.Dossier, error) {
	return s.repomanager.Dossiers(s.db).Get(ctx, id)
}

func (s *DossierService) ListItems(ctx context.Context, dossierID string) ([]*models.DossierItem, error) {
	return s.repomanager.DossierItems(s.db).ListByDossier(ctx, dossierID)
}

// RevertToDraft is the only backwards status move. A submitted dossier
// cannot be reverted.
func (s *DossierService) RevertToDraft(ctx context.Context, id string) error {
	repo := s.repomanager.Dossiers(s.db)
	d, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	switch d.Status {
	case models.DossierDraft:
		return nil
	case models.DossierSubmitted:
		return fmt.Errorf("%w: submitted dossier cannot return to draft", common.ErrInvalidStatusTransition)
	}
	return repo.UpdateStatus(ctx, id, d.Status, models.DossierDraft)
}

// Submit moves a ready dossier to submitted.
func (s *DossierService) Submit(ctx context.Context, id string) error {
	repo := s.repomanager.Dossiers(s.db)
	d, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if d.Status != models.DossierReady || !d.Status.CanAdvanceTo(models.DossierSubmitted) {
		return fmt.Errorf("%w: %s to %s", common.ErrInvalidStatusTransition, d.Status, models.DossierSubmitted)
	}
	return repo.UpdateStatus(ctx, id, d.Status, models.DossierSubmitted)
}

// ChangeProductType is only allowed before the dossier has items, which in
// practice means never after CreateDossier succeeded.
func (s *DossierService) ChangeProductType(ctx context.Context, id string, pt models.ProductType) error {
	if !pt.Valid() {
		return fmt.Errorf("%w: unknown product type %q", common.ErrorValidation, pt)
	}
	return s.repomanager.Dossiers(s.db).UpdateProductType(ctx, id, pt)
}
