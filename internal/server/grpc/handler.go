package grpc

import (
	"context"
	"strings"

	"github.com/carlosftapiap/arcsapp-sub001/internal/auditpb"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/auth"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/report"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) fail(ctx context.Context, method string, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		s.logger.Error(ctx, "request failed", "method", method, "error", err)
	}
	return st
}

func (s *GRPCServer) principal(ctx context.Context) (auth.Principal, error) {
	p, ok := PrincipalFromContext(ctx)
	if !ok {
		return auth.Principal{}, status.Error(codes.Unauthenticated, "missing token")
	}
	return p, nil
}

// ownDossier loads the dossier and checks it belongs to the caller's lab.
func (s *GRPCServer) ownDossier(ctx context.Context, dossierID string) (*models.Dossier, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(dossierID) == "" {
		return nil, status.Error(codes.InvalidArgument, "dossier id is required")
	}
	d, err := s.dossiers.GetDossier(ctx, dossierID)
	if err != nil {
		return nil, err
	}
	if d.LabID != p.LabID {
		return nil, status.Error(codes.PermissionDenied, "dossier belongs to another lab")
	}
	return d, nil
}

func (s *GRPCServer) ownAudit(ctx context.Context, auditID string) (*models.AuditRecord, error) {
	if strings.TrimSpace(auditID) == "" {
		return nil, status.Error(codes.InvalidArgument, "audit id is required")
	}
	rec, err := s.audits.GetAudit(ctx, auditID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownDossier(ctx, rec.DossierID); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *GRPCServer) RunAudit(ctx context.Context, req *auditpb.RunAuditRequest) (*auditpb.RunAuditResponse, error) {
	if _, err := s.ownDossier(ctx, req.GetDossierId()); err != nil {
		return nil, s.fail(ctx, "RunAudit", err)
	}

	s.logger.Info(ctx, "Audit requested", "dossier_id", req.GetDossierId(), "stage", req.GetStage())

	rec, err := s.auditor.RunAudit(ctx, req.GetDossierId(), req.GetStage())
	if err != nil {
		return nil, s.fail(ctx, "RunAudit", err)
	}
	return &auditpb.RunAuditResponse{Audit: auditToPB(rec, false)}, nil
}

func (s *GRPCServer) CancelAudit(ctx context.Context, req *auditpb.CancelAuditRequest) (*auditpb.CancelAuditResponse, error) {
	if _, err := s.ownAudit(ctx, req.GetAuditId()); err != nil {
		return nil, s.fail(ctx, "CancelAudit", err)
	}
	if err := s.auditor.CancelAudit(req.GetAuditId()); err != nil {
		return nil, s.fail(ctx, "CancelAudit", err)
	}
	s.logger.Info(ctx, "Audit cancellation requested", "audit_id", req.GetAuditId())
	return &auditpb.CancelAuditResponse{}, nil
}

func (s *GRPCServer) ListAudits(ctx context.Context, req *auditpb.ListAuditsRequest) (*auditpb.ListAuditsResponse, error) {
	if _, err := s.ownDossier(ctx, req.GetDossierId()); err != nil {
		return nil, s.fail(ctx, "ListAudits", err)
	}
	recs, err := s.audits.ListAudits(ctx, req.GetDossierId())
	if err != nil {
		return nil, s.fail(ctx, "ListAudits", err)
	}

	live := make(map[string]bool)
	for _, id := range s.auditor.Running() {
		live[id] = true
	}

	out := make([]*auditpb.Audit, 0, len(recs))
	for _, rec := range recs {
		out = append(out, auditToPB(rec, live[rec.ID]))
	}
	return &auditpb.ListAuditsResponse{Audits: out}, nil
}

func (s *GRPCServer) ExportAudit(ctx context.Context, req *auditpb.ExportAuditRequest) (*auditpb.ExportAuditResponse, error) {
	if _, err := s.ownAudit(ctx, req.GetAuditId()); err != nil {
		return nil, s.fail(ctx, "ExportAudit", err)
	}
	name, data, err := s.audits.ExportAudit(ctx, req.GetAuditId())
	if err != nil {
		return nil, s.fail(ctx, "ExportAudit", err)
	}
	return &auditpb.ExportAuditResponse{FileName: name, ContentType: report.ContentType, Data: data}, nil
}

func (s *GRPCServer) CreateDossier(ctx context.Context, req *auditpb.CreateDossierRequest) (*auditpb.CreateDossierResponse, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}

	d, err := s.dossiers.CreateDossier(ctx, &models.Dossier{
		LabID:        p.LabID,
		ProductName:  req.GetProductName(),
		Manufacturer: req.GetManufacturer(),
		ProductType:  models.ProductType(req.GetProductType()),
		CreatedBy:    p.UserID,
	})
	if err != nil {
		return nil, s.fail(ctx, "CreateDossier", err)
	}

	s.logger.Info(ctx, "Dossier created", "dossier_id", d.ID, "lab_id", p.LabID)
	return &auditpb.CreateDossierResponse{Dossier: dossierToPB(d)}, nil
}

func (s *GRPCServer) GetDossier(ctx context.Context, req *auditpb.GetDossierRequest) (*auditpb.GetDossierResponse, error) {
	d, err := s.ownDossier(ctx, req.GetDossierId())
	if err != nil {
		return nil, s.fail(ctx, "GetDossier", err)
	}
	items, err := s.dossiers.ListItems(ctx, d.ID)
	if err != nil {
		return nil, s.fail(ctx, "GetDossier", err)
	}

	resp := &auditpb.GetDossierResponse{Dossier: dossierToPB(d), Items: make([]*auditpb.DossierItem, 0, len(items))}
	for _, it := range items {
		resp.Items = append(resp.Items, &auditpb.DossierItem{
			Id:          it.ID,
			Code:        it.Code,
			Title:       it.Title,
			Stage:       it.Stage,
			Status:      string(it.Status),
			Observation: it.Observation,
		})
	}
	return resp, nil
}

func (s *GRPCServer) SubmitDossier(ctx context.Context, req *auditpb.DossierStatusRequest) (*auditpb.DossierStatusResponse, error) {
	if _, err := s.ownDossier(ctx, req.GetDossierId()); err != nil {
		return nil, s.fail(ctx, "SubmitDossier", err)
	}
	if err := s.dossiers.Submit(ctx, req.GetDossierId()); err != nil {
		return nil, s.fail(ctx, "SubmitDossier", err)
	}
	return &auditpb.DossierStatusResponse{Status: string(models.DossierSubmitted)}, nil
}

func (s *GRPCServer) RevertDossier(ctx context.Context, req *auditpb.DossierStatusRequest) (*auditpb.DossierStatusResponse, error) {
	if _, err := s.ownDossier(ctx, req.GetDossierId()); err != nil {
		return nil, s.fail(ctx, "RevertDossier", err)
	}
	if err := s.dossiers.RevertToDraft(ctx, req.GetDossierId()); err != nil {
		return nil, s.fail(ctx, "RevertDossier", err)
	}
	return &auditpb.DossierStatusResponse{Status: string(models.DossierDraft)}, nil
}

func (s *GRPCServer) RequestUpload(ctx context.Context, req *auditpb.RequestUploadRequest) (*auditpb.RequestUploadResponse, error) {
	if _, err := s.ownDossier(ctx, req.GetDossierId()); err != nil {
		return nil, s.fail(ctx, "RequestUpload", err)
	}
	p, _ := PrincipalFromContext(ctx)

	ticket, err := s.uploads.RequestUpload(ctx, services.UploadRequest{
		DossierID:     req.GetDossierId(),
		DossierItemID: req.GetDossierItemId(),
		FileName:      req.GetFileName(),
		MimeType:      req.GetMimeType(),
		UploadedBy:    p.UserID,
	})
	if err != nil {
		return nil, s.fail(ctx, "RequestUpload", err)
	}
	return &auditpb.RequestUploadResponse{DocumentId: ticket.DocumentID, StorageKey: ticket.StorageKey, Url: ticket.URL}, nil
}

func (s *GRPCServer) ConfirmUpload(ctx context.Context, req *auditpb.ConfirmUploadRequest) (*auditpb.ConfirmUploadResponse, error) {
	if strings.TrimSpace(req.GetDocumentId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "document id is required")
	}
	doc, err := s.uploads.GetDocument(ctx, req.GetDocumentId())
	if err != nil {
		return nil, s.fail(ctx, "ConfirmUpload", err)
	}
	if _, err := s.ownDossier(ctx, doc.DossierID); err != nil {
		return nil, s.fail(ctx, "ConfirmUpload", err)
	}

	doc, err = s.uploads.ConfirmUpload(ctx, req.GetDocumentId())
	if err != nil {
		return nil, s.fail(ctx, "ConfirmUpload", err)
	}
	return &auditpb.ConfirmUploadResponse{DocumentId: doc.ID, SizeBytes: doc.SizeBytes, UploadStatus: doc.UploadStatus}, nil
}

func auditToPB(rec *models.AuditRecord, live bool) *auditpb.Audit {
	a := &auditpb.Audit{
		Id:               rec.ID,
		DossierId:        rec.DossierID,
		Stage:            rec.Stage,
		ProductName:      rec.ProductName,
		Manufacturer:     rec.Manufacturer,
		FileName:         rec.FileName,
		TotalPages:       int32(rec.TotalPages),
		StagesFound:      int32(rec.StagesFound),
		ProblemsFound:    int32(rec.ProblemsFound),
		Status:           string(rec.Status),
		ProcessingTimeMs: rec.ProcessingTimeMS,
		CreatedAt:        timestamppb.New(rec.CreatedAt),
		Live:             live,
	}
	if rec.FinishedAt != nil {
		a.FinishedAt = timestamppb.New(*rec.FinishedAt)
	}
	for _, o := range rec.Outcomes {
		a.Outcomes = append(a.Outcomes, &auditpb.Outcome{
			Stage:            o.Stage,
			Outcome:          string(o.Outcome),
			FailedDocumentId: o.FailedDocumentID,
			ErrorKind:        o.ErrorKind,
			Message:          o.Message,
			ItemsEvaluated:   int32(o.ItemsEvaluated),
			ProblemsFound:    int32(o.ProblemsFound),
			Incomplete:       o.Incomplete,
		})
	}
	return a
}

func dossierToPB(d *models.Dossier) *auditpb.Dossier {
	return &auditpb.Dossier{
		Id:           d.ID,
		LabId:        d.LabID,
		ProductName:  d.ProductName,
		Manufacturer: d.Manufacturer,
		ProductType:  string(d.ProductType),
		TemplateId:   d.TemplateID,
		Status:       string(d.Status),
	}
}
