package client

import (
	"context"

	"github.com/carlosftapiap/arcsapp-sub001/internal/auditpb"
)

type Client interface {
	Close() error
	SetAccessToken(token string)
	Ping(ctx context.Context) error

	RunAudit(ctx context.Context, dossierID, stage string) (*auditpb.Audit, error)
	CancelAudit(ctx context.Context, auditID string) error
	ListAudits(ctx context.Context, dossierID string) ([]*auditpb.Audit, error)
	ExportAudit(ctx context.Context, auditID string) (*auditpb.ExportAuditResponse, error)

	CreateDossier(ctx context.Context, req *auditpb.CreateDossierRequest) (*auditpb.Dossier, error)
	GetDossier(ctx context.Context, dossierID string) (*auditpb.GetDossierResponse, error)
	SubmitDossier(ctx context.Context, dossierID string) (string, error)
	RevertDossier(ctx context.Context, dossierID string) (string, error)

	RequestUpload(ctx context.Context, req *auditpb.RequestUploadRequest) (*auditpb.RequestUploadResponse, error)
	ConfirmUpload(ctx context.Context, documentID string) (*auditpb.ConfirmUploadResponse, error)
}
