package grpc

import (
	"context"
	"net"

	"github.com/carlosftapiap/arcsapp-sub001/internal/auditpb"
	"github.com/carlosftapiap/arcsapp-sub001/internal/logging"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Auditor runs and cancels audits. Implemented by audit.Engine.
type Auditor interface {
	RunAudit(ctx context.Context, dossierID, stage string) (*models.AuditRecord, error)
	CancelAudit(auditID string) error
	Running() []string
}

type AuditReader interface {
	ListAudits(ctx context.Context, dossierID string) ([]*models.AuditRecord, error)
	GetAudit(ctx context.Context, id string) (*models.AuditRecord, error)
	ExportAudit(ctx context.Context, id string) (string, []byte, error)
}

type DossierManager interface {
	CreateDossier(ctx context.Context, d *models.Dossier) (*models.Dossier, error)
	GetDossier(ctx context.Context, id string) (*models.Dossier, error)
	ListItems(ctx context.Context, dossierID string) ([]*models.DossierItem, error)
	Submit(ctx context.Context, id string) error
	RevertToDraft(ctx context.Context, id string) error
}

type UploadManager interface {
	RequestUpload(ctx context.Context, req services.UploadRequest) (*models.UploadTicket, error)
	ConfirmUpload(ctx context.Context, documentID string) (*models.Document, error)
	GetDocument(ctx context.Context, id string) (*models.Document, error)
}

type GRPCServer struct {
	auditpb.UnimplementedAuditServiceServer
	address   string
	auditor   Auditor
	audits    AuditReader
	dossiers  DossierManager
	uploads   UploadManager
	logger    logging.Logger
	jwtSecret []byte
	health    *health.Server
}

func NewGRPCServer(a string, l logging.Logger, auditor Auditor, audits AuditReader, dossiers DossierManager,
	uploads UploadManager, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		auditor:   auditor,
		audits:    audits,
		dossiers:  dossiers,
		uploads:   uploads,
		jwtSecret: []byte(secretKey),
		health:    health.NewServer(),
	}
}

// Register attaches the audit and health services to srv.
func (s *GRPCServer) Register(srv *grpc.Server) {
	auditpb.RegisterAuditServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus(auditpb.AuditService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))
	s.Register(srv)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
