package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/carlosftapiap/arcsapp-sub001/internal/auditpb"
	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      auditpb.AuditServiceClient
	health      healthpb.HealthClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	s.mu.RLock()
	token := s.accessToken
	s.mu.RUnlock()

	if token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewAuditClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = auditpb.NewAuditServiceClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func (s *GRPCClient) SetAccessToken(token string) {
	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// Ping asks the health service whether the audit service is serving.
func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: auditpb.AuditService_ServiceDesc.ServiceName})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) RunAudit(ctx context.Context, dossierID, stage string) (*auditpb.Audit, error) {
	resp, err := s.client.RunAudit(ctx, &auditpb.RunAuditRequest{DossierId: dossierID, Stage: stage})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetAudit(), nil
}

func (s *GRPCClient) CancelAudit(ctx context.Context, auditID string) error {
	_, err := s.client.CancelAudit(ctx, &auditpb.CancelAuditRequest{AuditId: auditID})
	return s.mapError(err)
}

func (s *GRPCClient) ListAudits(ctx context.Context, dossierID string) ([]*auditpb.Audit, error) {
	resp, err := s.client.ListAudits(ctx, &auditpb.ListAuditsRequest{DossierId: dossierID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetAudits(), nil
}

func (s *GRPCClient) ExportAudit(ctx context.Context, auditID string) (*auditpb.ExportAuditResponse, error) {
	resp, err := s.client.ExportAudit(ctx, &auditpb.ExportAuditRequest{AuditId: auditID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) CreateDossier(ctx context.Context, req *auditpb.CreateDossierRequest) (*auditpb.Dossier, error) {
	resp, err := s.client.CreateDossier(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetDossier(), nil
}

func (s *GRPCClient) GetDossier(ctx context.Context, dossierID string) (*auditpb.GetDossierResponse, error) {
	resp, err := s.client.GetDossier(ctx, &auditpb.GetDossierRequest{DossierId: dossierID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) SubmitDossier(ctx context.Context, dossierID string) (string, error) {
	resp, err := s.client.SubmitDossier(ctx, &auditpb.DossierStatusRequest{DossierId: dossierID})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetStatus(), nil
}

func (s *GRPCClient) RevertDossier(ctx context.Context, dossierID string) (string, error) {
	resp, err := s.client.RevertDossier(ctx, &auditpb.DossierStatusRequest{DossierId: dossierID})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetStatus(), nil
}

func (s *GRPCClient) RequestUpload(ctx context.Context, req *auditpb.RequestUploadRequest) (*auditpb.RequestUploadResponse, error) {
	resp, err := s.client.RequestUpload(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ConfirmUpload(ctx context.Context, documentID string) (*auditpb.ConfirmUploadResponse, error) {
	resp, err := s.client.ConfirmUpload(ctx, &auditpb.ConfirmUploadRequest{DocumentId: documentID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.InvalidArgument, codes.FailedPrecondition, codes.Aborted:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
