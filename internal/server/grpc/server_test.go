package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/carlosftapiap/arcsapp-sub001/internal/auditpb"
	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	"github.com/carlosftapiap/arcsapp-sub001/internal/logging"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/auth"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", logging.Nop{}, nil, nil, nil, nil, "secret")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, nil, nil, nil, nil, "secret")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

// TestEndToEnd_JSONOverGRPC drives the registered service through a real
// gRPC stack with the token interceptor in place.
func TestEndToEnd_JSONOverGRPC(t *testing.T) {
	f := newFixture()
	f.auditor.rec = &models.AuditRecord{ID: "a9", DossierID: "d1", Status: models.AuditCompleted}
	s := NewGRPCServer("bufnet", logging.Nop{}, f.auditor, f.audits, f.dossiers, f.uploads, "secret")

	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))
	s.Register(gs)
	go func() { _ = gs.Serve(lis) }()
	defer gs.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	hc, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: auditpb.AuditService_ServiceDesc.ServiceName})
	if err != nil {
		t.Fatalf("health check: %v", err)
	}
	if hc.Status != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("unexpected health status: %v", hc.Status)
	}

	client := auditpb.NewAuditServiceClient(conn)

	_, err = client.RunAudit(context.Background(), &auditpb.RunAuditRequest{DossierId: "d1"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated without token, got %v", err)
	}

	token, err := auth.GenerateToken(auth.Principal{UserID: "u-1", LabID: "lab-1"}, []byte("secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, token)

	resp, err := client.RunAudit(ctx, &auditpb.RunAuditRequest{DossierId: "d1", Stage: "legal"})
	if err != nil {
		t.Fatalf("RunAudit: %v", err)
	}
	if resp.GetAudit().GetId() != "a9" || resp.Audit.Status != "completed" {
		t.Fatalf("unexpected audit: %+v", resp.Audit)
	}
}
