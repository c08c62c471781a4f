package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/carlosftapiap/arcsapp-sub001/internal/auditpb"
	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	"github.com/carlosftapiap/arcsapp-sub001/internal/logging"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// helper to build server
func newTestServer(secret string) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, nil, nil, nil, nil, secret)
}

func tokenCtx(token string) context.Context {
	md := metadata.New(map[string]string{common.AccessTokenHeaderName: token})
	return metadata.NewIncomingContext(context.Background(), md)
}

var runAuditInfo = &grpc.UnaryServerInfo{FullMethod: auditpb.AuditService_RunAudit_FullMethodName}

func TestInterceptor_Health_AllowsWithoutToken(t *testing.T) {
	s := newTestServer("secret")

	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}
	handlerCalled := false

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled || resp != "ok" {
		t.Fatalf("handler not called or bad resp: %v", resp)
	}
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := newTestServer("secret")

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, runAuditInfo, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "missing token" {
		t.Fatalf("expected 'missing token', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_InvalidToken(t *testing.T) {
	s := newTestServer("secret")

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for invalid token")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(tokenCtx("not-a-valid-jwt"), nil, runAuditInfo, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestInterceptor_ExpiredToken(t *testing.T) {
	secret := "s"
	s := newTestServer(secret)

	token, err := auth.GenerateToken(auth.Principal{UserID: "u", LabID: "l"}, []byte(secret), -time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	h := func(ctx context.Context, req interface{}) (interface{}, error) { return nil, nil }
	_, err = s.accessTokenInterceptor(tokenCtx(token), nil, runAuditInfo, h)
	if status.Convert(err).Message() != common.ErrTokenExpired.Error() {
		t.Fatalf("expected expiry message, got %v", err)
	}
}

func TestInterceptor_ValidToken_SetsPrincipal(t *testing.T) {
	secret := "super-secret"
	s := newTestServer(secret)

	want := auth.Principal{UserID: "user-123", LabID: "lab-7"}
	token, err := auth.GenerateToken(want, []byte(secret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	var got auth.Principal
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		got, _ = PrincipalFromContext(ctx)
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(tokenCtx(token), nil, runAuditInfo, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
	if got != want {
		t.Fatalf("principal not propagated: got %+v want %+v", got, want)
	}
}
