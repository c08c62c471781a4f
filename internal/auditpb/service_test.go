package auditpb

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type echoServer struct {
	UnimplementedAuditServiceServer
	seen *RunAuditRequest
}

func (s *echoServer) RunAudit(ctx context.Context, in *RunAuditRequest) (*RunAuditResponse, error) {
	s.seen = in
	fin := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &RunAuditResponse{Audit: &Audit{
		Id: "a1", DossierId: in.GetDossierId(), Stage: in.GetStage(), Status: "completed",
		FinishedAt: timestamppb.New(fin),
		Outcomes:   []*Outcome{{Stage: "legal", Outcome: "completed", Incomplete: []string{"i2"}}},
	}}, nil
}

func (s *echoServer) ExportAudit(ctx context.Context, in *ExportAuditRequest) (*ExportAuditResponse, error) {
	return &ExportAuditResponse{FileName: "x.xlsx", Data: []byte{0, 1, 2, 0xff}}, nil
}

func dial(t *testing.T, srv AuditServiceServer, opts ...grpc.ServerOption) AuditServiceClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(opts...)
	RegisterAuditServiceServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewAuditServiceClient(conn)
}

func TestRoundTrip(t *testing.T) {
	srv := &echoServer{}
	c := dial(t, srv)

	resp, err := c.RunAudit(context.Background(), &RunAuditRequest{DossierId: "d1", Stage: "legal"})
	require.NoError(t, err)

	assert.True(t, proto.Equal(&RunAuditRequest{DossierId: "d1", Stage: "legal"}, srv.seen))
	assert.Equal(t, "a1", resp.GetAudit().GetId())
	assert.Equal(t, "legal", resp.GetAudit().GetStage())
	require.NotNil(t, resp.GetAudit().GetFinishedAt())
	assert.True(t, resp.GetAudit().GetFinishedAt().AsTime().Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))
	assert.Nil(t, resp.GetAudit().GetCreatedAt())
	assert.Equal(t, []string{"i2"}, resp.GetAudit().GetOutcomes()[0].GetIncomplete())

	exp, err := c.ExportAudit(context.Background(), &ExportAuditRequest{AuditId: "a1"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2, 0xff}, exp.GetData())
}

func TestUnimplemented(t *testing.T) {
	c := dial(t, &echoServer{})

	_, err := c.CancelAudit(context.Background(), &CancelAuditRequest{AuditId: "a1"})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestInterceptorSeesFullMethod(t *testing.T) {
	var method string
	icpt := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		method = info.FullMethod
		return h(ctx, req)
	}
	c := dial(t, &echoServer{}, grpc.UnaryInterceptor(icpt))

	_, err := c.RunAudit(context.Background(), &RunAuditRequest{DossierId: "d1"})
	require.NoError(t, err)
	assert.Equal(t, AuditService_RunAudit_FullMethodName, method)
}

func TestFileDescriptor(t *testing.T) {
	fd := File_internal_auditpb_audit_proto
	assert.Equal(t, "arcsapp.audit.v1", string(fd.Package()))

	svc := fd.Services().ByName("AuditService")
	require.NotNil(t, svc)
	assert.Equal(t, len(AuditService_ServiceDesc.Methods), svc.Methods().Len())
	assert.Equal(t, AuditService_ServiceDesc.ServiceName, string(svc.FullName()))

	for _, m := range AuditService_ServiceDesc.Methods {
		assert.NotNil(t, svc.Methods().ByName(protoreflect.Name(m.MethodName)), m.MethodName)
	}
}

func TestWireFormat(t *testing.T) {
	in := &ConfirmUploadResponse{DocumentId: "doc1", SizeBytes: 1 << 40, UploadStatus: "uploaded"}
	b, err := proto.Marshal(in)
	require.NoError(t, err)

	var out ConfirmUploadResponse
	require.NoError(t, proto.Unmarshal(b, &out))
	assert.True(t, proto.Equal(in, &out))

	// Unknown trailing fields from a newer peer are kept, not rejected.
	b = append(b, 0xf8, 0x01, 0x07)
	require.NoError(t, proto.Unmarshal(b, &out))
	assert.Equal(t, "doc1", out.GetDocumentId())
}
