// Package auditpb holds the AuditService wire contract generated from
// audit.proto.
package auditpb

//go:generate protoc --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative -I ../.. internal/auditpb/audit.proto
