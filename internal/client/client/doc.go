// Package client talks to the audit server over gRPC.
//
// GRPCClient wraps the generated-style auditpb client: it injects the
// access token into outgoing metadata, selects the JSON codec and maps gRPC
// status codes to the sentinel errors in this package (ErrUnavailable,
// ErrUnauthorized, ErrNotFound, ErrRejected) so callers can use errors.Is.
package client
