// Package config loads runtime configuration for the auditctl CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: AUDITCTL_ADDRESS and AUDITCTL_TOKEN.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string         address:port of the audit server
//	-timeout duration deadline for ordinary requests
//	-wait duration    deadline for RunAudit, which blocks until the audit ends
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "30s",
//	  "audit_timeout": "30m"
//	}
//
// The access token is never read from flags or JSON. When AUDITCTL_TOKEN is
// unset the CLI prompts for it without echo.
package config
