// Package common contains shared constants and sentinel errors used across
// the audit service components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// lab access token on inbound and outbound requests.
const AccessTokenHeaderName = "access_token"
