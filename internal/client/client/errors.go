package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	// ErrRejected covers invalid arguments and state conflicts.
	ErrRejected = errors.New("request rejected")
)
