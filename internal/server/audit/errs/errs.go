// Package errs is the failure taxonomy of the audit pipeline. Every error
// raised by extraction, composition, invocation or reconciliation is an
// *Error carrying a Kind; errors.Is matches it against the Kind's sentinel.
package errs

import (
	"errors"
	"fmt"
)

type Kind string

const (
	UnsupportedFormat Kind = "UnsupportedFormat"
	CorruptDocument   Kind = "CorruptDocument"
	DocumentTooLarge  Kind = "DocumentTooLarge"

	EmptyFileSet Kind = "EmptyFileSet"

	Timeout         Kind = "Timeout"
	RateLimited     Kind = "RateLimited"
	ContentRejected Kind = "ContentRejected"
	TransportError  Kind = "TransportError"
	InvalidRequest  Kind = "InvalidRequest"

	MalformedModelOutput Kind = "MalformedModelOutput"
	OutOfScopeReference  Kind = "OutOfScopeReference"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrCorruptDocument   = errors.New("corrupt document")
	ErrDocumentTooLarge  = errors.New("document too large")

	ErrEmptyFileSet = errors.New("no extracted text for stage")

	ErrTimeout         = errors.New("model invocation timed out")
	ErrRateLimited     = errors.New("model rate limited")
	ErrContentRejected = errors.New("model rejected content")
	ErrTransport       = errors.New("model transport error")
	ErrInvalidRequest  = errors.New("invalid model request")

	ErrMalformedModelOutput = errors.New("malformed model output")
	ErrOutOfScopeReference  = errors.New("model referenced item out of scope")
)

var sentinels = map[Kind]error{
	UnsupportedFormat:    ErrUnsupportedFormat,
	CorruptDocument:      ErrCorruptDocument,
	DocumentTooLarge:     ErrDocumentTooLarge,
	EmptyFileSet:         ErrEmptyFileSet,
	Timeout:              ErrTimeout,
	RateLimited:          ErrRateLimited,
	ContentRejected:      ErrContentRejected,
	TransportError:       ErrTransport,
	InvalidRequest:       ErrInvalidRequest,
	MalformedModelOutput: ErrMalformedModelOutput,
	OutOfScopeReference:  ErrOutOfScopeReference,
}

// Category groups kinds the way stage outcomes report them.
func (k Kind) Category() string {
	switch k {
	case UnsupportedFormat, CorruptDocument, DocumentTooLarge:
		return "ExtractionError"
	case EmptyFileSet:
		return "CompositionError"
	case Timeout, RateLimited, ContentRejected, TransportError, InvalidRequest:
		return "InvocationError"
	case MalformedModelOutput, OutOfScopeReference:
		return "ReconciliationError"
	}
	return "UnknownError"
}

// Retryable reports whether an invocation failing with k may be retried.
func (k Kind) Retryable() bool {
	return k == Timeout || k == RateLimited || k == TransportError
}

type Error struct {
	Kind       Kind
	DocumentID string
	Detail     string
	Err        error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.DocumentID != "" {
		msg += " (document " + e.DocumentID + ")"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// WithDocument returns a copy of err attributed to a document. Errors that
// are not an *Error are wrapped as CorruptDocument.
func WithDocument(err error, documentID string) *Error {
	var e *Error
	if errors.As(err, &e) {
		cp := *e
		cp.DocumentID = documentID
		return &cp
	}
	return &Error{Kind: CorruptDocument, DocumentID: documentID, Err: err}
}

// KindOf extracts the Kind from err, or "" when err is not from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// DocumentOf returns the document an error was attributed to, if any.
func DocumentOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.DocumentID
	}
	return ""
}
