package grpc

import (
	"context"
	"errors"

	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/audit/errs"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors onto gRPC codes. Unknown errors are logged
// by the caller and reported as Internal without detail.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrInvalidStatusTransition),
		errors.Is(err, common.ErrNoActiveTemplate),
		errors.Is(err, common.ErrProductTypeLocked),
		errors.Is(err, common.ErrAuditAlreadyTerminal),
		errors.Is(err, common.ErrAuditNotRunning):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrDossierLockNotObtained):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, common.ErrStorageUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	switch errs.KindOf(err) {
	case errs.UnsupportedFormat, errs.CorruptDocument, errs.DocumentTooLarge:
		return status.Error(codes.InvalidArgument, err.Error())
	}

	return status.Error(codes.Internal, "internal error")
}
