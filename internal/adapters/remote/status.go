package remote

import (
	"errors"
	"strings"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/zerr"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func invalidArgument(name string, err error) error {
	return errors.Join(domain.ErrValidationFailed, zerr.With(zerr.Wrap(err, "malformed argument"), "argument", name))
}

// toStatus converts a backend error into the gRPC status sent to the client.
func toStatus(err error) error {
	if err == nil {
		return nil
	}

	code := codes.Unknown
	switch {
	case errors.Is(err, domain.ErrValidationFailed):
		code = codes.InvalidArgument
	case errors.Is(err, domain.ErrNotFound):
		code = codes.NotFound
	case errors.Is(err, domain.ErrNotAuthenticated):
		code = codes.Unauthenticated
	case errors.Is(err, domain.ErrForbidden):
		code = codes.PermissionDenied
	case errors.Is(err, domain.ErrUploadFailed):
		code = codes.ResourceExhausted
	}
	return status.Error(code, flatten(err))
}

// fromStatus converts the error of a call to method into the client error taxonomy.
// Anything that never reached the backend is a transport failure.
func fromStatus(method string, err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return errors.Join(domain.ErrTransportUnavailable, zerr.With(err, "method", method))
	}

	cause := zerr.With(zerr.New(st.Message()), "method", method)
	cause = zerr.With(cause, "code", st.Code().String())

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return errors.Join(domain.ErrTransportUnavailable, cause)
	case codes.NotFound:
		return errors.Join(domain.ErrRemoteCallFailed, domain.ErrNotFound, cause)
	case codes.Unauthenticated:
		return errors.Join(domain.ErrRemoteCallFailed, domain.ErrNotAuthenticated, cause)
	case codes.PermissionDenied:
		return errors.Join(domain.ErrRemoteCallFailed, domain.ErrForbidden, cause)
	default:
		return errors.Join(domain.ErrRemoteCallFailed, cause)
	}
}

// flatten renders err on one line. Joined errors are separated by colons.
func flatten(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", ": ")
}
