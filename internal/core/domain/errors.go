package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrTransportUnavailable is returned when there is no active session handle or the backend is unreachable.
	ErrTransportUnavailable = zerr.New("backend transport unavailable")

	// ErrRemoteCallFailed is returned when the backend rejects or fails a call.
	ErrRemoteCallFailed = zerr.New("remote call failed")

	// ErrValidationFailed is returned when client-side input checks block a submission.
	ErrValidationFailed = zerr.New("validation failed")

	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = zerr.New("record not found")

	// ErrForbidden is returned when the caller may not perform an operation on a record.
	ErrForbidden = zerr.New("operation not permitted for caller")

	// ErrInvalidTransition is returned when the session is asked to move to a state it cannot reach.
	ErrInvalidTransition = zerr.New("invalid session transition")

	// ErrNotAuthenticated is returned when an operation requires a signed-in identity.
	ErrNotAuthenticated = zerr.New("not signed in")

	// ErrQueryDisabled is returned when a typed query is read while its gate is closed.
	ErrQueryDisabled = zerr.New("query disabled")

	// ErrUnexpectedPayload is returned when a cached value has a different type than requested.
	ErrUnexpectedPayload = zerr.New("unexpected cached payload type")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrCredentialsReadFailed is returned when the stored credentials cannot be read.
	ErrCredentialsReadFailed = zerr.New("failed to read credentials")

	// ErrCredentialsWriteFailed is returned when the credentials cannot be persisted.
	ErrCredentialsWriteFailed = zerr.New("failed to write credentials")

	// ErrQuizImportFailed is returned when a quiz file cannot be loaded.
	ErrQuizImportFailed = zerr.New("failed to import quiz")

	// ErrUploadFailed is returned when a file upload does not complete.
	ErrUploadFailed = zerr.New("upload failed")

	// ErrWatchFailed is returned when a directory cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch directory")

	// ErrServeFailed is returned when the development backend cannot start.
	ErrServeFailed = zerr.New("failed to start backend server")

	// ErrInvalidOutputMode is returned for an unknown --output-mode value.
	ErrInvalidOutputMode = zerr.New("invalid output mode")

	// ErrCommandFailed wraps failures that were already reported to the user.
	ErrCommandFailed = zerr.New("command failed")
)

// ErrorKind classifies failures for presentation.
type ErrorKind uint8

const (
	// KindNone means there is no error.
	KindNone ErrorKind = iota
	// KindTransportUnavailable means no backend handle could be used.
	KindTransportUnavailable
	// KindRemoteCallFailed means the backend reported a failure.
	KindRemoteCallFailed
	// KindValidationFailed means input was rejected before any remote call.
	KindValidationFailed
	// KindOther is any error outside the taxonomy.
	KindOther
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindTransportUnavailable:
		return "transport_unavailable"
	case KindRemoteCallFailed:
		return "remote_call_failed"
	case KindValidationFailed:
		return "validation_failed"
	default:
		return "other"
	}
}

// KindOf classifies err against the error taxonomy.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrValidationFailed):
		return KindValidationFailed
	case errors.Is(err, ErrTransportUnavailable):
		return KindTransportUnavailable
	case errors.Is(err, ErrRemoteCallFailed), errors.Is(err, ErrNotFound), errors.Is(err, ErrForbidden):
		return KindRemoteCallFailed
	default:
		return KindOther
	}
}

// NewValidationError tags a field problem as a validation failure.
func NewValidationError(field, problem string) error {
	return errors.Join(ErrValidationFailed, zerr.With(zerr.New(problem), "field", field))
}
