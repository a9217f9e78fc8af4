package remote

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cram/internal/core/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"validation", domain.NewValidationError("name", "name must not be empty"), codes.InvalidArgument},
		{"not found", errors.Join(domain.ErrNotFound, errors.New("note")), codes.NotFound},
		{"anonymous", domain.ErrNotAuthenticated, codes.Unauthenticated},
		{"forbidden", errors.Join(domain.ErrForbidden, errors.New("owner only")), codes.PermissionDenied},
		{"too large", errors.Join(domain.ErrUploadFailed, errors.New("limit")), codes.ResourceExhausted},
		{"other", errors.New("boom"), codes.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := status.FromError(toStatus(tt.err))
			require.True(t, ok)
			assert.Equal(t, tt.want, st.Code())
			assert.NotContains(t, st.Message(), "\n")
		})
	}

	assert.NoError(t, toStatus(nil))
}

func TestFromStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind domain.ErrorKind
		is   error
	}{
		{"unavailable", status.Error(codes.Unavailable, "refused"), domain.KindTransportUnavailable, domain.ErrTransportUnavailable},
		{"deadline", status.Error(codes.DeadlineExceeded, "slow"), domain.KindTransportUnavailable, domain.ErrTransportUnavailable},
		{"not a status", errors.New("broken pipe"), domain.KindTransportUnavailable, domain.ErrTransportUnavailable},
		{"not found", status.Error(codes.NotFound, "gone"), domain.KindRemoteCallFailed, domain.ErrNotFound},
		{"unauthenticated", status.Error(codes.Unauthenticated, "who"), domain.KindRemoteCallFailed, domain.ErrNotAuthenticated},
		{"denied", status.Error(codes.PermissionDenied, "no"), domain.KindRemoteCallFailed, domain.ErrForbidden},
		{"invalid", status.Error(codes.InvalidArgument, "bad"), domain.KindRemoteCallFailed, domain.ErrRemoteCallFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fromStatus(methodListNotes, tt.err)
			require.ErrorIs(t, err, tt.is)
			assert.Equal(t, tt.kind, domain.KindOf(err))
		})
	}

	assert.NoError(t, fromStatus(methodListNotes, nil))
}
