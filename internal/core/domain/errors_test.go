package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domain.ErrorKind
	}{
		{name: "nil", err: nil, want: domain.KindNone},
		{name: "transport", err: errors.Join(domain.ErrTransportUnavailable, errors.New("dial")), want: domain.KindTransportUnavailable},
		{name: "remote", err: zerr.Wrap(errors.Join(domain.ErrRemoteCallFailed, errors.New("denied")), "save note"), want: domain.KindRemoteCallFailed},
		{name: "not found", err: fmt.Errorf("lookup: %w", domain.ErrNotFound), want: domain.KindRemoteCallFailed},
		{name: "validation", err: domain.NewValidationError("title", "must not be empty"), want: domain.KindValidationFailed},
		{name: "other", err: errors.New("disk full"), want: domain.KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.KindOf(tt.err))
		})
	}
}

func TestNewValidationError(t *testing.T) {
	err := domain.NewValidationError("question", "must not be empty")

	assert.ErrorIs(t, err, domain.ErrValidationFailed)
	assert.Contains(t, err.Error(), "must not be empty")
	assert.Equal(t, "validation_failed", domain.KindOf(err).String())
}

func TestResult(t *testing.T) {
	ok := domain.Ok(3)
	v, err := ok.Get()
	assert.Equal(t, 3, v)
	assert.NoError(t, err)
	assert.True(t, ok.IsOk())
	assert.Equal(t, domain.KindNone, ok.Kind())
	assert.Empty(t, ok.Message())

	failed := domain.Err[int](errors.Join(domain.ErrTransportUnavailable, errors.New("no handle")))
	assert.False(t, failed.IsOk())
	assert.Zero(t, failed.Value())
	assert.Equal(t, domain.KindTransportUnavailable, failed.Kind())
	assert.Contains(t, failed.Message(), "no handle")
}
