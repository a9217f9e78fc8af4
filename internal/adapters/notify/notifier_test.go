package notify_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cram/internal/adapters/notify"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestNotifier_LogsWithoutSubscribers(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	n := notify.New(log)

	cause := errors.Join(domain.ErrRemoteCallFailed, errors.New("note is locked"))

	log.EXPECT().Info("Note created successfully").Times(1)
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrRemoteCallFailed)
		assert.Contains(t, err.Error(), "Failed to delete note")
	}).Times(1)
	log.EXPECT().Warn("Failed to upload file").Times(1)

	n.Success("Note created successfully")
	n.Failure("Failed to delete note", cause)
	n.Failure("Failed to upload file", nil)
}

func TestNotifier_SubscribersReceiveToasts(t *testing.T) {
	ctrl := gomock.NewController(t)
	n := notify.New(mocks.NewMockLogger(ctrl))

	toasts, cancel := n.Subscribe(4)

	n.Success("Quiz saved successfully")
	n.Failure("Failed to save quiz", domain.ErrValidationFailed)

	first := <-toasts
	assert.Equal(t, "Quiz saved successfully", first.Message)
	assert.False(t, first.Failed())

	second := <-toasts
	require.True(t, second.Failed())
	assert.ErrorIs(t, second.Err, domain.ErrValidationFailed)

	cancel()
	cancel()
	_, open := <-toasts
	assert.False(t, open)
}

func TestNotifier_SlowSubscriberDropsToasts(t *testing.T) {
	ctrl := gomock.NewController(t)
	n := notify.New(mocks.NewMockLogger(ctrl))

	toasts, cancel := n.Subscribe(1)
	defer cancel()

	n.Success("first")
	n.Success("second")

	assert.Equal(t, "first", (<-toasts).Message)
	assert.Empty(t, toasts)
}
