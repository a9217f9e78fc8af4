package studysync_test

import (
	"context"
	"testing"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/core/ports"
	"go.trai.ch/cram/internal/core/ports/mocks"
	"go.trai.ch/cram/internal/engine/querycache"
	"go.trai.ch/cram/internal/engine/studysync"
	"go.uber.org/mock/gomock"
)

type fakeSession struct {
	principal domain.Principal
}

func (s *fakeSession) Authenticated() bool           { return !s.principal.IsAnonymous() }
func (s *fakeSession) Principal() domain.Principal { return s.principal }

type harness struct {
	client   *studysync.Client
	backend  *mocks.MockBackend
	notifier *mocks.MockNotifier
	cache    *querycache.Store
	session  *fakeSession
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	backend := mocks.NewMockBackend(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		}).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	cache := querycache.New()
	session := &fakeSession{principal: "student-1"}
	return &harness{
		client:   studysync.New(backend, cache, session, notifier, tracer, log),
		backend:  backend,
		notifier: notifier,
		cache:    cache,
		session:  session,
	}
}
