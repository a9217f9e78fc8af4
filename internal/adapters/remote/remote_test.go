package remote_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cram/internal/adapters/memory"
	"go.trai.ch/cram/internal/adapters/remote"
	"go.trai.ch/cram/internal/adapters/telemetry"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/core/ports"
	"go.trai.ch/cram/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

var fixed = time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

type harness struct {
	backend *memory.Backend
	conn    ports.BackendConn
}

func as(p string) context.Context {
	return domain.WithCaller(context.Background(), domain.Principal(p))
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return log
}

func start(t *testing.T, tracer ports.Tracer, opts ...memory.Option) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	n := 0
	backend := memory.New(append([]memory.Option{
		memory.WithClock(func() time.Time { return fixed }),
		memory.WithIDs(func() string {
			n++
			return fmt.Sprintf("rec-%d", n)
		}),
	}, opts...)...)

	lis := bufconn.Listen(1 << 20)
	server := remote.NewServer(backend, remote.NewLifecycle(0), quietLogger(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, lis) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	connector := remote.NewConnector(tracer, remote.WithDialOptions(
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	))
	conn, err := connector.Connect(context.Background(), &domain.Config{
		Endpoint:       "passthrough:///bufnet",
		RequestTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &harness{backend: backend, conn: conn}
}

func TestRemote_FlashcardRoundTrip(t *testing.T) {
	h := start(t, telemetry.NewNoOpTracer())
	ctx := as("ada")

	id, err := h.conn.CreateFlashcard(ctx, domain.FlashcardInput{
		Topic: "Biology", Question: "Powerhouse?", Answer: "Mitochondria", Difficulty: "easy",
	})
	require.NoError(t, err)
	assert.Equal(t, "rec-1", id)

	cards, err := h.conn.ListFlashcards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, domain.Principal("ada"), cards[0].CreatedBy, "principal travels in metadata")
	assert.True(t, fixed.Equal(cards[0].CreatedAt))

	card, err := h.conn.GetFlashcard(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, "Mitochondria", card.Answer)

	missing, err := h.conn.GetFlashcard(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, h.conn.EditFlashcard(ctx, id, domain.FlashcardInput{
		Topic: "Biology", Question: "Powerhouse?", Answer: "Mitochondria", Difficulty: "hard",
	}))
	hard, err := h.conn.FlashcardsByDifficulty(ctx, "hard")
	require.NoError(t, err)
	assert.Len(t, hard, 1)

	require.NoError(t, h.conn.DeleteFlashcard(ctx, id))
	cards, err = h.conn.ListFlashcards(ctx)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestRemote_ProfilesAndRoles(t *testing.T) {
	h := start(t, telemetry.NewNoOpTracer())

	profile, err := h.conn.GetCallerProfile(as("ada"))
	require.NoError(t, err)
	assert.Nil(t, profile)

	require.NoError(t, h.conn.SaveCallerProfile(as("ada"), domain.UserProfile{Name: "Ada"}))
	profile, err = h.conn.GetUserProfile(as("grace"), "ada")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Ada", profile.Name)

	admin, err := h.conn.IsCallerAdmin(as("ada"))
	require.NoError(t, err)
	assert.True(t, admin)

	role, err := h.conn.GetCallerRole(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleGuest, role)

	require.NoError(t, h.conn.AssignRole(as("ada"), "grace", domain.RoleAdmin))
	role, err = h.conn.GetCallerRole(as("grace"))
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, role)
}

func TestRemote_QuizzesAndSearch(t *testing.T) {
	h := start(t, telemetry.NewNoOpTracer())
	ctx := as("ada")

	quizID, err := h.conn.SaveQuiz(ctx, []domain.QuizQuestion{
		{Question: "Speed of light?", Options: []string{"c", "g"}, CorrectAnswer: "c"},
	}, "Physics", "medium")
	require.NoError(t, err)

	quiz, err := h.conn.GetQuiz(ctx, quizID)
	require.NoError(t, err)
	require.NotNil(t, quiz)
	assert.Equal(t, []string{"c", "g"}, quiz.Questions[0].Options)

	require.NoError(t, h.conn.SaveAttempt(ctx, domain.QuizAttempt{Topic: "Physics", Score: 1, TotalQuestions: 1}))
	attempts, err := h.conn.ListMyAttempts(ctx)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, 1, attempts[0].Score)

	_, err = h.conn.CreateNote(ctx, domain.NoteInput{Title: "Light", Content: "Waves and particles", Topic: "Physics"})
	require.NoError(t, err)

	result, err := h.conn.Search(ctx, "light")
	require.NoError(t, err)
	assert.Len(t, result.Notes, 1)
	assert.Len(t, result.Quizzes, 1)
	assert.Empty(t, result.Flashcards)
}

func TestRemote_ErrorTaxonomy(t *testing.T) {
	h := start(t, telemetry.NewNoOpTracer())

	id, err := h.conn.CreateNote(as("ada"), domain.NoteInput{Title: "t", Content: "c", Topic: "x"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		call    func() error
		wantIs  []error
		message string
	}{
		{
			name:   "anonymous caller",
			call:   func() error { _, err := h.conn.CreateNote(context.Background(), domain.NoteInput{}); return err },
			wantIs: []error{domain.ErrRemoteCallFailed, domain.ErrNotAuthenticated},
		},
		{
			name:   "not the owner",
			call:   func() error { return h.conn.DeleteNote(as("grace"), id) },
			wantIs: []error{domain.ErrRemoteCallFailed, domain.ErrForbidden},
		},
		{
			name:   "missing record",
			call:   func() error { return h.conn.DeleteNote(as("ada"), "nope") },
			wantIs: []error{domain.ErrRemoteCallFailed, domain.ErrNotFound},
		},
		{
			name:    "rejected by the backend",
			call:    func() error { return h.conn.SaveCallerProfile(as("ada"), domain.UserProfile{Name: " "}) },
			wantIs:  []error{domain.ErrRemoteCallFailed},
			message: "name must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			for _, target := range tt.wantIs {
				require.ErrorIs(t, err, target)
			}
			assert.Equal(t, domain.KindRemoteCallFailed, domain.KindOf(err))
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func TestRemote_UploadBlob(t *testing.T) {
	h := start(t, telemetry.NewNoOpTracer())
	ctx := as("ada")
	content := bytes.Repeat([]byte("lecture notes\n"), 10_000)

	ref, err := h.conn.UploadBlob(ctx, bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), ref.Size)
	assert.Equal(t, domain.FormatDigest(xxhash.Sum64(content)), ref.Digest)

	stored, ok := h.backend.Blob(ref.ID)
	require.True(t, ok)
	assert.Equal(t, content, stored)

	fileID, err := h.conn.SaveFileReference(ctx, "lecture.txt", "text/plain", ref)
	require.NoError(t, err)

	file, err := h.conn.GetFile(ctx, fileID)
	require.NoError(t, err)
	require.NotNil(t, file)
	assert.Equal(t, ref, file.Blob)

	mine, err := h.conn.FilesByUser(ctx, "ada")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestRemote_UploadBlobTooLarge(t *testing.T) {
	h := start(t, telemetry.NewNoOpTracer(), memory.WithMaxBlobSize(8))

	_, err := h.conn.UploadBlob(as("ada"), bytes.NewReader([]byte("more than eight bytes")))
	require.ErrorIs(t, err, domain.ErrRemoteCallFailed)
	assert.Contains(t, err.Error(), "size limit")
}

var errDiskGone = errors.New("disk gone")

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errDiskGone
}

func TestRemote_UploadBlobReadFailure(t *testing.T) {
	h := start(t, telemetry.NewNoOpTracer())

	_, err := h.conn.UploadBlob(as("ada"), failingReader{})
	require.ErrorIs(t, err, domain.ErrUploadFailed)
	require.ErrorIs(t, err, errDiskGone)
}

func TestRemote_UnreachableBackend(t *testing.T) {
	connector := remote.NewConnector(telemetry.NewNoOpTracer(), remote.WithDialOptions(
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return nil, errors.New("connection refused")
		}),
	))
	conn, err := connector.Connect(context.Background(), &domain.Config{
		Endpoint:       "passthrough:///nowhere",
		RequestTimeout: time.Second,
	})
	require.NoError(t, err, "connecting is lazy")
	defer func() { _ = conn.Close() }()

	_, err = conn.ListNotes(as("ada"))
	require.ErrorIs(t, err, domain.ErrTransportUnavailable)
	assert.Equal(t, domain.KindTransportUnavailable, domain.KindOf(err))
}

func TestRemote_TracesUnaryCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)

	tracer.EXPECT().Start(gomock.Any(), "rpc ListNotes", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, opts ...ports.SpanOption) (context.Context, ports.Span) {
			var cfg ports.SpanConfig
			for _, opt := range opts {
				opt(&cfg)
			}
			assert.Equal(t, "ListNotes", cfg.RemoteMethod)
			return ctx, span
		})
	span.EXPECT().End()

	h := start(t, tracer)
	_, err := h.conn.ListNotes(as("ada"))
	require.NoError(t, err)
}
