// Package remote connects the client to the study backend over gRPC and serves the
// in-memory backend for development.
//
// The service is described by hand instead of generated stubs. Every unary method takes
// a Struct of named arguments and returns a single Value; UploadBlob is a client stream
// of byte chunks.
package remote

import (
	"context"
	"errors"
	"io"
	"time"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var _ ports.BackendConn = (*Client)(nil)

// Client implements ports.BackendConn over a gRPC connection.
type Client struct {
	conn    *grpc.ClientConn
	timeout time.Duration
	tracer  ports.Tracer
}

func newClient(conn *grpc.ClientConn, timeout time.Duration, tracer ports.Tracer) *Client {
	return &Client{conn: conn, timeout: timeout, tracer: tracer}
}

// Close implements ports.BackendConn.
func (c *Client) Close() error {
	return c.conn.Close()
}

// call invokes a unary method and decodes its result into out, which may be nil.
func (c *Client) call(ctx context.Context, method string, a args, out any) error {
	req, err := encodeArgs(a)
	if err != nil {
		return errors.Join(domain.ErrRemoteCallFailed, zerr.With(err, "method", method))
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp := &structpb.Value{}
	if err := c.conn.Invoke(ctx, fullMethod(method), req, resp); err != nil {
		return fromStatus(method, err)
	}
	if err := decodeValue(resp, out); err != nil {
		return errors.Join(domain.ErrRemoteCallFailed, zerr.With(err, "method", method))
	}
	return nil
}

// GetCallerProfile implements ports.Backend.
func (c *Client) GetCallerProfile(ctx context.Context) (*domain.UserProfile, error) {
	var out *domain.UserProfile
	err := c.call(ctx, methodGetCallerProfile, nil, &out)
	return out, err
}

// SaveCallerProfile implements ports.Backend.
func (c *Client) SaveCallerProfile(ctx context.Context, profile domain.UserProfile) error {
	return c.call(ctx, methodSaveCallerProfile, args{"profile": profile}, nil)
}

// GetUserProfile implements ports.Backend.
func (c *Client) GetUserProfile(ctx context.Context, user domain.Principal) (*domain.UserProfile, error) {
	var out *domain.UserProfile
	err := c.call(ctx, methodGetUserProfile, args{"user": user}, &out)
	return out, err
}

// GetCallerRole implements ports.Backend.
func (c *Client) GetCallerRole(ctx context.Context) (domain.UserRole, error) {
	var out domain.UserRole
	err := c.call(ctx, methodGetCallerRole, nil, &out)
	return out, err
}

// AssignRole implements ports.Backend.
func (c *Client) AssignRole(ctx context.Context, user domain.Principal, role domain.UserRole) error {
	return c.call(ctx, methodAssignRole, args{"user": user, "role": role}, nil)
}

// IsCallerAdmin implements ports.Backend.
func (c *Client) IsCallerAdmin(ctx context.Context) (bool, error) {
	var out bool
	err := c.call(ctx, methodIsCallerAdmin, nil, &out)
	return out, err
}

// ListFlashcards implements ports.Backend.
func (c *Client) ListFlashcards(ctx context.Context) ([]domain.Flashcard, error) {
	var out []domain.Flashcard
	err := c.call(ctx, methodListFlashcards, nil, &out)
	return out, err
}

// FlashcardsByTopic implements ports.Backend.
func (c *Client) FlashcardsByTopic(ctx context.Context, topic string) ([]domain.Flashcard, error) {
	var out []domain.Flashcard
	err := c.call(ctx, methodFlashcardsByTopic, args{"topic": topic}, &out)
	return out, err
}

// FlashcardsByDifficulty implements ports.Backend.
func (c *Client) FlashcardsByDifficulty(ctx context.Context, difficulty string) ([]domain.Flashcard, error) {
	var out []domain.Flashcard
	err := c.call(ctx, methodFlashcardsByDifficulty, args{"difficulty": difficulty}, &out)
	return out, err
}

// GetFlashcard implements ports.Backend.
func (c *Client) GetFlashcard(ctx context.Context, id string) (*domain.Flashcard, error) {
	var out *domain.Flashcard
	err := c.call(ctx, methodGetFlashcard, args{"id": id}, &out)
	return out, err
}

// CreateFlashcard implements ports.Backend.
func (c *Client) CreateFlashcard(ctx context.Context, input domain.FlashcardInput) (string, error) {
	var out string
	err := c.call(ctx, methodCreateFlashcard, args{"input": input}, &out)
	return out, err
}

// EditFlashcard implements ports.Backend.
func (c *Client) EditFlashcard(ctx context.Context, id string, input domain.FlashcardInput) error {
	return c.call(ctx, methodEditFlashcard, args{"id": id, "input": input}, nil)
}

// DeleteFlashcard implements ports.Backend.
func (c *Client) DeleteFlashcard(ctx context.Context, id string) error {
	return c.call(ctx, methodDeleteFlashcard, args{"id": id}, nil)
}

// ListNotes implements ports.Backend.
func (c *Client) ListNotes(ctx context.Context) ([]domain.StudyNote, error) {
	var out []domain.StudyNote
	err := c.call(ctx, methodListNotes, nil, &out)
	return out, err
}

// NotesByTopic implements ports.Backend.
func (c *Client) NotesByTopic(ctx context.Context, topic string) ([]domain.StudyNote, error) {
	var out []domain.StudyNote
	err := c.call(ctx, methodNotesByTopic, args{"topic": topic}, &out)
	return out, err
}

// GetNote implements ports.Backend.
func (c *Client) GetNote(ctx context.Context, id string) (*domain.StudyNote, error) {
	var out *domain.StudyNote
	err := c.call(ctx, methodGetNote, args{"id": id}, &out)
	return out, err
}

// CreateNote implements ports.Backend.
func (c *Client) CreateNote(ctx context.Context, input domain.NoteInput) (string, error) {
	var out string
	err := c.call(ctx, methodCreateNote, args{"input": input}, &out)
	return out, err
}

// DeleteNote implements ports.Backend.
func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.call(ctx, methodDeleteNote, args{"id": id}, nil)
}

// ListQuizzes implements ports.Backend.
func (c *Client) ListQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	var out []domain.Quiz
	err := c.call(ctx, methodListQuizzes, nil, &out)
	return out, err
}

// QuizzesByTopic implements ports.Backend.
func (c *Client) QuizzesByTopic(ctx context.Context, topic string) ([]domain.Quiz, error) {
	var out []domain.Quiz
	err := c.call(ctx, methodQuizzesByTopic, args{"topic": topic}, &out)
	return out, err
}

// GetQuiz implements ports.Backend.
func (c *Client) GetQuiz(ctx context.Context, id string) (*domain.Quiz, error) {
	var out *domain.Quiz
	err := c.call(ctx, methodGetQuiz, args{"id": id}, &out)
	return out, err
}

// SaveQuiz implements ports.Backend.
func (c *Client) SaveQuiz(
	ctx context.Context,
	questions []domain.QuizQuestion,
	topic, difficulty string,
) (string, error) {
	var out string
	err := c.call(ctx, methodSaveQuiz, args{
		"questions":  questions,
		"topic":      topic,
		"difficulty": difficulty,
	}, &out)
	return out, err
}

// ListMyAttempts implements ports.Backend.
func (c *Client) ListMyAttempts(ctx context.Context) ([]domain.QuizAttempt, error) {
	var out []domain.QuizAttempt
	err := c.call(ctx, methodListMyAttempts, nil, &out)
	return out, err
}

// SaveAttempt implements ports.Backend.
func (c *Client) SaveAttempt(ctx context.Context, attempt domain.QuizAttempt) error {
	return c.call(ctx, methodSaveAttempt, args{"attempt": attempt}, nil)
}

// ListFiles implements ports.Backend.
func (c *Client) ListFiles(ctx context.Context) ([]domain.FileMetadata, error) {
	var out []domain.FileMetadata
	err := c.call(ctx, methodListFiles, nil, &out)
	return out, err
}

// FilesByUser implements ports.Backend.
func (c *Client) FilesByUser(ctx context.Context, user domain.Principal) ([]domain.FileMetadata, error) {
	var out []domain.FileMetadata
	err := c.call(ctx, methodFilesByUser, args{"user": user}, &out)
	return out, err
}

// GetFile implements ports.Backend.
func (c *Client) GetFile(ctx context.Context, id string) (*domain.FileMetadata, error) {
	var out *domain.FileMetadata
	err := c.call(ctx, methodGetFile, args{"id": id}, &out)
	return out, err
}

// SaveFileReference implements ports.Backend.
func (c *Client) SaveFileReference(ctx context.Context, name, fileType string, blob domain.BlobRef) (string, error) {
	var out string
	err := c.call(ctx, methodSaveFileReference, args{"name": name, "fileType": fileType, "blob": blob}, &out)
	return out, err
}

// DeleteFile implements ports.Backend.
func (c *Client) DeleteFile(ctx context.Context, id string) error {
	return c.call(ctx, methodDeleteFile, args{"id": id}, nil)
}

// Search implements ports.Backend.
func (c *Client) Search(ctx context.Context, term string) (domain.SearchResult, error) {
	var out domain.SearchResult
	err := c.call(ctx, methodSearch, args{"term": term}, &out)
	return out, err
}

// UploadBlob implements ports.Backend. The request timeout does not apply to uploads.
func (c *Client) UploadBlob(ctx context.Context, content io.Reader) (domain.BlobRef, error) {
	ctx, span := c.tracer.Start(ctx, "rpc "+methodUploadBlob, ports.RemoteCall(methodUploadBlob))
	defer span.End()

	ref, err := c.uploadBlob(ctx, content)
	if err != nil {
		span.RecordError(err)
		return domain.BlobRef{}, err
	}
	span.SetAttribute("blob.size", ref.Size)
	return ref, nil
}

func (c *Client) uploadBlob(ctx context.Context, content io.Reader) (domain.BlobRef, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	desc := &grpc.StreamDesc{StreamName: methodUploadBlob, ClientStreams: true}
	stream, err := c.conn.NewStream(ctx, desc, fullMethod(methodUploadBlob))
	if err != nil {
		return domain.BlobRef{}, fromStatus(methodUploadBlob, err)
	}

	buf := make([]byte, uploadChunkSize)
	for {
		n, readErr := content.Read(buf)
		if n > 0 {
			if err := stream.SendMsg(wrapperspb.Bytes(buf[:n])); err != nil {
				// The real cause is reported by RecvMsg once the stream is broken.
				if errors.Is(err, io.EOF) {
					break
				}
				return domain.BlobRef{}, fromStatus(methodUploadBlob, err)
			}
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return domain.BlobRef{}, errors.Join(domain.ErrUploadFailed, zerr.Wrap(readErr, "read upload content"))
		}
	}

	if err := stream.CloseSend(); err != nil {
		return domain.BlobRef{}, fromStatus(methodUploadBlob, err)
	}

	resp := &structpb.Value{}
	if err := stream.RecvMsg(resp); err != nil {
		return domain.BlobRef{}, fromStatus(methodUploadBlob, err)
	}

	var ref domain.BlobRef
	if err := decodeValue(resp, &ref); err != nil {
		return domain.BlobRef{}, errors.Join(domain.ErrRemoteCallFailed, zerr.With(err, "method", methodUploadBlob))
	}
	return ref, nil
}
