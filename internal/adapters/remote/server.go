package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const unixScheme = "unix://"

// Server exposes a ports.Backend as the gRPC study service.
type Server struct {
	backend    ports.Backend
	lifecycle  *Lifecycle
	logger     ports.Logger
	grpcServer *grpc.Server
}

// NewServer creates a server for backend. The lifecycle decides when an idle server stops.
func NewServer(backend ports.Backend, lifecycle *Lifecycle, log ports.Logger) *Server {
	s := &Server{
		backend:   backend,
		lifecycle: lifecycle,
		logger:    log,
		grpcServer: grpc.NewServer(
			grpc.ChainUnaryInterceptor(callerUnaryInterceptor(lifecycle)),
			grpc.ChainStreamInterceptor(callerStreamInterceptor(lifecycle)),
		),
	}
	s.grpcServer.RegisterService(serviceDesc(s), backend)
	return s
}

// ListenAndServe listens on addr and serves until ctx is done or the lifecycle shuts down.
// An address of the form unix:///path listens on a Unix domain socket.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if path, ok := strings.CutPrefix(addr, unixScheme); ok {
		return s.serveUnix(ctx, path)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Join(domain.ErrServeFailed, zerr.With(err, "address", addr))
	}
	return s.Serve(ctx, lis)
}

func (s *Server) serveUnix(ctx context.Context, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return errors.Join(domain.ErrServeFailed, zerr.Wrap(err, "failed to create socket directory"))
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Join(domain.ErrServeFailed, zerr.Wrap(err, "failed to remove stale socket"))
	}

	lis, err := net.Listen("unix", path)
	if err != nil {
		return errors.Join(domain.ErrServeFailed, zerr.With(err, "socket", path))
	}
	defer func() { _ = os.Remove(path) }()

	if err := os.Chmod(path, domain.PrivateFilePerm); err != nil {
		_ = lis.Close()
		return errors.Join(domain.ErrServeFailed, zerr.Wrap(err, "failed to set socket permissions"))
	}
	return s.Serve(ctx, lis)
}

// Serve serves on lis until ctx is done or the lifecycle shuts down.
// A shutdown by the lifecycle is not an error.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.logger.Info(fmt.Sprintf("study backend listening on %s", lis.Addr()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.grpcServer.GracefulStop()
		return ctx.Err()
	case <-s.lifecycle.Done():
		s.logger.Info("study backend idle; shutting down")
		s.grpcServer.GracefulStop()
		return nil
	case err := <-errCh:
		if err != nil {
			return errors.Join(domain.ErrServeFailed, err)
		}
		return nil
	}
}

// handler serves one unary method.
type handler func(ctx context.Context, b ports.Backend, r request) (any, error)

var handlers = map[string]handler{
	methodGetCallerProfile: func(ctx context.Context, b ports.Backend, _ request) (any, error) {
		return b.GetCallerProfile(ctx)
	},
	methodSaveCallerProfile: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		var profile domain.UserProfile
		if err := r.bind("profile", &profile); err != nil {
			return nil, err
		}
		return nil, b.SaveCallerProfile(ctx, profile)
	},
	methodGetUserProfile: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		user, err := r.str("user")
		if err != nil {
			return nil, err
		}
		return b.GetUserProfile(ctx, domain.Principal(user))
	},
	methodGetCallerRole: func(ctx context.Context, b ports.Backend, _ request) (any, error) {
		return b.GetCallerRole(ctx)
	},
	methodAssignRole: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		user, err := r.str("user")
		if err != nil {
			return nil, err
		}
		role, err := r.str("role")
		if err != nil {
			return nil, err
		}
		return nil, b.AssignRole(ctx, domain.Principal(user), domain.UserRole(role))
	},
	methodIsCallerAdmin: func(ctx context.Context, b ports.Backend, _ request) (any, error) {
		return b.IsCallerAdmin(ctx)
	},
	methodListFlashcards: func(ctx context.Context, b ports.Backend, _ request) (any, error) {
		return b.ListFlashcards(ctx)
	},
	methodFlashcardsByTopic: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		topic, err := r.str("topic")
		if err != nil {
			return nil, err
		}
		return b.FlashcardsByTopic(ctx, topic)
	},
	methodFlashcardsByDifficulty: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		difficulty, err := r.str("difficulty")
		if err != nil {
			return nil, err
		}
		return b.FlashcardsByDifficulty(ctx, difficulty)
	},
	methodGetFlashcard: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		id, err := r.str("id")
		if err != nil {
			return nil, err
		}
		return b.GetFlashcard(ctx, id)
	},
	methodCreateFlashcard: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		var input domain.FlashcardInput
		if err := r.bind("input", &input); err != nil {
			return nil, err
		}
		return b.CreateFlashcard(ctx, input)
	},
	methodEditFlashcard: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		id, err := r.str("id")
		if err != nil {
			return nil, err
		}
		var input domain.FlashcardInput
		if err := r.bind("input", &input); err != nil {
			return nil, err
		}
		return nil, b.EditFlashcard(ctx, id, input)
	},
	methodDeleteFlashcard: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		id, err := r.str("id")
		if err != nil {
			return nil, err
		}
		return nil, b.DeleteFlashcard(ctx, id)
	},
	methodListNotes: func(ctx context.Context, b ports.Backend, _ request) (any, error) {
		return b.ListNotes(ctx)
	},
	methodNotesByTopic: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		topic, err := r.str("topic")
		if err != nil {
			return nil, err
		}
		return b.NotesByTopic(ctx, topic)
	},
	methodGetNote: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		id, err := r.str("id")
		if err != nil {
			return nil, err
		}
		return b.GetNote(ctx, id)
	},
	methodCreateNote: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		var input domain.NoteInput
		if err := r.bind("input", &input); err != nil {
			return nil, err
		}
		return b.CreateNote(ctx, input)
	},
	methodDeleteNote: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		id, err := r.str("id")
		if err != nil {
			return nil, err
		}
		return nil, b.DeleteNote(ctx, id)
	},
	methodListQuizzes: func(ctx context.Context, b ports.Backend, _ request) (any, error) {
		return b.ListQuizzes(ctx)
	},
	methodQuizzesByTopic: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		topic, err := r.str("topic")
		if err != nil {
			return nil, err
		}
		return b.QuizzesByTopic(ctx, topic)
	},
	methodGetQuiz: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		id, err := r.str("id")
		if err != nil {
			return nil, err
		}
		return b.GetQuiz(ctx, id)
	},
	methodSaveQuiz: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		var questions []domain.QuizQuestion
		if err := r.bind("questions", &questions); err != nil {
			return nil, err
		}
		topic, err := r.str("topic")
		if err != nil {
			return nil, err
		}
		difficulty, err := r.str("difficulty")
		if err != nil {
			return nil, err
		}
		return b.SaveQuiz(ctx, questions, topic, difficulty)
	},
	methodListMyAttempts: func(ctx context.Context, b ports.Backend, _ request) (any, error) {
		return b.ListMyAttempts(ctx)
	},
	methodSaveAttempt: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		var attempt domain.QuizAttempt
		if err := r.bind("attempt", &attempt); err != nil {
			return nil, err
		}
		return nil, b.SaveAttempt(ctx, attempt)
	},
	methodListFiles: func(ctx context.Context, b ports.Backend, _ request) (any, error) {
		return b.ListFiles(ctx)
	},
	methodFilesByUser: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		user, err := r.str("user")
		if err != nil {
			return nil, err
		}
		return b.FilesByUser(ctx, domain.Principal(user))
	},
	methodGetFile: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		id, err := r.str("id")
		if err != nil {
			return nil, err
		}
		return b.GetFile(ctx, id)
	},
	methodSaveFileReference: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		name, err := r.str("name")
		if err != nil {
			return nil, err
		}
		fileType, err := r.str("fileType")
		if err != nil {
			return nil, err
		}
		var blob domain.BlobRef
		if err := r.bind("blob", &blob); err != nil {
			return nil, err
		}
		return b.SaveFileReference(ctx, name, fileType, blob)
	},
	methodDeleteFile: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		id, err := r.str("id")
		if err != nil {
			return nil, err
		}
		return nil, b.DeleteFile(ctx, id)
	},
	methodSearch: func(ctx context.Context, b ports.Backend, r request) (any, error) {
		term, err := r.str("term")
		if err != nil {
			return nil, err
		}
		return b.Search(ctx, term)
	},
}

func serviceDesc(s *Server) *grpc.ServiceDesc {
	desc := &grpc.ServiceDesc{
		ServiceName: ServiceName,
		HandlerType: (*ports.Backend)(nil),
		Streams: []grpc.StreamDesc{{
			StreamName:    methodUploadBlob,
			Handler:       s.handleUpload,
			ClientStreams: true,
		}},
		Metadata: "cram/backend/v1",
	}
	for name, h := range handlers {
		desc.Methods = append(desc.Methods, grpc.MethodDesc{
			MethodName: name,
			Handler:    s.unary(name, h),
		})
	}
	return desc
}

func (s *Server) unary(name string, h handler) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		req := &structpb.Struct{}
		if err := dec(req); err != nil {
			return nil, err
		}
		run := func(ctx context.Context, req any) (any, error) {
			return s.invoke(ctx, name, srv.(ports.Backend), req.(*structpb.Struct), h)
		}
		if interceptor == nil {
			return run(ctx, req)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(name)}
		return interceptor(ctx, req, info, run)
	}
}

func (s *Server) invoke(
	ctx context.Context,
	name string,
	b ports.Backend,
	req *structpb.Struct,
	h handler,
) (*structpb.Value, error) {
	result, err := h(ctx, b, newRequest(req))
	if err != nil {
		s.logger.Debug(fmt.Sprintf("%s failed: %s", name, flatten(err)))
		return nil, toStatus(err)
	}
	out, err := encodeValue(result)
	if err != nil {
		return nil, toStatus(err)
	}
	return out, nil
}

func (s *Server) handleUpload(srv any, stream grpc.ServerStream) error {
	ref, err := srv.(ports.Backend).UploadBlob(stream.Context(), &chunkReader{stream: stream})
	if err != nil {
		s.logger.Debug(fmt.Sprintf("%s failed: %s", methodUploadBlob, flatten(err)))
		return toStatus(err)
	}
	out, err := encodeValue(ref)
	if err != nil {
		return toStatus(err)
	}
	return stream.SendMsg(out)
}

// chunkReader reads the payload of an UploadBlob stream.
type chunkReader struct {
	stream grpc.ServerStream
	buf    []byte
}

func (r *chunkReader) Read(p []byte) (int, error) {
	for len(r.buf) == 0 {
		chunk := &wrapperspb.BytesValue{}
		if err := r.stream.RecvMsg(chunk); err != nil {
			if errors.Is(err, io.EOF) {
				return 0, io.EOF
			}
			return 0, err
		}
		r.buf = chunk.GetValue()
	}
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}
