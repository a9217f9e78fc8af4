package remote

import (
	"context"
	"strings"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/core/ports"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// withPrincipal copies the caller carried by ctx into the outgoing metadata.
func withPrincipal(ctx context.Context) context.Context {
	if p, ok := domain.CallerFrom(ctx); ok {
		return metadata.AppendToOutgoingContext(ctx, PrincipalHeader, p.String())
	}
	return ctx
}

// principalFrom reads the caller from incoming metadata.
func principalFrom(ctx context.Context) (domain.Principal, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	values := md.Get(PrincipalHeader)
	if len(values) == 0 {
		return "", false
	}
	p := domain.Principal(strings.TrimSpace(values[0]))
	return p, !p.IsAnonymous()
}

func principalUnaryInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withPrincipal(ctx), method, req, reply, cc, opts...)
}

func principalStreamInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	return streamer(withPrincipal(ctx), desc, cc, method, opts...)
}

// tracingUnaryInterceptor wraps every unary call in a client span named after the method.
func tracingUnaryInterceptor(tracer ports.Tracer) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		name := method[strings.LastIndex(method, "/")+1:]
		ctx, span := tracer.Start(ctx, "rpc "+name, ports.RemoteCall(name))
		defer span.End()

		err := invoker(ctx, method, req, reply, cc, opts...)
		if err != nil {
			span.RecordError(err)
		}
		return err
	}
}

// callerUnaryInterceptor exposes the request principal to the backend and holds off the idle stop while the call runs.
func callerUnaryInterceptor(lifecycle *Lifecycle) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		defer lifecycle.Begin()()
		if p, ok := principalFrom(ctx); ok {
			ctx = domain.WithCaller(ctx, p)
		}
		return handler(ctx, req)
	}
}

func callerStreamInterceptor(lifecycle *Lifecycle) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		defer lifecycle.Begin()()
		ctx := ss.Context()
		if p, ok := principalFrom(ctx); ok {
			ss = &callerStream{ServerStream: ss, ctx: domain.WithCaller(ctx, p)}
		}
		return handler(srv, ss)
	}
}

type callerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *callerStream) Context() context.Context {
	return s.ctx
}
