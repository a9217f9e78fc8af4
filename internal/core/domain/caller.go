package domain

import "context"

type callerKey struct{}

// WithCaller returns a context that carries p as the calling principal.
func WithCaller(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, callerKey{}, p)
}

// CallerFrom returns the principal carried by ctx, if any.
func CallerFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(callerKey{}).(Principal)
	return p, ok && !p.IsAnonymous()
}
