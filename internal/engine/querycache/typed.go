package querycache

import (
	"context"

	"go.trai.ch/cram/internal/core/domain"
)

// Value extracts the payload of entry as T.
// It reports false when the entry holds no value or one of another type.
func Value[T any](entry domain.QueryEntry) (T, bool) {
	v, ok := entry.Value.(T)
	return v, ok
}

// Query reads key through s with a typed fetcher and returns the entry along with its typed payload.
// The payload of a loading or failed entry is the last value fetched, if any.
func Query[T any](
	ctx context.Context,
	s *Store,
	key domain.QueryKey,
	fetch func(context.Context) (T, error),
	enabled bool,
) (T, domain.QueryEntry) {
	entry := s.Read(ctx, key, erase(fetch), enabled)
	v, _ := Value[T](entry)
	return v, entry
}

// Mutate runs a typed mutation through s and invalidates rule's prefixes on success.
func Mutate[T any](
	ctx context.Context,
	s *Store,
	rule domain.InvalidationRule,
	mutate func(context.Context) (T, error),
) domain.Result[T] {
	res := s.Write(ctx, MutationFunc(erase(mutate)), rule)
	if err := res.Err(); err != nil {
		return domain.Err[T](err)
	}
	v, _ := res.Value().(T)
	return domain.Ok(v)
}

// Fetch adapts a typed fetcher to the untyped form stored in the cache.
func Fetch[T any](fetch func(context.Context) (T, error)) Fetcher {
	return erase(fetch)
}

func erase[T any](fn func(context.Context) (T, error)) Fetcher {
	return func(ctx context.Context) (any, error) {
		v, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}
