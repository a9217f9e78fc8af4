package domain

// Result carries either a value or the error that prevented it.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err wraps a failure.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Get returns the value and error in Go's usual order.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Value returns the value, which is the zero value on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure, if any.
func (r Result[T]) Err() error {
	return r.err
}

// IsOk reports whether the result holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Kind classifies the failure.
func (r Result[T]) Kind() ErrorKind {
	return KindOf(r.err)
}

// Message returns the failure text, or an empty string on success.
func (r Result[T]) Message() string {
	if r.err == nil {
		return ""
	}
	return r.err.Error()
}
