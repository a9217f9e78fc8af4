package ports

// Notifier surfaces the outcome of a user action once, as a transient message.
//
//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	Success(msg string)
	Failure(msg string, err error)
}
