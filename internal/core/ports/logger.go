package ports

// Logger writes diagnostics to stderr, separate from command output.
// Debug records appear only with --verbose.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	// Error prints err with its cause chain. A nil err is ignored.
	Error(err error)
}
