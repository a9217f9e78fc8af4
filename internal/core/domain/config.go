package domain

import "time"

// Config is the resolved client configuration.
type Config struct {
	// Endpoint is the backend address, either host:port or unix:///path.
	Endpoint string
	// CredentialsPath is where the signed-in identity is stored.
	CredentialsPath string
	// OutputMode is one of auto, tui or linear.
	OutputMode string
	// JSONLog switches the logger to JSON records.
	JSONLog bool
	// RequestTimeout bounds every remote call.
	RequestTimeout time.Duration
	// Listen is the address used by the development backend.
	Listen string
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:        DefaultEndpoint,
		CredentialsPath: DefaultCredentialsPath(),
		OutputMode:      "auto",
		RequestTimeout:  DefaultRequestTimeout,
		Listen:          DefaultEndpoint,
	}
}
