package domain

// SessionState is the authentication state of the client.
type SessionState uint8

const (
	// SessionInitializing is the entry state while the stored identity is resolved.
	SessionInitializing SessionState = iota
	// SessionUnauthenticated means no identity is present.
	SessionUnauthenticated
	// SessionAuthenticated means an identity is present and queries may run.
	SessionAuthenticated
)

// String returns the state name.
func (s SessionState) String() string {
	switch s {
	case SessionInitializing:
		return "initializing"
	case SessionUnauthenticated:
		return "unauthenticated"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Screen is the top-level view selected by the session state.
type Screen uint8

const (
	// ScreenLoading is the placeholder shown while initializing.
	ScreenLoading Screen = iota
	// ScreenWelcome is shown to signed-out visitors.
	ScreenWelcome
	// ScreenDashboard is the tabbed study dashboard.
	ScreenDashboard
)

// Identity is a signed-in principal.
type Identity struct {
	Principal Principal `yaml:"principal"`
	Name      string    `yaml:"name,omitempty"`
}
