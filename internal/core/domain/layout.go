package domain

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// AppDirName is the name of the per-user configuration directory.
	AppDirName = "cram"

	// ConfigFileName is the name of the client configuration file.
	ConfigFileName = "cram.yaml"

	// CredentialsFileName is the name of the stored identity file.
	CredentialsFileName = "credentials.yaml"

	// DefaultEndpoint is the backend address used when none is configured.
	DefaultEndpoint = "127.0.0.1:7411"

	// DefaultRequestTimeout bounds a single remote call.
	DefaultRequestTimeout = 15 * time.Second

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultConfigDir returns the per-user directory holding cram files.
// It falls back to a relative .cram directory when the user config dir is unknown.
func DefaultConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return "." + AppDirName
	}
	return filepath.Join(base, AppDirName)
}

// DefaultConfigPath returns the default path of cram.yaml.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), ConfigFileName)
}

// DefaultCredentialsPath returns the default path of the credentials file.
func DefaultCredentialsPath() string {
	return filepath.Join(DefaultConfigDir(), CredentialsFileName)
}
