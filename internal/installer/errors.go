package installer

import "errors"

// Abort reasons. Each is wrapped with context by the step that hits it.
var (
	ErrRunAsRoot           = errors.New("do not run this installer as root; it uses sudo where needed")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrMissingBootstrap    = errors.New("homebrew is required but was not found")
	ErrNotInstalled        = errors.New("SDK installation directory not found")
	ErrMissingExecutable   = errors.New("required SDK executable not found")
	ErrChecksumMismatch    = errors.New("archive checksum mismatch")
	ErrInvalidPort         = errors.New("invalid port")
)
