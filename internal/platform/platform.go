// Package platform classifies the host operating system into the families
// the installer knows how to provision.
package platform

import (
	"os"
	"runtime"
	"strings"
)

// Platform is the closed set of host families.
type Platform int

const (
	Unknown Platform = iota
	Debian
	Fedora
	MacOS
)

func (p Platform) String() string {
	switch p {
	case Debian:
		return "debian"
	case Fedora:
		return "fedora"
	case MacOS:
		return "macos"
	default:
		return "unknown"
	}
}

// Marker files that identify Linux distributions.
const (
	DebianMarker = "/etc/debian_version"
	FedoraMarker = "/etc/fedora-release"
	RedHatMarker = "/etc/redhat-release"
)

// Probe is the slice of host state detection looks at.
type Probe struct {
	Exists func(path string) bool
	Getenv func(key string) string
	GOOS   string
}

// HostProbe reads the live host.
func HostProbe() Probe {
	return Probe{
		Exists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
		Getenv: os.Getenv,
		GOOS:   runtime.GOOS,
	}
}

// Detect classifies the host. It has no side effects.
func Detect(p Probe) Platform {
	exists := p.Exists
	if exists == nil {
		exists = func(string) bool { return false }
	}
	getenv := p.Getenv
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	switch {
	case exists(DebianMarker):
		return Debian
	case exists(FedoraMarker), exists(RedHatMarker):
		return Fedora
	case strings.HasPrefix(getenv("OSTYPE"), "darwin"), p.GOOS == "darwin":
		return MacOS
	}
	return Unknown
}
