package installer

import (
	"fmt"

	"ps5-sdk-setup/internal/config"
	"ps5-sdk-setup/internal/logger"
	"ps5-sdk-setup/internal/platform"
)

// EnsureDependencies installs OS packages only when the downloader is missing.
func (i *Installer) EnsureDependencies(p platform.Platform) error {
	if path, err := i.sys.LookPath(i.cfg.Downloader); err == nil {
		logger.Debug("[DEBUG] %s found at %s, skipping dependency installation\n", i.cfg.Downloader, path)
		return nil
	}
	logger.Info("[INFO] %s not found, installing dependencies...\n", i.cfg.Downloader)
	return i.InstallDependencies(p)
}

// InstallDependencies runs the package-manager commands for p.
// Required packages must install; optional build tools only warn on failure.
func (i *Installer) InstallDependencies(p platform.Platform) error {
	// Pick the literal command sequence for this platform
	var set config.PackageSet
	switch p {
	case platform.Debian:
		set = i.cfg.Packages.Debian
	case platform.Fedora:
		set = i.cfg.Packages.Fedora
	case platform.MacOS:
		// Homebrew cannot be bootstrapped for the user, it has its own installer
		if _, err := i.sys.LookPath("brew"); err != nil {
			return fmt.Errorf("%w: install it from https://brew.sh and re-run", ErrMissingBootstrap)
		}
		set = i.cfg.Packages.MacOS
	default:
		// Unknown hosts stop here, before any download or filesystem change
		return fmt.Errorf("%w: please install wget, unzip, clang and lld manually, then re-run", ErrUnsupportedPlatform)
	}

	if len(set.Update) > 0 {
		logger.Info("[INFO] Updating package index...\n")
		if err := i.run(set.Privileged, set.Update...); err != nil {
			return err
		}
	}

	if len(set.Required) > 0 {
		logger.Info("[INFO] Installing required packages...\n")
		if err := i.run(set.Privileged, set.Required...); err != nil {
			return err
		}
	}

	// Optional build tools are best-effort: log and keep going
	if len(set.Optional) > 0 {
		logger.Info("[INFO] Installing optional build tools...\n")
		if err := i.run(set.Privileged, set.Optional...); err != nil {
			logger.Warn("[WARN] Optional build tools failed to install, continuing: %v\n", err)
		}
	}
	return nil
}
