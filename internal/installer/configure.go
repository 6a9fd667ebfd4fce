package installer

import (
	"fmt"
	"strconv"

	"ps5-sdk-setup/internal/logger"
	"ps5-sdk-setup/internal/profile"
)

// Configure exports the SDK environment.
// The SDK path line and the host/port lines are each guarded by their own
// marker, so repeated runs never duplicate them.
func (i *Installer) Configure() error {
	cfg := i.cfg

	// Marker 1: the SDK path export
	hasSDK, err := i.profile.Contains(cfg.SDKEnvVar)
	if err != nil {
		return err
	}
	if hasSDK {
		logger.Info("[INFO] %s already set in %s\n", cfg.SDKEnvVar, i.profile.Path)
	} else if err := i.profile.Append(profile.ExportLine(cfg.SDKEnvVar, cfg.InstallDir)); err != nil {
		return err
	}

	// Marker 2: host and port are asked for and written together
	hasHost, err := i.profile.Contains(cfg.HostEnvVar)
	if err != nil {
		return err
	}
	if hasHost {
		logger.Info("[INFO] %s already set in %s\n", cfg.HostEnvVar, i.profile.Path)
	} else {
		host, port, err := i.askConnection()
		if err != nil {
			return err
		}
		if err := i.profile.Append(
			profile.ExportLine(cfg.HostEnvVar, host),
			profile.ExportLine(cfg.PortEnvVar, port),
		); err != nil {
			return err
		}
	}

	// Only this process and its children see this; the parent shell does not.
	if err := i.sys.Setenv(cfg.SDKEnvVar, cfg.InstallDir); err != nil {
		return fmt.Errorf("failed to set %s: %w", cfg.SDKEnvVar, err)
	}
	logger.Info("[INFO] Restart your terminal or run 'source %s' to pick up %s\n", i.profile.Path, cfg.SDKEnvVar)
	return nil
}

// askConnection prompts for the console address and payload port.
func (i *Installer) askConnection() (string, string, error) {
	host, err := i.prompter.Input("PS5 host address", i.cfg.DefaultHost)
	if err != nil {
		return "", "", err
	}
	port, err := i.prompter.Input("PS5 payload port", i.cfg.DefaultPort)
	if err != nil {
		return "", "", err
	}
	if err := validatePort(port); err != nil {
		return "", "", err
	}
	return host, port, nil
}

// validatePort accepts a decimal TCP port in 1..65535.
func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("%w: %q (expected 1-65535)", ErrInvalidPort, port)
	}
	return nil
}
