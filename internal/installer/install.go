// Package installer installs the PS5 payload SDK: it provisions build
// dependencies, fetches and unpacks the SDK archive, verifies the result and
// exports the SDK environment into the user's shell profile.
//
// Steps run strictly in order and the first failure aborts the run.
package installer

import (
	"ps5-sdk-setup/internal/config"
	"ps5-sdk-setup/internal/logger"
	"ps5-sdk-setup/internal/platform"
	"ps5-sdk-setup/internal/profile"
	"ps5-sdk-setup/internal/prompt"
)

// Options carries the host-facing collaborators. Nil fields get live defaults.
//   - System: command runner, filesystem and environment access.
//   - Prompter: asks the reinstall and host/port questions.
//   - Profile: the shell startup file export lines go into.
//   - Probe: host state used for platform detection.
type Options struct {
	System   System
	Prompter prompt.Prompter
	Profile  *profile.File
	Probe    *platform.Probe
}

// Installer runs the installation steps against one configuration.
type Installer struct {
	cfg      config.Config   // Paths, URL, env var names and package commands
	sys      System          // Everything that touches the host
	prompter prompt.Prompter // Interactive questions
	profile  profile.File    // Shell profile receiving export lines
	probe    platform.Probe  // Inputs for platform detection
}

// New builds an Installer. The profile path is resolved from the config when
// opts.Profile is nil.
func New(cfg config.Config, opts Options) (*Installer, error) {
	i := &Installer{
		cfg:      cfg,
		sys:      opts.System,
		prompter: opts.Prompter,
	}

	// Fall back to the live host for anything the caller did not inject
	if i.sys == nil {
		i.sys = RealSystem{}
	}
	if i.prompter == nil {
		i.prompter = prompt.New(false)
	}
	if opts.Probe != nil {
		i.probe = *opts.Probe
	} else {
		i.probe = platform.HostProbe()
	}

	// Resolve ~/.zshrc, ~/.bashrc or the configured profile path
	if opts.Profile != nil {
		i.profile = *opts.Profile
	} else {
		path, err := profile.ResolvePath(cfg.Profile, cfg.Shell)
		if err != nil {
			return nil, err
		}
		i.profile = profile.File{Path: path}
	}
	return i, nil
}

// Run executes every step in order and returns the first error.
// Detect -> dependencies (if needed) -> acquire -> verify -> configure.
func (i *Installer) Run() error {
	if err := i.Preflight(); err != nil {
		return err
	}

	// Step 1 and 2: classify the host, then install packages only when wget is missing
	p := i.DetectPlatform()
	if err := i.EnsureDependencies(p); err != nil {
		return err
	}

	// Step 3: a declined reinstall is not an error, the remaining steps still run
	outcome, err := i.Acquire()
	if err != nil {
		return err
	}
	logger.Info("[INFO] Acquisition step: %s\n", outcome)

	// Step 4: the install must contain the required executable
	if err := i.Verify(); err != nil {
		return err
	}

	// Step 5: profile exports plus the variable for this process
	if err := i.Configure(); err != nil {
		return err
	}

	logger.Info("[INFO] PS5 payload SDK is ready in %s\n", i.cfg.InstallDir)
	return nil
}

// Preflight refuses to run as the superuser.
// sudo is used per command instead, so profile edits land in the invoking user's home.
func (i *Installer) Preflight() error {
	if i.sys.Geteuid() == 0 {
		return ErrRunAsRoot
	}
	return nil
}

// DetectPlatform classifies the host and logs the result.
func (i *Installer) DetectPlatform() platform.Platform {
	p := platform.Detect(i.probe)
	logger.Info("[INFO] Detected platform: %s\n", p)
	return p
}

// ProfilePath is the shell profile the installer edits.
func (i *Installer) ProfilePath() string {
	return i.profile.Path
}
