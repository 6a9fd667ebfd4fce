package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"ps5-sdk-setup/internal/config"
	"ps5-sdk-setup/internal/installer"
	"ps5-sdk-setup/internal/logger"
	"ps5-sdk-setup/internal/prompt"
)

var (
	// debug indicates whether debug logging should be enabled.
	// It also streams package-manager and download output live (--debug).
	debug bool

	// configPath points at an optional YAML file overriding the built-in settings.
	// It's passed via the `--config` or `-c` flag; empty means defaults only.
	configPath string

	// assumeYes answers the reinstall question with yes and accepts the
	// default host and port (--yes / -y).
	assumeYes bool
)

// newSystem returns the host the installer acts on.
// Tests swap it to fake the effective user or the command runner.
var newSystem = func() installer.System {
	sys := installer.RealSystem{}
	if logger.DebugEnabled() {
		// Show apt-get/dnf/brew/wget progress as it happens instead of only on failure
		sys.Stdout = os.Stdout
		sys.Stderr = os.Stderr
	}
	return sys
}

// rootCmd is the base command for the CLI tool `ps5-sdk-setup`.
// Invoked without a subcommand it performs the full installation.
var rootCmd = &cobra.Command{
	Use:   "ps5-sdk-setup",                              // The name of the CLI tool
	Short: "Install the PS5 payload SDK on this machine", // Short description shown in help output

	// main prints the error itself, with the logger's colour and prefix.
	SilenceUsage:  true,
	SilenceErrors: true,

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstall()
	},
}

// Execute parses args, runs the selected command and returns its error
// so the caller can decide the process exit status.
func Execute(args []string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// newInstaller loads the configuration, wires the live host into an Installer
// and refuses to continue as root. Every command that changes the host goes
// through here, so `sudo ps5-sdk-setup env` aborts like `install` does.
func newInstaller() (*installer.Installer, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("[DEBUG] Using install dir %s and archive %s\n", cfg.InstallDir, cfg.ArchiveURL)

	inst, err := installer.New(cfg, installer.Options{
		System:   newSystem(),
		Prompter: prompt.New(assumeYes),
	})
	if err != nil {
		return nil, err
	}

	// Abort before any prompt, package install or profile write
	if err := inst.Preflight(); err != nil {
		return nil, err
	}
	return inst, nil
}

// init registers the global flags shared by every subcommand.
func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging and stream command output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML file overriding the built-in settings")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Reinstall without asking and accept default host/port")
}
