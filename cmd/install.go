package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ps5-sdk-setup/internal/platform"
)

// installCmd runs the full installation; it is also the root command's default.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install dependencies, the SDK archive and the shell environment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstall()
	},
}

// detectCmd prints the detected platform family.
// It is read-only, so it does not need the root check.
var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Print the detected platform (debian, fedora, macos or unknown)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), platform.Detect(platform.HostProbe()))
		return err
	},
}

// verifyCmd checks an existing installation and re-applies chmod +x on its binaries.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the SDK installation and fix binary permissions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := newInstaller()
		if err != nil {
			return err
		}
		return inst.Verify()
	},
}

// envCmd only writes the shell profile exports, then says which file it used.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Add the SDK, host and port exports to your shell profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := newInstaller()
		if err != nil {
			return err
		}
		if err := inst.Configure(); err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), inst.ProfilePath())
		return err
	},
}

// runInstall performs every step; shared by the root command and `install`.
func runInstall() error {
	inst, err := newInstaller()
	if err != nil {
		return err
	}
	return inst.Run()
}

// init adds the subcommands to the root command.
func init() {
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(envCmd)
}
