package main

import (
	"os"

	"ps5-sdk-setup/cmd"             // CLI commands and flag parsing
	"ps5-sdk-setup/internal/logger" // Coloured, levelled output
)

// main is the program entry point.
// It delegates to run, which handles command line parsing and execution,
// and turns its result into the process exit status.
//
// ps5-sdk-setup installs the PS5 payload SDK on a developer workstation:
//   - Detects the host platform (Debian-like, Fedora-like, macOS)
//   - Installs wget, unzip and the LLVM toolchain via the platform package
//     manager when wget is missing
//   - Downloads the latest SDK release (reusing a cached archive) and unzips it
//   - Verifies the install and marks its binaries executable
//   - Exports PS5_PAYLOAD_SDK, PS5_HOST and PS5_PORT in the user's shell profile
//
// Error handling strategy:
//   - Optional build tools that fail to install only produce a warning
//   - Every other failure aborts immediately: one red `[ERROR]` line, exit status 1
//   - Nothing is rolled back; a failed extraction can leave a partial install
func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI with args and returns the exit status.
func run(args []string) int {
	if err := cmd.Execute(args); err != nil {
		logger.Error("[ERROR] %v\n", err)
		return 1
	}
	return 0
}
