// Package profile appends export lines to the user's shell startup file.
// Lines are only ever appended, never rewritten or reordered.
package profile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/mitchellh/go-homedir"

	"ps5-sdk-setup/internal/logger"
)

// rcFiles maps supported shells to their startup file under $HOME.
var rcFiles = map[string]string{
	"zsh":  ".zshrc",
	"bash": ".bashrc",
}

// DetectShell maps a $SHELL value to "zsh" or "bash", defaulting to zsh.
func DetectShell(shellEnv string) string {
	logger.Debug("[DEBUG] Detected shell environment: %s\n", shellEnv)
	switch {
	case strings.Contains(shellEnv, "zsh"):
		return "zsh"
	case strings.Contains(shellEnv, "bash"):
		return "bash"
	}
	return "zsh"
}

// ResolvePath picks the profile file to edit.
// An explicit path wins (with ~ expanded); otherwise the rc file of shell is
// used, falling back to the shell named by $SHELL.
func ResolvePath(explicit, shell string) (string, error) {
	if explicit != "" {
		return homedir.Expand(explicit)
	}

	if shell == "" {
		shell = DetectShell(os.Getenv("SHELL"))
	}
	rc, ok := rcFiles[shell]
	if !ok {
		logger.Warn("[WARN] Unknown shell '%s', defaulting to '.zshrc'\n", shell)
		rc = rcFiles["zsh"]
	}

	// Construct full path to shell rc file
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("cannot locate home directory: %w", err)
	}
	return filepath.Join(home, rc), nil
}

// File is a shell profile on disk.
type File struct {
	Path string
}

// Contains reports whether marker appears anywhere in the file.
// A missing file contains nothing.
func (f File) Contains(marker string) (bool, error) {
	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read profile %s: %w", f.Path, err)
	}
	return bytes.Contains(data, []byte(marker)), nil
}

// Append writes lines to the end of the file, creating it if needed.
// A newline is inserted first when the existing content does not end with one.
func (f File) Append(lines ...string) error {
	if len(lines) == 0 {
		return nil
	}

	// Read the current content only to know whether it ends with a newline
	existing, err := os.ReadFile(f.Path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read profile %s: %w", f.Path, err)
	}

	// Open rc file for appending; never truncate or rewrite existing lines
	file, err := os.OpenFile(f.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("unable to open %s for appending: %w", f.Path, err)
	}
	defer file.Close()

	var buf strings.Builder
	if len(existing) > 0 && existing[len(existing)-1] != '\n' {
		buf.WriteString("\n")
	}
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteString("\n")
	}

	if _, err := file.WriteString(buf.String()); err != nil {
		return fmt.Errorf("failed to append to %s: %w", f.Path, err)
	}
	for _, line := range lines {
		logger.Info("[INFO] Added to %s: %s\n", f.Path, line)
	}
	return nil
}

// ExportLine renders `export NAME=value` with value quoted for POSIX shells.
func ExportLine(name, value string) string {
	return fmt.Sprintf("export %s=%s", name, shellquote.Join(value))
}
