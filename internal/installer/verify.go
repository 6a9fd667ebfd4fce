package installer

import (
	"fmt"
	"path/filepath"

	"ps5-sdk-setup/internal/logger"
)

// Verify checks the install dir and the required executable exist, then marks
// the SDK binaries executable. The chmod is best-effort.
func (i *Installer) Verify() error {
	// Fail fast when extraction produced nothing
	dir := i.cfg.InstallDir
	if !i.exists(dir) {
		return fmt.Errorf("%w: %s", ErrNotInstalled, dir)
	}

	// The directory alone is not enough: the compiler driver must be there too
	exe := filepath.Join(dir, i.cfg.RequiredExecutable)
	if !i.exists(exe) {
		return fmt.Errorf("%w: %s", ErrMissingExecutable, exe)
	}

	if i.cfg.BinDir != "" {
		i.markExecutable(filepath.Join(dir, i.cfg.BinDir))
	}

	logger.Info("[INFO] SDK verified in %s\n", dir)
	return nil
}

// markExecutable runs `sudo chmod +x` over every file in binDir.
// An empty directory or a failing chmod only logs; the install already verified.
func (i *Installer) markExecutable(binDir string) {
	matches, err := i.sys.Glob(filepath.Join(binDir, "*"))
	if err != nil || len(matches) == 0 {
		logger.Debug("[DEBUG] Nothing to chmod in %s\n", binDir)
		return
	}
	args := append([]string{"chmod", "+x"}, matches...)
	if err := i.run(true, args...); err != nil {
		logger.Warn("[WARN] Could not mark SDK binaries executable: %v\n", err)
	}
}
