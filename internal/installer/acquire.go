package installer

import (
	"fmt"
	"path/filepath"
	"strings"

	"ps5-sdk-setup/internal/logger"
)

// Outcome tells the caller what Acquire did.
type Outcome int

const (
	Installed Outcome = iota // archive extracted into the install dir
	Skipped                  // existing install kept at the user's request
)

func (o Outcome) String() string {
	if o == Skipped {
		return "skipped"
	}
	return "installed"
}

// Acquire puts the SDK in place: it confirms a reinstall over an existing
// directory, fetches the archive unless cached, and extracts it.
func (i *Installer) Acquire() (Outcome, error) {
	dir := i.cfg.InstallDir

	// An existing install is only replaced with the user's consent (default: no)
	if i.exists(dir) {
		reinstall, err := i.prompter.Confirm(fmt.Sprintf("%s already exists. Reinstall?", dir), false)
		if err != nil {
			return Skipped, err
		}
		if !reinstall {
			logger.Info("[INFO] Keeping existing installation in %s\n", dir)
			return Skipped, nil
		}
		// The install dir is root-owned, so removal goes through sudo
		logger.Info("[INFO] Removing existing installation %s\n", dir)
		if err := i.run(true, "rm", "-rf", dir); err != nil {
			return Installed, err
		}
	}

	if err := i.fetchArchive(); err != nil {
		return Installed, err
	}
	if err := i.checkArchive(); err != nil {
		return Installed, err
	}

	// The archive holds the top-level SDK directory, so unpack into its parent
	parent := filepath.Dir(dir)
	logger.Info("[INFO] Extracting %s to %s\n", i.cfg.CacheFile, parent)
	if err := i.run(true, "unzip", "-o", "-q", i.cfg.CacheFile, "-d", parent); err != nil {
		return Installed, err
	}
	return Installed, nil
}

// fetchArchive downloads the archive into the cache file unless it is already there.
// A cached file is reused as-is, whatever its age or content.
func (i *Installer) fetchArchive() error {
	if i.exists(i.cfg.CacheFile) {
		logger.Info("[INFO] Using cached archive %s\n", i.cfg.CacheFile)
		return nil
	}
	logger.Info("[INFO] Downloading %s to %s\n", i.cfg.ArchiveURL, i.cfg.CacheFile)
	return i.run(false, i.cfg.Downloader, "-O", i.cfg.CacheFile, i.cfg.ArchiveURL)
}

// checkArchive compares the archive digest with the configured one.
// Without a configured digest the archive is trusted, with a warning.
func (i *Installer) checkArchive() error {
	want := strings.ToLower(strings.TrimSpace(i.cfg.ArchiveSHA256))
	if want == "" {
		logger.Warn("[WARN] Archive %s is not checksum-verified; set archive_sha256 to verify it\n", i.cfg.CacheFile)
		return nil
	}

	// Hash the cached or freshly downloaded file
	got, err := i.fileSHA256(i.cfg.CacheFile)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: %s has sha256 %s, expected %s (delete it to re-download)",
			ErrChecksumMismatch, i.cfg.CacheFile, got, want)
	}
	logger.Debug("[DEBUG] Archive checksum verified: %s\n", got)
	return nil
}
