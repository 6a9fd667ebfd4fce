package installer

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/kballard/go-shellquote"

	"ps5-sdk-setup/internal/logger"
)

// System is everything the installer needs from the host: running external
// tools, looking at the filesystem and mutating the process environment.
type System interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) ([]byte, error)
	Stat(name string) (os.FileInfo, error)
	Glob(pattern string) ([]string, error)
	Open(name string) (io.ReadCloser, error)
	Setenv(key, value string) error
	Geteuid() int
}

// RealSystem implements System on the live host.
// When Stdout/Stderr are set, command output is streamed to them as it is
// produced (used with --debug) in addition to being captured.
type RealSystem struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (RealSystem) LookPath(file string) (string, error) { return exec.LookPath(file) }

// Run executes the command and returns its combined stdout and stderr.
// Stdin is inherited so sudo can ask for a password.
func (s RealSystem) Run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin

	// Both streams feed one buffer, so writes must be serialized.
	captured := &lockedBuffer{}
	cmd.Stdout = tee(captured, s.Stdout)
	cmd.Stderr = tee(captured, s.Stderr)

	err := cmd.Run()
	return captured.Bytes(), err
}

// tee adds the optional live writer next to the capture buffer.
func tee(buf io.Writer, live io.Writer) io.Writer {
	if live == nil {
		return buf
	}
	return io.MultiWriter(buf, live)
}

// lockedBuffer is a bytes.Buffer safe for the two copy goroutines exec starts.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Bytes()
}

func (RealSystem) Stat(name string) (os.FileInfo, error)   { return os.Stat(name) }
func (RealSystem) Glob(pattern string) ([]string, error)   { return filepath.Glob(pattern) }
func (RealSystem) Open(name string) (io.ReadCloser, error) { return os.Open(name) }
func (RealSystem) Setenv(key, value string) error          { return os.Setenv(key, value) }
func (RealSystem) Geteuid() int                            { return os.Geteuid() }

// run executes argv, prefixed with the sudo setting when privileged is set.
// A failing command is returned as an error carrying its output.
func (i *Installer) run(privileged bool, argv ...string) error {
	if privileged && i.cfg.Sudo != "" {
		argv = append([]string{i.cfg.Sudo}, argv...)
	}
	// Quote the command line so debug output can be pasted into a shell
	line := shellquote.Join(argv...)
	logger.Debug("[DEBUG] Running command: %s\n", line)

	output, err := i.sys.Run(argv[0], argv[1:]...)
	if err != nil {
		// Keep the tool's own output, it usually names the real problem
		return fmt.Errorf("%s failed: %w\nOutput: %s", line, err, output)
	}
	logger.Debug("[DEBUG] Output of %s:\n%s\n", argv[0], output)
	return nil
}

// exists reports whether path can be stat'ed.
func (i *Installer) exists(path string) bool {
	_, err := i.sys.Stat(path)
	return err == nil
}

// fileSHA256 returns the lowercase hex SHA-256 of the file at path.
func (i *Installer) fileSHA256(path string) (string, error) {
	f, err := i.sys.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
