package installer

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ps5-sdk-setup/internal/config"
	"ps5-sdk-setup/internal/platform"
	"ps5-sdk-setup/internal/profile"
)

// fakeSystem runs against a real temp directory but simulates external
// commands. It records every command line it is asked to run.
type fakeSystem struct {
	t        *testing.T
	cfg      config.Config
	tools    map[string]bool   // names LookPath finds
	fail     map[string]bool   // command names (after sudo) that exit non-zero
	commands [][]string        // every argv passed to Run
	env      map[string]string // Setenv results
	euid     int
}

func newFakeSystem(t *testing.T, cfg config.Config) *fakeSystem {
	return &fakeSystem{
		t:     t,
		cfg:   cfg,
		tools: map[string]bool{"wget": true},
		fail:  map[string]bool{},
		env:   map[string]string{},
		euid:  1000,
	}
}

func (f *fakeSystem) LookPath(file string) (string, error) {
	if f.tools[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func (f *fakeSystem) Run(name string, args ...string) ([]byte, error) {
	argv := append([]string{name}, args...)
	f.commands = append(f.commands, argv)

	if name == "sudo" {
		argv = argv[1:]
	}
	if f.fail[argv[0]] {
		return []byte("boom"), errors.New("exit status 1")
	}

	switch argv[0] {
	case "wget":
		// wget -O <dest> <url>
		require.NoError(f.t, os.WriteFile(argv[2], []byte("zip bytes"), 0o644))
	case "unzip":
		exe := filepath.Join(f.cfg.InstallDir, f.cfg.RequiredExecutable)
		require.NoError(f.t, os.MkdirAll(filepath.Dir(exe), 0o755))
		require.NoError(f.t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o644))
	case "rm":
		require.NoError(f.t, os.RemoveAll(argv[len(argv)-1]))
	}
	return nil, nil
}

func (f *fakeSystem) Stat(name string) (os.FileInfo, error)   { return os.Stat(name) }
func (f *fakeSystem) Glob(pattern string) ([]string, error)   { return filepath.Glob(pattern) }
func (f *fakeSystem) Open(name string) (io.ReadCloser, error) { return os.Open(name) }
func (f *fakeSystem) Geteuid() int                            { return f.euid }

func (f *fakeSystem) Setenv(key, value string) error {
	f.env[key] = value
	return nil
}

// ran reports whether a command whose name (after sudo) is name was executed.
func (f *fakeSystem) ran(name string) bool {
	for _, argv := range f.commands {
		if argv[0] == name || (argv[0] == "sudo" && len(argv) > 1 && argv[1] == name) {
			return true
		}
	}
	return false
}

func (f *fakeSystem) lines() []string {
	out := make([]string, 0, len(f.commands))
	for _, argv := range f.commands {
		out = append(out, strings.Join(argv, " "))
	}
	return out
}

// scriptedPrompter answers from fixed values and counts questions.
type scriptedPrompter struct {
	confirm   bool
	inputs    []string // consumed in order; empty answer means default
	confirms  int
	questions []string
}

func (p *scriptedPrompter) Confirm(question string, def bool) (bool, error) {
	p.confirms++
	p.questions = append(p.questions, question)
	return p.confirm, nil
}

func (p *scriptedPrompter) Input(question, def string) (string, error) {
	p.questions = append(p.questions, question)
	if len(p.inputs) == 0 {
		return def, nil
	}
	v := p.inputs[0]
	p.inputs = p.inputs[1:]
	if v == "" {
		return def, nil
	}
	return v, nil
}

type harness struct {
	cfg      config.Config
	sys      *fakeSystem
	prompter *scriptedPrompter
	profile  string
	inst     *Installer
}

// newHarness lays out a temp root holding the install dir, cache file and
// profile, and builds an Installer wired to fakes for platform p.
func newHarness(t *testing.T, p platform.Platform) *harness {
	t.Helper()
	root := t.TempDir()

	cfg := config.Default()
	cfg.InstallDir = filepath.Join(root, "opt", "ps5-payload-sdk")
	cfg.CacheFile = filepath.Join(root, "tmp", "ps5-payload-sdk.zip")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.CacheFile), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.InstallDir), 0o755))

	sys := newFakeSystem(t, cfg)
	prompter := &scriptedPrompter{}
	profilePath := filepath.Join(root, "home", ".bashrc")
	require.NoError(t, os.MkdirAll(filepath.Dir(profilePath), 0o755))

	probe := probeFor(p)
	inst, err := New(cfg, Options{
		System:   sys,
		Prompter: prompter,
		Profile:  &profile.File{Path: profilePath},
		Probe:    &probe,
	})
	require.NoError(t, err)

	return &harness{cfg: cfg, sys: sys, prompter: prompter, profile: profilePath, inst: inst}
}

func probeFor(p platform.Platform) platform.Probe {
	files := map[string]bool{}
	env := map[string]string{}
	switch p {
	case platform.Debian:
		files[platform.DebianMarker] = true
	case platform.Fedora:
		files[platform.FedoraMarker] = true
	case platform.MacOS:
		env["OSTYPE"] = "darwin23"
	}
	return platform.Probe{
		Exists: func(path string) bool { return files[path] },
		Getenv: func(key string) string { return env[key] },
		GOOS:   "linux",
	}
}

// installSDK creates a complete SDK tree in the install dir.
func (h *harness) installSDK(t *testing.T) {
	t.Helper()
	exe := filepath.Join(h.cfg.InstallDir, h.cfg.RequiredExecutable)
	require.NoError(t, os.MkdirAll(filepath.Dir(exe), 0o755))
	require.NoError(t, os.WriteFile(exe, []byte("original"), 0o755))
}

func (h *harness) readProfile(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(h.profile)
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(t, err)
	return string(data)
}
