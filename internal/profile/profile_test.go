package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kballard/go-shellquote"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectShell(t *testing.T) {
	assert.Equal(t, "zsh", DetectShell("/bin/zsh"))
	assert.Equal(t, "bash", DetectShell("/usr/bin/bash"))
	assert.Equal(t, "zsh", DetectShell("/usr/bin/fish"))
	assert.Equal(t, "zsh", DetectShell(""))
}

func TestResolvePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	got, err := ResolvePath("", "bash")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".bashrc"), got)

	got, err = ResolvePath("", "tcsh")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".zshrc"), got)

	t.Setenv("SHELL", "/bin/bash")
	got, err = ResolvePath("", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".bashrc"), got)

	got, err = ResolvePath("~/.profile", "bash")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".profile"), got)
}

func TestContainsMissingFile(t *testing.T) {
	f := File{Path: filepath.Join(t.TempDir(), ".zshrc")}
	ok, err := f.Contains("PS5_HOST")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAppendCreatesAndPreservesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".bashrc")
	require.NoError(t, os.WriteFile(path, []byte("alias ll='ls -al'"), 0o644))
	f := File{Path: path}

	require.NoError(t, f.Append("export A=1", "export B=2"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "alias ll='ls -al'\nexport A=1\nexport B=2\n", string(data))

	ok, err := f.Contains("export B=2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAppendToNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".zshrc")
	f := File{Path: path}
	require.NoError(t, f.Append("export A=1"))
	require.NoError(t, f.Append())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export A=1\n", string(data))
}

func TestExportLineQuotes(t *testing.T) {
	assert.Equal(t, "export PS5_PAYLOAD_SDK=/opt/ps5-payload-sdk", ExportLine("PS5_PAYLOAD_SDK", "/opt/ps5-payload-sdk"))
	assert.Equal(t, "export PS5_PORT=9021", ExportLine("PS5_PORT", "9021"))

	words, err := shellquote.Split(ExportLine("PS5_HOST", "my host"))
	require.NoError(t, err)
	assert.Equal(t, []string{"export", "PS5_HOST=my host"}, words)
}
