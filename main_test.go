package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"ps5-sdk-setup/internal/logger"
)

func TestRunAbortPrintsOneErrorLineAndExitsOne(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	prev := logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(prev) })

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	code := run([]string{"verify", "--config", missing})

	assert.Equal(t, 1, code)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "[ERROR] failed to read config"), lines[0])
}

func TestRunSuccessExitsZero(t *testing.T) {
	var buf bytes.Buffer
	prev := logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(prev) })

	assert.Equal(t, 0, run([]string{"detect"}))
	assert.Empty(t, buf.String())
}
