package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerRouting(t *testing.T) {
	var file, console bytes.Buffer
	l := newLogger(&file, &console, false)

	l.Info("info line")
	l.Warn("warn line")
	l.Error("error line")
	l.Debug("debug line")

	assert.Contains(t, file.String(), "[INFO] ")
	assert.Contains(t, file.String(), "info line")
	assert.Contains(t, file.String(), "warn line")
	assert.Contains(t, file.String(), "error line")
	assert.Contains(t, file.String(), "debug line")

	assert.NotContains(t, console.String(), "info line")
	assert.Contains(t, console.String(), "[WARN] ")
	assert.Contains(t, console.String(), "error line")
	assert.NotContains(t, console.String(), "debug line")
}

func TestLoggerDebugMode(t *testing.T) {
	var file, console bytes.Buffer
	l := newLogger(&file, &console, true)
	l.Debug("debug line")
	assert.Contains(t, console.String(), "[DEBUG] ")
	assert.Contains(t, console.String(), "debug line")
	assert.Contains(t, file.String(), "debug line")
}
