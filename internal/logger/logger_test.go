package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsNop(t *testing.T) {
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() { Logger.Infow("ignored", "key", "KEY_A") })
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
	}{
		{"JSON output mode", true},
		{"Console output mode", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := Logger
			t.Cleanup(func() { Logger = prev })

			Initialize(tt.jsonOutput, false)
			require.NotNil(t, Logger)
			assert.NotSame(t, prev, Logger)
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer

	log := New(&buf, true, false)
	log.Infow("translated", "code", 30, "control", "GLFW_KEY_A")
	log.Debugw("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "translated", entry["msg"])
	assert.Equal(t, "GLFW_KEY_A", entry["control"])
	assert.EqualValues(t, 30, entry["code"])
}

func TestNew_ConsoleVerbose(t *testing.T) {
	var buf bytes.Buffer

	log := New(&buf, false, true)
	log.Debugw("loading table", "path", "keymap.yaml")

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "loading table")
	assert.Contains(t, out, "keymap.yaml")
}
