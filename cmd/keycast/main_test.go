package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"keycast/internal/keymap"
	"keycast/internal/match"
)

// executeCommand runs a fresh root command with args and returns its
// standard output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Keep a developer's ~/.keycast.yaml out of the tests.
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func testdata(t *testing.T, name string) string {
	t.Helper()

	path, err := filepath.Abs(filepath.Join("testdata", name))
	require.NoError(t, err)
	return path
}

func TestTranslate_Text(t *testing.T) {
	out, err := executeCommand(t, "translate", "KEY_PRIOR", "30", "0x70", "lwin")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"INPUT", "NAME", "CODE", "GLFW", "CONTROL"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"KEY_PRIOR", "KEY_PRIOR", "201", "266", "GLFW_KEY_PAGE_UP"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"30", "KEY_A", "30", "65", "GLFW_KEY_A"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"0x70", "KEY_KANA", "112", "-1", "GLFW_KEY_UNKNOWN"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"lwin", "KEY_LMETA", "219", "343", "GLFW_KEY_LEFT_SUPER"}, strings.Fields(lines[4]))
}

func TestTranslate_JSON(t *testing.T) {
	out, err := executeCommand(t, "--format", "json", "translate", "KEY_1", "999")
	require.NoError(t, err)

	var got []translation
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []translation{
		{Input: "KEY_1", Name: "KEY_1", Code: 2, Group: "Digit", Glfw: 49, Control: "GLFW_KEY_1"},
		{Input: "999", Name: "Lwjgl2(999)", Code: 999, Group: "Unmapped", Glfw: -1, Control: "GLFW_KEY_UNKNOWN"},
	}, got)
}

func TestTranslate_UnknownName(t *testing.T) {
	out, err := executeCommand(t, "translate", "KEY_A", "KEY_SCROL")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.ErrorIs(t, err, match.ErrUnknownKey)

	var buf bytes.Buffer
	printError(&buf, err)
	assert.Contains(t, buf.String(), "Error: ")
	assert.Contains(t, buf.String(), "Hint: did you mean KEY_SCROLL")
}

func TestTranslate_NoArgs(t *testing.T) {
	_, err := executeCommand(t, "translate")
	require.Error(t, err)
}

func TestFormat_Invalid(t *testing.T) {
	_, err := executeCommand(t, "--format", "xml", "translate", "KEY_A")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestFormat_FromEnv(t *testing.T) {
	t.Setenv("KEYCAST_FORMAT", "yaml")

	out, err := executeCommand(t, "translate", "KEY_ESCAPE")
	require.NoError(t, err)
	assert.Contains(t, out, "- input: KEY_ESCAPE\n")
	assert.Contains(t, out, "  control: GLFW_KEY_ESCAPE\n")
}

func TestFormat_FromConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "keycast.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("format: json\n"), 0o644))

	out, err := executeCommand(t, "--config", cfg, "translate", "KEY_ESCAPE")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), out)

	// Flags win over the config file.
	out, err = executeCommand(t, "--config", cfg, "-f", "text", "translate", "KEY_ESCAPE")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "INPUT"), out)
}

func TestConfigFile_Missing(t *testing.T) {
	_, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "translate", "KEY_A")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestTable_Text(t *testing.T) {
	out, err := executeCommand(t, "table")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 134)
	assert.Contains(t, out, "KEY_LWIN (deprecated)")
	assert.Regexp(t, `KEY_PRIOR\s+0xC9\s+Navigation\s+266\s+GLFW_KEY_PAGE_UP`, out)
}

func TestTable_YAML(t *testing.T) {
	out, err := executeCommand(t, "-f", "yaml", "table")
	require.NoError(t, err)

	tbl, err := keymap.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, keymap.Build(), tbl)
}

func TestTableAndCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.yaml")

	out, err := executeCommand(t, "table", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = executeCommand(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "133 keys, no drift")
}

func TestCheck_Drift(t *testing.T) {
	tbl := keymap.Build()
	for i := range tbl.Keys {
		if tbl.Keys[i].Name == "KEY_PRIOR" {
			tbl.Keys[i].Glfw = 267
			tbl.Keys[i].Control = "GLFW_KEY_PAGE_DOWN"
		}
	}
	tbl.Keys = tbl.Keys[1:]

	path := filepath.Join(t.TempDir(), "keymap.yaml")
	require.NoError(t, keymap.WriteFile(tbl, path))

	out, err := executeCommand(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, out, "error: [KEY_PRIOR] glfw: [changed] glfw 267 -> 266")
	assert.Contains(t, out, "error: [KEY_PRIOR] control: [changed]")
	assert.Contains(t, out, "warning: [KEY_NONE]: [added]")
	assert.Contains(t, err.Error(), "2 drift error(s)")
	assert.Contains(t, errors.FlattenHints(err), "keycast table -o "+path)
}

func TestCheck_JSON(t *testing.T) {
	tbl := keymap.Build()
	tbl.Keys = tbl.Keys[1:]

	path := filepath.Join(t.TempDir(), "keymap.yaml")
	require.NoError(t, keymap.WriteFile(tbl, path))

	out, err := executeCommand(t, "-f", "json", "check", path)
	require.NoError(t, err)

	var got struct {
		Warnings []struct {
			Severity string `json:"severity"`
			Code     string `json:"code"`
			Key      string `json:"key"`
		} `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Warnings, 1)
	assert.Equal(t, "warning", got.Warnings[0].Severity)
	assert.Equal(t, keymap.CodeAdded, got.Warnings[0].Code)
	assert.Equal(t, "KEY_NONE", got.Warnings[0].Key)
}

func TestCheck_MissingFile(t *testing.T) {
	_, err := executeCommand(t, "check", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptions_Text(t *testing.T) {
	out, err := executeCommand(t, "options", testdata(t, "options.txt"))
	require.NoError(t, err)

	assert.Regexp(t, `key\.attack\s+-100\s+mouse\s+0\s+GLFW_MOUSE_BUTTON_LEFT`, out)
	assert.Regexp(t, `key\.forward\s+17\s+key\s+87\s+GLFW_KEY_W`, out)
	assert.Regexp(t, `key\.hotbar\.1\s+2\s+key\s+49\s+GLFW_KEY_1`, out)
}

func TestOptions_YAML(t *testing.T) {
	out, err := executeCommand(t, "-f", "yaml", "options", testdata(t, "options.txt"))
	require.NoError(t, err)

	var got []resolvedBinding
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 17)
	assert.Equal(t, resolvedBinding{
		Action:  "key.pickItem",
		Value:   "-98",
		Kind:    "mouse",
		Legacy:  true,
		Keycode: 2,
		Control: "GLFW_MOUSE_BUTTON_MIDDLE",
	}, got[12])
}

func TestOptions_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.txt")
	require.NoError(t, os.WriteFile(path, []byte("key_key.jump\n"), 0o644))

	_, err := executeCommand(t, "options", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed key binding line")
}

func TestVersion(t *testing.T) {
	out, err := executeCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "keycast version dev")
}
