package binding_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keycast/binding"
	"keycast/keycode"
)

func TestParseOptions(t *testing.T) {
	input := strings.Join([]string{
		"\ufeffversion:3465",
		"",
		"key_key.forward:key.keyboard.w",
		"soundCategory_master:1.0",
		"key_key.attack:key.mouse.left",
		"  key_key.hotbar.1:key.keyboard.1  ",
		"key_key.forward:key.keyboard.up",
		"key_key.socialInteractions:key.keyboard.p\r",
	}, "\n")

	opts, err := binding.ParseOptions(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []binding.Entry{
		{Action: "key.forward", Value: "key.keyboard.up"},
		{Action: "key.attack", Value: "key.mouse.left"},
		{Action: "key.hotbar.1", Value: "key.keyboard.1"},
		{Action: "key.socialInteractions", Value: "key.keyboard.p"},
	}, opts.Entries)

	v, ok := opts.Get("key.attack")
	assert.True(t, ok)
	assert.Equal(t, "key.mouse.left", v)

	_, ok = opts.Get("key.missing")
	assert.False(t, ok)
}

func TestParseOptions_Malformed(t *testing.T) {
	tests := map[string]string{
		"no separator": "version:1\nkey_key.jump\n",
		"empty action": "key_:57\n",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			opts, err := binding.ParseOptions(strings.NewReader(input))
			require.Error(t, err)
			assert.Nil(t, opts)
			assert.ErrorIs(t, err, binding.ErrMalformedLine)
			assert.NotEmpty(t, errors.GetAllHints(err))
		})
	}
}

func TestParseOptions_Empty(t *testing.T) {
	opts, err := binding.ParseOptions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, opts.Entries)
	assert.Empty(t, opts.Resolve())
}

func TestLoadOptions_Legacy(t *testing.T) {
	opts, err := binding.LoadOptions(filepath.Join("testdata", "options.txt"))
	require.NoError(t, err)
	require.Len(t, opts.Entries, 17)

	got := map[string]keycode.ControlEvent{}
	for _, r := range opts.Resolve() {
		assert.True(t, r.Binding.Legacy, r.Action)
		got[r.Action] = r.Binding.ControlEvent()
	}

	assert.Equal(t, keycode.ControlMouseButtonLeft, got["key.attack"])
	assert.Equal(t, keycode.ControlMouseButtonRight, got["key.use"])
	assert.Equal(t, keycode.ControlMouseButtonMiddle, got["key.pickItem"])
	assert.Equal(t, keycode.ControlKeyW, got["key.forward"])
	assert.Equal(t, keycode.ControlKeyA, got["key.left"])
	assert.Equal(t, keycode.ControlKeySpace, got["key.jump"])
	assert.Equal(t, keycode.ControlKeyLeftShift, got["key.sneak"])
	assert.Equal(t, keycode.ControlKeySlash, got["key.command"])
	assert.Equal(t, keycode.ControlKeyF2, got["key.screenshot"])
	assert.Equal(t, keycode.ControlKey1, got["key.hotbar.1"])
	assert.Equal(t, keycode.ControlKey9, got["key.hotbar.9"])
}

func TestLoadOptions_Missing(t *testing.T) {
	_, err := binding.LoadOptions(filepath.Join(t.TempDir(), "options.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to open options file")
}
