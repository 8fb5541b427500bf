package match

import (
	"strconv"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keycast/keycode"
)

func TestResolver_Lookup(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		input string
		want  keycode.Lwjgl2
	}{
		{"KEY_A", keycode.Lwjgl2A},
		{"lmeta", keycode.Lwjgl2LMeta},
		{"KEY_LWIN", keycode.Lwjgl2LMeta},
		{"rwin", keycode.Lwjgl2RMeta},
		{"key-prior", keycode.Lwjgl2Prior},
		{"NumpadEquals", keycode.Lwjgl2NumpadEquals},
		{" sysrq ", keycode.Lwjgl2SysRq},
		{"Key1", keycode.Lwjgl2Key1},
		{"KEY_0", keycode.Lwjgl2Key0},
		{"kana", keycode.Lwjgl2Kana},
		{"30", keycode.Lwjgl2A},
		{"0x1E", keycode.Lwjgl2A},
		{"0", keycode.Lwjgl2None},
		{"-1", keycode.Lwjgl2(-1)},
		{"999", keycode.Lwjgl2(999)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := r.Lookup(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_LookupEveryCatalogName(t *testing.T) {
	r := NewResolver()

	for _, e := range keycode.Catalog() {
		got, err := r.Lookup(e.Name)
		require.NoError(t, err, e.Name)
		assert.Equal(t, e.Code, got, e.Name)

		norm := NormalizeIdent(e.Name)
		if _, err := strconv.Atoi(norm); err == nil {
			// Bare digits are read as integers.
			continue
		}
		got, err = r.Lookup(norm)
		require.NoError(t, err, e.Name)
		assert.Equal(t, e.Code, got, e.Name)
	}
}

func TestResolver_LookupMiss(t *testing.T) {
	r := NewResolver()

	_, err := r.Lookup("KEY_SCROL")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Contains(t, err.Error(), `"KEY_SCROL"`)

	hints := errors.FlattenHints(err)
	assert.Contains(t, hints, "KEY_SCROLL")

	_, err = r.Lookup("zzzzzzzzzzzz")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Empty(t, errors.GetAllHints(err))
}

func TestResolver_Suggest(t *testing.T) {
	r := NewResolver()

	s := r.Suggest("lmetaa")
	require.NotEmpty(t, s)
	assert.Equal(t, "KEY_LMETA", s[0].Name)
	assert.Equal(t, keycode.Lwjgl2LMeta, s[0].Code)
	assert.LessOrEqual(t, len(s), DefaultMaxSuggestions)

	for i := 1; i < len(s); i++ {
		assert.GreaterOrEqual(t, s[i-1].Score, s[i].Score)
	}

	for _, sg := range r.Suggest("lwi") {
		assert.NotEqual(t, "KEY_LWIN", sg.Name, "deprecated aliases are not suggested")
	}

	assert.Empty(t, r.Suggest(""))

	r.MaxSuggestions = 1
	assert.Len(t, r.Suggest("numpad"), 1)
}
