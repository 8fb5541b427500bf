package binding_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"keycast/binding"
	"keycast/keycode"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   string
		kind    binding.Kind
		legacy  bool
		glfw    keycode.Glfw
		mouse   keycode.MouseButton
		control keycode.ControlEvent
	}{
		{"17", binding.KindKey, true, keycode.GlfwKeyW, 0, keycode.ControlKeyW},
		{"2", binding.KindKey, true, keycode.GlfwKey1, 0, keycode.ControlKey1},
		{" 57 ", binding.KindKey, true, keycode.GlfwKeySpace, 0, keycode.ControlKeySpace},
		{"201", binding.KindKey, true, keycode.GlfwKeyPageUp, 0, keycode.ControlKeyPageUp},
		{"-100", binding.KindMouse, true, keycode.GlfwKeyUnknown, keycode.MouseButtonLeft, keycode.ControlMouseButtonLeft},
		{"-99", binding.KindMouse, true, keycode.GlfwKeyUnknown, keycode.MouseButtonRight, keycode.ControlMouseButtonRight},
		{"-98", binding.KindMouse, true, keycode.GlfwKeyUnknown, keycode.MouseButtonMiddle, keycode.ControlMouseButtonMiddle},
		{"-93", binding.KindMouse, true, keycode.GlfwKeyUnknown, keycode.MouseButton8, keycode.ControlKeyUnknown},
		{"-92", binding.KindUnknown, true, keycode.GlfwKeyUnknown, 0, keycode.ControlKeyUnknown},
		{"-101", binding.KindUnknown, true, keycode.GlfwKeyUnknown, 0, keycode.ControlKeyUnknown},
		{"0", binding.KindUnknown, true, keycode.GlfwKeyUnknown, 0, keycode.ControlKeyUnknown},
		{"112", binding.KindUnknown, true, keycode.GlfwKeyUnknown, 0, keycode.ControlKeyUnknown},
		{"key.keyboard.w", binding.KindKey, false, keycode.GlfwKeyW, 0, keycode.ControlKeyW},
		{"key.keyboard.left.shift", binding.KindKey, false, keycode.GlfwKeyLeftShift, 0, keycode.ControlKeyLeftShift},
		{"key.keyboard.left.win", binding.KindKey, false, keycode.GlfwKeyLeftSuper, 0, keycode.ControlKeyLeftSuper},
		{"key.keyboard.keypad.0", binding.KindKey, false, keycode.GlfwKeyKP0, 0, keycode.ControlKeyKP0},
		{"key.keyboard.grave.accent", binding.KindKey, false, keycode.GlfwKeyGraveAccent, 0, keycode.ControlKeyGraveAccent},
		{"key.keyboard.f25", binding.KindKey, false, keycode.GlfwKeyF25, 0, keycode.ControlKeyF25},
		{"key.keyboard.unknown", binding.KindUnknown, false, keycode.GlfwKeyUnknown, 0, keycode.ControlKeyUnknown},
		{"key.mouse.left", binding.KindMouse, false, keycode.GlfwKeyUnknown, keycode.MouseButtonLeft, keycode.ControlMouseButtonLeft},
		{"key.mouse.middle", binding.KindMouse, false, keycode.GlfwKeyUnknown, keycode.MouseButtonMiddle, keycode.ControlMouseButtonMiddle},
		{"key.mouse.4", binding.KindMouse, false, keycode.GlfwKeyUnknown, keycode.MouseButton4, keycode.ControlKeyUnknown},
		{"key.mouse.9", binding.KindUnknown, false, keycode.GlfwKeyUnknown, 0, keycode.ControlKeyUnknown},
		{"key.gamepad.a", binding.KindUnknown, false, keycode.GlfwKeyUnknown, 0, keycode.ControlKeyUnknown},
		{"", binding.KindUnknown, false, keycode.GlfwKeyUnknown, 0, keycode.ControlKeyUnknown},
		{"w", binding.KindUnknown, false, keycode.GlfwKeyUnknown, 0, keycode.ControlKeyUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			b := binding.Resolve(tt.value)
			assert.Equal(t, tt.kind, b.Kind)
			assert.Equal(t, tt.legacy, b.Legacy)
			assert.Equal(t, tt.glfw, b.Glfw)
			assert.Equal(t, tt.mouse, b.Mouse)
			assert.Equal(t, tt.control, b.ControlEvent())
		})
	}
}

func TestResolve_LegacyMatchesTranslator(t *testing.T) {
	for _, e := range keycode.Catalog() {
		b := binding.Resolve(e.Code.String())
		assert.Equal(t, binding.KindUnknown, b.Kind, "names are not legacy values: %s", e.Name)

		b = binding.Resolve(strconv.Itoa(int(e.Code)))
		assert.Equal(t, e.Code.Glfw(), b.Glfw, e.Name)
		assert.Equal(t, e.Code.ControlEvent(), b.ControlEvent(), e.Name)
		assert.Equal(t, e.Group.Mapped(), b.Kind == binding.KindKey, e.Name)
	}
}

func TestResolve_ModernAndLegacyAgree(t *testing.T) {
	pairs := map[string]string{
		"key.keyboard.escape":       "1",
		"key.keyboard.0":            "11",
		"key.keyboard.enter":        "28",
		"key.keyboard.page.down":    "209",
		"key.keyboard.right.alt":    "184",
		"key.keyboard.keypad.enter": "156",
		"key.keyboard.menu":         "221",
		"key.mouse.right":           "-99",
	}

	for modern, legacy := range pairs {
		m, l := binding.Resolve(modern), binding.Resolve(legacy)
		assert.Equal(t, m.Kind, l.Kind, modern)
		assert.Equal(t, m.ControlEvent(), l.ControlEvent(), modern)
		assert.NotEqual(t, keycode.ControlKeyUnknown, m.ControlEvent(), modern)
	}
}

func TestBinding_Keycode(t *testing.T) {
	code, ok := binding.Resolve("key.keyboard.a").Keycode()
	assert.True(t, ok)
	assert.Equal(t, 65, code)

	code, ok = binding.Resolve("-98").Keycode()
	assert.True(t, ok)
	assert.Equal(t, 2, code)

	code, ok = binding.Resolve("key.keyboard.unknown").Keycode()
	assert.False(t, ok)
	assert.Equal(t, -1, code)
}

func TestBinding_String(t *testing.T) {
	assert.Equal(t, "GLFW_KEY_A", binding.Resolve("30").String())
	assert.Equal(t, "GLFW_MOUSE_BUTTON_LEFT", binding.Resolve("-100").String())
	assert.Equal(t, "GLFW_MOUSE_BUTTON_5", binding.Resolve("key.mouse.5").String())
	assert.Equal(t, "unknown", binding.Resolve("nope").String())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "unknown", binding.KindUnknown.String())
	assert.Equal(t, "key", binding.KindKey.String())
	assert.Equal(t, "mouse", binding.KindMouse.String())
	assert.Equal(t, "Kind(7)", binding.Kind(7).String())
	assert.Equal(t, 3, binding.KindTotal)
}
