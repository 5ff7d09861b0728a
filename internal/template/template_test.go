package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinsOrder(t *testing.T) {
	builtins := Builtins()
	require.Len(t, builtins, 4)

	names := []string{builtins[0].Name, builtins[1].Name, builtins[2].Name, builtins[3].Name}
	assert.Equal(t, []string{"Basic", "Professional", "Modern", "ClearStyle"}, names)
	assert.Equal(t, "Clean & minimal", builtins[0].Description)
	assert.Equal(t, [3]string{"#1e40af", "#3b82f6", "#ffffff"}, builtins[1].Swatches)
}

func TestResolveActiveBuiltin(t *testing.T) {
	spec := ResolveActive("Professional", nil)
	assert.Equal(t, "Professional", spec.Name)
	assert.Equal(t, "#1e40af", spec.HeaderBgColor)
	assert.Equal(t, TableStriped, spec.TableStyle)
}

func TestResolveActiveCustom(t *testing.T) {
	customs := []CustomTemplate{
		{ID: 7, Name: "Brand", HeaderBgColor: "#112233", LayoutStyle: LayoutBold, ShowLogo: true},
	}

	spec := ResolveActive("Custom-7", customs)
	assert.Equal(t, "Brand", spec.Name)
	assert.Equal(t, "#112233", spec.HeaderBgColor)
	assert.Equal(t, LayoutBold, spec.LayoutStyle)
	assert.True(t, spec.ShowLogo)
}

func TestResolveActiveFallback(t *testing.T) {
	basic := ResolveActive("Basic", nil)

	testCases := []struct {
		name    string
		ref     string
		customs []CustomTemplate
	}{
		{name: "missing_custom_id", ref: "Custom-999", customs: nil},
		{name: "custom_id_not_in_list", ref: "Custom-3", customs: []CustomTemplate{{ID: 4}}},
		{name: "malformed_custom_ref", ref: "Custom-abc", customs: nil},
		{name: "unknown_builtin", ref: "Gothic", customs: nil},
		{name: "empty_ref", ref: "", customs: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, basic, ResolveActive(tc.ref, tc.customs))
		})
	}
}

func TestFromCustomFillsDefaults(t *testing.T) {
	spec := FromCustom(CustomTemplate{ID: 1, Name: "Sparse"})

	assert.Equal(t, LayoutClassic, spec.LayoutStyle)
	assert.Equal(t, TableStriped, spec.TableStyle)
	assert.Equal(t, HeaderLeft, spec.HeaderPosition)
	assert.Equal(t, BorderSolid, spec.BorderStyle)
	assert.Equal(t, DefaultFontFamily, spec.FontFamily)
	assert.Equal(t, DefaultHeaderBgColor, spec.HeaderBgColor)
	assert.Equal(t, DefaultHeaderTextColor, spec.HeaderTextColor)
	assert.Equal(t, DefaultAccentColor, spec.AccentColor)
	assert.Equal(t, DefaultBorderColor, spec.BorderColor)
}

func TestCustomRefRoundTrip(t *testing.T) {
	ref := CustomRef(12)
	assert.Equal(t, "Custom-12", ref)

	id, ok := ParseCustomRef(ref)
	require.True(t, ok)
	assert.Equal(t, int64(12), id)

	_, ok = ParseCustomRef("Professional")
	assert.False(t, ok)
}
