// Package template models invoice render styling: the four built-in
// templates, user-authored custom templates, and the resolution of the
// active template reference into a defaults-filled RenderSpec.
package template

import (
	"strconv"
	"strings"
)

// Layout style variants.
const (
	LayoutClassic = "classic"
	LayoutModern  = "modern"
	LayoutMinimal = "minimal"
	LayoutBold    = "bold"
)

// Header position variants.
const (
	HeaderLeft   = "left"
	HeaderCenter = "center"
	HeaderRight  = "right"
)

// Table style variants.
const (
	TableStriped  = "striped"
	TableBordered = "bordered"
	TableMinimal  = "minimal"
	TableClean    = "clean"
)

// Border style variants.
const (
	BorderSolid  = "solid"
	BorderDashed = "dashed"
	BorderNone   = "none"
)

// Default values substituted for fields absent from a stored custom
// template, so the renderer never sees a partial parameter set.
const (
	DefaultFontFamily      = "Segoe UI"
	DefaultHeaderBgColor   = "#1e40af"
	DefaultHeaderTextColor = "#ffffff"
	DefaultAccentColor     = "#3b82f6"
	DefaultBorderColor     = "#e5e7eb"
)

// CustomTemplate is a user-authored template record as it crosses the
// boundary. Field names match the host's stored representation.
type CustomTemplate struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	HeaderBgColor       string `json:"header_bg_color"`
	HeaderTextColor     string `json:"header_text_color"`
	AccentColor         string `json:"accent_color"`
	FontFamily          string `json:"font_family"`
	ShowLogo            bool   `json:"show_logo"`
	ShowBusinessAddress bool   `json:"show_business_address"`
	ShowBusinessPhone   bool   `json:"show_business_phone"`
	ShowBusinessEmail   bool   `json:"show_business_email"`
	LayoutStyle         string `json:"layout_style"`
	HeaderPosition      string `json:"header_position"`
	TableStyle          string `json:"table_style"`
	ShowTaxColumn       bool   `json:"show_tax_column"`
	ShowDescriptionCol  bool   `json:"show_description_column"`
	FooterText          string `json:"footer_text"`
	BorderStyle         string `json:"border_style"`
	BorderColor         string `json:"border_color"`
	CreatedAt           string `json:"created_at,omitempty"`
}

// RenderSpec is the resolved, defaults-filled parameter set the renderer
// consumes for one pass. It is a plain value object with no behavior.
type RenderSpec struct {
	Name            string
	HeaderBgColor   string
	HeaderTextColor string
	AccentColor     string
	BorderColor     string
	FontFamily      string
	LayoutStyle     string
	HeaderPosition  string
	TableStyle      string
	BorderStyle     string
	ShowLogo        bool
	ShowAddress     bool
	ShowPhone       bool
	ShowEmail       bool
	ShowTaxColumn   bool
	ShowDescription bool
	ShowSignature   bool
	ShowBankDetails bool
	FooterText      string
}

// Builtin describes one fixed, non-editable template as shown on the
// template gallery page.
type Builtin struct {
	Name        string
	Description string
	Swatches    [3]string
}

// Builtins returns the fixed built-in templates, in display order.
func Builtins() []Builtin {
	return []Builtin{
		{Name: "Basic", Description: "Clean & minimal", Swatches: [3]string{"#000000", "#333333", "#f5f5f5"}},
		{Name: "Professional", Description: "Blue corporate", Swatches: [3]string{"#1e40af", "#3b82f6", "#ffffff"}},
		{Name: "Modern", Description: "Gradient stylish", Swatches: [3]string{"#8b5cf6", "#ec4899", "#ffffff"}},
		{Name: "ClearStyle", Description: "Classic with signature", Swatches: [3]string{"#222222", "#c0392b", "#f9f9f9"}},
	}
}

// builtinSpecs maps builtin names to their full parameter sets. Each
// "template" is data; the renderer is the single engine.
var builtinSpecs = map[string]RenderSpec{
	"Basic": {
		Name:            "Basic",
		HeaderBgColor:   "#f5f5f5",
		HeaderTextColor: "#000000",
		AccentColor:     "#333333",
		BorderColor:     "#dddddd",
		FontFamily:      DefaultFontFamily,
		LayoutStyle:     LayoutClassic,
		HeaderPosition:  HeaderLeft,
		TableStyle:      TableMinimal,
		BorderStyle:     BorderSolid,
		ShowLogo:        false,
		ShowAddress:     true,
		ShowPhone:       true,
		ShowEmail:       true,
		ShowTaxColumn:   false,
		ShowDescription: true,
	},
	"Professional": {
		Name:            "Professional",
		HeaderBgColor:   "#1e40af",
		HeaderTextColor: "#ffffff",
		AccentColor:     "#3b82f6",
		BorderColor:     DefaultBorderColor,
		FontFamily:      DefaultFontFamily,
		LayoutStyle:     LayoutClassic,
		HeaderPosition:  HeaderLeft,
		TableStyle:      TableStriped,
		BorderStyle:     BorderSolid,
		ShowLogo:        true,
		ShowAddress:     true,
		ShowPhone:       true,
		ShowEmail:       true,
		ShowTaxColumn:   true,
		ShowDescription: true,
	},
	"Modern": {
		Name:            "Modern",
		HeaderBgColor:   "#8b5cf6",
		HeaderTextColor: "#ffffff",
		AccentColor:     "#ec4899",
		BorderColor:     DefaultBorderColor,
		FontFamily:      DefaultFontFamily,
		LayoutStyle:     LayoutModern,
		HeaderPosition:  HeaderLeft,
		TableStyle:      TableMinimal,
		BorderStyle:     BorderSolid,
		ShowLogo:        true,
		ShowAddress:     false,
		ShowPhone:       true,
		ShowEmail:       true,
		ShowTaxColumn:   false,
		ShowDescription: true,
	},
	"ClearStyle": {
		Name:            "ClearStyle",
		HeaderBgColor:   "#222222",
		HeaderTextColor: "#f9f9f9",
		AccentColor:     "#c0392b",
		BorderColor:     "#cccccc",
		FontFamily:      DefaultFontFamily,
		LayoutStyle:     LayoutBold,
		HeaderPosition:  HeaderLeft,
		TableStyle:      TableBordered,
		BorderStyle:     BorderSolid,
		ShowLogo:        true,
		ShowAddress:     true,
		ShowPhone:       true,
		ShowEmail:       true,
		ShowTaxColumn:   true,
		ShowDescription: true,
		ShowSignature:   true,
		ShowBankDetails: true,
	},
}

// BuiltinSpec returns the RenderSpec of a builtin template. Unknown names
// resolve to Basic.
func BuiltinSpec(name string) RenderSpec {
	if spec, ok := builtinSpecs[name]; ok {
		return spec
	}
	return builtinSpecs["Basic"]
}

// FromCustom converts a stored custom template into a RenderSpec, filling
// every absent field from the documented defaults.
func FromCustom(ct CustomTemplate) RenderSpec {
	return RenderSpec{
		Name:            ct.Name,
		HeaderBgColor:   orDefault(ct.HeaderBgColor, DefaultHeaderBgColor),
		HeaderTextColor: orDefault(ct.HeaderTextColor, DefaultHeaderTextColor),
		AccentColor:     orDefault(ct.AccentColor, DefaultAccentColor),
		BorderColor:     orDefault(ct.BorderColor, DefaultBorderColor),
		FontFamily:      orDefault(ct.FontFamily, DefaultFontFamily),
		LayoutStyle:     orDefault(ct.LayoutStyle, LayoutClassic),
		HeaderPosition:  orDefault(ct.HeaderPosition, HeaderLeft),
		TableStyle:      orDefault(ct.TableStyle, TableStriped),
		BorderStyle:     orDefault(ct.BorderStyle, BorderSolid),
		ShowLogo:        ct.ShowLogo,
		ShowAddress:     ct.ShowBusinessAddress,
		ShowPhone:       ct.ShowBusinessPhone,
		ShowEmail:       ct.ShowBusinessEmail,
		ShowTaxColumn:   ct.ShowTaxColumn,
		ShowDescription: ct.ShowDescriptionCol,
		FooterText:      ct.FooterText,
	}
}

// ResolveActive maps the profile's active-template reference (a builtin name
// or "Custom-<id>") onto a RenderSpec. A Custom reference that does not
// resolve against the supplied records falls back to Basic rather than
// failing: this path feeds a live preview that must never be empty.
func ResolveActive(ref string, customs []CustomTemplate) RenderSpec {
	if id, ok := ParseCustomRef(ref); ok {
		for _, ct := range customs {
			if ct.ID == id {
				return FromCustom(ct)
			}
		}
		return BuiltinSpec("Basic")
	}
	return BuiltinSpec(ref)
}

// CustomRef builds the active-template reference for a custom template id.
func CustomRef(id int64) string {
	return "Custom-" + strconv.FormatInt(id, 10)
}

// ParseCustomRef reports whether ref names a custom template, and its id.
func ParseCustomRef(ref string) (int64, bool) {
	rest, ok := strings.CutPrefix(ref, "Custom-")
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
