package tokens

import (
	"github.com/tokentools/tokendiff/pkg/colorspace"
	"github.com/tokentools/tokendiff/pkg/match"
)

// PaletteEntry is one color observation: its surface value, how many times
// it was seen, and an optional semantic role.
type PaletteEntry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
	Role  string `json:"role,omitempty"`
}

// SemanticGroups holds palette entries grouped by the property they were
// used on.
type SemanticGroups struct {
	Backgrounds []PaletteEntry `json:"backgrounds"`
	Text        []PaletteEntry `json:"text"`
	Borders     []PaletteEntry `json:"borders"`
	Accents     []PaletteEntry `json:"accents"`
}

type ColorSet struct {
	Palette  []PaletteEntry `json:"palette"`
	Semantic SemanticGroups `json:"semantic"`
}

type Typography struct {
	FontFamilies []string `json:"fontFamilies"`
}

type SpacingSet struct {
	Scale []string `json:"scale"`
}

// Document is one parsed token set. Documents are read-only once parsed;
// comparisons never mutate them.
type Document struct {
	Colors       ColorSet   `json:"colors"`
	Typography   Typography `json:"typography"`
	Spacing      SpacingSet `json:"spacing"`
	BorderRadius []string   `json:"borderRadius"`
}

// ColorValues returns the palette values in canonical hex form, in palette
// order. Entries that do not parse as colors are left out; duplicates are
// preserved because the matcher counts them individually.
func (d *Document) ColorValues() []string {
	var out []string
	for _, e := range d.Colors.Palette {
		if hex, ok := colorspace.Normalize(e.Value); ok {
			out = append(out, hex)
		}
	}
	return out
}

// FontValues returns the font family list as-is.
func (d *Document) FontValues() []string {
	return d.Typography.FontFamilies
}

// SpacingValues returns the spacing scale with entries that do not carry a
// leading number left out.
func (d *Document) SpacingValues() []string {
	return numericOnly(d.Spacing.Scale)
}

// RadiusValues returns the border radius values with non-numeric entries
// left out.
func (d *Document) RadiusValues() []string {
	return numericOnly(d.BorderRadius)
}

func numericOnly(values []string) []string {
	var out []string
	for _, v := range values {
		if _, ok := match.ParseNumber(v); ok {
			out = append(out, v)
		}
	}
	return out
}
