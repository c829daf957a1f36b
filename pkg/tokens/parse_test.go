package tokens

import (
	"reflect"
	"testing"
)

func TestParseFullDocument(t *testing.T) {
	data := []byte(`{
		"colors": {
			"palette": [
				{"value": "#aabbcc", "count": 12, "role": "accent"},
				"#ffffff"
			],
			"semantic": {
				"backgrounds": [{"value": "#ffffff", "count": 40}],
				"text": [{"value": "#111111", "count": 38}],
				"borders": [{"value": "#dddddd", "count": 7}],
				"accents": [{"value": "#aabbcc", "count": 12}]
			}
		},
		"typography": {"fontFamilies": ["Inter", {"family": "Georgia", "count": 3}]},
		"spacing": {"scale": ["4px", "8px", 16]},
		"borderRadius": ["2px", {"value": "8px", "count": 5}]
	}`)

	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	wantPalette := []PaletteEntry{
		{Value: "#aabbcc", Count: 12, Role: "accent"},
		{Value: "#ffffff", Count: 1},
	}
	if !reflect.DeepEqual(doc.Colors.Palette, wantPalette) {
		t.Fatalf("unexpected palette.\nwant: %#v\ngot:  %#v", wantPalette, doc.Colors.Palette)
	}

	wantBackgrounds := []PaletteEntry{{Value: "#ffffff", Count: 40}}
	if !reflect.DeepEqual(doc.Colors.Semantic.Backgrounds, wantBackgrounds) {
		t.Fatalf("unexpected backgrounds.\nwant: %#v\ngot:  %#v", wantBackgrounds, doc.Colors.Semantic.Backgrounds)
	}
	if got := doc.Colors.Semantic.Text; len(got) != 1 || got[0].Value != "#111111" || got[0].Count != 38 {
		t.Fatalf("unexpected text group: %#v", got)
	}
	if got := doc.Colors.Semantic.Borders; len(got) != 1 || got[0].Value != "#dddddd" {
		t.Fatalf("unexpected borders group: %#v", got)
	}
	if got := doc.Colors.Semantic.Accents; len(got) != 1 || got[0].Value != "#aabbcc" {
		t.Fatalf("unexpected accents group: %#v", got)
	}

	wantFamilies := []string{"Inter", "Georgia"}
	if !reflect.DeepEqual(doc.Typography.FontFamilies, wantFamilies) {
		t.Fatalf("unexpected families.\nwant: %#v\ngot:  %#v", wantFamilies, doc.Typography.FontFamilies)
	}

	wantScale := []string{"4px", "8px", "16"}
	if !reflect.DeepEqual(doc.Spacing.Scale, wantScale) {
		t.Fatalf("unexpected scale.\nwant: %#v\ngot:  %#v", wantScale, doc.Spacing.Scale)
	}

	wantRadius := []string{"2px", "8px"}
	if !reflect.DeepEqual(doc.BorderRadius, wantRadius) {
		t.Fatalf("unexpected radius.\nwant: %#v\ngot:  %#v", wantRadius, doc.BorderRadius)
	}
}

func TestParseSkipsMalformedEntries(t *testing.T) {
	data := []byte(`{"colors": {"palette": [
		{"count": 3},
		42,
		null,
		{"value": "#123456", "count": 0},
		"plain"
	]}}`)

	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	want := []PaletteEntry{
		{Value: "#123456", Count: 1},
		{Value: "plain", Count: 1},
	}
	if !reflect.DeepEqual(doc.Colors.Palette, want) {
		t.Fatalf("unexpected palette.\nwant: %#v\ngot:  %#v", want, doc.Colors.Palette)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"colors":`)); err == nil {
		t.Fatal("expected an error for truncated JSON")
	}
	if _, err := Parse([]byte("not json")); err == nil {
		t.Fatal("expected an error for non-JSON input")
	}
}

func TestParseEmptyDocument(t *testing.T) {
	doc, err := Parse([]byte(`{}`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(doc.Colors.Palette) != 0 || len(doc.Typography.FontFamilies) != 0 ||
		len(doc.Spacing.Scale) != 0 || len(doc.BorderRadius) != 0 {
		t.Fatalf("expected an empty document, got %#v", doc)
	}
}

func TestColorValues(t *testing.T) {
	doc := &Document{}
	doc.Colors.Palette = []PaletteEntry{
		{Value: "#FFF", Count: 2},
		{Value: "white", Count: 1},
		{Value: "var(--fg)", Count: 4},
		{Value: "rgb(255, 0, 0)", Count: 1},
		{Value: "#fff", Count: 1},
	}

	want := []string{"#ffffff", "#ffffff", "#ff0000", "#ffffff"}
	if got := doc.ColorValues(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected color values.\nwant: %#v\ngot:  %#v", want, got)
	}
}

func TestSpacingAndRadiusValues(t *testing.T) {
	doc := &Document{}
	doc.Spacing.Scale = []string{"0", "8px", "auto", "calc(100% - 8px)", "1.5rem"}
	doc.BorderRadius = []string{"50%", "9999px", "inherit"}

	wantSpacing := []string{"0", "8px", "1.5rem"}
	if got := doc.SpacingValues(); !reflect.DeepEqual(got, wantSpacing) {
		t.Fatalf("unexpected spacing values.\nwant: %#v\ngot:  %#v", wantSpacing, got)
	}

	wantRadius := []string{"50%", "9999px"}
	if got := doc.RadiusValues(); !reflect.DeepEqual(got, wantRadius) {
		t.Fatalf("unexpected radius values.\nwant: %#v\ngot:  %#v", wantRadius, got)
	}
}
