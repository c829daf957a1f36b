package tokens

import (
	"errors"

	"github.com/tidwall/gjson"
)

// Parse reads a token document from JSON. The shape is forgiving: palette
// entries may be objects or bare strings, font families may be strings or
// {family, count} objects, and scale values may be strings or numbers.
// Malformed individual entries are skipped; only JSON that does not parse at
// all is an error.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON document")
	}

	doc := &Document{}
	doc.Colors.Palette = parseEntries(gjson.GetBytes(data, "colors.palette"))
	doc.Colors.Semantic.Backgrounds = parseEntries(gjson.GetBytes(data, "colors.semantic.backgrounds"))
	doc.Colors.Semantic.Text = parseEntries(gjson.GetBytes(data, "colors.semantic.text"))
	doc.Colors.Semantic.Borders = parseEntries(gjson.GetBytes(data, "colors.semantic.borders"))
	doc.Colors.Semantic.Accents = parseEntries(gjson.GetBytes(data, "colors.semantic.accents"))
	doc.Typography.FontFamilies = parseFamilies(gjson.GetBytes(data, "typography.fontFamilies"))
	doc.Spacing.Scale = parseValues(gjson.GetBytes(data, "spacing.scale"))
	doc.BorderRadius = parseValues(gjson.GetBytes(data, "borderRadius"))
	return doc, nil
}

func parseEntries(res gjson.Result) []PaletteEntry {
	if !res.IsArray() {
		return nil
	}
	var out []PaletteEntry
	res.ForEach(func(_, item gjson.Result) bool {
		switch {
		case item.IsObject():
			value := item.Get("value").String()
			if value == "" {
				return true
			}
			count := int(item.Get("count").Int())
			if count < 1 {
				count = 1
			}
			out = append(out, PaletteEntry{
				Value: value,
				Count: count,
				Role:  item.Get("role").String(),
			})
		case item.Type == gjson.String:
			out = append(out, PaletteEntry{Value: item.String(), Count: 1})
		}
		return true
	})
	return out
}

func parseFamilies(res gjson.Result) []string {
	if !res.IsArray() {
		return nil
	}
	var out []string
	res.ForEach(func(_, item gjson.Result) bool {
		switch {
		case item.IsObject():
			if family := item.Get("family").String(); family != "" {
				out = append(out, family)
			}
		case item.Type == gjson.String:
			if item.String() != "" {
				out = append(out, item.String())
			}
		}
		return true
	})
	return out
}

func parseValues(res gjson.Result) []string {
	if !res.IsArray() {
		return nil
	}
	var out []string
	res.ForEach(func(_, item gjson.Result) bool {
		switch {
		case item.IsObject():
			if value := item.Get("value").String(); value != "" {
				out = append(out, value)
			}
		case item.Type == gjson.String, item.Type == gjson.Number:
			if item.String() != "" {
				out = append(out, item.String())
			}
		}
		return true
	})
	return out
}
