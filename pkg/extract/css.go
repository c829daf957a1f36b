package extract

import (
	"regexp"
	"strings"

	"github.com/tokentools/tokendiff/pkg/colorspace"
	"github.com/tokentools/tokendiff/pkg/match"
)

var (
	colorPattern   = regexp.MustCompile(`(?i)#[0-9a-f]{3,8}|rgba?\([^)]*\)`)
	commentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	accentPattern  = regexp.MustCompile(`(?i)accent|primary|brand|cta|btn|button|link|\ba\b`)
)

func stripComments(css string) string {
	return commentPattern.ReplaceAllString(css, "")
}

// firstColorIn pulls the first parseable color out of a declaration value.
// Shorthands like "1px solid #ccc" or "white url(bg.png)" carry their color
// anywhere in the value, so after trying the value as a whole we scan for
// hex/rgb() runs and then for named-color words.
func firstColorIn(value string) (string, bool) {
	if hex, ok := colorspace.Normalize(value); ok {
		return hex, true
	}
	for _, m := range colorPattern.FindAllString(value, -1) {
		if hex, ok := colorspace.Normalize(m); ok {
			return hex, true
		}
	}
	for _, f := range strings.Fields(value) {
		if hex, ok := colorspace.Normalize(strings.TrimRight(f, ");,")); ok {
			return hex, true
		}
	}
	return "", false
}

// numericTokens keeps the value words that carry a leading number, as
// written ("8px", "1.5rem").
func numericTokens(value string) []string {
	var out []string
	for _, f := range strings.Fields(value) {
		f = strings.TrimRight(f, ");,")
		if _, ok := match.ParseNumber(f); ok {
			out = append(out, f)
		}
	}
	return out
}

// firstFamily returns the primary family of a font stack, unquoted.
func firstFamily(value string) string {
	first := value
	if i := strings.IndexByte(first, ','); i >= 0 {
		first = first[:i]
	}
	if i := strings.IndexByte(first, '!'); i >= 0 {
		first = first[:i]
	}
	first = strings.TrimSpace(first)
	return strings.Trim(first, `"'`)
}

func isAccentSelector(selector string) bool {
	return accentPattern.MatchString(selector)
}

func isSpacingProp(prop string) bool {
	switch prop {
	case "margin", "padding", "gap", "row-gap", "column-gap":
		return true
	}
	return strings.HasPrefix(prop, "margin-") || strings.HasPrefix(prop, "padding-")
}
