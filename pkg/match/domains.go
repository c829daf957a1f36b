package match

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tokentools/tokendiff/pkg/colorspace"
	"github.com/tokentools/tokendiff/pkg/deltae"
)

// Policy defaults. These are product choices, not physical constants;
// callers override them per comparison.
const (
	DefaultColorDelta       = 5.0
	DefaultNumericTolerance = 2.0
	DefaultColorWeight      = 0.8
	DefaultNumericWeight    = 0.7
)

// ColorDomain compares colors on canonical hex identity and CIEDE2000
// similarity. The zero value uses the defaults.
type ColorDomain struct {
	MaxDelta      float64 // similarity cutoff in delta-E units; DefaultColorDelta when <= 0
	SimilarWeight float64 // partial credit per similar match; DefaultColorWeight when <= 0
}

func (d ColorDomain) Equal(project, reference string) bool {
	p, okP := colorspace.Normalize(project)
	r, okR := colorspace.Normalize(reference)
	return okP && okR && p == r
}

func (d ColorDomain) Close(project, reference string) (float64, bool) {
	dist := deltae.CIEDE2000Hex(project, reference)
	if dist < d.maxDelta() {
		return dist, true
	}
	return 0, false
}

func (d ColorDomain) Weight() float64 {
	if d.SimilarWeight > 0 {
		return d.SimilarWeight
	}
	return DefaultColorWeight
}

func (d ColorDomain) maxDelta() float64 {
	if d.MaxDelta > 0 {
		return d.MaxDelta
	}
	return DefaultColorDelta
}

// NumericDomain compares values carrying a leading number and an optional
// unit suffix, like "16px" or "0.5rem". Only the number takes part in the
// comparison. The zero value uses the defaults.
type NumericDomain struct {
	Tolerance     float64 // maximum difference still similar; DefaultNumericTolerance when <= 0
	SimilarWeight float64 // partial credit per similar match; DefaultNumericWeight when <= 0
}

func (d NumericDomain) Equal(project, reference string) bool {
	p, okP := ParseNumber(project)
	r, okR := ParseNumber(reference)
	return okP && okR && p == r
}

func (d NumericDomain) Close(project, reference string) (float64, bool) {
	p, okP := ParseNumber(project)
	r, okR := ParseNumber(reference)
	if !okP || !okR {
		return 0, false
	}
	diff := math.Abs(p - r)
	if diff <= d.tolerance() {
		return diff, true
	}
	return 0, false
}

func (d NumericDomain) Weight() float64 {
	if d.SimilarWeight > 0 {
		return d.SimilarWeight
	}
	return DefaultNumericWeight
}

func (d NumericDomain) tolerance() float64 {
	if d.Tolerance > 0 {
		return d.Tolerance
	}
	return DefaultNumericTolerance
}

// StringDomain compares names like font families. Matching is deliberately
// fuzzy: after folding, substring containment in either direction or an
// equal first word counts as a match. There is no weaker similarity tier,
// so similar matches earn nothing.
type StringDomain struct{}

func (StringDomain) Equal(project, reference string) bool {
	p := foldName(project)
	r := foldName(reference)
	if p == "" || r == "" {
		return false
	}
	if strings.Contains(p, r) || strings.Contains(r, p) {
		return true
	}
	return firstWord(p) == firstWord(r)
}

func (StringDomain) Close(project, reference string) (float64, bool) {
	return 0, false
}

func (StringDomain) Weight() float64 { return 0 }

// ParseNumber reads the leading decimal number of a token value, ignoring
// any unit suffix. "16px" and "16" parse to the same number.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' || c == '.' || (end == 0 && (c == '-' || c == '+')) {
			end++
			continue
		}
		break
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// foldName normalizes a name for fuzzy comparison: NFKC so typographic
// variants collapse, then lowercase, with outer whitespace and quotes
// stripped.
func foldName(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Trim(s, `"'`)
}

// firstWord returns the text before the first space or comma, so the
// primary family of a font stack compares against a bare family name.
func firstWord(s string) string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
