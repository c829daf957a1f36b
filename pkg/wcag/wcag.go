package wcag

import (
	"sort"

	"github.com/tokentools/tokendiff/pkg/colorspace"
	"github.com/tokentools/tokendiff/pkg/tokens"
)

// Threshold ratios from WCAG 2.0 success criteria 1.4.3 (AA) and 1.4.6
// (AAA). Large-text thresholds double as the 3:1 requirement for UI
// components.
const (
	AANormalRatio  = 4.5
	AALargeRatio   = 3.0
	AAANormalRatio = 7.0
	AAALargeRatio  = 4.5
)

// The audit deliberately checks only the most frequent colors of each group;
// a full cross product on a large palette buries the signal in noise.
const (
	textPairLimit   = 3
	accentPairLimit = 2
)

// Levels reports which WCAG thresholds a contrast ratio clears.
type Levels struct {
	AANormal  bool `json:"aaNormal"`
	AALarge   bool `json:"aaLarge"`
	AAANormal bool `json:"aaaNormal"`
	AAALarge  bool `json:"aaaLarge"`
}

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one foreground/background pair with its measured ratio.
// Severity is set on findings in the issue bucket and empty on passing ones.
type Finding struct {
	Foreground string   `json:"foreground"`
	Background string   `json:"background"`
	Ratio      float64  `json:"ratio"`
	Severity   Severity `json:"severity,omitempty"`
	PassesAA   bool     `json:"passesAA"`
	PassesAAA  bool     `json:"passesAAA"`
}

// Audit is the result of checking a palette's semantic groups against the
// WCAG thresholds.
type Audit struct {
	Issues  []Finding `json:"issues"`
	Passing []Finding `json:"passing"`
}

// ErrorCount returns how many findings fail AA outright.
func (a Audit) ErrorCount() int {
	n := 0
	for _, f := range a.Issues {
		if f.Severity == SeverityError {
			n++
		}
	}
	return n
}

// WarningCount returns how many findings pass AA but miss a stricter bar.
func (a Audit) WarningCount() int {
	return len(a.Issues) - a.ErrorCount()
}

// ContrastRatio computes the WCAG contrast ratio between two colors,
// always at least 1 and at most 21. Order does not matter.
func ContrastRatio(a, b colorspace.RGB) float64 {
	la := colorspace.RelativeLuminance(a)
	lb := colorspace.RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Classify checks a ratio against all four thresholds. The comparisons are
// inclusive: exactly 4.5 passes AA for normal text.
func Classify(ratio float64) Levels {
	return Levels{
		AANormal:  ratio >= AANormalRatio,
		AALarge:   ratio >= AALargeRatio,
		AAANormal: ratio >= AAANormalRatio,
		AAALarge:  ratio >= AAALargeRatio,
	}
}

// AuditPalette crosses the most frequent backgrounds against the most
// frequent text colors, then the top accents against the top backgrounds.
// Text pairs failing AA are errors; passing AA but missing AAA is a
// warning. Accent pairs only have to clear the 3:1 UI threshold and come
// back as warnings when they miss it. Entries that do not parse as colors
// are skipped.
func AuditPalette(backgrounds, texts, accents []tokens.PaletteEntry) Audit {
	var audit Audit

	for _, bg := range topByCount(backgrounds, textPairLimit) {
		bgc, ok := colorspace.Parse(bg.Value)
		if !ok {
			continue
		}
		for _, txt := range topByCount(texts, textPairLimit) {
			fgc, ok := colorspace.Parse(txt.Value)
			if !ok {
				continue
			}
			f := newFinding(txt.Value, bg.Value, ContrastRatio(fgc, bgc))
			switch {
			case !f.PassesAA:
				f.Severity = SeverityError
				audit.Issues = append(audit.Issues, f)
			case !f.PassesAAA:
				f.Severity = SeverityWarning
				audit.Issues = append(audit.Issues, f)
			default:
				audit.Passing = append(audit.Passing, f)
			}
		}
	}

	for _, accent := range topByCount(accents, accentPairLimit) {
		ac, ok := colorspace.Parse(accent.Value)
		if !ok {
			continue
		}
		for _, bg := range topByCount(backgrounds, accentPairLimit) {
			bgc, ok := colorspace.Parse(bg.Value)
			if !ok {
				continue
			}
			f := newFinding(accent.Value, bg.Value, ContrastRatio(ac, bgc))
			if f.Ratio < AALargeRatio {
				f.Severity = SeverityWarning
				audit.Issues = append(audit.Issues, f)
			} else {
				audit.Passing = append(audit.Passing, f)
			}
		}
	}

	return audit
}

func newFinding(foreground, background string, ratio float64) Finding {
	levels := Classify(ratio)
	return Finding{
		Foreground: foreground,
		Background: background,
		Ratio:      ratio,
		PassesAA:   levels.AANormal,
		PassesAAA:  levels.AAANormal,
	}
}

// topByCount returns the n most frequent entries. The sort is stable so
// equal counts keep their palette order.
func topByCount(entries []tokens.PaletteEntry, n int) []tokens.PaletteEntry {
	sorted := make([]tokens.PaletteEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
