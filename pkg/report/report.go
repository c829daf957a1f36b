package report

import (
	"fmt"
	"math"

	"github.com/tokentools/tokendiff/pkg/match"
	"github.com/tokentools/tokendiff/pkg/wcag"
)

// Status buckets a score: pass at 80 and above, partial at 50, fail below.
type Status string

const (
	StatusPass    Status = "pass"
	StatusPartial Status = "partial"
	StatusFail    Status = "fail"
)

const (
	passThreshold    = 80
	partialThreshold = 50
)

// CategoryReport is one category's match result with its derived status.
type CategoryReport struct {
	match.Result
	Status Status `json:"status"`
}

// Recommendation is one prioritized action item; P0 is most urgent.
type Recommendation struct {
	Priority string `json:"priority"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Report is the complete outcome of one comparison.
type Report struct {
	Colors          CategoryReport   `json:"colors"`
	Typography      CategoryReport   `json:"typography"`
	Spacing         CategoryReport   `json:"spacing"`
	BorderRadius    CategoryReport   `json:"borderRadius"`
	Accessibility   wcag.Audit       `json:"accessibility"`
	Overall         int              `json:"overallScore"`
	Recommendations []Recommendation `json:"recommendations"`
}

// StatusFor maps a 0-100 score onto its status bucket.
func StatusFor(score int) Status {
	switch {
	case score >= passThreshold:
		return StatusPass
	case score >= partialThreshold:
		return StatusPartial
	default:
		return StatusFail
	}
}

// Assemble combines the four category results and the accessibility audit
// into a report. The overall score is the unweighted mean of the four
// category scores, rounded. Recommendations come out in fixed priority
// order: colors, typography, spacing, radius, then accessibility; a
// category earns one only when its score is below the pass threshold, and
// accessibility only when the audit found outright errors.
func Assemble(colors, typography, spacing, radius match.Result, audit wcag.Audit) Report {
	r := Report{
		Colors:        CategoryReport{Result: colors, Status: StatusFor(colors.Score)},
		Typography:    CategoryReport{Result: typography, Status: StatusFor(typography.Score)},
		Spacing:       CategoryReport{Result: spacing, Status: StatusFor(spacing.Score)},
		BorderRadius:  CategoryReport{Result: radius, Status: StatusFor(radius.Score)},
		Accessibility: audit,
	}

	sum := colors.Score + typography.Score + spacing.Score + radius.Score
	r.Overall = int(math.Round(float64(sum) / 4.0))

	if colors.Score < passThreshold {
		r.Recommendations = append(r.Recommendations, Recommendation{
			Priority: "P0",
			Category: "colors",
			Message: fmt.Sprintf("Color palette diverges from the reference: %d missing, %d only approximate. Colors carry the most visual weight; align the palette first.",
				len(colors.Missing), len(colors.Similar)),
		})
	}
	if typography.Score < passThreshold {
		r.Recommendations = append(r.Recommendations, Recommendation{
			Priority: "P1",
			Category: "typography",
			Message: fmt.Sprintf("Font families differ from the reference: %d missing. Adopt the reference families or close equivalents.",
				len(typography.Missing)),
		})
	}
	if spacing.Score < passThreshold {
		r.Recommendations = append(r.Recommendations, Recommendation{
			Priority: "P2",
			Category: "spacing",
			Message: fmt.Sprintf("Spacing scale misses %d reference steps. Snap paddings and margins to the reference scale.",
				len(spacing.Missing)),
		})
	}
	if radius.Score < passThreshold {
		r.Recommendations = append(r.Recommendations, Recommendation{
			Priority: "P3",
			Category: "radius",
			Message: fmt.Sprintf("Border radii miss %d reference values. Unify corner rounding with the reference scale.",
				len(radius.Missing)),
		})
	}
	if n := audit.ErrorCount(); n > 0 {
		r.Recommendations = append(r.Recommendations, Recommendation{
			Priority: "P4",
			Category: "accessibility",
			Message: fmt.Sprintf("%d color pairs fail WCAG AA contrast. Darken text or lighten backgrounds before shipping.",
				n),
		})
	}

	return r
}
