package compare

import (
	"github.com/tokentools/tokendiff/pkg/match"
	"github.com/tokentools/tokendiff/pkg/report"
	"github.com/tokentools/tokendiff/pkg/tokens"
	"github.com/tokentools/tokendiff/pkg/wcag"
)

// Logger abstracts logging so callers can use logrus, stdlib log, or any
// other logger that satisfies this interface.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// nopLogger silently discards all messages.
type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Debugf(string, ...interface{}) {}

// Options tunes the comparison policy. The zero value applies the default
// thresholds and weights and logs nothing.
type Options struct {
	ColorDelta       float64 // delta-E cutoff for similar colors
	NumericTolerance float64 // unit difference still counted as similar
	ColorWeight      float64 // partial credit per similar color
	NumericWeight    float64 // partial credit per similar numeric value
	Log              Logger
}

// Run compares a project token document against a reference document:
// colors, typography, spacing, and border radius are matched per domain,
// the project's semantic palette is audited for contrast, and everything
// is assembled into a report.
func Run(project, reference *tokens.Document, opts Options) report.Report {
	log := opts.Log
	if log == nil {
		log = nopLogger{}
	}

	colorDomain := match.ColorDomain{
		MaxDelta:      opts.ColorDelta,
		SimilarWeight: opts.ColorWeight,
	}
	numericDomain := match.NumericDomain{
		Tolerance:     opts.NumericTolerance,
		SimilarWeight: opts.NumericWeight,
	}

	colors := match.MatchSets(project.ColorValues(), reference.ColorValues(), colorDomain)
	log.Debugf("colors: %d exact, %d similar, %d missing, %d extra",
		len(colors.Exact), len(colors.Similar), len(colors.Missing), len(colors.Extra))

	typography := match.MatchSets(project.FontValues(), reference.FontValues(), match.StringDomain{})
	log.Debugf("typography: %d exact, %d missing, %d extra",
		len(typography.Exact), len(typography.Missing), len(typography.Extra))

	spacing := match.MatchSets(project.SpacingValues(), reference.SpacingValues(), numericDomain)
	log.Debugf("spacing: %d exact, %d similar, %d missing, %d extra",
		len(spacing.Exact), len(spacing.Similar), len(spacing.Missing), len(spacing.Extra))

	radius := match.MatchSets(project.RadiusValues(), reference.RadiusValues(), numericDomain)
	log.Debugf("radius: %d exact, %d similar, %d missing, %d extra",
		len(radius.Exact), len(radius.Similar), len(radius.Missing), len(radius.Extra))

	// The audit judges the project's own palette; the reference only sets
	// the bar for matching, not for accessibility.
	sem := project.Colors.Semantic
	audit := wcag.AuditPalette(sem.Backgrounds, sem.Text, sem.Accents)
	log.Debugf("accessibility: %d errors, %d warnings",
		audit.ErrorCount(), audit.WarningCount())

	rep := report.Assemble(colors, typography, spacing, radius, audit)
	log.Infof("comparison done: overall %d/100, %d recommendations",
		rep.Overall, len(rep.Recommendations))
	return rep
}
