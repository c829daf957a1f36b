package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status colors
var (
	passColor    = lipgloss.Color("#10B981") // Green
	partialColor = lipgloss.Color("#F59E0B") // Amber
	failColor    = lipgloss.Color("#EF4444") // Red
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	passStyle    = lipgloss.NewStyle().Foreground(passColor)
	partialStyle = lipgloss.NewStyle().Foreground(partialColor)
	failStyle    = lipgloss.NewStyle().Foreground(failColor).Bold(true)
)

// Render returns the terminal form of the report: status-colored category
// lines, the accessibility tally, and the recommendations.
func Render(r Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Design Token Comparison"))
	b.WriteString("\n")
	overall := fmt.Sprintf("%d/100 (%s)", r.Overall, StatusFor(r.Overall))
	b.WriteString("Overall " + statusStyle(StatusFor(r.Overall)).Render(overall))
	b.WriteString("\n\n")

	for _, c := range namedCategories(r) {
		score := fmt.Sprintf("%3d/100 %-7s", c.report.Score, c.report.Status)
		line := fmt.Sprintf("  %-14s %s", c.title, statusStyle(c.report.Status).Render(score))
		if detail := categoryDetail(c.report.Result.Missing, c.report.Result.Extra, len(c.report.Similar)); detail != "" {
			line += mutedStyle.Render(" " + detail)
		}
		b.WriteString(line + "\n")
	}
	if missing := r.Colors.Missing; len(missing) > 0 {
		b.WriteString("  " + mutedStyle.Render("missing colors") + "  " + swatchRow(missing) + "\n")
	}
	b.WriteString("\n")

	errs, warns := r.Accessibility.ErrorCount(), r.Accessibility.WarningCount()
	tally := fmt.Sprintf("%d errors, %d warnings", errs, warns)
	switch {
	case errs > 0:
		tally = failStyle.Render(tally)
	case warns > 0:
		tally = partialStyle.Render(tally)
	default:
		tally = passStyle.Render(tally)
	}
	b.WriteString("Accessibility: " + tally + "\n")

	if len(r.Recommendations) > 0 {
		b.WriteString("\n" + titleStyle.Render("Recommendations") + "\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&b, "  %s %s: %s\n",
				titleStyle.Render(rec.Priority), rec.Category, rec.Message)
		}
	}

	return b.String()
}

func statusStyle(s Status) lipgloss.Style {
	switch s {
	case StatusPass:
		return passStyle
	case StatusPartial:
		return partialStyle
	default:
		return failStyle
	}
}

// swatchRow renders hex values as colored blocks next to their text, capped
// so a large palette does not flood the summary line.
func swatchRow(values []string) string {
	const maxSwatches = 6
	shown := values
	if len(shown) > maxSwatches {
		shown = shown[:maxSwatches]
	}
	parts := make([]string, 0, len(shown))
	for _, v := range shown {
		block := lipgloss.NewStyle().Foreground(lipgloss.Color(v)).Render("██")
		parts = append(parts, block+" "+v)
	}
	row := strings.Join(parts, "  ")
	if len(values) > maxSwatches {
		row += fmt.Sprintf("  +%d more", len(values)-maxSwatches)
	}
	return row
}

func categoryDetail(missing, extra []string, similar int) string {
	var parts []string
	if similar > 0 {
		parts = append(parts, fmt.Sprintf("%d similar", similar))
	}
	if len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("%d missing", len(missing)))
	}
	if len(extra) > 0 {
		parts = append(parts, fmt.Sprintf("%d extra", len(extra)))
	}
	return strings.Join(parts, ", ")
}
