package report

import (
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown renders the report as a Markdown document with a summary
// table, per-category detail, the accessibility findings, and the
// recommendation list.
func WriteMarkdown(w io.Writer, r Report) error {
	var b strings.Builder

	b.WriteString("# Design Token Comparison\n\n")
	fmt.Fprintf(&b, "Overall score: **%d/100** (%s)\n\n", r.Overall, StatusFor(r.Overall))

	b.WriteString("| Category | Score | Status |\n")
	b.WriteString("|----------|------:|--------|\n")
	for _, c := range namedCategories(r) {
		fmt.Fprintf(&b, "| %s | %d/100 | %s |\n", c.title, c.report.Score, c.report.Status)
	}
	b.WriteString("\n")

	for _, c := range namedCategories(r) {
		fmt.Fprintf(&b, "## %s (%d/100, %s)\n\n", c.title, c.report.Score, c.report.Status)
		writeValueList(&b, "Matched", c.report.Exact)
		if len(c.report.Similar) > 0 {
			b.WriteString("- Similar:\n")
			for _, p := range c.report.Similar {
				fmt.Fprintf(&b, "  - `%s` vs `%s` (distance %.2f)\n", p.Project, p.Reference, p.Distance)
			}
		}
		writeValueList(&b, "Missing from project", c.report.Missing)
		writeValueList(&b, "Extra in project", c.report.Extra)
		b.WriteString("\n")
	}

	b.WriteString("## Accessibility\n\n")
	if len(r.Accessibility.Issues) == 0 {
		b.WriteString("No contrast issues in the audited pairs.\n\n")
	} else {
		for _, f := range r.Accessibility.Issues {
			fmt.Fprintf(&b, "- **%s**: `%s` on `%s` has ratio %.2f (AA %s, AAA %s)\n",
				f.Severity, f.Foreground, f.Background, f.Ratio,
				passWord(f.PassesAA), passWord(f.PassesAAA))
		}
		b.WriteString("\n")
	}

	if len(r.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&b, "1. **%s %s**: %s\n", rec.Priority, rec.Category, rec.Message)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

type namedCategory struct {
	title  string
	report CategoryReport
}

func namedCategories(r Report) []namedCategory {
	return []namedCategory{
		{"Colors", r.Colors},
		{"Typography", r.Typography},
		{"Spacing", r.Spacing},
		{"Border Radius", r.BorderRadius},
	}
}

func writeValueList(b *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		return
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "`" + v + "`"
	}
	fmt.Fprintf(b, "- %s: %s\n", label, strings.Join(quoted, ", "))
}

func passWord(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
