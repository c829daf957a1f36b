package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tokentools/tokendiff/pkg/match"
	"github.com/tokentools/tokendiff/pkg/wcag"
)

func demoReport() Report {
	colors := match.Result{
		Score:   40,
		Similar: []match.Pair{{Project: "#010101", Reference: "#000000", Distance: 0.16}},
		Missing: []string{"#ffffff"},
	}
	audit := wcag.Audit{Issues: []wcag.Finding{
		{Foreground: "#aaaaaa", Background: "#ffffff", Ratio: 2.32, Severity: wcag.SeverityError},
	}}
	return Assemble(
		colors,
		match.Result{Score: 100, Exact: []string{"Inter"}},
		match.Result{Score: 100, Exact: []string{"8px", "16px"}},
		match.Result{Score: 100, Exact: []string{"4px"}},
		audit,
	)
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, demoReport()); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Design Token Comparison",
		"| Colors | 40/100 | fail |",
		"| Typography | 100/100 | pass |",
		"## Colors (40/100, fail)",
		"`#010101` vs `#000000` (distance 0.16)",
		"Missing from project: `#ffffff`",
		"## Accessibility",
		"`#aaaaaa` on `#ffffff` has ratio 2.32",
		"## Recommendations",
		"P0 colors",
		"P4 accessibility",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q\n%s", want, out)
		}
	}
}

func TestWriteMarkdownCleanReport(t *testing.T) {
	var buf bytes.Buffer
	clean := Assemble(
		match.Result{Score: 100},
		match.Result{Score: 100},
		match.Result{Score: 100},
		match.Result{Score: 100},
		wcag.Audit{},
	)
	if err := WriteMarkdown(&buf, clean); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "No contrast issues") {
		t.Error("expected the empty-audit line")
	}
	if strings.Contains(out, "## Recommendations") {
		t.Error("clean report should not carry recommendations")
	}
}

func TestRender(t *testing.T) {
	out := Render(demoReport())

	for _, want := range []string{
		"Design Token Comparison",
		"Colors",
		"40/100",
		"missing colors",
		"#ffffff",
		"Accessibility: ",
		"1 errors, 0 warnings",
		"P0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q\n%s", want, out)
		}
	}
}
