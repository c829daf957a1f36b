package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/tokentools/tokendiff/pkg/match"
	"github.com/tokentools/tokendiff/pkg/wcag"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		score int
		want  Status
	}{
		{100, StatusPass},
		{80, StatusPass},
		{79, StatusPartial},
		{50, StatusPartial},
		{49, StatusFail},
		{0, StatusFail},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.score); got != tt.want {
			t.Errorf("StatusFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestAssembleOverall(t *testing.T) {
	r := Assemble(
		match.Result{Score: 85},
		match.Result{Score: 70},
		match.Result{Score: 90},
		match.Result{Score: 80},
		wcag.Audit{},
	)

	// (85+70+90+80)/4 = 81.25 rounds to 81.
	if r.Overall != 81 {
		t.Errorf("overall = %d, want 81", r.Overall)
	}
	if r.Colors.Status != StatusPass || r.Typography.Status != StatusPartial {
		t.Errorf("statuses wrong: colors %s, typography %s", r.Colors.Status, r.Typography.Status)
	}
}

func TestAssembleRecommendationGating(t *testing.T) {
	r := Assemble(
		match.Result{Score: 85},
		match.Result{Score: 70, Missing: []string{"Inter"}},
		match.Result{Score: 100},
		match.Result{Score: 100},
		wcag.Audit{},
	)

	if len(r.Recommendations) != 1 {
		t.Fatalf("recommendations = %+v, want exactly the typography one", r.Recommendations)
	}
	rec := r.Recommendations[0]
	if rec.Priority != "P1" || rec.Category != "typography" {
		t.Errorf("got %+v, want P1 typography", rec)
	}
}

func TestAssembleRecommendationOrder(t *testing.T) {
	audit := wcag.Audit{Issues: []wcag.Finding{
		{Foreground: "#aaaaaa", Background: "#ffffff", Severity: wcag.SeverityError},
	}}
	r := Assemble(
		match.Result{Score: 10},
		match.Result{Score: 20},
		match.Result{Score: 30},
		match.Result{Score: 40},
		audit,
	)

	want := []string{"P0", "P1", "P2", "P3", "P4"}
	if len(r.Recommendations) != len(want) {
		t.Fatalf("got %d recommendations, want %d", len(r.Recommendations), len(want))
	}
	for i, rec := range r.Recommendations {
		if rec.Priority != want[i] {
			t.Errorf("recommendation %d has priority %s, want %s", i, rec.Priority, want[i])
		}
	}
}

// Warnings alone do not justify the accessibility recommendation; only
// outright AA failures do.
func TestAssembleAccessibilityNeedsErrors(t *testing.T) {
	audit := wcag.Audit{Issues: []wcag.Finding{
		{Foreground: "#767676", Background: "#ffffff", Severity: wcag.SeverityWarning},
	}}
	r := Assemble(
		match.Result{Score: 100},
		match.Result{Score: 100},
		match.Result{Score: 100},
		match.Result{Score: 100},
		audit,
	)

	if len(r.Recommendations) != 0 {
		t.Errorf("recommendations = %+v, want none", r.Recommendations)
	}
}

func TestReportJSONShape(t *testing.T) {
	r := Assemble(
		match.Result{Score: 40, Missing: []string{"#ffffff"}},
		match.Result{Score: 100},
		match.Result{Score: 100},
		match.Result{Score: 100},
		wcag.Audit{},
	)

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{"overallScore", "borderRadius", "recommendations", "accessibility", "\"score\":40"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("JSON missing %q: %s", key, data)
		}
	}
}
