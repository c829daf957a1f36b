package compare

import (
	"testing"

	"github.com/tokentools/tokendiff/pkg/tokens"
)

func mustParse(t *testing.T, data string) *tokens.Document {
	t.Helper()
	doc, err := tokens.Parse([]byte(data))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

const referenceJSON = `{
	"colors": {
		"palette": [{"value": "#000000", "count": 30}, {"value": "#ffffff", "count": 28}]
	},
	"typography": {"fontFamilies": ["Inter"]},
	"spacing": {"scale": ["8px", "16px"]},
	"borderRadius": ["4px"]
}`

func TestRunEndToEnd(t *testing.T) {
	project := mustParse(t, `{
		"colors": {
			"palette": [{"value": "#010101", "count": 12}],
			"semantic": {
				"backgrounds": [{"value": "#ffffff", "count": 40}],
				"text": [{"value": "#aaaaaa", "count": 20}]
			}
		},
		"typography": {"fontFamilies": ["Inter, sans-serif"]},
		"spacing": {"scale": ["8px", "16px"]},
		"borderRadius": ["4px"]
	}`)
	reference := mustParse(t, referenceJSON)

	rep := Run(project, reference, Options{})

	// One similar color of two references: 100 x 0.8 / 2 = 40.
	if rep.Colors.Score != 40 {
		t.Errorf("colors score = %d, want 40", rep.Colors.Score)
	}
	if rep.Typography.Score != 100 {
		t.Errorf("typography score = %d, want 100", rep.Typography.Score)
	}
	if rep.Spacing.Score != 100 || rep.BorderRadius.Score != 100 {
		t.Errorf("spacing/radius = %d/%d, want 100/100",
			rep.Spacing.Score, rep.BorderRadius.Score)
	}
	if rep.Overall != 85 {
		t.Errorf("overall = %d, want 85", rep.Overall)
	}

	// Light gray text on white in the project's own semantic palette.
	if rep.Accessibility.ErrorCount() != 1 {
		t.Errorf("accessibility errors = %d, want 1", rep.Accessibility.ErrorCount())
	}

	// Colors below 80 and a contrast error: P0 and P4.
	if len(rep.Recommendations) != 2 {
		t.Fatalf("recommendations = %+v, want P0 and P4", rep.Recommendations)
	}
	if rep.Recommendations[0].Priority != "P0" || rep.Recommendations[1].Priority != "P4" {
		t.Errorf("priorities = %s, %s, want P0, P4",
			rep.Recommendations[0].Priority, rep.Recommendations[1].Priority)
	}
}

func TestRunPolicyOverrides(t *testing.T) {
	project := mustParse(t, `{
		"colors": {"palette": ["#010101"]},
		"typography": {"fontFamilies": ["Inter"]},
		"spacing": {"scale": ["8px", "16px"]},
		"borderRadius": ["4px"]
	}`)
	reference := mustParse(t, referenceJSON)

	rep := Run(project, reference, Options{ColorDelta: 0.05})

	// Near-black no longer clears the tightened cutoff.
	if len(rep.Colors.Similar) != 0 {
		t.Errorf("similar = %+v, want none under a tight cutoff", rep.Colors.Similar)
	}
	if rep.Colors.Score != 0 {
		t.Errorf("colors score = %d, want 0", rep.Colors.Score)
	}
}

func TestRunIdenticalDocuments(t *testing.T) {
	project := mustParse(t, referenceJSON)
	reference := mustParse(t, referenceJSON)

	rep := Run(project, reference, Options{})

	if rep.Overall != 100 {
		t.Errorf("overall = %d, want 100", rep.Overall)
	}
	if len(rep.Recommendations) != 0 {
		t.Errorf("recommendations = %+v, want none", rep.Recommendations)
	}
}

func TestRunEmptyReference(t *testing.T) {
	project := mustParse(t, referenceJSON)
	reference := mustParse(t, `{}`)

	rep := Run(project, reference, Options{})

	// Empty reference sets floor the denominator; everything project-side
	// is extra, nothing crashes.
	if rep.Overall != 0 {
		t.Errorf("overall = %d, want 0", rep.Overall)
	}
	if len(rep.Colors.Extra) != 2 {
		t.Errorf("extra colors = %v, want both project colors", rep.Colors.Extra)
	}
}
