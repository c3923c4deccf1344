package cli

import (
	"strings"
	"testing"

	"github.com/latticeui/lattice/pkg/domain"
)

func TestBuildOutline(t *testing.T) {
	tree := &domain.RenderTree{
		Path:   "/pricing",
		Title:  "Pricing",
		Locale: "en",
		Sections: []*domain.RenderNode{
			{
				Type:      "section",
				BlockName: "hero",
				Content:   "Plans",
				Attributes: map[string]any{
					"class":        "hero",
					"data-columns": float64(3),
				},
				Animation: &domain.Animation{Name: "fade-in", DelayMs: 100, DurationMs: 300},
				Children: []*domain.RenderNode{
					{Type: "button", Content: "Start"},
				},
			},
		},
	}

	out := BuildOutline(tree)

	for _, want := range []string{
		"# /pricing (en)",
		"Pricing",
		"## Section 0",
		"- **section `hero`**: Plans",
		"`class=hero`",
		"`data-columns=3`",
		"`animation: fade-in delay=100ms duration=300ms`",
		"  - **button**: Start",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Outline missing %q:\n%s", want, out)
		}
	}

	// Attributes are listed in deterministic order
	if strings.Index(out, "class=hero") > strings.Index(out, "data-columns") {
		t.Error("Expected attributes sorted by name")
	}
}

func TestBuildOutline_Empty(t *testing.T) {
	out := BuildOutline(&domain.RenderTree{Path: "/", Locale: "en"})
	if !strings.HasPrefix(out, "# / (en)") {
		t.Errorf("Unexpected outline: %q", out)
	}
}
