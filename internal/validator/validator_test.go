package validator

import (
	"strings"
	"testing"

	"github.com/latticeui/lattice/pkg/domain"
)

func block(name, typ string, children ...domain.Node) domain.Node {
	return domain.Node{Name: name, Type: typ, Children: children}
}

func TestValidateSite(t *testing.T) {
	// Scenario A: Valid site
	// hero references cta; page references hero inline and by name
	site := &domain.Site{
		Blocks: []domain.Node{
			block("hero", "section", domain.Node{Type: "#cta"}),
			block("cta", "button"),
		},
		Pages: []domain.Page{
			{Path: "/", Sections: []domain.Section{
				{Block: "hero"},
				{Node: &domain.Node{Type: "footer"}},
			}},
		},
	}
	if err := ValidateSite(site); err != nil {
		t.Errorf("Scenario A (Valid) failed: %v", err)
	}

	// Scenario B: Unknown block reference from a page
	broken := &domain.Site{
		Blocks: []domain.Node{block("hero", "section")},
		Pages: []domain.Page{
			{Path: "/", Sections: []domain.Section{{Block: "ghost"}}},
		},
	}
	err := ValidateSite(broken)
	if err == nil {
		t.Error("Scenario B (Broken) should have failed, but got nil")
	} else if !strings.Contains(err.Error(), "unknown block 'ghost'") {
		t.Errorf("Expected unknown block error, got: %v", err)
	}
}

func TestValidateSite_MissingType(t *testing.T) {
	site := &domain.Site{
		Blocks: []domain.Node{
			block("hero", "section", domain.Node{}),
		},
	}
	err := ValidateSite(site)
	if err == nil {
		t.Fatal("Expected error for child without type")
	}
	if !strings.Contains(err.Error(), "child 0: missing type") {
		t.Errorf("Expected missing type error, got: %v", err)
	}
}

func TestValidateSite_UnknownChildRef(t *testing.T) {
	site := &domain.Site{
		Blocks: []domain.Node{
			block("hero", "section", domain.Node{Type: "#ghost"}),
		},
	}
	err := ValidateSite(site)
	if err == nil {
		t.Fatal("Expected error for unknown block reference")
	}
	if !strings.Contains(err.Error(), "unknown block reference '#ghost'") {
		t.Errorf("Expected reference error, got: %v", err)
	}
}

func TestValidateSite_Cycle(t *testing.T) {
	// ping -> pong -> ping
	site := &domain.Site{
		Blocks: []domain.Node{
			block("ping", "div", domain.Node{Type: "#pong"}),
			block("pong", "div", domain.Node{Type: "#ping"}),
		},
	}
	err := ValidateSite(site)
	if err == nil {
		t.Fatal("Expected error for circular block reference")
	}
	if !strings.Contains(err.Error(), "circular block reference") {
		t.Errorf("Expected cycle error, got: %v", err)
	}

	// Self-reference is the shortest cycle
	self := &domain.Site{
		Blocks: []domain.Node{
			block("loop", "div", domain.Node{Type: "#loop"}),
		},
	}
	if err := ValidateSite(self); err == nil || !strings.Contains(err.Error(), "circular block reference") {
		t.Errorf("Expected cycle error for self-reference, got: %v", err)
	}
}

func TestValidateSite_UndeclaredLocale(t *testing.T) {
	site := &domain.Site{
		Blocks: []domain.Node{
			{Name: "hero", Type: "div", I18n: map[string]domain.Override{
				"de": {},
			}},
		},
		Languages: domain.Languages{
			Default:   "en",
			Supported: []domain.Language{{Code: "en"}, {Code: "fr"}},
		},
	}
	err := ValidateSite(site)
	if err == nil {
		t.Fatal("Expected error for undeclared locale")
	}
	if !strings.Contains(err.Error(), "i18n locale 'de' not declared") {
		t.Errorf("Expected locale error, got: %v", err)
	}

	// A regional variant of a declared base language passes
	variant := &domain.Site{
		Blocks: []domain.Node{
			{Name: "hero", Type: "div", I18n: map[string]domain.Override{
				"fr-CA": {},
			}},
		},
		Languages: site.Languages,
	}
	if err := ValidateSite(variant); err != nil {
		t.Errorf("Regional variant of declared language should pass, got: %v", err)
	}
}

func TestValidateSite_DuplicatePath(t *testing.T) {
	site := &domain.Site{
		Pages: []domain.Page{
			{Path: "/", Sections: []domain.Section{{Node: &domain.Node{Type: "div"}}}},
			{Path: "/", Sections: []domain.Section{{Node: &domain.Node{Type: "div"}}}},
		},
	}
	err := ValidateSite(site)
	if err == nil {
		t.Fatal("Expected error for duplicate path")
	}
	if !strings.Contains(err.Error(), "duplicate path") {
		t.Errorf("Expected duplicate path error, got: %v", err)
	}
}

func TestValidateSite_CollectsAllErrors(t *testing.T) {
	// One broken reference plus one missing type: both must be reported
	site := &domain.Site{
		Blocks: []domain.Node{
			block("hero", "section", domain.Node{Type: "#ghost"}),
			block("empty", ""),
		},
	}
	err := ValidateSite(site)
	if err == nil {
		t.Fatal("Expected errors")
	}
	msg := err.Error()
	if !strings.Contains(msg, "#ghost") || !strings.Contains(msg, "missing type") {
		t.Errorf("Expected both errors reported, got: %v", msg)
	}
}
