package i18n

import (
	"testing"

	"github.com/latticeui/lattice/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestOverlay_ExactLocale(t *testing.T) {
	// Scenario: base 'Submit' with a fr-FR override.
	node := &domain.Node{
		Type:    "button",
		Content: "Submit",
		I18n: map[string]domain.Override{
			"fr-FR": {Content: strPtr("Soumettre")},
		},
	}

	eff := Overlay(node, NewTable(nil), "fr-FR")
	assert.Equal(t, "Soumettre", eff.Content)

	// de-DE has no override and no de entry: base content survives.
	eff = Overlay(node, NewTable(nil), "de-DE")
	assert.Equal(t, "Submit", eff.Content)
}

func TestOverlay_FallbackGoesCoarserNotFiner(t *testing.T) {
	// Requesting 'fr' when only 'fr-FR' exists applies no override:
	// fallback resolves xx-YY to xx, never xx to xx-YY.
	node := &domain.Node{
		Type:    "button",
		Content: "Submit",
		I18n: map[string]domain.Override{
			"fr-FR": {Content: strPtr("Soumettre")},
		},
	}

	eff := Overlay(node, NewTable(nil), "fr")
	assert.Equal(t, "Submit", eff.Content)
}

func TestOverlay_BaseLanguageFallback(t *testing.T) {
	node := &domain.Node{
		Type:    "button",
		Content: "Submit",
		I18n: map[string]domain.Override{
			"fr": {Content: strPtr("Soumettre")},
		},
	}

	// fr-BE falls back to the fr override.
	eff := Overlay(node, NewTable(nil), "fr-BE")
	assert.Equal(t, "Soumettre", eff.Content)
}

func TestOverlay_PropsShallowMerge(t *testing.T) {
	node := &domain.Node{
		Type: "a",
		Props: map[string]domain.PropValue{
			"href":      domain.StringValue("/en/docs"),
			"ariaLabel": domain.StringValue("Documentation"),
		},
		I18n: map[string]domain.Override{
			"fr": {Props: map[string]domain.PropValue{
				"href": domain.StringValue("/fr/docs"),
			}},
		},
	}

	eff := Overlay(node, NewTable(nil), "fr")
	// Override keys win
	assert.Equal(t, "/fr/docs", eff.Props["href"].Str())
	// Unspecified base keys survive
	assert.Equal(t, "Documentation", eff.Props["ariaLabel"].Str())
	// Base props are never mutated
	assert.Equal(t, "/en/docs", node.Props["href"].Str())
}

func TestOverlay_ContentOnlyOverrideKeepsProps(t *testing.T) {
	node := &domain.Node{
		Type:    "button",
		Content: "Submit",
		Props: map[string]domain.PropValue{
			"className": domain.StringValue("btn"),
		},
		I18n: map[string]domain.Override{
			"es": {Content: strPtr("Enviar")},
		},
	}

	eff := Overlay(node, NewTable(nil), "es")
	assert.Equal(t, "Enviar", eff.Content)
	assert.Equal(t, "btn", eff.Props["className"].Str())
}

func TestOverlay_NilContentKeepsBase(t *testing.T) {
	// An override that only touches props leaves content alone.
	node := &domain.Node{
		Type:    "div",
		Content: "Base",
		I18n: map[string]domain.Override{
			"fr": {Props: map[string]domain.PropValue{"dir": domain.StringValue("ltr")}},
		},
	}

	eff := Overlay(node, NewTable(nil), "fr")
	assert.Equal(t, "Base", eff.Content)
}

func TestOverlay_OverrideWinsOverSharedTranslation(t *testing.T) {
	// Shared translation resolves first, then the per-node override
	// replaces it.
	table := NewTable(map[string]map[string]string{
		"fr": {"cta.submit": "Soumettre"},
	})
	node := &domain.Node{
		Type:    "button",
		Content: "$t:cta.submit",
		I18n: map[string]domain.Override{
			"fr": {Content: strPtr("Valider")},
		},
	}

	eff := Overlay(node, table, "fr")
	assert.Equal(t, "Valider", eff.Content)

	// Without an override the shared translation applies.
	node.I18n = nil
	eff = Overlay(node, table, "fr")
	assert.Equal(t, "Soumettre", eff.Content)
}
