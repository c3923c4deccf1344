package i18n

import "github.com/latticeui/lattice/pkg/domain"

// Effective is the content/props pair a node exposes after locale
// overlaying, before variable substitution.
type Effective struct {
	Content string
	Props   map[string]domain.PropValue
}

// Overlay computes a node's effective content and props for a locale.
//
// Order of operations: shared translation references in the base
// content resolve first (against the table), then the per-locale
// override applies on top, so a per-node override always wins over a
// shared translation for the same node. Override lookup is exact
// locale, then base language; requesting "fr" when only "fr-FR" is
// declared applies no override.
//
// The returned props map is always a fresh copy; base.Props is never
// mutated. Overlay is a data merge only: it injects no
// direction-sensitive props or other locale metadata.
func Overlay(base *domain.Node, table *Table, locale string) Effective {
	eff := Effective{
		Content: table.ResolveContent(base.Content, locale),
		Props:   make(map[string]domain.PropValue, len(base.Props)),
	}
	for k, v := range base.Props {
		eff.Props[k] = v
	}

	override, ok := lookupOverride(base.I18n, locale)
	if !ok {
		return eff
	}

	if override.Content != nil {
		eff.Content = *override.Content
	}
	for k, v := range override.Props {
		eff.Props[k] = v
	}
	return eff
}

// lookupOverride finds the override for a locale: exact match first,
// then the base language.
func lookupOverride(overrides map[string]domain.Override, locale string) (domain.Override, bool) {
	if len(overrides) == 0 {
		return domain.Override{}, false
	}
	if o, ok := overrides[locale]; ok {
		return o, true
	}
	if base := BaseLanguage(locale); base != locale {
		if o, ok := overrides[base]; ok {
			return o, true
		}
	}
	return domain.Override{}, false
}
