// Package i18n implements locale overlaying for nodes and the shared
// translation table. Locale fallback is always exact match first, then
// the base language (fr-FR -> fr), never a finer regional variant.
package i18n

import "strings"

// TranslationPrefix marks a whole-string shared translation reference
// in node content ("$t:cta.submit").
const TranslationPrefix = "$t:"

// Table is an immutable snapshot of the shared translations, keyed by
// locale code then by dotted translation key. It is built once from
// configuration and read concurrently without locking.
type Table struct {
	entries map[string]map[string]string
}

// NewTable copies the given translations into an immutable table. A
// nil map yields an empty table.
func NewTable(translations map[string]map[string]string) *Table {
	entries := make(map[string]map[string]string, len(translations))
	for locale, keys := range translations {
		copied := make(map[string]string, len(keys))
		for k, v := range keys {
			copied[k] = v
		}
		entries[locale] = copied
	}
	return &Table{entries: entries}
}

// Lookup resolves a translation key for the given locale: exact locale
// entry first, then the base language (de for de-AT). The boolean is
// false when neither holds the key.
func (t *Table) Lookup(locale, key string) (string, bool) {
	if t == nil {
		return "", false
	}
	if keys, ok := t.entries[locale]; ok {
		if v, ok := keys[key]; ok {
			return v, true
		}
	}
	if base := BaseLanguage(locale); base != locale {
		if keys, ok := t.entries[base]; ok {
			if v, ok := keys[key]; ok {
				return v, true
			}
		}
	}
	return "", false
}

// ResolveContent expands a whole-string translation reference. Content
// that is not exactly a $t:key reference (including interpolated
// occurrences) is returned unchanged, as is a reference with no table
// entry. Keeping the literal token makes missing translations
// inspectable in previews.
func (t *Table) ResolveContent(content, locale string) string {
	key, ok := TranslationKey(content)
	if !ok {
		return content
	}
	if v, ok := t.Lookup(locale, key); ok {
		return v
	}
	return content
}

// TranslationKey extracts the key from a whole-string $t: reference.
func TranslationKey(content string) (string, bool) {
	if !strings.HasPrefix(content, TranslationPrefix) {
		return "", false
	}
	key := content[len(TranslationPrefix):]
	if key == "" {
		return "", false
	}
	return key, true
}

// BaseLanguage strips the region from a locale code: en-US -> en. A
// code without a region is returned unchanged.
func BaseLanguage(locale string) string {
	if i := strings.IndexByte(locale, '-'); i > 0 {
		return locale[:i]
	}
	return locale
}
