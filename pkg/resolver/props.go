package resolver

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"

	"github.com/latticeui/lattice/pkg/domain"
)

// dataProps are non-visual configuration props whose numeric values
// are additionally exposed as data-<name> attributes the backend reads
// directly, without reparsing.
var dataProps = map[string]bool{
	"columns": true,
	"gap":     true,
	"rows":    true,
	"span":    true,
	"order":   true,
}

// attrSet accumulates coerced attributes for one render node. Class
// fragments are collected separately so nested className contributions
// concatenate instead of overwriting each other.
type attrSet struct {
	attrs   map[string]any
	classes []string
}

func newAttrSet() *attrSet {
	return &attrSet{attrs: make(map[string]any)}
}

// add coerces one resolved prop into the set, one branch per value
// variant.
func (a *attrSet) add(name string, value domain.PropValue) {
	if name == "className" {
		if value.Kind() == domain.KindString && value.Str() != "" {
			a.classes = append(a.classes, value.Str())
		}
		return
	}

	attr := KebabCase(name)
	switch value.Kind() {
	case domain.KindString:
		a.attrs[attr] = value.Str()
	case domain.KindNumber:
		a.attrs[attr] = strconv.FormatFloat(value.Num(), 'f', -1, 64)
		if dataProps[name] {
			a.attrs["data-"+attr] = value.Num()
		}
	case domain.KindBool:
		// Boolean HTML attribute: true is present with an empty value,
		// false is omitted entirely.
		if value.Bool() {
			a.attrs[attr] = ""
		}
	case domain.KindObject:
		a.attrs["data-"+attr] = marshalComposite(value.Object())
	case domain.KindArray:
		a.attrs["data-"+attr] = marshalComposite(value.Array())
	}
}

// addClass appends a class fragment without going through prop
// coercion.
func (a *attrSet) addClass(fragment string) {
	if fragment != "" {
		a.classes = append(a.classes, fragment)
	}
}

// finish returns the attribute map, folding accumulated class
// fragments into a single space-joined class attribute.
func (a *attrSet) finish() map[string]any {
	if len(a.classes) > 0 {
		a.attrs["class"] = strings.Join(a.classes, " ")
	}
	if len(a.attrs) == 0 {
		return nil
	}
	return a.attrs
}

// marshalComposite serializes an object/array prop into a data
// attribute string. Values come from decoded JSON/YAML, so this only
// fails on exotic injected types; empty composites serialize as
// {} / [], never disappear.
func marshalComposite(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

// KebabCase transliterates a camelCase prop name into its attribute
// form: ariaLabel -> aria-label, dataTestId -> data-test-id.
func KebabCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 2)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
