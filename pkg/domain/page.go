package domain

import (
	"encoding/json"
	"fmt"
)

// Page is a routable composition of sections.
type Page struct {
	Path     string    `json:"path" yaml:"path" mapstructure:"path"`
	Title    string    `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"`
	Sections []Section `json:"sections" yaml:"sections" mapstructure:"sections"`
}

// Section is one entry of a page: either a reference to a named block
// (with an optional vars map bound at the invocation site) or an
// inline anonymous node.
type Section struct {
	// Block names a registered block template. Mutually exclusive with Node.
	Block string `json:"block,omitempty" yaml:"block,omitempty" mapstructure:"block"`

	// Vars is the variable context for a block reference. Lookups for
	// variables absent from this map leave their $token literal.
	Vars map[string]any `json:"vars,omitempty" yaml:"vars,omitempty" mapstructure:"vars"`

	// Node is an inline node used when no block is referenced.
	Node *Node `json:"node,omitempty" yaml:"node,omitempty" mapstructure:"node"`
}

// IsRef reports whether the section references a named block.
func (s Section) IsRef() bool { return s.Block != "" }

// sectionWire mirrors Section for JSON decoding. A section object with
// a "block" key is a reference; one with a "type" key is an inline
// node written without the explicit "node" wrapper.
type sectionWire struct {
	Block string         `json:"block"`
	Vars  map[string]any `json:"vars"`
	Node  *Node          `json:"node"`
	Type  string         `json:"type"`
}

// UnmarshalJSON accepts both the wrapped form {"node": {...}} and the
// shorthand where the inline node's fields sit directly on the section.
func (s *Section) UnmarshalJSON(data []byte) error {
	var w sectionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Block != "" {
		*s = Section{Block: w.Block, Vars: w.Vars}
		return nil
	}
	if w.Node != nil {
		*s = Section{Node: w.Node}
		return nil
	}
	if w.Type != "" {
		var n Node
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*s = Section{Node: &n}
		return nil
	}
	return fmt.Errorf("section must reference a block or declare an inline node")
}

// Language declares one supported locale.
type Language struct {
	Code      string `json:"code" yaml:"code" mapstructure:"code"`
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty" mapstructure:"direction"`
}

// Languages is the site's locale configuration. Translations is keyed
// by locale code, then by dotted translation key.
type Languages struct {
	Default       string                       `json:"default" yaml:"default" mapstructure:"default"`
	Supported     []Language                   `json:"supported,omitempty" yaml:"supported,omitempty" mapstructure:"supported"`
	DetectBrowser bool                         `json:"detectBrowser,omitempty" yaml:"detectBrowser,omitempty" mapstructure:"detectBrowser"`
	Translations  map[string]map[string]string `json:"translations,omitempty" yaml:"translations,omitempty" mapstructure:"translations"`
}

// IsSupported reports whether the exact locale code is declared.
func (l Languages) IsSupported(code string) bool {
	for _, lang := range l.Supported {
		if lang.Code == code {
			return true
		}
	}
	return false
}

// Site is a full validated site definition: the block library, the
// page set and the language configuration. It is the unit a loader
// produces and the engine snapshots at startup.
type Site struct {
	Blocks    []Node    `json:"blocks,omitempty" yaml:"blocks,omitempty" mapstructure:"blocks"`
	Pages     []Page    `json:"pages,omitempty" yaml:"pages,omitempty" mapstructure:"pages"`
	Languages Languages `json:"languages,omitempty" yaml:"languages,omitempty" mapstructure:"languages"`
}
