package domain

// Common render-node kinds. The engine does not restrict Type to this
// list; composite kinds (card, flex, grid) pass through to the backend.
const (
	TypeDiv    = "div"
	TypeText   = "text"
	TypeButton = "button"
	TypeIcon   = "icon"
)

// Node is the shared shape of a block template and of an anonymous
// child. A named, registry-level template is a Block; a nested child
// carries an empty Name. Children nest without a declared depth limit.
type Node struct {
	// Name identifies a reusable block (kebab-case). Empty for children.
	Name string `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`

	// Type is the render-node kind (div, button, text, icon, card, ...).
	// Required; a node without a type cannot be resolved.
	Type string `json:"type" yaml:"type" mapstructure:"type"`

	// Props maps attribute names (camelCase) to values. String values
	// may contain $variable tokens.
	Props map[string]PropValue `json:"props,omitempty" yaml:"props,omitempty" mapstructure:"props"`

	// Content is the node's text payload; may contain $variable tokens
	// or be a whole-string shared translation reference ($t:key).
	Content string `json:"content,omitempty" yaml:"content,omitempty" mapstructure:"content"`

	// Children are resolved in declaration order, left to right.
	Children []Node `json:"children,omitempty" yaml:"children,omitempty" mapstructure:"children"`

	// I18n maps locale codes (en, en-US) to partial overrides of
	// content/props for that locale.
	I18n map[string]Override `json:"i18n,omitempty" yaml:"i18n,omitempty" mapstructure:"i18n"`

	// Interactions holds behavioral metadata; only entrance animations
	// are interpreted by the engine.
	Interactions *Interactions `json:"interactions,omitempty" yaml:"interactions,omitempty" mapstructure:"interactions"`
}

// Override is a per-locale partial override of a node. A nil Content
// leaves the base content in place; Props shallow-merge on top of the
// base props (override keys win, unspecified base keys survive).
type Override struct {
	Content *string              `json:"content,omitempty" yaml:"content,omitempty" mapstructure:"content"`
	Props   map[string]PropValue `json:"props,omitempty" yaml:"props,omitempty" mapstructure:"props"`
}

// Interactions groups a node's behavioral configuration.
type Interactions struct {
	Entrance *Entrance `json:"entrance,omitempty" yaml:"entrance,omitempty" mapstructure:"entrance"`
}

// Entrance describes an entrance animation. Timing values are strings
// with a unit suffix ("500ms", "1s"); malformed values count as zero.
type Entrance struct {
	Animation string `json:"animation" yaml:"animation" mapstructure:"animation"`
	Delay     string `json:"delay,omitempty" yaml:"delay,omitempty" mapstructure:"delay"`
	Duration  string `json:"duration,omitempty" yaml:"duration,omitempty" mapstructure:"duration"`
	Stagger   string `json:"stagger,omitempty" yaml:"stagger,omitempty" mapstructure:"stagger"`
}
