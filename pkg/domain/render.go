package domain

// RenderNode is the engine's resolved output. Each resolution call
// produces a fresh, independent tree; nodes are never shared or
// mutated across invocations, so trees from concurrent resolutions
// cannot interfere.
type RenderNode struct {
	// Type is the render-node kind, copied from the source node.
	Type string `json:"type"`

	// BlockName is the declared name for registry-level blocks, empty
	// for anonymous children. Together with Index it gives the backend
	// enough identity to derive deterministic test hooks
	// (block-<name>, child-<index>).
	BlockName string `json:"blockName,omitempty"`

	// Index is the node's zero-based position among its immediate
	// siblings (0 for a section root).
	Index int `json:"index"`

	// Attributes holds coerced props. Values are string, float64 or
	// bool: plain attributes are strings, boolean attributes are
	// present with an empty string value, and data-<name> attributes
	// for numeric config props keep their float64 so the backend reads
	// them without reparsing.
	Attributes map[string]any `json:"attributes,omitempty"`

	// Content is the resolved text payload.
	Content string `json:"content,omitempty"`

	Children []*RenderNode `json:"children,omitempty"`

	// Animation is set when the source node declares an entrance
	// animation.
	Animation *Animation `json:"animation,omitempty"`
}

// Animation is resolved entrance-animation timing. The name is passed
// through for the backend to map onto a concrete CSS keyframe.
type Animation struct {
	Name       string `json:"name"`
	DelayMs    int    `json:"delayMs"`
	DurationMs int    `json:"durationMs"`
}

// RenderTree is the resolved form of a whole page: one render node
// per section, in page order. It is the payload cached and served by
// the adapters.
type RenderTree struct {
	Path     string        `json:"path"`
	Title    string        `json:"title,omitempty"`
	Locale   string        `json:"locale"`
	Sections []*RenderNode `json:"sections"`
}
