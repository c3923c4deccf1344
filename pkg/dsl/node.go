package dsl

import "github.com/latticeui/lattice/pkg/domain"

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	node domain.Node
}

// Node starts a standalone (anonymous) node builder, for inline
// sections and children.
func Node(typ string) *NodeBuilder {
	return &NodeBuilder{node: domain.Node{Type: typ}}
}

// Type sets the render-node kind.
func (n *NodeBuilder) Type(typ string) *NodeBuilder {
	n.node.Type = typ
	return n
}

// Prop sets one prop value. Plain Go values are converted into the
// tagged-union form; unsupported types panic, which surfaces builder
// misuse at construction time rather than at resolution.
func (n *NodeBuilder) Prop(name string, value any) *NodeBuilder {
	pv, err := domain.ValueFrom(value)
	if err != nil {
		panic("dsl: " + err.Error())
	}
	if n.node.Props == nil {
		n.node.Props = make(map[string]domain.PropValue)
	}
	n.node.Props[name] = pv
	return n
}

// Content sets the node's text payload.
func (n *NodeBuilder) Content(content string) *NodeBuilder {
	n.node.Content = content
	return n
}

// Child appends a child node.
func (n *NodeBuilder) Child(child *NodeBuilder) *NodeBuilder {
	n.node.Children = append(n.node.Children, child.node)
	return n
}

// Ref appends a child that expands a registered block in place.
func (n *NodeBuilder) Ref(block string) *NodeBuilder {
	n.node.Children = append(n.node.Children, domain.Node{Type: "#" + block})
	return n
}

// Locale adds a per-locale override. Pass nil content to override
// props only.
func (n *NodeBuilder) Locale(code string, content *string, props map[string]any) *NodeBuilder {
	if n.node.I18n == nil {
		n.node.I18n = make(map[string]domain.Override)
	}
	o := domain.Override{Content: content}
	for k, v := range props {
		pv, err := domain.ValueFrom(v)
		if err != nil {
			panic("dsl: " + err.Error())
		}
		if o.Props == nil {
			o.Props = make(map[string]domain.PropValue)
		}
		o.Props[k] = pv
	}
	n.node.I18n[code] = o
	return n
}

// Entrance declares an entrance animation.
func (n *NodeBuilder) Entrance(animation, delay, duration, stagger string) *NodeBuilder {
	n.node.Interactions = &domain.Interactions{
		Entrance: &domain.Entrance{
			Animation: animation,
			Delay:     delay,
			Duration:  duration,
			Stagger:   stagger,
		},
	}
	return n
}

// Node returns the underlying domain.Node.
func (n *NodeBuilder) Node() domain.Node {
	return n.node
}
