// Package resolver turns block templates into concrete render trees.
// Resolution is a pure function of (node, variables, locale) over the
// immutable block registry and translation table: it never mutates its
// inputs and every call produces an independent output tree, so any
// number of resolutions may run concurrently.
package resolver

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/latticeui/lattice/pkg/animation"
	"github.com/latticeui/lattice/pkg/domain"
	"github.com/latticeui/lattice/pkg/i18n"
	"github.com/latticeui/lattice/pkg/registry"
)

// RefPrefix marks a child node that expands a registered block in
// place: a child with type "#hero" splices in the "hero" block.
const RefPrefix = "#"

// MaxDepth bounds template nesting. Deeper trees indicate a runaway
// expansion even when no direct cycle was detected.
const MaxDepth = 64

// Resolver resolves nodes against a block registry and a translation
// table. Both are read-only snapshots; a Resolver is safe for
// concurrent use.
type Resolver struct {
	registry *registry.Registry
	table    *i18n.Table
	logger   *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the structured logger used for soft-degradation
// diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New creates a resolver over the given snapshots.
func New(reg *registry.Registry, table *i18n.Table, opts ...Option) *Resolver {
	r := &Resolver{
		registry: reg,
		table:    table,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// frame is the per-call resolution context. Frames are passed by
// value; sibling resolutions share nothing mutable.
type frame struct {
	vars   map[string]any
	locale string
	index  int
	stack  []string // block names currently being expanded
	depth  int
}

// ResolveSection resolves one page section. Block references load the
// named block and bind the section's vars map as the variable context;
// inline nodes resolve directly. The section root has sibling index 0.
func (r *Resolver) ResolveSection(sec domain.Section, locale string) (*domain.RenderNode, error) {
	if sec.IsRef() {
		return r.ResolveBlock(sec.Block, sec.Vars, locale)
	}
	if sec.Node == nil {
		return nil, fmt.Errorf("section declares neither a block reference nor an inline node")
	}
	return r.resolveNode(sec.Node, frame{vars: sec.Vars, locale: locale})
}

// ResolveBlock resolves a named block with the given variable context.
func (r *Resolver) ResolveBlock(name string, vars map[string]any, locale string) (*domain.RenderNode, error) {
	block, err := r.registry.Get(name)
	if err != nil {
		return nil, err
	}
	return r.resolveNode(&block, frame{vars: vars, locale: locale, stack: []string{name}})
}

// resolveNode is the recursive core. Per node, in order: locale
// overlay, variable substitution, prop coercion, children
// left-to-right with their zero-based position as sibling index, then
// entrance timing.
func (r *Resolver) resolveNode(node *domain.Node, f frame) (*domain.RenderNode, error) {
	if f.depth > MaxDepth {
		return nil, fmt.Errorf("%w: nesting exceeds %d levels (via %s)",
			domain.ErrCircularReference, MaxDepth, strings.Join(f.stack, " > "))
	}
	if ref, ok := blockRef(node.Type); ok {
		return r.expandRef(ref, f)
	}
	if node.Type == "" {
		name := node.Name
		if name == "" {
			name = fmt.Sprintf("child %d", f.index)
		}
		return nil, fmt.Errorf("%s: %w", name, domain.ErrMissingType)
	}

	eff := i18n.Overlay(node, r.table, f.locale)

	out := &domain.RenderNode{
		Type:      node.Type,
		BlockName: node.Name,
		Index:     f.index,
		Content:   SubstituteString(eff.Content, f.vars),
	}

	attrs := newAttrSet()
	for name, value := range eff.Props {
		attrs.add(name, substituteProp(value, f.vars))
	}
	out.Attributes = attrs.finish()

	if len(node.Children) > 0 {
		out.Children = make([]*domain.RenderNode, 0, len(node.Children))
		for i := range node.Children {
			child, err := r.resolveNode(&node.Children[i], frame{
				vars:   f.vars,
				locale: f.locale,
				index:  i,
				stack:  f.stack,
				depth:  f.depth + 1,
			})
			if err != nil {
				return nil, err
			}
			out.Children = append(out.Children, child)
		}
	}

	if node.Interactions != nil && node.Interactions.Entrance != nil {
		e := node.Interactions.Entrance
		timing := animation.ComputeTiming(animation.Entrance{
			Animation: e.Animation,
			Delay:     e.Delay,
			Duration:  e.Duration,
			Stagger:   e.Stagger,
		}, f.index)
		out.Animation = &domain.Animation{
			Name:       timing.Name,
			DelayMs:    timing.DelayMs,
			DurationMs: timing.DurationMs,
		}
	}

	return out, nil
}

// expandRef splices a registered block into the tree at the current
// position, keeping the caller's variable context. Re-entering a block
// already on the expansion stack is a structural error.
func (r *Resolver) expandRef(name string, f frame) (*domain.RenderNode, error) {
	for _, active := range f.stack {
		if active == name {
			return nil, fmt.Errorf("%w: %s", domain.ErrCircularReference,
				strings.Join(append(f.stack, name), " > "))
		}
	}

	block, err := r.registry.Get(name)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("expanding block reference", "block", name, "depth", f.depth)

	return r.resolveNode(&block, frame{
		vars:   f.vars,
		locale: f.locale,
		index:  f.index,
		stack:  append(f.stack[:len(f.stack):len(f.stack)], name),
		depth:  f.depth + 1,
	})
}

// blockRef extracts the block name from a "#name" type tag.
func blockRef(typ string) (string, bool) {
	if strings.HasPrefix(typ, RefPrefix) && len(typ) > len(RefPrefix) {
		return typ[len(RefPrefix):], true
	}
	return "", false
}
