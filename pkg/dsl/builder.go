package dsl

import (
	"github.com/latticeui/lattice/pkg/adapters/memory"
	"github.com/latticeui/lattice/pkg/domain"
)

// Builder manages site construction.
type Builder struct {
	blocks []*NodeBuilder
	pages  []*PageBuilder
	langs  domain.Languages
}

// New creates a new site builder.
func New() *Builder {
	return &Builder{}
}

// Block declares a named block template and returns its builder.
func (b *Builder) Block(name string) *NodeBuilder {
	nb := &NodeBuilder{node: domain.Node{Name: name}}
	b.blocks = append(b.blocks, nb)
	return nb
}

// Page declares a page at the given path and returns its builder.
func (b *Builder) Page(path string) *PageBuilder {
	pb := &PageBuilder{page: domain.Page{Path: path}}
	b.pages = append(b.pages, pb)
	return pb
}

// Languages sets the locale configuration.
func (b *Builder) Languages(langs domain.Languages) *Builder {
	b.langs = langs
	return b
}

// Build compiles the site into a memory loader.
func (b *Builder) Build() *memory.Loader {
	site := domain.Site{Languages: b.langs}
	for _, nb := range b.blocks {
		site.Blocks = append(site.Blocks, nb.node)
	}
	for _, pb := range b.pages {
		site.Pages = append(site.Pages, pb.page)
	}
	return memory.NewFromSite(site)
}

// PageBuilder provides a fluent API for composing a page.
type PageBuilder struct {
	page domain.Page
}

// Title sets the page title.
func (p *PageBuilder) Title(title string) *PageBuilder {
	p.page.Title = title
	return p
}

// Use appends a block-reference section with the given variable
// context.
func (p *PageBuilder) Use(block string, vars map[string]any) *PageBuilder {
	p.page.Sections = append(p.page.Sections, domain.Section{Block: block, Vars: vars})
	return p
}

// Inline appends an inline-node section.
func (p *PageBuilder) Inline(node *NodeBuilder) *PageBuilder {
	n := node.Node()
	p.page.Sections = append(p.page.Sections, domain.Section{Node: &n})
	return p
}
