/*
Package lattice is a declarative UI templating engine. It takes block
templates (parameterized trees of typed nodes with properties, children, text
content and per-locale overrides) and resolves them into concrete render
trees for a given invocation context (variables, active locale).

# Concept

A site is a library of named, reusable blocks plus a set of pages. Each page
is a sequence of sections; a section either references a block (binding a
variable context at the invocation site) or declares an inline node. The
engine resolves every section into a render node tree: coerced attributes,
substituted text, nested children and entrance-animation timing. A separate
rendering backend (React, or any DOM-producing layer) turns that tree into
markup.

# Key Properties

  - Pure resolution: the same block with the same vars and locale always
    yields a structurally identical tree; no shared mutable state.
  - Degrade gracefully: undefined variables and missing translation keys stay
    literal in the output instead of failing, so partial configurations still
    render something inspectable.
  - Immutable snapshots: the block registry and translation table are built
    once and read concurrently without locking; Reload swaps them atomically.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/latticeui/lattice"
	)

	func main() {
		// Initialize the engine from ./site.yaml
		eng, err := lattice.New("./site.yaml")
		if err != nil {
			log.Fatal(err)
		}

		tree, err := eng.ResolvePage(context.Background(), "/", "en-US")
		if err != nil {
			log.Fatal(err)
		}

		for _, section := range tree.Sections {
			log.Println(section.Type, section.Content)
		}
	}
*/
package lattice
