// Package validator checks a site definition for structural problems
// before the engine snapshots it: unknown block references, missing
// node types, circular block references and undeclared locales.
package validator

import (
	"fmt"
	"strings"

	"github.com/latticeui/lattice/pkg/domain"
	"github.com/latticeui/lattice/pkg/i18n"
	"github.com/latticeui/lattice/pkg/registry"
)

// ValidateSite validates the whole definition and reports every
// problem found, not just the first.
func ValidateSite(site *domain.Site) error {
	var errors []string

	reg, err := registry.New(site.Blocks)
	if err != nil {
		// Registry construction fails on the first defect; collect it
		// and continue with whatever blocks parse cleanly.
		errors = append(errors, err.Error())
		reg = partialRegistry(site.Blocks)
	}

	for _, block := range site.Blocks {
		errors = append(errors, validateNode(&block, "block '"+block.Name+"'", reg, site.Languages)...)
	}

	seenPaths := make(map[string]bool)
	for _, page := range site.Pages {
		label := fmt.Sprintf("page '%s'", page.Path)
		if page.Path == "" {
			errors = append(errors, "page missing path")
			continue
		}
		if seenPaths[page.Path] {
			errors = append(errors, fmt.Sprintf("%s: duplicate path", label))
		}
		seenPaths[page.Path] = true

		for i, sec := range page.Sections {
			secLabel := fmt.Sprintf("%s section %d", label, i)
			switch {
			case sec.IsRef():
				if !reg.Has(sec.Block) {
					errors = append(errors, fmt.Sprintf("%s: unknown block '%s'", secLabel, sec.Block))
				}
			case sec.Node != nil:
				errors = append(errors, validateNode(sec.Node, secLabel, reg, site.Languages)...)
			default:
				errors = append(errors, fmt.Sprintf("%s: neither block reference nor inline node", secLabel))
			}
		}
	}

	errors = append(errors, findCycles(site.Blocks)...)

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}
	return nil
}

// validateNode walks one node tree collecting shape problems.
func validateNode(node *domain.Node, label string, reg *registry.Registry, langs domain.Languages) []string {
	var errors []string

	if ref, ok := strings.CutPrefix(node.Type, "#"); ok && ref != "" {
		if !reg.Has(ref) {
			errors = append(errors, fmt.Sprintf("%s: unknown block reference '#%s'", label, ref))
		}
	} else if node.Type == "" {
		errors = append(errors, fmt.Sprintf("%s: missing type", label))
	}

	for locale := range node.I18n {
		if !localeDeclared(locale, langs) {
			errors = append(errors, fmt.Sprintf("%s: i18n locale '%s' not declared in languages", label, locale))
		}
	}

	for i := range node.Children {
		childLabel := fmt.Sprintf("%s child %d", label, i)
		errors = append(errors, validateNode(&node.Children[i], childLabel, reg, langs)...)
	}
	return errors
}

// localeDeclared accepts exact matches and regional variants of a
// declared base language (en-GB when 'en' is supported). When no
// languages are configured at all, any locale passes.
func localeDeclared(locale string, langs domain.Languages) bool {
	if len(langs.Supported) == 0 {
		return true
	}
	if langs.IsSupported(locale) {
		return true
	}
	return langs.IsSupported(i18n.BaseLanguage(locale))
}

// findCycles runs a DFS over the block-reference graph (edges are
// '#name' child types) and reports every cycle once.
func findCycles(blocks []domain.Node) []string {
	refs := make(map[string][]string, len(blocks))
	for _, b := range blocks {
		if b.Name == "" {
			continue
		}
		refs[b.Name] = collectRefs(&b, nil)
	}

	const (
		unvisited = 0
		inStack   = 1
		done      = 2
	)
	state := make(map[string]int, len(refs))
	var errors []string

	var visit func(name string, path []string)
	visit = func(name string, path []string) {
		switch state[name] {
		case done:
			return
		case inStack:
			errors = append(errors, fmt.Sprintf("circular block reference: %s", strings.Join(append(path, name), " > ")))
			return
		}
		state[name] = inStack
		for _, next := range refs[name] {
			if _, known := refs[next]; known {
				visit(next, append(path, name))
			}
		}
		state[name] = done
	}

	for _, b := range blocks {
		if b.Name != "" {
			visit(b.Name, nil)
		}
	}
	return errors
}

// collectRefs gathers the block names a node tree references.
func collectRefs(node *domain.Node, acc []string) []string {
	if ref, ok := strings.CutPrefix(node.Type, "#"); ok && ref != "" {
		acc = append(acc, ref)
	}
	for i := range node.Children {
		acc = collectRefs(&node.Children[i], acc)
	}
	return acc
}

// partialRegistry builds a best-effort registry that skips defective
// blocks, so reference checking can still run after a registry error.
func partialRegistry(blocks []domain.Node) *registry.Registry {
	valid := make([]domain.Node, 0, len(blocks))
	seen := make(map[string]bool)
	for _, b := range blocks {
		if b.Name == "" || seen[b.Name] {
			continue
		}
		seen[b.Name] = true
		valid = append(valid, b)
	}
	reg, err := registry.New(valid)
	if err != nil {
		// Names may still be malformed; fall back to an empty registry.
		reg, _ = registry.New(nil)
	}
	return reg
}
