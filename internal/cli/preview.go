// Package cli implements the terminal-facing presentation of resolved
// render trees for the preview command.
package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/latticeui/lattice/pkg/domain"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Preview writes a human-readable outline of the tree. On a capable
// terminal the outline is rendered as styled markdown via glamour;
// otherwise (pipes, dumb terminals) the raw markdown is printed.
func Preview(w io.Writer, tree *domain.RenderTree) error {
	outline := BuildOutline(tree)

	if !styledOutput() {
		_, err := fmt.Fprint(w, outline)
		return err
	}

	width := 100
	if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 {
		width = cols
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(width),
	)
	if err != nil {
		_, werr := fmt.Fprint(w, outline)
		return werr
	}

	rendered, err := r.Render(outline)
	if err != nil {
		_, werr := fmt.Fprint(w, outline)
		return werr
	}
	_, err = fmt.Fprint(w, rendered)
	return err
}

// styledOutput reports whether stdout can carry glamour's styling.
func styledOutput() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// BuildOutline produces a markdown outline of a resolved tree.
func BuildOutline(tree *domain.RenderTree) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n\n", tree.Path, tree.Locale)
	if tree.Title != "" {
		fmt.Fprintf(&b, "%s\n\n", tree.Title)
	}
	for i, section := range tree.Sections {
		fmt.Fprintf(&b, "## Section %d\n\n", i)
		writeNode(&b, section, 0)
		b.WriteString("\n")
	}
	return b.String()
}

func writeNode(b *strings.Builder, node *domain.RenderNode, depth int) {
	indent := strings.Repeat("  ", depth)

	label := node.Type
	if node.BlockName != "" {
		label = fmt.Sprintf("%s `%s`", node.Type, node.BlockName)
	}
	fmt.Fprintf(b, "%s- **%s**", indent, label)
	if node.Content != "" {
		fmt.Fprintf(b, ": %s", node.Content)
	}
	b.WriteString("\n")

	if len(node.Attributes) > 0 {
		names := make([]string, 0, len(node.Attributes))
		for name := range node.Attributes {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(b, "%s  - `%s=%v`\n", indent, name, node.Attributes[name])
		}
	}
	if node.Animation != nil {
		fmt.Fprintf(b, "%s  - `animation: %s delay=%dms duration=%dms`\n",
			indent, node.Animation.Name, node.Animation.DelayMs, node.Animation.DurationMs)
	}

	for _, child := range node.Children {
		writeNode(b, child, depth+1)
	}
}
