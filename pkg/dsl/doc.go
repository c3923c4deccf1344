/*
Package dsl provides a fluent Go builder for constructing Lattice sites
programmatically, instead of relying on external YAML or JSON files. This is
particularly useful for dynamic site generation, unit testing, and leveraging
IDE autocompletion/type-checking.

Example usage:

	site := dsl.New()

	site.Block("alert").Type("div").
		Prop("className", "alert-$variant").
		Content("$message")

	site.Page("/").
		Use("alert", map[string]any{"variant": "success", "message": "Done"})

	loader := site.Build()
	// ... pass loader to lattice.New("", lattice.WithLoader(loader))
*/
package dsl
