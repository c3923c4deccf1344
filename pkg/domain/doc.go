// Package domain contains the core data model of the Lattice engine:
// block templates, pages, prop values, i18n overrides and the resolved
// render tree. It has no dependencies on the resolver or any adapter,
// so every layer of the system can share these types freely.
package domain
