/*
Package ports defines the driven ports (interfaces) for the Lattice engine.

These interfaces decouple the resolution core from external implementations,
allowing the engine to load site definitions from various sources and to cache
resolved render trees in various backends.

# Key Interfaces

  - SiteLoader: produces the validated site definition (blocks, pages, languages).
  - RenderCache: stores resolved render trees keyed by page path and locale.
*/
package ports
