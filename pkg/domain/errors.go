package domain

import "errors"

// ErrMissingType is returned when a node has no type. Shape errors are
// expected to be caught by schema validation before resolution, so
// this signals a configuration defect, not a runtime condition.
var ErrMissingType = errors.New("node missing type")

// ErrBlockNotFound is returned when a section references a block name
// absent from the registry.
var ErrBlockNotFound = errors.New("block not found")

// ErrCircularReference is returned when resolving a block re-enters a
// block already on the resolution stack, directly or transitively.
var ErrCircularReference = errors.New("circular block reference")

// ErrPageNotFound is returned when no page matches a requested path.
var ErrPageNotFound = errors.New("page not found")

// ErrCacheMiss is returned by render-cache adapters when no entry
// exists for the requested key.
var ErrCacheMiss = errors.New("render cache miss")
