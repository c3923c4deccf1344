// Package animation computes entrance-animation timing. Timing inputs
// are duration strings with unit suffixes ("500ms", "1s"); the parser
// is deliberately lenient and treats anything malformed as zero so the
// scheduler stays total.
package animation

import "time"

// DefaultDuration applies when an entrance declares no duration.
const DefaultDuration = 300 * time.Millisecond

// ParseMs parses a timing string into whole milliseconds. Malformed or
// negative values yield 0.
func ParseMs(s string) int {
	if s == "" {
		return 0
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0
	}
	return int(d.Milliseconds())
}

// ComputeTiming resolves an entrance declaration for the node at the
// given zero-based sibling index:
//
//	delayMs = delay + index*stagger
//
// The animation name passes through untouched; mapping it to a CSS
// keyframe is the render backend's concern.
func ComputeTiming(e Entrance, siblingIndex int) Timing {
	durationMs := int(DefaultDuration.Milliseconds())
	if e.Duration != "" {
		// A declared but malformed duration counts as 0, not as the
		// default: only absence selects the default.
		durationMs = ParseMs(e.Duration)
	}
	return Timing{
		Name:       e.Animation,
		DelayMs:    ParseMs(e.Delay) + siblingIndex*ParseMs(e.Stagger),
		DurationMs: durationMs,
	}
}

// Entrance mirrors the declarative entrance configuration. Declared
// here rather than importing the domain package so the scheduler stays
// a leaf with no dependencies.
type Entrance struct {
	Animation string
	Delay     string
	Duration  string
	Stagger   string
}

// Timing is the computed schedule for one node.
type Timing struct {
	Name       string
	DelayMs    int
	DurationMs int
}
