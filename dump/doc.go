// Package dump renders arbitrary runtime values as indented diagnostic text.
//
// Ownership boundary:
// - value classification (scalar / container / object)
// - member and method introspection with visibility tiers
// - cycle-safe, depth-bounded recursive rendering
// - session configuration, prototype defaults, output-capture discipline
//
// The rendered format is a compatibility contract: callers diff dump output
// across runs, so rendering is deterministic byte for byte when sorting is
// enabled. Output is not a serialization format and is never re-parsed.
package dump
