// Package cli implements the debgraph command-line interface.
//
// The CLI validates its inputs, builds the package index for the requested
// repository mode, runs the dependency graph traversal, prints a summary
// (optionally with an ASCII tree) and persists the result as a JSON report.
// It is built with cobra; logging uses the charmbracelet/log library with
// --verbose switching to debug level.
//
// All human-readable narration lives here: the core packages return plain
// data structures and report progress through callback functions only.
package cli
