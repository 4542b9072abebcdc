// Package depgraph builds and analyzes annotated dependency trees.
//
// The [Builder] expands a root package into a tree of [Node] values via
// depth-limited, path-sensitive depth-first search over a [Source] (normally
// an apt.Index). Cycles are detected per traversal path: a package name that
// repeats among its own ancestors closes a cycle, while the same package
// reached on a sibling branch is expanded again independently. There is no
// cross-branch memoization.
//
// [Analyze] derives summary statistics from a built [Graph], and [Render]
// writes the tree as ASCII art with box-drawing connectors.
package depgraph
