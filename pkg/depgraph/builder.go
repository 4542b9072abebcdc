package depgraph

import (
	"context"
	"slices"
	"strings"

	"github.com/Luxem4ik23/debgraph/pkg/apt"
	"github.com/Luxem4ik23/debgraph/pkg/errors"
)

// DefaultMaxDepth bounds the traversal when a negative depth is configured.
const DefaultMaxDepth = 5

// Source answers package lookups during traversal.
type Source interface {
	// Info retrieves the record for a package by name. The version is a
	// hint only; implementations may ignore it.
	Info(ctx context.Context, name, version string) (*apt.Package, error)
	// Dependencies retrieves the package's direct dependency names in
	// resolution order.
	Dependencies(ctx context.Context, name, version string) ([]string, error)
}

// Options configures a traversal.
type Options struct {
	MaxDepth int                  // Maximum node depth to expand to; 0 keeps the root unexpanded, negative selects the default
	Filter   string               // Case-insensitive substring; matching dependencies are dropped
	Logger   func(string, ...any) // Progress callback (optional)
}

// WithDefaults returns a copy of Options with unset values replaced by
// defaults. MaxDepth 0 is a meaningful value (expand nothing below the root)
// and is left alone; only a negative depth falls back to DefaultMaxDepth.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.MaxDepth < 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Builder expands a root package into a dependency tree by consulting a
// Source at every step.
type Builder struct {
	source Source
}

// NewBuilder creates a Builder reading from the given source.
func NewBuilder(source Source) *Builder {
	return &Builder{source: source}
}

// Build traverses the dependency graph rooted at the named package.
//
// Lookup failures for individual packages are recorded on the affected node
// and never abort the traversal; only an unavailable index (no source could
// be fetched at all) is returned as an error. The caller-supplied version is
// used for the root lookup only; deeper lookups carry an empty version hint.
// With MaxDepth 0 the result is the resolved root node alone, its
// dependencies left unexpanded.
func (b *Builder) Build(ctx context.Context, name, version string, opts Options) (*Graph, error) {
	opts = opts.WithDefaults()

	root, err := b.expand(ctx, name, version, 0, nil, opts)
	if err != nil {
		return nil, err
	}

	return &Graph{
		Root:          name,
		Dependencies:  root,
		Cycles:        []string{},
		FilteredCount: root.FilteredCount,
	}, nil
}

// expand builds the node for one package and recurses into its dependencies.
// path holds the ancestor names from the root to the parent, in order.
func (b *Builder) expand(ctx context.Context, name, version string, depth int, path []string, opts Options) (*Node, error) {
	node := &Node{Package: name, Depth: depth}

	if i := slices.Index(path, name); i >= 0 {
		cycle := append(slices.Clone(path[i:]), name)
		node.Cycle = strings.Join(cycle, " -> ")
		opts.Logger("cycle detected: %s", node.Cycle)
		return node, nil
	}

	info, err := b.source.Info(ctx, name, version)
	if err != nil {
		if fatal := b.fail(node, err, opts); fatal != nil {
			return nil, fatal
		}
		return node, nil
	}
	deps, err := b.source.Dependencies(ctx, name, version)
	if err != nil {
		if fatal := b.fail(node, err, opts); fatal != nil {
			return nil, fatal
		}
		return node, nil
	}

	node.Version = info.Version
	node.Children = NewChildren()
	opts.Logger("%s%s (depth %d)", strings.Repeat("  ", depth), name, depth)

	filter := strings.ToLower(opts.Filter)
	var kept []string
	for _, dep := range deps {
		if filter != "" && strings.Contains(strings.ToLower(dep), filter) {
			node.FilteredCount++
			opts.Logger("%sfiltered: %s", strings.Repeat("  ", depth+1), dep)
			continue
		}
		kept = append(kept, dep)
	}

	if len(kept) == 0 {
		return node, nil
	}

	// Children past the depth limit are not materialized: truncation is
	// silent and no node ever carries a depth beyond the limit.
	if depth+1 > opts.MaxDepth {
		return node, nil
	}

	childPath := append(slices.Clone(path), name)
	for _, dep := range kept {
		if _, ok := node.Children.Get(dep); ok {
			continue
		}
		child, err := b.expand(ctx, dep, "", depth+1, childPath, opts)
		if err != nil {
			return nil, err
		}
		node.Children.Add(dep, child)
	}

	return node, nil
}

// fail converts a lookup error into a node-level error, except for an
// unavailable index, which is fatal to the whole build.
func (b *Builder) fail(node *Node, err error, opts Options) error {
	if errors.Is(err, errors.ErrCodeIndexUnavailable) {
		return err
	}
	node.Err = errors.UserMessage(err)
	opts.Logger("%s: %s", node.Package, node.Err)
	return nil
}
