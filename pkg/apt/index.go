package apt

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Luxem4ik23/debgraph/pkg/errors"
)

const (
	// DefaultTimeout bounds each individual fetch attempt.
	DefaultTimeout = 30 * time.Second

	maxSuggestions = 5  // similar names listed on a lookup miss
	maxExamples    = 10 // example names listed when nothing is similar
)

// DefaultMirrors are the well-known Ubuntu 20.04 LTS (Focal Fossa) index
// locations, tried in order when no repository source is configured.
var DefaultMirrors = []string{
	// Main repository
	"http://archive.ubuntu.com/ubuntu/dists/focal/main/binary-amd64/Packages.gz",
	"http://archive.ubuntu.com/ubuntu/dists/focal/universe/binary-amd64/Packages.gz",
	// Security updates
	"http://security.ubuntu.com/ubuntu/dists/focal-security/main/binary-amd64/Packages.gz",
	// Ports for other architectures
	"http://ports.ubuntu.com/ubuntu-ports/dists/focal/main/binary-amd64/Packages.gz",
}

// IndexOptions configures where and how an [Index] acquires its data.
type IndexOptions struct {
	Mirrors   []string             // Candidate index URLs, tried in order
	LocalPath string               // Local Packages file, tried before any mirror (plain or gzip)
	Timeout   time.Duration        // Per-attempt timeout (default: 30s)
	Logger    func(string, ...any) // Progress/error callback (optional)
}

// WithDefaults returns a copy of IndexOptions with zero values replaced by
// defaults. Mirrors are only defaulted when no source is configured at all,
// so a local-only configuration stays local-only.
func (o IndexOptions) WithDefaults() IndexOptions {
	opts := o
	if opts.Mirrors == nil && opts.LocalPath == "" {
		opts.Mirrors = DefaultMirrors
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Index is a lazily populated, memoized view of a repository's package
// records. The first call to [Index.Info] or [Index.Dependencies] fetches and
// parses the index; every later call reuses the in-memory records. Population
// happens at most once per Index, guarded by a one-time barrier, and the
// records are read-only afterwards.
type Index struct {
	opts   IndexOptions
	client *http.Client

	once     sync.Once
	loadErr  error
	packages map[string]*Package
	names    []string // parse order, for deterministic example suggestions
}

// NewIndex creates an Index for the configured sources. No network or disk
// access happens until the first lookup.
func NewIndex(opts IndexOptions) *Index {
	opts = opts.WithDefaults()
	return &Index{
		opts:   opts,
		client: &http.Client{Timeout: opts.Timeout},
	}
}

// Info returns the record for the named package. The version argument is
// accepted for interface symmetry but does not select among versions: the
// index holds exactly one record per name.
func (ix *Index) Info(ctx context.Context, name, version string) (*Package, error) {
	if err := ix.load(ctx); err != nil {
		return nil, err
	}
	return ix.find(name)
}

// Dependencies returns the package's Depends entries followed by its
// Pre-Depends entries, in that fixed order. Each list is internally
// deduplicated but they are not deduplicated against each other, so a name
// present in both appears twice.
func (ix *Index) Dependencies(ctx context.Context, name, version string) ([]string, error) {
	info, err := ix.Info(ctx, name, version)
	if err != nil {
		return nil, err
	}
	deps := make([]string, 0, len(info.Depends)+len(info.PreDepends))
	deps = append(deps, info.Depends...)
	deps = append(deps, info.PreDepends...)
	return deps, nil
}

// load populates the index exactly once. The error (or success) of the first
// attempt is remembered for the lifetime of the Index.
func (ix *Index) load(ctx context.Context) error {
	ix.once.Do(func() {
		content, err := ix.fetch(ctx)
		if err != nil {
			ix.loadErr = err
			return
		}
		ix.packages, ix.names = ParseControl(content)
		ix.opts.Logger("parsed %d packages from index", len(ix.names))
	})
	return ix.loadErr
}

// fetch tries the configured sources strictly in order: the local file first
// if one is set, then each mirror URL. The first success wins. The failure
// error deliberately names no individual source.
func (ix *Index) fetch(ctx context.Context) (string, error) {
	if ix.opts.LocalPath != "" {
		content, err := ix.readLocal(ix.opts.LocalPath)
		if err == nil {
			return content, nil
		}
		if len(ix.opts.Mirrors) == 0 {
			return "", errors.Wrap(errors.ErrCodeIndexUnavailable, err, "could not read the local package index")
		}
		ix.opts.Logger("local index unavailable, falling back to mirrors: %v", err)
	}

	for _, mirror := range ix.opts.Mirrors {
		ix.opts.Logger("downloading package index: %s", mirror)
		content, err := ix.download(ctx, mirror)
		if err != nil {
			ix.opts.Logger("mirror failed: %v", err)
			continue
		}
		ix.opts.Logger("downloaded and decompressed %d bytes", len(content))
		return content, nil
	}

	return "", errors.New(errors.ErrCodeIndexUnavailable, "could not download the package index from any configured source")
}

func (ix *Index) download(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := ix.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return decompress(data)
}

func (ix *Index) readLocal(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return decompress(data)
}

// decompress gunzips data when it carries the gzip magic bytes and returns
// it as-is otherwise, so both Packages and Packages.gz sources work.
func decompress(data []byte) (string, error) {
	if len(data) < 2 || data[0] != 0x1f || data[1] != 0x8b {
		return string(data), nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	defer zr.Close()
	plain, err := io.ReadAll(zr)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// find resolves an exact name or fails with a PACKAGE_NOT_FOUND error whose
// message suggests similar names (case-insensitive substring matches against
// the query) or, failing that, lists a few known names as examples.
func (ix *Index) find(name string) (*Package, error) {
	if pkg, ok := ix.packages[name]; ok {
		return pkg, nil
	}

	query := strings.ToLower(name)
	var similar []string
	for _, known := range ix.names {
		if strings.Contains(strings.ToLower(known), query) {
			similar = append(similar, known)
			if len(similar) == maxSuggestions {
				break
			}
		}
	}
	if len(similar) > 0 {
		return nil, errors.New(errors.ErrCodePackageNotFound,
			"package %q not found. similar packages: %s", name, strings.Join(similar, ", "))
	}

	examples := ix.names
	if len(examples) > maxExamples {
		examples = examples[:maxExamples]
	}
	return nil, errors.New(errors.ErrCodePackageNotFound,
		"package %q not found. examples of available packages: %s", name, strings.Join(examples, ", "))
}
