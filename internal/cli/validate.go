package cli

import (
	"github.com/Luxem4ik23/debgraph/pkg/errors"
)

// options holds the raw command-line flag values before validation.
// Numeric flags stay strings here so that validation owns all parsing.
type options struct {
	pkg      string
	repo     string
	mode     string
	version  string
	output   string
	ascii    string
	maxDepth string
	filter   string
	config   string
}

// runConfig holds the validated inputs for one invocation.
type runConfig struct {
	pkg      string
	repo     string
	mode     string
	version  string
	output   string
	ascii    bool
	maxDepth int
	filter   string
}

// validate checks every flag and returns the validated configuration.
// The first failing flag aborts validation.
func (o *options) validate() (*runConfig, error) {
	pkg, err := errors.ValidatePackageName(o.pkg)
	if err != nil {
		return nil, err
	}
	repo, err := errors.ValidateRepository(o.repo)
	if err != nil {
		return nil, err
	}
	mode, err := errors.ValidateMode(o.mode)
	if err != nil {
		return nil, err
	}
	version, err := errors.ValidateVersion(o.version)
	if err != nil {
		return nil, err
	}
	output, err := errors.ValidateOutputFile(o.output)
	if err != nil {
		return nil, err
	}
	ascii, err := errors.ValidateASCIIMode(o.ascii)
	if err != nil {
		return nil, err
	}
	maxDepth, err := errors.ValidateMaxDepth(o.maxDepth)
	if err != nil {
		return nil, err
	}
	filter, err := errors.ValidateFilter(o.filter)
	if err != nil {
		return nil, err
	}

	return &runConfig{
		pkg:      pkg,
		repo:     repo,
		mode:     mode,
		version:  version,
		output:   output,
		ascii:    ascii == "yes",
		maxDepth: maxDepth,
		filter:   filter,
	}, nil
}
