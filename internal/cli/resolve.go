package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"github.com/Luxem4ik23/debgraph/pkg/apt"
	"github.com/Luxem4ik23/debgraph/pkg/depgraph"
	"github.com/Luxem4ik23/debgraph/pkg/errors"
)

// run executes a full resolution: validate flags, load the configuration,
// build the dependency graph, print statistics and persist the JSON report.
func run(ctx context.Context, opts *options) error {
	logger := loggerFromContext(ctx)

	cfg, err := opts.validate()
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}

	fileCfg, err := loadConfig(opts.config)
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}

	printConfiguration(cfg)

	ix := apt.NewIndex(indexOptions(cfg, fileCfg, logger))
	builder := depgraph.NewBuilder(ix)

	logger.Infof("Resolving dependency graph for %s", cfg.pkg)
	prog := newProgress(logger)
	sp := newSpinner(ctx, "building dependency graph")
	sp.start()
	g, err := builder.Build(ctx, cfg.pkg, cfg.version, depgraph.Options{
		MaxDepth: cfg.maxDepth,
		Filter:   cfg.filter,
		Logger:   logger.Debugf,
	})
	sp.stop()
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}

	stats := depgraph.Analyze(g)
	prog.done(fmt.Sprintf("Resolved %d packages", stats.TotalPackages))
	printStatistics(stats)

	if cfg.ascii {
		fmt.Println()
		printInfo("Dependency tree")
		depgraph.Render(os.Stdout, g.Dependencies)
	}

	if err := writeReport(reportFileName, g, stats); err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}
	printSuccess("Report written to %s", reportFileName)
	printDetail("graph image %s was validated but not rendered", cfg.output)
	return nil
}

// indexOptions translates the validated mode and repository into index
// sources. Local mode pins the index to the repository path; remote mode
// prefers the repository URL over the configured mirrors; mixed mode reads
// the local path first and falls back to the mirrors.
func indexOptions(cfg *runConfig, fileCfg *config, logger *charmlog.Logger) apt.IndexOptions {
	opts := apt.IndexOptions{
		Timeout: fileCfg.timeout(),
		Logger:  logger.Debugf,
	}

	isURL := strings.Contains(cfg.repo, "://")
	switch cfg.mode {
	case errors.ModeLocal:
		opts.LocalPath = cfg.repo
		opts.Mirrors = []string{} // never reach for the network
	case errors.ModeRemote:
		opts.Mirrors = fileCfg.Index.Mirrors
		if isURL {
			opts.Mirrors = append([]string{cfg.repo}, fileCfg.Index.Mirrors...)
		}
	case errors.ModeMixed:
		opts.Mirrors = fileCfg.Index.Mirrors
		if isURL {
			opts.Mirrors = append([]string{cfg.repo}, fileCfg.Index.Mirrors...)
		} else {
			opts.LocalPath = cfg.repo
		}
	}
	return opts
}

// printConfiguration echoes the validated inputs before resolution starts.
func printConfiguration(cfg *runConfig) {
	printTitle("Configuration")
	printKeyValue("package", cfg.pkg)
	printKeyValue("repository", cfg.repo)
	printKeyValue("mode", cfg.mode)
	printKeyValue("version", cfg.version)
	printKeyValue("output", cfg.output)
	printKeyNumber("max depth", cfg.maxDepth)
	if cfg.filter != "" {
		printKeyValue("filter", cfg.filter)
	}
}

// printStatistics summarizes the finished graph.
func printStatistics(stats depgraph.Statistics) {
	printTitle("Statistics")
	printKeyNumber("total packages", stats.TotalPackages)
	printKeyNumber("max depth reached", stats.MaxDepthReached)
	printKeyNumber("errors", stats.ErrorsCount)
	printKeyNumber("cycles", stats.CyclesCount)
	printKeyNumber("filtered", stats.FilteredCount)

	if stats.CyclesCount > 0 {
		printWarning("%d dependency cycle(s) detected", stats.CyclesCount)
	} else {
		printSuccess("No dependency cycles detected")
	}
	if stats.ErrorsCount > 0 {
		printWarning("%d package(s) could not be resolved", stats.ErrorsCount)
	}
}
