package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/scalecode-solutions/runeclass/internal/fixture"
)

func (a *app) checkCmd() *cobra.Command {
	var (
		pattern string
		watch   bool
	)

	cmd := &cobra.Command{
		Use:   "check [DIR...]",
		Short: "Run classification fixtures",
		Long: `Run every fixture file below the given directories (default: the
fixtures.dirs configuration) and report failed expectations.

With --watch, the fixtures run again whenever a fixture file changes, until
interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs := args
			if len(dirs) == 0 {
				dirs = a.cfg.Fixtures.Dirs
			}
			if !cmd.Flags().Changed("pattern") {
				pattern = a.cfg.Fixtures.Pattern
			}

			ctx := cmd.Context()
			c := &checker{app: a, runner: fixture.NewRunner(a.logger), dirs: dirs, pattern: pattern}

			summary, err := c.run(ctx)
			if err != nil {
				return err
			}
			if !watch {
				if !summary.Passed() {
					return errFailed
				}
				return nil
			}
			return c.watch(ctx)
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Fixture file pattern (default from config: **/*.fixture.yaml)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-run on fixture changes")

	return cmd
}

// checker runs the fixtures of a set of directories.
type checker struct {
	*app
	runner  *fixture.Runner
	dirs    []string
	pattern string

	// Serializes runs triggered by different watchers
	mu sync.Mutex
}

// run discovers and runs all fixtures and prints the reports.
func (c *checker) run(ctx context.Context) (fixture.Summary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var paths []string
	for _, dir := range c.dirs {
		found, err := fixture.Discover(dir, c.pattern)
		if err != nil {
			return fixture.Summary{}, err
		}
		paths = append(paths, found...)
	}
	if len(paths) == 0 {
		c.logger.Warn("No fixtures found", "dirs", c.dirs, "pattern", c.pattern)
	}

	reports, err := c.runner.Run(ctx, paths)
	if err != nil {
		return fixture.Summary{}, err
	}
	c.printReports(reports)

	summary := fixture.Summarize(reports)
	c.logger.Info("Fixtures finished",
		"suites", summary.Suites,
		"failed_suites", summary.FailedSuites,
		"cases", summary.Cases,
		"failures", summary.Failures)
	return summary, nil
}

// watch re-runs the fixtures on changes below any directory until ctx is done.
func (c *checker) watch(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, dir := range c.dirs {
		dir := dir // per-iteration copy; go directive is 1.21 (pre-1.22 loop semantics)
		g.Go(func() error {
			return fixture.Watch(ctx, dir, fixture.WatcherConfig{
				Pattern:       c.pattern,
				DebounceDelay: c.cfg.Fixtures.Debounce,
				Logger:        c.logger,
			}, func(changed []string) {
				c.logger.Info("Fixtures changed", "files", changed)
				if _, err := c.run(ctx); err != nil {
					c.logger.Error("Fixture run failed", "error", err)
				}
			})
		})
	}
	return g.Wait()
}

func (c *checker) printReports(reports []*fixture.Report) {
	for _, r := range reports {
		switch {
		case r.Err != nil:
			fmt.Fprintf(c.out, "%s %s: %v\n", c.header("ERROR"), r.Path, r.Err)
		case len(r.Failures) > 0:
			fmt.Fprintf(c.out, "%s %s (%s): %d of %d cases failed\n", c.header("FAIL"), r.Suite, r.Path, countCases(r), r.Cases)
			for _, f := range r.Failures {
				fmt.Fprintf(c.out, "    %s\n", f)
			}
		default:
			fmt.Fprintf(c.out, "ok   %s (%s): %d cases\n", r.Suite, r.Path, r.Cases)
		}
	}

	s := fixture.Summarize(reports)
	fmt.Fprintf(c.out, "%d suites, %d cases, %d failures, %d failed suites\n", s.Suites, s.Cases, s.Failures, s.FailedSuites)
}

// countCases returns the number of distinct failed cases of a report.
func countCases(r *fixture.Report) int {
	seen := make(map[int]bool)
	for _, f := range r.Failures {
		seen[f.Case] = true
	}
	return len(seen)
}
