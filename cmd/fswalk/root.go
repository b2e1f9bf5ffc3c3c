package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"

	"github.com/ygrebnov/walker"
	"github.com/ygrebnov/walker/metrics"
)

type options struct {
	workers     int
	include     []string
	excludeDirs []string
	hidden      bool
	contains    string
	long        bool
	stats       bool
	verbose     int
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "fswalk [root]",
		Short:         "List files under a directory using a concurrent walker",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return run(cmd, root, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.workers, "workers", "w", 4, "Number of concurrent workers (capped at 8)")
	flags.StringSliceVarP(&opts.include, "include", "i", nil, "Only read files whose name matches one of these patterns")
	flags.StringSliceVar(&opts.excludeDirs, "exclude-dir", []string{".git"}, "Directory names that are never explored")
	flags.BoolVar(&opts.hidden, "hidden", false, "Include hidden files and directories")
	flags.StringVar(&opts.contains, "contains", "", "Only list files whose text contains this substring")
	flags.BoolVarP(&opts.long, "long", "l", false, "Print file sizes")
	flags.BoolVar(&opts.stats, "stats", false, "Print walk counters to stderr when done")
	flags.CountVarP(&opts.verbose, "verbose", "v", "Log walker diagnostics to stderr (repeat for more)")

	return cmd
}

func run(cmd *cobra.Command, root string, opts options) error {
	provider := metrics.NewBasicProvider()
	walkOpts := []walker.Option{
		walker.WithWorkers(opts.workers),
		walker.WithMetrics(provider),
		walker.WithLogger(newLogger(cmd.ErrOrStderr(), opts.verbose)),
	}
	if opts.contains != "" {
		walkOpts = append(walkOpts, walker.WithYieldFilter(containsFilter(opts.contains)))
	}

	w, err := walker.New(root, dirFilter(root, opts), fileFilter(opts), walkOpts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for f, err := range w.Files(cmd.Context()) {
		if err != nil {
			return err
		}
		if opts.long {
			fmt.Fprintf(out, "%d\t%s\n", f.Content.Len(), f.Path)
			continue
		}
		fmt.Fprintln(out, f.Path)
	}

	if opts.stats {
		printStats(cmd.ErrOrStderr(), provider)
	}
	return nil
}

func dirFilter(root string, opts options) walker.DirFilter {
	skip := walker.SkipDirNames(opts.excludeDirs...)
	return func(p string) (bool, error) {
		if p == root {
			return true, nil
		}
		if !opts.hidden && hidden(p) {
			return false, nil
		}
		return skip(p)
	}
}

func fileFilter(opts options) walker.FileFilter {
	match := walker.MatchFileNames(opts.include...)
	return func(p string, info os.FileInfo) (bool, error) {
		if !opts.hidden && hidden(p) {
			return false, nil
		}
		return match(p, info)
	}
}

func containsFilter(sub string) walker.YieldFilter {
	return func(f walker.File) (bool, error) {
		text, err := f.Content.Text()
		if err != nil {
			return false, err
		}
		return strings.Contains(text, sub), nil
	}
}

func hidden(p string) bool {
	return strings.HasPrefix(filepath.Base(p), ".")
}

func newLogger(w io.Writer, verbosity int) logr.Logger {
	if verbosity == 0 {
		return logr.Discard()
	}
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: verbosity})
}

func printStats(w io.Writer, p *metrics.BasicProvider) {
	for _, name := range []string{
		metrics.DirsListed,
		metrics.DirsSkipped,
		metrics.FilesRead,
		metrics.FilesSkipped,
		metrics.FilesYielded,
		metrics.FilesFiltered,
		metrics.BytesRead,
	} {
		fmt.Fprintf(w, "%s %d\n", name, p.CounterValue(name))
	}
}
