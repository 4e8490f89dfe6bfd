// Package compare classifies the files of a target tree against a base tree.
//
// A file under the target root is "new" when no file exists at the same
// relative path under the base root, and "changed" when one exists but its
// content fingerprint differs. Files present only under the base root are
// not reported.
package compare

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/taigrr/folder-compare/internal/fingerprint"
	"github.com/taigrr/folder-compare/internal/pathfilter"
	"github.com/taigrr/folder-compare/internal/types"
	"github.com/taigrr/folder-compare/internal/walker"
	"golang.org/x/sync/errgroup"
)

type options struct {
	logger  *slog.Logger
	workers int
	strict  bool
}

// Option configures a comparison.
type Option func(*options)

// WithLogger sets the logger used for traversal warnings and debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithWorkers bounds the number of files hashed concurrently. Values below
// one fall back to the number of CPUs.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithStrict makes unreadable entries found while walking fail the comparison
// instead of being skipped.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// Compare walks base and target, skipping paths matched by excluded, and
// returns the changed and new files of target in lexical order.
func Compare(base, target string, excluded []string, opts ...Option) (*types.CompareResult, error) {
	o := &options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(o)
	}
	if o.workers < 1 {
		o.workers = runtime.NumCPU()
	}

	pf, err := pathfilter.New(excluded)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("compiled exclusion patterns", "count", pf.Len(), "patterns", pf.Patterns())

	walkOpts := walker.Options{Strict: o.strict, Logger: o.logger}

	var baseFiles, targetFiles walker.Files
	var walks errgroup.Group
	walks.Go(func() error {
		var err error
		baseFiles, err = walker.Walk(base, pf, walkOpts)
		if err != nil {
			return fmt.Errorf("walking base tree: %w", err)
		}
		return nil
	})
	walks.Go(func() error {
		var err error
		targetFiles, err = walker.Walk(target, pf, walkOpts)
		if err != nil {
			return fmt.Errorf("walking target tree: %w", err)
		}
		return nil
	})
	if err := walks.Wait(); err != nil {
		return nil, err
	}

	result := &types.CompareResult{
		Changed:     []string{},
		New:         []string{},
		Unchanged:   []string{},
		BaseFiles:   len(baseFiles),
		TargetFiles: len(targetFiles),
	}

	type pair struct {
		rel    string
		base   string
		target string
	}

	var pairs []pair
	for _, rel := range targetFiles.Sorted() {
		baseAbs, ok := baseFiles[rel]
		if !ok {
			result.New = append(result.New, rel)
			continue
		}
		pairs = append(pairs, pair{rel: rel, base: baseAbs, target: targetFiles[rel]})
	}

	// each worker writes only its own slot
	differs := make([]bool, len(pairs))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(o.workers)
	for i, p := range pairs {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			baseSum, err := hashFile(p.rel, base, p.base)
			if err != nil {
				return err
			}
			targetSum, err := hashFile(p.rel, target, p.target)
			if err != nil {
				return err
			}

			differs[i] = baseSum != targetSum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, p := range pairs {
		if differs[i] {
			result.Changed = append(result.Changed, p.rel)
		} else {
			result.Unchanged = append(result.Unchanged, p.rel)
		}
	}

	o.logger.Debug("comparison finished",
		"base", base,
		"target", target,
		"changed", len(result.Changed),
		"new", len(result.New),
		"unchanged", len(result.Unchanged),
	)

	return result, nil
}

// Run is Compare driven by a CompareParams value.
func Run(params types.CompareParams, opts ...Option) (*types.CompareResult, error) {
	return Compare(params.Base, params.Target, params.Excluded, opts...)
}

func hashFile(rel, root, abs string) (fingerprint.Fingerprint, error) {
	sum, err := fingerprint.File(abs)
	if err != nil {
		return 0, &FileReadError{Path: rel, Root: root, File: abs, Err: err}
	}
	return sum, nil
}
