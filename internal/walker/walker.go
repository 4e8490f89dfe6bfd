// Package walker enumerates the regular files below a root directory.
package walker

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/taigrr/folder-compare/internal/pathfilter"
)

// Options controls how a walk treats unreadable entries.
type Options struct {
	// Strict aborts the walk with an EntryReadError when a sub-entry cannot be
	// read. By default such entries are skipped and logged as warnings.
	Strict bool
	Logger *slog.Logger
}

// Files maps a slash-separated path relative to the root to the absolute path
// of the file on disk.
type Files map[string]string

// Walk returns every regular file below root that pf does not exclude.
//
// Exclusion is tested against the root as given joined with the relative
// path, in forward-slash form. A directory that matches is pruned along with
// everything below it. Symbolic links are neither followed nor reported,
// except that a root which is itself a link to a directory is resolved.
func Walk(root string, pf *pathfilter.PathFilter, opts Options) (Files, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if pf == nil {
		pf, _ = pathfilter.New(nil)
	}

	walkRoot, err := resolveRoot(root)
	if err != nil {
		return nil, err
	}

	absRoot, err := filepath.Abs(walkRoot)
	if err != nil {
		return nil, &EntryReadError{Path: root, Err: err}
	}

	files := make(Files)

	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == walkRoot {
				return &EntryReadError{Path: root, Err: err}
			}
			if opts.Strict {
				return &EntryReadError{Path: path, Err: err}
			}
			logger.Warn("skipping unreadable entry", "path", path, "error", err)
			return nil
		}

		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return &EntryReadError{Path: path, Err: err}
		}
		if rel == "." {
			return nil
		}
		matchPath := filepath.ToSlash(filepath.Join(root, rel))

		if d.IsDir() {
			if pf.IsDirExcluded(matchPath) {
				logger.Debug("pruning excluded directory", "path", matchPath)
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			logger.Debug("skipping non-regular entry", "path", matchPath, "type", d.Type().String())
			return nil
		}

		if pf.IsExcluded(matchPath) {
			logger.Debug("skipping excluded file", "path", matchPath)
			return nil
		}

		files[filepath.ToSlash(rel)] = filepath.Join(absRoot, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("walked tree", "root", root, "files", len(files))
	return files, nil
}

// resolveRoot validates root and resolves it when it is a symlink to a directory.
func resolveRoot(root string) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &RootNotFoundError{Root: root, Err: err}
		}
		return "", &EntryReadError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return "", &NotADirectoryError{Root: root}
	}

	linfo, err := os.Lstat(root)
	if err != nil {
		return "", &EntryReadError{Path: root, Err: err}
	}
	if linfo.Mode()&fs.ModeSymlink == 0 {
		return root, nil
	}

	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", &EntryReadError{Path: root, Err: err}
	}
	return resolved, nil
}

// Sorted returns the relative paths in lexical order.
func (f Files) Sorted() []string {
	paths := make([]string, 0, len(f))
	for rel := range f {
		paths = append(paths, rel)
	}
	slices.Sort(paths)
	return paths
}
