package walker

import (
	"fmt"
	"os"
	"path"
)

// DirFilter decides whether a directory is listed. It is applied to the root too.
type DirFilter func(path string) (bool, error)

// FileFilter decides whether a listed file is read. info comes from the directory
// listing; no extra stat is performed.
type FileFilter func(path string, info os.FileInfo) (bool, error)

// YieldFilter decides whether a file that has been read is delivered to the caller.
type YieldFilter func(f File) (bool, error)

// DirFunc adapts an infallible func to DirFilter.
func DirFunc(fn func(path string) bool) DirFilter {
	return func(p string) (bool, error) { return fn(p), nil }
}

// FileFunc adapts an infallible func to FileFilter.
func FileFunc(fn func(path string, info os.FileInfo) bool) FileFilter {
	return func(p string, info os.FileInfo) (bool, error) { return fn(p, info), nil }
}

// YieldFunc adapts an infallible func to YieldFilter.
func YieldFunc(fn func(f File) bool) YieldFilter {
	return func(f File) (bool, error) { return fn(f), nil }
}

// AllDirs explores every directory.
func AllDirs(string) (bool, error) { return true, nil }

// AllFiles reads every regular file.
func AllFiles(string, os.FileInfo) (bool, error) { return true, nil }

func yieldAll(File) (bool, error) { return true, nil }

// SkipDirNames explores every directory except those whose base name is listed.
// The check applies to the root as well.
func SkipDirNames(names ...string) DirFilter {
	skip := make(map[string]struct{}, len(names))
	for _, n := range names {
		skip[n] = struct{}{}
	}
	return func(p string) (bool, error) {
		_, ok := skip[path.Base(p)]
		return !ok, nil
	}
}

// MatchFileNames reads files whose base name matches any of the path.Match patterns.
// With no patterns every file matches. A malformed pattern is reported as a filter error.
func MatchFileNames(patterns ...string) FileFilter {
	return func(p string, _ os.FileInfo) (bool, error) {
		if len(patterns) == 0 {
			return true, nil
		}
		base := path.Base(p)
		for _, pat := range patterns {
			ok, err := path.Match(pat, base)
			if err != nil {
				return false, fmt.Errorf("pattern %q: %w", pat, err)
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}
}

// evalFilter runs a filter call, turning a panic into an error.
func evalFilter(call func() (bool, error)) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err = fmt.Errorf("%w: %v", ErrPredicatePanicked, r)
		}
	}()
	return call()
}
