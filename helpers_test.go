package walker

import (
	"iter"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
)

// newMemTree builds an in-memory tree. Keys ending in "/" create empty directories.
func newMemTree(t *testing.T, entries map[string]string) billy.Filesystem {
	t.Helper()
	fsys := memfs.New()
	for name, body := range entries {
		if strings.HasSuffix(name, "/") {
			require.NoError(t, fsys.MkdirAll(name, 0o755))
			continue
		}
		require.NoError(t, fsys.MkdirAll(path.Dir(name), 0o755))
		require.NoError(t, util.WriteFile(fsys, name, []byte(body), 0o644))
	}
	return fsys
}

// recordingFS records every listing and open, and can inject failures per path.
type recordingFS struct {
	billy.Filesystem

	mu       sync.Mutex
	listed   []string
	opened   []string
	failList map[string]error
	failOpen map[string]error
}

func newRecordingFS(inner billy.Filesystem) *recordingFS {
	return &recordingFS{Filesystem: inner, failList: map[string]error{}, failOpen: map[string]error{}}
}

func (r *recordingFS) ReadDir(p string) ([]os.FileInfo, error) {
	r.mu.Lock()
	r.listed = append(r.listed, p)
	err := r.failList[p]
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return r.Filesystem.ReadDir(p)
}

func (r *recordingFS) Open(p string) (billy.File, error) {
	r.mu.Lock()
	r.opened = append(r.opened, p)
	err := r.failOpen[p]
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return r.Filesystem.Open(p)
}

func (r *recordingFS) calls() (listed, opened []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.listed...), append([]string(nil), r.opened...)
}

// drain consumes a whole sequence and returns the sorted paths and the terminal error.
func drain(seq iter.Seq2[File, error]) ([]string, map[string]string, error) {
	var (
		paths    []string
		contents = map[string]string{}
		err      error
	)
	for f, e := range seq {
		if e != nil {
			err = e
			break
		}
		paths = append(paths, f.Path)
		text, _ := f.Content.Text()
		contents[f.Path] = text
	}
	sort.Strings(paths)
	return paths, contents, err
}
