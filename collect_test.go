package walker

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	files, err := Collect(context.Background(), "/", SkipDirNames(".git"), MatchFileNames("*.txt"),
		WithFilesystem(scenarioTree(t)), WithWorkers(8))
	require.NoError(t, err)

	got := make([]string, 0, len(files))
	for _, f := range files {
		got = append(got, f.Path)
	}
	sort.Strings(got)
	require.Equal(t, []string{"/a.txt", "/sub/c.txt"}, got)
}

func TestCollect_InvalidConfig(t *testing.T) {
	files, err := Collect(context.Background(), "/", AllDirs, AllFiles, WithWorkers(0))
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Nil(t, files)
}

func TestCollect_ReturnsPartialResultsWithError(t *testing.T) {
	fsys := scenarioTree(t)
	fsys.failOpen["/sub/c.txt"] = errBoom

	// one worker finishes /a.txt before it ever reaches /sub
	files, err := Collect(context.Background(), "/", SkipDirNames(".git"), txtOnly, WithFilesystem(fsys))
	require.ErrorIs(t, err, ErrIO)
	require.Len(t, files, 1)
	require.Equal(t, "/a.txt", files[0].Path)
}

func TestForEach(t *testing.T) {
	var seen []string
	err := ForEach(context.Background(), "/", SkipDirNames(".git"), txtOnly, func(_ context.Context, f File) error {
		seen = append(seen, f.Path)
		return nil
	}, WithFilesystem(scenarioTree(t)), WithWorkers(3))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"/a.txt", "/sub/c.txt"}, seen)
}

func TestForEach_StopsOnCallbackError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := ForEach(context.Background(), "/", AllDirs, AllFiles, func(context.Context, File) error {
		calls++
		return stop
	}, WithFilesystem(scenarioTree(t)), WithWorkers(2))
	require.ErrorIs(t, err, stop)
	require.Equal(t, 1, calls)
}

func TestForEach_WalkError(t *testing.T) {
	fsys := scenarioTree(t)
	fsys.failList["/"] = errBoom

	err := ForEach(context.Background(), "/", AllDirs, AllFiles, func(context.Context, File) error { return nil },
		WithFilesystem(fsys))
	require.ErrorIs(t, err, ErrIO)
	require.ErrorIs(t, err, errBoom)
}
