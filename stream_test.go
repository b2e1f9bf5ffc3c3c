package walker

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStream_DeliversAndCloses(t *testing.T) {
	w, err := New("/", SkipDirNames(".git"), txtOnly, WithFilesystem(scenarioTree(t)), WithWorkers(2), WithResultsBuffer(0))
	require.NoError(t, err)

	files, errs := w.Stream(context.Background())

	var got []string
	for f := range files {
		got = append(got, f.Path)
	}
	sort.Strings(got)
	require.Equal(t, []string{"/a.txt", "/sub/c.txt"}, got)

	err, open := <-errs
	require.NoError(t, err)
	require.False(t, open, "errors channel is closed without a value on success")
}

func TestStream_Error(t *testing.T) {
	fsys := scenarioTree(t)
	fsys.failList["/sub"] = errBoom

	w, err := New("/", AllDirs, AllFiles, WithFilesystem(fsys))
	require.NoError(t, err)

	files, errs := w.Stream(context.Background())
	for range files {
	}
	require.ErrorIs(t, <-errs, ErrIO)
}

func TestStream_CancelUnblocksProducer(t *testing.T) {
	fsys, _ := wideTree(t)
	ctx, cancel := context.WithCancel(context.Background())

	w, err := New("/", AllDirs, AllFiles, WithFilesystem(fsys), WithWorkers(4), WithResultsBuffer(0))
	require.NoError(t, err)

	files, errs := w.Stream(ctx)
	<-files // take one and walk away
	cancel()

	select {
	case err := <-errs:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("producer did not stop after cancellation")
	}
	for range files {
	}
}
