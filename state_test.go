package walker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/walker/metrics"
)

func newTestState(workers int, collect bool) (*runState, *metrics.BasicProvider) {
	p := metrics.NewBasicProvider()
	return newRunState(workers, collect, newInstruments(p)), p
}

func TestRunState_LastIdleWorkerDeclaresDone(t *testing.T) {
	s, p := newTestState(1, false)
	s.seed("/")

	tk, ok := s.claim()
	require.True(t, ok)
	require.Equal(t, StageDirCheck, tk.stage)
	require.Equal(t, "/", tk.path)

	_, ok = s.claim()
	require.False(t, ok, "a lone idle worker with empty queues ends the run")
	require.True(t, s.done)
	require.Zero(t, p.UpDownValue(metrics.ActiveWorkers))

	_, more, err := s.next()
	require.NoError(t, err)
	require.False(t, more)
}

func TestRunState_ParkedWorkerWokenByEnqueue(t *testing.T) {
	s, _ := newTestState(2, false)

	claimed := make(chan task, 1)
	go func() {
		tk, ok := s.claim()
		if ok {
			claimed <- tk
		}
		close(claimed)
	}()

	// the other worker is still active, so the first one parks instead of finishing
	select {
	case <-claimed:
		t.Fatal("worker returned before any work was enqueued")
	case <-time.After(50 * time.Millisecond):
	}

	s.enqueue(fileTask(StageRead, "/f", nil))
	select {
	case tk := <-claimed:
		require.Equal(t, "/f", tk.path)
	case <-time.After(time.Second):
		t.Fatal("parked worker was not woken")
	}
}

func TestRunState_ParkedWorkersExitOnDone(t *testing.T) {
	s, p := newTestState(3, false)

	exited := make(chan bool, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, ok := s.claim()
			exited <- ok
		}()
	}
	time.Sleep(20 * time.Millisecond)

	_, ok := s.claim()
	require.False(t, ok)
	for i := 0; i < 2; i++ {
		select {
		case ok := <-exited:
			require.False(t, ok)
		case <-time.After(time.Second):
			t.Fatal("parked worker did not exit after done")
		}
	}
	require.Zero(t, p.UpDownValue(metrics.ActiveWorkers))
}

func TestRunState_FailureEventuallySetsDone(t *testing.T) {
	s, p := newTestState(2, false)
	s.seed("/")

	_, ok := s.claim()
	require.True(t, ok)
	require.True(t, s.fail(errBoom))

	_, ok = s.claim()
	require.False(t, ok)
	require.False(t, s.done, "another worker is still active")

	_, ok = s.claim()
	require.False(t, ok)
	require.True(t, s.done, "the last halted worker marks the run done")
	require.Zero(t, p.UpDownValue(metrics.ActiveWorkers))
}

func TestRunState_OutputBeforeError(t *testing.T) {
	s, _ := newTestState(1, false)

	require.True(t, s.emit(File{Path: "/a"}))
	require.True(t, s.fail(errBoom))
	require.False(t, s.emit(File{Path: "/b"}), "nothing is appended after an error")
	require.False(t, s.fail(errBoom), "only the first error wins")

	f, more, err := s.next()
	require.NoError(t, err)
	require.True(t, more)
	require.Equal(t, "/a", f.Path)

	_, more, err = s.next()
	require.True(t, more)
	require.ErrorIs(t, err, errBoom)

	_, ok := s.claim()
	require.False(t, ok, "workers stop once an error is recorded")
}

func TestRunState_StopIgnoresLaterErrors(t *testing.T) {
	s, p := newTestState(1, true)
	s.stop()
	require.False(t, s.fail(errBoom))
	require.NoError(t, s.err())
	require.Zero(t, p.CounterValue(metrics.Errors))

	_, more, err := s.next()
	require.NoError(t, err)
	require.False(t, more)
}

func TestRunState_MarkListedOnce(t *testing.T) {
	s, _ := newTestState(1, false)
	require.True(t, s.markListed("/a"))
	require.False(t, s.markListed("/a"))
	require.True(t, s.markListed("/b"))
}

func TestErrorRecorder(t *testing.T) {
	other := errBoom
	first := ErrIO

	r := errorRecorder{}
	require.False(t, r.record(nil))
	require.True(t, r.record(first))
	require.False(t, r.record(other))
	require.Equal(t, first, r.err())

	c := errorRecorder{collect: true}
	c.record(first)
	c.record(other)
	require.ErrorIs(t, c.err(), first)
	require.ErrorIs(t, c.err(), other)
}
