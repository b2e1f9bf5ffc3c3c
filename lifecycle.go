package walker

import (
	"context"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
)

// run is one execution of a Walker: the worker pool, its shared state and the
// shutdown sequence. It is created by the front-end on first pull.
type run struct {
	root       string
	fs         Filesystem
	explore    DirFilter
	readFilter FileFilter
	yield      YieldFilter
	workers    int

	state *runState
	inst  *instruments
	log   logr.Logger

	ctx    context.Context
	cancel context.CancelFunc
	// stopWatch detaches the cancellation watcher registered on ctx.
	stopWatch func() bool
	group     errgroup.Group
	started   time.Time

	closeOnce sync.Once
}

func newRun(ctx context.Context, w *Walker) *run {
	yield := w.cfg.Yield
	if yield == nil {
		yield = yieldAll
	}
	r := &run{
		root:       w.root,
		fs:         w.cfg.FS,
		explore:    w.explore,
		readFilter: w.read,
		yield:      yield,
		workers:    w.workers,
		inst:       w.inst,
		log:        w.log,
	}
	r.state = newRunState(r.workers, w.cfg.CollectErrors, r.inst)
	r.ctx, r.cancel = context.WithCancel(ctx)
	return r
}

// start seeds the root and launches the whole pool at once.
func (r *run) start() {
	r.started = time.Now()
	r.log.V(1).Info("walk started", "root", r.root, "workers", r.workers)

	// Wakes parked workers and a parked front-end when the caller's context ends.
	r.stopWatch = context.AfterFunc(r.ctx, func() { r.state.fail(context.Cause(r.ctx)) })

	r.state.seed(r.root)
	for i := 0; i < r.workers; i++ {
		wk := newWorker(i, r)
		r.group.Go(func() error {
			wk.loop(r.ctx)
			return nil
		})
	}
}

// drain waits for workers that are already stopping on their own, which happens
// once an error has been recorded, so errors from their in-flight tasks are kept.
func (r *run) drain() { _ = r.group.Wait() }

// close executes the shutdown sequence exactly once:
// 1) mark the state stopped so parked workers exit and later errors are ignored
// 2) detach the cancellation watcher and cancel the run context
// 3) wait for every worker to return
func (r *run) close() {
	r.closeOnce.Do(func() {
		r.state.stop()
		if r.stopWatch != nil {
			r.stopWatch()
		}
		r.cancel()
		_ = r.group.Wait()
		r.log.V(1).Info("walk finished", "root", r.root, "elapsed", time.Since(r.started).String())
	})
}
