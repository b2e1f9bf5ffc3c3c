package walker

import (
	"context"

	"github.com/go-logr/logr"
)

// worker is one cooperative loop draining the stage queues of a run.
type worker struct {
	id    int
	run   *run
	state *runState
	log   logr.Logger
}

func newWorker(id int, r *run) *worker {
	return &worker{id: id, run: r, state: r.state, log: r.log.WithValues("worker", id)}
}

// loop executes tasks until the run is done, stopped or failed. Any stage error
// stops this worker at its next claim, and every other worker at theirs.
func (w *worker) loop(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			w.state.fail(context.Cause(ctx))
		}
		t, ok := w.state.claim()
		if !ok {
			return
		}
		if err := w.execute(t); err != nil {
			if w.state.fail(err) {
				w.log.Error(err, "walk failed", "stage", t.stage.String(), "path", t.path)
			} else {
				w.log.V(1).Info("error dropped, run already failed", "stage", t.stage.String(), "path", t.path, "error", err.Error())
			}
		}
	}
}
