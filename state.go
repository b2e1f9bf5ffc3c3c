package walker

import "sync"

// runState is the shared state of one walk: the stage queues, the output buffer and
// the termination detector. One mutex guards all of it; workers park on work and the
// front-end parks on ready.
type runState struct {
	mu    sync.Mutex
	work  *sync.Cond // parked workers
	ready *sync.Cond // the single front-end waiter

	queues stageQueues
	out    fifo[File]

	// listed holds every directory handed to the directory-stat stage.
	listed map[string]struct{}

	workers int
	active  int
	done    bool
	stopped bool
	errs    errorRecorder

	inst *instruments
}

func newRunState(workers int, collectErrors bool, inst *instruments) *runState {
	s := &runState{
		listed:  make(map[string]struct{}),
		workers: workers,
		active:  workers,
		errs:    errorRecorder{collect: collectErrors},
		inst:    inst,
	}
	s.work = sync.NewCond(&s.mu)
	s.ready = sync.NewCond(&s.mu)
	inst.active.Add(int64(workers))
	return s
}

// seed enqueues the root before any worker starts.
func (s *runState) seed(root string) {
	s.mu.Lock()
	s.queues.push(dirTask(StageDirCheck, root))
	s.mu.Unlock()
}

// claim hands the calling worker the highest-priority task available. When no work
// is queued the worker leaves the active set and either declares the run done (last
// one out) or parks until woken. ok is false when the worker must stop.
func (s *runState) claim() (t task, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		if s.halted() {
			s.active--
			s.inst.active.Add(-1)
			if s.active == 0 {
				s.done = true
				s.ready.Broadcast()
			}
			return task{}, false
		}
		if t, ok = s.queues.pop(); ok {
			return t, true
		}

		s.active--
		s.inst.active.Add(-1)
		if s.active == 0 && s.queues.empty() {
			s.done = true
			s.ready.Signal()
			s.work.Broadcast()
			return task{}, false
		}
		s.work.Wait()
		s.active++
		s.inst.active.Add(1)
	}
}

// halted reports whether workers must stop. Callers hold mu.
func (s *runState) halted() bool { return s.done || s.stopped || s.errs.set() }

// enqueue adds downstream tasks and wakes parked workers if any were added.
func (s *runState) enqueue(tasks ...task) {
	if len(tasks) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range tasks {
		s.queues.push(t)
	}
	s.work.Broadcast()
}

// markListed reports whether dir has not been listed yet in this run and records it.
func (s *runState) markListed(dir string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, seen := s.listed[dir]; seen {
		return false
	}
	s.listed[dir] = struct{}{}
	return true
}

// emit appends a completed record to the output buffer and wakes the front-end.
// Nothing is appended once an error has been recorded.
func (s *runState) emit(f File) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errs.set() || s.stopped {
		return false
	}
	s.out.push(f)
	s.ready.Signal()
	return true
}

// fail records err in the error slot and wakes everyone so they observe it.
// It reports whether err was the first error. Errors after stop are ignored.
func (s *runState) fail(err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || err == nil {
		return false
	}
	s.inst.errors.Add(1)
	first := s.errs.record(err)
	s.ready.Signal()
	s.work.Broadcast()
	return first
}

// next blocks until a record is available or the run is over. Buffered records are
// delivered before a recorded error is reported. more is false at normal completion.
func (s *runState) next() (f File, more bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		if f, ok := s.out.pop(); ok {
			return f, true, nil
		}
		if s.errs.set() {
			return File{}, true, s.errs.err()
		}
		if s.done || s.stopped {
			return File{}, false, nil
		}
		s.ready.Wait()
	}
}

// stop halts the run: parked workers wake up and exit, claims fail from now on.
func (s *runState) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	s.work.Broadcast()
	s.ready.Broadcast()
}

// err returns the recorded error, combined with collected ones.
func (s *runState) err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errs.err()
}
