package walker

import "go.uber.org/multierr"

// errorRecorder is the run's error slot. The first recorded error wins and is what
// stops the run; later errors are dropped unless collection is enabled, in which
// case they are appended behind the first one.
// Not safe for concurrent use; runState guards it.
type errorRecorder struct {
	collect bool
	first   error
	rest    error
}

// record stores err and reports whether it was the first one.
func (r *errorRecorder) record(err error) bool {
	if err == nil {
		return false
	}
	if r.first == nil {
		r.first = err
		return true
	}
	if r.collect {
		r.rest = multierr.Append(r.rest, err)
	}
	return false
}

func (r *errorRecorder) set() bool { return r.first != nil }

// err returns the first error, combined with any collected ones.
func (r *errorRecorder) err() error {
	if r.rest == nil {
		return r.first
	}
	return multierr.Combine(r.first, r.rest)
}
