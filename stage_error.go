package walker

import (
	"errors"
	"fmt"
)

// StageError describes a failure at one pipeline stage for one path.
// It unwraps to the underlying cause and matches its taxonomy sentinel
// (ErrPredicate or ErrIO) under errors.Is.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func newStageError(stage Stage, path string, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Path: path, Err: err}
}

// Kind returns the taxonomy sentinel for the stage: ErrIO for listing and reading,
// ErrPredicate for the three filter stages.
func (e *StageError) Kind() error {
	switch e.Stage {
	case StageDirStat, StageRead:
		return ErrIO
	default:
		return ErrPredicate
	}
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s %s: %s", e.Kind().Error(), e.Stage, e.Path, e.Err.Error())
}

func (e *StageError) Unwrap() error { return e.Err }

// Is matches the taxonomy sentinel of the stage.
func (e *StageError) Is(target error) bool { return target == e.Kind() }

func (e *StageError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "stage(%s,path=%q): %+v", e.Stage, e.Path, e.Err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractPath returns the path a walk failure refers to, if err carries one.
func ExtractPath(err error) (string, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Path, true
	}
	return "", false
}

// ExtractStage returns the stage a walk failure occurred at, if err carries one.
func ExtractStage(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return 0, false
}
