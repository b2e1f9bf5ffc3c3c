package walker

import "errors"

const Namespace = "walker"

var (
	ErrInvalidConfig     = errors.New(Namespace + ": invalid configuration")
	ErrPredicate         = errors.New(Namespace + ": predicate failed")
	ErrPredicatePanicked = errors.New(Namespace + ": predicate panicked")
	ErrIO                = errors.New(Namespace + ": i/o failure")
	ErrAlreadyWalked     = errors.New(Namespace + ": walk already started; a Walker is not restartable")
)
