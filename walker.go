package walker

import (
	"context"
	"iter"
	"sync/atomic"

	"github.com/go-logr/logr"
	"github.com/ygrebnov/errorc"
)

// Walker walks one directory tree once. It is configured and validated by New and
// consumed through Files, Stream, Collect or ForEach.
type Walker struct {
	// noCopy prevents accidental copying of the walker.
	//go:nocopy
	nc noCopy

	root    string
	explore DirFilter
	read    FileFilter

	cfg     *config
	workers int
	inst    *instruments
	log     logr.Logger

	started atomic.Bool
}

// noCopy is a vet-recognized marker to discourage copying types with this field embedded.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New creates a Walker for root. explore gates every directory, the root included,
// before it is listed; read gates every listed regular file before it is read.
// Configuration errors are reported here, before any filesystem access.
func New(root string, explore DirFilter, read FileFilter, opts ...Option) (*Walker, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	switch {
	case root == "":
		return nil, errorc.With(ErrInvalidConfig, errorc.String("", "root path must not be empty"))
	case explore == nil:
		return nil, errorc.With(ErrInvalidConfig, errorc.String("", "directory filter must not be nil"))
	case read == nil:
		return nil, errorc.With(ErrInvalidConfig, errorc.String("", "file filter must not be nil"))
	}

	return &Walker{
		root:    root,
		explore: explore,
		read:    read,
		cfg:     &cfg,
		workers: effectiveWorkers(cfg.Workers),
		inst:    newInstruments(cfg.Metrics),
		log:     cfg.Logger.WithName(Namespace),
	}, nil
}

// Root returns the traversal root.
func (w *Walker) Root() string { return w.root }

// Workers returns the effective pool size after clamping to MaxWorkers.
func (w *Walker) Workers() int { return w.workers }

// Files returns the lazy sequence of files accepted by the walk.
//
// Semantics:
//   - The pool starts on the first pull; nothing touches the filesystem before that.
//   - Order is unspecified. With a single worker it is reproducible on an unchanged tree.
//   - The first error recorded by any worker ends the sequence: records buffered before
//     it are still delivered, then the error is yielded once and iteration ends.
//   - Cancelling ctx is reported as ctx's error the same way.
//   - Breaking out of the range stops the pool and waits for its workers.
//   - A Walker is single-use: iterating a second time yields ErrAlreadyWalked.
func (w *Walker) Files(ctx context.Context) iter.Seq2[File, error] {
	return func(yield func(File, error) bool) {
		if !w.started.CompareAndSwap(false, true) {
			yield(File{}, ErrAlreadyWalked)
			return
		}

		r := newRun(ctx, w)
		r.start()
		defer r.close()

		for {
			f, more, err := r.state.next()
			if !more {
				return
			}
			if err != nil {
				r.drain()
				yield(File{}, r.state.err())
				return
			}
			if !yield(f, nil) {
				return
			}
		}
	}
}
