package walker

import (
	"github.com/go-logr/logr"
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/walker/metrics"
)

// MaxWorkers caps the number of workers of a single walk regardless of the requested
// count, bounding open file descriptors.
const MaxWorkers = 8

// config holds Walker configuration.
type config struct {
	// Workers is the requested pool size, clamped to MaxWorkers.
	// Default: 1
	Workers int

	// Yield filters files after they have been read.
	// Default: nil (every read file is yielded)
	Yield YieldFilter

	// FS is the filesystem walked.
	// Default: the host filesystem (osfs.Default)
	FS Filesystem

	// Logger receives run diagnostics.
	// Default: logr.Discard()
	Logger logr.Logger

	// Metrics receives walker instruments.
	// Default: metrics.NoopProvider
	Metrics metrics.Provider

	// ResultsBufferSize is the buffer of the channel returned by Stream.
	// Default: 1024
	ResultsBufferSize uint

	// CollectErrors keeps every error recorded during a run instead of only the first.
	// The first error still stops the run.
	// Default: false
	CollectErrors bool
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		Workers:           1,
		Yield:             nil,
		FS:                nil, // resolved lazily so tests can swap the default
		Logger:            logr.Discard(),
		Metrics:           metrics.NewNoopProvider(),
		ResultsBufferSize: 1024,
		CollectErrors:     false,
	}
}

// validateConfig checks the assembled configuration and fills derived defaults.
func validateConfig(cfg *config) error {
	if cfg.Workers <= 0 {
		return errorc.With(ErrInvalidConfig, errorc.String("", "worker count must be a positive integer"))
	}
	if cfg.FS == nil {
		cfg.FS = defaultFilesystem()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewNoopProvider()
	}
	return nil
}

// effectiveWorkers clamps the requested count to [1, MaxWorkers].
func effectiveWorkers(requested int) int {
	return max(1, min(requested, MaxWorkers))
}

// Option configures a Walker. Options report invalid input as errors.
type Option func(*config) error

// WithWorkers sets the desired parallelism (must be > 0). Values above MaxWorkers
// are silently clamped.
func WithWorkers(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithWorkers requires n > 0"))
		}
		cfg.Workers = n
		return nil
	}
}

// WithYieldFilter sets the filter applied to files after they are read.
func WithYieldFilter(fn YieldFilter) Option {
	return func(cfg *config) error { cfg.Yield = fn; return nil }
}

// WithFilesystem walks fsys instead of the host filesystem.
func WithFilesystem(fsys Filesystem) Option {
	return func(cfg *config) error {
		if fsys == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithFilesystem requires a non-nil filesystem"))
		}
		cfg.FS = fsys
		return nil
	}
}

// WithLogger sets the logger that receives run diagnostics.
func WithLogger(log logr.Logger) Option {
	return func(cfg *config) error { cfg.Logger = log; return nil }
}

// WithMetrics sets the metrics provider.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMetrics requires a non-nil provider"))
		}
		cfg.Metrics = p
		return nil
	}
}

// WithResultsBuffer sets the buffer size of the channel returned by Stream (default 1024).
func WithResultsBuffer(size uint) Option {
	return func(cfg *config) error { cfg.ResultsBufferSize = size; return nil }
}

// WithErrorCollection keeps errors recorded after the first one and reports them
// combined. Without it later errors are dropped.
func WithErrorCollection() Option {
	return func(cfg *config) error { cfg.CollectErrors = true; return nil }
}
