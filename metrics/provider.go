// Package metrics defines the instrumentation surface of the walker.
//
// A Provider hands out named instruments. The walker resolves every instrument once
// per Walker and records into them from all workers, so implementations must be
// safe for concurrent use. NoopProvider is the default; BasicProvider keeps values
// in memory and is meant for tests and small tools.
package metrics

// Provider constructs instruments by name.
type Provider interface {
	Counter(name string, opts ...InstrumentOption) Counter
	UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter
	Histogram(name string, opts ...InstrumentOption) Histogram
}

// Counter records monotonic counts.
type Counter interface {
	Add(n int64)
}

// UpDownCounter records a value that moves both ways, such as active workers.
type UpDownCounter interface {
	Add(n int64)
}

// Histogram records a distribution of measurements, such as read durations in seconds.
type Histogram interface {
	Record(v float64)
}

// InstrumentConfig carries advisory instrument metadata.
type InstrumentConfig struct {
	Description string
	Unit        string
}

// InstrumentOption mutates InstrumentConfig.
type InstrumentOption func(*InstrumentConfig)

// WithDescription sets an advisory description.
func WithDescription(desc string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Description = desc }
}

// WithUnit sets an advisory unit (e.g. "1", "By", "s").
func WithUnit(unit string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Unit = unit }
}
