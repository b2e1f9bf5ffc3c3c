package walker

import "github.com/ygrebnov/walker/metrics"

// instruments are resolved once per Walker and shared by all of its workers.
type instruments struct {
	dirsListed    metrics.Counter
	dirsSkipped   metrics.Counter
	filesRead     metrics.Counter
	filesSkipped  metrics.Counter
	filesYielded  metrics.Counter
	filesFiltered metrics.Counter
	bytesRead     metrics.Counter
	errors        metrics.Counter
	active        metrics.UpDownCounter
	readDuration  metrics.Histogram
}

func newInstruments(p metrics.Provider) *instruments {
	return &instruments{
		dirsListed:    p.Counter(metrics.DirsListed, metrics.WithDescription("directories listed"), metrics.WithUnit("1")),
		dirsSkipped:   p.Counter(metrics.DirsSkipped, metrics.WithDescription("directories rejected by the directory filter"), metrics.WithUnit("1")),
		filesRead:     p.Counter(metrics.FilesRead, metrics.WithDescription("files read"), metrics.WithUnit("1")),
		filesSkipped:  p.Counter(metrics.FilesSkipped, metrics.WithDescription("files rejected by the file filter"), metrics.WithUnit("1")),
		filesYielded:  p.Counter(metrics.FilesYielded, metrics.WithDescription("files delivered to the caller"), metrics.WithUnit("1")),
		filesFiltered: p.Counter(metrics.FilesFiltered, metrics.WithDescription("read files rejected by the yield filter"), metrics.WithUnit("1")),
		bytesRead:     p.Counter(metrics.BytesRead, metrics.WithDescription("bytes read"), metrics.WithUnit("By")),
		errors:        p.Counter(metrics.Errors, metrics.WithDescription("errors recorded"), metrics.WithUnit("1")),
		active:        p.UpDownCounter(metrics.ActiveWorkers, metrics.WithDescription("workers not parked"), metrics.WithUnit("1")),
		readDuration:  p.Histogram(metrics.ReadDuration, metrics.WithDescription("file read latency"), metrics.WithUnit("s")),
	}
}
