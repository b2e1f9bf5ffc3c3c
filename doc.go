// Package walker provides a concurrent, unordered, lazily consumed filesystem walker.
//
// A walk is driven by three filters: a DirFilter deciding which directories are
// listed (the root included), a FileFilter deciding which listed regular files are
// read, and an optional YieldFilter deciding which read files are delivered.
//
// Pipeline
// Every path moves through five stages, each with its own FIFO queue:
//   - directory-check: apply the DirFilter (the root is seeded here)
//   - directory-stat: list the directory; sub-directories go back to directory-check,
//     regular files go to file-check, anything else is skipped
//   - file-check: apply the FileFilter
//   - read: read the whole file
//   - yield-check: apply the YieldFilter and hand the record to the caller
//
// Workers always take the first task of the latest non-empty stage in that list, so
// in-flight files are finished before the directory frontier grows. Parallelism is
// set with WithWorkers and capped at MaxWorkers. A worker with nothing to do parks;
// the last one to go idle with every queue empty ends the walk.
//
// Consumption
//   - Files(ctx): iter.Seq2[File, error], started on first pull.
//   - Stream(ctx): files and errors channels.
//   - Collect / ForEach: one-call helpers.
//
// There is no ordering guarantee. With one worker the order is reproducible on an
// unchanged tree, which is handy for golden tests but not a contract.
//
// Errors
// The first error recorded by any worker ends the walk (later ones are dropped
// unless WithErrorCollection is set). Filter failures and panics match ErrPredicate,
// listing and read failures match ErrIO, and both are *StageError values carrying
// the stage and path. Bad options match ErrInvalidConfig and are returned by New.
//
// Defaults
//   - Workers: 1
//   - Filesystem: the host filesystem (go-billy osfs.Default)
//   - Logger: logr.Discard()
//   - Metrics: metrics.NoopProvider
//   - ResultsBufferSize: 1024 (Stream only)
package walker
