package metrics

// Instrument names recorded by the walker.
const (
	DirsListed    = "walker_dirs_listed_total"
	DirsSkipped   = "walker_dirs_skipped_total"
	FilesRead     = "walker_files_read_total"
	FilesSkipped  = "walker_files_skipped_total"
	FilesYielded  = "walker_files_yielded_total"
	FilesFiltered = "walker_files_filtered_total"
	BytesRead     = "walker_bytes_read_total"
	Errors        = "walker_errors_total"
	ActiveWorkers = "walker_active_workers"
	ReadDuration  = "walker_read_duration_seconds"
)
