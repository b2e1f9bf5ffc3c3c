package walker

import "os"

// File is one record produced by a walk.
type File struct {
	// Path is the file path as built from the root with the filesystem's Join.
	Path string
	// Info is the entry as reported by the listing of the parent directory.
	Info os.FileInfo
	// Content holds the bytes read.
	Content *Content
}
