package walker

import "context"

// Collect walks root and returns every accepted file.
//
// Semantics:
//   - Results are in completion order (not lexical order).
//   - On failure the files gathered before the error was observed are returned
//     alongside it.
func Collect(ctx context.Context, root string, explore DirFilter, read FileFilter, opts ...Option) ([]File, error) {
	w, err := New(root, explore, read, opts...)
	if err != nil {
		return nil, err
	}
	var files []File
	for f, err := range w.Files(ctx) {
		if err != nil {
			return files, err
		}
		files = append(files, f)
	}
	return files, nil
}
