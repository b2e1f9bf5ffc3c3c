package walker

import "context"

// ForEach walks root and calls fn for every accepted file, one call at a time, as
// files become available. The walk stops at the first error from fn or from the
// walk itself, and that error is returned.
func ForEach(
	ctx context.Context, root string, explore DirFilter, read FileFilter, fn func(context.Context, File) error, opts ...Option,
) error {
	w, err := New(root, explore, read, opts...)
	if err != nil {
		return err
	}
	for f, err := range w.Files(ctx) {
		if err != nil {
			return err
		}
		if err := fn(ctx, f); err != nil {
			return err
		}
	}
	return nil
}
