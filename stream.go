package walker

import "context"

// Stream runs the walk in a background goroutine and delivers files on a channel.
//
// Lifecycle:
//   - The files channel (buffered per WithResultsBuffer) is closed when the walk ends.
//   - The errors channel has capacity one; it receives the terminal error, if any,
//     and is closed right after the files channel.
//   - Cancelling ctx stops the walk; a consumer that stops reading must cancel ctx,
//     otherwise the producer blocks on the full files channel.
func (w *Walker) Stream(ctx context.Context) (<-chan File, <-chan error) {
	files := make(chan File, w.cfg.ResultsBufferSize)
	errs := make(chan error, 1)

	go func() {
		defer close(errs)
		defer close(files)

		for f, err := range w.Files(ctx) {
			if err != nil {
				errs <- err
				return
			}
			select {
			case files <- f:
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}
	}()

	return files, errs
}
