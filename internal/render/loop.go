package render

import "context"

// Run calls step once per iteration until the window is asked to close or
// ctx is done. Cancelling ctx also raises the window's close flag.
func Run(ctx context.Context, w Window, step func()) {
	for !w.ShouldClose() {
		select {
		case <-ctx.Done():
			w.SetShouldClose(true)
			return
		default:
		}

		step()
		w.PollEvents()
	}
}
