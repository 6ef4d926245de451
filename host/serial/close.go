package serial

import (
	"context"
	"io"
	"sync"
)

// CloseOnCancel closes c when ctx is cancelled, which unblocks a read
// pending on a port. The returned function closes c at most once and also
// stops the watcher; call it when done with the port.
func CloseOnCancel(ctx context.Context, c io.Closer) func() error {
	var (
		once sync.Once
		err  error
	)
	closeOnce := func() error {
		once.Do(func() { err = c.Close() })
		return err
	}

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			closeOnce()
		case <-done:
		}
	}()

	var stopOnce sync.Once
	return func() error {
		stopOnce.Do(func() { close(done) })
		return closeOnce()
	}
}
