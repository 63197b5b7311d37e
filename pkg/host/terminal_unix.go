//go:build unix

package host

import (
	"os"
	"os/signal"
	"syscall"
)

// watchResize listens for SIGWINCH and refreshes the cached size on each
// delivery. The returned func stops the listener.
func (t *Terminal) watchResize() func() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ch:
				t.refresh()
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}
