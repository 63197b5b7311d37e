//go:build windows

package host

import "time"

// watchResize polls the console size; Windows has no SIGWINCH equivalent
// outside the console input stream. The returned func stops the poller.
func (t *Terminal) watchResize() func() {
	ticker := time.NewTicker(t.poll)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				t.refresh()
			case <-done:
				return
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(done)
	}
}
