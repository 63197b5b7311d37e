package host

import (
	"sync"

	"github.com/KJ-GM/responsive-csx/pkg/watcher"
)

// Static is a Host with fixed, programmatically settable values. It is the
// seam for tests and for any embedder that already knows its geometry and
// drives changes itself.
type Static struct {
	mu       sync.Mutex
	window   Size
	screen   Size
	density  float64
	scale    float64
	platform string

	bus watcher.Broadcast[Event]
}

// NewStatic creates a Static host. The screen initially equals the window;
// density defaults to 1 and font scale to 1.
func NewStatic(window Size) *Static {
	return &Static{
		window:   window,
		screen:   window,
		density:  1,
		scale:    1,
		platform: "static",
	}
}

// WindowSize implements Host.
func (s *Static) WindowSize() Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.window
}

// ScreenSize implements Host.
func (s *Static) ScreenSize() Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

// PixelDensity implements Host.
func (s *Static) PixelDensity() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.density
}

// FontScale implements Host.
func (s *Static) FontScale() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scale
}

// Platform implements Host.
func (s *Static) Platform() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.platform
}

// Notify implements Host.
func (s *Static) Notify(fn func(Event)) (cancel func()) {
	return s.bus.Listen(fn)
}

// SetPixelDensity changes the reported pixel density without firing an event;
// hosts report density changes only alongside geometry changes.
func (s *Static) SetPixelDensity(d float64) {
	s.mu.Lock()
	s.density = d
	s.mu.Unlock()
}

// SetFontScale changes the reported accessibility font scale.
func (s *Static) SetFontScale(fs float64) {
	s.mu.Lock()
	s.scale = fs
	s.mu.Unlock()
}

// SetPlatform changes the reported platform identity.
func (s *Static) SetPlatform(p string) {
	s.mu.Lock()
	s.platform = p
	s.mu.Unlock()
}

// Resize updates the window and screen sizes and notifies listeners.
func (s *Static) Resize(window, screen Size) {
	s.mu.Lock()
	s.window = window
	s.screen = screen
	s.mu.Unlock()
	s.bus.Send(Event{Window: window, Screen: screen})
}

// Rotate swaps window width and height (and screen likewise) and notifies
// listeners, simulating an orientation change.
func (s *Static) Rotate() {
	s.mu.Lock()
	s.window = Size{Width: s.window.Height, Height: s.window.Width}
	s.screen = Size{Width: s.screen.Height, Height: s.screen.Width}
	w, sc := s.window, s.screen
	s.mu.Unlock()
	s.bus.Send(Event{Window: w, Screen: sc})
}
