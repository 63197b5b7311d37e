package profile

import (
	"sync"

	"github.com/KJ-GM/responsive-csx/pkg/host"
	"github.com/KJ-GM/responsive-csx/pkg/watcher"
)

// SimHost is a host.Host backed by a device profile. Retargeting it to
// another profile (or rotating it) fires a dimension-change event, so a
// monitor attached to it tracks whichever device is being simulated.
type SimHost struct {
	mu        sync.Mutex
	p         Profile
	landscape bool

	bus watcher.Broadcast[host.Event]
}

// NewSimHost creates a SimHost presenting p in portrait orientation.
func NewSimHost(p Profile) *SimHost {
	return &SimHost{p: p.normalize()}
}

// Profile returns the currently simulated profile.
func (s *SimHost) Profile() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p
}

// Landscape reports whether the simulated device is rotated.
func (s *SimHost) Landscape() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.landscape
}

// Apply switches to another profile, keeping the current orientation, and
// notifies listeners.
func (s *SimHost) Apply(p Profile) {
	s.mu.Lock()
	s.p = p.normalize()
	ev := s.eventLocked()
	s.mu.Unlock()
	s.bus.Send(ev)
}

// Rotate toggles between portrait and landscape and notifies listeners.
func (s *SimHost) Rotate() {
	s.mu.Lock()
	s.landscape = !s.landscape
	ev := s.eventLocked()
	s.mu.Unlock()
	s.bus.Send(ev)
}

// WindowSize implements host.Host.
func (s *SimHost) WindowSize() host.Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orient(s.p.Window)
}

// ScreenSize implements host.Host.
func (s *SimHost) ScreenSize() host.Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orient(s.p.Screen)
}

// PixelDensity implements host.Host.
func (s *SimHost) PixelDensity() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.PixelDensity
}

// FontScale implements host.Host.
func (s *SimHost) FontScale() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.FontScale
}

// SetFontScale overrides the simulated accessibility font scale and
// notifies listeners so dependent metrics recompute.
func (s *SimHost) SetFontScale(fs float64) {
	s.mu.Lock()
	s.p.FontScale = fs
	ev := s.eventLocked()
	s.mu.Unlock()
	s.bus.Send(ev)
}

// Platform implements host.Host.
func (s *SimHost) Platform() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Platform
}

// Notify implements host.Host.
func (s *SimHost) Notify(fn func(host.Event)) (cancel func()) {
	return s.bus.Listen(fn)
}

// orient swaps width and height when rotated. Profiles are authored in
// portrait.
func (s *SimHost) orient(sz host.Size) host.Size {
	if s.landscape {
		return host.Size{Width: sz.Height, Height: sz.Width}
	}
	return sz
}

func (s *SimHost) eventLocked() host.Event {
	return host.Event{
		Window: s.orient(s.p.Window),
		Screen: s.orient(s.p.Screen),
	}
}
