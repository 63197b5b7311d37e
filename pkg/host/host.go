// Package host abstracts the environment that supplies raw device geometry:
// window and screen sizes in logical pixels, pixel density, and the user's
// accessibility font scale. Implementations exist for real terminals
// (Terminal) and for fixed or scripted values (Static); pkg/profile provides
// one backed by simulated device profiles.
package host

// Size is a window or screen extent in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// Event is a dimension-change notification carrying the new geometry.
type Event struct {
	Window Size
	Screen Size
}

// Host supplies live device geometry. WindowSize and ScreenSize report
// logical pixels; PixelDensity is the device pixel ratio (>= 1);
// FontScale is the system accessibility text multiplier.
//
// Notify registers a dimension-change listener and returns a cancel
// function. After cancel returns, the listener is never invoked again.
type Host interface {
	WindowSize() Size
	ScreenSize() Size
	PixelDensity() float64
	FontScale() float64
	Platform() string
	Notify(fn func(Event)) (cancel func())
}
