// Package device computes and maintains the device-metrics snapshot that
// every scaling function reads: window and screen geometry, pixel density,
// accessibility font scale, phone/tablet classification, and the base
// scaling unit derived from reference design dimensions.
package device

import (
	"math"

	"github.com/KJ-GM/responsive-csx/pkg/host"
)

// Classification thresholds, in logical pixels. Hosts report logical units
// already; nothing here divides by pixel density.
const (
	PhoneMaxWidth       = 600
	SmallPhoneMaxWidth  = 390
	SmallTabletMaxWidth = 720
)

// Reference design dimensions the ratios are measured against.
const (
	PhoneRefWidth   = 375
	PhoneRefHeight  = 812
	TabletRefWidth  = 768
	TabletRefHeight = 1024
)

// Base-unit clamp bounds.
const (
	BaseUnitMin = 0.75
	BaseUnitMax = 1.5
)

// baselineDPI is the density-1 dots-per-inch baseline used for the
// diagonal estimate.
const baselineDPI = 160

// Metrics is one snapshot of device geometry and its derived
// classification. All linear fields are logical pixels.
type Metrics struct {
	Width  float64
	Height float64

	ScreenWidth  float64
	ScreenHeight float64

	PixelDensity float64
	FontScale    float64
	Platform     string

	IsPhone  bool
	IsTablet bool

	IsSmallPhone  bool
	IsLargePhone  bool
	IsSmallTablet bool
	IsLargeTablet bool

	AspectRatio    float64
	DiagonalInches float64
	BaseUnit       float64

	IsLandscape bool
	IsPortrait  bool
}

// Compute derives a full Metrics snapshot from raw host values. Derived
// fields are recomputed in a fixed order: aspect ratio, diagonal,
// phone/tablet classification, size sub-classification, base unit.
func Compute(window, screen host.Size, density, fontScale float64, platform string) Metrics {
	m := Metrics{
		Width:        window.Width,
		Height:       window.Height,
		ScreenWidth:  screen.Width,
		ScreenHeight: screen.Height,
		PixelDensity: density,
		FontScale:    fontScale,
		Platform:     platform,
	}

	long := math.Max(m.Width, m.Height)
	short := math.Min(m.Width, m.Height)
	if short > 0 {
		m.AspectRatio = long / short
	}

	// Diagonal from physical pixels against the 160dpi-per-density baseline.
	dpi := baselineDPI * density
	if dpi > 0 {
		m.DiagonalInches = math.Hypot(m.Width*density, m.Height*density) / dpi
	}

	m.IsPhone = m.Width <= PhoneMaxWidth
	m.IsTablet = !m.IsPhone

	if m.IsPhone {
		m.IsSmallPhone = m.Width <= SmallPhoneMaxWidth
		m.IsLargePhone = !m.IsSmallPhone
	} else {
		m.IsSmallTablet = m.Width <= SmallTabletMaxWidth
		m.IsLargeTablet = !m.IsSmallTablet
	}

	m.BaseUnit = clamp(m.WidthRatio()*0.6+m.HeightRatio()*0.4, BaseUnitMin, BaseUnitMax)

	m.IsLandscape = m.Width > m.Height
	m.IsPortrait = !m.IsLandscape

	return m
}

// RefWidth returns the reference design width for the device category.
func (m Metrics) RefWidth() float64 {
	if m.IsTablet {
		return TabletRefWidth
	}
	return PhoneRefWidth
}

// RefHeight returns the reference design height for the device category.
func (m Metrics) RefHeight() float64 {
	if m.IsTablet {
		return TabletRefHeight
	}
	return PhoneRefHeight
}

// WidthRatio is the window width relative to the reference design width.
func (m Metrics) WidthRatio() float64 { return m.Width / m.RefWidth() }

// HeightRatio is the window height relative to the reference design height.
func (m Metrics) HeightRatio() float64 { return m.Height / m.RefHeight() }

// Category returns a display name for the size classification.
func (m Metrics) Category() string {
	switch {
	case m.IsSmallPhone:
		return "small phone"
	case m.IsLargePhone:
		return "large phone"
	case m.IsSmallTablet:
		return "small tablet"
	default:
		return "large tablet"
	}
}

// Window returns the current window size.
func (m Metrics) Window() host.Size {
	return host.Size{Width: m.Width, Height: m.Height}
}

// Screen returns the current full-screen size.
func (m Metrics) Screen() host.Size {
	return host.Size{Width: m.ScreenWidth, Height: m.ScreenHeight}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
