// Package profile provides simulated device profiles: named window/screen
// geometries with pixel density and font scale, loadable from YAML
// catalogs, searchable, and usable as a host for the metrics monitor. The
// preview TUI and the chart exporter both run on profiles.
package profile

import (
	"fmt"

	"github.com/KJ-GM/responsive-csx/pkg/host"
)

// Profile describes one simulated device.
type Profile struct {
	Name         string    `yaml:"name"`
	Window       host.Size `yaml:"window"`
	Screen       host.Size `yaml:"screen"`
	PixelDensity float64   `yaml:"pixel_density"`
	FontScale    float64   `yaml:"font_scale"`
	Platform     string    `yaml:"platform"`
}

// normalize fills defaults: screen from window, density and font scale 1.
func (p Profile) normalize() Profile {
	if p.Screen == (host.Size{}) {
		p.Screen = p.Window
	}
	if p.PixelDensity == 0 {
		p.PixelDensity = 1
	}
	if p.FontScale == 0 {
		p.FontScale = 1
	}
	return p
}

// validate reports the first problem with a profile, if any.
func (p Profile) validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	if p.Window.Width <= 0 || p.Window.Height <= 0 {
		return fmt.Errorf("profile %q: window size must be positive, got %gx%g",
			p.Name, p.Window.Width, p.Window.Height)
	}
	if p.PixelDensity < 1 {
		return fmt.Errorf("profile %q: pixel density must be >= 1, got %g", p.Name, p.PixelDensity)
	}
	if p.FontScale <= 0 {
		return fmt.Errorf("profile %q: font scale must be positive, got %g", p.Name, p.FontScale)
	}
	return nil
}

// Builtin returns the built-in catalog: common phones and tablets covering
// all four size buckets, portrait orientation.
func Builtin() Catalog {
	profiles := []Profile{
		{Name: "iPhone SE", Window: host.Size{Width: 375, Height: 667}, PixelDensity: 2, Platform: "ios"},
		{Name: "iPhone 15 Pro", Window: host.Size{Width: 393, Height: 852}, PixelDensity: 3, Platform: "ios"},
		{Name: "iPhone 15 Pro Max", Window: host.Size{Width: 430, Height: 932}, PixelDensity: 3, Platform: "ios"},
		{Name: "Pixel 8", Window: host.Size{Width: 412, Height: 915}, PixelDensity: 2.625, Platform: "android"},
		{Name: "Galaxy Tab A9", Window: host.Size{Width: 662, Height: 1178}, PixelDensity: 1.5, Platform: "android"},
		{Name: "iPad Mini", Window: host.Size{Width: 744, Height: 1133}, PixelDensity: 2, Platform: "ios"},
		{Name: "iPad Pro 11", Window: host.Size{Width: 834, Height: 1194}, PixelDensity: 2, Platform: "ios"},
		{Name: "iPad Pro 13", Window: host.Size{Width: 1024, Height: 1366}, PixelDensity: 2, Platform: "ios"},
		{Name: "MacBook Pro 16", Window: host.Size{Width: 1728, Height: 1117}, PixelDensity: 2, Platform: "macos"},
	}
	cat := make(Catalog, 0, len(profiles))
	for _, p := range profiles {
		cat = append(cat, p.normalize())
	}
	return cat
}
