package profile_test

import (
	"strings"
	"testing"

	"github.com/KJ-GM/responsive-csx/pkg/device"
	"github.com/KJ-GM/responsive-csx/pkg/host"
	"github.com/KJ-GM/responsive-csx/pkg/profile"
)

const sampleYAML = `
profiles:
  - name: Test Phone
    window: {width: 390, height: 844}
    pixel_density: 3
    platform: ios
  - name: Test Tablet
    window: {width: 820, height: 1180}
    screen: {width: 840, height: 1200}
    pixel_density: 2
    font_scale: 1.2
    platform: android
`

func TestParse(t *testing.T) {
	cat, err := profile.Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(cat) != 2 {
		t.Fatalf("parsed %d profiles, want 2", len(cat))
	}

	phone := cat[0]
	if phone.Name != "Test Phone" {
		t.Errorf("Name = %q", phone.Name)
	}
	if phone.Window != (host.Size{Width: 390, Height: 844}) {
		t.Errorf("Window = %+v", phone.Window)
	}
	// Defaults: screen mirrors window, font scale 1.
	if phone.Screen != phone.Window {
		t.Errorf("Screen = %+v, want window mirrored", phone.Screen)
	}
	if phone.FontScale != 1 {
		t.Errorf("FontScale = %g, want default 1", phone.FontScale)
	}

	tablet := cat[1]
	if tablet.Screen != (host.Size{Width: 840, Height: 1200}) {
		t.Errorf("explicit Screen = %+v", tablet.Screen)
	}
	if tablet.FontScale != 1.2 {
		t.Errorf("FontScale = %g, want 1.2", tablet.FontScale)
	}
}

func TestParseRejectsBadCatalogs(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"not yaml", "{{", "parse catalog"},
		{"empty", "profiles: []", "no profiles"},
		{"missing name", `
profiles:
  - window: {width: 390, height: 844}
`, "name cannot be empty"},
		{"zero window", `
profiles:
  - name: Broken
    window: {width: 0, height: 844}
`, "must be positive"},
		{"negative window", `
profiles:
  - name: Broken
    window: {width: 390, height: -1}
`, "must be positive"},
		{"sub-1 density", `
profiles:
  - name: Broken
    window: {width: 390, height: 844}
    pixel_density: 0.5
`, "pixel density"},
		{"negative font scale", `
profiles:
  - name: Broken
    window: {width: 390, height: 844}
    font_scale: -2
`, "font scale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := profile.Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse accepted a bad catalog")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	base := profile.Builtin()
	override := profile.Catalog{
		{Name: "iPhone SE", Window: host.Size{Width: 375, Height: 667}, PixelDensity: 3, FontScale: 1, Platform: "ios"},
		{Name: "Custom Kiosk", Window: host.Size{Width: 1080, Height: 1920}, PixelDensity: 1, FontScale: 1, Platform: "linux"},
	}

	merged := base.Merge(override)
	if len(merged) != len(base)+1 {
		t.Fatalf("merged %d profiles, want %d", len(merged), len(base)+1)
	}

	se, ok := merged.Find("iPhone SE")
	if !ok {
		t.Fatal("iPhone SE missing after merge")
	}
	if se.PixelDensity != 3 {
		t.Errorf("override did not replace builtin: density = %g", se.PixelDensity)
	}
	if _, ok := merged.Find("Custom Kiosk"); !ok {
		t.Error("new profile missing after merge")
	}

	// Base is untouched.
	orig, _ := base.Find("iPhone SE")
	if orig.PixelDensity != 2 {
		t.Errorf("Merge mutated the receiver: density = %g", orig.PixelDensity)
	}
}

func TestSearch(t *testing.T) {
	cat := profile.Builtin()

	hits := cat.Search("ipad")
	if len(hits) == 0 {
		t.Fatal("Search(\"ipad\") found nothing")
	}
	for _, p := range hits {
		if !strings.Contains(strings.ToLower(p.Name), "ipad") {
			t.Errorf("unexpected hit %q", p.Name)
		}
	}

	if got := cat.Search(""); len(got) != len(cat) {
		t.Errorf("empty query returned %d profiles, want %d", len(got), len(cat))
	}

	if got := cat.Search("zzzzzz"); len(got) != 0 {
		t.Errorf("nonsense query returned %d profiles", len(got))
	}
}

func TestBuiltinCoversAllBuckets(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range profile.Builtin() {
		m := device.Compute(p.Window, p.Screen, p.PixelDensity, p.FontScale, p.Platform)
		seen[m.Category()] = true
	}
	for _, cat := range []string{"small phone", "large phone", "small tablet", "large tablet"} {
		if !seen[cat] {
			t.Errorf("builtin catalog has no %s", cat)
		}
	}
}
