package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KJ-GM/responsive-csx/pkg/host"
	"github.com/KJ-GM/responsive-csx/pkg/profile"
)

func chartProfile() profile.Profile {
	return profile.Profile{
		Name:         "Chart Phone",
		Window:       host.Size{Width: 375, Height: 812},
		Screen:       host.Size{Width: 375, Height: 812},
		PixelDensity: 2,
		FontScale:    1,
		Platform:     "ios",
	}
}

func TestWriteChart(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteChart(&buf, chartProfile(), nil); err != nil {
		t.Fatalf("WriteChart failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"<svg", "</svg>", "Chart Phone", "small phone", "base unit 1.000"} {
		if !strings.Contains(out, want) {
			t.Errorf("chart output missing %q", want)
		}
	}

	// One bar row per function per sample size.
	if got, want := strings.Count(out, "<rect"), len(DefaultSizes)*len(barLabels)+1; got != want {
		t.Errorf("chart has %d rects, want %d", got, want)
	}
}

func TestWriteChartCustomSizes(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteChart(&buf, chartProfile(), []float64{16}); err != nil {
		t.Fatalf("WriteChart failed: %v", err)
	}
	// Background + 5 bars for the single size.
	if got := strings.Count(buf.String(), "<rect"); got != len(barLabels)+1 {
		t.Errorf("chart has %d rects, want %d", got, len(barLabels)+1)
	}
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	cat := profile.Builtin()

	if err := WriteAll(dir, cat, []float64{8, 16}); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(cat) {
		t.Fatalf("wrote %d files, want %d", len(entries), len(cat))
	}

	// Spot-check one chart round-trips through the file system.
	data, err := os.ReadFile(filepath.Join(dir, "iphone-15-pro.svg"))
	if err != nil {
		t.Fatalf("expected chart file: %v", err)
	}
	if !strings.Contains(string(data), "iPhone 15 Pro") {
		t.Error("chart file missing profile name")
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"iPhone 15 Pro", "iphone-15-pro"},
		{"iPad Pro 13", "ipad-pro-13"},
		{"MacBook Pro 16", "macbook-pro-16"},
		{"  odd -- name!!", "odd-name"},
	}
	for _, tt := range tests {
		if got := slug(tt.in); got != tt.want {
			t.Errorf("slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
