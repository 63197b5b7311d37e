package host

import (
	"testing"

	"golang.org/x/term"
)

func TestEnvFontScale(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  float64
	}{
		{"unset", "", 1},
		{"valid", "1.3", 1.3},
		{"garbage", "big", 1},
		{"zero", "0", 1},
		{"negative", "-2", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(FontScaleEnv, tt.value)
			if got := envFontScale(); got != tt.want {
				t.Errorf("envFontScale() = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestNewTerminalOutsideTTY(t *testing.T) {
	if term.IsTerminal(int(1)) {
		t.Skip("running inside a real terminal")
	}
	if _, err := NewTerminal(); err == nil {
		t.Error("NewTerminal must fail when stdout is not a tty")
	}
}

func TestTerminalCellMapping(t *testing.T) {
	tm := &Terminal{cell: CellSize{Width: 8, Height: 16}, scale: 1}
	tm.last = Size{Width: 8 * 100, Height: 16 * 40}

	if got := tm.WindowSize(); got != (Size{Width: 800, Height: 640}) {
		t.Errorf("WindowSize = %+v", got)
	}
	if tm.ScreenSize() != tm.WindowSize() {
		t.Error("terminal screen must equal its window")
	}
	if tm.PixelDensity() != 1 {
		t.Error("terminal density must be 1")
	}
	if tm.Platform() != "terminal" {
		t.Errorf("Platform = %q", tm.Platform())
	}
}
