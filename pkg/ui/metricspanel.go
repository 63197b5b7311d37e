package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/KJ-GM/responsive-csx/pkg/device"
	"github.com/KJ-GM/responsive-csx/pkg/scale"
)

// sampleSizes are the design values shown in the scaling table.
var sampleSizes = []float64{8, 12, 14, 16, 20, 24, 32}

// renderMetrics renders the metrics pane body for the current snapshot.
func renderMetrics(m device.Metrics, sc scale.Scaler, width int) string {
	var b strings.Builder

	category := Badge(m.Category(), ColorBg, ColorPrimary)
	orientation := "portrait"
	if m.IsLandscape {
		orientation = "landscape"
	}

	b.WriteString(TitleStyle.Render("Device Metrics"))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(LabelStyle.Render(pad(label, 16)))
		b.WriteString(ValueStyle.Render(value))
		b.WriteString("\n")
	}

	row("window", fmt.Sprintf("%g x %g", m.Width, m.Height))
	row("screen", fmt.Sprintf("%g x %g", m.ScreenWidth, m.ScreenHeight))
	row("density", fmt.Sprintf("%gx", m.PixelDensity))
	row("font scale", fmt.Sprintf("%g", m.FontScale))
	row("platform", m.Platform)
	row("category", category)
	row("orientation", orientation)
	row("aspect ratio", fmt.Sprintf("%.3f", m.AspectRatio))
	row("diagonal", fmt.Sprintf("%.1f\"", m.DiagonalInches))
	row("base unit", AccentStyle.Render(fmt.Sprintf("%.3f", m.BaseUnit)))

	b.WriteString("\n")
	b.WriteString(TitleStyle.Render("Scaled Samples"))
	b.WriteString("\n\n")

	header := fmt.Sprintf("%6s %7s %7s %7s %7s %5s %5s %7s",
		"size", "s", "vs", "ms", "fs", "lh", "ic", "st")
	b.WriteString(LabelStyle.Render(header))
	b.WriteString("\n")

	for _, size := range sampleSizes {
		line := fmt.Sprintf("%6g %7.1f %7.1f %7.1f %7.1f %5d %5d %7.1f",
			size, sc.S(size), sc.VS(size), sc.MS(size), sc.FS(size),
			sc.LH(size), sc.IC(size), sc.ST(size))
		b.WriteString(ValueStyle.Render(line))
		b.WriteString("\n")
	}

	// Truncate every line to the pane width so narrow terminals never wrap.
	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = truncate.String(line, uint(max(width, 1)))
	}
	return strings.Join(lines, "\n")
}

// summary is the plain-text form copied to the clipboard.
func summary(m device.Metrics) string {
	return fmt.Sprintf(
		"window=%gx%g screen=%gx%g density=%g fontScale=%g category=%q baseUnit=%.3f aspect=%.3f diagonal=%.1fin",
		m.Width, m.Height, m.ScreenWidth, m.ScreenHeight,
		m.PixelDensity, m.FontScale, m.Category(), m.BaseUnit,
		m.AspectRatio, m.DiagonalInches)
}

// pad right-pads a label to the given display width.
func pad(s string, w int) string {
	gap := w - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
