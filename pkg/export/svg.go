// Package export renders measurement charts: for a device profile, how a
// set of design sizes comes out of each scaling function. Useful for
// eyeballing a design system across the device matrix without launching
// the preview TUI.
package export

import (
	"fmt"
	"io"

	"github.com/ajstarks/svgo"

	"github.com/KJ-GM/responsive-csx/pkg/device"
	"github.com/KJ-GM/responsive-csx/pkg/profile"
	"github.com/KJ-GM/responsive-csx/pkg/scale"
)

// DefaultSizes is the design-size sample used when the caller supplies
// none: common spacing, font, and icon values.
var DefaultSizes = []float64{4, 8, 12, 14, 16, 20, 24, 32, 48, 64}

// Chart geometry (SVG user units).
const (
	chartWidth   = 860
	rowHeight    = 22
	headerHeight = 72
	labelWidth   = 60
	barScale     = 8 // svg units per logical pixel of scaled output
	barHeight    = 14
)

// Palette for the per-function bars.
var barColors = [...]string{
	"#bd93f9", // scale
	"#8be9fd", // vertical
	"#50fa7b", // moderate
	"#ffb86c", // font
	"#ff79c6", // icon
}

var barLabels = [...]string{"s", "vs", "ms", "fs", "ic"}

// WriteChart renders the chart for one profile (portrait) to w.
func WriteChart(w io.Writer, p profile.Profile, sizes []float64) error {
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}

	m := device.Compute(p.Window, p.Screen, p.PixelDensity, p.FontScale, p.Platform)
	sc := scale.New(device.Fixed(m))

	height := headerHeight + len(sizes)*len(barLabels)*rowHeight + 20

	c := svg.New(w)
	c.Start(chartWidth, height)
	defer c.End()

	c.Rect(0, 0, chartWidth, height, "fill:#282a36")
	c.Text(16, 28, p.Name, "font-family:monospace;font-size:18px;fill:#f8f8f2")
	c.Text(16, 52, fmt.Sprintf("%gx%g @%gx  font-scale %g  %s  base unit %.3f",
		m.Width, m.Height, m.PixelDensity, m.FontScale, m.Category(), m.BaseUnit),
		"font-family:monospace;font-size:12px;fill:#bfbfbf")

	y := headerHeight
	for _, size := range sizes {
		values := []float64{
			sc.S(size),
			sc.VS(size),
			sc.MS(size),
			sc.FS(size),
			float64(sc.IC(size)),
		}
		for i, v := range values {
			c.Text(16, y+barHeight-2, fmt.Sprintf("%s %g", barLabels[i], size),
				"font-family:monospace;font-size:11px;fill:#6272a4")
			c.Rect(labelWidth+16, y, int(v*barScale), barHeight,
				fmt.Sprintf("fill:%s", barColors[i]))
			c.Text(labelWidth+24+int(v*barScale), y+barHeight-2, fmt.Sprintf("%g", v),
				"font-family:monospace;font-size:11px;fill:#f8f8f2")
			y += rowHeight
		}
	}
	return nil
}
