package scale

import "math"

// Font and icon category multipliers. Earlier revisions shipped several
// competing tablet values; this table is the canonical one.
const (
	fontMultSmallPhone  = 0.9
	fontMultLargePhone  = 1.0
	fontMultSmallTablet = 1.05
	fontMultLargeTablet = 1.15

	iconMultSmallPhone  = 0.9
	iconMultLargePhone  = 1.0
	iconMultSmallTablet = 1.15
	iconMultLargeTablet = 1.25
)

// Line-height baseline ratios per category.
const (
	lineRatioSmallPhone  = 1.2
	lineRatioLargePhone  = 1.25
	lineRatioSmallTablet = 1.35
	lineRatioLargeTablet = 1.45
)

// Unconditional font clamp: a scaled font never leaves [0.7x, 1.6x] of the
// design size, regardless of caller options.
const (
	fontFloorFactor = 0.7
	fontCeilFactor  = 1.6
)

// Font-scale caps for line height and icons; the raw accessibility
// multiplier would otherwise blow up spacing at large system settings.
const (
	lineFontScaleCap = 1.4
	iconFontScaleCap = 1.3
)

// FontSize scales a design font size for the current device. The size is
// first adjusted by the category multiplier, then by a width-leaning
// (0.65/0.35) blend of the reference ratios and the square root of the
// accessibility font scale. The square root dampens high system settings
// so text grows with the preference without running away. The result is
// hard-clamped to [0.7*size, 1.6*size] before any caller clamp.
func (s Scaler) FontSize(size float64, opts ...Option) float64 {
	c := newConfig(opts)
	m := s.src.Metrics()

	mult := fontMultLargePhone
	switch {
	case m.IsSmallPhone:
		mult = fontMultSmallPhone
	case m.IsSmallTablet:
		mult = fontMultSmallTablet
	case m.IsLargeTablet:
		mult = fontMultLargeTablet
	}

	ratio := m.WidthRatio()*0.65 + m.HeightRatio()*0.35
	v := round1(size * mult * ratio * math.Sqrt(m.FontScale))

	v = math.Max(size*fontFloorFactor, math.Min(v, size*fontCeilFactor))
	return c.finish(v)
}

// LineHeight returns an integer line height for a design font size: the
// scaled font times a category baseline ratio, with the accessibility
// font scale capped at 1.4 and rescaled relative to the 1.2 default.
func (s Scaler) LineHeight(baseFontSize float64) int {
	m := s.src.Metrics()

	ratio := lineRatioLargePhone
	switch {
	case m.IsSmallPhone:
		ratio = lineRatioSmallPhone
	case m.IsSmallTablet:
		ratio = lineRatioSmallTablet
	case m.IsLargeTablet:
		ratio = lineRatioLargeTablet
	}

	scaled := s.FontSize(baseFontSize)
	adjusted := ratio * math.Min(m.FontScale, lineFontScaleCap) / 1.2
	return int(math.Round(scaled * adjusted))
}

// IconSize returns an integer icon size for a design size: a width-leaning
// (0.65/0.35) blend of the reference ratios, a category multiplier, and a
// capped font-scale nudge, clamped to [0.8*base, 1.5*base].
func (s Scaler) IconSize(baseSize float64) int {
	m := s.src.Metrics()

	mult := iconMultLargePhone
	switch {
	case m.IsSmallPhone:
		mult = iconMultSmallPhone
	case m.IsSmallTablet:
		mult = iconMultSmallTablet
	case m.IsLargeTablet:
		mult = iconMultLargeTablet
	}

	base := m.WidthRatio()*0.65 + m.HeightRatio()*0.35
	v := baseSize * base * mult * math.Min(m.FontScale, iconFontScaleCap) * 0.95
	v = math.Max(baseSize*0.8, math.Min(v, baseSize*1.5))
	return int(math.Round(v))
}
