// Package scale provides the responsive scaling functions: general,
// vertical, moderate, font, line-height, icon, and tablet-specific
// scaling, plus clamp primitives. Every function is pure over its
// arguments and the current device-metrics snapshot it reads.
package scale

import (
	"math"

	"github.com/KJ-GM/responsive-csx/pkg/device"
)

// MetricsProvider supplies the snapshot the scaling formulas read.
// *device.Monitor implements it for live metrics; device.Fixed freezes one.
type MetricsProvider interface {
	Metrics() device.Metrics
}

// Defaults for the tunable blend factors.
const (
	DefaultModerateFactor = 0.5
	DefaultTabletFactor   = 1.3
)

// Option tunes a single scaling call: an optional caller clamp and the
// blend/tablet factors of the functions that take one.
type Option func(*config)

type config struct {
	min, max     float64
	hasMin       bool
	hasMax       bool
	factor       float64
	tabletFactor float64
}

// WithMin sets a lower bound applied as the final step of a scaling call.
func WithMin(min float64) Option {
	return func(c *config) { c.min, c.hasMin = min, true }
}

// WithMax sets an upper bound applied as the final step of a scaling call.
func WithMax(max float64) Option {
	return func(c *config) { c.max, c.hasMax = max, true }
}

// WithFactor sets the width/height blend factor for ModerateScale.
// 0 weights width only, 1 weights height only.
func WithFactor(f float64) Option {
	return func(c *config) { c.factor = f }
}

// WithTabletFactor sets the pre-multiplier TabletScale applies on tablets.
func WithTabletFactor(f float64) Option {
	return func(c *config) { c.tabletFactor = f }
}

func newConfig(opts []Option) config {
	c := config{
		factor:       DefaultModerateFactor,
		tabletFactor: DefaultTabletFactor,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// finish applies the caller clamp, min before max, so min > max yields max.
func (c config) finish(v float64) float64 {
	if c.hasMin {
		v = math.Max(v, c.min)
	}
	if c.hasMax {
		v = math.Min(v, c.max)
	}
	return v
}

// round1 rounds to one decimal place, the precision every float-valued
// scaling function reports.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Scaler binds the scaling functions to a metrics source.
type Scaler struct {
	src MetricsProvider
}

// New creates a Scaler reading from src.
func New(src MetricsProvider) Scaler {
	return Scaler{src: src}
}

// Metrics returns the snapshot the next call would scale against.
func (s Scaler) Metrics() device.Metrics {
	return s.src.Metrics()
}

// Scale multiplies size by the base unit. This is the general-purpose,
// width-biased scaling function.
func (s Scaler) Scale(size float64, opts ...Option) float64 {
	c := newConfig(opts)
	m := s.src.Metrics()
	return c.finish(round1(size * m.BaseUnit))
}

// VerticalScale multiplies size by the height ratio alone, for measurements
// that should track vertical space (paddings in columns, list rows).
func (s Scaler) VerticalScale(size float64, opts ...Option) float64 {
	c := newConfig(opts)
	m := s.src.Metrics()
	return c.finish(round1(size * m.HeightRatio()))
}

// ModerateScale blends the width and height ratios by the factor option
// (default 0.5): widthRatio*(1-factor) + heightRatio*factor.
func (s Scaler) ModerateScale(size float64, opts ...Option) float64 {
	c := newConfig(opts)
	m := s.src.Metrics()
	blend := m.WidthRatio()*(1-c.factor) + m.HeightRatio()*c.factor
	return c.finish(round1(size * blend))
}

// TabletScale scales like Scale but pre-multiplies size by the tablet
// factor (default 1.3) when the device is a tablet, for measurements that
// should grow extra room on big screens.
func (s Scaler) TabletScale(size float64, opts ...Option) float64 {
	c := newConfig(opts)
	m := s.src.Metrics()
	if m.IsTablet {
		size *= c.tabletFactor
	}
	return c.finish(round1(size * m.BaseUnit))
}
