package scale

// Short aliases for the scaling functions, for call sites that use them on
// nearly every style value and want them to read like units:
//
//	sc.S(16), sc.VS(8), sc.FS(14), sc.LH(14), sc.IC(24)

// S is Scale.
func (s Scaler) S(size float64, opts ...Option) float64 { return s.Scale(size, opts...) }

// VS is VerticalScale.
func (s Scaler) VS(size float64, opts ...Option) float64 { return s.VerticalScale(size, opts...) }

// MS is ModerateScale.
func (s Scaler) MS(size float64, opts ...Option) float64 { return s.ModerateScale(size, opts...) }

// FS is FontSize.
func (s Scaler) FS(size float64, opts ...Option) float64 { return s.FontSize(size, opts...) }

// LH is LineHeight.
func (s Scaler) LH(baseFontSize float64) int { return s.LineHeight(baseFontSize) }

// IC is IconSize.
func (s Scaler) IC(baseSize float64) int { return s.IconSize(baseSize) }

// ST is TabletScale.
func (s Scaler) ST(size float64, opts ...Option) float64 { return s.TabletScale(size, opts...) }

// DV is DeviceValue.
func DV[T any](src MetricsProvider, phone, tablet T) T { return DeviceValue(src, phone, tablet) }

// CL is ClampValue.
func CL(min, value, max float64) float64 { return ClampValue(min, value, max) }

// CLMin is ClampMin.
func CLMin(min, value float64) float64 { return ClampMin(min, value) }

// CLMax is ClampMax.
func CLMax(value, max float64) float64 { return ClampMax(value, max) }
