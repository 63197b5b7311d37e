package scale

import "math"

// ClampValue bounds value to [min, max].
func ClampValue(min, value, max float64) float64 {
	return math.Max(min, math.Min(value, max))
}

// ClampMin bounds value from below.
func ClampMin(min, value float64) float64 {
	return math.Max(min, value)
}

// ClampMax bounds value from above.
func ClampMax(value, max float64) float64 {
	return math.Min(value, max)
}

// DeviceValue selects between a phone and a tablet variant of any value.
func DeviceValue[T any](src MetricsProvider, phone, tablet T) T {
	if src.Metrics().IsTablet {
		return tablet
	}
	return phone
}
