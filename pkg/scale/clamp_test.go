package scale_test

import (
	"testing"

	"github.com/KJ-GM/responsive-csx/pkg/scale"
)

func TestClampValue(t *testing.T) {
	tests := []struct {
		name            string
		min, value, max float64
		want            float64
	}{
		{"inside", 0, 5, 10, 5},
		{"below", 0, -5, 10, 0},
		{"above", 0, 15, 10, 10},
		{"at min", 0, 0, 10, 0},
		{"at max", 0, 10, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scale.ClampValue(tt.min, tt.value, tt.max)
			if got != tt.want {
				t.Errorf("ClampValue(%g, %g, %g) = %g, want %g", tt.min, tt.value, tt.max, got, tt.want)
			}
			// Idempotence.
			if again := scale.ClampValue(tt.min, got, tt.max); again != got {
				t.Errorf("ClampValue not idempotent: %g -> %g", got, again)
			}
		})
	}
}

func TestClampMinMax(t *testing.T) {
	if got := scale.ClampMin(5, 3); got != 5 {
		t.Errorf("ClampMin(5, 3) = %g, want 5", got)
	}
	if got := scale.ClampMin(5, 8); got != 8 {
		t.Errorf("ClampMin(5, 8) = %g, want 8", got)
	}
	if got := scale.ClampMax(8, 5); got != 5 {
		t.Errorf("ClampMax(8, 5) = %g, want 5", got)
	}
	if got := scale.ClampMax(3, 5); got != 3 {
		t.Errorf("ClampMax(3, 5) = %g, want 3", got)
	}
}

func TestDeviceValue(t *testing.T) {
	phone := refPhone()
	tablet := refTablet()

	if got := scale.DeviceValue(phone, "compact", "regular"); got != "compact" {
		t.Errorf("phone DeviceValue = %q, want %q", got, "compact")
	}
	if got := scale.DeviceValue(tablet, "compact", "regular"); got != "regular" {
		t.Errorf("tablet DeviceValue = %q, want %q", got, "regular")
	}

	// Arbitrary payload types, not just numbers.
	type layout struct{ columns int }
	got := scale.DeviceValue(tablet, layout{1}, layout{2})
	if got.columns != 2 {
		t.Errorf("tablet layout = %+v, want 2 columns", got)
	}
}

func TestAliases(t *testing.T) {
	sc := refPhone()
	if sc.S(16) != sc.Scale(16) {
		t.Error("S must equal Scale")
	}
	if sc.VS(16) != sc.VerticalScale(16) {
		t.Error("VS must equal VerticalScale")
	}
	if sc.MS(16) != sc.ModerateScale(16) {
		t.Error("MS must equal ModerateScale")
	}
	if sc.FS(16) != sc.FontSize(16) {
		t.Error("FS must equal FontSize")
	}
	if sc.LH(16) != sc.LineHeight(16) {
		t.Error("LH must equal LineHeight")
	}
	if sc.IC(24) != sc.IconSize(24) {
		t.Error("IC must equal IconSize")
	}
	if sc.ST(16) != sc.TabletScale(16) {
		t.Error("ST must equal TabletScale")
	}
	if scale.DV(sc, 1, 2) != scale.DeviceValue(sc, 1, 2) {
		t.Error("DV must equal DeviceValue")
	}
	if scale.CL(0, 5, 10) != scale.ClampValue(0, 5, 10) {
		t.Error("CL must equal ClampValue")
	}
	if scale.CLMin(0, 5) != scale.ClampMin(0, 5) {
		t.Error("CLMin must equal ClampMin")
	}
	if scale.CLMax(5, 10) != scale.ClampMax(5, 10) {
		t.Error("CLMax must equal ClampMax")
	}
}
