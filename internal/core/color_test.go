package core

import "testing"

func TestHSVPrimaries(t *testing.T) {
	tests := []struct {
		name string
		hue  float64
		hex  string
	}{
		{"red", 0, "#ff0000"},
		{"green", 1.0 / 3, "#00ff00"},
		{"blue", 2.0 / 3, "#0000ff"},
		{"wraps to red", 1, "#ff0000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HSV(tc.hue, 1, 1).Hex(); got != tc.hex {
				t.Errorf("HSV(%f, 1, 1) = %s, expected %s", tc.hue, got, tc.hex)
			}
		})
	}
}

func TestHSVOpaque(t *testing.T) {
	for i := 0; i < 100; i++ {
		c := HSV(float64(i)/100, 1, 1)
		if c.A != 1 {
			t.Fatalf("HSV alpha = %f, expected 1", c.A)
		}
	}
}

func TestRGBALerp(t *testing.T) {
	black := RGBA{A: 1}
	mid := black.Lerp(White, 0.5)
	if mid.R != 0.5 || mid.G != 0.5 || mid.B != 0.5 {
		t.Errorf("Lerp(0.5) = %+v, expected grey", mid)
	}
	if got := black.Lerp(White, 2); got != White {
		t.Errorf("Lerp should clamp t, got %+v", got)
	}
}
