package pixel

import (
	"math"
	"testing"
)

func TestAdaptWhiteToWhite(t *testing.T) {
	testCases := []struct {
		name     string
		from, to WhitePoint
	}{
		{"D65 to D50", D65, D50},
		{"D50 to D65", D50, D65},
		{"D65 to A", D65, A},
		{"A to E", A, E},
	}
	for _, test := range testCases {
		t.Run(test.name, func(it *testing.T) {
			x, y, z := AdaptXYZ(test.from.X, test.from.Y, test.from.Z, test.from, test.to)
			if math.Abs(x-test.to.X) > 1e-9 || math.Abs(y-test.to.Y) > 1e-9 || math.Abs(z-test.to.Z) > 1e-9 {
				it.Errorf("expected white %v, got (%v, %v, %v)", test.to, x, y, z)
			}
		})
	}
}

func TestAdaptIdentity(t *testing.T) {
	x, y, z := AdaptXYZ(0.3, 0.4, 0.5, D65, D65)
	if x != 0.3 || y != 0.4 || z != 0.5 {
		t.Errorf("expected identity adaptation, got (%v, %v, %v)", x, y, z)
	}
}

func TestAdaptRoundTrip(t *testing.T) {
	for i := 0; i < 8; i++ {
		x0 := float64(i) * 0.11
		y0 := float64(i) * 0.09
		z0 := float64(i) * 0.13
		x, y, z := AdaptXYZ(x0, y0, z0, D65, D50)
		x, y, z = AdaptXYZ(x, y, z, D50, D65)
		if math.Abs(x-x0) > 1e-9 || math.Abs(y-y0) > 1e-9 || math.Abs(z-z0) > 1e-9 {
			t.Errorf("round trip of (%v, %v, %v) is (%v, %v, %v)", x0, y0, z0, x, y, z)
		}
	}
}
