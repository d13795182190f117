package pixel

import (
	"math"
	"testing"
)

func TestGammaRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		v := float64(i) / 255
		if got := EncodeGamma(DecodeGamma(v)); math.Abs(got-v) > 1e-12 {
			t.Errorf("round trip of %v is %v", v, got)
		}
	}
}

func TestGammaEndpoints(t *testing.T) {
	if v := DecodeGamma(0); v != 0 {
		t.Errorf("expected DecodeGamma(0) to be 0, got %v", v)
	}
	if v := DecodeGamma(1); math.Abs(v-1) > 1e-12 {
		t.Errorf("expected DecodeGamma(1) to be 1, got %v", v)
	}
	if v := EncodeGamma(0); v != 0 {
		t.Errorf("expected EncodeGamma(0) to be 0, got %v", v)
	}
	if v := EncodeGamma(1); math.Abs(v-1) > 1e-12 {
		t.Errorf("expected EncodeGamma(1) to be 1, got %v", v)
	}
}

// The linear segment and the power segment must meet without a jump.
func TestGammaContinuity(t *testing.T) {
	lo := DecodeGamma(0.04045 - 1e-9)
	hi := DecodeGamma(0.04045 + 1e-9)
	if math.Abs(hi-lo) > 1e-6 {
		t.Errorf("decode is discontinuous at the threshold: %v vs %v", lo, hi)
	}

	lo = EncodeGamma(0.0031308 - 1e-9)
	hi = EncodeGamma(0.0031308 + 1e-9)
	if math.Abs(hi-lo) > 1e-6 {
		t.Errorf("encode is discontinuous at the threshold: %v vs %v", lo, hi)
	}
}
