package pixel

import "math"

// Encoding selects the transfer curve applied to stored RGB and Gray
// channels. Other models always store their channels as-is.
type Encoding uint8

// Supported channel encodings.
const (
	// Linear stores light-linear intensities.
	Linear Encoding = iota

	// SRGB stores gamma-compressed values using the IEC 61966-2-1
	// piecewise curve.
	SRGB
)

func (e Encoding) String() string {
	switch e {
	case SRGB:
		return "sRGB"
	default:
		return "linear"
	}
}

// DecodeGamma converts an sRGB-encoded value to linear intensity.
//
// The curve is linear with slope 1/12.92 below 0.04045 and follows a 2.4
// power law with offset 0.055 above it.
func DecodeGamma(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// EncodeGamma converts a linear intensity to its sRGB-encoded value.
// It is the inverse of DecodeGamma.
func EncodeGamma(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}
