package pixel

// sRGB primary chromaticities and the derived conversion matrices
// (IEC 61966-2-1, D65 reference white). The matrices are derived from the
// chromaticities at startup rather than hard-coded, so they can be audited
// against the published values.
var (
	srgbToXYZ = deriveRGBToXYZ(0.64, 0.33, 0.30, 0.60, 0.15, 0.06, D65)
	xyzToSRGB = srgbToXYZ.inverse()
)

// deriveRGBToXYZ builds the RGB-to-XYZ matrix for primaries given as CIE xy
// chromaticity pairs and a reference white: each primary's chromaticity
// column is scaled so that full red, green and blue sum to the white point.
func deriveRGBToXYZ(rx, ry, gx, gy, bx, by float64, white WhitePoint) mat3 {
	m := mat3{
		rx / ry, gx / gy, bx / by,
		1, 1, 1,
		(1 - rx - ry) / ry, (1 - gx - gy) / gy, (1 - bx - by) / by,
	}
	sr, sg, sb := m.inverse().mulVec(white.X, white.Y, white.Z)
	return mat3{
		m[0] * sr, m[1] * sg, m[2] * sb,
		m[3] * sr, m[4] * sg, m[5] * sb,
		m[6] * sr, m[7] * sg, m[8] * sb,
	}
}

// rgbToXYZ converts sRGB-encoded components to tristimulus values under wp.
// The matrix is relative to D65; other white points go through Bradford
// adaptation.
func rgbToXYZ(v [4]float64, wp WhitePoint) (float64, float64, float64) {
	x, y, z := srgbToXYZ.mulVec(DecodeGamma(v[0]), DecodeGamma(v[1]), DecodeGamma(v[2]))
	return AdaptXYZ(x, y, z, D65, wp)
}

// rgbFromXYZ converts tristimulus values under wp to sRGB-encoded
// components, clamped to [0,1].
func rgbFromXYZ(x, y, z float64, wp WhitePoint) [4]float64 {
	x, y, z = AdaptXYZ(x, y, z, wp, D65)
	r, g, b := xyzToSRGB.mulVec(x, y, z)
	return [4]float64{
		EncodeGamma(clamp01(r)),
		EncodeGamma(clamp01(g)),
		EncodeGamma(clamp01(b)),
	}
}
