package pixel

// grayToXYZ converts an sRGB-encoded luminance to tristimulus values.
// An achromatic color has the chromaticity of the white point, so the XYZ
// values are the white point scaled by the linear luminance.
func grayToXYZ(v [4]float64, wp WhitePoint) (float64, float64, float64) {
	y := DecodeGamma(v[0])
	return wp.X * y, wp.Y * y, wp.Z * y
}

// grayFromXYZ keeps only the relative luminance Y.
func grayFromXYZ(_, y, _ float64, wp WhitePoint) [4]float64 {
	return [4]float64{EncodeGamma(clamp01(y / wp.Y))}
}

// rgbToGray computes relative luminance from linear components using the Y
// row of the sRGB matrix, then re-encodes.
func rgbToGray(v [4]float64) [4]float64 {
	y := srgbToXYZ[3]*DecodeGamma(v[0]) +
		srgbToXYZ[4]*DecodeGamma(v[1]) +
		srgbToXYZ[5]*DecodeGamma(v[2])
	return [4]float64{EncodeGamma(clamp01(y))}
}
