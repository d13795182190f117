package pixel

import "math"

// CIE 1976 L*a*b* constants: the cube-root segment applies above epsilon,
// the linear segment below it.
const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labFInv(f float64) float64 {
	if f3 := f * f * f; f3 > labEpsilon {
		return f3
	}
	return (116*f - 16) / labKappa
}

// labFromXYZ converts tristimulus values to L*a*b* relative to wp.
func labFromXYZ(x, y, z float64, wp WhitePoint) [4]float64 {
	fx := labF(x / wp.X)
	fy := labF(y / wp.Y)
	fz := labF(z / wp.Z)
	return [4]float64{
		116*fy - 16,
		500 * (fx - fy),
		200 * (fy - fz),
	}
}

// labToXYZ converts L*a*b* relative to wp back to tristimulus values.
func labToXYZ(v [4]float64, wp WhitePoint) (float64, float64, float64) {
	fy := (v[0] + 16) / 116
	fx := fy + v[1]/500
	fz := fy - v[2]/200
	return labFInv(fx) * wp.X, labFInv(fy) * wp.Y, labFInv(fz) * wp.Z
}

// labToLCh expresses a*b* in polar form: chroma and hue in degrees [0,360).
func labToLCh(v [4]float64) [4]float64 {
	chroma := math.Hypot(v[1], v[2])
	hue := math.Atan2(v[2], v[1]) * 180 / math.Pi
	if hue < 0 {
		hue += 360
	}
	return [4]float64{v[0], chroma, hue}
}

func lchToLab(v [4]float64) [4]float64 {
	hr := v[2] * math.Pi / 180
	return [4]float64{v[0], v[1] * math.Cos(hr), v[1] * math.Sin(hr)}
}
