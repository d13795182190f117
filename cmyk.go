package pixel

import "math"

func cmykToRGB(v [4]float64) [4]float64 {
	d := 1 - v[3]
	return [4]float64{(1 - v[0]) * d, (1 - v[1]) * d, (1 - v[2]) * d}
}

// rgbToCMYK extracts the maximum key (black) component first. Pure black
// (K = 1) collapses cyan, magenta and yellow to zero by definition, keeping
// the division guarded.
func rgbToCMYK(v [4]float64) [4]float64 {
	k := 1 - math.Max(v[0], math.Max(v[1], v[2]))
	if k >= 1 {
		return [4]float64{0, 0, 0, 1}
	}
	d := 1 - k
	return [4]float64{
		(1 - v[0] - k) / d,
		(1 - v[1] - k) / d,
		(1 - v[2] - k) / d,
		k,
	}
}
