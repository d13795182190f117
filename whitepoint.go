package pixel

// WhitePoint is a reference white in CIE XYZ tristimulus values, normalized
// so that Y equals 1. It defines what "white" means for a viewing condition
// and is the reference for all device-independent conversions.
type WhitePoint struct {
	X, Y, Z float64
}

// Standard illuminants, CIE 1931 2° observer.
var (
	// D65 is average daylight, the reference white of sRGB and the
	// default white point of this package.
	D65 = WhitePoint{0.95047, 1, 1.08883}

	// D50 is horizon light, the reference white of ICC profile
	// connection spaces.
	D50 = WhitePoint{0.96422, 1, 0.82521}

	// A is incandescent tungsten light.
	A = WhitePoint{1.09850, 1, 0.35585}

	// E is the equal-energy illuminant.
	E = WhitePoint{1, 1, 1}
)

// AdaptXYZ transforms tristimulus values viewed under the from white point
// into the corresponding values under to, using the Bradford method. It is
// the identity when both white points are equal.
func AdaptXYZ(x, y, z float64, from, to WhitePoint) (float64, float64, float64) {
	if from == to {
		return x, y, z
	}
	return from.adaptationTo(to).mulVec(x, y, z)
}

// Bradford cone response matrix and its inverse.
var (
	bradford = mat3{
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	}
	bradfordInv = bradford.inverse()
)

// adaptationTo builds the 3×3 chromatic adaptation matrix from w to another
// white point: the white points are transformed into cone response space,
// scaled component-wise, and transformed back.
func (w WhitePoint) adaptationTo(to WhitePoint) mat3 {
	sl, sm, ss := bradford.mulVec(w.X, w.Y, w.Z)
	dl, dm, ds := bradford.mulVec(to.X, to.Y, to.Z)
	scale := mat3{
		dl / sl, 0, 0,
		0, dm / sm, 0,
		0, 0, ds / ss,
	}
	return bradfordInv.mul(scale).mul(bradford)
}

// mat3 is a row-major 3×3 matrix.
type mat3 [9]float64

func (m mat3) mul(n mat3) mat3 {
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i*3+j] = m[i*3]*n[j] + m[i*3+1]*n[3+j] + m[i*3+2]*n[6+j]
		}
	}
	return r
}

func (m mat3) mulVec(x, y, z float64) (float64, float64, float64) {
	return m[0]*x + m[1]*y + m[2]*z,
		m[3]*x + m[4]*y + m[5]*z,
		m[6]*x + m[7]*y + m[8]*z
}

func (m mat3) inverse() mat3 {
	a := m[4]*m[8] - m[5]*m[7]
	b := m[5]*m[6] - m[3]*m[8]
	c := m[3]*m[7] - m[4]*m[6]
	det := m[0]*a + m[1]*b + m[2]*c
	return mat3{
		a / det, (m[2]*m[7] - m[1]*m[8]) / det, (m[1]*m[5] - m[2]*m[4]) / det,
		b / det, (m[0]*m[8] - m[2]*m[6]) / det, (m[2]*m[3] - m[0]*m[5]) / det,
		c / det, (m[1]*m[6] - m[0]*m[7]) / det, (m[0]*m[4] - m[1]*m[3]) / det,
	}
}
