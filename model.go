package pixel

// Model identifies a color model: the fixed set of channels a color is
// expressed in. Every model converts to and from CIE XYZ, which acts as the
// hub for conversion between any two models.
type Model uint8

// Supported color models.
const (
	// RGBModel is sRGB-encoded red, green and blue.
	RGBModel Model = iota

	// CMYKModel is cyan, magenta, yellow and key (black).
	CMYKModel

	// HSVModel is hue (degrees), saturation and value.
	HSVModel

	// HSLModel is hue (degrees), saturation and lightness.
	HSLModel

	// HSIModel is hue (degrees), saturation and intensity, with
	// intensity defined as the channel average (R+G+B)/3.
	HSIModel

	// HWBModel is hue (degrees), whiteness and blackness.
	HWBModel

	// GrayModel is a single sRGB-encoded luminance channel.
	GrayModel

	// XYZModel is CIE 1931 tristimulus values, Y normalized to [0,1].
	XYZModel

	// LabModel is CIE 1976 L*a*b*: L* in [0,100], a* and b* signed.
	LabModel

	// LChModel is LabModel in polar form: L*, chroma and hue (degrees).
	LChModel
)

// Channels returns the number of color channels of the model, not counting
// alpha.
func (m Model) Channels() int {
	switch m {
	case GrayModel:
		return 1
	case CMYKModel:
		return 4
	default:
		return 3
	}
}

func (m Model) String() string {
	switch m {
	case RGBModel:
		return "RGB"
	case CMYKModel:
		return "CMYK"
	case HSVModel:
		return "HSV"
	case HSLModel:
		return "HSL"
	case HSIModel:
		return "HSI"
	case HWBModel:
		return "HWB"
	case GrayModel:
		return "Gray"
	case XYZModel:
		return "XYZ"
	case LabModel:
		return "Lab"
	case LChModel:
		return "LCh"
	default:
		return "invalid"
	}
}

// rgbBased reports whether the model is defined directly in terms of sRGB
// components, allowing conversions between two such models to skip the XYZ
// hub. The shortcut is numerically identical to the composed route up to
// floating-point rounding.
func (m Model) rgbBased() bool {
	switch m {
	case RGBModel, CMYKModel, HSVModel, HSLModel, HSIModel, HWBModel, GrayModel:
		return true
	default:
		return false
	}
}

// toRGB converts channel values of an rgbBased model to sRGB components.
func (m Model) toRGB(v [4]float64) [4]float64 {
	switch m {
	case CMYKModel:
		return cmykToRGB(v)
	case HSVModel:
		return hsvToRGB(v)
	case HSLModel:
		return hslToRGB(v)
	case HSIModel:
		return hsiToRGB(v)
	case HWBModel:
		return hwbToRGB(v)
	case GrayModel:
		return [4]float64{v[0], v[0], v[0]}
	default:
		return v
	}
}

// fromRGB converts sRGB components to channel values of an rgbBased model.
func (m Model) fromRGB(v [4]float64) [4]float64 {
	switch m {
	case CMYKModel:
		return rgbToCMYK(v)
	case HSVModel:
		return rgbToHSV(v)
	case HSLModel:
		return rgbToHSL(v)
	case HSIModel:
		return rgbToHSI(v)
	case HWBModel:
		return rgbToHWB(v)
	case GrayModel:
		return rgbToGray(v)
	default:
		return v
	}
}

// toXYZ converts channel values to tristimulus values under wp.
func (m Model) toXYZ(v [4]float64, wp WhitePoint) (x, y, z float64) {
	switch m {
	case XYZModel:
		return v[0], v[1], v[2]
	case LabModel:
		return labToXYZ(v, wp)
	case LChModel:
		return labToXYZ(lchToLab(v), wp)
	case GrayModel:
		return grayToXYZ(v, wp)
	default:
		return rgbToXYZ(m.toRGB(v), wp)
	}
}

// fromXYZ converts tristimulus values under wp to channel values.
func (m Model) fromXYZ(x, y, z float64, wp WhitePoint) [4]float64 {
	switch m {
	case XYZModel:
		return [4]float64{x, y, z}
	case LabModel:
		return labFromXYZ(x, y, z, wp)
	case LChModel:
		return labToLCh(labFromXYZ(x, y, z, wp))
	case GrayModel:
		return grayFromXYZ(x, y, z, wp)
	default:
		return m.fromRGB(rgbFromXYZ(x, y, z, wp))
	}
}

// channelRange returns the natural unit range of channel i, used to map
// channel values to the normalized [0,1] storage domain. Hues span
// [0,360); XYZ uses the ICC-style [0,2) encoding range; L* spans [0,100],
// a* and b* span [-128,128] and chroma [0,181.02] (the a*b* diagonal).
func (m Model) channelRange(i int) (lo, hi float64) {
	switch m {
	case HSVModel, HSLModel, HSIModel, HWBModel:
		if i == 0 {
			return 0, 360
		}
	case XYZModel:
		return 0, 2
	case LabModel:
		if i == 0 {
			return 0, 100
		}
		return -128, 128
	case LChModel:
		switch i {
		case 0:
			return 0, 100
		case 1:
			return 0, 181.02
		default:
			return 0, 360
		}
	}
	return 0, 1
}
