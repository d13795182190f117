package pixel

import (
	"fmt"
	"image/color"
	"math"
)

// AlphaMode describes how a format stores transparency.
type AlphaMode uint8

// Supported alpha modes.
const (
	// AlphaNone stores no alpha channel; pixels are opaque.
	AlphaNone AlphaMode = iota

	// AlphaStraight stores an alpha channel alongside unscaled color
	// channels.
	AlphaStraight

	// AlphaPremultiplied stores color channels pre-scaled by alpha.
	AlphaPremultiplied
)

func (a AlphaMode) String() string {
	switch a {
	case AlphaStraight:
		return "straight"
	case AlphaPremultiplied:
		return "premultiplied"
	default:
		return "none"
	}
}

// Format describes the memory layout of a single pixel: a color model, a
// channel numeric type, an alpha mode, a channel encoding (applied to RGB
// and Gray channels only) and a white point. Formats are immutable and
// comparable by value.
//
// Channels are stored in model order, alpha last, each channel in the
// ChannelType's big-endian encoding.
type Format struct {
	Model      Model
	Channel    ChannelType
	Alpha      AlphaMode
	Encoding   Encoding
	WhitePoint WhitePoint
}

// Predefined formats, all under D65. The 8- and 16-bit RGB and Gray formats
// are sRGB-encoded; the float formats are linear.
var (
	RGB8    = Format{RGBModel, Uint8, AlphaNone, SRGB, D65}
	RGBA8   = Format{RGBModel, Uint8, AlphaStraight, SRGB, D65}
	RGBA8P  = Format{RGBModel, Uint8, AlphaPremultiplied, SRGB, D65}
	RGB16   = Format{RGBModel, Uint16, AlphaNone, SRGB, D65}
	RGBA16  = Format{RGBModel, Uint16, AlphaStraight, SRGB, D65}
	RGBF32  = Format{RGBModel, Float32, AlphaNone, Linear, D65}
	RGBAF32 = Format{RGBModel, Float32, AlphaStraight, Linear, D65}

	Gray8      = Format{GrayModel, Uint8, AlphaNone, SRGB, D65}
	Gray16     = Format{GrayModel, Uint16, AlphaNone, SRGB, D65}
	GrayAlpha8 = Format{GrayModel, Uint8, AlphaStraight, SRGB, D65}

	CMYK8  = Format{CMYKModel, Uint8, AlphaNone, Linear, D65}
	HSVF32 = Format{HSVModel, Float32, AlphaNone, Linear, D65}
	HSLF32 = Format{HSLModel, Float32, AlphaNone, Linear, D65}
	XYZF32 = Format{XYZModel, Float32, AlphaNone, Linear, D65}
	LabF32 = Format{LabModel, Float32, AlphaNone, Linear, D65}
)

// NewFormat returns a format with the default encoding for the model (sRGB
// for RGB and Gray, linear otherwise) and the D65 white point.
func NewFormat(m Model, t ChannelType, a AlphaMode) Format {
	enc := Linear
	if gammaApplies(m) {
		enc = SRGB
	}
	return Format{m, t, a, enc, D65}
}

// gammaApplies reports whether the format encoding has an effect on the
// model's channels.
func gammaApplies(m Model) bool {
	return m == RGBModel || m == GrayModel
}

// ChannelCount returns the number of stored channels, including alpha.
func (f Format) ChannelCount() int {
	n := f.Model.Channels()
	if f.Alpha != AlphaNone {
		n++
	}
	return n
}

// ByteSize returns the number of bytes occupied by one packed pixel.
func (f Format) ByteSize() int {
	return f.ChannelCount() * f.Channel.ByteSize()
}

func (f Format) String() string {
	return fmt.Sprintf("%s/%s/%s", f.Model, f.Channel, f.Alpha)
}

// storage converts a color into the format's normalized storage channels
// and alpha: adapt and convert to the format's model and white point, map
// natural units into [0,1], decode gamma for linear formats and premultiply
// when the format calls for it.
func (f Format) storage(c Color) ([4]float64, float64) {
	c = c.Adapt(f.WhitePoint).Convert(f.Model)
	n := f.Model.Channels()
	linear := f.Encoding == Linear && gammaApplies(f.Model)
	alpha := clamp01(c.Alpha)

	var out [4]float64
	for i := 0; i < n; i++ {
		lo, hi := f.Model.channelRange(i)
		v := (c.Channels[i] - lo) / (hi - lo)
		if linear {
			v = DecodeGamma(v)
		}
		if f.Alpha == AlphaPremultiplied {
			v *= alpha
		}
		out[i] = v
	}
	return out, alpha
}

// Pack encodes c into b, converting it to the format's model and white
// point as needed. b must be at least ByteSize bytes. Out-of-range channel
// values are clamped.
func (f Format) Pack(c Color, b []byte) {
	vals, alpha := f.storage(c)
	n, size := f.Model.Channels(), f.Channel.ByteSize()
	for i := 0; i < n; i++ {
		f.Channel.put(b[i*size:], vals[i])
	}
	if f.Alpha != AlphaNone {
		f.Channel.put(b[n*size:], alpha)
	}
}

// PackStrict is Pack, except out-of-range channel or alpha values fail with
// [ErrInvalidChannelValue] instead of clamping.
func (f Format) PackStrict(c Color, b []byte) error {
	if !(c.Alpha >= 0 && c.Alpha <= 1) {
		return fmt.Errorf("%w: alpha is %v", ErrInvalidChannelValue, c.Alpha)
	}
	vals, _ := f.storage(c)
	for i, n := 0, f.Model.Channels(); i < n; i++ {
		if !(vals[i] >= 0 && vals[i] <= 1) {
			return fmt.Errorf("%w: channel %d is %v", ErrInvalidChannelValue, i, vals[i])
		}
	}
	f.Pack(c, b)
	return nil
}

// Unpack decodes one pixel from the start of b. It is the inverse of Pack
// up to channel quantization. A premultiplied pixel with zero alpha decodes
// to zero channel values.
func (f Format) Unpack(b []byte) Color {
	n, size := f.Model.Channels(), f.Channel.ByteSize()
	linear := f.Encoding == Linear && gammaApplies(f.Model)

	alpha := 1.0
	if f.Alpha != AlphaNone {
		alpha = f.Channel.get(b[n*size:])
	}
	var ch [4]float64
	for i := 0; i < n; i++ {
		v := f.Channel.get(b[i*size:])
		if f.Alpha == AlphaPremultiplied {
			v = unpremultiply(v, alpha)
		}
		if linear {
			v = EncodeGamma(v)
		}
		lo, hi := f.Model.channelRange(i)
		ch[i] = lo + v*(hi-lo)
	}
	return Color{Model: f.Model, WhitePoint: f.WhitePoint, Channels: ch, Alpha: alpha}
}

// ConvertTo re-encodes one packed pixel from this format into dst: unpack,
// convert the color (adapting white points as needed) and pack. b must hold
// at least ByteSize bytes and out at least dst.ByteSize() bytes.
func (f Format) ConvertTo(dst Format, b, out []byte) {
	dst.Pack(f.Unpack(b), out)
}

// ColorModel returns the [color.Model] converting arbitrary colors into
// this format's model and white point.
func (f Format) ColorModel() color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		return FromColor(c).Adapt(f.WhitePoint).Convert(f.Model)
	})
}

// unpremultiply returns the straight channel value; zero alpha maps to zero
// rather than dividing.
func unpremultiply(v, a float64) float64 {
	if a <= 0 {
		return 0
	}
	return math.Min(v/a, 1)
}
