package pixel

import "image/color"

// Color is a color value tagged with its Model and WhitePoint. The leading
// Model.Channels() entries of Channels are meaningful and use the model's
// natural units (hue in degrees, L* in [0,100], everything else normalized
// to [0,1]). Alpha is straight (not premultiplied), in [0,1].
//
// Color implements [color.Color], so values interoperate with the standard
// image packages.
type Color struct {
	Model      Model
	WhitePoint WhitePoint
	Channels   [4]float64
	Alpha      float64
}

// NewRGB returns an opaque sRGB color under D65.
func NewRGB(r, g, b float64) Color {
	return Color{RGBModel, D65, [4]float64{r, g, b}, 1}
}

// NewRGBA returns an sRGB color with straight alpha under D65.
func NewRGBA(r, g, b, a float64) Color {
	return Color{RGBModel, D65, [4]float64{r, g, b}, a}
}

// NewGray returns an opaque gray color under D65.
func NewGray(y float64) Color {
	return Color{GrayModel, D65, [4]float64{y}, 1}
}

// NewCMYK returns an opaque CMYK color under D65.
func NewCMYK(c, m, y, k float64) Color {
	return Color{CMYKModel, D65, [4]float64{c, m, y, k}, 1}
}

// NewHSV returns an opaque HSV color under D65; hue is in degrees.
func NewHSV(h, s, v float64) Color {
	return Color{HSVModel, D65, [4]float64{h, s, v}, 1}
}

// NewHSL returns an opaque HSL color under D65; hue is in degrees.
func NewHSL(h, s, l float64) Color {
	return Color{HSLModel, D65, [4]float64{h, s, l}, 1}
}

// NewHSI returns an opaque HSI color under D65; hue is in degrees.
func NewHSI(h, s, i float64) Color {
	return Color{HSIModel, D65, [4]float64{h, s, i}, 1}
}

// NewHWB returns an opaque HWB color under D65; hue is in degrees.
func NewHWB(h, w, b float64) Color {
	return Color{HWBModel, D65, [4]float64{h, w, b}, 1}
}

// NewXYZ returns an opaque XYZ color under D65.
func NewXYZ(x, y, z float64) Color {
	return Color{XYZModel, D65, [4]float64{x, y, z}, 1}
}

// NewLab returns an opaque L*a*b* color relative to D65.
func NewLab(l, a, b float64) Color {
	return Color{LabModel, D65, [4]float64{l, a, b}, 1}
}

// NewLCh returns an opaque L*C*h color relative to D65; hue is in degrees.
func NewLCh(l, c, h float64) Color {
	return Color{LChModel, D65, [4]float64{l, c, h}, 1}
}

// Convert expresses the color in another model under the same white point.
// Conversions route through XYZ, except between models that are both
// defined on sRGB components, which convert directly.
func (c Color) Convert(to Model) Color {
	if to == c.Model {
		return c
	}
	out := Color{Model: to, WhitePoint: c.WhitePoint, Alpha: c.Alpha}
	if c.Model.rgbBased() && to.rgbBased() {
		out.Channels = to.fromRGB(c.Model.toRGB(c.Channels))
		return out
	}
	x, y, z := c.Model.toXYZ(c.Channels, c.WhitePoint)
	out.Channels = to.fromXYZ(x, y, z, c.WhitePoint)
	return out
}

// Adapt moves the color to another white point using Bradford chromatic
// adaptation, keeping the model.
func (c Color) Adapt(wp WhitePoint) Color {
	if wp == c.WhitePoint {
		return c
	}
	x, y, z := c.Model.toXYZ(c.Channels, c.WhitePoint)
	x, y, z = AdaptXYZ(x, y, z, c.WhitePoint, wp)
	return Color{
		Model:      c.Model,
		WhitePoint: wp,
		Channels:   c.Model.fromXYZ(x, y, z, wp),
		Alpha:      c.Alpha,
	}
}

// RGBA implements [color.Color]. The result is alpha-premultiplied 16-bit
// sRGB under D65.
func (c Color) RGBA() (r, g, b, a uint32) {
	v := c.Adapt(D65).Convert(RGBModel)
	af := clamp01(c.Alpha) * 0xffff
	a = uint32(af + 0.5)
	r = uint32(clamp01(v.Channels[0])*af + 0.5)
	g = uint32(clamp01(v.Channels[1])*af + 0.5)
	b = uint32(clamp01(v.Channels[2])*af + 0.5)
	return r, g, b, a
}

// FromColor converts any [color.Color] into an RGB Color under D65,
// un-premultiplying the alpha. A Color passes through unchanged.
func FromColor(c color.Color) Color {
	if p, ok := c.(Color); ok {
		return p
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{Model: RGBModel, WhitePoint: D65}
	}
	af := float64(a)
	return Color{
		Model:      RGBModel,
		WhitePoint: D65,
		Channels:   [4]float64{float64(r) / af, float64(g) / af, float64(b) / af},
		Alpha:      af / 0xffff,
	}
}

// Interface check.
var _ color.Color = Color{}
