// Package pixel implements a color and raster image library built around
// explicit color models and pixel formats.
//
// Colors convert between models through the CIE XYZ tristimulus hub, with
// Bradford chromatic adaptation between white points. A [Format] describes
// the memory layout of a single pixel, a [Raster] stores a rectangular grid
// of them, and a [Gradient] produces interpolated colors in any model.
//
// Colors and rasters are compatible with Go's native [color.Color] and
// [image.Image] / [draw.Image] interfaces, so buffers decoded by external
// image codecs can be wrapped, converted and composed with the standard
// library.
package pixel
