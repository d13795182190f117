package pixel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"iter"
	"sync"
)

// Raster errors.
var (
	ErrOutOfBounds       = errors.New("pixel: coordinate outside raster bounds")
	ErrInvalidBufferSize = errors.New("pixel: buffer size does not match raster dimensions")
)

// Raster is a rectangular array of pixels packed in a single [Format].
//
// Rasters satisfy [image.Image] and [draw.Image]. A raster is safe for
// concurrent reads; concurrent mutation must be serialized by the caller.
type Raster struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix holds the packed pixels in row-major order.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent
	// pixels.
	Stride int

	format Format
}

// NewRaster allocates a raster of w by h pixels in the given format, with
// every byte zeroed (the format's zero color). Negative dimensions are
// treated as zero.
func NewRaster(w, h int, f Format) *Raster {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	stride := w * f.ByteSize()
	return &Raster{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, stride*h),
		Stride: stride,
		format: f,
	}
}

// NewRasterWithPix wraps an existing packed pixel buffer, such as one
// produced by an external decoder, without copying it. pix must hold
// exactly w by h pixels in the given format; a mismatch fails with
// [ErrInvalidBufferSize].
func NewRasterWithPix(w, h int, f Format, pix []byte) (*Raster, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBufferSize, w, h)
	}
	stride := w * f.ByteSize()
	if len(pix) != stride*h {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrInvalidBufferSize, len(pix), stride*h)
	}
	return &Raster{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    pix,
		Stride: stride,
		format: f,
	}, nil
}

// Format returns the raster's pixel format.
func (p *Raster) Format() Format {
	return p.format
}

// Width returns the raster width in pixels.
func (p *Raster) Width() int {
	return p.Rect.Dx()
}

// Height returns the raster height in pixels.
func (p *Raster) Height() int {
	return p.Rect.Dy()
}

func (p *Raster) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Raster) ColorModel() color.Model {
	return p.format.ColorModel()
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *Raster) PixOffset(x, y int) int {
	return y*p.Stride + x*p.format.ByteSize()
}

// Pixel returns the color at (x, y), failing with [ErrOutOfBounds] when the
// coordinate lies outside the raster.
func (p *Raster) Pixel(x, y int) (Color, error) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return Color{}, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, p.Width(), p.Height())
	}
	off := p.PixOffset(x, y)
	return p.format.Unpack(p.Pix[off:]), nil
}

// SetPixel packs c at (x, y), failing with [ErrOutOfBounds] when the
// coordinate lies outside the raster.
func (p *Raster) SetPixel(x, y int, c Color) error {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, p.Width(), p.Height())
	}
	off := p.PixOffset(x, y)
	p.format.Pack(c, p.Pix[off:])
	return nil
}

// Row returns the raw bytes of row y as a writable view into the raster's
// backing store, for bulk operations.
func (p *Raster) Row(y int) ([]byte, error) {
	if y < 0 || y >= p.Height() {
		return nil, fmt.Errorf("%w: row %d in %d rows", ErrOutOfBounds, y, p.Height())
	}
	off := y * p.Stride
	return p.Pix[off : off+p.Width()*p.format.ByteSize()], nil
}

// Fill sets every pixel to c.
func (p *Raster) Fill(c Color) {
	size := p.format.ByteSize()
	if size == 0 || len(p.Pix) == 0 {
		return
	}
	p.format.Pack(c, p.Pix)
	for i := size; i < len(p.Pix); i *= 2 {
		copy(p.Pix[i:], p.Pix[:i])
	}
}

// Clear resets every pixel to the format's zero color.
func (p *Raster) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// At implements [image.Image]. Coordinates outside the raster return
// [color.Transparent].
func (p *Raster) At(x, y int) color.Color {
	c, err := p.Pixel(x, y)
	if err != nil {
		return color.Transparent
	}
	return c
}

// Set implements [draw.Image]. Coordinates outside the raster are ignored.
func (p *Raster) Set(x, y int, c color.Color) {
	_ = p.SetPixel(x, y, FromColor(c))
}

// Pixels returns a restartable sequence of every (point, color) pair in
// row-major order.
func (p *Raster) Pixels() iter.Seq2[image.Point, Color] {
	return func(yield func(image.Point, Color) bool) {
		for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
			for x := p.Rect.Min.X; x < p.Rect.Max.X; x++ {
				c, err := p.Pixel(x, y)
				if err != nil {
					return
				}
				if !yield(image.Point{X: x, Y: y}, c) {
					return
				}
			}
		}
	}
}

// ConvertTo returns a new raster of identical dimensions with every pixel
// converted to the destination format.
func (p *Raster) ConvertTo(f Format) *Raster {
	dst := NewRaster(p.Width(), p.Height(), f)
	if f == p.format {
		copy(dst.Pix, p.Pix)
		return dst
	}
	p.convertRows(dst, 0, p.Height())
	return dst
}

// ConvertToParallel is ConvertTo with the rows partitioned across the given
// number of goroutines. Rows do not alias, so the result is identical to
// the sequential conversion.
func (p *Raster) ConvertToParallel(f Format, workers int) *Raster {
	h := p.Height()
	if workers > h {
		workers = h
	}
	if workers <= 1 || f == p.format {
		return p.ConvertTo(f)
	}

	dst := NewRaster(p.Width(), h, f)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		y0 := i * h / workers
		y1 := (i + 1) * h / workers
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.convertRows(dst, y0, y1)
		}()
	}
	wg.Wait()
	return dst
}

// convertRows converts rows [y0, y1) into dst, which must have identical
// dimensions.
func (p *Raster) convertRows(dst *Raster, y0, y1 int) {
	w := p.Width()
	ssize := p.format.ByteSize()
	dsize := dst.format.ByteSize()
	for y := y0; y < y1; y++ {
		soff := y * p.Stride
		doff := y * dst.Stride
		for x := 0; x < w; x++ {
			p.format.ConvertTo(dst.format, p.Pix[soff:], dst.Pix[doff:])
			soff += ssize
			doff += dsize
		}
	}
}

// Interface checks.
var (
	_ image.Image = (*Raster)(nil)
	_ draw.Image  = (*Raster)(nil)
)
