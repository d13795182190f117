package pixel

import (
	"encoding/binary"
	"errors"
	"math"
)

// Channel errors.
var (
	ErrInvalidChannelValue = errors.New("pixel: channel value out of range")
)

// ChannelType is the numeric representation of a single color channel.
type ChannelType uint8

// Supported channel types.
const (
	// Uint8 stores a channel as an unsigned 8-bit integer.
	Uint8 ChannelType = iota

	// Uint16 stores a channel as a big-endian unsigned 16-bit integer.
	Uint16

	// Float32 stores a channel as a big-endian IEEE 754 single.
	Float32
)

func (t ChannelType) String() string {
	switch t {
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Float32:
		return "float32"
	default:
		return "invalid"
	}
}

// ByteSize returns the number of bytes used to store one channel.
func (t ChannelType) ByteSize() int {
	switch t {
	case Uint16:
		return 2
	case Float32:
		return 4
	default:
		return 1
	}
}

// Quantize converts a normalized value in [0,1] to the channel's raw
// encoding. Out-of-range and NaN input is clamped. For Float32 the raw
// encoding is the IEEE 754 bit pattern.
func (t ChannelType) Quantize(v float64) uint32 {
	v = clamp01(v)
	switch t {
	case Uint8:
		return uint32(v*0xff + 0.5)
	case Uint16:
		return uint32(v*0xffff + 0.5)
	default:
		return math.Float32bits(float32(v))
	}
}

// QuantizeStrict is Quantize, except out-of-range or NaN input fails with
// [ErrInvalidChannelValue] instead of clamping.
func (t ChannelType) QuantizeStrict(v float64) (uint32, error) {
	if !(v >= 0 && v <= 1) {
		return 0, ErrInvalidChannelValue
	}
	return t.Quantize(v), nil
}

// Normalize converts a raw channel encoding back to a normalized value in
// [0,1]. It is the inverse of Quantize up to one quantization step.
func (t ChannelType) Normalize(raw uint32) float64 {
	switch t {
	case Uint8:
		return float64(raw&0xff) / 0xff
	case Uint16:
		return float64(raw&0xffff) / 0xffff
	default:
		return clamp01(float64(math.Float32frombits(raw)))
	}
}

// put writes a normalized value to the start of b.
func (t ChannelType) put(b []byte, v float64) {
	switch t {
	case Uint8:
		b[0] = uint8(t.Quantize(v))
	case Uint16:
		binary.BigEndian.PutUint16(b, uint16(t.Quantize(v)))
	default:
		binary.BigEndian.PutUint32(b, math.Float32bits(float32(clamp01(v))))
	}
}

// get reads a normalized value from the start of b.
func (t ChannelType) get(b []byte) float64 {
	switch t {
	case Uint8:
		return t.Normalize(uint32(b[0]))
	case Uint16:
		return t.Normalize(uint32(binary.BigEndian.Uint16(b)))
	default:
		return t.Normalize(binary.BigEndian.Uint32(b))
	}
}

// clamp01 clamps v to [0,1]; NaN maps to 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
