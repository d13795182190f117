package pixel

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Gradient errors.
var (
	ErrInvalidStops = errors.New("pixel: invalid gradient stops")
)

// Extend determines how sample positions outside [0,1] map back into the
// gradient.
type Extend uint8

// Supported extend modes.
const (
	// ExtendClamp clips positions to [0,1].
	ExtendClamp Extend = iota

	// ExtendRepeat tiles the gradient with period 1.
	ExtendRepeat

	// ExtendMirror reflects the gradient back and forth with period 2.
	ExtendMirror
)

func (e Extend) String() string {
	switch e {
	case ExtendRepeat:
		return "repeat"
	case ExtendMirror:
		return "mirror"
	default:
		return "clamp"
	}
}

// Stop anchors a color at a position in [0,1].
type Stop struct {
	Position float64
	Color    Color
}

// Gradient is an immutable ordered set of color stops sampled in a fixed
// interpolation model. Construction is the only mutation point; sampling is
// safe for concurrent use.
type Gradient struct {
	stops  []Stop
	colors []Color // stop colors in the interpolation model
	model  Model
	extend Extend
}

// NewGradient builds a gradient from at least two stops, sorted ascending
// by position with every position in [0,1]. Violations fail with
// [ErrInvalidStops]. Stop colors are converted into the interpolation model
// (and adapted to the first stop's white point) once, up front.
func NewGradient(model Model, extend Extend, stops ...Stop) (*Gradient, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 stops, got %d", ErrInvalidStops, len(stops))
	}
	for i, s := range stops {
		if !(s.Position >= 0 && s.Position <= 1) {
			return nil, fmt.Errorf("%w: stop %d position %v outside [0,1]", ErrInvalidStops, i, s.Position)
		}
		if i > 0 && s.Position < stops[i-1].Position {
			return nil, fmt.Errorf("%w: stop %d position %v before stop %d position %v",
				ErrInvalidStops, i, s.Position, i-1, stops[i-1].Position)
		}
	}

	g := &Gradient{
		stops:  append([]Stop(nil), stops...),
		colors: make([]Color, len(stops)),
		model:  model,
		extend: extend,
	}
	wp := stops[0].Color.WhitePoint
	for i, s := range g.stops {
		g.colors[i] = s.Color.Adapt(wp).Convert(model)
	}
	return g, nil
}

// Model returns the interpolation model.
func (g *Gradient) Model() Model {
	return g.model
}

// Extend returns the extend mode.
func (g *Gradient) Extend() Extend {
	return g.extend
}

// Stops returns a copy of the gradient's stops.
func (g *Gradient) Stops() []Stop {
	return append([]Stop(nil), g.stops...)
}

// fold maps an arbitrary sample position into [0,1] according to the extend
// mode.
func (g *Gradient) fold(t float64) float64 {
	if math.IsNaN(t) {
		return 0
	}
	switch g.extend {
	case ExtendRepeat:
		return t - math.Floor(t)
	case ExtendMirror:
		t = math.Mod(math.Abs(t), 2)
		if t > 1 {
			t = 2 - t
		}
		return t
	default:
		return clamp01(t)
	}
}

// Sample returns the gradient color at position t, expressed in the
// interpolation model. The bracketing stop pair is interpolated linearly
// per channel; positions at a stop reproduce that stop's color exactly.
func (g *Gradient) Sample(t float64) Color {
	t = g.fold(t)
	idx := sort.Search(len(g.stops), func(i int) bool {
		return g.stops[i].Position >= t
	})
	if idx == 0 {
		return g.colors[0]
	}
	if idx == len(g.stops) {
		return g.colors[len(g.colors)-1]
	}

	s0, s1 := g.stops[idx-1], g.stops[idx]
	span := s1.Position - s0.Position
	if span <= 0 {
		return g.colors[idx-1]
	}
	f := (t - s0.Position) / span
	if f <= 0 {
		return g.colors[idx-1]
	}
	if f >= 1 {
		return g.colors[idx]
	}

	c0, c1 := g.colors[idx-1], g.colors[idx]
	out := Color{Model: g.model, WhitePoint: c0.WhitePoint}
	for i, n := 0, g.model.Channels(); i < n; i++ {
		out.Channels[i] = c0.Channels[i] + f*(c1.Channels[i]-c0.Channels[i])
	}
	out.Alpha = c0.Alpha + f*(c1.Alpha-c0.Alpha)
	return out
}
