package pixel

import (
	"errors"
	"math"
	"testing"
)

func mustGradient(t *testing.T, model Model, extend Extend, stops ...Stop) *Gradient {
	t.Helper()
	g, err := NewGradient(model, extend, stops...)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return g
}

func TestGradientInvalidStops(t *testing.T) {
	red := Stop{Position: 0, Color: NewRGB(1, 0, 0)}
	blue := Stop{Position: 1, Color: NewRGB(0, 0, 1)}
	testCases := []struct {
		name  string
		stops []Stop
	}{
		{"no stops", nil},
		{"single stop", []Stop{red}},
		{"position above one", []Stop{red, {Position: 1.5, Color: NewRGB(0, 0, 1)}}},
		{"negative position", []Stop{{Position: -0.5, Color: NewRGB(1, 0, 0)}, blue}},
		{"NaN position", []Stop{red, {Position: math.NaN(), Color: NewRGB(0, 0, 1)}}},
		{"descending positions", []Stop{blue, red}},
	}
	for _, test := range testCases {
		t.Run(test.name, func(it *testing.T) {
			if _, err := NewGradient(RGBModel, ExtendClamp, test.stops...); !errors.Is(err, ErrInvalidStops) {
				it.Errorf("expected ErrInvalidStops, got %v", err)
			}
		})
	}
}

func TestGradientEndpoints(t *testing.T) {
	red := NewRGB(1, 0, 0)
	blue := NewRGB(0, 0, 1)
	g := mustGradient(t, RGBModel, ExtendClamp,
		Stop{Position: 0, Color: red},
		Stop{Position: 1, Color: blue},
	)
	if c := g.Sample(0); c.Channels != red.Channels {
		t.Errorf("expected %v, got %v", red.Channels, c.Channels)
	}
	if c := g.Sample(1); c.Channels != blue.Channels {
		t.Errorf("expected %v, got %v", blue.Channels, c.Channels)
	}
}

func TestGradientMidpoint(t *testing.T) {
	g := mustGradient(t, RGBModel, ExtendClamp,
		Stop{Position: 0, Color: NewRGB(1, 0, 0)},
		Stop{Position: 1, Color: NewRGB(0, 0, 1)},
	)
	c := g.Sample(0.5)
	want := [3]float64{0.5, 0, 0.5}
	for i := 0; i < 3; i++ {
		if !closeTo(c.Channels[i], want[i], 1e-12) {
			t.Errorf("expected %v, got %v", want, c.Channels)
			break
		}
	}
}

func TestGradientInteriorStop(t *testing.T) {
	white := NewRGB(1, 1, 1)
	g := mustGradient(t, RGBModel, ExtendClamp,
		Stop{Position: 0, Color: NewRGB(0, 0, 0)},
		Stop{Position: 0.25, Color: white},
		Stop{Position: 1, Color: NewRGB(0, 0, 0)},
	)
	if c := g.Sample(0.25); c.Channels != white.Channels {
		t.Errorf("expected the stop color exactly, got %v", c.Channels)
	}
	if c := g.Sample(0.125); !closeTo(c.Channels[0], 0.5, 1e-12) {
		t.Errorf("expected 0.5 halfway to the stop, got %v", c.Channels[0])
	}
}

func TestGradientHueInterpolation(t *testing.T) {
	g := mustGradient(t, HSVModel, ExtendClamp,
		Stop{Position: 0, Color: NewRGB(1, 0, 0)},
		Stop{Position: 1, Color: NewRGB(1, 1, 0)},
	)
	c := g.Sample(0.5)
	if c.Model != HSVModel {
		t.Fatalf("expected model %s, got %s", HSVModel, c.Model)
	}
	if !closeTo(c.Channels[0], 30, 1e-9) {
		t.Errorf("expected hue 30, got %v", c.Channels[0])
	}
}

func TestGradientExtend(t *testing.T) {
	stops := []Stop{
		{Position: 0, Color: NewRGB(1, 0, 0)},
		{Position: 1, Color: NewRGB(0, 0, 1)},
	}

	t.Run("clamp", func(it *testing.T) {
		g := mustGradient(it, RGBModel, ExtendClamp, stops...)
		if c := g.Sample(2); c.Channels != g.Sample(1).Channels {
			it.Errorf("expected the last color, got %v", c.Channels)
		}
		if c := g.Sample(-1); c.Channels != g.Sample(0).Channels {
			it.Errorf("expected the first color, got %v", c.Channels)
		}
	})

	t.Run("repeat", func(it *testing.T) {
		g := mustGradient(it, RGBModel, ExtendRepeat, stops...)
		a, b := g.Sample(1.2), g.Sample(0.2)
		for i := 0; i < 3; i++ {
			if !closeTo(a.Channels[i], b.Channels[i], 1e-9) {
				it.Errorf("expected %v, got %v", b.Channels, a.Channels)
				break
			}
		}
	})

	t.Run("mirror", func(it *testing.T) {
		g := mustGradient(it, RGBModel, ExtendMirror, stops...)
		a, b := g.Sample(1.5), g.Sample(0.5)
		for i := 0; i < 3; i++ {
			if !closeTo(a.Channels[i], b.Channels[i], 1e-9) {
				it.Errorf("expected %v, got %v", b.Channels, a.Channels)
				break
			}
		}
		a, b = g.Sample(-0.25), g.Sample(0.25)
		for i := 0; i < 3; i++ {
			if !closeTo(a.Channels[i], b.Channels[i], 1e-9) {
				it.Errorf("expected %v, got %v", b.Channels, a.Channels)
				break
			}
		}
	})
}

func TestGradientAlpha(t *testing.T) {
	g := mustGradient(t, RGBModel, ExtendClamp,
		Stop{Position: 0, Color: NewRGBA(1, 0, 0, 1)},
		Stop{Position: 1, Color: NewRGBA(1, 0, 0, 0)},
	)
	if c := g.Sample(0.5); !closeTo(c.Alpha, 0.5, 1e-12) {
		t.Errorf("expected alpha 0.5, got %v", c.Alpha)
	}
}

func TestGradientStopsCopy(t *testing.T) {
	g := mustGradient(t, RGBModel, ExtendClamp,
		Stop{Position: 0, Color: NewRGB(1, 0, 0)},
		Stop{Position: 1, Color: NewRGB(0, 0, 1)},
	)
	stops := g.Stops()
	stops[0].Position = 0.9
	if g.Stops()[0].Position != 0 {
		t.Error("expected Stops to return a copy")
	}
}
