// Command pixel-gradient renders a gradient into a raster and writes it out
// as a PNG image.
//
// Stops are given as position:color arguments, where color is either a name
// from the SVG 1.1 palette or a #rrggbb hex value:
//
//	pixel-gradient -width 512 -height 64 -model hsv 0:red 0.5:gold 1:navy
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/BeatGlow/pixel"
)

func main() {
	widthFlag := flag.Int("width", 512, "Image width")
	heightFlag := flag.Int("height", 64, "Image height")
	modelFlag := flag.String("model", "rgb", "Interpolation color model")
	extendFlag := flag.String("extend", "clamp", "Extend mode (clamp, repeat or mirror)")
	spanFlag := flag.Float64("span", 1, "Gradient span as a fraction of the width")
	outFlag := flag.String("out", "gradient.png", "Output PNG file")
	flag.Parse()

	if flag.NArg() < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <pos:color> <pos:color> [<pos:color>...]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	model, err := parseModel(*modelFlag)
	if err != nil {
		fatal(err)
	}
	extend, err := parseExtend(*extendFlag)
	if err != nil {
		fatal(err)
	}

	stops := make([]pixel.Stop, flag.NArg())
	for i, arg := range flag.Args() {
		if stops[i], err = parseStop(arg); err != nil {
			fatal(err)
		}
	}

	gradient, err := pixel.NewGradient(model, extend, stops...)
	if err != nil {
		fatal(err)
	}

	raster := pixel.NewRaster(*widthFlag, *heightFlag, pixel.RGBA8)
	for x := 0; x < raster.Width(); x++ {
		t := float64(x) / float64(raster.Width()-1) / *spanFlag
		c := gradient.Sample(t)
		for y := 0; y < raster.Height(); y++ {
			if err = raster.SetPixel(x, y, c); err != nil {
				fatal(err)
			}
		}
	}

	f, err := os.Create(*outFlag)
	if err != nil {
		fatal(err)
	}
	defer f.Close()

	if err = png.Encode(f, raster); err != nil {
		fatal(err)
	}
	if err = f.Close(); err != nil {
		fatal(err)
	}
}

func parseModel(name string) (pixel.Model, error) {
	switch strings.ToLower(name) {
	case "rgb":
		return pixel.RGBModel, nil
	case "cmyk":
		return pixel.CMYKModel, nil
	case "hsv":
		return pixel.HSVModel, nil
	case "hsl":
		return pixel.HSLModel, nil
	case "hsi":
		return pixel.HSIModel, nil
	case "hwb":
		return pixel.HWBModel, nil
	case "gray":
		return pixel.GrayModel, nil
	case "xyz":
		return pixel.XYZModel, nil
	case "lab":
		return pixel.LabModel, nil
	case "lch":
		return pixel.LChModel, nil
	default:
		return 0, fmt.Errorf("unknown color model %q", name)
	}
}

func parseExtend(name string) (pixel.Extend, error) {
	switch strings.ToLower(name) {
	case "clamp":
		return pixel.ExtendClamp, nil
	case "repeat":
		return pixel.ExtendRepeat, nil
	case "mirror":
		return pixel.ExtendMirror, nil
	default:
		return 0, fmt.Errorf("unknown extend mode %q", name)
	}
}

func parseStop(arg string) (pixel.Stop, error) {
	pos, name, ok := strings.Cut(arg, ":")
	if !ok {
		return pixel.Stop{}, fmt.Errorf("invalid stop %q, expected pos:color", arg)
	}
	position, err := strconv.ParseFloat(pos, 64)
	if err != nil {
		return pixel.Stop{}, fmt.Errorf("invalid stop position %q: %w", pos, err)
	}
	c, err := parseColor(name)
	if err != nil {
		return pixel.Stop{}, err
	}
	return pixel.Stop{Position: position, Color: pixel.FromColor(c)}, nil
}

func parseColor(name string) (color.Color, error) {
	if strings.HasPrefix(name, "#") {
		v, err := strconv.ParseUint(strings.TrimPrefix(name, "#"), 16, 32)
		if err != nil || len(name) != 7 {
			return nil, fmt.Errorf("invalid hex color %q", name)
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown color name %q", name)
	}
	return c, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "pixel-gradient:", err)
	os.Exit(1)
}
