package pixel

import "math"

func rgbToHSL(v [4]float64) [4]float64 {
	hue, chroma, max, min := rgbToHCM(v[0], v[1], v[2])
	light := (max + min) / 2
	var sat float64
	if d := 1 - math.Abs(2*light-1); d > 0 {
		sat = chroma / d
	}
	return [4]float64{hue, sat, light}
}

func hslToRGB(v [4]float64) [4]float64 {
	chroma := (1 - math.Abs(2*v[2]-1)) * v[1]
	r, g, b := hexconeRGB(v[0], chroma)
	m := v[2] - chroma/2
	return [4]float64{r + m, g + m, b + m}
}
