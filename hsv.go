package pixel

import "math"

// rgbToHCM returns the hexcone hue (degrees in [0,360)), chroma, maximum and
// minimum shared by the HSV, HSL, HSI and HWB conversions. When two channels
// tie at the maximum, red wins over green over blue.
func rgbToHCM(r, g, b float64) (hue, chroma, max, min float64) {
	max = math.Max(r, math.Max(g, b))
	min = math.Min(r, math.Min(g, b))
	chroma = max - min
	if chroma == 0 {
		return 0, 0, max, min
	}
	switch max {
	case r:
		hue = (g - b) / chroma
	case g:
		hue = (b-r)/chroma + 2
	default:
		hue = (r-g)/chroma + 4
	}
	hue *= 60
	if hue < 0 {
		hue += 360
	}
	return hue, chroma, max, min
}

// hexconeRGB converts hue (degrees) and chroma back to the red, green and
// blue offsets above the per-model lightness floor.
func hexconeRGB(hue, chroma float64) (r, g, b float64) {
	hp := math.Mod(hue, 360) / 60
	if hp < 0 {
		hp += 6
	}
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))
	switch {
	case hp < 1:
		return chroma, x, 0
	case hp < 2:
		return x, chroma, 0
	case hp < 3:
		return 0, chroma, x
	case hp < 4:
		return 0, x, chroma
	case hp < 5:
		return x, 0, chroma
	default:
		return chroma, 0, x
	}
}

func rgbToHSV(v [4]float64) [4]float64 {
	hue, chroma, max, _ := rgbToHCM(v[0], v[1], v[2])
	var sat float64
	if max > 0 {
		sat = chroma / max
	}
	return [4]float64{hue, sat, max}
}

func hsvToRGB(v [4]float64) [4]float64 {
	chroma := v[2] * v[1]
	r, g, b := hexconeRGB(v[0], chroma)
	m := v[2] - chroma
	return [4]float64{r + m, g + m, b + m}
}
