package pixel

// HWB expresses a color as a hue mixed with whiteness and blackness.
// A color maps to (hexcone hue, min, 1-max); the inverse rescales
// whiteness and blackness proportionally when they sum past 1.

func rgbToHWB(v [4]float64) [4]float64 {
	hue, _, max, min := rgbToHCM(v[0], v[1], v[2])
	return [4]float64{hue, min, 1 - max}
}

func hwbToRGB(v [4]float64) [4]float64 {
	white, black := v[1], v[2]
	if sum := white + black; sum > 1 {
		white /= sum
		black /= sum
	}
	value := 1 - black
	chroma := value - white
	r, g, b := hexconeRGB(v[0], chroma)
	m := value - chroma
	return [4]float64{r + m, g + m, b + m}
}
