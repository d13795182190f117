package pixel

import "math"

// HSI uses the shared hexcone hue; intensity is the channel average
// (R+G+B)/3 and saturation is 1 - min/I, with S = 0 at I = 0.

func rgbToHSI(v [4]float64) [4]float64 {
	hue, _, _, min := rgbToHCM(v[0], v[1], v[2])
	intensity := (v[0] + v[1] + v[2]) / 3
	var sat float64
	if intensity > 0 {
		sat = 1 - min/intensity
	}
	return [4]float64{hue, sat, intensity}
}

func hsiToRGB(v [4]float64) [4]float64 {
	hue, sat, intensity := v[0], v[1], v[2]
	if sat <= 0 {
		return [4]float64{intensity, intensity, intensity}
	}
	// The hexcone base components sum to chroma*(1+f), where f is the
	// fractional offset within the sector; solving (R+G+B)/3 = I for
	// chroma gives 3*I*S / (1+f).
	hp := math.Mod(hue, 360) / 60
	if hp < 0 {
		hp += 6
	}
	f := 1 - math.Abs(math.Mod(hp, 2)-1)
	chroma := 3 * intensity * sat / (1 + f)
	r, g, b := hexconeRGB(hue, chroma)
	m := intensity * (1 - sat)
	return [4]float64{r + m, g + m, b + m}
}
