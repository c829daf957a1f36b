package colorspace

import "math"

// RelativeLuminance computes WCAG 2.0 relative luminance in [0, 1].
//
// WCAG publishes its own linearization threshold (0.03928) which differs from
// the sRGB threshold used on the Lab path (0.04045). The two paths are kept
// separate on purpose so contrast results match the WCAG formula exactly.
func RelativeLuminance(c RGB) float64 {
	r := wcagLinear(float64(c.R) / 255.0)
	g := wcagLinear(float64(c.G) / 255.0)
	b := wcagLinear(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func wcagLinear(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
