package deltae

import (
	"math"

	"github.com/tokentools/tokendiff/pkg/colorspace"
)

// pow7of25 is 25^7, the constant in the chroma rotation and compensation
// terms of the CIEDE2000 formula.
const pow7of25 = 6103515625.0

// CIEDE2000 returns the CIE delta-E 2000 perceptual distance between two Lab
// colors with all parametric factors at 1. It follows the formulation in
// Sharma, Wu and Dalal, "The CIEDE2000 Color-Difference Formula" (2005),
// including the discontinuity handling around the hue wraparound.
//
// Distances are symmetric and zero for identical colors. As a rough guide,
// values below 1 are imperceptible, below 5 close, and 100 separates black
// from white.
func CIEDE2000(a, b colorspace.Lab) float64 {
	c1 := math.Hypot(a.A, a.B)
	c2 := math.Hypot(b.A, b.B)
	cBar := (c1 + c2) / 2

	g := 0.5 * (1 - math.Sqrt(pow7(cBar)/(pow7(cBar)+pow7of25)))
	a1p := (1 + g) * a.A
	a2p := (1 + g) * b.A
	c1p := math.Hypot(a1p, a.B)
	c2p := math.Hypot(a2p, b.B)
	h1p := hueAngle(a.B, a1p)
	h2p := hueAngle(b.B, a2p)

	dL := b.L - a.L
	dC := c2p - c1p

	// Hue difference wraps at 360; with either chroma at zero the hue is
	// undefined and the difference is taken as zero.
	var dh float64
	switch {
	case c1p*c2p == 0:
		dh = 0
	case math.Abs(h2p-h1p) <= 180:
		dh = h2p - h1p
	case h2p-h1p > 180:
		dh = h2p - h1p - 360
	default:
		dh = h2p - h1p + 360
	}
	dH := 2 * math.Sqrt(c1p*c2p) * math.Sin(radians(dh)/2)

	lBar := (a.L + b.L) / 2
	cBarP := (c1p + c2p) / 2

	// Mean hue follows the same wraparound rules as the difference.
	var hBar float64
	switch {
	case c1p*c2p == 0:
		hBar = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hBar = (h1p + h2p) / 2
	case h1p+h2p < 360:
		hBar = (h1p + h2p + 360) / 2
	default:
		hBar = (h1p + h2p - 360) / 2
	}

	t := 1 -
		0.17*math.Cos(radians(hBar-30)) +
		0.24*math.Cos(radians(2*hBar)) +
		0.32*math.Cos(radians(3*hBar+6)) -
		0.20*math.Cos(radians(4*hBar-63))

	dTheta := 30 * math.Exp(-((hBar-275)/25)*((hBar-275)/25))
	rc := 2 * math.Sqrt(pow7(cBarP)/(pow7(cBarP)+pow7of25))
	sl := 1 + 0.015*(lBar-50)*(lBar-50)/math.Sqrt(20+(lBar-50)*(lBar-50))
	sc := 1 + 0.045*cBarP
	sh := 1 + 0.015*cBarP*t
	rt := -math.Sin(radians(2*dTheta)) * rc

	lTerm := dL / sl
	cTerm := dC / sc
	hTerm := dH / sh
	return math.Sqrt(lTerm*lTerm + cTerm*cTerm + hTerm*hTerm + rt*cTerm*hTerm)
}

// CIEDE2000Hex compares two colors given in any supported surface syntax.
// It never fails: when either side does not parse as a color it returns
// +Inf, which no similarity threshold accepts.
func CIEDE2000Hex(a, b string) float64 {
	ca, ok := colorspace.Parse(a)
	if !ok {
		return math.Inf(1)
	}
	cb, ok := colorspace.Parse(b)
	if !ok {
		return math.Inf(1)
	}
	return CIEDE2000(colorspace.ToLab(ca), colorspace.ToLab(cb))
}

// CIE76 is the original Euclidean delta-E in Lab space. It overestimates
// differences in saturated regions and is retained only for callers that
// need the simpler metric.
func CIE76(a, b colorspace.Lab) float64 {
	dL := a.L - b.L
	dA := a.A - b.A
	dB := a.B - b.B
	return math.Sqrt(dL*dL + dA*dA + dB*dB)
}

func pow7(v float64) float64 {
	v3 := v * v * v
	return v3 * v3 * v
}

// hueAngle converts atan2 output to degrees in [0, 360). Both components at
// zero means the hue is undefined; zero is returned by convention.
func hueAngle(b, ap float64) float64 {
	if b == 0 && ap == 0 {
		return 0
	}
	deg := math.Atan2(b, ap) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
