package colorspace

import "math"

// Lab is a point in CIE L*a*b* space relative to the D65 reference white.
type Lab struct {
	L, A, B float64
}

// D65 reference white, 2-degree observer, on the 0..100 scale.
const (
	refWhiteX = 95.047
	refWhiteY = 100.000
	refWhiteZ = 108.883
)

// CIE piecewise constants for the XYZ to Lab transfer function.
const (
	labEpsilon = 0.008856
	labKappa   = 903.3
)

// ToLab converts an sRGB color to CIE L*a*b* via XYZ.
func ToLab(c RGB) Lab {
	r := srgbToLinear(float64(c.R)/255.0) * 100.0
	g := srgbToLinear(float64(c.G)/255.0) * 100.0
	b := srgbToLinear(float64(c.B)/255.0) * 100.0

	// sRGB to XYZ, D65.
	x := r*0.4124 + g*0.3576 + b*0.1805
	y := r*0.2126 + g*0.7152 + b*0.0722
	z := r*0.0193 + g*0.1192 + b*0.9505

	fx := labTransfer(x / refWhiteX)
	fy := labTransfer(y / refWhiteY)
	fz := labTransfer(z / refWhiteZ)

	return Lab{
		L: 116.0*fy - 16.0,
		A: 500.0 * (fx - fy),
		B: 200.0 * (fy - fz),
	}
}

// srgbToLinear undoes the sRGB gamma encoding of a channel in [0, 1].
func srgbToLinear(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

func labTransfer(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16.0) / 116.0
}
