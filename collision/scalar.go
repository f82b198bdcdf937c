package collision

import "math"

// Scalar float32 helpers the compiler's geometry code needs but that
// aurelien-rainone/math32 (vendored for Sqr/Approx/Cbrt/Erf/Frexp/Gamma/
// Signbit/Copysign/MinInt32/Ilog2/NextPow2) does not export. Thin wrappers
// over the standard math package, the way math32 itself wraps math for the
// functions it does provide.

func fAbs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func fMin(x, y float32) float32 {
	if x < y {
		return x
	}
	return y
}

func fMax(x, y float32) float32 {
	if x > y {
		return x
	}
	return y
}

func fSqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func fCeil(x float32) float32 {
	return float32(math.Ceil(float64(x)))
}

func fLog2(x float32) float32 {
	return float32(math.Log2(float64(x)))
}

func fPow(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}
