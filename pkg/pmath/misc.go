package pmath

import "math"

// Some functions that only operate on basic types, that are useful

func Radians(deg float64) float64 { return deg * math.Pi / 180.0 }
func Degrees(rad float64) float64 { return rad * 180.0 / math.Pi }

func Clamp01(f float64) float64 {
	if f < 0.0 { return 0.0 }
	if f > 1.0 { return 1.0 }
	return f
}

// https://www.sjbrown.co.uk/posts/gamma-correct-rendering/ - "linear RGB to sRGB"
// `f` is assumed to be in the range [0,1]
func GammaExpand_F64(f float64) float64 {
	if f <= 0.0031308 {
		return 12.92 * f
	}
	return 1.055 * math.Pow(f, 1.0/2.4) - 0.055
}

// NextPow2 returns the smallest power of two >= n.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// ReflectIndex maps an out-of-range index into [0,n) by mirroring
// without repeating the edge sample, e.g. for n=5: ... 2 1 0 1 2 3 4 3 2 ...
func ReflectIndex(i, n int) int {
	if n <= 1 {
		return 0
	}
	period := 2*n - 2
	i = i % period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}
	return i
}
