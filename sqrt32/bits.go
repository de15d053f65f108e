package sqrt32

import "math"

// IEEE-754 single-precision field masks.
const (
	signMask32 uint32 = 1 << 31
	expMask32  uint32 = 0xff << 23
	fracMask32 uint32 = 1<<23 - 1
)

// Bit patterns bounding the positive normalized range.
const (
	// MinNormalBits is the pattern of the smallest positive normalized
	// float32 (1.17549435e-38).
	MinNormalBits uint32 = 1 << 23

	// MaxFiniteBits is the pattern of the largest finite float32
	// (3.40282347e+38).
	MaxFiniteBits uint32 = 0x7f7fffff
)

// IsDenormal reports whether x is denormal: zero exponent field with a
// non-zero fraction.
func IsDenormal(x float32) bool {
	b := math.Float32bits(x)
	return b&expMask32 == 0 && b&fracMask32 != 0
}

// IsNormalized reports whether x is a normalized finite value
// (exponent field in [1, 254]).
func IsNormalized(x float32) bool {
	e := math.Float32bits(x) & expMask32
	return e != 0 && e != expMask32
}
