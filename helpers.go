package motimove8

import (
	"math"

	"github.com/orsinium-labs/tinymath"
	"golang.org/x/exp/constraints"
)

// constrain limits value to [min, max]. Lifted from the teacher package's
// own generic clamp helper (tmc5160/helpers.go), reused here for every
// bounded scalar field in the Parameter Store.
func constrain[T constraints.Ordered](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// roundToInt rounds a float32 to the nearest integer, ties away from zero,
// using tinymath rather than the math package so the core packages pull no
// float64 machinery they don't otherwise need.
func roundToInt(v float32) int {
	return int(tinymath.Round(v))
}

func float32Bits(v float32) uint32   { return math.Float32bits(v) }
func float32FromBits(b uint32) float32 { return math.Float32frombits(b) }
