// pkg/physics/angle.go
package physics

import (
	"github.com/EngoEngine/math"
)

// FullTurn is one revolution in degrees
const FullTurn float32 = 360

// NormalizeDegrees reduces a to [0,360) using the mathematical modulus,
// so negative angles wrap to the top of the range.
func NormalizeDegrees(a float32) float32 {
	r := math.Mod(a, FullTurn)
	if r < 0 {
		r += FullTurn
	}
	// A tiny negative remainder can round up to exactly 360.
	if r >= FullTurn {
		r = 0
	}
	return r
}

// AdvanceAngle adds delta to a and normalizes the result
func AdvanceAngle(a, delta float32) float32 {
	return NormalizeDegrees(a + delta)
}
