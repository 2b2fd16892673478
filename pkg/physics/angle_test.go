// pkg/physics/angle_test.go
package physics

import (
	"testing"
)

const epsilon = 1e-4

func almostEqual(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < epsilon
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"zero", 0, 0},
		{"inside range", 123.5, 123.5},
		{"exactly a full turn", 360, 0},
		{"just over", 361.5, 1.5},
		{"several turns", 1080 + 45, 45},
		{"negative", -30, 330},
		{"negative full turn", -360, 0},
		{"large negative", -725, 355},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDegrees(tt.input)
			if !almostEqual(got, tt.want) {
				t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.input, got, tt.want)
			}
			if got < 0 || got >= FullTurn {
				t.Errorf("NormalizeDegrees(%v) = %v, outside [0,360)", tt.input, got)
			}
		})
	}
}

func TestNormalizeDegrees_TinyNegative(t *testing.T) {
	got := NormalizeDegrees(-1e-6)
	if got < 0 || got >= FullTurn {
		t.Errorf("NormalizeDegrees(-1e-6) = %v, outside [0,360)", got)
	}
}

func TestAdvanceAngle(t *testing.T) {
	if got := AdvanceAngle(358.5, 1.5); got != 0 {
		t.Errorf("AdvanceAngle(358.5, 1.5) = %v, want 0", got)
	}
	if got := AdvanceAngle(10, -20); !almostEqual(got, 350) {
		t.Errorf("AdvanceAngle(10, -20) = %v, want 350", got)
	}
}
