package maths

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-12

func assertQuat(t *testing.T, want, got [4]float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol)
	}
}

func TestIdentity(t *testing.T) {
	assertQuat(t, [4]float64{1, 0, 0, 0}, Identity())
}

func TestAxisAngle(t *testing.T) {
	half := math.Sqrt2 / 2
	assertQuat(t, [4]float64{half, half, 0, 0}, AxisAngle([3]float64{1, 0, 0}, math.Pi/2))
	assertQuat(t, [4]float64{half, 0, 0, half}, AxisAngle([3]float64{0, 0, 1}, math.Pi/2))
}

func TestMulWithIdentity(t *testing.T) {
	q := AxisAngle([3]float64{0, 1, 0}, 0.3)
	assertQuat(t, q, Mul(Identity(), q))
	assertQuat(t, q, Mul(q, Identity()))
}

func TestEulerXYZ(t *testing.T) {
	half := math.Sqrt2 / 2

	// Single-axis rotations reduce to the axis-angle form.
	assertQuat(t, [4]float64{half, half, 0, 0}, EulerXYZ([3]float64{math.Pi / 2, 0, 0}))
	assertQuat(t, [4]float64{half, 0, half, 0}, EulerXYZ([3]float64{0, math.Pi / 2, 0}))
	assertQuat(t, [4]float64{half, 0, 0, half}, EulerXYZ([3]float64{0, 0, math.Pi / 2}))

	// Intrinsic x-y-z composes as qx * qy * qz.
	angles := [3]float64{0.2, -0.4, 1.1}
	want := Mul(Mul(
		AxisAngle([3]float64{1, 0, 0}, angles[0]),
		AxisAngle([3]float64{0, 1, 0}, angles[1])),
		AxisAngle([3]float64{0, 0, 1}, angles[2]))
	assertQuat(t, want, EulerXYZ(angles))
}

func TestEulerXYZStaysUnit(t *testing.T) {
	q := EulerXYZ([3]float64{Radians(30), Radians(-60), Radians(145)})
	norm := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	assert.InDelta(t, 1.0, norm, tol)
}

func TestRadians(t *testing.T) {
	assert.InDelta(t, math.Pi, Radians(180), tol)
	assert.InDelta(t, -math.Pi/2, Radians(-90), tol)
}
