// Package maths provides the quaternion helpers the tree walker uses to
// normalize body orientations.
package maths

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Identity returns the identity rotation in scalar-first order.
func Identity() [4]float64 {
	return [4]float64{1, 0, 0, 0}
}

// AxisAngle returns the unit quaternion rotating by angle radians about the
// given unit axis.
func AxisAngle(axis [3]float64, angle float64) [4]float64 {
	sin, cos := math.Sincos(angle / 2)
	return [4]float64{cos, axis[0] * sin, axis[1] * sin, axis[2] * sin}
}

// Mul returns the Hamilton product a*b.
func Mul(a, b [4]float64) [4]float64 {
	return fromQuat(quat.Mul(toQuat(a), toQuat(b)))
}

// EulerXYZ converts intrinsic x-y-z Euler angles, in radians, to a unit
// quaternion: q = qx * qy * qz.
func EulerXYZ(angles [3]float64) [4]float64 {
	qx := AxisAngle([3]float64{1, 0, 0}, angles[0])
	qy := AxisAngle([3]float64{0, 1, 0}, angles[1])
	qz := AxisAngle([3]float64{0, 0, 1}, angles[2])
	return Mul(Mul(qx, qy), qz)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toQuat(q [4]float64) quat.Number {
	return quat.Number{Real: q[0], Imag: q[1], Jmag: q[2], Kmag: q[3]}
}

func fromQuat(q quat.Number) [4]float64 {
	return [4]float64{q.Real, q.Imag, q.Jmag, q.Kmag}
}
