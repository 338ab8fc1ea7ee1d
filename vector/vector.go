// Package vector provides the fixed-size 2D/3D vector algebra used
// throughout polyclipper: dot and cross products, magnitude, unit
// vectors, and componentwise arithmetic.
//
// Vector2 and Vector3 are aliases of mathgl's array-backed vector types
// rather than hand-rolled structs, so Add/Sub/Mul/Dot/Len/Normalize come
// for free and the values stay cheap to copy.
package vector

import "github.com/go-gl/mathgl/mgl64"

// Vector2 is a 2D vector.
type Vector2 = mgl64.Vec2

// Vector3 is a 3D vector.
type Vector3 = mgl64.Vec3

// Equal2 reports whether a and b are componentwise bitwise equal.
func Equal2(a, b Vector2) bool {
	return a[0] == b[0] && a[1] == b[1]
}

// Equal3 reports whether a and b are componentwise bitwise equal.
func Equal3(a, b Vector3) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2]
}

// Cross2 returns the scalar (z-component) of the 3D cross product of a
// and b lifted into the xy-plane.
func Cross2(a, b Vector2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// Unit2 returns a normalized to unit length, or (1, 0) if a has zero
// magnitude.
func Unit2(a Vector2) Vector2 {
	m := a.Len()
	if m == 0 {
		return Vector2{1, 0}
	}
	return Div2(a, m)
}

// Unit3 returns a normalized to unit length, or (1, 0, 0) if a has zero
// magnitude.
func Unit3(a Vector3) Vector3 {
	m := a.Len()
	if m == 0 {
		return Vector3{1, 0, 0}
	}
	return Div3(a, m)
}

// Div2 returns a with each component divided by s.
func Div2(a Vector2, s float64) Vector2 {
	return a.Mul(1 / s)
}

// Div3 returns a with each component divided by s.
func Div3(a Vector3, s float64) Vector3 {
	return a.Mul(1 / s)
}

// Negate2 returns -a.
func Negate2(a Vector2) Vector2 {
	return a.Mul(-1)
}

// Negate3 returns -a.
func Negate3(a Vector3) Vector3 {
	return a.Mul(-1)
}

// Lerp2 returns the point t of the way from a to b.
func Lerp2(a, b Vector2, t float64) Vector2 {
	return a.Add(b.Sub(a).Mul(t))
}

// Lerp3 returns the point t of the way from a to b.
func Lerp3(a, b Vector3, t float64) Vector3 {
	return a.Add(b.Sub(a).Mul(t))
}
