package math

import "math"

// Scale returns a uniform scale matrix.
func Scale(s float32) Mat4 {
	return NewMat3(
		s, 0, 0,
		0, s, 0,
		0, 0, s,
	)
}

// Scale3 returns a per-axis scale matrix.
func Scale3(x, y, z float32) Mat4 {
	return NewMat3(
		x, 0, 0,
		0, y, 0,
		0, 0, z,
	)
}

// ScaleX scales along X only.
func ScaleX(s float32) Mat4 { return Scale3(s, 1, 1) }

// ScaleY scales along Y only.
func ScaleY(s float32) Mat4 { return Scale3(1, s, 1) }

// ScaleZ scales along Z only.
func ScaleZ(s float32) Mat4 { return Scale3(1, 1, s) }

// Translate returns a translation matrix by v.
func Translate(v Vec3) Mat4 {
	return Translate3(v.X, v.Y, v.Z)
}

// Translate3 returns a translation matrix.
func Translate3(x, y, z float32) Mat4 {
	return NewMat4(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// TranslateX translates along X only.
func TranslateX(s float32) Mat4 { return Translate3(s, 0, 0) }

// TranslateY translates along Y only.
func TranslateY(s float32) Mat4 { return Translate3(0, s, 0) }

// TranslateZ translates along Z only.
func TranslateZ(s float32) Mat4 { return Translate3(0, 0, s) }

// Rotate returns a rotation of angle degrees around axis (right-hand rule).
// The axis is normalized unless it is the zero vector, in which case the
// result degenerates to cos(angle) * I.
func Rotate(angle float32, axis Vec3) Mat4 {
	s, c := sincos(Radians(angle))
	t := 1 - c

	n := axis
	if n != (Vec3{}) {
		n = n.Normalize()
	}
	x, y, z := n.X, n.Y, n.Z

	return NewMat3(
		c+t*x*x, t*x*y-s*z, t*x*z+s*y,
		t*x*y+s*z, c+t*y*y, t*y*z-s*x,
		t*x*z-s*y, t*y*z+s*x, c+t*z*z,
	)
}

// RotateX returns a rotation of angle degrees around the X axis.
func RotateX(angle float32) Mat4 {
	s, c := sincos(Radians(angle))
	return NewMat3(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// RotateY returns a rotation of angle degrees around the Y axis.
func RotateY(angle float32) Mat4 {
	s, c := sincos(Radians(angle))
	return NewMat3(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

// RotateZ returns a rotation of angle degrees around the Z axis.
func RotateZ(angle float32) Mat4 {
	s, c := sincos(Radians(angle))
	return NewMat3(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// LookAt returns a right-handed view matrix looking from eye to center.
// The camera looks down -Z in view space.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f).Normalize()
	return ViewFromBasis(eye, s, u, f)
}

// ViewFromBasis builds a view matrix from an orthonormal camera basis.
// Rows are right, up and -front; the translation column holds the
// negated projections of eye on right and up and the projection on front.
func ViewFromBasis(eye, right, up, front Vec3) Mat4 {
	return NewMat4(
		right.X, right.Y, right.Z, -right.Dot(eye),
		up.X, up.Y, up.Z, -up.Dot(eye),
		-front.X, -front.Y, -front.Z, front.Dot(eye),
		0, 0, 0, 1,
	)
}

// Perspective returns a right-handed perspective projection mapping view
// depth [-near,-far] to NDC z in [-1,1]. fovY is in radians, aspect is
// width/height. Degenerate inputs are not checked.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	t := float32(math.Tan(float64(fovY) / 2))
	return NewMat4(
		1/(aspect*t), 0, 0, 0,
		0, 1/t, 0, 0,
		0, 0, -(far+near)/(far-near), -(2*far*near)/(far-near),
		0, 0, -1, 0,
	)
}
