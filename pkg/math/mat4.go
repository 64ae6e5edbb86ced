package math

import (
	"fmt"
	"strings"
)

// Mat4 is a 4x4 matrix in row-major order: m[row][col].
// The zero value is the zero matrix.
//
// Indexing follows Go array rules: row and column must be in [0,3], anything
// else panics. Arithmetic never validates its inputs; NaN, Inf and zero
// divisors propagate with IEEE semantics.
type Mat4 [4][4]float32

// NewMat4 builds a matrix from 16 values given row by row.
func NewMat4(
	v00, v01, v02, v03,
	v10, v11, v12, v13,
	v20, v21, v22, v23,
	v30, v31, v32, v33 float32,
) Mat4 {
	return Mat4{
		{v00, v01, v02, v03},
		{v10, v11, v12, v13},
		{v20, v21, v22, v23},
		{v30, v31, v32, v33},
	}
}

// NewMat3 embeds a 3x3 linear transform in a 4x4 matrix. The fourth row and
// column are those of the identity.
func NewMat3(
	v00, v01, v02,
	v10, v11, v12,
	v20, v21, v22 float32,
) Mat4 {
	return Mat4{
		{v00, v01, v02, 0},
		{v10, v11, v12, 0},
		{v20, v21, v22, 0},
		{0, 0, 0, 1},
	}
}

// Diagonal returns scalar * Identity.
func Diagonal(scalar float32) Mat4 {
	return Mat4{
		{scalar, 0, 0, 0},
		{0, scalar, 0, 0},
		{0, 0, scalar, 0},
		{0, 0, 0, scalar},
	}
}

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Diagonal(1)
}

// At returns the element at row, col.
func (m Mat4) At(row, col int) float32 {
	return m[row][col]
}

// Add returns the component-wise sum.
func (m Mat4) Add(other Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			result[i][j] = m[i][j] + other[i][j]
		}
	}
	return result
}

// Sub returns the component-wise difference.
func (m Mat4) Sub(other Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			result[i][j] = m[i][j] - other[i][j]
		}
	}
	return result
}

// Mul returns the matrix product m * other.
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			result[i][j] = m[i][0]*other[0][j] +
				m[i][1]*other[1][j] +
				m[i][2]*other[2][j] +
				m[i][3]*other[3][j]
		}
	}
	return result
}

// Div returns the component-wise quotient.
func (m Mat4) Div(other Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			result[i][j] = m[i][j] / other[i][j]
		}
	}
	return result
}

// AddScalar adds s to every element.
func (m Mat4) AddScalar(s float32) Mat4 {
	return m.apply(func(v float32) float32 { return v + s })
}

// SubScalar subtracts s from every element.
func (m Mat4) SubScalar(s float32) Mat4 {
	return m.apply(func(v float32) float32 { return v - s })
}

// MulScalar multiplies every element by s.
func (m Mat4) MulScalar(s float32) Mat4 {
	return m.apply(func(v float32) float32 { return v * s })
}

// DivScalar divides every element by s.
func (m Mat4) DivScalar(s float32) Mat4 {
	return m.apply(func(v float32) float32 { return v / s })
}

func (m Mat4) apply(f func(float32) float32) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			result[i][j] = f(m[i][j])
		}
	}
	return result
}

// AddAssign sets m = m + other.
func (m *Mat4) AddAssign(other Mat4) { *m = m.Add(other) }

// SubAssign sets m = m - other.
func (m *Mat4) SubAssign(other Mat4) { *m = m.Sub(other) }

// MulAssign sets m = m * other. Order matters.
func (m *Mat4) MulAssign(other Mat4) { *m = m.Mul(other) }

// DivAssign sets m = m / other component-wise.
func (m *Mat4) DivAssign(other Mat4) { *m = m.Div(other) }

// AddScalarAssign adds s to every element in place.
func (m *Mat4) AddScalarAssign(s float32) { *m = m.AddScalar(s) }

// SubScalarAssign subtracts s from every element in place.
func (m *Mat4) SubScalarAssign(s float32) { *m = m.SubScalar(s) }

// MulScalarAssign multiplies every element by s in place.
func (m *Mat4) MulScalarAssign(s float32) { *m = m.MulScalar(s) }

// DivScalarAssign divides every element by s in place.
func (m *Mat4) DivScalarAssign(s float32) { *m = m.DivScalar(s) }

// MulVec4 returns m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

// TransformPoint transforms a point (w=1), dividing by w when it is not 0 or 1.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	r := m.MulVec4(p.Vec4(1))
	if r.W != 0 && r.W != 1 {
		return r.PerspectiveDivide()
	}
	return r.Vec3()
}

// TransformDirection transforms a direction vector (ignores translation).
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return m.MulVec4(d.Vec4(0)).Vec3()
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			result[j][i] = m[i][j]
		}
	}
	return result
}

// Ptr returns a pointer to the first element. The 16 floats that follow are
// row-major, so GL uploads must set transpose.
func (m *Mat4) Ptr() *float32 {
	return &m[0][0]
}

// String formats the matrix one row per line.
func (m Mat4) String() string {
	var sb strings.Builder
	for i := 0; i < 4; i++ {
		fmt.Fprintf(&sb, "( %g ; %g ; %g ; %g )\n", m[i][0], m[i][1], m[i][2], m[i][3])
	}
	return sb.String()
}
