package mesh

import (
	gomath "math"

	"github.com/Faultbox/raymarcher/pkg/math"
)

// Unit cube corners, indexed as
//
//	 0───1
//	 │╲  │╲
//	 │ 3───2
//	 4─│─5 │
//	  ╲│  ╲│
//	   7───6
var cubeCorners = [8]math.Vec3{
	{X: -0.5, Y: 0.5, Z: -0.5},
	{X: 0.5, Y: 0.5, Z: -0.5},
	{X: 0.5, Y: 0.5, Z: 0.5},
	{X: -0.5, Y: 0.5, Z: 0.5},
	{X: -0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: -0.5, Z: 0.5},
	{X: -0.5, Y: -0.5, Z: 0.5},
}

// Faces as corner indices clockwise from the top-left when seen from
// outside, in the order top, left, front, right, back, bottom. The cross
// unwrap used by TexturedCube:
//
//	     0┌─────┐1
//	      │  0  │
//	0    3│ TOP │2    1     0
//	┌─────┼─────┼─────┬─────┐
//	│  1  │  2  │  3  │  4  │
//	│ LEF │ FRO │ RIG │ BAC │
//	└─────┼─────┼─────┴─────┘
//	4    7│  5  │6    5     4
//	      │ BOT │
//	     4└─────┘5
var cubeFaces = [6][4]int{
	{0, 3, 2, 1},
	{0, 4, 7, 3},
	{3, 7, 6, 2},
	{2, 6, 5, 1},
	{1, 5, 4, 0},
	{7, 4, 5, 6},
}

var cubeNormals = [6]math.Vec3{
	{X: 0, Y: 1, Z: 0},
	{X: -1, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: 1},
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: -1},
	{X: 0, Y: -1, Z: 0},
}

// Per-corner UVs of a face, matching the clockwise corner order.
var faceUVs = [4]math.Vec2{{X: 0, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}

// Cube returns a unit cube with normals where every face maps the whole
// texture. 24 vertices, 36 indices.
func Cube() *Mesh {
	m := New(Triangles)
	for i, face := range cubeFaces {
		for k, corner := range face {
			m.AddPositionV(cubeCorners[corner])
			m.AddNormalV(cubeNormals[i])
			m.AddTexCoordV(faceUVs[k])
		}
		m.addQuad(uint32(i * 4))
	}
	return m
}

// TexturedCube returns a unit cube with normals whose faces sample a
// cross-shaped unwrap of a single texture.
func TexturedCube() *Mesh {
	const third = float32(1.0 / 3.0)
	origins := [6]math.Vec2{
		{X: 0.25, Y: 1},
		{X: 0, Y: 2 * third},
		{X: 0.25, Y: 2 * third},
		{X: 0.5, Y: 2 * third},
		{X: 0.75, Y: 2 * third},
		{X: 0.25, Y: third},
	}

	m := New(Triangles)
	for i, face := range cubeFaces {
		o := origins[i]
		uvs := [4]math.Vec2{
			o,
			{X: o.X, Y: o.Y - third},
			{X: o.X + 0.25, Y: o.Y - third},
			{X: o.X + 0.25, Y: o.Y},
		}
		for k, corner := range face {
			m.AddPositionV(cubeCorners[corner])
			m.AddNormalV(cubeNormals[i])
			m.AddTexCoordV(uvs[k])
		}
		m.addQuad(uint32(i * 4))
	}
	return m
}

// PlainCube returns a unit cube without normals. 24 vertices, 36 indices.
func PlainCube() *Mesh {
	m := New(Triangles)
	for i, face := range cubeFaces {
		for k, corner := range face {
			m.AddPositionV(cubeCorners[corner])
			m.AddTexCoordV(faceUVs[k])
		}
		m.addQuad(uint32(i * 4))
	}
	return m
}

// WireframeCube returns the 12 edges of a unit cube as a line list.
// 8 vertices, 24 indices.
func WireframeCube() *Mesh {
	edges := [12][2]uint32{
		{0, 1}, {0, 3}, {0, 4}, {1, 2},
		{1, 5}, {2, 3}, {2, 6}, {3, 7},
		{4, 5}, {4, 7}, {5, 6}, {6, 7},
	}

	m := New(Lines)
	for _, c := range cubeCorners {
		m.AddPositionV(c)
	}
	for _, e := range edges {
		m.AddIndex(e[0])
		m.AddIndex(e[1])
	}
	return m
}

// Grid returns divisions+1 lines along each of X and Z covering a
// size x size square on the XZ plane, centred at the origin.
func Grid(size float32, divisions int) *Mesh {
	m := New(Lines)
	half := size / 2
	step := size / float32(divisions)

	for i := 0; i <= divisions; i++ {
		pos := -half + float32(i)*step
		m.AddPosition(pos, 0, -half)
		m.AddPosition(pos, 0, half)
		m.AddPosition(-half, 0, pos)
		m.AddPosition(half, 0, pos)
	}
	return m
}

// Axes returns three coloured lines from the origin: X red, Y green, Z blue.
func Axes(size float32) *Mesh {
	m := New(Lines)
	for _, axis := range []math.Vec3{{X: 1}, {Y: 1}, {Z: 1}} {
		m.AddPosition(0, 0, 0)
		m.AddColorV(axis)
		m.AddPositionV(axis.Scale(size))
		m.AddColorV(axis)
	}
	return m
}

// Sphere returns a unit UV sphere with normals. The divTheta-1 interior
// latitude rings hold divPhi vertices each; the poles are two extra
// vertices appended last (south then north) and fanned to the outer rings.
// Vertex count is (divTheta-1)*divPhi + 2. Needs divTheta >= 2, divPhi >= 3.
func Sphere(divTheta, divPhi int) *Mesh {
	m := New(Triangles)
	thetaStep := gomath.Pi / float64(divTheta)
	phiStep := 2 * gomath.Pi / float64(divPhi)

	theta := -gomath.Pi/2 + thetaStep
	for i := 0; i < divTheta-1; i++ {
		for j := 0; j < divPhi; j++ {
			p := spherePoint(theta, float64(j)*phiStep)
			m.AddPositionV(p)
			m.AddNormalV(p)
		}
		theta += thetaStep
	}

	index := func(ring, col int) uint32 {
		return uint32(col + ring*divPhi)
	}

	for i := 0; i < divTheta-2; i++ {
		for j := 0; j < divPhi; j++ {
			next := (j + 1) % divPhi
			m.AddFace(index(i, j), index(i+1, j), index(i+1, next), index(i, next))
		}
	}

	south := index(divTheta-1, 0)
	north := south + 1
	m.AddPosition(0, -1, 0)
	m.AddNormal(0, -1, 0)
	m.AddPosition(0, 1, 0)
	m.AddNormal(0, 1, 0)

	last := divTheta - 2
	for j := 0; j < divPhi; j++ {
		next := (j + 1) % divPhi
		m.AddTriangle(south, index(0, j), index(0, next))
		m.AddTriangle(index(last, j), north, index(last, next))
	}
	return m
}

// TexturedSphere returns a unit UV sphere with normals and texture
// coordinates. Both poles are full rings and the seam column is
// duplicated, so the texture wraps without stretching across the seam.
// Vertex count is (divTheta+1)*(divPhi+1).
func TexturedSphere(divTheta, divPhi int) *Mesh {
	m := New(Triangles)
	thetaStep := gomath.Pi / float64(divTheta)
	phiStep := 2 * gomath.Pi / float64(divPhi)

	for i := 0; i <= divTheta; i++ {
		theta := -gomath.Pi/2 + float64(i)*thetaStep
		for j := 0; j <= divPhi; j++ {
			p := spherePoint(theta, float64(j)*phiStep)
			m.AddPositionV(p)
			m.AddNormalV(p)
			m.AddTexCoord(float32(j)/float32(divPhi), 0.5+p.Y/2)
		}
	}

	index := func(ring, col int) uint32 {
		return uint32(col + ring*(divPhi+1))
	}

	for i := 0; i < divTheta; i++ {
		for j := 0; j < divPhi; j++ {
			m.AddFace(index(i, j), index(i+1, j), index(i+1, j+1), index(i, j+1))
		}
	}
	return m
}

func spherePoint(theta, phi float64) math.Vec3 {
	st, ct := gomath.Sincos(theta)
	sp, cp := gomath.Sincos(phi)
	return math.Vec3{
		X: float32(ct * cp),
		Y: float32(st),
		Z: float32(ct * sp),
	}
}

// Plane returns a size x size quad on the XZ plane, centred at the origin,
// with texture coordinates running from 0 to size/2.
func Plane(size float32) *Mesh {
	return plane(size, false)
}

// NormalPlane is Plane with an up-facing normal on every vertex.
func NormalPlane(size float32) *Mesh {
	return plane(size, true)
}

func plane(size float32, normals bool) *Mesh {
	m := New(Triangles)
	h := size / 2
	corners := [4]struct {
		pos math.Vec3
		uv  math.Vec2
	}{
		{math.Vec3{X: -h, Z: h}, math.Vec2{X: 0, Y: h}},
		{math.Vec3{X: h, Z: h}, math.Vec2{X: h, Y: h}},
		{math.Vec3{X: h, Z: -h}, math.Vec2{X: h, Y: 0}},
		{math.Vec3{X: -h, Z: -h}, math.Vec2{X: 0, Y: 0}},
	}
	for _, c := range corners {
		m.AddPositionV(c.pos)
		if normals {
			m.AddNormalV(math.Vec3Up)
		}
		m.AddTexCoordV(c.uv)
	}
	m.AddFace(0, 1, 2, 3)
	return m
}

// Screen returns the [-1,1] quad at z=0 used for full-screen passes.
func Screen() *Mesh {
	m := New(Triangles)
	m.AddPosition(-1, 1, 0)
	m.AddTexCoord(0, 1)
	m.AddPosition(-1, -1, 0)
	m.AddTexCoord(0, 0)
	m.AddPosition(1, -1, 0)
	m.AddTexCoord(1, 0)
	m.AddPosition(1, 1, 0)
	m.AddTexCoord(1, 1)
	m.AddFace(0, 1, 2, 3)
	return m
}

// addQuad adds the two triangles of four consecutive vertices starting at base.
func (m *Mesh) addQuad(base uint32) {
	m.AddFace(base, base+1, base+2, base+3)
}
