// Package camera provides the first-person fly camera.
package camera

import (
	gomath "math"

	"github.com/Faultbox/raymarcher/pkg/math"
)

// Direction is a movement command.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Upward
	Downward
)

var directionNames = [...]string{"forward", "backward", "left", "right", "upward", "downward"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

const (
	// Speed is the movement speed in world units per second.
	Speed = 5.0
	// Sensitivity scales raw cursor offsets before they are read as degrees.
	Sensitivity = 0.1
	// pitchEpsilon keeps pitch strictly inside (-pi/2, pi/2).
	pitchEpsilon = 0.00001

	twoPi  = 2 * gomath.Pi
	halfPi = gomath.Pi / 2
)

// Camera is a first-person camera driven by yaw and pitch.
//
// Front, right and up always form an orthonormal basis matching yaw and
// pitch, and the cached view matrix always matches position and
// orientation. Both are refreshed eagerly on every mutation.
type Camera struct {
	position math.Vec3

	yaw   float32 // radians, wrapped into [-2pi, 2pi]
	pitch float32 // radians, clamped inside (-pi/2, pi/2)

	front math.Vec3
	right math.Vec3
	up    math.Vec3

	view math.Mat4
}

// worldUp is the fixed vertical axis.
var worldUp = math.Vec3Up

// New creates a camera at position with its orientation derived from the
// direction toward the world origin.
//
// Orientation is derived with pitch = asin(dir.y) and
// yaw = asin(dir.z / cos(pitch)). Yaw therefore stays in [-pi/2, pi/2],
// so front.x is never negative: a camera with position.x > 0 looks along
// the origin direction mirrored in X, and only positions with x <= 0
// actually face the origin. A position on the vertical axis makes
// cos(pitch) zero and the orientation NaN.
func New(position math.Vec3) *Camera {
	c := &Camera{position: position}

	x, y, z := float64(position.X), float64(position.Y), float64(position.Z)
	var dy, dz float64
	if l := gomath.Sqrt(x*x + y*y + z*z); l > 0 {
		dy, dz = -y/l, -z/l
	}
	pitch := gomath.Asin(dy)
	c.pitch = float32(pitch)
	c.yaw = float32(gomath.Asin(unit(dz / gomath.Cos(pitch))))

	c.Look(math.Vec2{})
	return c
}

// Position returns the camera position.
func (c *Camera) Position() math.Vec3 { return c.position }

// Direction returns the unit front vector.
func (c *Camera) Direction() math.Vec3 { return c.front }

// Right returns the unit right vector.
func (c *Camera) Right() math.Vec3 { return c.right }

// Up returns the unit up vector.
func (c *Camera) Up() math.Vec3 { return c.up }

// Yaw returns the yaw angle in radians.
func (c *Camera) Yaw() float32 { return c.yaw }

// Pitch returns the pitch angle in radians.
func (c *Camera) Pitch() float32 { return c.pitch }

// View returns the cached view matrix.
func (c *Camera) View() math.Mat4 { return c.view }

// VP returns projection * view.
func (c *Camera) VP(projection math.Mat4) math.Mat4 {
	return projection.Mul(c.view)
}

// Move translates the camera by Speed * dt along the given direction.
// Only the translation column of the view matrix is refreshed.
func (c *Camera) Move(d Direction, dt float32) {
	speed := float32(Speed) * dt

	switch d {
	case Forward:
		c.position = c.position.Add(c.front.Scale(speed))
	case Backward:
		c.position = c.position.Sub(c.front.Scale(speed))
	case Left:
		c.position = c.position.Sub(c.front.Cross(worldUp).Normalize().Scale(speed))
	case Right:
		c.position = c.position.Add(c.front.Cross(worldUp).Normalize().Scale(speed))
	case Upward:
		c.position.Y += speed
	case Downward:
		c.position.Y -= speed
	}

	c.updateTranslation()
}

// Look rotates the camera by a raw cursor offset. Positive X turns right,
// positive Y (cursor moving down) pitches down.
func (c *Camera) Look(offset math.Vec2) {
	offset = offset.Scale(Sensitivity)

	c.yaw += math.Radians(offset.X)
	if c.yaw > twoPi {
		c.yaw -= twoPi
	} else if c.yaw < -twoPi {
		c.yaw += twoPi
	}

	c.pitch -= math.Radians(offset.Y)
	if c.pitch > halfPi-pitchEpsilon {
		c.pitch = halfPi - pitchEpsilon
	} else if c.pitch < -halfPi+pitchEpsilon {
		c.pitch = -halfPi + pitchEpsilon
	}

	sy, cy := gomath.Sincos(float64(c.yaw))
	sp, cp := gomath.Sincos(float64(c.pitch))
	c.front = math.Vec3{
		X: float32(cp * cy),
		Y: float32(sp),
		Z: float32(cp * sy),
	}
	c.right = c.front.Cross(worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()

	c.view = math.ViewFromBasis(c.position, c.right, c.up, c.front)
}

// unit pulls rounding overshoot back into asin's domain. NaN passes through.
func unit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

func (c *Camera) updateTranslation() {
	c.view[0][3] = -c.right.Dot(c.position)
	c.view[1][3] = -c.up.Dot(c.position)
	c.view[2][3] = c.front.Dot(c.position)
}
