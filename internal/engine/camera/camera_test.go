package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/raymarcher/pkg/math"
)

const eps = 1e-5

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func vecNear(a, b math.Vec3, tol float32) bool {
	return abs(a.X-b.X) <= tol && abs(a.Y-b.Y) <= tol && abs(a.Z-b.Z) <= tol
}

func matNear(a, b math.Mat4, tol float32) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if abs(a[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

func checkBasis(t *testing.T, c *Camera) {
	t.Helper()
	for name, v := range map[string]math.Vec3{"front": c.Direction(), "right": c.Right(), "up": c.Up()} {
		if l := v.Length(); abs(l-1) > 1e-4 {
			t.Errorf("%s length = %f, want 1", name, l)
		}
	}
	if d := c.Direction().Dot(c.Right()); abs(d) > 1e-4 {
		t.Errorf("front.right = %f, want 0", d)
	}
	if d := c.Direction().Dot(c.Up()); abs(d) > 1e-4 {
		t.Errorf("front.up = %f, want 0", d)
	}
	if d := c.Right().Dot(c.Up()); abs(d) > 1e-4 {
		t.Errorf("right.up = %f, want 0", d)
	}
	want := math.ViewFromBasis(c.Position(), c.Right(), c.Up(), c.Direction())
	if !matNear(c.View(), want, 1e-4) {
		t.Errorf("view out of sync:\n%v\nwant\n%v", c.View(), want)
	}
}

func TestNewLooksAtOrigin(t *testing.T) {
	pos := math.Vec3{X: 0, Y: 2, Z: 5}
	c := New(pos)

	want := pos.Normalize().Neg()
	if !vecNear(c.Direction(), want, 1e-4) {
		t.Errorf("Direction() = %v, want %v", c.Direction(), want)
	}
	if c.Position() != pos {
		t.Errorf("Position() = %v, want %v", c.Position(), pos)
	}
	checkBasis(t, c)

	if want := math.LookAt(pos, math.Vec3{}, math.Vec3Up); !matNear(c.View(), want, 1e-4) {
		t.Errorf("View() =\n%v\nwant\n%v", c.View(), want)
	}

	// The origin sits straight ahead on -Z in view space.
	o := c.View().TransformPoint(math.Vec3{})
	if abs(o.X) > 1e-4 || abs(o.Y) > 1e-4 || o.Z >= 0 {
		t.Errorf("origin in view space = %v, want (0, 0, -d)", o)
	}
}

func TestNewMirrorsPositiveX(t *testing.T) {
	tests := []struct {
		name string
		pos  math.Vec3
	}{
		{"negative x", math.Vec3{X: -1, Y: 2, Z: 5}},
		{"positive x", math.Vec3{X: 1, Y: 2, Z: 5}},
		{"positive x behind", math.Vec3{X: 3, Y: -1, Z: -4}},
		{"on x axis", math.Vec3{X: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.pos)
			toOrigin := tt.pos.Normalize().Neg()
			want := toOrigin
			if want.X < 0 {
				want.X = -want.X
			}
			if !vecNear(c.Direction(), want, 1e-5) {
				t.Errorf("Direction() = %v, want %v", c.Direction(), want)
			}
			if c.Direction().X < 0 {
				t.Errorf("front.x = %f, want >= 0", c.Direction().X)
			}
			facing := c.Direction().Dot(toOrigin) > 1-1e-5
			if facing != (tt.pos.X <= 0) {
				t.Errorf("facing origin = %v for x = %f", facing, tt.pos.X)
			}
			checkBasis(t, c)
		})
	}
}

func TestLookZeroIsIdempotent(t *testing.T) {
	c := New(math.Vec3{X: 0, Y: 2, Z: 5})
	front, right, up, view := c.Direction(), c.Right(), c.Up(), c.View()

	for i := 0; i < 10; i++ {
		c.Look(math.Vec2{})
	}

	if c.Direction() != front || c.Right() != right || c.Up() != up {
		t.Error("zero look changed the basis")
	}
	if c.View() != view {
		t.Error("zero look changed the view matrix")
	}
}

func TestPitchClamp(t *testing.T) {
	c := New(math.Vec3{X: 0, Y: 2, Z: 5})
	limit := float32(gomath.Pi / 2)

	for i := 0; i < 200; i++ {
		c.Look(math.Vec2{X: 3, Y: -5000})
		if p := c.Pitch(); p >= limit || p <= -limit {
			t.Fatalf("pitch %f escaped (-pi/2, pi/2) looking up", p)
		}
	}
	checkBasis(t, c)

	for i := 0; i < 200; i++ {
		c.Look(math.Vec2{X: -3, Y: 5000})
		if p := c.Pitch(); p >= limit || p <= -limit {
			t.Fatalf("pitch %f escaped (-pi/2, pi/2) looking down", p)
		}
	}
	checkBasis(t, c)
}

func TestYawWraps(t *testing.T) {
	c := New(math.Vec3{X: 0, Y: 0, Z: 5})
	twoPi := float32(2 * gomath.Pi)

	// 0.1 * 1000 = 100 degrees per call.
	for i := 0; i < 50; i++ {
		c.Look(math.Vec2{X: 1000})
		if y := c.Yaw(); y > twoPi || y < -twoPi {
			t.Fatalf("yaw %f outside [-2pi, 2pi]", y)
		}
	}
	for i := 0; i < 100; i++ {
		c.Look(math.Vec2{X: -1000})
		if y := c.Yaw(); y > twoPi || y < -twoPi {
			t.Fatalf("yaw %f outside [-2pi, 2pi]", y)
		}
	}
}

func TestLookTurnsRight(t *testing.T) {
	c := New(math.Vec3{X: 0, Y: 0, Z: 5})
	before := c.Direction()
	c.Look(math.Vec2{X: 100})
	// Turning right moves the front vector toward the old right vector.
	if c.Direction().Dot(math.Vec3{X: 1}) <= before.Dot(math.Vec3{X: 1}) {
		t.Errorf("positive x offset should turn right: %v -> %v", before, c.Direction())
	}
	checkBasis(t, c)
}

func TestMoveForwardBackward(t *testing.T) {
	c := New(math.Vec3{X: 0, Y: 2, Z: 5})
	start := c.Position()

	c.Move(Forward, 0.016)
	moved := c.Position()
	if d := moved.Distance(start); abs(d-Speed*0.016) > eps {
		t.Errorf("forward distance = %f, want %f", d, Speed*0.016)
	}
	c.Move(Backward, 0.016)

	if !vecNear(c.Position(), start, eps) {
		t.Errorf("forward then backward: got %v, want %v", c.Position(), start)
	}
}

func TestMoveStrafeAndVertical(t *testing.T) {
	c := New(math.Vec3{X: 0, Y: 0, Z: 5})
	start := c.Position()

	c.Move(Right, 1)
	if got := c.Position().Sub(start); !vecNear(got, c.Right().Scale(Speed), 1e-4) {
		t.Errorf("right moved by %v, want %v", got, c.Right().Scale(Speed))
	}
	c.Move(Left, 1)
	if !vecNear(c.Position(), start, 1e-4) {
		t.Errorf("right then left: got %v, want %v", c.Position(), start)
	}

	c.Move(Upward, 0.5)
	if got := c.Position().Y - start.Y; abs(got-2.5) > eps {
		t.Errorf("upward moved %f, want 2.5", got)
	}
	c.Move(Downward, 0.5)
	if !vecNear(c.Position(), start, eps) {
		t.Errorf("up then down: got %v, want %v", c.Position(), start)
	}
}

func TestMoveKeepsViewInSync(t *testing.T) {
	c := New(math.Vec3{X: 1, Y: 2, Z: 5})
	rotation := c.View()

	c.Move(Forward, 0.3)
	c.Move(Left, 0.2)
	c.Move(Upward, 0.1)
	checkBasis(t, c)

	view := c.View()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if view[i][j] != rotation[i][j] {
				t.Errorf("move changed rotation entry [%d][%d]", i, j)
			}
		}
	}
}

func TestVP(t *testing.T) {
	c := New(math.Vec3{X: 0, Y: 2, Z: 5})
	proj := math.Perspective(math.Radians(45), 16.0/9.0, 0.1, 100)
	if got, want := c.VP(proj), proj.Mul(c.View()); got != want {
		t.Errorf("VP = %v, want projection * view", got)
	}
}

func TestDirectionString(t *testing.T) {
	if Upward.String() != "upward" || Direction(42).String() != "unknown" {
		t.Error("Direction.String")
	}
}
