package app

import (
	"github.com/Faultbox/raymarcher/internal/config"
	"github.com/Faultbox/raymarcher/internal/engine/camera"
	"github.com/Faultbox/raymarcher/internal/engine/input"
)

// action is a set of requests produced by one frame of input.
type action uint16

const (
	actQuit action = 1 << iota
	actReload
	actToggleCursor
	actScreenshot
	actSceneChanged
	actLightingChanged
	actModeChanged
)

func (a action) has(f action) bool { return a&f != 0 }

// movement maps held keys to camera directions.
var movement = []struct {
	key input.Key
	dir camera.Direction
}{
	{input.KeyW, camera.Forward},
	{input.KeyS, camera.Backward},
	{input.KeyA, camera.Left},
	{input.KeyD, camera.Right},
	{input.KeySpace, camera.Upward},
	{input.KeyLeftShift, camera.Downward},
}

// controls is the user-toggled render state.
type controls struct {
	scene    int
	lighting bool
	mode     string
}

// update applies one frame of held keys. Movement is applied to cam
// directly; everything else is returned as actions for the caller.
func (c *controls) update(in *input.State, cam *camera.Camera, dt float32) action {
	var a action

	if in.QuitRequested() || in.Held(input.KeyEscape) {
		a |= actQuit
	}

	for _, m := range movement {
		if in.Held(m.key) {
			cam.Move(m.dir, dt)
		}
	}

	if in.Consume(input.KeyR) {
		a |= actReload
	}
	if in.Consume(input.KeyF5) {
		a |= actToggleCursor
	}
	if in.Consume(input.KeyF12) {
		a |= actScreenshot
	}
	if in.Consume(input.KeyUp) {
		c.scene++
		a |= actSceneChanged
	}
	if in.Consume(input.KeyDown) && c.scene > 0 {
		c.scene--
		a |= actSceneChanged
	}
	if in.Consume(input.KeyL) {
		c.lighting = !c.lighting
		a |= actLightingChanged
	}
	if in.Consume(input.KeyM) {
		if c.mode == config.ModeLit {
			c.mode = config.ModeRaymarch
		} else {
			c.mode = config.ModeLit
		}
		a |= actModeChanged
	}

	return a
}
