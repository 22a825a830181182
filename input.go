package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/citydash/obj"
)

const stickDeadzone = 0.3

// pollInput snapshots keyboard and the first gamepad into an obj.Input.
// Movement and jump are level-triggered; weather keys fire once per press.
func pollInput() obj.Input {
	var in obj.Input

	in.Left = ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyS)
	in.Right = ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	in.Jump = ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW)

	in.Rain = inpututil.IsKeyJustPressed(ebiten.KeyR)
	in.Snow = inpututil.IsKeyJustPressed(ebiten.KeyN)
	in.ClearWeather = inpututil.IsKeyJustPressed(ebiten.KeyC)

	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) > 0 {
		gid := ids[0]
		x := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if x < -stickDeadzone || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft) {
			in.Left = true
		}
		if x > stickDeadzone || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight) {
			in.Right = true
		}
		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
			in.Jump = true
		}
	}
	return in
}

func pausePressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		return true
	}
	for _, gid := range ebiten.AppendGamepadIDs(nil) {
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}
