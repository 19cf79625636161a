package scenes

import (
	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/systems"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every combat action to its keys and buttons
var Bindings = map[cfg.ActionID]InputBinding{
	cfg.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionMoveUp: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	cfg.ActionMoveDown: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	cfg.ActionLight: {
		Keys:                   []ebiten.Key{ebiten.KeyJ, ebiten.KeyZ},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	cfg.ActionHeavy: {
		Keys:                   []ebiten.Key{ebiten.KeyK, ebiten.KeyX},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	},
	cfg.ActionBlock: {
		Keys:                   []ebiten.Key{ebiten.KeyL, ebiten.KeyC},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
	},
	cfg.ActionEvade: {
		Keys:                   []ebiten.Key{ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdatePlayerInput polls the keyboard and gamepads into the player's
// ControlData. Must run BEFORE the combat update.
func UpdatePlayerInput(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		ctrl := components.Control.Get(entry)
		ctrl.Current = [cfg.ActionCount]bool{}

		gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

		for actionID, binding := range Bindings {
			for _, key := range binding.Keys {
				if ebiten.IsKeyPressed(key) {
					ctrl.Current[actionID] = true
				}
			}
			for _, gpID := range gamepadIDs {
				if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
					continue
				}
				for _, btn := range binding.StandardGamepadButtons {
					if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
						ctrl.Current[actionID] = true
					}
				}
			}
		}

		move := analogStick(gamepadIDs)
		if move.X == 0 && move.Y == 0 {
			move = systems.MoveFromActions(ctrl)
		}
		ctrl.Move = move
	})
}

// analogStick returns the first left stick outside the deadzone
func analogStick(gamepads []ebiten.GamepadID) math.Vec2 {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h*h+v*v > deadzone*deadzone {
			return math.Vec2{X: h, Y: v}
		}
	}
	return math.Vec2{}
}
