package systems

import (
	"github.com/automoto/doomerang-combat/combat"
	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// UpdateControls turns each combatant's control edges into actor events and
// then rolls the frame over.
func UpdateControls(w donburi.World) {
	components.Control.Each(w, func(entry *donburi.Entry) {
		ctrl := components.Control.Get(entry)
		if entry.HasComponent(components.Combat) {
			facing := components.Facing.Get(entry).Dir
			applyControl(ctrl, components.Combat.Get(entry).Actor, facing)
		}
		ctrl.Previous = ctrl.Current
	})
}

func applyControl(ctrl *components.ControlData, actor *combat.Actor, facing math.Vec2) {
	actor.SetMovementInput(LocalMove(facing, ctrl.Move))

	if ctrl.JustPressed(cfg.ActionEvade) {
		actor.OnEvadePressed()
	}
	if ctrl.JustPressed(cfg.ActionBlock) {
		actor.OnBlockPressed()
	}
	if ctrl.JustReleased(cfg.ActionBlock) {
		actor.OnBlockReleased()
	}
	if ctrl.JustPressed(cfg.ActionLight) {
		actor.OnLightAttackPressed()
	}
	if ctrl.JustReleased(cfg.ActionLight) {
		actor.OnLightAttackReleased()
	}
	if ctrl.JustPressed(cfg.ActionHeavy) {
		actor.OnHeavyAttackPressed()
	}
	if ctrl.JustReleased(cfg.ActionHeavy) {
		actor.OnHeavyAttackReleased()
	}
}

// LocalMove converts an arena-space movement vector to the actor-local frame
// the engine expects: +Y along facing, +X to the facing's right.
func LocalMove(facing, move math.Vec2) math.Vec2 {
	return math.Vec2{
		X: move.X*-facing.Y + move.Y*facing.X,
		Y: move.X*facing.X + move.Y*facing.Y,
	}
}

// MoveFromActions builds an arena-space movement vector from the held
// direction actions.
func MoveFromActions(ctrl *components.ControlData) math.Vec2 {
	var v math.Vec2
	if ctrl.Current[cfg.ActionMoveLeft] {
		v.X--
	}
	if ctrl.Current[cfg.ActionMoveRight] {
		v.X++
	}
	if ctrl.Current[cfg.ActionMoveUp] {
		v.Y--
	}
	if ctrl.Current[cfg.ActionMoveDown] {
		v.Y++
	}
	return v
}
