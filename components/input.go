package components

import (
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ControlData stores the current and previous frame's pressed state for all
// actions. JustPressed/JustReleased are computed by comparing frames. The
// keyboard fills it for the player and the sparring script for the dummy.
type ControlData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
	Move     math.Vec2             // Arena-space movement, converted per facing
}

func (c *ControlData) JustPressed(a cfg.ActionID) bool {
	return c.Current[a] && !c.Previous[a]
}

func (c *ControlData) JustReleased(a cfg.ActionID) bool {
	return !c.Current[a] && c.Previous[a]
}

var Control = donburi.NewComponentType[ControlData]()
