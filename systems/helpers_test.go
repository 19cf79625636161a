package systems

import (
	"testing"

	"github.com/automoto/doomerang-combat/combat"
	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/systems/factory"
	"github.com/yohamta/donburi"
)

func newTestArena(t *testing.T) (donburi.World, factory.Arena) {
	t.Helper()
	w := donburi.NewWorld()
	arena := factory.CreateArena(w, cfg.SparringNormal)
	return w, arena
}

func actorOf(entry *donburi.Entry) *combat.Actor {
	return components.Combat.Get(entry).Actor
}

// moveTo places the entry's body at x, y and refreshes its cells
func moveTo(entry *donburi.Entry, x, y float64) {
	body := components.Object.Get(entry).Object
	body.X = x
	body.Y = y
	body.Update()
}
