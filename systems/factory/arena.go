package factory

import (
	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/yohamta/donburi"
)

// Arena holds the two fighters of a sparring session
type Arena struct {
	Player *donburi.Entry
	Dummy  *donburi.Entry
}

// CreateArena builds the resolv space, the command queue, a keyboard driven
// player and a scripted dummy facing each other, each targeting the other.
func CreateArena(w donburi.World, difficulty cfg.SparringDifficulty) Arena {
	CreateSpace(w, cfg.Lab.ArenaWidth, cfg.Lab.ArenaHeight, cfg.Lab.CellSize, cfg.Lab.CellSize)
	CreateCommandQueue(w)

	cx := float64(cfg.Lab.ArenaWidth) / 2
	y := float64(cfg.Lab.ArenaHeight)/2 - cfg.Lab.BodyHeight/2
	half := cfg.Lab.SpawnGap/2 + cfg.Lab.BodyWidth/2

	player := CreateCombatant(w, CombatantOptions{
		Name:     "player",
		X:        cx - half - cfg.Lab.BodyWidth/2,
		Y:        y,
		FacingX:  cfg.DirectionRight,
		Settings: cfg.Combat,
		Moveset:  cfg.DefaultMoveset(),
		Tag:      tags.Player,
	})
	dummy := CreateSparringDummy(w, CombatantOptions{
		Name:     "dummy",
		X:        cx + half - cfg.Lab.BodyWidth/2,
		Y:        y,
		FacingX:  cfg.DirectionLeft,
		Settings: cfg.Combat,
		Moveset:  cfg.DefaultMoveset(),
	}, cfg.Sparring.Scripts[difficulty])

	p := components.Combat.Get(player).Actor
	d := components.Combat.Get(dummy).Actor
	p.SetTarget(d)
	d.SetTarget(p)

	return Arena{Player: player, Dummy: dummy}
}
