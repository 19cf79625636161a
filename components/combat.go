package components

import (
	"github.com/automoto/doomerang-combat/combat"
	"github.com/yohamta/donburi"
)

// CombatData links an entity to its combat engine actor
type CombatData struct {
	Actor *combat.Actor
}

var Combat = donburi.NewComponentType[CombatData]()
