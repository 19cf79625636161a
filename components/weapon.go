package components

import (
	"github.com/automoto/doomerang-combat/combat"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// WeaponData is the sweep volume carried by a combatant
type WeaponData struct {
	Object     *resolv.Object
	Attack     *combat.AttackDefinition
	Enabled    bool
	HitTargets map[donburi.Entity]bool // Entities already hit this swing
}

var Weapon = donburi.NewComponentType[WeaponData]()
