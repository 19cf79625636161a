package tags

import "github.com/yohamta/donburi"

var (
	Combatant = donburi.NewTag().SetName("Combatant")
	Player    = donburi.NewTag().SetName("Player")
	Dummy     = donburi.NewTag().SetName("Dummy")
)

// Resolv tags for hit detection
const (
	ResolvHurtbox = "hurtbox"
	ResolvWeapon  = "weapon"
)
