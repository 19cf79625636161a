package components

import (
	"github.com/automoto/doomerang-combat/combat"
	"github.com/yohamta/donburi"
)

// PresentationData records what the overlay should show for an entity
type PresentationData struct {
	Reaction      combat.Reaction
	ReactionTimer float64 // seconds left on screen
	LastEvade     combat.Direction
	LastDamage    float64
	Hits          int
}

var Presentation = donburi.NewComponentType[PresentationData]()
