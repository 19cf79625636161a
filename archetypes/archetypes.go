package archetypes

import (
	"github.com/automoto/doomerang-combat/components"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/yohamta/donburi"
)

var (
	Combatant = newArchetype(
		tags.Combatant,
		components.Combat,
		components.Object,
		components.Facing,
		components.Weapon,
		components.Timeline,
		components.Control,
		components.Presentation,
	)
	Space = newArchetype(
		components.Space,
	)
	CommandQueue = newArchetype(
		components.CommandQueue,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
