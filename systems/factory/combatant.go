package factory

import (
	"github.com/automoto/doomerang-combat/archetypes"
	"github.com/automoto/doomerang-combat/combat"
	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CombatantOptions describes one fighter to spawn
type CombatantOptions struct {
	Name     string
	X, Y     float64
	FacingX  float64 // +1 faces right, -1 faces left
	Settings combat.Settings
	Moveset  combat.Moveset
	Tag      donburi.IComponentType // tags.Player or tags.Dummy, optional
}

// CreateCombatant spawns a combatant with its body and weapon registered in
// the world's resolv space. Commands its actor emits go to the world queue.
func CreateCombatant(w donburi.World, opts CombatantOptions) *donburi.Entry {
	var entry *donburi.Entry
	if opts.Tag != nil {
		entry = archetypes.Combatant.Spawn(w, opts.Tag)
	} else {
		entry = archetypes.Combatant.Spawn(w)
	}
	entity := entry.Entity()

	body := resolv.NewObject(opts.X, opts.Y, cfg.Lab.BodyWidth, cfg.Lab.BodyHeight, tags.ResolvHurtbox)
	body.SetShape(resolv.NewRectangle(0, 0, cfg.Lab.BodyWidth, cfg.Lab.BodyHeight))
	body.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: body})

	weapon := resolv.NewObject(opts.X, opts.Y, cfg.Lab.WeaponWidth, cfg.Lab.WeaponHeight, tags.ResolvWeapon)
	weapon.SetShape(resolv.NewRectangle(0, 0, cfg.Lab.WeaponWidth, cfg.Lab.WeaponHeight))
	weapon.Data = entry
	components.Weapon.SetValue(entry, components.WeaponData{
		Object:     weapon,
		HitTargets: make(map[donburi.Entity]bool),
	})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(body, weapon)
	}

	facing := opts.FacingX
	if facing == 0 {
		facing = cfg.DirectionRight
	}
	components.Facing.SetValue(entry, components.FacingData{Dir: math.Vec2{X: facing, Y: 0}})

	components.Timeline.SetValue(entry, components.TimelineData{Rate: 1})
	components.Control.SetValue(entry, components.ControlData{})
	components.Presentation.SetValue(entry, components.PresentationData{})

	sink := combat.CommandFunc(func(cmd combat.Command) {
		components.PushCommand(w, entity, cmd)
	})
	actor := combat.NewActor(opts.Name, opts.Settings, opts.Moveset, sink)
	components.Combat.SetValue(entry, components.CombatData{Actor: actor})

	return entry
}

// CreateSparringDummy spawns a dummy that plays a looping input script
func CreateSparringDummy(w donburi.World, opts CombatantOptions, script cfg.SparringScript) *donburi.Entry {
	opts.Tag = tags.Dummy
	entry := CreateCombatant(w, opts)
	entry.AddComponent(components.Sparring)
	components.Sparring.SetValue(entry, components.SparringData{
		Script:  script,
		Enabled: true,
	})
	return entry
}
