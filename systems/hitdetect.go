package systems

import (
	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateWeapons keeps each weapon volume in front of its owner and, while hit
// detection is enabled, reports every hurtbox it sweeps to the owner's actor.
// A target is reported at most once per swing.
func UpdateWeapons(w donburi.World) {
	components.Weapon.Each(w, func(entry *donburi.Entry) {
		weapon := components.Weapon.Get(entry)
		if weapon.Object == nil || !entry.HasComponent(components.Object) {
			return
		}
		body := components.Object.Get(entry).Object
		placeWeapon(weapon.Object, body, components.Facing.Get(entry).Dir.X, components.Facing.Get(entry).Dir.Y)

		if !weapon.Enabled || !entry.HasComponent(components.Combat) {
			return
		}
		actor := components.Combat.Get(entry).Actor

		check := weapon.Object.Check(0, 0, tags.ResolvHurtbox)
		if check == nil {
			return
		}
		for _, obj := range check.Objects {
			if obj == body || !overlaps(weapon.Object, obj) {
				continue
			}
			target, ok := obj.Data.(*donburi.Entry)
			if !ok || target == nil || !target.Valid() || target.Entity() == entry.Entity() {
				continue
			}
			if weapon.HitTargets == nil {
				weapon.HitTargets = map[donburi.Entity]bool{}
			}
			if weapon.HitTargets[target.Entity()] || !target.HasComponent(components.Combat) {
				continue
			}
			weapon.HitTargets[target.Entity()] = true
			actor.OnWeaponHit(components.Combat.Get(target).Actor)
			if !weapon.Enabled {
				return
			}
		}
	})
}

// placeWeapon centers the weapon on the owner's body and pushes it out along
// the facing by WeaponReach.
func placeWeapon(weapon, body *resolv.Object, fx, fy float64) {
	cx := body.X + body.W/2 + fx*cfg.Lab.WeaponReach
	cy := body.Y + body.H/2 + fy*cfg.Lab.WeaponReach
	weapon.X = cx - weapon.W/2
	weapon.Y = cy - weapon.H/2
	weapon.Update()
}

// overlaps is a strict AABB test. resolv's Check only narrows to shared cells.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
