package systems

import (
	"github.com/automoto/doomerang-combat/combat"
	"github.com/automoto/doomerang-combat/components"
	"github.com/yohamta/donburi"
)

// UpdateTimelines advances every playing attack timeline by dt and fires the
// notifies it passes. A timeline that runs off its end reports completion.
func UpdateTimelines(w donburi.World, dt float64) {
	components.Timeline.Each(w, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Combat) {
			return
		}
		advanceTimeline(components.Timeline.Get(entry), components.Combat.Get(entry).Actor, dt)
	})
}

func advanceTimeline(tl *components.TimelineData, actor *combat.Actor, dt float64) {
	if !tl.Playing || tl.Attack == nil || tl.Looping || dt <= 0 {
		return
	}
	// The actor moved on (stopped, interrupted) before the router caught up.
	if actor.CurrentAttack() != tl.Attack {
		tl.Playing = false
		return
	}

	tl.Elapsed += dt * tl.Rate
	notifies := tl.Attack.Notifies
	for tl.NextNotify < len(notifies) && notifies[tl.NextNotify].Time <= tl.Elapsed {
		n := notifies[tl.NextNotify]
		tl.NextNotify++
		fireNotify(actor, n)
		if actor.CurrentAttack() != tl.Attack {
			tl.Playing = false
			return
		}
	}

	if tl.Elapsed >= tl.Attack.Length {
		tl.Playing = false
		actor.OnAttackTimelineComplete()
	}
}

func fireNotify(actor *combat.Actor, n combat.Notify) {
	switch n.Type {
	case combat.NotifyPhase:
		actor.OnAttackPhaseBegin(n.Phase)
	case combat.NotifyWindowOpen:
		switch n.Window {
		case combat.WindowCombo:
			actor.OpenComboWindow(n.Duration)
		case combat.WindowParry:
			actor.OpenParryWindow(n.Duration)
		case combat.WindowHold:
			actor.OpenHoldWindow(n.Duration)
		case combat.WindowCounter:
			actor.OpenCounterWindow(n.Duration)
		}
	case combat.NotifyWindowClose:
		switch n.Window {
		case combat.WindowCombo:
			actor.CloseComboWindow()
		case combat.WindowParry:
			actor.CloseParryWindow()
		case combat.WindowHold:
			actor.CloseHoldWindow()
		case combat.WindowCounter:
			actor.CloseCounterWindow()
		}
	}
}
