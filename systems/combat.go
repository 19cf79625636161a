package systems

import (
	"github.com/automoto/doomerang-combat/components"
	"github.com/yohamta/donburi"
)

// UpdateCombat runs one simulation step of dt seconds. Collaborators feed the
// engine, actors tick, the timeline fires notifies, weapons sweep, and the
// command queue is drained after each stage that can emit.
func UpdateCombat(w donburi.World, dt float64) {
	// --------------------------------------------------------------------
	// 1. Input: scripts and keyboard become actor events
	// --------------------------------------------------------------------
	UpdateSparring(w, dt)
	UpdateControls(w)
	DispatchCommands(w)

	// --------------------------------------------------------------------
	// 2. Engine clocks
	// --------------------------------------------------------------------
	components.Combat.Each(w, func(entry *donburi.Entry) {
		components.Combat.Get(entry).Actor.Tick(dt)
	})
	DispatchCommands(w)

	// --------------------------------------------------------------------
	// 3. Timeline notifies drive phases and windows
	// --------------------------------------------------------------------
	UpdateTimelines(w, dt)
	DispatchCommands(w)

	// --------------------------------------------------------------------
	// 4. Weapon sweeps
	// --------------------------------------------------------------------
	UpdateWeapons(w)
	DispatchCommands(w)

	UpdatePresentation(w, dt)
}

// UpdatePresentation counts down reaction labels
func UpdatePresentation(w donburi.World, dt float64) {
	components.Presentation.Each(w, func(entry *donburi.Entry) {
		p := components.Presentation.Get(entry)
		if p.ReactionTimer <= 0 {
			return
		}
		p.ReactionTimer -= dt
		if p.ReactionTimer < 0 {
			p.ReactionTimer = 0
		}
	})
}
