package systems

import (
	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/yohamta/donburi"
)

// UpdateSparring plays each dummy's input script into its ControlData. It
// must run before UpdateControls so the presses are seen as edges.
func UpdateSparring(w donburi.World, dt float64) {
	components.Sparring.Each(w, func(entry *donburi.Entry) {
		sp := components.Sparring.Get(entry)
		if !sp.Enabled || !entry.HasComponent(components.Control) {
			return
		}
		stepSparring(sp, components.Control.Get(entry), dt)
	})
}

func stepSparring(sp *components.SparringData, ctrl *components.ControlData, dt float64) {
	// Release held actions whose time is up
	for a := range sp.Releases {
		if !ctrl.Current[a] {
			continue
		}
		sp.Releases[a] -= dt
		if sp.Releases[a] <= 0 {
			ctrl.Current[a] = false
		}
	}

	period := sp.Script.Period
	if period <= 0 {
		return
	}

	from := sp.Elapsed
	to := from + dt
	if to >= period {
		// Fire the tail of this loop, then start the next one
		pressSteps(sp, ctrl, from, period)
		to -= period
		from = -1
	}
	pressSteps(sp, ctrl, from, to)
	sp.Elapsed = to
}

// pressSteps presses every step scheduled in (from, to]
func pressSteps(sp *components.SparringData, ctrl *components.ControlData, from, to float64) {
	for _, step := range sp.Script.Steps {
		if step.At > from && step.At <= to {
			ctrl.Current[step.Action] = true
			sp.Releases[step.Action] = step.Hold
		}
	}
}

// SetSparringDifficulty swaps every dummy to the script for d and restarts it
func SetSparringDifficulty(w donburi.World, d cfg.SparringDifficulty) {
	script, ok := cfg.Sparring.Scripts[d]
	if !ok {
		return
	}
	components.Sparring.Each(w, func(entry *donburi.Entry) {
		sp := components.Sparring.Get(entry)
		sp.Script = script
		sp.Elapsed = 0
		sp.Releases = [cfg.ActionCount]float64{}
	})
}
