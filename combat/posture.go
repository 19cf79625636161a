package combat

import "log"

// Ledger is a clamped numeric resource in [0, Max]. Posture and health both
// use it.
type Ledger struct {
	current float64
	max     float64
}

func NewLedger(max float64) Ledger {
	if max < 0 {
		max = 0
	}
	return Ledger{current: max, max: max}
}

func (l *Ledger) Current() float64 { return l.current }
func (l *Ledger) Max() float64     { return l.max }

// Damage subtracts amount and reports whether this call took the ledger from
// a nonzero value to exactly 0. Calls at 0 are no-ops.
func (l *Ledger) Damage(amount float64) bool {
	if amount <= 0 || l.current <= 0 {
		return false
	}
	l.current -= amount
	if l.current <= 0 {
		l.current = 0
		return true
	}
	return false
}

func (l *Ledger) Restore(amount float64) {
	if amount <= 0 {
		return
	}
	l.current += amount
	if l.current > l.max {
		l.current = l.max
	}
}

// RestorePercent sets the ledger to pct of its max.
func (l *Ledger) RestorePercent(pct float64) {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	l.current = l.max * pct
}

// ApplyPostureDamage depletes posture. It returns true only on the call that
// breaks the guard; the actor then enters GuardBroken.
func (a *Actor) ApplyPostureDamage(amount float64, attacker Combatant) bool {
	if a.state == Dead {
		return false
	}
	if amount > 0 {
		a.lastPostureHit = a.now
		a.hasPostureHit = true
	}
	if !a.posture.Damage(amount) {
		return false
	}
	log.Printf("[combat] %s: guard broken", a.Name)
	a.SetState(GuardBroken)
	return true
}

// postureRegenRate picks the regen rate for the current state.
func (a *Actor) postureRegenRate() float64 {
	switch a.state {
	case Idle:
		return a.settings.PostureRegenIdle
	case Attacking, HoldingLightAttack, ChargingHeavyAttack:
		return a.settings.PostureRegenAttacking
	case Blocking, GuardBroken, Dead:
		return 0
	default:
		return a.settings.PostureRegenNotBlocking
	}
}

func (a *Actor) updatePosture(dt float64) {
	if a.state == GuardBroken {
		if a.now >= a.stunEndsAt {
			a.posture.RestorePercent(a.settings.GuardBreakRecoveryPercent)
			a.SetState(Idle)
		}
		return
	}
	if a.hasPostureHit && a.now-a.lastPostureHit < a.settings.PostureRegenDelay {
		return
	}
	a.posture.Restore(a.postureRegenRate() * dt)
}
