package combat

import "log"

// OnBlockPressed raises the guard and tries a parry against the target.
func (a *Actor) OnBlockPressed() {
	if a.state == Dead {
		return
	}
	a.blockHeld = true
	a.blockPressedAt = a.now
	a.hasBlockPress = true

	if !a.CanBlock() {
		return
	}
	a.SetState(Blocking)
	a.TryParry()
}

func (a *Actor) OnBlockReleased() {
	a.blockHeld = false
	if a.state == Blocking {
		a.SetState(Idle)
	}
}

// TryParry succeeds while blocking when the target's parry window is open.
// The parried attacker is told through a Parried command.
func (a *Actor) TryParry() bool {
	if a.state != Blocking || !present(a.target) {
		return false
	}
	if !a.target.IsInParryWindow() {
		return false
	}
	a.parry(a.target)
	return true
}

func (a *Actor) parry(attacker Combatant) {
	log.Printf("[combat] %s: parry", a.Name)
	a.SetState(Parrying)
	a.emit(Command{Type: CmdParried, Target: attacker})
	a.emit(Command{Type: CmdPlayReaction, Reaction: ReactionDeflect})
}

// OnParried is called on the attacker whose swing was parried. The attack is
// dropped, the counter window opens and posture takes the parry penalty.
func (a *Actor) OnParried(by Combatant) {
	if a.state == Dead {
		return
	}
	if isAttackState(a.state) {
		a.SetState(Idle)
	}
	a.OpenCounterWindow(a.settings.ParriedCounterWindow)
	a.emit(Command{Type: CmdPlayReaction, Reaction: ReactionParried, Duration: a.settings.ParriedCounterWindow})
	a.ApplyPostureDamage(a.settings.ParryPostureDamage, by)
}

// OnEvadePressed evades from Idle or Blocking. During an attack's Recovery
// the evade cancels it; in other phases the press is buffered.
func (a *Actor) OnEvadePressed() {
	switch a.state {
	case Idle, Blocking:
		a.startEvade()
	case Attacking:
		if a.phase == PhaseRecovery {
			a.SetState(Idle)
			a.startEvade()
			return
		}
		a.buffer.Record(InputEvade, a.CanCombo(), a.now)
	case HoldingLightAttack, ChargingHeavyAttack, Evading:
		a.buffer.Record(InputEvade, a.CanCombo(), a.now)
	}
}

func (a *Actor) startEvade() {
	dir := a.Direction()
	if dir == DirNone {
		dir = DirBack
	}
	a.SetState(Evading)
	a.emit(Command{Type: CmdPlayEvade, Direction: dir, Duration: a.settings.EvadeDuration})
}

// ApplyDamage applies a landed hit and returns the damage actually taken.
func (a *Actor) ApplyDamage(hit HitInfo) float64 {
	if a.state == Dead || a.IsInvulnerable() {
		return 0
	}
	if a.state == Parrying {
		a.emit(Command{Type: CmdPlayReaction, Reaction: ReactionDeflect})
		return 0
	}

	if a.state == Blocking {
		if a.parryTimed(hit.Attacker) {
			a.parry(hit.Attacker)
			return 0
		}
		dmg := a.takeHealth(hit.Damage * a.settings.BlockDamageRatio)
		if a.state == Dead {
			return dmg
		}
		a.emit(Command{Type: CmdPlayReaction, Reaction: ReactionBlock})
		a.ApplyPostureDamage(hit.PostureDamage*a.settings.BlockPostureMultiplier, hit.Attacker)
		return dmg
	}

	dmg := a.takeHealth(hit.Damage)
	if a.state == Dead {
		return dmg
	}
	if a.ApplyPostureDamage(hit.PostureDamage, hit.Attacker) {
		return dmg
	}
	if hit.HitStun > 0 {
		if isAttackState(a.state) {
			a.StopCurrentAttack()
		}
		a.emit(Command{Type: CmdPlayReaction, Reaction: ReactionHit, Duration: hit.HitStun})
	}
	return dmg
}

// parryTimed is the block-timing parry: block pressed shortly before a hit
// whose attacker still has its parry window open.
func (a *Actor) parryTimed(attacker Combatant) bool {
	if !present(attacker) || !a.hasBlockPress {
		return false
	}
	if a.now-a.blockPressedAt > a.settings.ParryTimingWindow {
		return false
	}
	return attacker.IsInParryWindow()
}

// takeHealth removes health and returns how much was actually lost.
func (a *Actor) takeHealth(amount float64) float64 {
	before := a.health.Current()
	if a.health.Damage(amount) {
		a.SetState(Dead)
	}
	return before - a.health.Current()
}

// ExecuteFinisher runs on the victim. It only starts while guard broken and
// keeps the victim stunned for the finisher's length, so a survivor cannot
// recover mid-animation.
func (a *Actor) ExecuteFinisher(attacker Combatant, finisher *AttackDefinition) bool {
	if finisher == nil || a.state != GuardBroken {
		return false
	}
	log.Printf("[combat] %s: finisher %s", a.Name, finisher.Name)
	a.stunEndsAt = max(a.stunEndsAt, a.now) + finisher.Length
	a.emit(Command{Type: CmdPlayReaction, Reaction: ReactionFinished, Attack: finisher, Target: attacker})
	a.takeHealth(finisher.BaseDamage)
	return true
}
