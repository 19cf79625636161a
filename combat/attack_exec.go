package combat

import "log"

// ExecuteAttack starts a fresh chain with attack. It only succeeds from Idle.
func (a *Actor) ExecuteAttack(attack *AttackDefinition) bool {
	if attack == nil || a.state != Idle {
		return false
	}
	a.SetState(Attacking)
	a.hold.Reset()
	a.comboCount = 0
	a.startAttack(attack)
	return true
}

// ExecuteComboAttack continues the current chain with attack without leaving
// Attacking.
func (a *Actor) ExecuteComboAttack(attack *AttackDefinition) bool {
	if attack == nil || a.state != Attacking {
		return false
	}
	a.comboCount++
	a.startAttack(attack)
	return true
}

// startAttack makes attack current and tells the collaborators.
func (a *Actor) startAttack(attack *AttackDefinition) {
	if a.hold.IsBlending() || a.hold.CurrentPlayRate != 1 {
		a.ForceRestoreNormalPlayRate()
	}
	a.setPhase(PhaseNone)
	a.current = attack
	a.buffer.Clear()
	a.windows.Close(WindowCombo)
	a.windows.Close(WindowHold)
	a.counterStrike = false
	a.resetMultipliers()

	a.emit(Command{Type: CmdResetHitTracking, Attack: attack})
	a.emit(Command{Type: CmdPlayAttack, Attack: attack, Section: attack.Section, Rate: 1})
	if attack.MotionWarp.Enabled && present(a.target) {
		a.emit(Command{Type: CmdSetWarpTarget, Attack: attack, Target: a.target})
	}
}

// StopCurrentAttack clears the current attack and forces Idle
// unconditionally. Like SetState it is a privileged call; the engine itself
// never invokes it on a dead actor.
func (a *Actor) StopCurrentAttack() {
	a.SetState(Idle)
}

// CancelRecoveryAndExecuteCombo is the snappy path: cut the current Recovery
// short and continue with the follow-up for the winning buffered kind. Outside
// Recovery it does nothing, so a live swing is never cut.
func (a *Actor) CancelRecoveryAndExecuteCombo() bool {
	q, ok := a.buffer.Winner()
	if !ok {
		return false
	}
	return a.cancelRecoveryInto(q.Kind)
}

func (a *Actor) cancelRecoveryInto(kind InputKind) bool {
	if a.state != Attacking || a.current == nil || kind == InputEvade || a.phase != PhaseRecovery {
		return false
	}
	next := a.current.Followup(kind, a.Direction())
	if next == nil {
		return false
	}
	a.setPhase(PhaseNone)
	return a.ExecuteComboAttack(next)
}

// runTaggedCombo fires a press made inside the combo window during Windup or
// Active once the attack reaches Recovery.
func (a *Actor) runTaggedCombo() bool {
	q, ok := a.buffer.Winner()
	if !ok || !q.InComboWindow {
		return false
	}
	return a.cancelRecoveryInto(q.Kind)
}

// ProcessRecoveryComplete runs when the attack's timeline finishes. Buffered
// input executes now; with nothing buffered the chain ends.
func (a *Actor) ProcessRecoveryComplete() {
	if a.state != Attacking {
		return
	}
	if a.current == nil {
		a.SetState(Idle)
		return
	}
	q, ok := a.buffer.Winner()
	if !ok {
		a.StopCurrentAttack()
		return
	}

	switch q.Kind {
	case InputEvade:
		a.SetState(Idle)
		a.startEvade()
	default:
		if next := a.current.Followup(q.Kind, a.Direction()); next != nil {
			a.setPhase(PhaseNone)
			a.ExecuteComboAttack(next)
			return
		}
		// End of chain: restart from the starter so the press is not lost.
		a.SetState(Idle)
		a.ExecuteAttack(a.moveset.Starter(q.Kind))
	}
}

// OnAttackTimelineComplete is reported by the animation collaborator when the
// attack montage ends.
func (a *Actor) OnAttackTimelineComplete() {
	switch a.state {
	case Attacking:
		a.ProcessRecoveryComplete()
	case HoldingLightAttack, ChargingHeavyAttack:
		// Holds freeze or loop playback; a completion here means the
		// animation system dropped the attack underneath us.
		log.Printf("[combat] %s: timeline ended during hold, resetting", a.Name)
		a.SetState(Idle)
	}
}

// OnWeaponHit is reported by hit detection while the weapon is live. The hit
// is emitted for the router to apply; target is never mutated here.
func (a *Actor) OnWeaponHit(target Combatant) {
	if a.state == Dead || a.current == nil || !present(target) {
		return
	}
	if target == Combatant(a) {
		return
	}
	dmg := a.current.BaseDamage * a.damageMultiplier
	posture := a.current.PostureDamage * a.postureMultiplier
	counter := a.counterStrike || target.IsInCounterWindow()
	if counter && a.settings.CounterDamageMultiplier > 0 {
		dmg *= a.settings.CounterDamageMultiplier
		posture *= a.settings.CounterDamageMultiplier
	}
	a.emit(Command{
		Type:   CmdApplyHit,
		Attack: a.current,
		Target: target,
		Hit: HitInfo{
			Attacker:      a,
			Attack:        a.current,
			Damage:        dmg,
			PostureDamage: posture,
			HitStun:       a.current.HitStunDuration,
			IsCounter:     counter,
		},
	})
}
