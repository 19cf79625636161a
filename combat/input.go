package combat

// Button entry points. Every press is captured: it either executes right away
// (responsive path) or lands in the buffer tagged with the combo window state
// at the moment of the press. A tagged press with a linked follow-up cuts the
// current Recovery short (snappy path); during Windup or Active it waits for
// Recovery to begin.

func (a *Actor) OnLightAttackPressed()  { a.onAttackPressed(InputLight) }
func (a *Actor) OnHeavyAttackPressed()  { a.onAttackPressed(InputHeavy) }
func (a *Actor) OnLightAttackReleased() { a.onAttackReleased(InputLight) }
func (a *Actor) OnHeavyAttackReleased() { a.onAttackReleased(InputHeavy) }

func (a *Actor) onAttackPressed(kind InputKind) {
	if a.state == Dead {
		return
	}
	a.held[kind] = true

	switch a.state {
	case Idle:
		if a.tryStartFinisher() {
			return
		}
		a.ExecuteAttack(a.moveset.Starter(kind))
		return
	case Parrying, CounterWindowActive:
		a.executeCounter(kind)
		return
	case GuardBroken:
		return
	}

	inWindow := a.CanCombo()
	a.buffer.Record(kind, inWindow, a.now)
	if inWindow {
		a.cancelRecoveryInto(kind)
	}
}

func (a *Actor) onAttackReleased(kind InputKind) {
	a.held[kind] = false
	if a.state == Dead {
		return
	}
	// Snapshot now: the hold window may expire before the release resolves.
	windowExpired := !a.windows.IsOpen(WindowHold)

	switch kind {
	case InputLight:
		if a.state == HoldingLightAttack || (a.hold.IsHolding && a.hold.Kind == InputLight) {
			a.ReleaseHeldLight(windowExpired)
		}
	case InputHeavy:
		if a.state == ChargingHeavyAttack || (a.hold.IsHolding && a.hold.Kind == InputHeavy) {
			a.ReleaseHeldHeavy(windowExpired)
		}
	}
}

// executeCounter answers a successful parry.
func (a *Actor) executeCounter(kind InputKind) {
	attack := a.moveset.Counter
	if attack == nil {
		attack = a.moveset.Starter(kind)
	}
	if attack == nil {
		return
	}
	a.SetState(Attacking)
	a.hold.Reset()
	a.comboCount = 0
	a.startAttack(attack)
	a.counterStrike = true
}

// tryStartFinisher starts the finisher when the target is guard broken.
func (a *Actor) tryStartFinisher() bool {
	finisher := a.moveset.Finisher
	if finisher == nil || !present(a.target) || a.target.State() != GuardBroken {
		return false
	}
	if !a.ExecuteAttack(finisher) {
		return false
	}
	a.emit(Command{Type: CmdStartFinisher, Attack: finisher, Target: a.target})
	return true
}
