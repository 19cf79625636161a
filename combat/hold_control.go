package combat

import "log"

// OpenHoldWindow opens the hold window and checks, right now, whether the
// button that started the current attack is still down. Holding needs the
// button held, the matching input kind and an attack that allows it.
func (a *Actor) OpenHoldWindow(duration float64) {
	if a.state == Dead {
		return
	}
	a.windows.Open(WindowHold, duration, a.now)

	if a.current == nil {
		a.failSafe("hold window opened with no current attack")
		return
	}
	if a.state != Attacking || a.hold.IsHolding || a.hold.ActivatedThisChain {
		return
	}
	kind := a.current.Kind.inputKind()
	if !a.held[kind] || !a.current.CanHold() {
		return
	}

	if kind == InputHeavy {
		a.SetState(ChargingHeavyAttack)
		a.hold.Activate(kind, a.now, 1)
		a.hold.QueuedDirection = a.Direction()
		a.emit(Command{Type: CmdPlaySection, Attack: a.current, Section: a.current.Charge.LoopSection, Rate: 1})
		return
	}

	a.SetState(HoldingLightAttack)
	a.hold.Activate(kind, a.now, a.current.Hold.TargetPlayRate)
	a.hold.QueuedDirection = a.Direction()
	a.startBlend(1, a.current.Hold.EaseInDuration)
}

// UpdateHoldTime accumulates hold time and enforces the max hold time.
func (a *Actor) UpdateHoldTime(dt float64) {
	if a.current == nil {
		if a.hold.IsHolding || a.state == HoldingLightAttack || a.state == ChargingHeavyAttack {
			a.failSafe("hold update with no current attack")
		}
		return
	}
	if !a.hold.IsHolding || dt <= 0 {
		return
	}

	scale := 1.0
	if a.hold.Kind == InputHeavy && a.current.Charge.ChargeTimeScale > 0 {
		scale = a.current.Charge.ChargeTimeScale
	}
	a.hold.HeldTime += dt * scale

	hp := a.current.Hold
	if hp.EnforceMaxHoldTime && hp.MaxHoldTime > 0 && a.hold.HeldTime >= hp.MaxHoldTime {
		windowExpired := !a.windows.IsOpen(WindowHold)
		if a.hold.Kind == InputHeavy {
			a.ReleaseHeldHeavy(windowExpired)
		} else {
			a.ReleaseHeldLight(windowExpired)
		}
	}
}

// ReleaseHeldLight ends a light hold. windowExpired is the hold window state
// captured when the button physically came up. Released after the window
// expired, the directional follow-up executes; released inside it, the
// current attack resumes with an ease-out.
func (a *Actor) ReleaseHeldLight(windowExpired bool) {
	if a.state == Dead {
		return
	}
	if a.current == nil {
		a.failSafe("light release with no current attack")
		return
	}
	if !a.hold.IsHolding && a.state != HoldingLightAttack {
		return
	}

	dir := a.hold.QueuedDirection
	if d := a.Direction(); d != DirNone {
		dir = d
	}
	a.SetState(Attacking)

	if windowExpired {
		if next := a.current.Followup(InputLight, dir); next != nil {
			a.ForceRestoreNormalPlayRate()
			a.ExecuteComboAttack(next)
			return
		}
	}
	a.startBlend(0, a.current.Hold.EaseOutDuration)
}

// ReleaseHeldHeavy ends a charge. Damage and posture scale with the charge
// ratio; the release section plays when the window had already expired.
func (a *Actor) ReleaseHeldHeavy(windowExpired bool) {
	if a.state == Dead {
		return
	}
	if a.current == nil {
		a.failSafe("heavy release with no current attack")
		return
	}
	if !a.hold.IsHolding && a.state != ChargingHeavyAttack {
		return
	}

	ratio := a.ChargeRatio()
	charge := a.current.Charge
	a.SetState(Attacking)
	a.damageMultiplier = lerpMultiplier(charge.DamageMultiplier, ratio)
	a.postureMultiplier = lerpMultiplier(charge.PostureMultiplier, ratio)
	a.ForceRestoreNormalPlayRate()

	// Let go before the window closed: resume the base swing instead of the
	// charged release.
	section := charge.ReleaseSection
	if !windowExpired || section == "" {
		section = a.current.Section
	}
	a.emit(Command{Type: CmdPlaySection, Attack: a.current, Section: section, Rate: 1})
}

// ChargeRatio is the charge progress of the current heavy hold in [0, 1].
func (a *Actor) ChargeRatio() float64 {
	if a.current == nil || a.hold.Kind != InputHeavy {
		return 0
	}
	max := a.current.Charge.MaxChargeTime
	if max <= 0 {
		return 1
	}
	return clamp01(a.hold.HeldTime / max)
}

// ForceRestoreNormalPlayRate re-issues playrate 1.0 and drops any blend.
func (a *Actor) ForceRestoreNormalPlayRate() {
	a.hold.blend.stop()
	a.hold.blend.alpha = 0
	a.hold.CurrentPlayRate = 1
	a.emit(Command{Type: CmdSetPlayRate, Attack: a.current, Rate: 1})
}

// startBlend begins a playrate blend toward target alpha. easeDuration, when
// authored, overrides the configured blend speed.
func (a *Actor) startBlend(target float32, easeDuration float64) {
	speed := a.settings.HoldBlendSpeed
	if easeDuration > 0 {
		speed = 1 / easeDuration
	}
	curve := CurveLinear
	if a.current != nil {
		curve = a.current.Hold.Curve
	}
	if !a.hold.blend.start(target, speed, curve) {
		a.hold.CurrentPlayRate = a.hold.rateFor(a.hold.blend.alpha)
		a.emit(Command{Type: CmdSetPlayRate, Attack: a.current, Rate: a.hold.CurrentPlayRate})
	}
}

// updateBlend advances the playrate blend. The terminal frame issues the
// exact bound once more.
func (a *Actor) updateBlend(dt float64) {
	if !a.hold.IsBlending() {
		return
	}
	alpha, finished := a.hold.blend.update(dt)
	a.hold.CurrentPlayRate = a.hold.rateFor(alpha)
	a.emit(Command{Type: CmdSetPlayRate, Attack: a.current, Rate: a.hold.CurrentPlayRate})
	if finished {
		a.emit(Command{Type: CmdSetPlayRate, Attack: a.current, Rate: a.hold.CurrentPlayRate})
	}
}

// exitHold leaves any hold sub-state and guarantees normal playback.
func (a *Actor) exitHold() {
	wasActive := a.hold.IsHolding || a.hold.IsBlending() || a.hold.CurrentPlayRate != 1
	a.hold.Deactivate()
	if wasActive {
		a.ForceRestoreNormalPlayRate()
	}
}

// failSafe recovers from an attack cleared underneath a hold.
func (a *Actor) failSafe(reason string) {
	if !isAttackState(a.state) && !a.hold.IsHolding && !a.hold.IsBlending() {
		return
	}
	log.Printf("[combat] %s: %s, resetting to idle", a.Name, reason)
	a.hold.Deactivate()
	a.ForceRestoreNormalPlayRate()
	if isAttackState(a.state) {
		a.SetState(Idle)
	}
}

func lerpMultiplier(full, ratio float64) float64 {
	if full <= 0 {
		return 1
	}
	return 1 + (full-1)*ratio
}
