package combat

// Tick advances the actor by dt seconds. The order is fixed: posture first,
// then hold, then window expiry, then state timers and buffered input. A guard
// break caused this tick therefore wins over anything buffered.
func (a *Actor) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	a.now += dt
	if a.state == Dead {
		return
	}

	a.updatePosture(dt)
	a.UpdateHoldTime(dt)
	a.updateBlend(dt)
	a.windows.Expire(a.now)
	a.updateStateTimers()
}

func (a *Actor) updateStateTimers() {
	switch a.state {
	case Evading:
		if a.now >= a.evadeEndsAt {
			a.finishEvade()
		}
	case Parrying:
		if a.now >= a.parryEndsAt {
			a.SetState(CounterWindowActive)
		}
	case CounterWindowActive:
		if a.now >= a.counterEndsAt {
			if a.blockHeld {
				a.SetState(Blocking)
			} else {
				a.SetState(Idle)
			}
		}
	}
}

// finishEvade returns to Idle and runs whatever was pressed mid-evade.
func (a *Actor) finishEvade() {
	q, ok := a.buffer.Winner()
	a.SetState(Idle)
	if !ok {
		if a.blockHeld && a.CanBlock() {
			a.SetState(Blocking)
		}
		return
	}
	switch q.Kind {
	case InputEvade:
		a.startEvade()
	default:
		a.ExecuteAttack(a.moveset.Starter(q.Kind))
	}
}
