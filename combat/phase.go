package combat

// AttackPhase is the segment of the current attack's timeline.
type AttackPhase int

const (
	PhaseNone AttackPhase = iota
	PhaseWindup
	PhaseActive
	PhaseRecovery
)

func (p AttackPhase) String() string {
	switch p {
	case PhaseNone:
		return "None"
	case PhaseWindup:
		return "Windup"
	case PhaseActive:
		return "Active"
	case PhaseRecovery:
		return "Recovery"
	default:
		return "Unknown"
	}
}

// OnAttackPhaseBegin is the animation notify for the start of a phase.
func (a *Actor) OnAttackPhaseBegin(p AttackPhase) {
	a.TransitionToPhase(p)
}

// OnAttackPhaseEnd is the animation notify for the end of a phase. Only the
// phase that is currently active can be ended; the end of Recovery completes
// the attack.
func (a *Actor) OnAttackPhaseEnd(p AttackPhase) {
	if a.state == Dead || p != a.phase || p == PhaseNone {
		return
	}
	if p == PhaseRecovery {
		a.ProcessRecoveryComplete()
		return
	}
	a.setPhase(PhaseNone)
}

// TransitionToPhase makes p the current phase, implicitly ending the previous
// one.
func (a *Actor) TransitionToPhase(p AttackPhase) {
	if a.state == Dead || p < PhaseNone || p > PhaseRecovery {
		return
	}
	prev := a.phase
	a.setPhase(p)
	if p == PhaseRecovery && prev != PhaseRecovery {
		a.runTaggedCombo()
	}
}

func (a *Actor) setPhase(p AttackPhase) {
	prev := a.phase
	if prev == p {
		return
	}
	a.phase = p
	if prev == PhaseActive {
		a.emit(Command{Type: CmdDisableHitDetection})
	}
	if p == PhaseActive {
		a.emit(Command{Type: CmdEnableHitDetection, Attack: a.current})
	}
}
