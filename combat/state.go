// Package combat implements the per-actor melee combat engine: the combat
// state machine, attack phases, timing windows, input buffering, hold/charge
// handling and the posture resource. It is driven by a single owner that calls
// Tick once per simulation frame plus synchronous event handlers in between.
package combat

// CombatState is the discrete state of one actor. Exactly one is active.
type CombatState int

const (
	Idle CombatState = iota
	Attacking
	HoldingLightAttack
	ChargingHeavyAttack
	Blocking
	Parrying
	Evading
	GuardBroken
	CounterWindowActive
	Dead

	stateCount
)

var stateNames = [stateCount]string{
	Idle:                "Idle",
	Attacking:           "Attacking",
	HoldingLightAttack:  "HoldingLightAttack",
	ChargingHeavyAttack: "ChargingHeavyAttack",
	Blocking:            "Blocking",
	Parrying:            "Parrying",
	Evading:             "Evading",
	GuardBroken:         "GuardBroken",
	CounterWindowActive: "CounterWindowActive",
	Dead:                "Dead",
}

func (s CombatState) String() string {
	if s < 0 || s >= stateCount {
		return "Unknown"
	}
	return stateNames[s]
}

// transitions lists the legal outgoing edges of every live state. Dead is
// reachable from every live state and is handled separately.
var transitions = map[CombatState][]CombatState{
	Idle:                {Attacking, Blocking, Evading, GuardBroken},
	Attacking:           {Idle, HoldingLightAttack, ChargingHeavyAttack, Evading, GuardBroken},
	HoldingLightAttack:  {Attacking, Idle, GuardBroken},
	ChargingHeavyAttack: {Attacking, Idle, GuardBroken},
	Blocking:            {Idle, Parrying, Evading, GuardBroken},
	Parrying:            {Blocking, Idle, Attacking, CounterWindowActive, GuardBroken},
	Evading:             {Idle},
	GuardBroken:         {Idle},
	CounterWindowActive: {Attacking, Idle, Blocking, GuardBroken},
}

// canTransition reports whether from -> to is a legal edge.
func canTransition(from, to CombatState) bool {
	if from == Dead || from == to {
		return false
	}
	if to < 0 || to >= stateCount {
		return false
	}
	if to == Dead {
		return true
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// isAttackState is true for the states that own a CurrentAttack.
func isAttackState(s CombatState) bool {
	return s == Attacking || s == HoldingLightAttack || s == ChargingHeavyAttack
}
