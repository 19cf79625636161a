package combat

import (
	"math"
	"testing"
)

type recorder struct {
	cmds []Command
}

func (r *recorder) Emit(cmd Command) { r.cmds = append(r.cmds, cmd) }

func (r *recorder) count(t CommandType) int {
	n := 0
	for _, c := range r.cmds {
		if c.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) last(t CommandType) (Command, bool) {
	for i := len(r.cmds) - 1; i >= 0; i-- {
		if r.cmds[i].Type == t {
			return r.cmds[i], true
		}
	}
	return Command{}, false
}

func (r *recorder) reactions() []Reaction {
	var out []Reaction
	for _, c := range r.cmds {
		if c.Type == CmdPlayReaction {
			out = append(out, c.Reaction)
		}
	}
	return out
}

func (r *recorder) reset() { r.cmds = nil }

type fixture struct {
	light1, light2, light3, lunge *AttackDefinition
	heavy1, heavy2                *AttackDefinition
	counter, finisher             *AttackDefinition
	moveset                       Moveset
}

func newFixture() *fixture {
	f := &fixture{}
	f.light3 = &AttackDefinition{Name: "light3", Kind: AttackLight, BaseDamage: 15, PostureDamage: 10, ComboInputWindow: 0.4}
	f.light2 = &AttackDefinition{Name: "light2", Kind: AttackLight, BaseDamage: 12, PostureDamage: 9, ComboInputWindow: 0.4, NextCombo: f.light3}
	f.lunge = &AttackDefinition{Name: "lunge", Kind: AttackLight, BaseDamage: 14, PostureDamage: 12,
		MotionWarp: MotionWarp{Enabled: true, MaxDistance: 120}}
	f.heavy2 = &AttackDefinition{Name: "heavy2", Kind: AttackHeavy, BaseDamage: 30, PostureDamage: 25}
	f.light1 = &AttackDefinition{
		Name:             "light1",
		Kind:             AttackLight,
		BaseDamage:       10,
		PostureDamage:    8,
		HitStunDuration:  0.3,
		NextCombo:        f.light2,
		HeavyCombo:       f.heavy2,
		ComboInputWindow: 0.4,
		DirectionalFollowups: map[Direction]*AttackDefinition{
			DirForward: f.lunge,
		},
		Hold: HoldParams{CanHold: true, EaseInDuration: 0.25, EaseOutDuration: 0.25, TargetPlayRate: 0},
	}
	f.heavy1 = &AttackDefinition{
		Name:          "heavy1",
		Kind:          AttackHeavy,
		BaseDamage:    20,
		PostureDamage: 20,
		Section:       "heavy",
		Hold:          HoldParams{CanHold: true},
		Charge: ChargeParams{
			MaxChargeTime:     1,
			ChargeTimeScale:   1,
			LoopSection:       "charge_loop",
			ReleaseSection:    "charge_release",
			DamageMultiplier:  2,
			PostureMultiplier: 3,
		},
	}
	f.counter = &AttackDefinition{Name: "counter", Kind: AttackLight, BaseDamage: 20, PostureDamage: 30}
	f.finisher = &AttackDefinition{Name: "finisher", Kind: AttackHeavy, BaseDamage: 500}
	f.moveset = Moveset{Light: f.light1, Heavy: f.heavy1, Counter: f.counter, Finisher: f.finisher}
	return f
}

func testSettings() Settings {
	return Settings{
		MaxHealth:                 100,
		MaxPosture:                100,
		PostureRegenAttacking:     30,
		PostureRegenNotBlocking:   20,
		PostureRegenIdle:          10,
		GuardBreakStunDuration:    2,
		GuardBreakRecoveryPercent: 0.5,
		HoldBlendSpeed:            4,
		ParryTimingWindow:         0.2,
		ParryStateDuration:        0.3,
		CounterStateDuration:      0.5,
		ParriedCounterWindow:      1,
		ParryPostureDamage:        25,
		CounterDamageMultiplier:   1.5,
		BlockDamageRatio:          0.2,
		BlockPostureMultiplier:    0.5,
		EvadeDuration:             0.4,
		EvadeInvulnDuration:       0.2,
		MovementDeadzone:          0.2,
	}
}

func newTestActor() (*Actor, *recorder, *fixture) {
	f := newFixture()
	rec := &recorder{}
	return NewActor("player", testSettings(), f.moveset, rec), rec, f
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func expectState(t *testing.T, a *Actor, want CombatState) {
	t.Helper()
	if a.State() != want {
		t.Fatalf("Expected state %v, got %v", want, a.State())
	}
}

func expectAttack(t *testing.T, a *Actor, want *AttackDefinition) {
	t.Helper()
	if a.CurrentAttack() != want {
		t.Fatalf("Expected current attack %v, got %v", want, a.CurrentAttack())
	}
}

var allStates = []CombatState{
	Idle, Attacking, HoldingLightAttack, ChargingHeavyAttack, Blocking,
	Parrying, Evading, GuardBroken, CounterWindowActive, Dead,
}
