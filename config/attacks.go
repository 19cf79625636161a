package config

import "github.com/automoto/doomerang-combat/combat"

// Montage names shared by the default attacks
const (
	MontageLight   = "sword_light"
	MontageHeavy   = "sword_heavy"
	MontageCounter = "sword_riposte"
	MontageExecute = "sword_execute"

	SectionChargeLoop    = "charge_loop"
	SectionChargeRelease = "charge_release"
)

// AttackTiming describes where the phase and window notifies sit on an
// attack's timeline, in seconds from the start.
type AttackTiming struct {
	Active   float64
	Recovery float64
	Length   float64

	ParryAt    float64
	ParryFor   float64
	HoldAt     float64
	HoldFor    float64
	ComboAt    float64
	ComboFor   float64
	CounterAt  float64
	CounterFor float64
}

// Notifies expands the timing into timeline notifies, ordered by time.
// Windows with a zero duration are left out.
func (t AttackTiming) Notifies() []combat.Notify {
	out := []combat.Notify{
		{Time: 0, Type: combat.NotifyPhase, Phase: combat.PhaseWindup},
	}
	if t.ParryFor > 0 {
		out = append(out, combat.Notify{Time: t.ParryAt, Type: combat.NotifyWindowOpen, Window: combat.WindowParry, Duration: t.ParryFor})
	}
	if t.HoldFor > 0 {
		out = append(out, combat.Notify{Time: t.HoldAt, Type: combat.NotifyWindowOpen, Window: combat.WindowHold, Duration: t.HoldFor})
	}
	out = append(out, combat.Notify{Time: t.Active, Type: combat.NotifyPhase, Phase: combat.PhaseActive})
	if t.ComboFor > 0 {
		out = append(out, combat.Notify{Time: t.ComboAt, Type: combat.NotifyWindowOpen, Window: combat.WindowCombo, Duration: t.ComboFor})
	}
	if t.CounterFor > 0 {
		out = append(out, combat.Notify{Time: t.CounterAt, Type: combat.NotifyWindowOpen, Window: combat.WindowCounter, Duration: t.CounterFor})
	}
	out = append(out, combat.Notify{Time: t.Recovery, Type: combat.NotifyPhase, Phase: combat.PhaseRecovery})
	sortNotifies(out)
	return out
}

// insertion sort, the lists are tiny and mostly ordered
func sortNotifies(n []combat.Notify) {
	for i := 1; i < len(n); i++ {
		for j := i; j > 0 && n[j].Time < n[j-1].Time; j-- {
			n[j], n[j-1] = n[j-1], n[j]
		}
	}
}

// DefaultMoveset builds the sword moveset used by the lab. Every call returns
// fresh definitions so callers may tweak them without sharing state.
func DefaultMoveset() combat.Moveset {
	lightTiming := AttackTiming{
		Active: 0.12, Recovery: 0.24, Length: 0.5,
		ParryAt: 0.02, ParryFor: 0.1,
		HoldAt: 0.08, HoldFor: 0.2,
		ComboAt: 0.16, ComboFor: 0.3,
	}

	slash3 := &combat.AttackDefinition{
		Name:             "slash_3",
		Kind:             combat.AttackLight,
		BaseDamage:       14,
		PostureDamage:    14,
		HitStunDuration:  0.35,
		ComboInputWindow: 0.3,
		Montage:          MontageLight,
		Section:          "slash_3",
		Length:           0.6,
		Notifies: AttackTiming{
			Active: 0.16, Recovery: 0.3, Length: 0.6,
			ParryAt: 0.04, ParryFor: 0.12,
		}.Notifies(),
	}
	slash2 := &combat.AttackDefinition{
		Name:             "slash_2",
		Kind:             combat.AttackLight,
		BaseDamage:       10,
		PostureDamage:    9,
		HitStunDuration:  0.25,
		NextCombo:        slash3,
		ComboInputWindow: 0.3,
		Montage:          MontageLight,
		Section:          "slash_2",
		Length:           lightTiming.Length,
		Notifies:         lightTiming.Notifies(),
	}
	lunge := &combat.AttackDefinition{
		Name:             "lunge",
		Kind:             combat.AttackLight,
		BaseDamage:       12,
		PostureDamage:    12,
		HitStunDuration:  0.3,
		NextCombo:        slash3,
		ComboInputWindow: 0.3,
		MotionWarp:       combat.MotionWarp{Enabled: true, MaxDistance: 96, WarpTargetName: "lunge_target"},
		Montage:          MontageLight,
		Section:          "lunge",
		Length:           0.55,
		Notifies: AttackTiming{
			Active: 0.14, Recovery: 0.26, Length: 0.55,
			ParryAt: 0.04, ParryFor: 0.1,
			ComboAt: 0.2, ComboFor: 0.3,
		}.Notifies(),
	}
	backstep := &combat.AttackDefinition{
		Name:             "backstep_cut",
		Kind:             combat.AttackLight,
		BaseDamage:       8,
		PostureDamage:    6,
		HitStunDuration:  0.2,
		ComboInputWindow: 0.3,
		Montage:          MontageLight,
		Section:          "backstep_cut",
		Length:           0.45,
		Notifies: AttackTiming{
			Active: 0.1, Recovery: 0.2, Length: 0.45,
		}.Notifies(),
	}
	launcher := &combat.AttackDefinition{
		Name:            "launcher",
		Kind:            combat.AttackHeavy,
		BaseDamage:      18,
		PostureDamage:   24,
		HitStunDuration: 0.5,
		Montage:         MontageHeavy,
		Section:         "launcher",
		Length:          0.7,
		Notifies: AttackTiming{
			Active: 0.25, Recovery: 0.4, Length: 0.7,
			ParryAt: 0.1, ParryFor: 0.12,
		}.Notifies(),
	}
	slash1 := &combat.AttackDefinition{
		Name:            "slash_1",
		Kind:            combat.AttackLight,
		BaseDamage:      8,
		PostureDamage:   8,
		HitStunDuration: 0.25,
		NextCombo:       slash2,
		HeavyCombo:      launcher,
		DirectionalFollowups: map[combat.Direction]*combat.AttackDefinition{
			combat.DirForward: lunge,
			combat.DirBack:    backstep,
		},
		Hold: combat.HoldParams{
			CanHold:            true,
			EnforceMaxHoldTime: true,
			MaxHoldTime:        1.5,
			EaseInDuration:     0.12,
			EaseOutDuration:    0.08,
			Curve:              combat.CurveQuad,
			TargetPlayRate:     0.1,
		},
		ComboInputWindow: 0.3,
		Montage:          MontageLight,
		Section:          "slash_1",
		Length:           lightTiming.Length,
		Notifies:         lightTiming.Notifies(),
	}
	heavy := &combat.AttackDefinition{
		Name:            "overhead",
		Kind:            combat.AttackHeavy,
		BaseDamage:      20,
		PostureDamage:   22,
		HitStunDuration: 0.45,
		NextCombo:       slash2,
		Hold: combat.HoldParams{
			CanHold:            true,
			EnforceMaxHoldTime: true,
			MaxHoldTime:        2.0,
		},
		Charge: combat.ChargeParams{
			MaxChargeTime:     1.2,
			ChargeTimeScale:   1.0,
			LoopSection:       SectionChargeLoop,
			ReleaseSection:    SectionChargeRelease,
			DamageMultiplier:  2.0,
			PostureMultiplier: 2.5,
		},
		ComboInputWindow: 0.35,
		Montage:          MontageHeavy,
		Section:          "overhead",
		Length:           0.9,
		Notifies: AttackTiming{
			Active: 0.35, Recovery: 0.5, Length: 0.9,
			ParryAt: 0.15, ParryFor: 0.15,
			HoldAt: 0.1, HoldFor: 0.2,
			ComboAt: 0.45, ComboFor: 0.35,
		}.Notifies(),
	}
	riposte := &combat.AttackDefinition{
		Name:            "riposte",
		Kind:            combat.AttackLight,
		BaseDamage:      16,
		PostureDamage:   30,
		HitStunDuration: 0.5,
		MotionWarp:      combat.MotionWarp{Enabled: true, MaxDistance: 48},
		Montage:         MontageCounter,
		Section:         "riposte",
		Length:          0.45,
		Notifies: AttackTiming{
			Active: 0.08, Recovery: 0.2, Length: 0.45,
		}.Notifies(),
	}
	execute := &combat.AttackDefinition{
		Name:       "execute",
		Kind:       combat.AttackHeavy,
		BaseDamage: 100,
		MotionWarp: combat.MotionWarp{Enabled: true, MaxDistance: 64},
		Montage:    MontageExecute,
		Section:    "execute",
		Length:     1.2,
		Notifies: AttackTiming{
			Active: 0.5, Recovery: 0.7, Length: 1.2,
		}.Notifies(),
	}

	return combat.Moveset{
		Light:    slash1,
		Heavy:    heavy,
		Counter:  riposte,
		Finisher: execute,
	}
}
