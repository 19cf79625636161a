package combat

import (
	gomath "math"

	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/features/math"
)

// AttackKind is the input family an attack belongs to.
type AttackKind int

const (
	AttackLight AttackKind = iota
	AttackHeavy
)

func (k AttackKind) String() string {
	if k == AttackHeavy {
		return "Heavy"
	}
	return "Light"
}

// inputKind maps an attack to the button that starts it.
func (k AttackKind) inputKind() InputKind {
	if k == AttackHeavy {
		return InputHeavy
	}
	return InputLight
}

// Direction is the resolved movement direction in actor-local space.
type Direction int

const (
	DirNone Direction = iota
	DirForward
	DirBack
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirForward:
		return "Forward"
	case DirBack:
		return "Back"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// DirectionFromInput resolves a movement vector (+Y forward, +X right) to its
// dominant direction. Vectors shorter than deadzone resolve to DirNone.
func DirectionFromInput(v math.Vec2, deadzone float64) Direction {
	if gomath.Hypot(v.X, v.Y) <= deadzone {
		return DirNone
	}
	ax, ay := v.X, v.Y
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	if ay >= ax {
		if v.Y > 0 {
			return DirForward
		}
		return DirBack
	}
	if v.X > 0 {
		return DirRight
	}
	return DirLeft
}

// EaseCurve selects the easing used by hold playrate blends.
type EaseCurve int

const (
	CurveLinear EaseCurve = iota
	CurveQuad
	CurveCubic
	CurveSine
	CurveExpo
)

func (c EaseCurve) tweenFunc() ease.TweenFunc {
	switch c {
	case CurveQuad:
		return ease.InOutQuad
	case CurveCubic:
		return ease.InOutCubic
	case CurveSine:
		return ease.InOutSine
	case CurveExpo:
		return ease.InOutExpo
	default:
		return ease.Linear
	}
}

type HoldParams struct {
	CanHold            bool
	EnforceMaxHoldTime bool
	MaxHoldTime        float64
	EaseInDuration     float64
	EaseOutDuration    float64
	Curve              EaseCurve
	// TargetPlayRate is the playrate reached at full hold (0 = frozen).
	TargetPlayRate float64
}

type ChargeParams struct {
	MaxChargeTime   float64
	ChargeTimeScale float64
	LoopSection     string
	ReleaseSection  string
	// Multipliers applied at full charge; partial charge interpolates from 1.
	DamageMultiplier  float64
	PostureMultiplier float64
}

type MotionWarp struct {
	Enabled        bool
	MaxDistance    float64
	WarpTargetName string
}

// NotifyType is the kind of an authored timeline notify.
type NotifyType int

const (
	NotifyPhase NotifyType = iota
	NotifyWindowOpen
	NotifyWindowClose
)

// Notify is an event authored at a timestamp on an attack's timeline. The
// engine does not read notifies; the timeline player fires them.
type Notify struct {
	Time     float64
	Type     NotifyType
	Phase    AttackPhase
	Window   WindowKind
	Duration float64
}

// AttackDefinition is an immutable description of one attack. Definitions are
// referenced, never copied, by the engine.
type AttackDefinition struct {
	Name string
	Kind AttackKind

	BaseDamage      float64
	PostureDamage   float64
	HitStunDuration float64

	NextCombo            *AttackDefinition
	HeavyCombo           *AttackDefinition
	DirectionalFollowups map[Direction]*AttackDefinition

	Hold   HoldParams
	Charge ChargeParams

	ComboInputWindow float64
	MotionWarp       MotionWarp

	// Timeline data consumed by the animation collaborator.
	Montage  string
	Section  string
	Length   float64
	Notifies []Notify
}

// CanHold mirrors the authored hold flag; nil-safe.
func (d *AttackDefinition) CanHold() bool {
	return d != nil && d.Hold.CanHold
}

// Followup resolves the attack chained after d for an input kind and
// direction. Directional follow-ups win over the plain link for light input.
func (d *AttackDefinition) Followup(kind InputKind, dir Direction) *AttackDefinition {
	if d == nil {
		return nil
	}
	switch kind {
	case InputLight:
		if dir != DirNone {
			if f := d.DirectionalFollowups[dir]; f != nil {
				return f
			}
		}
		return d.NextCombo
	case InputHeavy:
		return d.HeavyCombo
	}
	return nil
}

func (d *AttackDefinition) String() string {
	if d == nil {
		return "<nil>"
	}
	return d.Name
}

// Moveset holds the attacks an actor starts chains from.
type Moveset struct {
	Light    *AttackDefinition
	Heavy    *AttackDefinition
	Counter  *AttackDefinition
	Finisher *AttackDefinition
}

// Starter returns the chain starter for an input kind.
func (m Moveset) Starter(kind InputKind) *AttackDefinition {
	switch kind {
	case InputLight:
		return m.Light
	case InputHeavy:
		return m.Heavy
	}
	return nil
}
