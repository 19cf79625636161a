package combat

import (
	"log"

	"github.com/yohamta/donburi/features/math"
)

// Settings is the immutable tuning record an actor is built from.
type Settings struct {
	MaxHealth  float64 `json:"maxHealth"`
	MaxPosture float64 `json:"maxPosture"`

	// Posture regen per second, selected by state.
	PostureRegenAttacking   float64 `json:"postureRegenAttacking"`
	PostureRegenNotBlocking float64 `json:"postureRegenNotBlocking"`
	PostureRegenIdle        float64 `json:"postureRegenIdle"`
	PostureRegenDelay       float64 `json:"postureRegenDelay"`

	GuardBreakStunDuration    float64 `json:"guardBreakStunDuration"`
	GuardBreakRecoveryPercent float64 `json:"guardBreakRecoveryPercent"`

	// HoldBlendSpeed is in alpha units per second, used when an attack does
	// not author its own ease durations.
	HoldBlendSpeed float64 `json:"holdBlendSpeed"`

	ParryTimingWindow       float64 `json:"parryTimingWindow"`
	ParryStateDuration      float64 `json:"parryStateDuration"`
	CounterStateDuration    float64 `json:"counterStateDuration"`
	ParriedCounterWindow    float64 `json:"parriedCounterWindow"`
	ParryPostureDamage      float64 `json:"parryPostureDamage"`
	CounterDamageMultiplier float64 `json:"counterDamageMultiplier"`

	BlockDamageRatio       float64 `json:"blockDamageRatio"`
	BlockPostureMultiplier float64 `json:"blockPostureMultiplier"`

	EvadeDuration       float64 `json:"evadeDuration"`
	EvadeInvulnDuration float64 `json:"evadeInvulnDuration"`

	MovementDeadzone float64 `json:"movementDeadzone"`
}

// Actor owns one combatant's full mutable combat state. It is not safe for
// concurrent use; one simulation thread drives it.
type Actor struct {
	Name string

	settings Settings
	moveset  Moveset
	sink     CommandSink
	now      float64

	state      CombatState
	phase      AttackPhase
	windows    WindowSet
	current    *AttackDefinition
	comboCount int
	buffer     InputBuffer
	hold       HoldState
	posture    Ledger
	health     Ledger

	held      [inputKindCount]bool
	blockHeld bool
	movement  math.Vec2
	target    Combatant

	counterStrike     bool
	damageMultiplier  float64
	postureMultiplier float64

	stunEndsAt     float64
	evadeEndsAt    float64
	invulnEndsAt   float64
	parryEndsAt    float64
	counterEndsAt  float64
	blockPressedAt float64
	hasBlockPress  bool
	lastPostureHit float64
	hasPostureHit  bool
}

// NewActor creates an idle actor at full health and posture. sink may be nil.
func NewActor(name string, settings Settings, moveset Moveset, sink CommandSink) *Actor {
	a := &Actor{
		Name:     name,
		settings: settings,
		moveset:  moveset,
		sink:     sink,
		posture:  NewLedger(settings.MaxPosture),
		health:   NewLedger(settings.MaxHealth),
	}
	a.hold.Reset()
	a.resetMultipliers()
	return a
}

// SetSink replaces the command sink.
func (a *Actor) SetSink(sink CommandSink) { a.sink = sink }

// SetTarget records the target found by the targeting collaborator. It is
// used for motion warping, parry checks and finishers.
func (a *Actor) SetTarget(target Combatant) { a.target = target }

func (a *Actor) Target() Combatant { return a.target }

// SetMovementInput stores the actor-local movement vector.
func (a *Actor) SetMovementInput(v math.Vec2) {
	a.movement = v
	if a.hold.IsHolding {
		if dir := a.Direction(); dir != DirNone {
			a.hold.QueuedDirection = dir
		}
	}
}

// Direction is the resolved direction of the current movement input.
func (a *Actor) Direction() Direction {
	return DirectionFromInput(a.movement, a.settings.MovementDeadzone)
}

// Queries.

func (a *Actor) State() CombatState                 { return a.state }
func (a *Actor) CurrentPhase() AttackPhase          { return a.phase }
func (a *Actor) CurrentAttack() *AttackDefinition   { return a.current }
func (a *Actor) ComboCount() int                    { return a.comboCount }
func (a *Actor) Now() float64                       { return a.now }
func (a *Actor) Posture() float64                   { return a.posture.Current() }
func (a *Actor) MaxPosture() float64                { return a.posture.Max() }
func (a *Actor) Health() float64                    { return a.health.Current() }
func (a *Actor) MaxHealth() float64                 { return a.health.Max() }
func (a *Actor) IsHolding() bool                    { return a.hold.IsHolding }
func (a *Actor) Hold() HoldState                    { return a.hold }
func (a *Actor) IsWindowOpen(kind WindowKind) bool  { return a.windows.IsOpen(kind) }
func (a *Actor) IsInParryWindow() bool              { return a.windows.IsOpen(WindowParry) }
func (a *Actor) IsInCounterWindow() bool            { return a.windows.IsOpen(WindowCounter) }
func (a *Actor) IsBuffered(kind InputKind) bool     { return a.buffer.IsBuffered(kind) }
func (a *Actor) IsButtonHeld(kind InputKind) bool   { return kind >= 0 && kind < inputKindCount && a.held[kind] }
func (a *Actor) Settings() Settings                 { return a.settings }
func (a *Actor) Moveset() Moveset                   { return a.moveset }
func (a *Actor) CanTransitionTo(s CombatState) bool { return canTransition(a.state, s) }

// CanCombo mirrors the combo window.
func (a *Actor) CanCombo() bool { return a.windows.IsOpen(WindowCombo) }

// CanAttack is true only from Idle.
func (a *Actor) CanAttack() bool { return a.state == Idle }

// CanBlock is true from Idle or while a counter is available.
func (a *Actor) CanBlock() bool {
	return a.state == Idle || a.state == CounterWindowActive
}

// IsInvulnerable reports evade invulnerability.
func (a *Actor) IsInvulnerable() bool {
	return a.state == Evading && a.now < a.invulnEndsAt
}

// SetState performs a raw transition without validating it. Callers normally
// gate with CanTransitionTo.
func (a *Actor) SetState(s CombatState) {
	if s < 0 || s >= stateCount {
		return
	}
	prev := a.state
	a.state = s

	if isAttackState(prev) && !isAttackState(s) {
		a.exitHold()
	}
	if (prev == HoldingLightAttack || prev == ChargingHeavyAttack) && s == Attacking {
		a.hold.Deactivate()
	}

	switch s {
	case Idle:
		a.windows.CloseAll()
		a.buffer.Clear()
		a.clearAttack()
		a.comboCount = 0
	case GuardBroken:
		a.clearAttack()
		a.buffer.Clear()
		a.stunEndsAt = a.now + a.settings.GuardBreakStunDuration
		a.emit(Command{Type: CmdPlayReaction, Reaction: ReactionGuardBreak, Duration: a.settings.GuardBreakStunDuration})
	case Evading:
		a.evadeEndsAt = a.now + a.settings.EvadeDuration
		a.invulnEndsAt = a.now + a.settings.EvadeInvulnDuration
	case Parrying:
		a.parryEndsAt = a.now + a.settings.ParryStateDuration
	case CounterWindowActive:
		a.counterEndsAt = a.now + a.settings.CounterStateDuration
	case Dead:
		a.windows.CloseAll()
		a.buffer.Clear()
		a.clearAttack()
		a.comboCount = 0
		log.Printf("[combat] %s: dead", a.Name)
		a.emit(Command{Type: CmdPlayReaction, Reaction: ReactionDeath})
	}
}

// clearAttack drops the current attack and its phase.
func (a *Actor) clearAttack() {
	a.setPhase(PhaseNone)
	if a.current != nil {
		a.emit(Command{Type: CmdStopAttack, Attack: a.current})
	}
	a.current = nil
	a.counterStrike = false
	a.resetMultipliers()
}

func (a *Actor) resetMultipliers() {
	a.damageMultiplier = 1
	a.postureMultiplier = 1
}

func present(c Combatant) bool {
	if c == nil {
		return false
	}
	if actor, ok := c.(*Actor); ok && actor == nil {
		return false
	}
	return true
}
