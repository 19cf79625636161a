package combat

// CommandType identifies a side effect emitted to collaborators.
type CommandType int

const (
	CmdPlayAttack CommandType = iota
	CmdPlaySection
	CmdSetPlayRate
	CmdStopAttack
	CmdEnableHitDetection
	CmdDisableHitDetection
	CmdResetHitTracking
	CmdSetWarpTarget
	CmdApplyHit
	CmdParried
	CmdStartFinisher
	CmdPlayEvade
	CmdPlayReaction
)

func (t CommandType) String() string {
	switch t {
	case CmdPlayAttack:
		return "PlayAttack"
	case CmdPlaySection:
		return "PlaySection"
	case CmdSetPlayRate:
		return "SetPlayRate"
	case CmdStopAttack:
		return "StopAttack"
	case CmdEnableHitDetection:
		return "EnableHitDetection"
	case CmdDisableHitDetection:
		return "DisableHitDetection"
	case CmdResetHitTracking:
		return "ResetHitTracking"
	case CmdSetWarpTarget:
		return "SetWarpTarget"
	case CmdApplyHit:
		return "ApplyHit"
	case CmdParried:
		return "Parried"
	case CmdStartFinisher:
		return "StartFinisher"
	case CmdPlayEvade:
		return "PlayEvade"
	case CmdPlayReaction:
		return "PlayReaction"
	default:
		return "Unknown"
	}
}

// Reaction is the hit reaction an animation collaborator should play.
type Reaction int

const (
	ReactionHit Reaction = iota
	ReactionBlock
	ReactionDeflect
	ReactionParried
	ReactionGuardBreak
	ReactionFinished
	ReactionDeath
)

func (r Reaction) String() string {
	switch r {
	case ReactionHit:
		return "Hit"
	case ReactionBlock:
		return "Block"
	case ReactionDeflect:
		return "Deflect"
	case ReactionParried:
		return "Parried"
	case ReactionGuardBreak:
		return "GuardBreak"
	case ReactionFinished:
		return "Finished"
	case ReactionDeath:
		return "Death"
	default:
		return "Unknown"
	}
}

// HitInfo describes one landed hit.
type HitInfo struct {
	Attacker      Combatant
	Attack        *AttackDefinition
	Damage        float64
	PostureDamage float64
	HitStun       float64
	IsCounter     bool
}

// Command carries everything a collaborator needs to act without calling
// back into the emitting actor.
type Command struct {
	Type      CommandType
	Attack    *AttackDefinition
	Section   string
	Rate      float64
	Target    Combatant
	Hit       HitInfo
	Direction Direction
	Reaction  Reaction
	Duration  float64
}

// CommandSink receives commands emitted by an actor.
type CommandSink interface {
	Emit(cmd Command)
}

// CommandFunc adapts a function to CommandSink.
type CommandFunc func(cmd Command)

func (f CommandFunc) Emit(cmd Command) { f(cmd) }

// Combatant is the capability any fighter exposes to others. The query
// methods are what an actor reads from another; the mutating methods are only
// invoked by the command router, never by another actor directly.
type Combatant interface {
	State() CombatState
	CurrentPhase() AttackPhase
	IsInParryWindow() bool
	IsInCounterWindow() bool

	ApplyDamage(hit HitInfo) float64
	ApplyPostureDamage(amount float64, attacker Combatant) bool
	OnParried(by Combatant)
	ExecuteFinisher(attacker Combatant, finisher *AttackDefinition) bool
}

func (a *Actor) emit(cmd Command) {
	if a.sink == nil {
		return
	}
	a.sink.Emit(cmd)
}
