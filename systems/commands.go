package systems

import (
	"log"
	gomath "math"

	"github.com/automoto/doomerang-combat/combat"
	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

// CombatCommand is a command on its way to the collaborators, together with
// the entity whose actor emitted it.
type CombatCommand struct {
	Source *donburi.Entry
	combat.Command
}

// CombatCommandEvent carries routed commands. Subscribers see every command
// after the built-in router has applied it.
var CombatCommandEvent = events.NewEventType[CombatCommand]()

// Package-level router registry, one subscription per world.
// Note: safe in the single-threaded game loop.
var routedWorlds = map[donburi.World]bool{}

func ensureRouter(w donburi.World) {
	if routedWorlds[w] {
		return
	}
	CombatCommandEvent.Subscribe(w, routeCommand)
	routedWorlds[w] = true
}

// DispatchCommands drains the world's command queue through the router. Each
// round publishes what is pending and processes it; commands emitted while
// handling a round wait for the next one. It returns how many commands were
// routed.
func DispatchCommands(w donburi.World) int {
	queueEntry, ok := components.CommandQueue.First(w)
	if !ok {
		return 0
	}
	ensureRouter(w)

	routed := 0
	for round := 0; round < cfg.Lab.MaxDispatchRounds; round++ {
		queue := components.CommandQueue.Get(queueEntry)
		if len(queue.Pending) == 0 {
			return routed
		}
		batch := queue.Pending
		queue.Pending = nil

		for _, qc := range batch {
			if !w.Valid(qc.Source) {
				continue
			}
			CombatCommandEvent.Publish(w, CombatCommand{Source: w.Entry(qc.Source), Command: qc.Command})
			routed++
		}
		CombatCommandEvent.ProcessEvents(w)
	}

	if len(components.CommandQueue.Get(queueEntry).Pending) > 0 {
		log.Printf("[router] Warning: commands still pending after %d rounds", cfg.Lab.MaxDispatchRounds)
	}
	return routed
}

func routeCommand(w donburi.World, ev CombatCommand) {
	src := ev.Source
	if src == nil || !src.Valid() || !src.HasComponent(components.Combat) {
		return
	}
	actor := components.Combat.Get(src).Actor
	if cfg.Debug.LogCommands {
		log.Printf("[router] %s: %v %v", actor.Name, ev.Type, ev.Attack)
	}

	switch ev.Type {
	case combat.CmdPlayAttack:
		tl := components.Timeline.Get(src)
		rate := ev.Rate
		if rate <= 0 {
			rate = 1
		}
		*tl = components.TimelineData{
			Attack:  ev.Attack,
			Section: ev.Section,
			Rate:    rate,
			Playing: ev.Attack != nil,
		}
	case combat.CmdPlaySection:
		tl := components.Timeline.Get(src)
		if ev.Attack == nil || tl.Attack != ev.Attack {
			return
		}
		tl.Section = ev.Section
		tl.Looping = ev.Section != "" && ev.Section == ev.Attack.Charge.LoopSection
		if ev.Rate > 0 {
			tl.Rate = ev.Rate
		}
	case combat.CmdSetPlayRate:
		components.Timeline.Get(src).Rate = ev.Rate
	case combat.CmdStopAttack:
		tl := components.Timeline.Get(src)
		if ev.Attack == nil || tl.Attack == ev.Attack {
			*tl = components.TimelineData{Rate: 1}
		}
	case combat.CmdEnableHitDetection:
		weapon := components.Weapon.Get(src)
		weapon.Enabled = true
		weapon.Attack = ev.Attack
	case combat.CmdDisableHitDetection:
		weapon := components.Weapon.Get(src)
		weapon.Enabled = false
		weapon.Attack = nil
	case combat.CmdResetHitTracking:
		weapon := components.Weapon.Get(src)
		for k := range weapon.HitTargets {
			delete(weapon.HitTargets, k)
		}
	case combat.CmdSetWarpTarget:
		if target := entryForCombatant(w, ev.Target); target != nil && ev.Attack != nil {
			warpTowards(src, target, ev.Attack.MotionWarp.MaxDistance)
		}
	case combat.CmdApplyHit:
		if ev.Target == nil {
			return
		}
		dealt := ev.Target.ApplyDamage(ev.Hit)
		if target := entryForCombatant(w, ev.Target); target != nil {
			p := components.Presentation.Get(target)
			p.LastDamage = dealt
			p.Hits++
		}
	case combat.CmdParried:
		if ev.Target != nil {
			ev.Target.OnParried(actor)
		}
	case combat.CmdStartFinisher:
		if ev.Target != nil && !ev.Target.ExecuteFinisher(actor, ev.Attack) {
			log.Printf("[router] %s: finisher refused", actor.Name)
		}
	case combat.CmdPlayEvade:
		evade(src, ev.Direction)
		components.Presentation.Get(src).LastEvade = ev.Direction
	case combat.CmdPlayReaction:
		p := components.Presentation.Get(src)
		p.Reaction = ev.Reaction
		p.ReactionTimer = cfg.Lab.ReactionDisplayTime
		if ev.Reaction == combat.ReactionGuardBreak || ev.Reaction == combat.ReactionDeath {
			log.Printf("[router] %s: %v", actor.Name, ev.Reaction)
		}
	}
}

// entryForCombatant finds the entity that owns c.
func entryForCombatant(w donburi.World, c combat.Combatant) *donburi.Entry {
	actor, ok := c.(*combat.Actor)
	if !ok || actor == nil {
		return nil
	}
	var found *donburi.Entry
	components.Combat.Each(w, func(entry *donburi.Entry) {
		if found == nil && components.Combat.Get(entry).Actor == actor {
			found = entry
		}
	})
	return found
}

// warpTowards slides src toward target until the bodies are WarpStandoff
// apart, moving at most maxDistance. It also turns src to face the target.
func warpTowards(src, target *donburi.Entry, maxDistance float64) {
	body := components.Object.Get(src).Object
	other := components.Object.Get(target).Object

	dx := (other.X + other.W/2) - (body.X + body.W/2)
	dy := (other.Y + other.H/2) - (body.Y + body.H/2)
	dist := gomath.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	ux, uy := dx/dist, dy/dist
	components.Facing.Get(src).Dir = math.Vec2{X: ux, Y: uy}

	// Contact distance along the warp direction for two boxes.
	contact := gomath.Abs(ux)*(body.W+other.W)/2 + gomath.Abs(uy)*(body.H+other.H)/2 + cfg.Lab.WarpStandoff
	move := dist - contact
	if move <= 0 {
		return
	}
	if maxDistance > 0 && move > maxDistance {
		move = maxDistance
	}
	moveBody(body, ux*move, uy*move)
}

// evade displaces src in the facing-relative direction.
func evade(src *donburi.Entry, dir combat.Direction) {
	body := components.Object.Get(src).Object
	f := components.Facing.Get(src).Dir
	var vx, vy float64
	switch dir {
	case combat.DirForward:
		vx, vy = f.X, f.Y
	case combat.DirBack:
		vx, vy = -f.X, -f.Y
	case combat.DirLeft:
		vx, vy = f.Y, -f.X
	case combat.DirRight:
		vx, vy = -f.Y, f.X
	default:
		return
	}
	moveBody(body, vx*cfg.Lab.EvadeDistance, vy*cfg.Lab.EvadeDistance)
}

// moveBody moves a body and keeps it inside the arena.
func moveBody(body *resolv.Object, dx, dy float64) {
	body.X = clamp(body.X+dx, 0, float64(cfg.Lab.ArenaWidth)-body.W)
	body.Y = clamp(body.Y+dy, 0, float64(cfg.Lab.ArenaHeight)-body.H)
	body.Update()
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return gomath.Max(lo, gomath.Min(v, hi))
}
