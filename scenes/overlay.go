package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/doomerang-combat/combat"
	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var overlayWindows = []combat.WindowKind{
	combat.WindowCombo,
	combat.WindowParry,
	combat.WindowHold,
	combat.WindowCounter,
}

// DrawArena outlines the arena bounds
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	w, h := float32(cfg.Lab.ArenaWidth), float32(cfg.Lab.ArenaHeight)
	outline(screen, 0, 0, w, h, cfg.DarkBlue)
}

// DrawCombatants draws bodies, weapon volumes, bars and the state readout
func DrawCombatants(e *ecs.ECS, screen *ebiten.Image) {
	components.Combat.Each(e.World, func(entry *donburi.Entry) {
		actor := components.Combat.Get(entry).Actor
		body := components.Object.Get(entry).Object

		vector.FillRect(screen, float32(body.X), float32(body.Y), float32(body.W), float32(body.H), stateColor(actor.State()), false)

		weapon := components.Weapon.Get(entry)
		if cfg.Debug.ShowWeapons && weapon.Object != nil {
			c := cfg.UI.WeaponColor
			if weapon.Enabled {
				c = cfg.UI.ActiveColor
			}
			drawObject(screen, weapon.Object, c)
		}

		x := float32(body.X + body.W/2 - cfg.UI.BarWidth/2)
		y := float32(body.Y) - float32(cfg.UI.BarHeight*2+cfg.UI.BarGap*2)
		drawBar(screen, x, y, actor.Posture()/actor.MaxPosture(), cfg.UI.PostureColor)
		drawBar(screen, x, y+float32(cfg.UI.BarHeight+cfg.UI.BarGap), actor.Health()/actor.MaxHealth(), cfg.UI.HealthColor)

		p := components.Presentation.Get(entry)
		ebitenutil.DebugPrintAt(screen, readout(actor, p), int(body.X)-8, int(body.Y+body.H)+4)
	})
}

// DrawHUD prints the controls and the dummy script
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	mode := "normal"
	if cfg.Debug.Slowmo {
		mode = "slowmo"
	}
	ebitenutil.DebugPrintAt(screen,
		"move WASD  light J  heavy K  block L  evade SPACE",
		4, 4)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("F1 script  F2 %s  F3 weapons  R restart", mode),
		4, 18)
}

func readout(actor *combat.Actor, p *components.PresentationData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %v\n", actor.Name, actor.State())
	if attack := actor.CurrentAttack(); attack != nil {
		fmt.Fprintf(&b, "%v %v x%d\n", attack, actor.CurrentPhase(), actor.ComboCount()+1)
	}
	if hold := actor.Hold(); hold.IsHolding {
		fmt.Fprintf(&b, "hold %.2fs rate %.2f\n", hold.HeldTime, hold.CurrentPlayRate)
	}

	var open []string
	for _, kind := range overlayWindows {
		if actor.IsWindowOpen(kind) {
			open = append(open, kind.String())
		}
	}
	if len(open) > 0 {
		b.WriteString(strings.Join(open, " ") + "\n")
	}
	if p.ReactionTimer > 0 {
		fmt.Fprintf(&b, "%v", p.Reaction)
		if p.Reaction == combat.ReactionHit || p.Reaction == combat.ReactionBlock {
			fmt.Fprintf(&b, " -%.0f", p.LastDamage)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func stateColor(s combat.CombatState) color.Color {
	switch s {
	case combat.Attacking, combat.HoldingLightAttack, combat.ChargingHeavyAttack:
		return cfg.Orange
	case combat.Blocking, combat.Parrying, combat.CounterWindowActive:
		return cfg.LightGreen
	case combat.Evading:
		return cfg.White
	case combat.GuardBroken:
		return cfg.Yellow
	case combat.Dead:
		return cfg.Red
	default:
		return cfg.UI.BodyColor
	}
}

func drawBar(screen *ebiten.Image, x, y float32, fill float64, c color.Color) {
	if fill < 0 {
		fill = 0
	}
	if fill > 1 {
		fill = 1
	}
	w, h := float32(cfg.UI.BarWidth), float32(cfg.UI.BarHeight)
	vector.FillRect(screen, x, y, w, h, cfg.UI.BarBgColor, false)
	vector.FillRect(screen, x, y, w*float32(fill), h, c, false)
}

func drawObject(screen *ebiten.Image, obj *resolv.Object, c color.Color) {
	outline(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), c)
}

func outline(screen *ebiten.Image, x, y, w, h float32, c color.Color) {
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
