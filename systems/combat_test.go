package systems

import (
	"testing"

	"github.com/automoto/doomerang-combat/combat"
	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
)

const testDT = 1.0 / 60

func TestUpdateCombatRunsTapToCompletion(t *testing.T) {
	w, arena := newTestArena(t)
	components.Sparring.Get(arena.Dummy).Enabled = false
	player := actorOf(arena.Player)
	ctrl := components.Control.Get(arena.Player)

	ctrl.Current[cfg.ActionLight] = true
	UpdateCombat(w, testDT)
	if player.State() != combat.Attacking {
		t.Fatalf("Expected Attacking after the press, got %v", player.State())
	}
	if !components.Timeline.Get(arena.Player).Playing {
		t.Fatal("Expected the attack timeline playing")
	}

	ctrl.Current[cfg.ActionLight] = false
	for i := 0; i < 60; i++ {
		UpdateCombat(w, testDT)
	}

	if player.State() != combat.Idle || player.CurrentAttack() != nil {
		t.Errorf("Expected Idle after the swing, got %v with %v", player.State(), player.CurrentAttack())
	}
	if components.Weapon.Get(arena.Player).Enabled {
		t.Error("Expected weapon disabled after the swing")
	}
}

func TestUpdateCombatComboChain(t *testing.T) {
	w, arena := newTestArena(t)
	components.Sparring.Get(arena.Dummy).Enabled = false
	player := actorOf(arena.Player)
	ctrl := components.Control.Get(arena.Player)

	// Press, then tap again while the first swing is still in Windup
	ctrl.Current[cfg.ActionLight] = true
	UpdateCombat(w, testDT)
	ctrl.Current[cfg.ActionLight] = false
	UpdateCombat(w, testDT)
	ctrl.Current[cfg.ActionLight] = true
	UpdateCombat(w, testDT)
	ctrl.Current[cfg.ActionLight] = false

	second := player.Moveset().Light.NextCombo
	for i := 0; i < 40 && player.CurrentAttack() != second; i++ {
		UpdateCombat(w, testDT)
	}
	if player.CurrentAttack() != second {
		t.Fatalf("Expected the buffered press to chain into %v, got %v", second, player.CurrentAttack())
	}
	if player.ComboCount() != 1 {
		t.Errorf("Expected combo count 1, got %d", player.ComboCount())
	}
}

func TestUpdateCombatLandsHitsInRange(t *testing.T) {
	w, arena := newTestArena(t)
	components.Sparring.Get(arena.Dummy).Enabled = false
	player, dummy := actorOf(arena.Player), actorOf(arena.Dummy)
	body := components.Object.Get(arena.Player).Object
	moveTo(arena.Dummy, body.X+body.W+12, body.Y)

	ctrl := components.Control.Get(arena.Player)
	ctrl.Current[cfg.ActionLight] = true
	UpdateCombat(w, testDT)
	ctrl.Current[cfg.ActionLight] = false
	for i := 0; i < 30; i++ {
		UpdateCombat(w, testDT)
	}

	want := dummy.MaxHealth() - player.Moveset().Light.BaseDamage
	if dummy.Health() != want {
		t.Errorf("Expected one hit for health %v, got %v", want, dummy.Health())
	}
	if p := components.Presentation.Get(arena.Dummy); p.Hits != 1 {
		t.Errorf("Expected one recorded hit, got %d", p.Hits)
	}
}

func TestUpdatePresentationCountsDown(t *testing.T) {
	w, arena := newTestArena(t)
	p := components.Presentation.Get(arena.Player)
	p.Reaction = combat.ReactionBlock
	p.ReactionTimer = 0.1

	UpdatePresentation(w, 0.25)

	if p.ReactionTimer != 0 {
		t.Errorf("Expected expired reaction, got %v", p.ReactionTimer)
	}
}
