package combat

import (
	"testing"

	"github.com/yohamta/donburi/features/math"
)

func TestExecuteAttackOnlyFromIdle(t *testing.T) {
	for _, s := range allStates {
		if s == Idle {
			continue
		}
		a, _, f := newTestActor()
		a.SetState(s)

		if a.ExecuteAttack(f.light1) {
			t.Errorf("Expected ExecuteAttack to fail from %v", s)
		}
		if a.State() != s {
			t.Errorf("Expected state %v to be unchanged, got %v", s, a.State())
		}
		if a.CurrentAttack() != nil {
			t.Errorf("Expected no current attack from %v, got %v", s, a.CurrentAttack())
		}
	}
}

func TestExecuteAttackKeepsRunningAttack(t *testing.T) {
	a, _, f := newTestActor()
	a.ExecuteAttack(f.light1)

	if a.ExecuteAttack(f.heavy1) {
		t.Error("Expected second ExecuteAttack to fail")
	}
	expectAttack(t, a, f.light1)
}

func TestExecuteAttackNil(t *testing.T) {
	a, rec, _ := newTestActor()
	if a.ExecuteAttack(nil) {
		t.Error("Expected nil attack to be rejected")
	}
	expectState(t, a, Idle)
	if len(rec.cmds) != 0 {
		t.Errorf("Expected no commands, got %d", len(rec.cmds))
	}
}

func TestExecuteAttackStartsAttack(t *testing.T) {
	a, rec, f := newTestActor()
	if !a.ExecuteAttack(f.light1) {
		t.Fatal("Expected ExecuteAttack to succeed from Idle")
	}
	expectState(t, a, Attacking)
	expectAttack(t, a, f.light1)
	if a.CurrentPhase() != PhaseNone {
		t.Errorf("Expected phase None, got %v", a.CurrentPhase())
	}
	if rec.count(CmdResetHitTracking) != 1 {
		t.Errorf("Expected hit tracking reset, got %d", rec.count(CmdResetHitTracking))
	}
	play, ok := rec.last(CmdPlayAttack)
	if !ok || play.Attack != f.light1 || play.Rate != 1 {
		t.Errorf("Expected PlayAttack light1 at rate 1, got %+v", play)
	}
	if rec.count(CmdSetWarpTarget) != 0 {
		t.Error("Expected no warp without a target")
	}
}

func TestStopCurrentAttackFromAnyState(t *testing.T) {
	for _, s := range allStates {
		a, _, f := newTestActor()
		a.ExecuteAttack(f.light1)
		a.SetState(s)

		a.StopCurrentAttack()

		expectState(t, a, Idle)
		if a.CurrentAttack() != nil {
			t.Errorf("Expected no current attack after stop from %v", s)
		}
	}
}

func TestStopCurrentAttackDuringActiveDisablesHits(t *testing.T) {
	a, rec, f := newTestActor()
	a.ExecuteAttack(f.light1)
	a.TransitionToPhase(PhaseActive)
	rec.reset()

	a.StopCurrentAttack()

	if rec.count(CmdDisableHitDetection) != 1 {
		t.Errorf("Expected hit detection disabled, got %d", rec.count(CmdDisableHitDetection))
	}
	if rec.count(CmdStopAttack) != 1 {
		t.Errorf("Expected StopAttack, got %d", rec.count(CmdStopAttack))
	}
}

func TestExecuteComboAttackNeedsAttacking(t *testing.T) {
	a, _, f := newTestActor()
	if a.ExecuteComboAttack(f.light2) {
		t.Error("Expected combo to fail from Idle")
	}

	a.ExecuteAttack(f.light1)
	if !a.ExecuteComboAttack(f.light2) {
		t.Fatal("Expected combo to succeed while attacking")
	}
	expectAttack(t, a, f.light2)
	if a.ComboCount() != 1 {
		t.Errorf("Expected combo count 1, got %d", a.ComboCount())
	}
}

func TestMotionWarpTarget(t *testing.T) {
	a, rec, f := newTestActor()
	enemy := NewActor("enemy", testSettings(), f.moveset, nil)
	a.SetTarget(enemy)
	a.ExecuteAttack(f.light1)
	a.TransitionToPhase(PhaseRecovery)
	a.OpenComboWindow(0)
	a.SetMovementInput(math.Vec2{X: 0, Y: 1})

	a.OnLightAttackPressed()

	expectAttack(t, a, f.lunge)
	warp, ok := rec.last(CmdSetWarpTarget)
	if !ok || warp.Target != Combatant(enemy) {
		t.Errorf("Expected warp target enemy, got %+v", warp)
	}
}

func TestOnWeaponHitEmitsApplyHit(t *testing.T) {
	a, rec, f := newTestActor()
	enemy := NewActor("enemy", testSettings(), f.moveset, nil)
	a.ExecuteAttack(f.light1)

	a.OnWeaponHit(enemy)

	hit, ok := rec.last(CmdApplyHit)
	if !ok {
		t.Fatal("Expected ApplyHit")
	}
	if hit.Target != Combatant(enemy) {
		t.Errorf("Expected enemy as target, got %v", hit.Target)
	}
	if hit.Hit.Damage != 10 || hit.Hit.PostureDamage != 8 || hit.Hit.IsCounter {
		t.Errorf("Expected plain 10/8 hit, got %+v", hit.Hit)
	}
	if enemy.Health() != 100 {
		t.Errorf("Expected target untouched until routed, got %v", enemy.Health())
	}
}

func TestOnWeaponHitIgnoresSelfAndNil(t *testing.T) {
	a, rec, f := newTestActor()
	a.ExecuteAttack(f.light1)
	rec.reset()

	a.OnWeaponHit(a)
	a.OnWeaponHit(nil)
	var nilActor *Actor
	a.OnWeaponHit(nilActor)

	if rec.count(CmdApplyHit) != 0 {
		t.Errorf("Expected no hits, got %d", rec.count(CmdApplyHit))
	}
}

func TestTimelineCompleteEndsChain(t *testing.T) {
	a, _, f := newTestActor()
	a.ExecuteAttack(f.light1)

	a.OnAttackTimelineComplete()

	expectState(t, a, Idle)
	expectAttack(t, a, nil)
}
