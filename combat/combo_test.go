package combat

import (
	"testing"

	"github.com/yohamta/donburi/features/math"
)

func TestBufferPriority(t *testing.T) {
	var b InputBuffer
	b.Record(InputLight, false, 0)
	b.Record(InputHeavy, false, 0.1)
	if q, _ := b.Winner(); q.Kind != InputHeavy {
		t.Errorf("Expected heavy to displace light, got %v", q.Kind)
	}

	b.Clear()
	b.Record(InputHeavy, false, 0)
	b.Record(InputLight, false, 0.1)
	if q, _ := b.Winner(); q.Kind != InputHeavy {
		t.Errorf("Expected light not to displace heavy, got %v", q.Kind)
	}

	b.Record(InputEvade, false, 0.2)
	if q, _ := b.Winner(); q.Kind != InputEvade {
		t.Errorf("Expected evade to win, got %v", q.Kind)
	}

	b.Clear()
	if _, ok := b.Winner(); ok {
		t.Error("Expected no winner after Clear")
	}
}

func TestBufferOverwritesSameKind(t *testing.T) {
	var b InputBuffer
	b.Record(InputLight, true, 0)
	b.Record(InputLight, false, 0.5)

	if b.Len() != 1 {
		t.Fatalf("Expected one entry, got %d", b.Len())
	}
	q, _ := b.Pending(InputLight)
	if q.InComboWindow || q.PressedAt != 0.5 {
		t.Errorf("Expected latest press to win, got %+v", q)
	}

	b.Consume(InputLight)
	if b.IsBuffered(InputLight) {
		t.Error("Expected light consumed")
	}
}

func TestCanBeCancelledBy(t *testing.T) {
	light := QueuedAction{Kind: InputLight, Priority: InputLight.Priority()}
	heavy := QueuedAction{Kind: InputHeavy, Priority: InputHeavy.Priority()}
	if !light.CanBeCancelledBy(heavy) {
		t.Error("Expected heavy to cancel light")
	}
	if heavy.CanBeCancelledBy(light) {
		t.Error("Expected light not to cancel heavy")
	}
	if !light.CanBeCancelledBy(light) {
		t.Error("Expected equal priority to cancel")
	}
}

func TestComboInsideWindowExecutesImmediately(t *testing.T) {
	a, _, f := newTestActor()
	a.OnLightAttackPressed()
	expectAttack(t, a, f.light1)
	a.OnLightAttackReleased()
	a.TransitionToPhase(PhaseRecovery)

	a.OpenComboWindow(0.4)
	a.OnLightAttackPressed()

	expectState(t, a, Attacking)
	expectAttack(t, a, f.light2)
	if a.ComboCount() != 1 {
		t.Errorf("Expected combo count 1, got %d", a.ComboCount())
	}
	if a.IsBuffered(InputLight) {
		t.Error("Expected buffer consumed by the combo")
	}
}

func TestInWindowPressDuringActiveWaitsForRecovery(t *testing.T) {
	a, rec, f := newTestActor()
	a.OnLightAttackPressed()
	a.OnLightAttackReleased()
	a.TransitionToPhase(PhaseActive)
	a.OpenComboWindow(0.3)

	a.OnLightAttackPressed()

	expectAttack(t, a, f.light1)
	if a.CurrentPhase() != PhaseActive {
		t.Errorf("Expected the live swing to stay Active, got %v", a.CurrentPhase())
	}
	if rec.count(CmdDisableHitDetection) != 0 {
		t.Error("Expected hit detection to stay on")
	}
	if q, ok := a.buffer.Pending(InputLight); !ok || !q.InComboWindow {
		t.Fatalf("Expected tagged press buffered, got %+v", q)
	}

	a.TransitionToPhase(PhaseRecovery)

	expectAttack(t, a, f.light2)
	if a.ComboCount() != 1 {
		t.Errorf("Expected combo count 1, got %d", a.ComboCount())
	}
}

func TestCancelRecoveryOutsideRecoveryIsRejected(t *testing.T) {
	a, _, f := newTestActor()
	a.ExecuteAttack(f.light1)
	a.TransitionToPhase(PhaseWindup)
	a.OpenComboWindow(0.3)
	a.OnLightAttackPressed()

	if a.CancelRecoveryAndExecuteCombo() {
		t.Error("Expected no cancel during Windup")
	}
	expectAttack(t, a, f.light1)
}

func TestPressOutsideWindowIsBuffered(t *testing.T) {
	a, _, f := newTestActor()
	a.OnLightAttackPressed()
	a.OnLightAttackReleased()

	a.OnLightAttackPressed()

	expectAttack(t, a, f.light1)
	q, ok := a.buffer.Pending(InputLight)
	if !ok {
		t.Fatal("Expected light press buffered")
	}
	if q.InComboWindow {
		t.Error("Expected press tagged outside the window")
	}

	// The tag is a snapshot; opening the window later does not re-run it.
	a.OpenComboWindow(0.4)
	expectAttack(t, a, f.light1)
	if q, _ := a.buffer.Pending(InputLight); q.InComboWindow {
		t.Error("Expected tag to stay false")
	}
}

func TestPressInWindowWithoutFollowupStaysBuffered(t *testing.T) {
	a, _, f := newTestActor()
	a.ExecuteAttack(f.light3)
	a.OpenComboWindow(0.4)

	a.OnLightAttackPressed()

	expectAttack(t, a, f.light3)
	q, ok := a.buffer.Pending(InputLight)
	if !ok || !q.InComboWindow {
		t.Errorf("Expected in-window press buffered, got %+v", q)
	}
}

func TestBufferedPressRunsAtRecovery(t *testing.T) {
	a, _, f := newTestActor()
	a.OnLightAttackPressed()
	a.OnLightAttackReleased()
	a.OnLightAttackPressed()
	a.TransitionToPhase(PhaseRecovery)

	a.OnAttackPhaseEnd(PhaseRecovery)

	expectState(t, a, Attacking)
	expectAttack(t, a, f.light2)
	if a.ComboCount() != 1 {
		t.Errorf("Expected combo count 1, got %d", a.ComboCount())
	}
}

func TestRecoveryPicksHigherPriority(t *testing.T) {
	a, _, f := newTestActor()
	a.ExecuteAttack(f.light1)
	a.OnLightAttackPressed()
	a.OnHeavyAttackPressed()

	a.ProcessRecoveryComplete()

	expectAttack(t, a, f.heavy2)
}

func TestDirectionalFollowup(t *testing.T) {
	a, _, f := newTestActor()
	a.ExecuteAttack(f.light1)
	a.TransitionToPhase(PhaseRecovery)
	a.OpenComboWindow(0)
	a.SetMovementInput(math.Vec2{X: 0.1, Y: 0.9})

	a.OnLightAttackPressed()
	expectAttack(t, a, f.lunge)

	b, _, _ := newTestActor()
	b.ExecuteAttack(f.light1)
	b.TransitionToPhase(PhaseRecovery)
	b.OpenComboWindow(0)
	b.SetMovementInput(math.Vec2{X: 0.05, Y: 0.05})

	b.OnLightAttackPressed()
	if b.CurrentAttack().Name != "light2" {
		t.Errorf("Expected deadzone input to use NextCombo, got %v", b.CurrentAttack())
	}
}

func TestChainEndRestartsFromStarter(t *testing.T) {
	a, _, f := newTestActor()
	a.ExecuteAttack(f.light3)
	a.OnLightAttackPressed()

	a.ProcessRecoveryComplete()

	expectState(t, a, Attacking)
	expectAttack(t, a, f.light1)
	if a.ComboCount() != 0 {
		t.Errorf("Expected a fresh chain, got combo count %d", a.ComboCount())
	}
}

func TestStopClearsBuffer(t *testing.T) {
	a, _, f := newTestActor()
	a.ExecuteAttack(f.light1)
	a.OnHeavyAttackPressed()

	a.StopCurrentAttack()

	if a.IsBuffered(InputHeavy) {
		t.Error("Expected buffer cleared on Idle")
	}
}

func TestEvadeCancelsRecovery(t *testing.T) {
	a, rec, f := newTestActor()
	a.ExecuteAttack(f.light1)
	a.TransitionToPhase(PhaseRecovery)

	a.OnEvadePressed()

	expectState(t, a, Evading)
	expectAttack(t, a, nil)
	evade, ok := rec.last(CmdPlayEvade)
	if !ok || evade.Direction != DirBack {
		t.Errorf("Expected back evade, got %+v", evade)
	}
}

func TestEvadeBufferedDuringActive(t *testing.T) {
	a, _, f := newTestActor()
	a.ExecuteAttack(f.light1)
	a.TransitionToPhase(PhaseActive)

	a.OnEvadePressed()
	expectState(t, a, Attacking)
	if !a.IsBuffered(InputEvade) {
		t.Fatal("Expected evade buffered")
	}

	a.TransitionToPhase(PhaseRecovery)
	a.OnAttackPhaseEnd(PhaseRecovery)
	expectState(t, a, Evading)
}

func TestEvadeRunsBufferedAttackOnFinish(t *testing.T) {
	a, _, f := newTestActor()
	a.OnEvadePressed()
	expectState(t, a, Evading)

	a.OnLightAttackPressed()
	a.Tick(0.2)
	expectState(t, a, Evading)
	a.Tick(0.2)

	expectState(t, a, Attacking)
	expectAttack(t, a, f.light1)
}

func TestGuardBreakPreemptsBufferedCombo(t *testing.T) {
	a, _, f := newTestActor()
	a.ExecuteAttack(f.light1)
	a.OnLightAttackPressed()

	if !a.ApplyPostureDamage(100, nil) {
		t.Fatal("Expected guard break")
	}
	a.ProcessRecoveryComplete()

	expectState(t, a, GuardBroken)
	expectAttack(t, a, nil)
	if a.IsBuffered(InputLight) {
		t.Error("Expected buffer cleared by guard break")
	}
}

func TestIdenticalInputIsDeterministic(t *testing.T) {
	run := func() []Command {
		a, rec, _ := newTestActor()
		a.OnLightAttackPressed()
		a.OpenHoldWindow(0.3)
		a.Tick(0.1)
		a.Tick(0.1)
		a.OnLightAttackReleased()
		a.Tick(0.1)
		a.OpenComboWindow(0)
		a.OnHeavyAttackPressed()
		a.TransitionToPhase(PhaseActive)
		a.TransitionToPhase(PhaseRecovery)
		a.OnAttackPhaseEnd(PhaseRecovery)
		return rec.cmds
	}

	first, second := run(), run()
	if len(first) != len(second) {
		t.Fatalf("Expected equal command counts, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Type != second[i].Type || first[i].Rate != second[i].Rate || first[i].Attack.String() != second[i].Attack.String() {
			t.Errorf("Command %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
