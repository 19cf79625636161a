package combat

import "testing"

func TestWindowsAreIndependent(t *testing.T) {
	a, _, f := newTestActor()
	a.ExecuteAttack(f.light1)

	a.OpenComboWindow(1)
	a.OpenParryWindow(1)
	a.windows.Open(WindowHold, 1, a.Now())
	a.OpenCounterWindow(1)
	if a.windows.OpenCount() != 4 {
		t.Fatalf("Expected 4 open windows, got %d", a.windows.OpenCount())
	}

	a.CloseParryWindow()

	if a.IsInParryWindow() {
		t.Error("Expected parry window closed")
	}
	for _, k := range []WindowKind{WindowCombo, WindowHold, WindowCounter} {
		if !a.IsWindowOpen(k) {
			t.Errorf("Expected %v window to stay open", k)
		}
	}
}

func TestWindowExpiry(t *testing.T) {
	a, _, _ := newTestActor()
	a.OpenParryWindow(0.3)

	a.Tick(0.2)
	if !a.IsInParryWindow() {
		t.Fatal("Expected parry window open at 0.2s")
	}
	a.Tick(0.1)
	if a.IsInParryWindow() {
		t.Error("Expected parry window closed at 0.3s")
	}
}

func TestWindowReopenRearmsExpiry(t *testing.T) {
	a, _, _ := newTestActor()
	a.OpenCounterWindow(0.3)
	a.Tick(0.2)
	a.OpenCounterWindow(0.3)

	a.Tick(0.2)
	if !a.IsInCounterWindow() {
		t.Fatal("Expected rearmed window open at 0.4s")
	}
	a.Tick(0.2)
	if a.IsInCounterWindow() {
		t.Error("Expected rearmed window closed at 0.6s")
	}
}

func TestParryWindowClosedEarly(t *testing.T) {
	a, _, _ := newTestActor()
	a.OpenParryWindow(0.3)
	a.Tick(0.1)

	a.CloseParryWindow()
	if a.IsInParryWindow() {
		t.Error("Expected parry window closed immediately")
	}
	a.CloseParryWindow()
	if a.IsInParryWindow() {
		t.Error("Expected repeated close to be a no-op")
	}
}

func TestComboWindowFallsBackToAttackWindow(t *testing.T) {
	a, _, f := newTestActor()
	a.ExecuteAttack(f.light1)
	a.OpenComboWindow(0)

	a.Tick(0.39)
	if !a.CanCombo() {
		t.Fatal("Expected combo window open inside ComboInputWindow")
	}
	a.Tick(0.02)
	if a.CanCombo() {
		t.Error("Expected combo window closed after ComboInputWindow")
	}
}

func TestWindowWithoutExpiry(t *testing.T) {
	var ws WindowSet
	ws.Open(WindowHold, 0, 0)
	ws.Expire(100)
	if !ws.IsOpen(WindowHold) {
		t.Error("Expected window without expiry to stay open")
	}
	if ws.Get(WindowHold).HasExpiry {
		t.Error("Expected no expiry")
	}

	ws.Open(WindowKind(-1), 1, 0)
	if ws.IsOpen(WindowKind(-1)) {
		t.Error("Expected invalid kind to be ignored")
	}
}

func TestPhaseTransitions(t *testing.T) {
	a, rec, f := newTestActor()
	a.ExecuteAttack(f.light1)

	a.OnAttackPhaseBegin(PhaseWindup)
	a.TransitionToPhase(PhaseActive)
	if a.CurrentPhase() != PhaseActive {
		t.Fatalf("Expected Active, got %v", a.CurrentPhase())
	}
	enable, ok := rec.last(CmdEnableHitDetection)
	if !ok || enable.Attack != f.light1 {
		t.Errorf("Expected hit detection enabled for light1, got %+v", enable)
	}

	a.TransitionToPhase(PhaseRecovery)
	if a.CurrentPhase() != PhaseRecovery {
		t.Fatalf("Expected Recovery, got %v", a.CurrentPhase())
	}
	if rec.count(CmdDisableHitDetection) != 1 {
		t.Errorf("Expected hit detection disabled once, got %d", rec.count(CmdDisableHitDetection))
	}
}

func TestPhaseEndIgnoresStalePhase(t *testing.T) {
	a, _, f := newTestActor()
	a.ExecuteAttack(f.light1)
	a.TransitionToPhase(PhaseActive)

	a.OnAttackPhaseEnd(PhaseWindup)
	if a.CurrentPhase() != PhaseActive {
		t.Errorf("Expected Active to survive a stale end, got %v", a.CurrentPhase())
	}

	a.OnAttackPhaseEnd(PhaseActive)
	if a.CurrentPhase() != PhaseNone {
		t.Errorf("Expected None after ending Active, got %v", a.CurrentPhase())
	}
}

func TestRecoveryEndCompletesAttack(t *testing.T) {
	a, _, f := newTestActor()
	a.ExecuteAttack(f.light1)
	a.TransitionToPhase(PhaseRecovery)

	a.OnAttackPhaseEnd(PhaseRecovery)

	expectState(t, a, Idle)
	expectAttack(t, a, nil)
	if a.ComboCount() != 0 {
		t.Errorf("Expected combo count reset, got %d", a.ComboCount())
	}
}
