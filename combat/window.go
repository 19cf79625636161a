package combat

// WindowKind names one of the independently timed windows.
type WindowKind int

const (
	WindowCombo WindowKind = iota
	WindowParry
	WindowHold
	WindowCounter

	windowKindCount
)

func (k WindowKind) String() string {
	switch k {
	case WindowCombo:
		return "Combo"
	case WindowParry:
		return "Parry"
	case WindowHold:
		return "Hold"
	case WindowCounter:
		return "Counter"
	default:
		return "Unknown"
	}
}

// Window is an open interval with an optional expiry timestamp.
type Window struct {
	Open      bool
	ExpiresAt float64
	HasExpiry bool
}

// WindowSet holds one window per kind. Kinds never affect each other.
type WindowSet struct {
	windows [windowKindCount]Window
}

// Open opens the window and (re)arms its expiry at now+duration. A duration
// <= 0 keeps it open until closed explicitly.
func (ws *WindowSet) Open(kind WindowKind, duration, now float64) {
	if !validWindow(kind) {
		return
	}
	w := &ws.windows[kind]
	w.Open = true
	w.HasExpiry = duration > 0
	w.ExpiresAt = 0
	if w.HasExpiry {
		w.ExpiresAt = now + duration
	}
}

func (ws *WindowSet) Close(kind WindowKind) {
	if !validWindow(kind) {
		return
	}
	ws.windows[kind] = Window{}
}

func (ws *WindowSet) IsOpen(kind WindowKind) bool {
	if !validWindow(kind) {
		return false
	}
	return ws.windows[kind].Open
}

// Get returns a copy of the window state.
func (ws *WindowSet) Get(kind WindowKind) Window {
	if !validWindow(kind) {
		return Window{}
	}
	return ws.windows[kind]
}

func (ws *WindowSet) CloseAll() {
	ws.windows = [windowKindCount]Window{}
}

// Expire closes every window whose expiry is at or before now.
func (ws *WindowSet) Expire(now float64) {
	for i := range ws.windows {
		w := &ws.windows[i]
		if w.Open && w.HasExpiry && now >= w.ExpiresAt {
			*w = Window{}
		}
	}
}

// OpenCount returns how many windows are currently open.
func (ws *WindowSet) OpenCount() int {
	n := 0
	for _, w := range ws.windows {
		if w.Open {
			n++
		}
	}
	return n
}

func validWindow(kind WindowKind) bool {
	return kind >= 0 && kind < windowKindCount
}

// Window entry points, invoked by the animation notify router.

// OpenComboWindow opens the combo window. A duration <= 0 falls back to the
// current attack's ComboInputWindow.
func (a *Actor) OpenComboWindow(duration float64) {
	if a.state == Dead {
		return
	}
	if duration <= 0 && a.current != nil {
		duration = a.current.ComboInputWindow
	}
	a.windows.Open(WindowCombo, duration, a.now)
}

func (a *Actor) CloseComboWindow() { a.windows.Close(WindowCombo) }

func (a *Actor) OpenParryWindow(duration float64) {
	if a.state == Dead {
		return
	}
	a.windows.Open(WindowParry, duration, a.now)
}

func (a *Actor) CloseParryWindow() { a.windows.Close(WindowParry) }

func (a *Actor) OpenCounterWindow(duration float64) {
	if a.state == Dead {
		return
	}
	a.windows.Open(WindowCounter, duration, a.now)
}

func (a *Actor) CloseCounterWindow() { a.windows.Close(WindowCounter) }

// CloseHoldWindow closes the hold window. An active hold keeps going until
// the button is released or the max hold time is hit.
func (a *Actor) CloseHoldWindow() { a.windows.Close(WindowHold) }
