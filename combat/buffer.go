package combat

import "sort"

// InputKind is a bufferable intent.
type InputKind int

const (
	InputLight InputKind = iota
	InputHeavy
	InputEvade

	inputKindCount
)

func (k InputKind) String() string {
	switch k {
	case InputLight:
		return "Light"
	case InputHeavy:
		return "Heavy"
	case InputEvade:
		return "Evade"
	default:
		return "Unknown"
	}
}

// Priority of each intent when several are pending. Heavy outranks light and
// evade outranks both.
func (k InputKind) Priority() int {
	switch k {
	case InputLight:
		return 1
	case InputHeavy:
		return 2
	case InputEvade:
		return 3
	default:
		return 0
	}
}

// QueuedAction is one buffered press.
type QueuedAction struct {
	Kind          InputKind
	Pressed       bool
	InComboWindow bool
	Priority      int
	Sequence      uint64
	PressedAt     float64
}

// CanBeCancelledBy reports whether other may displace q. Ties favor the
// newer action.
func (q QueuedAction) CanBeCancelledBy(other QueuedAction) bool {
	return other.Priority >= q.Priority
}

// InputBuffer keeps at most one pending intent per kind; a new press of the
// same kind overwrites the old one.
type InputBuffer struct {
	entries [inputKindCount]QueuedAction
	seq     uint64
}

// Record stores a press. inWindow is the combo window state snapshotted at
// the moment of the press.
func (b *InputBuffer) Record(kind InputKind, inWindow bool, now float64) QueuedAction {
	if kind < 0 || kind >= inputKindCount {
		return QueuedAction{}
	}
	b.seq++
	q := QueuedAction{
		Kind:          kind,
		Pressed:       true,
		InComboWindow: inWindow,
		Priority:      kind.Priority(),
		Sequence:      b.seq,
		PressedAt:     now,
	}
	b.entries[kind] = q
	return q
}

// Pending returns the buffered entry for kind.
func (b *InputBuffer) Pending(kind InputKind) (QueuedAction, bool) {
	if kind < 0 || kind >= inputKindCount {
		return QueuedAction{}, false
	}
	q := b.entries[kind]
	return q, q.Pressed
}

func (b *InputBuffer) IsBuffered(kind InputKind) bool {
	_, ok := b.Pending(kind)
	return ok
}

// Winner picks the pending action that survives priority cancellation.
func (b *InputBuffer) Winner() (QueuedAction, bool) {
	pending := make([]QueuedAction, 0, inputKindCount)
	for _, q := range b.entries {
		if q.Pressed {
			pending = append(pending, q)
		}
	}
	if len(pending) == 0 {
		return QueuedAction{}, false
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].Sequence < pending[j].Sequence })

	best := pending[0]
	for _, q := range pending[1:] {
		if best.CanBeCancelledBy(q) {
			best = q
		}
	}
	return best, true
}

func (b *InputBuffer) Consume(kind InputKind) {
	if kind < 0 || kind >= inputKindCount {
		return
	}
	b.entries[kind] = QueuedAction{}
}

func (b *InputBuffer) Clear() {
	b.entries = [inputKindCount]QueuedAction{}
}

func (b *InputBuffer) Len() int {
	n := 0
	for _, q := range b.entries {
		if q.Pressed {
			n++
		}
	}
	return n
}
