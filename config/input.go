package config

// ActionID represents a logical combat action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionLight
	ActionHeavy
	ActionBlock
	ActionEvade
	ActionCount // Must be last - used for array sizing
)

func (a ActionID) String() string {
	switch a {
	case ActionMoveLeft:
		return "left"
	case ActionMoveRight:
		return "right"
	case ActionMoveUp:
		return "up"
	case ActionMoveDown:
		return "down"
	case ActionLight:
		return "light"
	case ActionHeavy:
		return "heavy"
	case ActionBlock:
		return "block"
	case ActionEvade:
		return "evade"
	default:
		return "none"
	}
}

// InputConfig holds device-independent input tuning. Key bindings live with
// the window code that reads the keyboard.
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
	}
}
