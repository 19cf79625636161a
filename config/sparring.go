package config

// SparringDifficulty selects how busy the training dummy's script is
type SparringDifficulty int

const (
	SparringPassive SparringDifficulty = iota
	SparringNormal
	SparringAggressive
)

// SparringStep presses Action at At seconds into the loop and releases it
// Hold seconds later (0 = tap).
type SparringStep struct {
	At     float64
	Action ActionID
	Hold   float64
}

// SparringScript is one looping input timeline
type SparringScript struct {
	Period float64
	Steps  []SparringStep
}

// SparringConfigData holds every dummy script
type SparringConfigData struct {
	Default SparringDifficulty
	Scripts map[SparringDifficulty]SparringScript
}

// Sparring holds the training dummy configuration
var Sparring SparringConfigData

func init() {
	Sparring = SparringConfigData{
		Default: SparringNormal,
		Scripts: map[SparringDifficulty]SparringScript{
			SparringPassive: {
				Period: 4.0,
				Steps: []SparringStep{
					{At: 0.5, Action: ActionBlock, Hold: 2.0},
				},
			},
			SparringNormal: {
				Period: 3.0,
				Steps: []SparringStep{
					{At: 0.5, Action: ActionLight},
					{At: 0.85, Action: ActionLight},
					{At: 1.8, Action: ActionBlock, Hold: 0.8},
				},
			},
			SparringAggressive: {
				Period: 2.5,
				Steps: []SparringStep{
					{At: 0.2, Action: ActionHeavy, Hold: 0.6}, // charged overhead
					{At: 1.3, Action: ActionLight},
					{At: 1.6, Action: ActionLight},
					{At: 2.1, Action: ActionEvade},
				},
			},
		},
	}
}
