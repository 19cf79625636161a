package components

import (
	"github.com/automoto/doomerang-combat/combat"
	"github.com/yohamta/donburi"
)

// TimelineData plays the current attack's authored notifies. It stands in
// for a skeletal animation montage.
type TimelineData struct {
	Attack     *combat.AttackDefinition
	Section    string
	Elapsed    float64 // seconds of attack time played
	Rate       float64 // 1 = normal, 0 = frozen
	NextNotify int     // index of the next unfired notify
	Playing    bool
	Looping    bool // parked on a loop section (charge)
}

var Timeline = donburi.NewComponentType[TimelineData]()
