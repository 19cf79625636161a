package components

import (
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/yohamta/donburi"
)

// SparringData drives a training dummy from a looping input script
type SparringData struct {
	Script   cfg.SparringScript
	Elapsed  float64 // position in the current loop
	Releases [cfg.ActionCount]float64
	Enabled  bool
}

var Sparring = donburi.NewComponentType[SparringData]()
