package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObjectData is the body (hurtbox) of an entity in the resolv space
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// FacingData is the unit direction an entity faces in arena space
type FacingData struct {
	Dir math.Vec2
}

var Facing = donburi.NewComponentType[FacingData]()
