package factory

import (
	"github.com/automoto/doomerang-combat/archetypes"
	"github.com/automoto/doomerang-combat/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateCommandQueue creates the world's single command queue
func CreateCommandQueue(w donburi.World) *donburi.Entry {
	if entry, ok := components.CommandQueue.First(w); ok {
		return entry
	}
	queue := archetypes.CommandQueue.Spawn(w)
	components.CommandQueue.SetValue(queue, components.CommandQueueData{})
	return queue
}
