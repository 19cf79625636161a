package components

import (
	"github.com/automoto/doomerang-combat/combat"
	"github.com/yohamta/donburi"
)

// QueuedCommand is a command waiting for the router, tagged with its emitter
type QueuedCommand struct {
	Source  donburi.Entity
	Command combat.Command
}

// CommandQueueData buffers commands emitted between dispatches. Actors push
// here instead of calling the router directly, so a handler that makes
// another actor emit never re-enters the router.
type CommandQueueData struct {
	Pending []QueuedCommand
}

var CommandQueue = donburi.NewComponentType[CommandQueueData]()

// PushCommand appends cmd to the world's queue. It is dropped when the world
// has no queue.
func PushCommand(w donburi.World, source donburi.Entity, cmd combat.Command) {
	entry, ok := CommandQueue.First(w)
	if !ok {
		return
	}
	q := CommandQueue.Get(entry)
	q.Pending = append(q.Pending, QueuedCommand{Source: source, Command: cmd})
}
