// Package ecs provides ECS adapters for ember.
package ecs

import (
	"github.com/phanxgames/ember"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for ember interaction
// events. Subscribe to this in your ECS systems to receive widget hover,
// press, click, focus, and activate events.
var InteractionEventType = events.NewEventType[ember.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) ember.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event ember.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
