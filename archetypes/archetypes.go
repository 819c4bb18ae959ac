package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/screenmenu/components"
	"github.com/automoto/screenmenu/tags"
)

// Default is the only render layer the viewer uses.
const Default ecs.LayerID = 0

var (
	Viewer = newArchetype(
		tags.Viewer,
		components.Viewer,
		components.Slide,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
