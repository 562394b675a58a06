// Package ecs is a small entity-component store. Components live in one map
// per type; views select entities by component mask and are always visited in
// ascending entity order.
package ecs

import (
	"time"
)

type (
	Entity uint32

	ComponentID int

	System interface {
		Init(SystemAPI)
		Update(SystemAPI, time.Duration)
	}

	View struct {
		mask Bitmask
	}

	SystemAPI interface {
		NewView(components ...any) View
		Each(v View, fn func(e Entity))
		registry() *registry
	}

	Engine struct {
		registry  *registry
		scheduler *scheduler
	}
)

// Map returns the live storage of component T for use inside a system.
func Map[T any](api SystemAPI) map[Entity]*T {
	return mapTypeToComponent[T](api.registry())
}

func NewEngine() *Engine {
	reg := newRegistry()
	return &Engine{
		registry:  reg,
		scheduler: newScheduler(reg),
	}
}

func (e *Engine) CreateEntity() Entity {
	return e.registry.createEntity()
}

func (e *Engine) Len() int {
	return len(e.registry.masks)
}

// Clear removes every entity and restarts entity numbering at 1. Registered
// component types and systems are kept.
func (e *Engine) Clear() {
	e.registry.clear()
}

func (e *Engine) NewView(components ...any) View {
	return e.scheduler.NewView(components...)
}

func (e *Engine) Each(v View, fn func(e Entity)) {
	e.scheduler.Each(v, fn)
}

func (e *Engine) RegisterSystems(systems []System) {
	e.scheduler.registerSystems(systems)
}

func (e *Engine) UpdateSystems(duration time.Duration) {
	e.scheduler.updateSystems(duration)
}

func RegisterComponent[T any](e *Engine) ComponentID {
	return registerComponent[T](e.registry)
}

func Assign[T any](e *Engine, entity Entity, component T) {
	assign(e.registry, entity, component)
}

func Unassign[T any](e *Engine, entity Entity) {
	unassign[T](e.registry, entity)
}

// Get returns entity's component of type T.
func Get[T any](e *Engine, entity Entity) (*T, bool) {
	c, ok := mapTypeToComponent[T](e.registry)[entity]
	return c, ok
}

func Has[T any](e *Engine, entity Entity) bool {
	_, ok := Get[T](e, entity)
	return ok
}
