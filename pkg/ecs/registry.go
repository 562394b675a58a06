package ecs

import (
	"reflect"
	"slices"
)

type registry struct {
	lastEntity Entity
	masks      map[Entity]Bitmask
	storages   map[ComponentID]any
	typeIDs    map[reflect.Type]ComponentID
	deleters   map[ComponentID]func(Entity)
}

func newRegistry() *registry {
	return &registry{
		masks:    make(map[Entity]Bitmask),
		storages: make(map[ComponentID]any),
		typeIDs:  make(map[reflect.Type]ComponentID),
		deleters: make(map[ComponentID]func(Entity)),
	}
}

// createEntity hands out ids 1, 2, 3... in order; ids are dense until the
// next clear.
func (r *registry) createEntity() Entity {
	r.lastEntity++
	e := r.lastEntity
	r.masks[e] = Bitmask{}
	return e
}

func (r *registry) removeEntity(e Entity) {
	mask, ok := r.masks[e]
	if !ok {
		return
	}

	mask.ForEachSet(func(id ComponentID) {
		if deleteFn, exists := r.deleters[id]; exists {
			deleteFn(e)
		}
	})

	delete(r.masks, e)
}

func (r *registry) clear() {
	for e := range r.masks {
		r.removeEntity(e)
	}
	r.lastEntity = 0
}

func assign[T any](r *registry, e Entity, component T) {
	id := registerComponent[T](r)
	assignByID(r, e, id, component)
}

func assignByID[T any](r *registry, e Entity, id ComponentID, component T) {
	if _, ok := r.masks[e]; !ok {
		return
	}
	r.masks[e] = r.masks[e].Set(id)
	storage := r.storages[id].(map[Entity]*T)
	c := component
	storage[e] = &c
}

func unassign[T any](r *registry, e Entity) {
	id, ok := r.typeIDs[reflect.TypeFor[T]()]
	if !ok {
		return
	}
	unassignByID[T](r, e, id)
}

func unassignByID[T any](r *registry, e Entity, id ComponentID) {
	if storage, ok := r.storages[id].(map[Entity]*T); ok {
		delete(storage, e)
	}

	if mask, ok := r.masks[e]; ok {
		r.masks[e] = mask.Clear(id)
	}
}

func (r *registry) eachMatching(v View, fn func(e Entity)) {
	matched := make([]Entity, 0, len(r.masks))
	for e, m := range r.masks {
		if m.Matches(v.mask) {
			matched = append(matched, e)
		}
	}
	slices.Sort(matched)
	for _, e := range matched {
		fn(e)
	}
}

func mapTypeToComponent[T any](r *registry) map[Entity]*T {
	id := registerComponent[T](r)
	return r.storages[id].(map[Entity]*T)
}

func registerComponent[T any](r *registry) ComponentID {
	t := reflect.TypeFor[T]()
	if id, ok := r.typeIDs[t]; ok {
		return id
	}

	id := ComponentID(len(r.typeIDs))
	r.typeIDs[t] = id

	storage := make(map[Entity]*T)
	r.storages[id] = storage

	r.deleters[id] = func(e Entity) {
		delete(storage, e)
	}

	return id
}
