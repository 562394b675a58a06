package ecs

import (
	"fmt"
	"reflect"
	"time"
)

var _ SystemAPI = (*scheduler)(nil)

// scheduler runs systems in registration order against one registry and is
// the SystemAPI they receive.
type scheduler struct {
	reg     *registry
	systems []System
}

func newScheduler(reg *registry) *scheduler {
	return &scheduler{reg: reg}
}

// NewView selects the entities holding every component type of the given
// values. Viewing an unregistered type is a programming error and panics.
func (s *scheduler) NewView(components ...any) View {
	var v View
	for _, c := range components {
		t := reflect.TypeOf(c)
		id, ok := s.reg.typeIDs[t]
		if !ok {
			panic(fmt.Sprintf("ecs: view over unregistered component %s", t))
		}
		v.mask = v.mask.Set(id)
	}
	return v
}

func (s *scheduler) Each(v View, fn func(e Entity)) {
	s.reg.eachMatching(v, fn)
}

func (s *scheduler) registerSystems(systems []System) {
	for _, system := range systems {
		system.Init(s)
	}
	s.systems = append(s.systems, systems...)
}

func (s *scheduler) updateSystems(dt time.Duration) {
	for _, system := range s.systems {
		system.Update(s, dt)
	}
}

func (s *scheduler) registry() *registry { return s.reg }
