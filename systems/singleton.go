package systems

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// Singleton gives shared access to the one entity of a world carrying a
// controller-like component. Lookups self-heal: a missing instance is found by
// search or built from newDefault, and duplicates are removed.
type Singleton[T any] struct {
	component  *donburi.ComponentType[T]
	newDefault func() T

	world  donburi.World
	entity donburi.Entity
}

func NewSingleton[T any](component *donburi.ComponentType[T], newDefault func() T) *Singleton[T] {
	return &Singleton[T]{component: component, newDefault: newDefault}
}

func (s *Singleton[T]) name() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

func (s *Singleton[T]) registered(w donburi.World) bool {
	return s.world != nil && s.world == w && w.Valid(s.entity) && w.Entry(s.entity).HasComponent(s.component)
}

// Exists reports whether an instance is registered for w. It never creates one.
func (s *Singleton[T]) Exists(w donburi.World) bool {
	return s.registered(w)
}

// Entry returns the registered entry, registering the first existing one or
// creating a default instance when there is none.
func (s *Singleton[T]) Entry(w donburi.World) *donburi.Entry {
	if s.registered(w) {
		return w.Entry(s.entity)
	}

	if entry, ok := s.component.First(w); ok {
		s.world, s.entity = w, entry.Entity()
		return entry
	}

	log.Warn().Str("component", s.name()).Msg("singleton needed but none exists, creating one")
	entry := w.Entry(w.Create(s.component))
	s.component.SetValue(entry, s.newDefault())
	s.world, s.entity = w, entry.Entity()
	return entry
}

// Get returns the singleton's data, see Entry.
func (s *Singleton[T]) Get(w donburi.World) *T {
	return s.component.Get(s.Entry(w))
}

// Register claims entry as the instance for w. When another live instance is
// already registered, or exists unregistered, entry is removed from the world
// and the original is returned.
func (s *Singleton[T]) Register(w donburi.World, entry *donburi.Entry) *donburi.Entry {
	if !s.registered(w) {
		s.component.Each(w, func(other *donburi.Entry) {
			if !s.registered(w) && other.Entity() != entry.Entity() {
				s.world, s.entity = w, other.Entity()
			}
		})
	}
	if s.registered(w) && s.entity != entry.Entity() {
		log.Warn().Str("component", s.name()).Msg("singleton already exists, removing the extra")
		w.Remove(entry.Entity())
		return w.Entry(s.entity)
	}
	s.world, s.entity = w, entry.Entity()
	return entry
}

// Reset forgets the registered instance.
func (s *Singleton[T]) Reset() {
	*s = Singleton[T]{component: s.component, newDefault: s.newDefault}
}
