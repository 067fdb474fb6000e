package systems

import (
	"testing"

	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/yohamta/donburi"
)

func newGameRegistry() *Singleton[components.GameData] {
	return NewSingleton(components.Game, func() components.GameData {
		return components.GameData{State: cfg.Running}
	})
}

func TestSingletonCreatesDefault(t *testing.T) {
	w := donburi.NewWorld()
	s := newGameRegistry()

	if s.Exists(w) {
		t.Fatal("Exists on an empty world")
	}
	if got := s.Get(w).State; got != cfg.Running {
		t.Errorf("default state = %v, want %v", got, cfg.Running)
	}
	if !s.Exists(w) {
		t.Error("Get should register the created instance")
	}
	if n := countGames(w); n != 1 {
		t.Errorf("world has %d game entities, want 1", n)
	}
}

func TestSingletonFindsExisting(t *testing.T) {
	w := donburi.NewWorld()
	s := newGameRegistry()

	entry := w.Entry(w.Create(components.Game))
	components.Game.SetValue(entry, components.GameData{State: cfg.GameOverState})

	if s.Exists(w) {
		t.Fatal("an unregistered instance must not count as existing")
	}
	if got := s.Get(w).State; got != cfg.GameOverState {
		t.Errorf("state = %v, want the existing instance's", got)
	}
	if n := countGames(w); n != 1 {
		t.Errorf("world has %d game entities, want 1", n)
	}
}

func TestSingletonRegisterRemovesDuplicate(t *testing.T) {
	w := donburi.NewWorld()
	s := newGameRegistry()

	first := w.Entry(w.Create(components.Game))
	if got := s.Register(w, first); got.Entity() != first.Entity() {
		t.Fatal("first registration should win")
	}

	second := w.Entry(w.Create(components.Game))
	secondID := second.Entity()
	got := s.Register(w, second)
	if got.Entity() != first.Entity() {
		t.Error("duplicate registration should return the original")
	}
	if w.Valid(secondID) {
		t.Error("duplicate should be removed from the world")
	}
	if s.Entry(w).Entity() != first.Entity() {
		t.Error("registry should still point at the original")
	}
}

func TestSingletonFollowsNewWorld(t *testing.T) {
	s := newGameRegistry()
	old := donburi.NewWorld()
	s.Get(old).State = cfg.GameOverState

	fresh := donburi.NewWorld()
	if s.Exists(fresh) {
		t.Fatal("instance of another world leaked into a fresh one")
	}
	if got := s.Get(fresh).State; got != cfg.Running {
		t.Errorf("fresh world state = %v, want default", got)
	}

	s.Reset()
	if s.Exists(fresh) {
		t.Error("Reset should forget the registration")
	}
}

func countGames(w donburi.World) int {
	n := 0
	components.Game.Each(w, func(*donburi.Entry) {
		n++
	})
	return n
}
