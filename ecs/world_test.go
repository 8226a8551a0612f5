package ecs

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilewalker/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func mustAdd[T any](t *testing.T, w *World, e Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := Add(w, e, kind, v); err != nil {
		t.Fatalf("add %v: %v", e, err)
	}
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name    string
		create  int
		destroy []int
		alive   int
	}{
		{"single", 1, []int{0}, 0},
		{"destroy_middle", 3, []int{1}, 2},
		{"destroy_none", 2, nil, 2},
		{"destroy_all", 3, []int{2, 0, 1}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, c.create)
			for i := range ents {
				ents[i] = CreateEntity(w)
				if !ents[i].Valid() {
					t.Fatalf("entity %d not valid", i)
				}
			}
			for _, i := range c.destroy {
				if !DestroyEntity(w, ents[i]) {
					t.Fatalf("destroy %v reported false", ents[i])
				}
				if IsAlive(w, ents[i]) {
					t.Fatalf("%v alive after destroy", ents[i])
				}
			}
			if n := len(Entities(w)); n != c.alive {
				t.Fatalf("expected %d live entities, got %d", c.alive, n)
			}
		})
	}
}

func TestEntityString(t *testing.T) {
	e := makeEntity(7, 3)
	if e.id() != 7 || e.generation() != 3 {
		t.Fatalf("unpacked %d/%d", e.id(), e.generation())
	}
	if got := e.String(); got != "#7.3" {
		t.Fatalf("String() = %q", got)
	}
	var zero Entity
	if zero.Valid() {
		t.Fatalf("zero entity should not be valid")
	}
}

func TestSparseSet(t *testing.T) {
	var s SparseSet
	s.Set(3, "c")
	s.Set(1, "a")
	s.Set(5, "e")
	s.Set(1, "A")

	if s.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", s.Len())
	}
	if got := s.Get(1); got != "A" {
		t.Fatalf("Set should replace, got %v", got)
	}

	s.Remove(3)
	if s.Has(3) || s.Get(3) != nil {
		t.Fatalf("3 still present after remove")
	}
	// The last entry was swapped into the hole and must still resolve.
	if got := s.Get(5); got != "e" {
		t.Fatalf("moved entry lost, got %v", got)
	}
	s.Remove(3)
	s.Remove(42)
	if s.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", s.Len())
	}

	s.Set(0, "zero")
	if s.Has(0) {
		t.Fatalf("slot 0 is reserved")
	}

	var nilSet *SparseSet
	nilSet.Set(1, "x")
	nilSet.Remove(1)
	if nilSet.Has(1) || nilSet.Len() != 0 || nilSet.IDs() != nil {
		t.Fatalf("nil set should be empty")
	}
}

func TestComponentsAddGetRemove(t *testing.T) {
	w := NewWorld()
	tr := component.NewComponent[component.Transform]()
	name := component.NewComponent[string]()
	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	mustAdd(t, w, e1, tr.Kind(), &component.Transform{X: 32, Y: 64})
	mustAdd(t, w, e1, name.Kind(), stringPtr("player"))
	mustAdd(t, w, e2, name.Kind(), stringPtr("camera"))

	got, ok := Get(w, e1, tr.Kind())
	if !ok || got.X != 32 || got.Y != 64 {
		t.Fatalf("unexpected transform %+v ok=%v", got, ok)
	}
	if Has(w, e2, tr.Kind()) {
		t.Fatalf("e2 has no transform")
	}
	if !Has(w, e1, name.Kind()) || !Has(w, e2, name.Kind()) {
		t.Fatalf("expected both entities named")
	}

	if !Remove(w, e1, tr.Kind()) {
		t.Fatalf("remove reported false")
	}
	if Remove(w, e1, tr.Kind()) {
		t.Fatalf("second remove should report false")
	}
	if _, ok := Get(w, e1, tr.Kind()); ok {
		t.Fatalf("transform survived remove")
	}
	if v, ok := Get(w, e1, name.Kind()); !ok || *v != "player" {
		t.Fatalf("unrelated component disturbed: %v %v", v, ok)
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	mustAdd(t, w, e3, h.Kind(), intPtr(3))
	mustAdd(t, w, e1, h.Kind(), intPtr(1))

	var got []Entity
	ForEach(w, h.Kind(), func(e Entity, _ *int) { got = append(got, e) })
	if len(got) != 2 || got[0] != e1 || got[1] != e3 {
		t.Fatalf("expected [%v %v] in slot order, got %v (e2=%v)", e1, e3, got, e2)
	}
}

func TestForEach2(t *testing.T) {
	w := NewWorld()
	hi := component.NewComponent[int]()
	hs := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	mustAdd(t, w, e1, hi.Kind(), intPtr(1))
	mustAdd(t, w, e1, hs.Kind(), stringPtr("one"))
	mustAdd(t, w, e2, hi.Kind(), intPtr(2))

	var got []Entity
	ForEach2(w, hi.Kind(), hs.Kind(), func(e Entity, n *int, s *string) {
		if *n != 1 || *s != "one" {
			t.Fatalf("unexpected values %d %q", *n, *s)
		}
		got = append(got, e)
	})
	if len(got) != 1 || got[0] != e1 {
		t.Fatalf("expected only e1, got %v", got)
	}
}

func TestForEach3(t *testing.T) {
	// holds lists which of the kinds a, b, c each entity carries.
	cases := []struct {
		name    string
		holds   []string
		destroy int // -1 = none
		want    []int
	}{
		{"intersection", []string{"a", "abc", "b", "c"}, -1, []int{1}},
		{"several", []string{"abc", "ab", "abc"}, -1, []int{0, 2}},
		{"ignores_dead", []string{"abc"}, 0, nil},
		{"no_common", []string{"a", "b"}, -1, nil},
		{"missing_store", []string{"a"}, -1, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			kinds := map[rune]component.ComponentKind[int]{
				'a': component.NewComponentKind[int](),
				'b': component.NewComponentKind[int](),
				'c': component.NewComponentKind[int](),
			}
			ents := make([]Entity, len(c.holds))
			for i, holds := range c.holds {
				ents[i] = CreateEntity(w)
				for _, r := range holds {
					mustAdd(t, w, ents[i], kinds[r], intPtr(i))
				}
			}
			if c.destroy >= 0 {
				DestroyEntity(w, ents[c.destroy])
			}

			var got []Entity
			ForEach3(w, kinds['a'], kinds['b'], kinds['c'], func(e Entity, _, _, _ *int) { got = append(got, e) })
			if len(got) != len(c.want) {
				t.Fatalf("expected %d matches, got %v", len(c.want), got)
			}
			for i, idx := range c.want {
				if got[i] != ents[idx] {
					t.Fatalf("match %d: expected %v, got %v", i, ents[idx], got[i])
				}
			}
		})
	}
}

func TestDestroyedHandleIsNotReused(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	old := CreateEntity(w)
	mustAdd(t, w, old, kind, intPtr(1))
	if !DestroyEntity(w, old) {
		t.Fatal("failed to destroy entity")
	}
	if DestroyEntity(w, old) {
		t.Fatal("destroying twice should report false")
	}

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be recycled, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("recycled handle should carry a new generation")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if Has(w, fresh, kind) {
		t.Fatalf("recycled slot inherited a component")
	}
	if err := Add(w, old, kind, intPtr(2)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	if err := Add(w, e, component.NewComponentKind[int](), nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	var zero component.ComponentKind[int]
	if err := Add(w, e, zero, intPtr(1)); err != component.ErrInvalidComponentKind {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestQueryOrderAndFirst(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	ents := make([]Entity, 5)
	for i := range ents {
		ents[i] = CreateEntity(w)
	}
	// Insert out of order so store order differs from slot order.
	for _, i := range []int{4, 1, 3} {
		mustAdd(t, w, ents[i], ka, intPtr(i))
		mustAdd(t, w, ents[i], kb, stringPtr("x"))
	}
	mustAdd(t, w, ents[0], ka, intPtr(0))

	got := w.Query(ka, kb)
	want := []Entity{ents[1], ents[3], ents[4]}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	first, ok := w.First(kb)
	if !ok || first != ents[1] {
		t.Fatalf("expected first %v, got %v ok=%v", ents[1], first, ok)
	}
	if _, ok := w.First(component.NewComponentKind[float64]()); ok {
		t.Fatalf("expected no entity for unused kind")
	}
}

func TestGetReturnsStoredPointer(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[component.Transform]()
	e := CreateEntity(w)
	mustAdd(t, w, e, kind, &component.Transform{X: 1})

	ForEach(w, kind, func(_ Entity, tr *component.Transform) { tr.X += 31 })

	tr, ok := Get(w, e, kind)
	if !ok || tr.X != 32 {
		t.Fatalf("expected mutation through ForEach to stick, got %+v ok=%v", tr, ok)
	}
}

type countingSystem struct {
	updates int
}

type drawingSystem struct {
	countingSystem
	draws int
}

func (s *drawingSystem) Draw(*World, *ebiten.Image) {
	s.draws++
}

func (s *countingSystem) Update(w *World) {
	s.updates++
	w.Events().Push(Event{Type: "tick"})
}

func TestWorldUpdateRunsSystemsAndFlushesEvents(t *testing.T) {
	w := NewWorld()
	a := &countingSystem{}
	b := &countingSystem{}
	w.AddSystem(a)
	w.AddSystem(nil)
	w.AddSystem(b)

	if n := len(w.Systems()); n != 2 {
		t.Fatalf("expected nil system to be ignored, got %d systems", n)
	}

	w.Update()
	w.Update()
	if a.updates != 2 || b.updates != 2 {
		t.Fatalf("expected each system updated twice, got %d and %d", a.updates, b.updates)
	}
	if n := w.Events().Len(); n != 0 {
		t.Fatalf("expected events flushed after update, %d left", n)
	}
}

func TestWorldDrawOnlyReachesDrawingSystems(t *testing.T) {
	w := NewWorld()
	plain := &countingSystem{}
	drawer := &drawingSystem{}
	w.AddSystem(plain)
	w.AddSystem(drawer)

	w.Draw(nil)
	if drawer.draws != 0 {
		t.Fatalf("world should skip a nil screen")
	}
	w.scheduler.Draw(w, nil)
	if drawer.draws != 1 {
		t.Fatalf("expected one draw, got %d", drawer.draws)
	}
	if n := len(w.scheduler.drawers); n != 1 {
		t.Fatalf("expected one cached drawer, got %d", n)
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	if q.Drain() != nil {
		t.Fatalf("expected nil drain on empty queue")
	}
	q.Push(Event{Type: EventTransitStarted})
	q.Push(Event{Type: EventTransitFinished})

	got := q.Drain()
	if len(got) != 2 || got[0].Type != EventTransitStarted || got[1].Type != EventTransitFinished {
		t.Fatalf("unexpected drain result %v", got)
	}
	if q.Len() != 0 {
		t.Fatalf("expected empty queue after drain")
	}

	var nilQueue *EventQueue
	nilQueue.Push(Event{Type: "ignored"})
	if nilQueue.Drain() != nil {
		t.Fatalf("nil queue should drain nothing")
	}
}
