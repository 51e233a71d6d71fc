package ecs

// World is an arena of entities of one type. Destroy only marks an entity;
// the slot is reclaimed by Compact, which callers run between ticks so that
// no iteration ever observes the slice shrinking.
type World[T any] struct {
	nextID  EntityID
	ids     []EntityID
	items   []T
	removed []bool
	index   map[EntityID]int
}

// NewWorld creates an empty World.
func NewWorld[T any]() *World[T] {
	return &World[T]{
		nextID: 1,
		index:  make(map[EntityID]int),
	}
}

// Create stores v under a freshly minted ID.
func (w *World[T]) Create(v T) EntityID {
	id := w.nextID
	w.nextID++
	w.index[id] = len(w.items)
	w.ids = append(w.ids, id)
	w.items = append(w.items, v)
	w.removed = append(w.removed, false)
	return id
}

// Get returns a pointer to the entity's value, or nil when it is unknown or
// destroyed. The pointer is valid until the next Create or Compact.
func (w *World[T]) Get(id EntityID) *T {
	i, ok := w.index[id]
	if !ok || w.removed[i] {
		return nil
	}
	return &w.items[i]
}

// Alive reports whether the entity exists and has not been destroyed.
func (w *World[T]) Alive(id EntityID) bool {
	i, ok := w.index[id]
	return ok && !w.removed[i]
}

// Destroy marks the entity for removal by the next Compact.
func (w *World[T]) Destroy(id EntityID) {
	if i, ok := w.index[id]; ok {
		w.removed[i] = true
	}
}

// Each calls fn for every live entity in creation order. Entities destroyed
// during the walk are skipped from that point on.
func (w *World[T]) Each(fn func(id EntityID, v *T)) {
	for i := range w.items {
		if w.removed[i] {
			continue
		}
		fn(w.ids[i], &w.items[i])
	}
}

// Query returns the IDs of live entities matching pred, in creation order.
func (w *World[T]) Query(pred func(v *T) bool) []EntityID {
	var result []EntityID
	w.Each(func(id EntityID, v *T) {
		if pred(v) {
			result = append(result, id)
		}
	})
	return result
}

// Len returns the number of live entities.
func (w *World[T]) Len() int {
	n := 0
	for _, r := range w.removed {
		if !r {
			n++
		}
	}
	return n
}

// Compact drops destroyed entities in a single pass and returns how many
// were removed.
func (w *World[T]) Compact() int {
	kept := 0
	for i := range w.items {
		if w.removed[i] {
			delete(w.index, w.ids[i])
			continue
		}
		w.ids[kept] = w.ids[i]
		w.items[kept] = w.items[i]
		w.removed[kept] = false
		w.index[w.ids[kept]] = kept
		kept++
	}
	dropped := len(w.items) - kept
	var zero T
	for i := kept; i < len(w.items); i++ {
		w.items[i] = zero
	}
	w.ids = w.ids[:kept]
	w.items = w.items[:kept]
	w.removed = w.removed[:kept]
	return dropped
}
