package ecs

// absent marks an unused slot in the sparse index.
const absent int32 = -1

// SparseSet stores one component type densely, indexed by entity slot id.
// Removal swaps the last element into the hole, so dense order is not
// insertion order.
type SparseSet struct {
	ids    []entityID
	values []any
	index  []int32
}

func (s *SparseSet) Has(id entityID) bool {
	if s == nil || id == 0 || int(id) > len(s.index) {
		return false
	}
	i := s.index[id-1]
	return i != absent && int(i) < len(s.ids) && s.ids[i] == id
}

// Get returns the component for id, or nil.
func (s *SparseSet) Get(id entityID) any {
	if !s.Has(id) {
		return nil
	}
	return s.values[s.index[id-1]]
}

// Set inserts or replaces the component for id.
func (s *SparseSet) Set(id entityID, v any) {
	if s == nil || id == 0 {
		return
	}
	for int(id) > len(s.index) {
		s.index = append(s.index, absent)
	}
	if s.Has(id) {
		s.values[s.index[id-1]] = v
		return
	}
	s.index[id-1] = int32(len(s.ids))
	s.ids = append(s.ids, id)
	s.values = append(s.values, v)
}

// Remove deletes the component for id if present.
func (s *SparseSet) Remove(id entityID) {
	if !s.Has(id) {
		return
	}
	i := s.index[id-1]
	last := int32(len(s.ids) - 1)
	moved := s.ids[last]

	s.ids[i] = moved
	s.values[i] = s.values[last]
	s.index[moved-1] = i

	s.ids = s.ids[:last]
	s.values[last] = nil
	s.values = s.values[:last]
	s.index[id-1] = absent
}

func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// IDs returns the dense slot id list. Callers must not modify it.
func (s *SparseSet) IDs() []entityID {
	if s == nil {
		return nil
	}
	return s.ids
}
