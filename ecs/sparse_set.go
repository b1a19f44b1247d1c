package ecs

// SparseSet stores one component value per entity id with O(1) add, remove
// and lookup and a dense slice for iteration.
type SparseSet struct {
	dense  []entityID
	values []any
	// sparse[id] is the dense index plus one; zero means absent.
	sparse []int
}

func (s *SparseSet) has(id entityID) bool {
	return s != nil && int(id) < len(s.sparse) && s.sparse[id] != 0
}

func (s *SparseSet) get(id entityID) (any, bool) {
	if !s.has(id) {
		return nil, false
	}
	return s.values[s.sparse[id]-1], true
}

func (s *SparseSet) set(id entityID, v any) {
	if int(id) >= len(s.sparse) {
		grown := make([]int, int(id)+1)
		copy(grown, s.sparse)
		s.sparse = grown
	}
	if idx := s.sparse[id]; idx != 0 {
		s.values[idx-1] = v
		return
	}
	s.dense = append(s.dense, id)
	s.values = append(s.values, v)
	s.sparse[id] = len(s.dense)
}

func (s *SparseSet) remove(id entityID) bool {
	if !s.has(id) {
		return false
	}
	idx := s.sparse[id] - 1
	last := len(s.dense) - 1
	moved := s.dense[last]

	s.dense[idx] = moved
	s.values[idx] = s.values[last]
	s.sparse[moved] = idx + 1

	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[id] = 0
	return true
}

// Len returns the number of stored components.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}
