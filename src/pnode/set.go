package pnode

import "time"

// Set is a collection of unique pNode identities. It remembers insertion
// order, which the report formatter relies on for stable truncated listings.
type Set struct {
	ids   []string
	index map[string]bool
}

// NewSet creates a Set from a list of identities, dropping duplicates and
// preserving first-seen order.
func NewSet(ids []string) *Set {
	s := &Set{
		index: make(map[string]bool),
	}

	for _, id := range ids {
		s.Add(id)
	}

	return s
}

// Add inserts an identity unless it is already present.
func (s *Set) Add(id string) {
	if s.index[id] {
		return
	}

	s.index[id] = true
	s.ids = append(s.ids, id)
}

// Contains reports whether the identity belongs to the set.
func (s *Set) Contains(id string) bool {
	if s == nil {
		return false
	}
	return s.index[id]
}

// Len returns the number of identities in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// IDs returns a copy of the identities in insertion order.
func (s *Set) IDs() []string {
	if s == nil {
		return []string{}
	}

	res := make([]string, len(s.ids))
	copy(res, s.ids)

	return res
}

// Equals reports whether two sets contain the same identities, regardless of
// order.
func (s *Set) Equals(o *Set) bool {
	if s.Len() != o.Len() {
		return false
	}

	if s == nil {
		return true
	}

	for _, id := range s.ids {
		if !o.Contains(id) {
			return false
		}
	}

	return true
}

// Snapshot pairs a node set with the time it was observed. One snapshot is
// produced per successful sampling cycle.
type Snapshot struct {
	Nodes   *Set
	TakenAt time.Time
}
