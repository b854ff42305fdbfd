package models

import "encoding/json"

// FavoriteSet is a set of course ids that remembers insertion order.
// The zero value is an empty set ready to use.
type FavoriteSet struct {
	ids   []int64
	index map[int64]struct{}
}

// NewFavoriteSet builds a set from ids, dropping duplicates.
func NewFavoriteSet(ids ...int64) *FavoriteSet {
	s := &FavoriteSet{}
	for _, id := range ids {
		s.add(id)
	}
	return s
}

func (s *FavoriteSet) add(id int64) {
	if s.index == nil {
		s.index = make(map[int64]struct{})
	}
	if _, ok := s.index[id]; ok {
		return
	}
	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *FavoriteSet) remove(id int64) {
	if _, ok := s.index[id]; !ok {
		return
	}
	delete(s.index, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
}

// Has reports membership.
func (s *FavoriteSet) Has(id int64) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[id]
	return ok
}

// Toggle adds id when absent and removes it when present.
// It returns the membership after the flip.
func (s *FavoriteSet) Toggle(id int64) bool {
	if s.Has(id) {
		s.remove(id)
		return false
	}
	s.add(id)
	return true
}

// Len returns the number of ids.
func (s *FavoriteSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// IDs returns the ids in insertion order. The slice is a copy.
func (s *FavoriteSet) IDs() []int64 {
	if s == nil {
		return []int64{}
	}
	out := make([]int64, len(s.ids))
	copy(out, s.ids)
	return out
}

// Clone returns an independent copy.
func (s *FavoriteSet) Clone() *FavoriteSet {
	return NewFavoriteSet(s.IDs()...)
}

// MarshalJSON encodes the set as an array of ids.
func (s *FavoriteSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

// UnmarshalJSON decodes an array of ids, dropping duplicates.
func (s *FavoriteSet) UnmarshalJSON(data []byte) error {
	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = *NewFavoriteSet(ids...)
	return nil
}
