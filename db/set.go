package db

// Set is a forgiving front end over Table: removing a missing member is a
// no-op reported by the return value instead of an error.
type Set[T Hashable[T]] struct {
	data *Table[T]
}

// NewSet creates a new Set
func NewSet[T Hashable[T]](initSize int, opts ...Option) (*Set[T], error) {
	data, err := NewTable[T](initSize, opts...)
	if err != nil {
		return nil, err
	}
	return &Set[T]{data: data}, nil
}

// Add inserts a key into the set, returns false if it was already there
func (s *Set[T]) Add(key T) bool {
	return s.data.Insert(key)
}

// Contains checks if a key is in the set
func (s *Set[T]) Contains(key T) bool {
	return s.data.Contains(key)
}

// Remove deletes a key from the set, returns false if it was not there
func (s *Set[T]) Remove(key T) bool {
	if !s.data.Contains(key) {
		return false
	}
	return s.data.Remove(key) == nil
}

// Len returns the number of members
func (s *Set[T]) Len() int {
	return s.data.Len()
}

// Members returns every member in table order
func (s *Set[T]) Members() []T {
	return s.data.Items()
}

// Table exposes the underlying table for inspection.
func (s *Set[T]) Table() *Table[T] {
	return s.data
}
