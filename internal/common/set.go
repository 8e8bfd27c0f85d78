package common

type Set[T comparable] struct {
	elements map[T]struct{}
}

// NewSet creates a set holding the given values
func NewSet[T comparable](values ...T) *Set[T] {
	s := &Set[T]{
		elements: make(map[T]struct{}, len(values)),
	}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s *Set[T]) Add(value T) {
	s.elements[value] = struct{}{}
}

func (s *Set[T]) Contains(value T) bool {
	_, found := s.elements[value]
	return found
}

func (s *Set[T]) Size() int {
	return len(s.elements)
}
