// Package resource holds GPU resources that can be rebuilt at runtime.
package resource

// Releaser frees the underlying resource.
type Releaser interface {
	Release()
}

// Slot owns one resource and replaces it only when a rebuild succeeds.
type Slot[T Releaser] struct {
	cur   T
	valid bool
	gen   int
}

// Get returns the current resource and whether one is loaded.
func (s *Slot[T]) Get() (T, bool) {
	return s.cur, s.valid
}

// Generation counts successful loads.
func (s *Slot[T]) Generation() int {
	return s.gen
}

// Set installs v, releasing the previous resource.
func (s *Slot[T]) Set(v T) {
	if s.valid {
		s.cur.Release()
	}
	s.cur = v
	s.valid = true
	s.gen++
}

// Reload calls build and swaps in the result. On error the current resource
// stays live and the error is returned.
func (s *Slot[T]) Reload(build func() (T, error)) error {
	v, err := build()
	if err != nil {
		return err
	}
	s.Set(v)
	return nil
}

// Release frees the current resource and empties the slot.
func (s *Slot[T]) Release() {
	if s.valid {
		s.cur.Release()
	}
	var zero T
	s.cur = zero
	s.valid = false
}
