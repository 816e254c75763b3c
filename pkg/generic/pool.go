package generic

import "sync"

// SlicePool recycles backing arrays for short-lived slices. Slices handed out
// by Get have the requested length and unspecified contents.
type SlicePool[T any] struct {
	pool sync.Pool
}

// NewSlicePool creates a pool whose fresh slices start with capHint capacity.
func NewSlicePool[T any](capHint int) *SlicePool[T] {
	if capHint < 0 {
		capHint = 0
	}
	p := &SlicePool[T]{}
	p.pool.New = func() any {
		s := make([]T, 0, capHint)
		return &s
	}
	return p
}

func (p *SlicePool[T]) Get(n int) *[]T {
	s := p.pool.Get().(*[]T)
	if cap(*s) < n {
		*s = make([]T, n)
	}
	*s = (*s)[:n]
	return s
}

func (p *SlicePool[T]) Put(s *[]T) {
	if s == nil {
		return
	}
	*s = (*s)[:0]
	p.pool.Put(s)
}
