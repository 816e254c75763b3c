package generic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlicePoolLength(t *testing.T) {
	p := NewSlicePool[int](4)

	s := p.Get(3)
	assert.Len(t, *s, 3)
	assert.GreaterOrEqual(t, cap(*s), 4)
	p.Put(s)

	big := p.Get(16)
	assert.Len(t, *big, 16)
	p.Put(big)
	p.Put(nil)
}

func TestSlicePoolNegativeHint(t *testing.T) {
	p := NewSlicePool[float64](-1)
	s := p.Get(2)
	assert.Len(t, *s, 2)
}
