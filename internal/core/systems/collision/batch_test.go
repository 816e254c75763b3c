package collision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/torus/internal/core/systems/physics"
)

func TestCheckPairs(t *testing.T) {
	w := newTestWorld(t, WithConcurrency(3))

	shapes := []*Shape{
		place(t, w, square(1), physics.V2(10, 10)),
		place(t, w, square(1), physics.V2(10.5, 10)),
		place(t, w, square(1), physics.V2(50, 50)),
		place(t, w, square(1), physics.V2(99.8, 10)),
	}
	pairs := AllPairs(shapes)
	require.Len(t, pairs, 6)

	contacts, err := w.CheckPairs(context.Background(), pairs)
	require.NoError(t, err)
	require.Len(t, contacts, len(pairs))

	for i, p := range pairs {
		want, err := p.A.CheckCollision(p.B)
		require.NoError(t, err)
		assert.Equal(t, want, contacts[i], "pair %d", i)
	}

	assert.True(t, contacts[0].Overlapping, "0-1 overlap")
	assert.False(t, contacts[1].Overlapping, "0-2 apart")
}

func TestCheckPairsStopsOnGeometryError(t *testing.T) {
	w := newTestWorld(t)
	ok := place(t, w, square(1), physics.V2(10, 10))
	bad := place(t, w, []physics.Vec2{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}}, physics.V2(10, 10))

	contacts, err := w.CheckPairs(context.Background(), []Pair{{A: ok, B: ok}, {A: ok, B: bad}})
	assert.ErrorIs(t, err, ErrDegenerateAxis)
	assert.Nil(t, contacts)
}

func TestCheckPairsCanceled(t *testing.T) {
	w := newTestWorld(t)
	a := place(t, w, square(1), physics.V2(10, 10))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := w.CheckPairs(ctx, []Pair{{A: a, B: a}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAllPairs(t *testing.T) {
	w := newTestWorld(t)
	assert.Nil(t, AllPairs(nil))
	assert.Nil(t, AllPairs([]*Shape{place(t, w, square(1), physics.V2(0, 0))}))

	shapes := make([]*Shape, 5)
	for i := range shapes {
		shapes[i] = place(t, w, square(1), physics.V2(float64(i), 0))
	}
	pairs := AllPairs(shapes)
	assert.Len(t, pairs, 10)
	assert.Same(t, shapes[0], pairs[0].A)
	assert.Same(t, shapes[4], pairs[9].B)
}
