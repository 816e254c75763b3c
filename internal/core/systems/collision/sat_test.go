package collision

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/torus/internal/core/systems/physics"
)

func translate(points []physics.Vec2, by physics.Vec2) []physics.Vec2 {
	return physics.NewTransform(by).ApplyAll(points)
}

func TestCheckSeparability(t *testing.T) {
	tests := []struct {
		name      string
		p1, p2    []physics.Vec2
		separable bool
		depth     float64
	}{
		{"overlap half", square(1), translate(square(1), physics.V2(0.5, 0)), false, 0.5},
		{"identical", square(2), square(2), false, 2},
		{"apart", square(1), translate(square(1), physics.V2(3, 0)), true, 0},
		{"touching", square(1), translate(square(1), physics.V2(1, 0)), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			separable, mtv, err := CheckSeparability(tt.p1, tt.p2)
			require.NoError(t, err)
			assert.Equal(t, tt.separable, separable)
			assert.InDelta(t, tt.depth, mtv.Length(), eps)
		})
	}
}

func TestClosingEdgeIsTested(t *testing.T) {
	// Only the edge from the last vertex back to the first separates these.
	p1 := []physics.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}}
	p2 := []physics.Vec2{{X: -3, Y: 0.5}, {X: -1, Y: 0.5}, {X: -1, Y: 1.5}}

	separable, _, err := CheckSeparability(p1, p2)
	require.NoError(t, err)
	assert.True(t, separable)

	axes, err := edgeAxes(p1)
	require.NoError(t, err)
	require.Len(t, axes, 3)
	open, _ := separate(axes[:2], p1, p2)
	assert.False(t, open, "without the closing edge no axis separates")
}

func TestEdgeAxesAreUnitNormals(t *testing.T) {
	p := regular(7, 3)
	axes, err := edgeAxes(p)
	require.NoError(t, err)

	for i, axis := range axes {
		edge := p[(i+1)%len(p)].Sub(p[i])
		assert.InDelta(t, 1, axis.Length(), eps)
		assert.InDelta(t, 0, axis.Dot(edge), eps)
	}
}

func TestCheckSeparabilityErrors(t *testing.T) {
	_, _, err := CheckSeparability(square(1)[:2], square(1))
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	_, _, err = CheckSeparability(square(1), nil)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	dup := []physics.Vec2{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}}
	_, _, err = CheckSeparability(dup, square(1))
	assert.ErrorIs(t, err, ErrDegenerateAxis)

	nan := []physics.Vec2{{X: 0, Y: 0}, {X: math.NaN(), Y: 0}, {X: 1, Y: 1}}
	_, _, err = CheckSeparability(nan, square(1))
	assert.ErrorIs(t, err, ErrDegenerateAxis)
}

func TestProject(t *testing.T) {
	lo, hi := project(physics.V2(1, 0), []physics.Vec2{{X: 3, Y: 9}, {X: -2, Y: 0}, {X: 5, Y: 1}, {X: 0, Y: 0}})
	assert.Equal(t, -2.0, lo)
	assert.Equal(t, 5.0, hi)
}

func BenchmarkCheckSeparability(b *testing.B) {
	p1 := regular(12, 2)
	p2 := translate(regular(12, 2), physics.V2(1, 1))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = CheckSeparability(p1, p2)
	}
}
