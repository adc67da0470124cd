package walk_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sawcount/walk"
)

// known holds OEIS A001411 for n = 0..12.
var known = []uint64{1, 4, 12, 36, 100, 284, 780, 2172, 5916, 16268, 44100, 120292, 324932}

func TestCount_KnownValues(t *testing.T) {
	for n, want := range known {
		got, err := walk.Count(n)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, want, got, "n=%d", n)
	}
}

func TestCount_Zero(t *testing.T) {
	got, err := walk.Count(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got)

	got, err = walk.Count(0, walk.WithoutSymmetry(), walk.WithStrategy(walk.Iterative))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got)
}

func TestCount_Deterministic(t *testing.T) {
	first, err := walk.Count(9)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := walk.Count(9)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCount_NegativeSteps(t *testing.T) {
	got, err := walk.Count(-1)
	assert.ErrorIs(t, err, walk.ErrNegativeSteps)
	assert.Zero(t, got)

	_, err = walk.CountFirstStep(-3, walk.Up)
	assert.ErrorIs(t, err, walk.ErrNegativeSteps)

	_, err = walk.CountReference(-2)
	assert.ErrorIs(t, err, walk.ErrNegativeSteps)
}

func TestCount_TooManySteps(t *testing.T) {
	_, err := walk.Count(walk.MaxSteps + 1)
	assert.ErrorIs(t, err, walk.ErrTooManySteps)

	_, err = walk.CountReference(walk.MaxSteps + 1)
	assert.ErrorIs(t, err, walk.ErrTooManySteps)
}

func TestCount_UnknownStrategy(t *testing.T) {
	_, err := walk.Count(3, walk.WithStrategy(walk.Strategy(7)))
	assert.ErrorIs(t, err, walk.ErrUnknownStrategy)
}

func TestCount_StrictlyIncreasing(t *testing.T) {
	prev, err := walk.Count(1)
	require.NoError(t, err)
	for n := 2; n <= 11; n++ {
		cur, err := walk.Count(n)
		require.NoError(t, err)
		assert.Greater(t, cur, prev, "n=%d", n)
		prev = cur
	}
}

func TestCount_SymmetryReduction(t *testing.T) {
	for n := 1; n <= 10; n++ {
		reduced, err := walk.Count(n)
		require.NoError(t, err)

		full, err := walk.Count(n, walk.WithoutSymmetry())
		require.NoError(t, err)
		assert.Equal(t, full, reduced, "n=%d", n)

		for _, d := range walk.Directions {
			one, err := walk.CountFirstStep(n, d)
			require.NoError(t, err)
			assert.Equal(t, reduced, 4*one, "n=%d first=%s", n, d)
		}
	}
}

func TestCountFirstStep_Edges(t *testing.T) {
	got, err := walk.CountFirstStep(0, walk.Left)
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = walk.CountFirstStep(1, walk.Down)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got)

	_, err = walk.CountFirstStep(2, walk.Direction(4))
	assert.ErrorIs(t, err, walk.ErrUnknownDirection)
}

func TestCount_StrategiesAgree(t *testing.T) {
	for n := 0; n <= 12; n++ {
		rec, err := walk.Count(n, walk.WithStrategy(walk.Recursive))
		require.NoError(t, err)
		it, err := walk.Count(n, walk.WithStrategy(walk.Iterative))
		require.NoError(t, err)
		itFull, err := walk.Count(n, walk.WithStrategy(walk.Iterative), walk.WithoutSymmetry())
		require.NoError(t, err)

		assert.Equal(t, rec, it, "n=%d", n)
		assert.Equal(t, rec, itFull, "n=%d", n)
	}
}

func TestCountReference_MatchesCount(t *testing.T) {
	for n := 0; n <= 10; n++ {
		ref, err := walk.CountReference(n)
		require.NoError(t, err)
		fast, err := walk.Count(n)
		require.NoError(t, err)
		assert.Equal(t, ref, fast, "n=%d", n)
		assert.Equal(t, known[n], ref, "n=%d", n)
	}
}

func TestCount_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, s := range []walk.Strategy{walk.Recursive, walk.Iterative} {
		got, err := walk.Count(12, walk.WithContext(ctx), walk.WithStrategy(s))
		assert.ErrorIs(t, err, context.Canceled, "strategy=%s", s)
		assert.Zero(t, got, "strategy=%s", s)
	}
}

func TestCount_LiveContextCompletes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got, err := walk.Count(12, walk.WithContext(ctx))
	require.NoError(t, err)
	assert.Equal(t, known[12], got)
}

func TestCount_NilContextIgnored(t *testing.T) {
	got, err := walk.Count(3, walk.WithContext(nil))
	require.NoError(t, err)
	assert.Equal(t, uint64(36), got)
}

func TestDirection_OffsetAndString(t *testing.T) {
	sumX, sumY := 0, 0
	for _, d := range walk.Directions {
		require.True(t, d.Valid())
		dx, dy := d.Offset()
		assert.Equal(t, 1, abs(dx)+abs(dy), "direction %s must be a unit step", d)
		sumX += dx
		sumY += dy
	}
	assert.Zero(t, sumX)
	assert.Zero(t, sumY)

	assert.Equal(t, "right", walk.FirstStep.String())
	assert.Equal(t, "unknown", walk.Direction(9).String())
	assert.False(t, walk.Direction(-1).Valid())
	assert.Equal(t, "iterative", walk.Iterative.String())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
