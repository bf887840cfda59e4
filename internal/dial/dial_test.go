package dial

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		position int
		rotation Rotation
		expected int
	}{
		{
			name:     "right without wrap",
			position: 50,
			rotation: Rotation{Direction: Right, Distance: 30},
			expected: 80,
		},
		{
			name:     "right lands exactly on zero",
			position: 52,
			rotation: Rotation{Direction: Right, Distance: 48},
			expected: 0,
		},
		{
			name:     "left without wrap",
			position: 50,
			rotation: Rotation{Direction: Left, Distance: 30},
			expected: 20,
		},
		{
			name:     "left wraps below zero",
			position: 50,
			rotation: Rotation{Direction: Left, Distance: 68},
			expected: 82,
		},
		{
			name:     "left from zero",
			position: 0,
			rotation: Rotation{Direction: Left, Distance: 1},
			expected: 99,
		},
		{
			name:     "right from ninety-nine",
			position: 99,
			rotation: Rotation{Direction: Right, Distance: 1},
			expected: 0,
		},
		{
			name:     "zero distance is a no-op",
			position: 37,
			rotation: Rotation{Direction: Right, Distance: 0},
			expected: 37,
		},
		{
			name:     "large right distance wraps many times",
			position: 50,
			rotation: Rotation{Direction: Right, Distance: 1000},
			expected: 50,
		},
		{
			name:     "large left distance wraps many times",
			position: 50,
			rotation: Rotation{Direction: Left, Distance: 12345},
			expected: 5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Apply(tc.position, tc.rotation)

			assert.Equal(t, tc.expected, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.Less(t, got, Positions)
		})
	}
}

// TestApply_AlwaysInRange sweeps every start position with a spread of
// distances in both directions and verifies the result never leaves the dial.
func TestApply_AlwaysInRange(t *testing.T) {
	t.Parallel()

	distances := []int{0, 1, 7, 50, 99, 100, 101, 250, 1000, 99999999}
	for position := 0; position < Positions; position++ {
		for _, distance := range distances {
			for _, dir := range []Direction{Left, Right} {
				got := Apply(position, Rotation{Direction: dir, Distance: distance})
				require.GreaterOrEqual(t, got, 0, "position=%d dir=%s distance=%d", position, dir, distance)
				require.Less(t, got, Positions, "position=%d dir=%s distance=%d", position, dir, distance)
			}
		}
	}
}

func TestApplyCounting(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		position       int
		rotation       Rotation
		expectedFinal  int
		expectedZeroes int
	}{
		{
			name:           "zero distance takes no steps",
			position:       0,
			rotation:       Rotation{Direction: Right, Distance: 0},
			expectedFinal:  0,
			expectedZeroes: 0,
		},
		{
			name:           "single step onto zero",
			position:       99,
			rotation:       Rotation{Direction: Right, Distance: 1},
			expectedFinal:  0,
			expectedZeroes: 1,
		},
		{
			name:           "single left step onto zero",
			position:       1,
			rotation:       Rotation{Direction: Left, Distance: 1},
			expectedFinal:  0,
			expectedZeroes: 1,
		},
		{
			name:           "passes through zero once",
			position:       95,
			rotation:       Rotation{Direction: Right, Distance: 10},
			expectedFinal:  5,
			expectedZeroes: 1,
		},
		{
			name:           "ten full wraps to the right",
			position:       50,
			rotation:       Rotation{Direction: Right, Distance: 1000},
			expectedFinal:  50,
			expectedZeroes: 10,
		},
		{
			name:           "partial wrap misses zero",
			position:       10,
			rotation:       Rotation{Direction: Right, Distance: 30},
			expectedFinal:  40,
			expectedZeroes: 0,
		},
		{
			name:           "leaving zero does not count the start",
			position:       0,
			rotation:       Rotation{Direction: Right, Distance: 5},
			expectedFinal:  5,
			expectedZeroes: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			final, zeroes := ApplyCounting(tc.position, tc.rotation)

			assert.Equal(t, tc.expectedFinal, final)
			assert.Equal(t, tc.expectedZeroes, zeroes)
		})
	}
}

// TestApplyCounting_FullWraps verifies that a distance which is an exact
// multiple of the dial size registers exactly one zero per wrap and returns
// to the start position, from every start position and in both directions.
func TestApplyCounting_FullWraps(t *testing.T) {
	t.Parallel()

	for position := 0; position < Positions; position++ {
		for wraps := 1; wraps <= 3; wraps++ {
			for _, dir := range []Direction{Left, Right} {
				rot := Rotation{Direction: dir, Distance: wraps * Positions}
				final, zeroes := ApplyCounting(position, rot)
				require.Equal(t, position, final, "position=%d dir=%s wraps=%d", position, dir, wraps)
				require.Equal(t, wraps, zeroes, "position=%d dir=%s wraps=%d", position, dir, wraps)
			}
		}
	}
}

// TestApplyCounting_AgreesWithApply checks that the step-by-step simulation
// and the closed-form end-state computation land on the same final position.
func TestApplyCounting_AgreesWithApply(t *testing.T) {
	t.Parallel()

	distances := []int{0, 1, 7, 50, 99, 100, 101, 250, 1000}
	for position := 0; position < Positions; position++ {
		for _, distance := range distances {
			for _, dir := range []Direction{Left, Right} {
				rot := Rotation{Direction: dir, Distance: distance}
				final, _ := ApplyCounting(position, rot)
				require.Equal(t, Apply(position, rot), final,
					"position=%d dir=%s distance=%d", position, dir, distance)
			}
		}
	}
}

func TestDirection_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", fmt.Sprint(Right))
}
