// Package dial models a circular combination dial with 100 discrete
// positions (0-99) and the rotations applied to it. All functions are pure;
// the dial's state lives with the caller.
package dial

// Positions is the number of discrete positions on the dial. Moving past
// position Positions-1 wraps back to 0 and vice versa.
const Positions = 100

// Direction identifies which way a rotation turns the dial.
type Direction int

const (
	// Left turns the dial toward lower positions, wrapping 0 -> 99.
	Left Direction = iota
	// Right turns the dial toward higher positions, wrapping 99 -> 0.
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Rotation is a single parsed command: turn the dial Distance unit steps in
// Direction. Distance is never negative; the parser enforces this.
type Rotation struct {
	Direction Direction
	Distance  int
}

// Apply returns the dial position after the whole rotation, without visiting
// intermediate positions. The result is always in [0, Positions).
func Apply(position int, rot Rotation) int {
	if rot.Direction == Left {
		// Go's % keeps the sign of the dividend, so normalize explicitly.
		return ((position-rot.Distance)%Positions + Positions) % Positions
	}
	return (position + rot.Distance) % Positions
}

// ApplyCounting simulates the rotation one unit step at a time. It returns
// the final position together with how many of the visited positions read
// exactly zero; a distance that wraps the dial several times registers one
// hit per wrap. A distance of zero takes no steps and counts no zeroes.
func ApplyCounting(position int, rot Rotation) (final int, zeroes int) {
	delta := 1
	if rot.Direction == Left {
		delta = Positions - 1 // a left step, expressed without going negative
	}

	final = position
	for i := 0; i < rot.Distance; i++ {
		final = (final + delta) % Positions
		if final == 0 {
			zeroes++
		}
	}
	return final, zeroes
}
