package dial

import (
	"fmt"
	"strconv"
)

// ParseRotation parses one trimmed, non-empty line of a rotation document,
// e.g. "R48" or "L1000". The first byte selects the direction and everything
// after it is the distance in unit steps.
func ParseRotation(line string) (Rotation, error) {
	if len(line) < 2 {
		return Rotation{}, fmt.Errorf("line too short: %q", line)
	}

	var dir Direction
	switch line[0] {
	case 'L':
		dir = Left
	case 'R':
		dir = Right
	default:
		return Rotation{}, fmt.Errorf("invalid direction in %q", line)
	}

	distance, err := strconv.Atoi(line[1:])
	if err != nil {
		return Rotation{}, fmt.Errorf("invalid number in %q: %w", line, err)
	}
	if distance < 0 {
		return Rotation{}, fmt.Errorf("negative distance in %q", line)
	}

	return Rotation{Direction: dir, Distance: distance}, nil
}
