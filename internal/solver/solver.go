// Package solver drives a dial over a whole rotation document and
// accumulates how often it reads zero. It owns the only long-lived mutable
// state in a run: the current position and the running count.
package solver

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/dialcount/internal/ctxlog"
	"github.com/specialistvlad/dialcount/internal/dial"
)

// StartPosition is where the dial points before the first rotation.
const StartPosition = 50

// Mode selects which zero readings count toward the total.
type Mode int

const (
	// ModeEndOfRotation counts a zero only when a rotation finishes on it.
	ModeEndOfRotation Mode = iota
	// ModeEveryStep counts a zero every time a unit step lands on it, so a
	// single long rotation can contribute several hits.
	ModeEveryStep
)

func (m Mode) String() string {
	if m == ModeEveryStep {
		return "every-step"
	}
	return "end-of-rotation"
}

// ParseMode converts the textual mode names used by session files and the
// -mode flag into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "end-of-rotation":
		return ModeEndOfRotation, nil
	case "every-step":
		return ModeEveryStep, nil
	default:
		return 0, fmt.Errorf("unknown counting mode %q (want %q or %q)",
			s, ModeEndOfRotation, ModeEveryStep)
	}
}

// Count runs the whole document with the dial starting at StartPosition.
func Count(ctx context.Context, input string, mode Mode) int {
	return CountFrom(ctx, input, mode, StartPosition)
}

// CountFrom processes the rotation document line by line, starting the dial
// at the given position. Blank lines are skipped. Lines that fail to parse
// are reported as warnings and skipped without disturbing the accumulated
// position or count, so one malformed line never aborts the run.
func CountFrom(ctx context.Context, input string, mode Mode, start int) int {
	logger := ctxlog.FromContext(ctx)

	position := start
	count := 0

	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		rot, err := dial.ParseRotation(line)
		if err != nil {
			logger.Warn("Skipping invalid rotation.", "line", line, "error", err)
			continue
		}

		switch mode {
		case ModeEveryStep:
			final, zeroes := dial.ApplyCounting(position, rot)
			position = final
			count += zeroes
		default:
			position = dial.Apply(position, rot)
			if position == 0 {
				count++
			}
		}
	}

	return count
}
