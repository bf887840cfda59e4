// Package session loads puzzle definitions from HCL session files. A session
// is the user-facing configuration surface: each `puzzle` block names a
// rotation document and says how it should be counted.
package session

import (
	"github.com/specialistvlad/dialcount/internal/solver"
)

// Puzzle is one configured run: a rotation document plus the counting mode
// and start position to use on it.
type Puzzle struct {
	Name  string
	Input string // absolute path to the rotation document
	Mode  solver.Mode
	Start int
}

// Session aggregates every puzzle block found across the session path. Like
// any real configuration, a session may be split over several files and
// directories; the loader consolidates them into this single view.
type Session struct {
	Puzzles []*Puzzle
}
