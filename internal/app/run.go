package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/dialcount/internal/ctxlog"
	"github.com/specialistvlad/dialcount/internal/inputfile"
	"github.com/specialistvlad/dialcount/internal/session"
	"github.com/specialistvlad/dialcount/internal/solver"
)

// Run loads the session and solves every puzzle in it, printing one password
// line per puzzle to the output writer. Puzzles run sequentially in the
// order their blocks were discovered.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	sess, err := session.Load(ctx, a.config.SessionPath)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	if len(sess.Puzzles) == 0 {
		a.logger.Warn("No puzzles found in session, nothing to solve.", "path", a.config.SessionPath)
		return nil
	}

	var override *solver.Mode
	if a.config.Mode != "" {
		mode, err := solver.ParseMode(a.config.Mode)
		if err != nil {
			return err
		}
		override = &mode
	}

	for _, puzzle := range sess.Puzzles {
		mode := puzzle.Mode
		if override != nil {
			mode = *override
		}

		text, err := inputfile.Read(puzzle.Input)
		if err != nil {
			return fmt.Errorf("puzzle %q: %w", puzzle.Name, err)
		}

		count := solver.CountFrom(ctx, text, mode, puzzle.Start)
		a.logger.Info("Puzzle solved.", "puzzle", puzzle.Name, "mode", mode.String(), "count", count)
		fmt.Fprintf(a.outW, "Password: %d\n", count)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
