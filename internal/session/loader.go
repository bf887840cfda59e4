package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/dialcount/internal/ctxlog"
	"github.com/specialistvlad/dialcount/internal/dial"
	"github.com/specialistvlad/dialcount/internal/fsutil"
	"github.com/specialistvlad/dialcount/internal/solver"
)

// hclSessionFile is the top-level structure of a session file for decoding.
type hclSessionFile struct {
	Puzzles []*hclPuzzle `hcl:"puzzle,block"`
}

// hclPuzzle represents a single `puzzle` block as written by the user.
type hclPuzzle struct {
	Name  string `hcl:"name,label"`
	Input string `hcl:"input"`
	Mode  string `hcl:"mode,optional"`
	Start *int   `hcl:"start,optional"`
}

// Load finds and parses every .hcl file under path (a single file or a
// directory) and merges the puzzle blocks into one Session. Puzzle names
// must be unique across the whole session.
func Load(ctx context.Context, path string) (*Session, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := findSessionFiles(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered session files.", "count", len(files))

	evalCtx := newEvalContext()
	parser := hclparse.NewParser()
	sess := &Session{}
	seen := make(map[string]string) // puzzle name -> defining file

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse session file %s: %w", file, diags)
		}

		var root hclSessionFile
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode session file %s: %w", file, diags)
		}

		for _, block := range root.Puzzles {
			puzzle, err := newPuzzle(block, file)
			if err != nil {
				return nil, err
			}
			if prev, dup := seen[puzzle.Name]; dup {
				return nil, fmt.Errorf("duplicate puzzle %q in %s (already defined in %s)", puzzle.Name, file, prev)
			}
			seen[puzzle.Name] = file
			sess.Puzzles = append(sess.Puzzles, puzzle)
		}
	}

	logger.Debug("Session loading complete.", "puzzles", len(sess.Puzzles))
	return sess, nil
}

// newPuzzle validates one decoded block and resolves its input path relative
// to the file that defined it.
func newPuzzle(block *hclPuzzle, file string) (*Puzzle, error) {
	if block.Input == "" {
		return nil, fmt.Errorf("puzzle %q in %s: input must not be empty", block.Name, file)
	}

	mode := solver.ModeEndOfRotation
	if block.Mode != "" {
		var err error
		mode, err = solver.ParseMode(block.Mode)
		if err != nil {
			return nil, fmt.Errorf("puzzle %q in %s: %w", block.Name, file, err)
		}
	}

	start := solver.StartPosition
	if block.Start != nil {
		start = *block.Start
		if start < 0 || start >= dial.Positions {
			return nil, fmt.Errorf("puzzle %q in %s: start %d is outside the dial range [0,%d]",
				block.Name, file, start, dial.Positions-1)
		}
	}

	input := block.Input
	if !filepath.IsAbs(input) {
		input = filepath.Join(filepath.Dir(file), input)
	}

	return &Puzzle{
		Name:  block.Name,
		Input: input,
		Mode:  mode,
		Start: start,
	}, nil
}

// newEvalContext exposes the process environment to session expressions as
// the `env` object, e.g. input = "${env.HOME}/input.txt".
func newEvalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}

// findSessionFiles accepts either a single session file or a directory tree
// containing .hcl files.
func findSessionFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing session path %s: %w", path, err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find session files in %s: %w", path, err)
	}
	return files, nil
}
