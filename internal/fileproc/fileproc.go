// Package fileproc drives a check or fix collaborator over a set of
// file operands: read each file, collect findings, map per-unit
// failures to single diagnostic lines, and keep going. Failures on one
// file never abort the remaining files; the outcome is decided after
// the whole set has been seen.
package fileproc

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"unicode/utf8"

	"github.com/hookworks/hookrun/internal/diag"
	"github.com/hookworks/hookrun/internal/dryrun"
	"github.com/hookworks/hookrun/internal/errors"
	"github.com/hookworks/hookrun/internal/progress"
)

// Finding is one problem located in one file. Line is 1-based; zero
// means the finding applies to the file as a whole.
type Finding struct {
	Line    int
	Message string
}

// Check inspects one file and reports its problems. Implementations
// may keep state across calls (set-level checks such as filename
// conflicts) but must not touch the filesystem.
type Check interface {
	Inspect(path string, content []byte) []Finding
}

// Fixer is a Check that can also produce corrected content. The
// returned findings describe the problems that were (or would be)
// corrected, one per file, phrased as a problem description.
type Fixer interface {
	Check
	Fix(path string, content []byte) ([]byte, []Finding)
}

// Options configures one processing run.
type Options struct {
	// Paths are the file operands, in invocation order.
	Paths []string

	// Exclude holds glob patterns (manifest-supplied) removed from the
	// operand set before processing.
	Exclude []string

	// FixMode rewrites files in place when the collaborator is a Fixer.
	FixMode bool

	// ConfirmPrompt, when non-empty and FixMode is set, gates the run
	// behind a single yes/no decision.
	ConfirmPrompt string

	// Report mirrors findings to the primary stream in machine-readable
	// form ("path:line:message").
	Report bool
}

// Run processes every operand and returns nil, ErrIssuesFound, a usage
// error from the confirmation gate, or ErrPipeClosed. Cancellation is
// observed between any two file operations.
func Run(ctx context.Context, w *diag.Writer, gate *dryrun.Coordinator, check Check, opts Options) error {
	paths := filterExcluded(w, opts.Paths, opts.Exclude)

	fixer, canFix := check.(Fixer)
	fixing := canFix && opts.FixMode

	gate.Announce()
	if fixing && opts.ConfirmPrompt != "" && !gate.Active() {
		if err := gate.Confirm(opts.ConfirmPrompt); err != nil {
			return err
		}
	}

	reporter := progress.New(w, len(paths))
	if len(paths) > 0 {
		reporter.Start(paths[0])
	}
	defer reporter.Stop()

	issues := 0
	for i, p := range paths {
		if ctx.Err() != nil {
			// A termination signal arrived; the supervisor decides what
			// the early return means.
			return nil
		}
		if w.BrokenPipe() {
			return errors.ErrPipeClosed
		}

		issues += processOne(w, gate, fixer, check, fixing, p, opts.Report)

		if i+1 < len(paths) {
			reporter.Advance(paths[i+1])
		} else {
			reporter.Advance(p)
		}
	}

	if gate.Active() {
		// Dry run performed no side effects; the outcome collapses to
		// success no matter what would have been found.
		return nil
	}
	if issues > 0 {
		return errors.ErrIssuesFound
	}
	return nil
}

// processOne handles a single operand and returns the number of
// findings (a per-unit failure counts as one).
func processOne(w *diag.Writer, gate *dryrun.Coordinator, fixer Fixer, check Check, fixing bool, p string, report bool) int {
	content, uerr := readFile(p)
	if uerr != nil {
		w.Findingf(uerr.Path, 0, "%s", uerr.Message())
		if report {
			w.Dataf("%s:%s", uerr.Path, uerr.Message())
		}
		return 1
	}

	if fixing {
		fixed, findings := fixer.Fix(p, content)
		if len(findings) == 0 {
			return 0
		}
		if gate.Active() {
			for _, f := range findings {
				gate.WouldApply(p, "fix "+f.Message)
			}
			return len(findings)
		}
		if err := writeBack(p, fixed); err != nil {
			w.Findingf(p, 0, "cannot write: %v", err)
			return 1
		}
		for _, f := range findings {
			w.Infof("%s: fixed %s", p, f.Message)
			if report {
				w.Dataf("%s:%d:%s", p, f.Line, f.Message)
			}
		}
		return len(findings)
	}

	findings := check.Inspect(p, content)
	for _, f := range findings {
		w.Findingf(p, f.Line, "%s", f.Message)
		if report {
			w.Dataf("%s:%d:%s", p, f.Line, f.Message)
		}
	}
	return len(findings)
}

// readFile maps read failures to the closed per-unit failure set.
func readFile(p string) ([]byte, *errors.UnitError) {
	content, err := os.ReadFile(p)
	switch {
	case err == nil:
	case os.IsNotExist(err):
		return nil, &errors.UnitError{Path: p, Kind: errors.UnitNotFound, Err: err}
	case os.IsPermission(err):
		return nil, &errors.UnitError{Path: p, Kind: errors.UnitPermission, Err: err}
	default:
		return nil, &errors.UnitError{Path: p, Kind: errors.UnitOther, Err: err}
	}
	if !utf8.Valid(content) {
		return nil, &errors.UnitError{Path: p, Kind: errors.UnitDecode}
	}
	return content, nil
}

// writeBack rewrites the original input path in place, preserving the
// permission bits, so the host's change detection observes the
// modification. Never writes to a temporary or renamed path.
func writeBack(p string, content []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(p); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(p, content, mode)
}

// filterExcluded drops operands matching a manifest exclude pattern.
// Patterns match against the slash form of the operand.
func filterExcluded(w *diag.Writer, paths, exclude []string) []string {
	if len(exclude) == 0 {
		return paths
	}
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if excluded(p, exclude) {
			w.Detailf("%s: skipped (excluded by manifest)", p)
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

func excluded(p string, patterns []string) bool {
	slashed := filepath.ToSlash(p)
	for _, pattern := range patterns {
		if ok, err := path.Match(pattern, slashed); err == nil && ok {
			return true
		}
		if ok, err := path.Match(pattern, path.Base(slashed)); err == nil && ok {
			return true
		}
	}
	return false
}
