// Package hooks contains the builtin check/fix collaborators. Each
// hook supplies per-file inspection logic behind the fileproc
// interfaces; the runtime owns everything else (lifecycle, exit codes,
// diagnostics, dry-run, progress).
package hooks

import (
	"os"

	"github.com/hookworks/hookrun/internal/diag"
	"github.com/hookworks/hookrun/internal/fileproc"
)

// Hook describes one builtin hook.
type Hook struct {
	// ID is the name used on the command line and in the manifest.
	ID string

	// Title is the one-line summary shown in help output.
	Title string

	// Fixable hooks rewrite files in place unless --check is given.
	Fixable bool

	// Confirm, when non-empty, marks the fix destructive: the prompt is
	// shown before any file is rewritten unless --yes or --dry-run.
	Confirm string

	// NewCheck constructs a fresh collaborator for one invocation.
	// Constructed per run so set-level checks start with clean state.
	// Nil for hooks that take no file operands.
	NewCheck func() fileproc.Check

	// RunEnv is the body of a no-file hook driven by reference
	// environment variables instead of operands. The branches argument
	// comes from --branch flags or the manifest.
	RunEnv func(env Env, w *diag.Writer, branches []string) error
}

// Environment variables supplying push context to no-file hooks. Set
// by the host from its own pre-push arguments.
const (
	EnvFromRef    = "HOOKRUN_FROM_REF"
	EnvToRef      = "HOOKRUN_TO_REF"
	EnvRemoteName = "HOOKRUN_REMOTE_NAME"
	EnvRemoteURL  = "HOOKRUN_REMOTE_URL"
)

// Env carries the push context for no-file hooks.
type Env struct {
	FromRef    string
	ToRef      string
	RemoteName string
	RemoteURL  string
}

// EnvFromProcess reads the push context from the process environment.
func EnvFromProcess() Env {
	return Env{
		FromRef:    os.Getenv(EnvFromRef),
		ToRef:      os.Getenv(EnvToRef),
		RemoteName: os.Getenv(EnvRemoteName),
		RemoteURL:  os.Getenv(EnvRemoteURL),
	}
}

// Builtins returns the builtin hooks in registration order.
func Builtins() []*Hook {
	return []*Hook{
		{
			ID:       "trailing-space",
			Title:    "Detect and remove trailing whitespace",
			Fixable:  true,
			NewCheck: func() fileproc.Check { return &trailingSpace{} },
		},
		{
			ID:       "eof-newline",
			Title:    "Require exactly one newline at end of file",
			Fixable:  true,
			NewCheck: func() fileproc.Check { return &eofNewline{} },
		},
		{
			ID:       "crlf",
			Title:    "Detect and convert CRLF line endings",
			Fixable:  true,
			Confirm:  "rewrite line endings in place?",
			NewCheck: func() fileproc.Check { return &crlf{} },
		},
		{
			ID:       "case-conflict",
			Title:    "Detect filenames that collide under case folding",
			NewCheck: func() fileproc.Check { return newCaseConflict() },
		},
		{
			ID:     "branch-guard",
			Title:  "Reject pushes to protected branches",
			RunEnv: branchGuard,
		},
	}
}
