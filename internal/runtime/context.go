// Package runtime owns the process lifecycle of a hook invocation: the
// immutable run context, the outcome-to-exit-code policy, and the
// supervisor that is the only component permitted to terminate the
// process.
package runtime

import (
	"github.com/hookworks/hookrun/internal/diag"
)

// EnvEmbedded selects the embedded profile when set to "1" by the host
// orchestrator. The profile is explicit startup configuration; it is
// never inferred from the shape of the environment.
const EnvEmbedded = "HOOKRUN_EMBEDDED"

// Profile is the deployment mode governing interrupt and exit-code
// policy. Fixed before the operation body runs.
type Profile int

const (
	// StandaloneTool is a directly-invoked tool. Interrupts exit with a
	// dedicated code and a one-line warning.
	StandaloneTool Profile = iota

	// EmbeddedHook runs under a host orchestrator that reserves exit
	// codes 3 and 130 for its own signaling. Interrupts re-deliver the
	// signal instead of exiting so the host's bookkeeping stays correct.
	EmbeddedHook
)

func (p Profile) String() string {
	if p == EmbeddedHook {
		return "embedded-hook"
	}
	return "standalone"
}

// Context aggregates everything resolved at startup. It is constructed
// once, before any diagnostic is emitted or side effect attempted, and
// is read-only thereafter.
type Context struct {
	Profile   Profile
	Verbosity diag.Verbosity
	Color     bool
	DryRun    bool
	AssumeYes bool
}
