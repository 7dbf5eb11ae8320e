// Package dryrun gates side effects behind the simulate/confirm
// decision made once per invocation.
package dryrun

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hookworks/hookrun/internal/diag"
	"github.com/hookworks/hookrun/internal/errors"
	"github.com/hookworks/hookrun/internal/runtime"
)

// Coordinator answers two questions for the operation body: "may I
// perform this side effect?" and "what do I do instead?". Its state is
// fixed at construction from the run context.
type Coordinator struct {
	w         *diag.Writer
	active    bool
	assumeYes bool
	announced bool
	stdin     io.Reader
}

// New creates a Coordinator. stdin is read only by the confirmation
// gate; pass os.Stdin outside of tests.
func New(rc runtime.Context, w *diag.Writer, stdin io.Reader) *Coordinator {
	return &Coordinator{
		w:         w,
		active:    rc.DryRun,
		assumeYes: rc.AssumeYes,
		stdin:     stdin,
	}
}

// Active reports whether side effects are simulated.
func (c *Coordinator) Active() bool {
	return c.active
}

// Announce emits the dry-run banner. Emitted at most once per
// invocation, and only when dry-run is active.
func (c *Coordinator) Announce() {
	if !c.active || c.announced {
		return
	}
	c.announced = true
	c.w.DryRunBanner()
}

// WouldApply describes one skipped side effect as an Info message.
func (c *Coordinator) WouldApply(path, what string) {
	c.w.Infof("%s: would %s", path, what)
}

// Confirm blocks for a single yes/no decision before a destructive
// operation. Skipped when --yes was given. A negative or absent answer
// returns a usage error so the supervisor aborts before any side
// effect.
//
// Dry-run implies nothing to confirm; calling Confirm with dry-run
// active is a programming error and fails closed.
func (c *Coordinator) Confirm(prompt string) error {
	if c.active {
		return errors.Usagef("confirmation requested during dry run")
	}
	if c.assumeYes {
		return nil
	}

	fmt.Fprintf(c.w.DiagnosticStream(), "%s [y/N] ", prompt)
	reader := bufio.NewReader(c.stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		// Non-interactive stdin with no answer: refuse rather than
		// guess.
		return errors.Usagef("aborted: confirmation required (use --yes to skip)")
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return nil
	default:
		return errors.Usagef("aborted by user")
	}
}
