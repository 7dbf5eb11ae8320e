package runtime

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hookworks/hookrun/internal/diag"
	"github.com/hookworks/hookrun/internal/errors"
	"github.com/hookworks/hookrun/pkg/hookrun"
)

// Operation is the hook body run under supervision. The context is
// cancelled when a termination signal arrives; the body must observe it
// between any two file operations at the latest.
type Operation func(ctx context.Context) error

// Supervise runs op inside the process boundary and returns the exit
// code for main to pass to os.Exit. It installs signal interception
// before the body runs, recovers panics into internal faults, and is
// the single place where outcomes become exit codes.
//
// Under the embedded profile a user interrupt does not return normally:
// the interrupt signal is re-delivered with its default disposition and
// the process dies by signal, which is what the host expects.
func Supervise(rc Context, w *diag.Writer, op Operation) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// SIGPIPE is in the notify set only so the Go runtime stops killing
	// the process on EPIPE writes to stdout; the error then surfaces
	// through the diag writer and is handled as a benign disconnect.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGPIPE)
	defer signal.Stop(sigCh)

	received := make(chan os.Signal, 1)
	go func() {
		for sig := range sigCh {
			if sig == syscall.SIGPIPE {
				continue
			}
			select {
			case received <- sig:
			default:
			}
			cancel()
		}
	}()

	err := runBody(ctx, op)

	var sig os.Signal
	select {
	case sig = <-received:
	default:
	}

	code, reraise := conclude(rc, w, err, sig)
	if reraise {
		reraiseInterrupt()
		// Unreachable unless signal delivery is delayed; never a
		// host-reserved code.
		return hookrun.ExitIssuesFound
	}
	return code
}

// runBody invokes the operation, converting an escaped panic into an
// ordinary error so the supervisor reports it as an internal fault
// instead of crashing with a stack trace mid-line.
func runBody(ctx context.Context, op Operation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return op(ctx)
}

// conclude turns the body's error and the recorded signal into an exit
// code. Catch order: explicit termination request, downstream
// disconnect, signal, usage error, issues, fault.
func conclude(rc Context, w *diag.Writer, err error, sig os.Signal) (int, bool) {
	var request *errors.ExitRequest
	if stderrors.As(err, &request) {
		return Clamp(rc.Profile, request.Code), false
	}

	if stderrors.Is(err, errors.ErrPipeClosed) {
		// The reader closed the stream after seeing what it wanted.
		return Resolve(rc.Profile, Success)
	}

	switch sig {
	case os.Interrupt:
		if rc.Profile == StandaloneTool {
			w.Warningf("interrupted")
		}
		return Resolve(rc.Profile, InterruptedByUser)
	case syscall.SIGTERM:
		if rc.Profile == StandaloneTool {
			w.Warningf("terminated")
		}
		// Embedded hosts expect silent shutdown on termination.
		return Resolve(rc.Profile, TerminatedBySignal)
	}

	switch {
	case err == nil:
		return Resolve(rc.Profile, Success)
	case errors.IsUsage(err):
		w.Errorf("hookrun: %v", err)
		return Resolve(rc.Profile, UsageError)
	case stderrors.Is(err, errors.ErrIssuesFound):
		// Finding lines were already emitted; the code says the rest.
		return Resolve(rc.Profile, IssuesFound)
	default:
		w.Errorf("hookrun: internal error: %v", err)
		return Resolve(rc.Profile, InternalFault)
	}
}

// reraiseInterrupt restores the default SIGINT disposition and delivers
// the signal to this process, so the parent observes death-by-signal
// rather than an exit code it may have reserved.
func reraiseInterrupt() {
	signal.Reset(os.Interrupt)
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGINT)
	// Delivery is asynchronous; give it a moment before the fallback
	// return in Supervise.
	time.Sleep(100 * time.Millisecond)
}
