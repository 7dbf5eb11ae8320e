package runtime

import "github.com/hookworks/hookrun/pkg/hookrun"

// Outcome is the result of one hook invocation. Produced exactly once,
// by the supervisor, from the operation body's return and the recorded
// signal state.
type Outcome int

const (
	Success Outcome = iota
	IssuesFound
	UsageError
	InternalFault
	InterruptedByUser
	TerminatedBySignal
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case IssuesFound:
		return "issues-found"
	case UsageError:
		return "usage-error"
	case InternalFault:
		return "internal-fault"
	case InterruptedByUser:
		return "interrupted"
	case TerminatedBySignal:
		return "terminated"
	default:
		return "unknown"
	}
}

// Resolve maps an outcome to the exit code for the profile. The second
// result reports that the supervisor must re-deliver the interrupt
// signal instead of calling exit; it is true only for an interrupt
// under the embedded profile.
func Resolve(p Profile, o Outcome) (int, bool) {
	switch o {
	case Success:
		return hookrun.ExitSuccess, false
	case IssuesFound, InternalFault:
		return hookrun.ExitIssuesFound, false
	case UsageError:
		return hookrun.ExitUsageError, false
	case InterruptedByUser:
		if p == EmbeddedHook {
			return hookrun.ExitIssuesFound, true
		}
		return hookrun.ExitInterrupted, false
	case TerminatedBySignal:
		if p == EmbeddedHook {
			return hookrun.ExitIssuesFound, false
		}
		return hookrun.ExitInterrupted, false
	default:
		return hookrun.ExitIssuesFound, false
	}
}

// Clamp rewrites an explicitly requested exit code that collides with a
// host-reserved value. Only the embedded profile clamps.
func Clamp(p Profile, code int) int {
	if p != EmbeddedHook {
		return code
	}
	for _, reserved := range hookrun.HostReserved {
		if code == reserved {
			return hookrun.ExitIssuesFound
		}
	}
	return code
}
