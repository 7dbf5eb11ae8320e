// Package hookrun provides public constants for host orchestrators
// integrating with hookrun-based hooks.
package hookrun

// Exit codes returned by hookrun binaries.
// These constants allow host processes to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates the hook completed and found nothing to report.
	ExitSuccess = 0

	// ExitIssuesFound indicates the hook ran to completion and found
	// problems (including files it could not read). Fix-mode hooks that
	// modified files also exit with this code so the host re-examines
	// the working tree.
	ExitIssuesFound = 1

	// ExitUsageError indicates a malformed invocation (bad flags, unknown
	// hook, invalid manifest). Emitted before any file is touched.
	ExitUsageError = 2

	// ExitInterrupted indicates the run was cut short by SIGINT or
	// SIGTERM. Only the standalone profile emits this code; under the
	// embedded profile the interrupt signal is re-delivered instead so
	// the host's own signal bookkeeping stays correct.
	ExitInterrupted = 130
)

// Host-reserved exit codes. The embedded profile never emits these
// values on any path; a hook that asks for one is clamped to
// ExitIssuesFound.
var HostReserved = []int{3, 130}
