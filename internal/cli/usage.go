package cli

import (
	"fmt"
	"io"

	"github.com/hookworks/hookrun/internal/hooks"
	"github.com/hookworks/hookrun/internal/registry"
	"github.com/hookworks/hookrun/internal/runtime"
)

func printUsage(out io.Writer, reg *registry.Registry) {
	fmt.Fprintln(out, "hookrun - hook execution runtime for commit validation")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  hookrun <hook> [flags] [paths...]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Hooks:")
	for _, h := range reg.All() {
		fmt.Fprintf(out, "  %-16s %s\n", h.ID, h.Title)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	fmt.Fprintf(out, "  %-16s %s\n", "--check", "report problems without fixing them")
	fmt.Fprintf(out, "  %-16s %s\n", "--dry-run", "describe side effects instead of performing them")
	fmt.Fprintf(out, "  %-16s %s\n", "--color", "enable colored diagnostics")
	fmt.Fprintf(out, "  %-16s %s\n", "-q, --quiet", "errors only")
	fmt.Fprintf(out, "  %-16s %s\n", "-v, --verbose", "maximum detail")
	fmt.Fprintf(out, "  %-16s %s\n", "-y, --yes", "skip confirmation prompts")
	fmt.Fprintf(out, "  %-16s %s\n", "--output <path>", "write machine-readable findings to a file")
	fmt.Fprintf(out, "  %-16s %s\n", "--manifest <path>", "path to the manifest file")
	fmt.Fprintf(out, "  %-16s %s\n", "--branch <name>", "protected branch (repeatable, branch-guard)")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Environment:")
	fmt.Fprintf(out, "  %-22s %s\n", runtime.EnvEmbedded+"=1", "embedded profile: host-reserved exit codes are never emitted")
	fmt.Fprintf(out, "  %-22s %s\n", hooks.EnvToRef, "destination ref for branch-guard")
	fmt.Fprintf(out, "  %-22s %s\n", hooks.EnvFromRef, "source ref for branch-guard")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Exit codes:")
	fmt.Fprintln(out, "  0  nothing to report")
	fmt.Fprintln(out, "  1  issues found (or files fixed)")
	fmt.Fprintln(out, "  2  usage error")
	fmt.Fprintln(out, "  130  interrupted (standalone profile only)")
}

func printHookUsage(out io.Writer, h *hooks.Hook) {
	fmt.Fprintf(out, "hookrun %s - %s\n", h.ID, h.Title)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	if h.RunEnv != nil {
		fmt.Fprintf(out, "  hookrun %s [flags]\n", h.ID)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Reads %s, %s, %s, and %s from the environment.\n",
			hooks.EnvFromRef, hooks.EnvToRef, hooks.EnvRemoteName, hooks.EnvRemoteURL)
	} else {
		fmt.Fprintf(out, "  hookrun %s [flags] <paths...>\n", h.ID)
	}
	if h.Fixable {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Fixes files in place by default; use --check to only report.")
	}
	if h.Confirm != "" {
		fmt.Fprintln(out, "Asks for confirmation before rewriting; use --yes to skip.")
	}
}
