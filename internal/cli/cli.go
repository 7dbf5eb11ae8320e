// Package cli provides the command-line interface for hookrun.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/hookworks/hookrun/internal/diag"
	"github.com/hookworks/hookrun/internal/dryrun"
	"github.com/hookworks/hookrun/internal/errors"
	"github.com/hookworks/hookrun/internal/fileproc"
	"github.com/hookworks/hookrun/internal/hooks"
	"github.com/hookworks/hookrun/internal/manifest"
	"github.com/hookworks/hookrun/internal/registry"
	"github.com/hookworks/hookrun/internal/runtime"
	"github.com/hookworks/hookrun/internal/version"
)

// options holds the parsed global flags.
type options struct {
	color    bool
	dryRun   bool
	check    bool
	quiet    bool
	verbose  bool
	yes      bool
	output   string
	manifest string
	branches []string
	help     bool
}

// Run executes the CLI with the given arguments and returns an exit
// code for os.Exit.
func Run(args []string) int {
	return RunWith(args, os.Stdout, os.Stderr, os.Stdin, os.Getenv)
}

// RunWith is the injectable form of Run used by tests: streams and the
// environment lookup are explicit so every deployment profile can be
// exercised without touching the real process state.
func RunWith(args []string, stdout, stderr io.Writer, stdin io.Reader, getenv func(string) string) int {
	reg := registry.New()

	if len(args) == 0 {
		printUsage(stdout, reg)
		return 0
	}
	switch args[0] {
	case "-h", "--help", "help":
		printUsage(stdout, reg)
		return 0
	case "--version", "version":
		fmt.Fprintf(stdout, "hookrun %s\n", version.Version)
		return 0
	}

	profile := runtime.StandaloneTool
	if getenv(runtime.EnvEmbedded) == "1" {
		profile = runtime.EmbeddedHook
	}

	hookID := args[0]
	opts, operands, err := parseFlags(hookID, args[1:])
	if err != nil {
		return superviseUsageError(profile, stdout, stderr, err)
	}
	if opts.help {
		hook, ok := reg.Get(hookID)
		if !ok {
			return superviseUsageError(profile, stdout, stderr,
				errors.Usagef("unknown hook %q", hookID))
		}
		printHookUsage(stdout, hook)
		return 0
	}

	// Verbosity, color, and dry-run are resolved here, before any
	// diagnostic is emitted or side effect attempted.
	verbosity := diag.Normal
	switch {
	case opts.quiet:
		verbosity = diag.Quiet
	case opts.verbose:
		verbosity = diag.Verbose
	}
	rc := runtime.Context{
		Profile:   profile,
		Verbosity: verbosity,
		Color:     opts.color,
		DryRun:    opts.dryRun,
		AssumeYes: opts.yes,
	}

	primary := stdout
	var outputFile *os.File
	if opts.output != "" {
		outputFile, err = os.Create(opts.output)
		if err != nil {
			return superviseUsageError(profile, stdout, stderr,
				errors.Usagef("cannot open output file: %v", err))
		}
		defer outputFile.Close()
		primary = outputFile
	}
	w := diag.New(primary, stderr, rc.Verbosity, rc.Color)

	hook, ok := reg.Get(hookID)
	if !ok {
		return runtime.Supervise(rc, w, func(context.Context) error {
			return errors.Usagef("unknown hook %q (known: %v)", hookID, reg.Names())
		})
	}

	return runtime.Supervise(rc, w, func(ctx context.Context) error {
		m, err := loadManifest(opts.manifest, reg)
		if err != nil {
			return err
		}
		return execute(ctx, rc, w, stdin, getenv, hook, m, opts, operands)
	})
}

// parseFlags parses everything after the hook id. The hook id comes
// first and flags may be interspersed with path operands.
func parseFlags(hookID string, args []string) (*options, []string, error) {
	opts := &options{}

	flags := pflag.NewFlagSet("hookrun "+hookID, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.BoolVar(&opts.color, "color", false, "enable colored diagnostics")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "describe side effects instead of performing them")
	flags.BoolVar(&opts.check, "check", false, "report problems without fixing them")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "errors only")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "maximum detail")
	flags.BoolVarP(&opts.yes, "yes", "y", false, "skip confirmation prompts")
	flags.StringVar(&opts.output, "output", "", "write machine-readable findings to this file")
	flags.StringVar(&opts.manifest, "manifest", "", "path to the manifest file")
	flags.StringArrayVar(&opts.branches, "branch", nil, "protected branch (repeatable, branch-guard)")
	flags.BoolVarP(&opts.help, "help", "h", false, "show help")

	if err := flags.Parse(args); err != nil {
		return nil, nil, errors.Usagef("%v", err)
	}
	if opts.quiet && opts.verbose {
		return nil, nil, errors.Usagef("--quiet and --verbose are mutually exclusive")
	}
	return opts, flags.Args(), nil
}

// superviseUsageError routes a pre-context usage error through the
// supervisor so the exit-code policy stays in one place. The fallback
// writer uses default verbosity: the flags that would have configured
// it are exactly what failed to parse.
func superviseUsageError(profile runtime.Profile, stdout, stderr io.Writer, err error) int {
	rc := runtime.Context{Profile: profile, Verbosity: diag.Normal}
	w := diag.New(stdout, stderr, diag.Normal, false)
	return runtime.Supervise(rc, w, func(context.Context) error {
		return err
	})
}

// loadManifest resolves the manifest: an explicit --manifest path, the
// well-known file in the working directory, or the empty default.
// Malformed manifests and unknown hook ids are usage errors raised
// before any file is touched.
func loadManifest(path string, reg *registry.Registry) (*manifest.Manifest, error) {
	if path == "" {
		found, ok := manifest.Find(".")
		if !ok {
			return manifest.Default(), nil
		}
		path = found
	}
	m, err := manifest.Load(path)
	if err != nil {
		return nil, errors.Usagef("%v", err)
	}
	if err := reg.Validate(m); err != nil {
		return nil, errors.Usagef("%v", err)
	}
	return m, nil
}

// execute is the operation body run under supervision.
func execute(ctx context.Context, rc runtime.Context, w *diag.Writer, stdin io.Reader,
	getenv func(string) string, hook *hooks.Hook, m *manifest.Manifest,
	opts *options, operands []string) error {

	if hook.RunEnv != nil {
		if len(operands) > 0 {
			return errors.Usagef("%s takes no file operands", hook.ID)
		}
		branches := opts.branches
		if len(branches) == 0 {
			branches = m.Hook(hook.ID).Branches
		}
		env := hooks.Env{
			FromRef:    getenv(hooks.EnvFromRef),
			ToRef:      getenv(hooks.EnvToRef),
			RemoteName: getenv(hooks.EnvRemoteName),
			RemoteURL:  getenv(hooks.EnvRemoteURL),
		}
		return hook.RunEnv(env, w, branches)
	}

	if len(operands) == 0 {
		w.Detailf("%s: no files to check", hook.ID)
		return nil
	}

	gate := dryrun.New(rc, w, stdin)
	return fileproc.Run(ctx, w, gate, hook.NewCheck(), fileproc.Options{
		Paths:         operands,
		Exclude:       m.Hook(hook.ID).Exclude,
		FixMode:       hook.Fixable && !opts.check,
		ConfirmPrompt: hook.Confirm,
		Report:        opts.output != "",
	})
}
