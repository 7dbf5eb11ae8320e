package hooks

import (
	"strings"

	"github.com/hookworks/hookrun/internal/diag"
	"github.com/hookworks/hookrun/internal/errors"
)

// defaultProtected is used when neither --branch flags nor the manifest
// name a protected set.
var defaultProtected = []string{"main", "master"}

// branchGuard rejects pushes whose destination ref names a protected
// branch. Context arrives through environment variables set by the
// host from its pre-push arguments; the hook takes no file operands.
func branchGuard(env Env, w *diag.Writer, branches []string) error {
	if env.ToRef == "" {
		return errors.Usagef("branch-guard: %s not set", EnvToRef)
	}
	if len(branches) == 0 {
		branches = defaultProtected
	}

	branch := shortRef(env.ToRef)
	w.Detailf("branch-guard: ref %s remote %s (%s)", env.ToRef, env.RemoteName, env.RemoteURL)

	for _, protected := range branches {
		if branch == protected {
			w.Findingf(env.ToRef, 0, "push to protected branch %q rejected", branch)
			return errors.ErrIssuesFound
		}
	}
	return nil
}

// shortRef strips the refs/heads/ prefix so protected names can be
// given as plain branch names.
func shortRef(ref string) string {
	return strings.TrimPrefix(ref, "refs/heads/")
}
