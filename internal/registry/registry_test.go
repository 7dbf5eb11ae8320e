package registry

import (
	"sort"
	"strings"
	"testing"

	"github.com/hookworks/hookrun/internal/manifest"
)

func TestBuiltinsRegistered(t *testing.T) {
	t.Parallel()

	r := New()
	for _, id := range []string{"trailing-space", "eof-newline", "crlf", "case-conflict", "branch-guard"} {
		if _, ok := r.Get(id); !ok {
			t.Errorf("builtin %q not registered", id)
		}
	}
	if _, ok := r.Get("no-such-hook"); ok {
		t.Error("unknown id resolved")
	}
}

func TestNamesSorted(t *testing.T) {
	t.Parallel()

	names := New().Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	if len(names) != len(New().All()) {
		t.Errorf("Names() and All() disagree on count")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	r := New()
	ok := &manifest.Manifest{Hooks: map[string]manifest.Hook{
		"trailing-space": {},
		"branch-guard":   {},
	}}
	if err := r.Validate(ok); err != nil {
		t.Errorf("valid manifest rejected: %v", err)
	}

	bad := &manifest.Manifest{Hooks: map[string]manifest.Hook{
		"trailing-whitespace": {},
	}}
	err := r.Validate(bad)
	if err == nil {
		t.Fatal("unknown manifest id accepted")
	}
	if !strings.Contains(err.Error(), "trailing-whitespace") {
		t.Errorf("error does not name the offending id: %v", err)
	}
}

func TestTitleOverride(t *testing.T) {
	t.Parallel()

	r := New()
	h, _ := r.Get("trailing-space")

	if got := r.Title(h, manifest.Default()); got != h.Title {
		t.Errorf("Title without override = %q, want %q", got, h.Title)
	}

	m := &manifest.Manifest{Hooks: map[string]manifest.Hook{
		"trailing-space": {Description: "Strip trailing blanks"},
	}}
	if got := r.Title(h, m); got != "Strip trailing blanks" {
		t.Errorf("Title with override = %q", got)
	}
}
