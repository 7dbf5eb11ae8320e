package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `
hooks:
  trailing-space:
    description: Strip trailing blanks
    exclude:
      - "*.min.js"
      - vendor/*
  branch-guard:
    branches:
      - main
      - release
`)

	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	ts := m.Hook("trailing-space")
	if ts.Description != "Strip trailing blanks" {
		t.Errorf("description = %q", ts.Description)
	}
	if len(ts.Exclude) != 2 || ts.Exclude[0] != "*.min.js" {
		t.Errorf("exclude = %v", ts.Exclude)
	}
	bg := m.Hook("branch-guard")
	if len(bg.Branches) != 2 || bg.Branches[1] != "release" {
		t.Errorf("branches = %v", bg.Branches)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	t.Parallel()

	m, err := Load(writeManifest(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Hook("anything"); got.Description != "" || got.Exclude != nil {
		t.Errorf("empty manifest returned non-zero settings: %+v", got)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"top-level key", "checks:\n  trailing-space: {}\n"},
		{"per-hook key", "hooks:\n  trailing-space:\n    severity: high\n"},
		{"wrong type", "hooks:\n  trailing-space:\n    exclude: not-a-list\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Load(writeManifest(t, tt.content)); err == nil {
				t.Error("invalid manifest accepted")
			}
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	if _, err := Load(writeManifest(t, "hooks: [\n")); err == nil {
		t.Error("malformed yaml accepted")
	}
}

func TestHookOnNilManifest(t *testing.T) {
	t.Parallel()

	var m *Manifest
	if got := m.Hook("trailing-space"); got.Description != "" {
		t.Errorf("nil manifest returned %+v", got)
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if _, ok := Find(dir); ok {
		t.Error("Find reported a manifest in an empty directory")
	}

	want := filepath.Join(dir, FileName)
	if err := os.WriteFile(want, []byte("hooks: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	path, ok := Find(dir)
	if !ok || path != want {
		t.Errorf("Find() = (%q, %v), want (%q, true)", path, ok, want)
	}
}
