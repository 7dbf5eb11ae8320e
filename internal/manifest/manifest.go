// Package manifest loads the optional .hookrun.yaml file that tunes
// builtin hooks per repository: help-text overrides, operand exclude
// patterns, and protected branch sets.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hookworks/hookrun/internal/schema"
)

// FileName is the manifest file searched for in the working directory.
const FileName = ".hookrun.yaml"

// Hook holds the per-hook settings a manifest may override.
type Hook struct {
	Description string   `yaml:"description"`
	Exclude     []string `yaml:"exclude"`
	Branches    []string `yaml:"branches"`
}

// Manifest is the decoded manifest document.
type Manifest struct {
	Hooks map[string]Hook `yaml:"hooks"`
}

// Default returns an empty manifest, used when no file exists.
func Default() *Manifest {
	return &Manifest{}
}

// Hook returns the settings for a hook id; the zero value when the
// manifest does not mention it.
func (m *Manifest) Hook(id string) Hook {
	if m == nil || m.Hooks == nil {
		return Hook{}
	}
	return m.Hooks[id]
}

// IDs returns the hook ids the manifest mentions, for validation
// against the registry.
func (m *Manifest) IDs() []string {
	ids := make([]string, 0, len(m.Hooks))
	for id := range m.Hooks {
		ids = append(ids, id)
	}
	return ids
}

// Find reports the manifest path for dir, if one exists.
func Find(dir string) (string, bool) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// Load reads, schema-validates, and decodes a manifest file. Schema
// validation runs on the generic document first so field-level errors
// name the offending key instead of failing on a type mismatch.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if doc == nil {
		return Default(), nil
	}
	if err := schema.ValidateManifest(doc); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	return &m, nil
}
