// Package schema provides JSON schema validation for hookrun manifest
// files.
package schema

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/hookworks/hookrun/schema"
)

var (
	manifestSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// compileSchema compiles the embedded manifest schema once.
func compileSchema() error {
	compileOnce.Do(func() {
		data, err := schemafs.FS.ReadFile("hooks.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read manifest schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal manifest schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("hooks.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add manifest schema resource: %w", err)
			return
		}

		manifestSchema, err = compiler.Compile("hooks.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile manifest schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateManifest validates a decoded manifest document against the
// embedded schema.
func ValidateManifest(doc any) error {
	if err := compileSchema(); err != nil {
		return err
	}
	if err := manifestSchema.Validate(doc); err != nil {
		return fmt.Errorf("manifest validation failed: %w", err)
	}
	return nil
}
