package schema

import (
	"testing"
)

func TestValidateManifest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     any
		wantErr bool
	}{
		{
			name: "full manifest",
			doc: map[string]any{
				"hooks": map[string]any{
					"trailing-space": map[string]any{
						"description": "Strip trailing blanks",
						"exclude":     []any{"*.min.js"},
					},
					"branch-guard": map[string]any{
						"branches": []any{"main", "release"},
					},
				},
			},
		},
		{
			name: "empty hooks map",
			doc:  map[string]any{"hooks": map[string]any{}},
		},
		{
			name:    "unknown top-level key",
			doc:     map[string]any{"checks": map[string]any{}},
			wantErr: true,
		},
		{
			name: "unknown hook key",
			doc: map[string]any{
				"hooks": map[string]any{
					"crlf": map[string]any{"severity": "high"},
				},
			},
			wantErr: true,
		},
		{
			name: "exclude entries must be non-empty",
			doc: map[string]any{
				"hooks": map[string]any{
					"crlf": map[string]any{"exclude": []any{""}},
				},
			},
			wantErr: true,
		},
		{
			name: "branches must be strings",
			doc: map[string]any{
				"hooks": map[string]any{
					"branch-guard": map[string]any{"branches": []any{1}},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateManifest(tt.doc)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateManifest() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
