package hooks

import (
	"testing"
)

func TestTrailingSpaceInspect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		wantLines []int
	}{
		{"clean file", "a\nb\n", nil},
		{"trailing spaces", "a  \nb\n", []int{1}},
		{"trailing tab", "a\nb\t\n", []int{2}},
		{"multiple lines", "a \nb\nc\t \n", []int{1, 3}},
		{"crlf terminator alone is fine", "a\r\nb\r\n", nil},
		{"space before crlf", "a \r\nb\r\n", []int{1}},
		{"empty file", "", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			findings := trailingSpace{}.Inspect("f.txt", []byte(tt.content))
			if len(findings) != len(tt.wantLines) {
				t.Fatalf("got %d findings, want %d: %v", len(findings), len(tt.wantLines), findings)
			}
			for i, f := range findings {
				f := f
				if f.Line != tt.wantLines[i] {
					t.Errorf("finding %d on line %d, want %d", i, f.Line, tt.wantLines[i])
				}
				if f.Message != "trailing whitespace" {
					t.Errorf("finding message = %q", f.Message)
				}
			}
		})
	}
}

func TestTrailingSpaceFix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     string
		want        string
		wantMessage string
	}{
		{"clean file untouched", "a\nb\n", "a\nb\n", ""},
		{"single line", "a  \nb\n", "a\nb\n", "trailing whitespace on 1 line"},
		{"plural message", "a \nb\t\n", "a\nb\n", "trailing whitespace on 2 lines"},
		{"crlf preserved", "a \r\nb\r\n", "a\r\nb\r\n", "trailing whitespace on 1 line"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fixed, findings := trailingSpace{}.Fix("f.txt", []byte(tt.content))
			if string(fixed) != tt.want {
				t.Errorf("fixed = %q, want %q", fixed, tt.want)
			}
			if tt.wantMessage == "" {
				if len(findings) != 0 {
					t.Errorf("clean fix reported findings: %v", findings)
				}
				return
			}
			if len(findings) != 1 || findings[0].Message != tt.wantMessage {
				t.Errorf("findings = %v, want one %q", findings, tt.wantMessage)
			}
		})
	}
}
