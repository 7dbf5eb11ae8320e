package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestUsageError(t *testing.T) {
	t.Parallel()

	err := Usagef("unknown hook %q", "frobnicate")
	if got := err.Error(); got != `unknown hook "frobnicate"` {
		t.Errorf("Error() = %q", got)
	}
	if !IsUsage(err) {
		t.Error("IsUsage(Usagef(...)) = false")
	}
	if !IsUsage(fmt.Errorf("loading manifest: %w", err)) {
		t.Error("IsUsage does not see through wrapping")
	}
	if IsUsage(stderrors.New("plain")) {
		t.Error("IsUsage(plain error) = true")
	}
	if IsUsage(nil) {
		t.Error("IsUsage(nil) = true")
	}
}

func TestExitRequest(t *testing.T) {
	t.Parallel()

	err := Exit(7)
	if err.Code != 7 {
		t.Errorf("Code = %d", err.Code)
	}
	var req *ExitRequest
	if !stderrors.As(fmt.Errorf("wrapped: %w", err), &req) || req.Code != 7 {
		t.Error("ExitRequest lost through wrapping")
	}
}

func TestUnitErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     *UnitError
		want    string
		wantMsg string
	}{
		{
			name:    "not found",
			err:     &UnitError{Path: "a.py", Kind: UnitNotFound, Err: fs.ErrNotExist},
			want:    "a.py: file not found",
			wantMsg: "file not found",
		},
		{
			name:    "permission",
			err:     &UnitError{Path: "a.py", Kind: UnitPermission, Err: fs.ErrPermission},
			want:    "a.py: permission denied",
			wantMsg: "permission denied",
		},
		{
			name:    "decode",
			err:     &UnitError{Path: "blob.bin", Kind: UnitDecode},
			want:    "blob.bin: not valid UTF-8",
			wantMsg: "not valid UTF-8",
		},
		{
			name:    "other reports the underlying error",
			err:     &UnitError{Path: "a.py", Kind: UnitOther, Err: stderrors.New("input/output error")},
			want:    "a.py: input/output error",
			wantMsg: "input/output error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if got := tt.err.Message(); got != tt.wantMsg {
				t.Errorf("Message() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestUnitErrorUnwrap(t *testing.T) {
	t.Parallel()

	err := &UnitError{Path: "a.py", Kind: UnitNotFound, Err: fs.ErrNotExist}
	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Error("UnitError does not unwrap to its cause")
	}
}
