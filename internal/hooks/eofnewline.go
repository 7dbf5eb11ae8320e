package hooks

import (
	"bytes"

	"github.com/hookworks/hookrun/internal/fileproc"
)

// eofNewline requires non-empty files to end with exactly one newline.
type eofNewline struct{}

func (eofNewline) Inspect(path string, content []byte) []fileproc.Finding {
	if message := eofProblem(content); message != "" {
		return []fileproc.Finding{{Message: message}}
	}
	return nil
}

func (eofNewline) Fix(path string, content []byte) ([]byte, []fileproc.Finding) {
	message := eofProblem(content)
	if message == "" {
		return content, nil
	}
	trimmed := bytes.TrimRight(content, "\r\n")
	if len(trimmed) == 0 {
		// File was nothing but newlines; reduce it to empty.
		return nil, []fileproc.Finding{{Message: message}}
	}
	return append(trimmed, '\n'), []fileproc.Finding{{Message: message}}
}

func eofProblem(content []byte) string {
	if len(content) == 0 {
		return ""
	}
	if !bytes.HasSuffix(content, []byte("\n")) {
		return "missing trailing newline"
	}
	if bytes.HasSuffix(content, []byte("\n\n")) || bytes.HasSuffix(content, []byte("\r\n\r\n")) {
		return "multiple trailing newlines"
	}
	return ""
}
