package hooks

import (
	"bytes"
	"fmt"

	"github.com/hookworks/hookrun/internal/fileproc"
)

// crlf flags Windows line endings. The fix rewrites every terminator,
// which is why this hook carries a confirmation prompt.
type crlf struct{}

func (crlf) Inspect(path string, content []byte) []fileproc.Finding {
	n := bytes.Count(content, []byte("\r\n"))
	if n == 0 {
		return nil
	}
	return []fileproc.Finding{{Message: crlfMessage(n)}}
}

func (crlf) Fix(path string, content []byte) ([]byte, []fileproc.Finding) {
	n := bytes.Count(content, []byte("\r\n"))
	if n == 0 {
		return content, nil
	}
	fixed := bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	return fixed, []fileproc.Finding{{Message: crlfMessage(n)}}
}

func crlfMessage(n int) string {
	if n == 1 {
		return "CRLF line ending on 1 line"
	}
	return fmt.Sprintf("CRLF line endings on %d lines", n)
}
