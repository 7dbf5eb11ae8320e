package hooks

import (
	"fmt"
	"strings"

	"github.com/hookworks/hookrun/internal/fileproc"
)

// trailingSpace flags lines ending in spaces or tabs. The fix trims
// them while leaving CRLF terminators alone; line-ending policy is the
// crlf hook's job.
type trailingSpace struct{}

func (trailingSpace) Inspect(path string, content []byte) []fileproc.Finding {
	var findings []fileproc.Finding
	for i, line := range splitLines(content) {
		if trimTrailing(line) != line {
			findings = append(findings, fileproc.Finding{Line: i + 1, Message: "trailing whitespace"})
		}
	}
	return findings
}

func (trailingSpace) Fix(path string, content []byte) ([]byte, []fileproc.Finding) {
	lines := splitLines(content)
	changed := 0
	for i, line := range lines {
		trimmed := trimTrailing(line)
		if trimmed != line {
			lines[i] = trimmed
			changed++
		}
	}
	if changed == 0 {
		return content, nil
	}
	message := fmt.Sprintf("trailing whitespace on %d line", changed)
	if changed > 1 {
		message += "s"
	}
	return []byte(strings.Join(lines, "\n")), []fileproc.Finding{{Message: message}}
}

// trimTrailing removes trailing spaces and tabs, preserving a carriage
// return so CRLF files keep their terminators.
func trimTrailing(line string) string {
	body, hadCR := strings.CutSuffix(line, "\r")
	body = strings.TrimRight(body, " \t")
	if hadCR {
		return body + "\r"
	}
	return body
}

// splitLines splits on newline without discarding structure: joining
// the result with "\n" reproduces the input.
func splitLines(content []byte) []string {
	return strings.Split(string(content), "\n")
}
