// Package diag routes diagnostic messages to the right output stream.
//
// Two logical streams exist: the primary stream (stdout, redirectable
// with --output) carries machine-readable data the caller might pipe;
// the diagnostic stream (stderr) carries everything else. Every message
// goes through a verbosity filter at emit time and is written as one
// atomic line, so concurrent progress rendering never interleaves
// partial lines.
package diag

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"syscall"

	"golang.org/x/term"
)

// Verbosity controls which severities pass the filter. The value is
// resolved once from mutually exclusive flags and never changes during
// a run.
type Verbosity int

const (
	// Quiet passes errors only and suppresses progress entirely.
	Quiet Verbosity = iota
	// Normal passes errors, warnings, and info.
	Normal
	// Verbose additionally passes detail messages.
	Verbose
)

// Severity classifies a diagnostic message.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityDetail
)

// passes reports whether a message of severity s is emitted at
// verbosity v. Errors always pass.
func passes(v Verbosity, s Severity) bool {
	switch s {
	case SeverityError:
		return true
	case SeverityWarning, SeverityInfo:
		return v >= Normal
	case SeverityDetail:
		return v >= Verbose
	default:
		return false
	}
}

// Writer is the diagnostic channel router. All components share one
// Writer per invocation; its configuration is immutable after New.
type Writer struct {
	mu        sync.Mutex
	primary   io.Writer
	diagnost  io.Writer
	verbosity Verbosity
	styles    styles
	broken    bool
}

// New creates a Writer for the given streams. Color styling is applied
// only when color is true; it is explicit-opt-in and never inferred
// from the environment, so arbitrary file names containing markup-like
// substrings are never mis-rendered by accident.
func New(primary, diagnostic io.Writer, verbosity Verbosity, color bool) *Writer {
	return &Writer{
		primary:   primary,
		diagnost:  diagnostic,
		verbosity: verbosity,
		styles:    newStyles(diagnostic, color),
	}
}

// Verbosity returns the configured verbosity level.
func (w *Writer) Verbosity() Verbosity {
	return w.verbosity
}

// DiagnosticStream returns the raw diagnostic stream. The progress
// reporter renders transient lines through it directly.
func (w *Writer) DiagnosticStream() io.Writer {
	return w.diagnost
}

// DiagnosticIsTerminal reports whether the diagnostic stream is an
// interactive terminal. Progress rendering is gated on this so a host
// capturing stderr observes zero bytes on success.
func (w *Writer) DiagnosticIsTerminal() bool {
	f, ok := w.diagnost.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// BrokenPipe reports whether a write failed because the downstream
// consumer closed the stream. Checked between file operations so the
// run can stop early instead of writing into the void.
func (w *Writer) BrokenPipe() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.broken
}

// write emits one complete line to the given stream, recording a
// downstream disconnect if the write fails with EPIPE.
func (w *Writer) write(stream io.Writer, line string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := io.WriteString(stream, line+"\n"); err != nil {
		if errors.Is(err, syscall.EPIPE) {
			w.broken = true
		}
	}
}

// Errorf emits an error message to the diagnostic stream. Errors pass
// every verbosity level.
func (w *Writer) Errorf(format string, args ...any) {
	w.write(w.diagnost, w.styles.render(SeverityError, fmt.Sprintf(format, args...)))
}

// Warningf emits a warning with the conventional "warning:" prefix.
// Skipped at Quiet.
func (w *Writer) Warningf(format string, args ...any) {
	if !passes(w.verbosity, SeverityWarning) {
		return
	}
	w.write(w.diagnost, w.styles.render(SeverityWarning, "warning: "+fmt.Sprintf(format, args...)))
}

// Infof emits an informational message. Skipped at Quiet.
func (w *Writer) Infof(format string, args ...any) {
	if !passes(w.verbosity, SeverityInfo) {
		return
	}
	w.write(w.diagnost, w.styles.render(SeverityInfo, fmt.Sprintf(format, args...)))
}

// Detailf emits a detail message. Emitted at Verbose only.
func (w *Writer) Detailf(format string, args ...any) {
	if !passes(w.verbosity, SeverityDetail) {
		return
	}
	w.write(w.diagnost, w.styles.render(SeverityDetail, fmt.Sprintf(format, args...)))
}

// Findingf emits one finding line in the host contract format:
// "<path>:<line>: <description>", or "<path>: <description>" when the
// finding applies to the whole file (line 0). Findings carry Error
// severity so they survive --quiet.
func (w *Writer) Findingf(path string, line int, format string, args ...any) {
	description := fmt.Sprintf(format, args...)
	var text string
	if line > 0 {
		text = fmt.Sprintf("%s:%d: %s", path, line, description)
	} else {
		text = fmt.Sprintf("%s: %s", path, description)
	}
	w.write(w.diagnost, w.styles.render(SeverityError, text))
}

// DryRunBanner emits the single bold warning announcing dry-run mode.
// It is emitted even at Quiet: a run that performs no side effects on
// request must say so exactly once.
func (w *Writer) DryRunBanner() {
	w.write(w.diagnost, w.styles.banner("warning: dry run, no files will be modified"))
}

// Dataf writes machine-readable output to the primary stream. Never
// filtered by verbosity; the caller decides when data exists.
func (w *Writer) Dataf(format string, args ...any) {
	w.write(w.primary, fmt.Sprintf(format, args...))
}
