// Package progress renders bounded or unbounded progress to the
// diagnostic stream while the operation body iterates over its unit of
// work. Rendering is transient (carriage-return rewrites of one line)
// and happens only when the stream is an interactive terminal, so a
// host capturing stderr never sees progress bytes.
package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/hookworks/hookrun/internal/diag"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

const refreshInterval = 100 * time.Millisecond

// Reporter renders progress for one unit of work. The main thread is
// the only writer of the count and description; the background refresh
// only re-renders the last reported state.
type Reporter struct {
	mu      sync.Mutex
	out     io.Writer
	total   int // 0 means unknown: render a spinner instead of a bar
	done    int
	desc    string
	start   time.Time
	frame   int
	stop    chan struct{}
	stopped sync.WaitGroup
	enabled bool
}

// New creates a Reporter writing through w. Suppressed entirely at
// Quiet verbosity or when the diagnostic stream is not a terminal.
// total is the number of units when known ahead of time; pass 0 for an
// indeterminate spinner.
func New(w *diag.Writer, total int) *Reporter {
	return &Reporter{
		out:     w.DiagnosticStream(),
		total:   total,
		enabled: w.Verbosity() > diag.Quiet && w.DiagnosticIsTerminal(),
	}
}

// Start begins rendering with the given description of the first unit.
func (r *Reporter) Start(desc string) {
	if !r.enabled {
		return
	}
	r.mu.Lock()
	r.desc = desc
	r.start = time.Now()
	r.stop = make(chan struct{})
	r.mu.Unlock()

	r.render()
	r.stopped.Add(1)
	go r.refresh()
}

// Advance records one completed unit and names the next one.
func (r *Reporter) Advance(desc string) {
	if !r.enabled {
		return
	}
	r.mu.Lock()
	r.done++
	r.desc = desc
	r.mu.Unlock()
	r.render()
}

// Stop clears the progress line and stops the background refresh. Safe
// to call when Start never ran.
func (r *Reporter) Stop() {
	if !r.enabled {
		return
	}
	r.mu.Lock()
	stop := r.stop
	r.stop = nil
	r.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	r.stopped.Wait()
	fmt.Fprint(r.out, "\r\x1b[K")
}

// refresh re-renders on a timer so elapsed time and the spinner move
// even while a single slow unit is in flight.
func (r *Reporter) refresh() {
	defer r.stopped.Done()
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()
	for {
		r.mu.Lock()
		stop := r.stop
		r.mu.Unlock()
		if stop == nil {
			return
		}
		select {
		case <-stop:
			return
		case <-ticker.C:
			r.mu.Lock()
			r.frame++
			r.mu.Unlock()
			r.render()
		}
	}
}

// render writes the current line in one Fprint so it never interleaves
// with a diagnostic message mid-line.
func (r *Reporter) render() {
	r.mu.Lock()
	line := r.line(time.Now())
	r.mu.Unlock()
	fmt.Fprint(r.out, "\r"+line+"\x1b[K")
}

// line formats the progress line. Callers hold r.mu.
func (r *Reporter) line(now time.Time) string {
	elapsed := now.Sub(r.start).Round(time.Second)
	if r.total <= 0 {
		frame := spinnerFrames[r.frame%len(spinnerFrames)]
		return fmt.Sprintf("%s %s (%s)", frame, r.desc, elapsed)
	}

	percent := 0
	if r.total > 0 {
		percent = r.done * 100 / r.total
	}
	remaining := "?"
	if r.done > 0 {
		perUnit := now.Sub(r.start) / time.Duration(r.done)
		left := (perUnit * time.Duration(r.total-r.done)).Round(time.Second)
		remaining = left.String()
	}
	bar := renderBar(r.done, r.total, 20)
	return fmt.Sprintf("[%s] %d/%d %d%% elapsed %s eta %s  %s",
		bar, r.done, r.total, percent, elapsed, remaining, r.desc)
}

func renderBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	filled := done * width / total
	if filled > width {
		filled = width
	}
	return strings.Repeat("=", filled) + strings.Repeat(" ", width-filled)
}
