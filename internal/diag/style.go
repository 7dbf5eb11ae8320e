package diag

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// styles holds the fixed severity-to-color mapping. A dedicated
// renderer with a forced ANSI profile keeps output identical whether or
// not the stream is a terminal: the color policy is the only switch.
type styles struct {
	enabled bool
	error   lipgloss.Style
	warning lipgloss.Style
	info    lipgloss.Style
	detail  lipgloss.Style
	bold    lipgloss.Style
}

func newStyles(stream io.Writer, color bool) styles {
	if !color {
		return styles{}
	}
	r := lipgloss.NewRenderer(stream)
	r.SetColorProfile(termenv.ANSI)
	return styles{
		enabled: true,
		error:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")),
		info:    r.NewStyle().Foreground(lipgloss.Color("6")),
		detail:  r.NewStyle().Foreground(lipgloss.Color("7")),
		bold:    r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	}
}

// render styles text for the given severity, or returns it unchanged
// when the color policy is off.
func (s styles) render(severity Severity, text string) string {
	if !s.enabled {
		return text
	}
	switch severity {
	case SeverityError:
		return s.error.Render(text)
	case SeverityWarning:
		return s.warning.Render(text)
	case SeverityInfo:
		return s.info.Render(text)
	case SeverityDetail:
		return s.detail.Render(text)
	default:
		return text
	}
}

// banner styles the dry-run announcement: bold on top of the warning
// color.
func (s styles) banner(text string) string {
	if !s.enabled {
		return text
	}
	return s.bold.Render(text)
}
