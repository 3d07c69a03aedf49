package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/passforge/passforge-go/internal/model"
)

var (
	weakStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	fairStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	strongStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	excellentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// strengthLabel buckets entropy into a coarse strength name. Bands follow
// the usual guidance: below ~50 bits is guessable offline, 112+ matches
// modern key-strength recommendations.
func strengthLabel(bits float64) string {
	switch {
	case bits < 50:
		return "weak"
	case bits < 80:
		return "fair"
	case bits < 112:
		return "strong"
	default:
		return "excellent"
	}
}

func styleFor(label string) lipgloss.Style {
	switch label {
	case "weak":
		return weakStyle
	case "fair":
		return fairStyle
	case "strong":
		return strongStyle
	default:
		return excellentStyle
	}
}

// annotateLine renders a password with its entropy estimate. The strength
// label is colorized only when styled is set.
func annotateLine(p model.GeneratedPassword, styled bool) string {
	label := strengthLabel(p.EntropyBits)
	if styled {
		label = styleFor(label).Render(label)
	}
	return fmt.Sprintf("%s  # %.1f bits (%s)", p.Value, p.EntropyBits, label)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
