// Package output provides mode-aware rendering for CLI commands.
//
// Terminal output gets lipgloss styling; piped output is plain text; JSON
// mode emits machine-readable output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

const (
	ModeAuto Mode = "auto"
	ModeText Mode = "text"
	ModeJSON Mode = "json"
)

// Styles holds the lipgloss styles used by text rendering.
type Styles struct {
	Header  lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

func newStyles(styled bool) Styles {
	if !styled {
		plain := lipgloss.NewStyle()
		return Styles{Header: plain, Muted: plain, Bold: plain, Success: plain, Warning: plain, Error: plain}
	}
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles Styles
}

// NewRenderer creates a renderer. ModeAuto resolves to text, with styling
// only when the output is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	styled := false
	if mode == ModeAuto || mode == "" {
		mode = ModeText
		if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			styled = true
		}
	}
	return &Renderer{out: out, errOut: errOut, mode: mode, styles: newStyles(styled)}
}

// EffectiveMode returns the resolved mode (never auto).
func (r *Renderer) EffectiveMode() Mode { return r.mode }

// Styles returns the style set for text rendering.
func (r *Renderer) Styles() Styles { return r.styles }

func (r *Renderer) Println(args ...any) {
	_, _ = fmt.Fprintln(r.out, args...)
}

func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Success prints a success line to standard output.
func (r *Renderer) Success(msg string) {
	r.Println(r.styles.Success.Render(msg))
}

// JSON encodes v as indented JSON to standard output.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
