// Package report renders reconciliation results as JSON, YAML or text.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/zerr"
	"go.trai.ch/zlock/internal/core/domain"
	"go.trai.ch/zlock/internal/ui/output"
	"go.trai.ch/zlock/internal/ui/style"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatCompact = "compact"
	FormatYAML    = "yaml"
	FormatText    = "text"
)

// Renderer implements ports.Renderer.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes result to w in the given format.
func (r *Renderer) Render(w io.Writer, format string, result *domain.Result) error {
	var err error
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(result)
	case FormatCompact:
		err = json.NewEncoder(w).Encode(result)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(result)
		if err == nil {
			err = enc.Close()
		}
	case FormatText:
		err = renderText(w, result)
	default:
		return zerr.With(domain.ErrUnknownOutputFormat, "format", format)
	}

	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "format", format)
	}
	return nil
}

// RenderFailure writes the module protocol's failure object as one JSON line.
func (r *Renderer) RenderFailure(w io.Writer, cause error) error {
	if err := json.NewEncoder(w).Encode(domain.Failure{Failed: true, Msg: cause.Error()}); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	return nil
}

func renderText(w io.Writer, result *domain.Result) error {
	out := output.New(w)
	lg := lipgloss.NewRenderer(w)
	lg.SetColorProfile(output.ColorProfile())

	var b strings.Builder

	if result.Changed {
		b.WriteString(output.Paint(out, string(style.Green), style.Check+" lock list changed") + "\n")
	} else {
		b.WriteString(output.Paint(out, string(style.Slate), style.Dot+" lock list unchanged") + "\n")
	}

	for _, name := range result.PatternsToAdd {
		b.WriteString("  " + output.Paint(out, string(style.Green), style.Plus+" "+name) + "\n")
	}
	for _, name := range result.PatternsToDelete {
		b.WriteString("  " + output.Paint(out, string(style.Red), style.Minus+" "+name) + "\n")
	}

	b.WriteString("\n" + style.Header(lg, fmt.Sprintf("Locks (%d)", result.FinalLockList.Len())) + "\n")
	width := len(fmt.Sprint(result.FinalLockList.Len()))
	for i, entry := range result.FinalLockList {
		idx := output.Paint(out, string(style.Iris), fmt.Sprintf("%*d", width, i+1))
		b.WriteString("  " + idx + "  " + entry + "\n")
	}

	if msg := strings.TrimSpace(result.Msg); msg != "" {
		b.WriteString("\n" + output.Paint(out, string(style.Slate), msg) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
