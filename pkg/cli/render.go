package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/formatters"
	"github.com/gertd/go-pluralize"
	"github.com/morikuni/aec"
	"github.com/segmentio/textio"
	"github.com/vito/typeof/pkg/hl"
	"github.com/vito/typeof/pkg/typeof"
)

// Renderer writes reports as text or JSON.
type Renderer struct {
	// Format is "text" or "json".
	Format string

	// Color enables ANSI colors in text output.
	Color bool

	plural *pluralize.Client
}

func NewRenderer(format string, color bool) *Renderer {
	return &Renderer{
		Format: format,
		Color:  color,
		plural: pluralize.NewClient(),
	}
}

// Render writes a single report.
func (r *Renderer) Render(w io.Writer, report typeof.Report) error {
	if r.Format == "json" {
		return typeof.NewEncoder(w).Encode(report)
	}

	if err := r.highlight(w, report.Value); err != nil {
		return err
	}

	fmt.Fprintln(w)

	out := textio.NewPrefixWriter(w, "  ")

	fmt.Fprintf(out, "%s %s\n", r.label("tag:"), report.Tag)
	fmt.Fprintf(out, "%s %s\n", r.label("empty:"), r.verdict(report.Empty))
	fmt.Fprintf(out, "%s %s\n", r.label("truthy:"), r.verdict(report.Truthy))

	count := r.plural.Pluralize("predicate", len(report.Predicates), true)
	fmt.Fprintf(out, "%s %s\n", r.label("satisfies"), count)

	list := textio.NewPrefixWriter(out, "  ")
	for _, name := range report.Predicates {
		fmt.Fprintln(list, r.apply(aec.GreenF, name))
	}

	if err := list.Flush(); err != nil {
		return err
	}

	return out.Flush()
}

// RenderAll writes every report, separating text reports by a blank line.
func (r *Renderer) RenderAll(w io.Writer, reports []typeof.Report) error {
	for i, report := range reports {
		if i > 0 && r.Format != "json" {
			fmt.Fprintln(w)
		}

		if err := r.Render(w, report); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) highlight(w io.Writer, src string) error {
	if !r.Color || strings.Contains(src, "\n") {
		_, err := fmt.Fprint(w, src)
		return err
	}

	tokens, err := hl.LiteralLexer.Tokenise(nil, src)
	if err != nil {
		return err
	}

	return formatters.TTY16.Format(w, hl.TTYStyle, tokens)
}

func (r *Renderer) label(str string) string {
	return r.apply(aec.Faint, str)
}

func (r *Renderer) verdict(b bool) string {
	if b {
		return r.apply(aec.YellowF, "yes")
	}

	return r.apply(aec.LightBlackF, "no")
}

func (r *Renderer) apply(ansi aec.ANSI, str string) string {
	if !r.Color {
		return str
	}

	return ansi.Apply(str)
}
