package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dhamidi/lalg/analysis"
	"github.com/dhamidi/lalg/grammar"
	"github.com/dhamidi/lalg/lexer"
	"github.com/dhamidi/lalg/parser"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	borderStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)

// TextEncoder writes a human-readable report: lexical errors, the verdict
// and, when trace is set, the parser steps as a table.
type TextEncoder struct {
	w      io.Writer
	trace  bool
	report *analysis.Report
}

func NewTextEncoder(w io.Writer, trace bool) *TextEncoder {
	return &TextEncoder{w: w, trace: trace}
}

func (e *TextEncoder) Encode(report *analysis.Report) error {
	e.report = report
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	r := e.report

	if len(r.LexErrors) > 0 {
		fmt.Fprintf(&sb, "%s\n", errorStyle.Render(fmt.Sprintf("%d lexical error(s)", len(r.LexErrors))))
		for _, le := range r.LexErrors {
			fmt.Fprintf(&sb, "  %s\n", le.Error())
		}
	}

	if r.TranslateErr != nil {
		fmt.Fprintf(&sb, "%s %s\n", errorStyle.Render("translation failed:"), r.TranslateErr)
		return []byte(sb.String()), nil
	}

	if r.Result == nil {
		return []byte(sb.String()), nil
	}

	if e.trace {
		sb.WriteString(traceTable(r.Result.Steps))
		sb.WriteString("\n")
	}

	if r.Result.Success {
		fmt.Fprintf(&sb, "%s %s\n", successStyle.Render("OK"), r.Result.Message)
	} else {
		fmt.Fprintf(&sb, "%s %s\n", errorStyle.Render("FAIL"), r.Result.Message)
	}
	return []byte(sb.String()), nil
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func traceTable(steps []parser.Step) string {
	t := newTable("#", "Stack", "Input", "Action")
	for _, s := range steps {
		t.Row(strconv.Itoa(s.Index), s.StackString(), s.InputString(), s.Action.String())
	}
	return t.Render()
}

// WriteTokens lists tokens with their classification codes, followed by
// the lexical errors.
func WriteTokens(w io.Writer, tokens []lexer.Token, errs []lexer.Error) error {
	t := newTable("Code", "Kind", "Lexeme", "Line", "Columns")
	for _, tok := range tokens {
		t.Row(
			tok.Kind.Code(),
			tok.Kind.String(),
			tok.Literal,
			strconv.Itoa(tok.Line),
			fmt.Sprintf("%d-%d", tok.Column, tok.EndColumn),
		)
	}

	var sb strings.Builder
	sb.WriteString(t.Render())
	sb.WriteString("\n")
	for _, le := range errs {
		fmt.Fprintf(&sb, "%s %s\n", errorStyle.Render("error:"), le.Error())
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteTable renders a parse table: one row per non-terminal, one column per
// terminal, each filled cell holding its production.
func WriteTable(w io.Writer, g *grammar.Table) error {
	terms := g.Terminals()
	headers := make([]string, 0, len(terms)+1)
	headers = append(headers, "")
	for _, term := range terms {
		headers = append(headers, string(term))
	}

	t := newTable(headers...)
	for _, nt := range g.NonTerminals() {
		row := make([]string, 0, len(terms)+1)
		row = append(row, string(nt))
		for _, term := range terms {
			p, ok := g.Lookup(nt, term)
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, p.String())
		}
		t.Row(row...)
	}

	_, err := io.WriteString(w, t.Render()+"\n")
	return err
}
