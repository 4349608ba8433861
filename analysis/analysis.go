// Package analysis runs the scanner, the translator and the parser over one
// source text and collects everything they report.
package analysis

import (
	"github.com/tliron/commonlog"

	"github.com/dhamidi/lalg/grammar"
	"github.com/dhamidi/lalg/lexer"
	"github.com/dhamidi/lalg/parser"
	"github.com/dhamidi/lalg/translate"
)

type Option func(*Analyzer)

// WithTable parses with table instead of the canonical LALG table.
func WithTable(table *grammar.Table) Option {
	return func(a *Analyzer) {
		a.table = table
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(a *Analyzer) {
		a.log = log
	}
}

// Analyzer holds configuration only; every Analyze call starts fresh.
type Analyzer struct {
	table *grammar.Table
	log   commonlog.Logger
}

func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		table: grammar.LALG(),
		log:   commonlog.GetLogger("lalg.analysis"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Report is the outcome of one analysis. Result is nil when translation
// failed.
type Report struct {
	Tokens       []lexer.Token
	LexErrors    []lexer.Error
	TranslateErr error
	Result       *parser.Result
}

// OK reports whether the text is lexically and syntactically valid.
func (r *Report) OK() bool {
	return len(r.LexErrors) == 0 && r.TranslateErr == nil && r.Result != nil && r.Result.Success
}

// Scan runs the scanner only.
func Scan(text string) ([]lexer.Token, []lexer.Error) {
	return lexer.Tokenize(text)
}

// Analyze scans, translates and parses text. Parsing runs on the tokens
// that were produced even when the scanner reported errors.
func (a *Analyzer) Analyze(text string) *Report {
	report := &Report{}
	report.Tokens, report.LexErrors = lexer.Tokenize(text)
	a.log.Debugf("scanned %d tokens, %d lexical errors", len(report.Tokens), len(report.LexErrors))

	items, err := translate.Translate(report.Tokens)
	if err != nil {
		a.log.Errorf("translate: %s", err.Error())
		report.TranslateErr = err
		return report
	}

	report.Result = parser.New(a.table).Parse(items)
	if report.Result.Success {
		a.log.Debugf("parse accepted after %d steps", len(report.Result.Steps))
	} else {
		a.log.Debugf("parse rejected after %d steps: %s", len(report.Result.Steps), report.Result.Message)
	}
	return report
}

// Analyze runs a default Analyzer over text.
func Analyze(text string) *Report {
	return New().Analyze(text)
}
