// Package format renders analysis reports, token listings and parse tables.
package format

import (
	"encoding"
	"errors"
	"fmt"
	"io"

	"github.com/dhamidi/lalg/analysis"
	"github.com/dhamidi/lalg/lexer"
)

var ErrUnknownFormat = errors.New("unknown format")

type Encoder interface {
	encoding.TextMarshaler
	Encode(report *analysis.Report) error
}

// Names lists the formats ForName accepts.
func Names() []string {
	return []string{"text", "json", "yaml"}
}

// ForName returns the encoder for name. trace only affects the text format;
// JSON and YAML always carry the full step trace.
func ForName(name string, w io.Writer, trace bool) (Encoder, error) {
	switch name {
	case "text", "":
		return NewTextEncoder(w, trace), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
}

// document is the serialized shape of a report.
type document struct {
	OK             bool          `json:"ok" yaml:"ok"`
	Tokens         []docToken    `json:"tokens" yaml:"tokens"`
	LexicalErrors  []docLexError `json:"lexicalErrors,omitempty" yaml:"lexicalErrors,omitempty"`
	TranslateError string        `json:"translateError,omitempty" yaml:"translateError,omitempty"`
	Parse          any           `json:"parse,omitempty" yaml:"parse,omitempty"`
}

type docToken struct {
	Code      string `json:"code" yaml:"code"`
	Kind      string `json:"kind" yaml:"kind"`
	Lexeme    string `json:"lexeme" yaml:"lexeme"`
	Line      int    `json:"line" yaml:"line"`
	Column    int    `json:"column" yaml:"column"`
	EndColumn int    `json:"endColumn" yaml:"endColumn"`
}

type docLexError struct {
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column,omitempty" yaml:"column,omitempty"`
}

func buildDocument(report *analysis.Report) *document {
	doc := &document{
		OK:     report.OK(),
		Tokens: tokensToDoc(report.Tokens),
	}
	for _, e := range report.LexErrors {
		doc.LexicalErrors = append(doc.LexicalErrors, docLexError{
			Kind:    e.Kind.String(),
			Message: e.Message,
			Line:    e.Line,
			Column:  e.Column,
		})
	}
	if report.TranslateErr != nil {
		doc.TranslateError = report.TranslateErr.Error()
	}
	if report.Result != nil {
		doc.Parse = report.Result
	}
	return doc
}

func tokensToDoc(tokens []lexer.Token) []docToken {
	out := make([]docToken, len(tokens))
	for i, tok := range tokens {
		out[i] = docToken{
			Code:      tok.Kind.Code(),
			Kind:      tok.Kind.String(),
			Lexeme:    tok.Literal,
			Line:      tok.Line,
			Column:    tok.Column,
			EndColumn: tok.EndColumn,
		}
	}
	return out
}
