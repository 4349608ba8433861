package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/lalg/grammar"
	"github.com/dhamidi/lalg/translate"
)

// ErrUnknownSymbol reports a stack symbol that is neither a terminal, a
// non-terminal nor ε. It indicates a malformed grammar, not bad input.
var ErrUnknownSymbol = errors.New("unknown stack symbol")

type ErrorKind int

const (
	// Unexpected: the terminal on top of the stack differs from the lookahead.
	Unexpected ErrorKind = iota + 1
	// NoProduction: the table has no cell for (top, lookahead).
	NoProduction
	// TrailingInput: the stack emptied before the input did.
	TrailingInput
	// UnknownSymbol: the stack holds an invalid symbol.
	UnknownSymbol
)

func (k ErrorKind) String() string {
	switch k {
	case Unexpected:
		return "unexpected"
	case NoProduction:
		return "no production"
	case TrailingInput:
		return "trailing input"
	case UnknownSymbol:
		return "unknown symbol"
	default:
		return "unknown"
	}
}

// SyntaxError is the single error of a failed parse.
type SyntaxError struct {
	Kind ErrorKind
	// Expected lists the terminals that would have been accepted.
	Expected []grammar.Terminal
	// Found is the lookahead item.
	Found translate.Item
	// NonTerminal is the stack top for NoProduction.
	NonTerminal grammar.NonTerminal
	// Symbol is the offending stack symbol for UnknownSymbol.
	Symbol grammar.Symbol
}

func (e *SyntaxError) Line() int   { return e.Found.Line }
func (e *SyntaxError) Column() int { return e.Found.Column }

func (e *SyntaxError) Error() string {
	var b strings.Builder
	atEnd := e.Found.IsEnd()
	if atEnd {
		b.WriteString("at end of input: ")
	} else {
		fmt.Fprintf(&b, "line %d, column %d: ", e.Found.Line, e.Found.Column)
	}

	switch e.Kind {
	case Unexpected, NoProduction:
		b.WriteString(expectedList(e.Expected))
		if !atEnd {
			fmt.Fprintf(&b, "; found %s", grammar.Describe(e.Found.Terminal, e.Found.Lexeme))
		}
		if e.Kind == NoProduction {
			fmt.Fprintf(&b, " (no production for %s)", e.NonTerminal)
		}
	case TrailingInput:
		fmt.Fprintf(&b, "input not fully consumed; found %s", grammar.Describe(e.Found.Terminal, e.Found.Lexeme))
	case UnknownSymbol:
		fmt.Fprintf(&b, "%v %q (%s)", ErrUnknownSymbol, e.Symbol.Name, e.Symbol.Kind)
	}
	return b.String()
}

func (e *SyntaxError) Unwrap() error {
	if e.Kind == UnknownSymbol {
		return ErrUnknownSymbol
	}
	return nil
}

func expectedList(terms []grammar.Terminal) string {
	switch len(terms) {
	case 0:
		return "expected nothing"
	case 1:
		return fmt.Sprintf("expected %q", terms[0])
	}
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = fmt.Sprintf("%q", t)
	}
	return "expected one of " + strings.Join(quoted, ", ")
}
