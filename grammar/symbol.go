// Package grammar holds the symbol alphabet and the LL(1) parse table that
// drives the predictive parser.
//
// A Table is immutable once built. Build validates it: every cell holds at
// most one production, every non-terminal reachable from the start symbol
// has at least one cell, and every cell agrees with the FIRST and FOLLOW
// sets of its production.
package grammar

import "strings"

type Terminal string

// EndOfInput is the terminal column for the end marker.
const EndOfInput Terminal = "$"

type NonTerminal string

type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolTerminal
	SymbolNonTerminal
	SymbolEpsilon
	SymbolEndMarker
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolTerminal:
		return "terminal"
	case SymbolNonTerminal:
		return "non-terminal"
	case SymbolEpsilon:
		return "epsilon"
	case SymbolEndMarker:
		return "end marker"
	default:
		return "invalid"
	}
}

// Symbol is a grammar symbol. Exactly one of Terminal, NonTerminal, Epsilon
// or EndMarker; the zero value is invalid.
type Symbol struct {
	Kind SymbolKind
	Name string
}

var (
	Epsilon   = Symbol{Kind: SymbolEpsilon, Name: "ε"}
	EndMarker = Symbol{Kind: SymbolEndMarker, Name: string(EndOfInput)}
)

// T returns the terminal symbol t.
func T(t Terminal) Symbol {
	return Symbol{Kind: SymbolTerminal, Name: string(t)}
}

// N returns the non-terminal symbol n.
func N(n NonTerminal) Symbol {
	return Symbol{Kind: SymbolNonTerminal, Name: string(n)}
}

func (s Symbol) IsTerminal() bool    { return s.Kind == SymbolTerminal }
func (s Symbol) IsNonTerminal() bool { return s.Kind == SymbolNonTerminal }
func (s Symbol) IsEpsilon() bool     { return s.Kind == SymbolEpsilon }
func (s Symbol) IsEndMarker() bool   { return s.Kind == SymbolEndMarker }

// Terminal returns the terminal s stands for. The end marker stands for
// EndOfInput.
func (s Symbol) Terminal() Terminal {
	return Terminal(s.Name)
}

func (s Symbol) NonTerminal() NonTerminal {
	return NonTerminal(s.Name)
}

func (s Symbol) String() string {
	return s.Name
}

type Production []Symbol

// P builds a production from its symbols.
func P(symbols ...Symbol) Production {
	return Production(symbols)
}

// IsEpsilon reports whether p is the empty production.
func (p Production) IsEpsilon() bool {
	return len(p) == 1 && p[0].IsEpsilon()
}

func (p Production) String() string {
	names := make([]string, len(p))
	for i, s := range p {
		names[i] = s.String()
	}
	return strings.Join(names, " ")
}

func (p Production) equal(q Production) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}
