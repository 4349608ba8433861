// Package translate maps scanner tokens onto the terminal alphabet of the
// LALG grammar.
package translate

import (
	"errors"
	"fmt"

	"github.com/dhamidi/lalg/grammar"
	"github.com/dhamidi/lalg/lexer"
)

// ErrUnmapped reports a token kind with no terminal. It signals a mismatch
// between the scanner and the grammar, never a defect in the analyzed text.
var ErrUnmapped = errors.New("no terminal for token kind")

// Error is a translation failure for one token.
type Error struct {
	Token lexer.Token
	Index int
}

func (e *Error) Error() string {
	return fmt.Sprintf("token %d (%s %q at line %d, column %d): %v",
		e.Index, e.Token.Kind.Code(), e.Token.Literal, e.Token.Line, e.Token.Column, ErrUnmapped)
}

func (e *Error) Unwrap() error { return ErrUnmapped }

// Item is one terminal of the parser input. The end-marker item has Line 0.
type Item struct {
	Terminal grammar.Terminal
	Lexeme   string
	Line     int
	Column   int
}

// IsEnd reports whether it is the end marker.
func (it Item) IsEnd() bool {
	return it.Terminal == grammar.EndOfInput
}

func (it Item) String() string {
	if it.IsEnd() {
		return string(grammar.EndOfInput)
	}
	return it.Lexeme
}

// End is the item appended after the last token.
var End = Item{Terminal: grammar.EndOfInput, Lexeme: string(grammar.EndOfInput)}

var terminals = map[lexer.Kind]grammar.Terminal{
	lexer.KindLParen:      grammar.TermLParen,
	lexer.KindRParen:      grammar.TermRParen,
	lexer.KindStar:        grammar.TermMulOp,
	lexer.KindSlash:       grammar.TermMulOp,
	lexer.KindPlus:        grammar.TermAddOp,
	lexer.KindMinus:       grammar.TermAddOp,
	lexer.KindGT:          grammar.TermRelOp,
	lexer.KindLT:          grammar.TermRelOp,
	lexer.KindEQ:          grammar.TermRelOp,
	lexer.KindNE:          grammar.TermRelOp,
	lexer.KindGE:          grammar.TermRelOp,
	lexer.KindLE:          grammar.TermRelOp,
	lexer.KindAssign:      grammar.TermAssign,
	lexer.KindSemicolon:   grammar.TermSemicolon,
	lexer.KindColon:       grammar.TermColon,
	lexer.KindComma:       grammar.TermComma,
	lexer.KindDot:         grammar.TermDot,
	lexer.KindIntLiteral:  grammar.TermInt,
	lexer.KindRealLiteral: grammar.TermReal,
	lexer.KindProgram:     grammar.TermProgram,
	lexer.KindVar:         grammar.TermVar,
	lexer.KindProcedure:   grammar.TermProcedure,
	lexer.KindIf:          grammar.TermIf,
	lexer.KindThen:        grammar.TermThen,
	lexer.KindWhile:       grammar.TermWhile,
	lexer.KindDo:          grammar.TermDo,
	lexer.KindWrite:       grammar.TermWrite,
	lexer.KindRead:        grammar.TermRead,
	lexer.KindElse:        grammar.TermElse,
	lexer.KindBegin:       grammar.TermBegin,
	lexer.KindEnd:         grammar.TermEnd,
	lexer.KindInteger:     grammar.TermType,
	lexer.KindReal:        grammar.TermType,
	lexer.KindInt:         grammar.TermType,
	lexer.KindFloat:       grammar.TermType,
	lexer.KindChar:        grammar.TermType,
	lexer.KindIdent:       grammar.TermIdent,
}

// Terminal returns the terminal for kind.
func Terminal(kind lexer.Kind) (grammar.Terminal, bool) {
	t, ok := terminals[kind]
	return t, ok
}

// Translate maps tokens to parser input and appends the end marker. It
// stops at the first unmapped token.
func Translate(tokens []lexer.Token) ([]Item, error) {
	items := make([]Item, 0, len(tokens)+1)
	for i, tok := range tokens {
		t, ok := terminals[tok.Kind]
		if !ok {
			return nil, &Error{Token: tok, Index: i}
		}
		items = append(items, Item{
			Terminal: t,
			Lexeme:   tok.Literal,
			Line:     tok.Line,
			Column:   tok.Column,
		})
	}
	return append(items, End), nil
}
