package translate

import (
	"errors"
	"testing"

	"github.com/dhamidi/lalg/grammar"
	"github.com/dhamidi/lalg/lexer"
)

func TestTerminalCoversEveryKind(t *testing.T) {
	table := grammar.LALG()
	for _, kind := range lexer.Kinds() {
		term, ok := Terminal(kind)
		if !ok {
			t.Errorf("Terminal(%v) has no mapping", kind)
			continue
		}
		if !table.IsTerminal(term) {
			t.Errorf("Terminal(%v) = %q, not in the grammar alphabet", kind, term)
		}
	}
}

func TestTranslate(t *testing.T) {
	tokens, errs := lexer.Tokenize("int a, b, c;")
	if len(errs) != 0 {
		t.Fatalf("Tokenize errors: %v", errs)
	}

	items, err := Translate(tokens)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	want := []grammar.Terminal{
		grammar.TermType, grammar.TermIdent, grammar.TermComma, grammar.TermIdent,
		grammar.TermComma, grammar.TermIdent, grammar.TermSemicolon, grammar.EndOfInput,
	}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i := range want {
		if items[i].Terminal != want[i] {
			t.Errorf("item %d: got %q, want %q", i, items[i].Terminal, want[i])
		}
	}

	if items[1].Lexeme != "a" || items[1].Line != 1 || items[1].Column != 5 {
		t.Errorf("item 1 = %+v, want a at 1:5", items[1])
	}
	end := items[len(items)-1]
	if !end.IsEnd() || end.Line != 0 {
		t.Errorf("last item = %+v, want end marker with Line 0", end)
	}
}

func TestTranslateOperators(t *testing.T) {
	tests := []struct {
		input string
		want  grammar.Terminal
	}{
		{"*", grammar.TermMulOp},
		{"/", grammar.TermMulOp},
		{"+", grammar.TermAddOp},
		{"-", grammar.TermAddOp},
		{"<>", grammar.TermRelOp},
		{">=", grammar.TermRelOp},
		{"=", grammar.TermRelOp},
		{":=", grammar.TermAssign},
		{"real", grammar.TermType},
		{"3.5", grammar.TermReal},
		{"while", grammar.TermWhile},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, _ := lexer.Tokenize(tt.input)
			items, err := Translate(tokens)
			if err != nil {
				t.Fatalf("Translate() error = %v", err)
			}
			if items[0].Terminal != tt.want {
				t.Errorf("got %q, want %q", items[0].Terminal, tt.want)
			}
		})
	}
}

func TestTranslateEmpty(t *testing.T) {
	items, err := Translate(nil)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if len(items) != 1 || !items[0].IsEnd() {
		t.Errorf("Translate(nil) = %v, want only the end marker", items)
	}
}

func TestTranslateUnmapped(t *testing.T) {
	tokens := []lexer.Token{
		{Kind: lexer.KindIdent, Literal: "a", Line: 1, Column: 1, EndColumn: 1},
		{Kind: lexer.KindEOF, Line: 1, Column: 2, EndColumn: 2},
	}
	_, err := Translate(tokens)
	if !errors.Is(err, ErrUnmapped) {
		t.Fatalf("Translate() error = %v, want ErrUnmapped", err)
	}
	var terr *Error
	if !errors.As(err, &terr) || terr.Index != 1 {
		t.Errorf("error = %#v, want *Error at index 1", err)
	}
}
