package parser

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/lalg/grammar"
	"github.com/dhamidi/lalg/lexer"
	"github.com/dhamidi/lalg/translate"
)

func itemsOf(t *testing.T, src string) []translate.Item {
	t.Helper()
	tokens, errs := lexer.Tokenize(src)
	if len(errs) != 0 {
		t.Fatalf("Tokenize(%q) errors: %v", src, errs)
	}
	items, err := translate.Translate(tokens)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	return items
}

func parse(t *testing.T, src string, opts ...Option) *Result {
	t.Helper()
	return New(grammar.LALG(), opts...).Parse(itemsOf(t, src))
}

func TestParseDeclarationList(t *testing.T) {
	result := parse(t, "int a, b, c;")
	if !result.Success {
		t.Fatalf("Success = false, Message = %q", result.Message)
	}
	if result.Message != SuccessMessage {
		t.Errorf("Message = %q, want %q", result.Message, SuccessMessage)
	}
	if result.Err != nil {
		t.Errorf("Err = %v, want nil", result.Err)
	}

	last, _ := result.Last()
	if last.Action.Kind != ActionAccept {
		t.Errorf("last action = %v, want accept", last.Action)
	}
	if len(last.Stack) != 1 || !last.Stack[0].IsEndMarker() {
		t.Errorf("last stack = %v, want [$]", last.Stack)
	}
	if len(last.Input) != 0 {
		t.Errorf("last input = %v, want empty", last.Input)
	}

	first := result.Steps[0]
	if first.StackString() != "$ PROGRAM" {
		t.Errorf("first stack = %q, want %q", first.StackString(), "$ PROGRAM")
	}
	if first.InputString() != "int a , b , c ; $" {
		t.Errorf("first input = %q, want %q", first.InputString(), "int a , b , c ; $")
	}
	if got := first.Action.String(); got != "expand PROGRAM → DECLS" {
		t.Errorf("first action = %q, want %q", got, "expand PROGRAM → DECLS")
	}

	for i, step := range result.Steps {
		if step.Index != i+1 {
			t.Errorf("step %d has Index %d", i, step.Index)
		}
	}
}

func TestParseMissingComma(t *testing.T) {
	result := parse(t, "int a b;")
	if result.Success {
		t.Fatalf("Success = true, want false")
	}

	serr := result.SyntaxError()
	if serr == nil {
		t.Fatalf("Err = %v, want *SyntaxError", result.Err)
	}
	if serr.Kind != NoProduction {
		t.Errorf("Kind = %v, want %v", serr.Kind, NoProduction)
	}
	if serr.NonTerminal != grammar.IDListTail {
		t.Errorf("NonTerminal = %v, want %v", serr.NonTerminal, grammar.IDListTail)
	}
	if serr.Line() != 1 || serr.Column() != 7 {
		t.Errorf("position = %d:%d, want 1:7", serr.Line(), serr.Column())
	}

	want := `line 1, column 7: expected one of ")", ";", ":", ","; found identifier 'b' (no production for ID_LIST_TAIL)`
	if result.Message != want {
		t.Errorf("Message = %q, want %q", result.Message, want)
	}

	last, _ := result.Last()
	if last.Action.Kind != ActionError {
		t.Errorf("last action = %v, want error", last.Action)
	}
	if last.Action.Message != result.Message {
		t.Errorf("last action message = %q, want %q", last.Action.Message, result.Message)
	}
	if last.InputString() != "b ; $" {
		t.Errorf("last input = %q, want %q", last.InputString(), "b ; $")
	}
}

func TestParseUnexpectedTerminal(t *testing.T) {
	result := parse(t, "program p begin end.")
	serr := result.SyntaxError()
	if serr == nil {
		t.Fatalf("Err = %v, want *SyntaxError", result.Err)
	}
	if serr.Kind != Unexpected {
		t.Errorf("Kind = %v, want %v", serr.Kind, Unexpected)
	}
	want := `line 1, column 11: expected ";"; found 'begin'`
	if result.Message != want {
		t.Errorf("Message = %q, want %q", result.Message, want)
	}
}

func TestParseUnexpectedEnd(t *testing.T) {
	result := parse(t, "program p; begin end")
	serr := result.SyntaxError()
	if serr == nil {
		t.Fatalf("Err = %v, want *SyntaxError", result.Err)
	}
	want := `at end of input: expected "."`
	if result.Message != want {
		t.Errorf("Message = %q, want %q", result.Message, want)
	}
}

func TestParsePrograms(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"minimal", "program p; begin end."},
		{"declarations", `program p;
var x, y: integer;
    z: real;
begin
  x := 1;
  y := x * 2 + 3;
  z := -x / (y - 1.5)
end.`},
		{"procedure", `program p;
procedure show(a: integer; b, c: real);
var t: integer;
begin
  write(a, b + c)
end;
begin
  show(1, 2.0, 3.5)
end.`},
		{"control flow", `program p;
var i: int;
begin
  read(i);
  while i > 0 do
  begin
    if i = 5 then write(i) else i := i - 1;
    i := i - 1
  end;
  if i <> 0 then if i >= 1 then write(i) else write(0)
end.`},
		{"empty statements", "program p; begin ; ; end."},
		{"bare call", "program p; begin run end."},
		{"comments", "program p; /* block */ begin // done\nend."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parse(t, tt.src)
			if !result.Success {
				t.Errorf("Message = %q", result.Message)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind ErrorKind
	}{
		{"missing then", "program p; begin if a > b write(a) end.", NoProduction},
		{"condition without relop", "program p; begin while a do a := 1 end.", Unexpected},
		{"assignment without expression", "program p; begin a := end.", NoProduction},
		{"var without type", "program p; var a: ; begin end.", Unexpected},
		{"trailing after program", "program p; begin end. x", TrailingInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parse(t, tt.src)
			if result.Success {
				t.Fatalf("Success = true, want false")
			}
			if serr := result.SyntaxError(); serr == nil || serr.Kind != tt.kind {
				t.Errorf("Err = %v, want kind %v", result.Err, tt.kind)
			}
		})
	}
}

func TestParseTrailingInput(t *testing.T) {
	result := parse(t, "a b", WithStart(grammar.Factor))
	serr := result.SyntaxError()
	if serr == nil || serr.Kind != TrailingInput {
		t.Fatalf("Err = %v, want TrailingInput", result.Err)
	}
	want := "line 1, column 3: input not fully consumed; found identifier 'b'"
	if result.Message != want {
		t.Errorf("Message = %q, want %q", result.Message, want)
	}
	last, _ := result.Last()
	if last.StackString() != "$" || last.Action.Kind != ActionError {
		t.Errorf("last step = %v, want error with stack [$]", last)
	}
}

func TestParseWithStart(t *testing.T) {
	result := parse(t, "(-a * (b + 2) / 4.0)", WithStart(grammar.Factor))
	if !result.Success {
		t.Fatalf("Message = %q", result.Message)
	}
}

func TestParseEpsilonOnStack(t *testing.T) {
	p := New(grammar.LALG())
	stack := []grammar.Symbol{grammar.EndMarker, grammar.T(grammar.TermSemicolon), grammar.Epsilon}
	result := p.run(stack, itemsOf(t, ";"))
	if !result.Success {
		t.Fatalf("Message = %q", result.Message)
	}
	if got := result.Steps[0].Action.String(); got != "reduce ε" {
		t.Errorf("first action = %q, want %q", got, "reduce ε")
	}
	if got := result.Steps[1].Action.String(); got != "consume ';'" {
		t.Errorf("second action = %q, want %q", got, "consume ';'")
	}
}

func TestParseUnknownSymbol(t *testing.T) {
	p := New(grammar.LALG())
	stack := []grammar.Symbol{grammar.EndMarker, {}}
	result := p.run(stack, itemsOf(t, "a"))
	if result.Success {
		t.Fatalf("Success = true, want false")
	}
	if !errors.Is(result.Err, ErrUnknownSymbol) {
		t.Errorf("Err = %v, want ErrUnknownSymbol", result.Err)
	}
	if len(result.Steps) != 1 || result.Steps[0].Action.Kind != ActionError {
		t.Errorf("Steps = %v, want one error step", result.Steps)
	}
}

func TestParseMissingEndMarker(t *testing.T) {
	items := itemsOf(t, "int a;")
	result := New(grammar.LALG()).Parse(items[:len(items)-1])
	if !result.Success {
		t.Fatalf("Message = %q", result.Message)
	}
}

func TestParseIsStateless(t *testing.T) {
	p := New(grammar.LALG())
	bad := p.Parse(itemsOf(t, "int a b;"))
	good := p.Parse(itemsOf(t, "int a, b;"))
	if bad.Success || !good.Success {
		t.Fatalf("got %v then %v, want false then true", bad.Success, good.Success)
	}
	again := p.Parse(itemsOf(t, "int a b;"))
	if len(again.Steps) != len(bad.Steps) || again.Message != bad.Message {
		t.Errorf("repeated parse differs: %d steps %q, want %d steps %q",
			len(again.Steps), again.Message, len(bad.Steps), bad.Message)
	}
}

func TestParseTerminates(t *testing.T) {
	var b strings.Builder
	b.WriteString("program p; begin ")
	for i := 0; i < 200; i++ {
		b.WriteString("x := x + 1; ")
	}
	b.WriteString("end.")

	result := parse(t, b.String())
	if !result.Success {
		t.Fatalf("Message = %q", result.Message)
	}
	consumed := 0
	for _, s := range result.Steps {
		if s.Action.Kind == ActionConsume {
			consumed++
		}
	}
	if want := len(itemsOf(t, b.String())) - 1; consumed != want {
		t.Errorf("consumed %d terminals, want %d", consumed, want)
	}
}

func TestResultJSON(t *testing.T) {
	result := parse(t, "int a b;")
	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var doc struct {
		Success bool `json:"success"`
		Error   struct {
			Kind     string   `json:"kind"`
			Line     int      `json:"line"`
			Column   int      `json:"column"`
			Expected []string `json:"expected"`
			Found    string   `json:"found"`
		} `json:"error"`
		Steps []struct {
			Stack  []string `json:"stack"`
			Action string   `json:"action"`
		} `json:"steps"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if doc.Success {
		t.Errorf("success = true, want false")
	}
	if doc.Error.Kind != "no production" || doc.Error.Line != 1 || doc.Error.Column != 7 || doc.Error.Found != "b" {
		t.Errorf("error = %+v", doc.Error)
	}
	if len(doc.Steps) != len(result.Steps) {
		t.Errorf("got %d steps, want %d", len(doc.Steps), len(result.Steps))
	}
	if doc.Steps[0].Stack[1] != "PROGRAM" {
		t.Errorf("first stack = %v", doc.Steps[0].Stack)
	}
}
