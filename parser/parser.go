package parser

import (
	"github.com/dhamidi/lalg/grammar"
	"github.com/dhamidi/lalg/translate"
)

// SuccessMessage is the Message of an accepted parse.
const SuccessMessage = "syntax analysis succeeded: input accepted"

type Option func(*Parser)

// WithStart parses from nt instead of the table's start symbol.
func WithStart(nt grammar.NonTerminal) Option {
	return func(p *Parser) {
		p.start = nt
	}
}

type Parser struct {
	table *grammar.Table
	start grammar.NonTerminal
}

func New(table *grammar.Table, opts ...Option) *Parser {
	p := &Parser{
		table: table,
		start: table.Start(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs the automaton over input. input normally ends with
// translate.End; a missing end marker is implied.
func (p *Parser) Parse(input []translate.Item) *Result {
	return p.run([]grammar.Symbol{grammar.EndMarker, grammar.N(p.start)}, input)
}

// state is the per-call automaton.
type state struct {
	table  *grammar.Table
	stack  []grammar.Symbol
	input  []translate.Item
	cursor int
	steps  []Step
}

func (p *Parser) run(stack []grammar.Symbol, input []translate.Item) *Result {
	s := &state{
		table: p.table,
		stack: append([]grammar.Symbol(nil), stack...),
		input: append([]translate.Item(nil), input...),
	}

	for len(s.stack) > 0 && !s.top().IsEndMarker() {
		if err := s.transition(); err != nil {
			return s.fail(err)
		}
	}

	if rest := s.remaining(); len(rest) > 0 && !rest[0].IsEnd() {
		s.record(Action{})
		return s.fail(&SyntaxError{
			Kind:  TrailingInput,
			Found: rest[0],
		})
	}

	s.steps = append(s.steps, Step{
		Index:  len(s.steps) + 1,
		Stack:  []grammar.Symbol{grammar.EndMarker},
		Action: Action{Kind: ActionAccept, Message: SuccessMessage},
	})
	return &Result{
		Success: true,
		Message: SuccessMessage,
		Steps:   s.steps,
	}
}

func (s *state) top() grammar.Symbol {
	return s.stack[len(s.stack)-1]
}

func (s *state) pop() {
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *state) remaining() []translate.Item {
	if s.cursor >= len(s.input) {
		return nil
	}
	return s.input[s.cursor:]
}

func (s *state) lookahead() translate.Item {
	if s.cursor >= len(s.input) {
		return translate.End
	}
	return s.input[s.cursor]
}

// record appends a snapshot of the current configuration and returns its
// index in s.steps.
func (s *state) record(action Action) int {
	s.steps = append(s.steps, Step{
		Index:  len(s.steps) + 1,
		Stack:  append([]grammar.Symbol(nil), s.stack...),
		Input:  s.remaining(),
		Action: action,
	})
	return len(s.steps) - 1
}

// fail turns the last recorded step into the error step.
func (s *state) fail(err *SyntaxError) *Result {
	msg := err.Error()
	s.steps[len(s.steps)-1].Action = Action{Kind: ActionError, Message: msg}
	return &Result{
		Message: msg,
		Steps:   s.steps,
		Err:     err,
	}
}

func (s *state) transition() *SyntaxError {
	top := s.top()
	la := s.lookahead()
	i := s.record(Action{})

	switch top.Kind {
	case grammar.SymbolTerminal:
		if top.Terminal() != la.Terminal {
			return &SyntaxError{
				Kind:     Unexpected,
				Expected: []grammar.Terminal{top.Terminal()},
				Found:    la,
			}
		}
		s.steps[i].Action = Action{Kind: ActionConsume, Lexeme: la.Lexeme}
		s.pop()
		s.cursor++

	case grammar.SymbolEpsilon:
		s.steps[i].Action = Action{Kind: ActionReduce}
		s.pop()

	case grammar.SymbolNonTerminal:
		nt := top.NonTerminal()
		production, ok := s.table.Lookup(nt, la.Terminal)
		if !ok {
			return &SyntaxError{
				Kind:        NoProduction,
				Expected:    s.table.Expected(nt),
				Found:       la,
				NonTerminal: nt,
			}
		}
		s.steps[i].Action = Action{Kind: ActionExpand, NonTerminal: nt, Production: production}
		s.pop()
		for j := len(production) - 1; j >= 0; j-- {
			if production[j].IsEpsilon() {
				continue
			}
			s.stack = append(s.stack, production[j])
		}

	default:
		return &SyntaxError{
			Kind:   UnknownSymbol,
			Found:  la,
			Symbol: top,
		}
	}
	return nil
}
