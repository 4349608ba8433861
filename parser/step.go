package parser

import (
	"fmt"
	"strings"

	"github.com/dhamidi/lalg/grammar"
	"github.com/dhamidi/lalg/translate"
)

type ActionKind int

const (
	ActionConsume ActionKind = iota + 1
	ActionReduce
	ActionExpand
	ActionError
	ActionAccept
)

func (k ActionKind) String() string {
	switch k {
	case ActionConsume:
		return "consume"
	case ActionReduce:
		return "reduce"
	case ActionExpand:
		return "expand"
	case ActionError:
		return "error"
	case ActionAccept:
		return "accept"
	default:
		return "unknown"
	}
}

// Action is the transition taken at one step.
type Action struct {
	Kind        ActionKind
	NonTerminal grammar.NonTerminal // ActionExpand
	Production  grammar.Production  // ActionExpand
	Lexeme      string              // ActionConsume
	Message     string              // ActionError, ActionAccept
}

func (a Action) String() string {
	switch a.Kind {
	case ActionConsume:
		return fmt.Sprintf("consume '%s'", a.Lexeme)
	case ActionReduce:
		return "reduce ε"
	case ActionExpand:
		return fmt.Sprintf("expand %s → %s", a.NonTerminal, a.Production)
	case ActionError:
		return "error: " + a.Message
	case ActionAccept:
		return "accept"
	default:
		return a.Kind.String()
	}
}

// Step is a snapshot of the parser taken before a transition. Stack has the
// top last. Input is the unconsumed part of the terminal stream.
type Step struct {
	Index  int
	Stack  []grammar.Symbol
	Input  []translate.Item
	Action Action
}

// StackString renders the stack bottom first, e.g. "$ ID_LIST_TAIL ;".
func (s Step) StackString() string {
	names := make([]string, len(s.Stack))
	for i, sym := range s.Stack {
		names[i] = sym.String()
	}
	return strings.Join(names, " ")
}

// InputString renders the remaining lexemes, e.g. "b ; $".
func (s Step) InputString() string {
	lexemes := make([]string, len(s.Input))
	for i, it := range s.Input {
		lexemes[i] = it.String()
	}
	return strings.Join(lexemes, " ")
}

func (s Step) String() string {
	return fmt.Sprintf("%d: [%s] [%s] %s", s.Index, s.StackString(), s.InputString(), s.Action)
}

// Result is the outcome of one parse. Err is a *SyntaxError when Success is
// false.
type Result struct {
	Success bool
	Message string
	Steps   []Step
	Err     error
}

// Last returns the final step of the trace.
func (r *Result) Last() (Step, bool) {
	if len(r.Steps) == 0 {
		return Step{}, false
	}
	return r.Steps[len(r.Steps)-1], true
}

// SyntaxError returns r.Err as a *SyntaxError, or nil.
func (r *Result) SyntaxError() *SyntaxError {
	serr, _ := r.Err.(*SyntaxError)
	return serr
}
