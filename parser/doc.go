// Package parser implements a table-driven LL(1) predictive parser.
//
// # Overview
//
// The parser simulates a pushdown automaton over a grammar.Table. It reads
// the terminal stream produced by package translate and records a Step
// before every transition, so the returned trace shows exactly how the
// input was derived or where it was rejected.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   lexer     │────▶│  translate  │────▶│   parser    │
//	│  (tokens)   │     │  (items)    │     │  (Result)   │
//	└─────────────┘     └─────────────┘     └──────┬──────┘
//	                                               │
//	                                        ┌──────▼──────┐
//	                                        │ grammar     │
//	                                        │ Table       │
//	                                        └─────────────┘
//
// # Transitions
//
// The stack starts as [$ START] with the top on the right. While the top is
// not the end marker:
//
//   - a terminal equal to the lookahead is popped and the input advances
//   - ε is popped without consuming input
//   - a non-terminal is replaced by the production in its table cell for the
//     lookahead, pushed in reverse so its first symbol ends up on top
//
// Any other situation is a SyntaxError and the parse halts. There is no
// error recovery: a failed Result carries exactly one error and the trace
// up to and including the failing step.
//
// When the stack is down to the end marker the remaining input must be the
// end marker alone; otherwise the parse fails with TrailingInput.
//
// # Usage
//
//	p := parser.New(grammar.LALG())
//	items, err := translate.Translate(tokens)
//	if err != nil {
//	    return err
//	}
//	result := p.Parse(items)
//	if !result.Success {
//	    fmt.Println(result.Message)
//	}
//
// A Parser holds configuration only. Parse builds its state per call, so a
// single Parser may be shared between goroutines.
package parser
