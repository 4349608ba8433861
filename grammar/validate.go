package grammar

import (
	"errors"
	"fmt"
	"strings"
)

func (t *Table) invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalid, t.name, fmt.Sprintf(format, args...))
}

// validate runs the load-time checks. Structural defects are reported
// before FIRST/FOLLOW consistency, which needs a well-formed table.
func (t *Table) validate() error {
	var errs []error

	if !t.IsNonTerminal(t.start) {
		return t.invalidf("start symbol %s is not declared", t.start)
	}

	for _, key := range t.order {
		if !t.IsNonTerminal(key.NonTerminal) {
			errs = append(errs, t.invalidf("cell %s: undeclared non-terminal %s", key, key.NonTerminal))
		}
		if !t.IsTerminal(key.Terminal) {
			errs = append(errs, t.invalidf("cell %s: undeclared terminal %s", key, key.Terminal))
		}
		if err := t.checkProduction(key, t.cells[key]); err != nil {
			errs = append(errs, err)
		}
	}

	reached := t.reachable()
	for _, nt := range t.nonTerminals {
		if !reached[nt] {
			errs = append(errs, t.invalidf("%s is unreachable from %s", nt, t.start))
			continue
		}
		if len(t.Expected(nt)) == 0 {
			errs = append(errs, t.invalidf("%s has no productions", nt))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	t.computeSets()

	if cycle := t.leftRecursion(); cycle != nil {
		errs = append(errs, t.invalidf("left recursion: %s", joinNonTerminals(cycle)))
	}

	for _, key := range t.order {
		p := t.cells[key]
		first, nullable := t.firstOf(p)
		if first[key.Terminal] {
			continue
		}
		if nullable && t.follow[key.NonTerminal][key.Terminal] {
			continue
		}
		errs = append(errs, t.invalidf("cell %s: %s → %s cannot start with %s",
			key, key.NonTerminal, p, key.Terminal))
	}

	return errors.Join(errs...)
}

func (t *Table) checkProduction(key Key, p Production) error {
	if len(p) == 0 {
		return t.invalidf("cell %s: empty production (use ε)", key)
	}
	for _, sym := range p {
		switch sym.Kind {
		case SymbolTerminal:
			if sym.Terminal() == EndOfInput || !t.IsTerminal(sym.Terminal()) {
				return t.invalidf("cell %s: unknown terminal %q", key, sym.Name)
			}
		case SymbolNonTerminal:
			if !t.IsNonTerminal(sym.NonTerminal()) {
				return t.invalidf("cell %s: unknown non-terminal %q", key, sym.Name)
			}
		case SymbolEpsilon:
			if len(p) != 1 {
				return t.invalidf("cell %s: ε must be the only symbol of a production", key)
			}
		case SymbolEndMarker:
			return t.invalidf("cell %s: end marker inside a production", key)
		default:
			return t.invalidf("cell %s: invalid symbol %q", key, sym.Name)
		}
	}
	return nil
}

func (t *Table) reachable() map[NonTerminal]bool {
	reached := map[NonTerminal]bool{t.start: true}
	work := []NonTerminal{t.start}
	for len(work) > 0 {
		nt := work[len(work)-1]
		work = work[:len(work)-1]
		for _, p := range t.Productions(nt) {
			for _, sym := range p {
				if sym.IsNonTerminal() && !reached[sym.NonTerminal()] {
					reached[sym.NonTerminal()] = true
					work = append(work, sym.NonTerminal())
				}
			}
		}
	}
	return reached
}

// leftRecursion returns a cycle A → … → A of non-terminals that can each
// begin the derivation of the next, or nil. Such a cycle never consumes input.
func (t *Table) leftRecursion() []NonTerminal {
	edges := make(map[NonTerminal][]NonTerminal)
	for _, nt := range t.nonTerminals {
		for _, p := range t.Productions(nt) {
			for _, sym := range p {
				if !sym.IsNonTerminal() {
					break
				}
				edges[nt] = append(edges[nt], sym.NonTerminal())
				if !t.nullable[sym.NonTerminal()] {
					break
				}
			}
		}
	}

	const (
		unvisited = iota
		active
		done
	)
	state := make(map[NonTerminal]int)
	var path []NonTerminal
	var visit func(nt NonTerminal) []NonTerminal
	visit = func(nt NonTerminal) []NonTerminal {
		state[nt] = active
		path = append(path, nt)
		for _, next := range edges[nt] {
			switch state[next] {
			case active:
				for i, x := range path {
					if x == next {
						return append(append([]NonTerminal(nil), path[i:]...), next)
					}
				}
			case unvisited:
				if cycle := visit(next); cycle != nil {
					return cycle
				}
			}
		}
		path = path[:len(path)-1]
		state[nt] = done
		return nil
	}
	for _, nt := range t.nonTerminals {
		if state[nt] == unvisited {
			if cycle := visit(nt); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}

func joinNonTerminals(nts []NonTerminal) string {
	names := make([]string, len(nts))
	for i, nt := range nts {
		names[i] = string(nt)
	}
	return strings.Join(names, " → ")
}
