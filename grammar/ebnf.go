package grammar

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/ebnf"
)

// EBNF renders the productions in Go EBNF notation, one production per
// non-terminal. Terminals become quoted tokens; a non-terminal with an ε
// production is written as an option.
func (t *Table) EBNF() string {
	var b strings.Builder
	for _, nt := range t.nonTerminals {
		var alts []string
		hasEpsilon := false
		for _, p := range t.Productions(nt) {
			if p.IsEpsilon() {
				hasEpsilon = true
				continue
			}
			alts = append(alts, ebnfSequence(p))
		}
		body := strings.Join(alts, " | ")
		if hasEpsilon && body != "" {
			body = "[ " + body + " ]"
		}
		if body == "" {
			fmt.Fprintf(&b, "%s = .\n", nt)
		} else {
			fmt.Fprintf(&b, "%s = %s .\n", nt, body)
		}
	}
	return b.String()
}

func ebnfSequence(p Production) string {
	parts := make([]string, 0, len(p))
	for _, sym := range p {
		if sym.IsTerminal() {
			parts = append(parts, strconv.Quote(sym.Name))
		} else {
			parts = append(parts, sym.Name)
		}
	}
	return strings.Join(parts, " ")
}

// VerifyEBNF parses the EBNF rendering of t and verifies that every
// production is defined and reachable from the start symbol.
func (t *Table) VerifyEBNF() error {
	filename := t.name + ".ebnf"
	g, err := ebnf.Parse(filename, strings.NewReader(t.EBNF()))
	if err != nil {
		return fmt.Errorf("parse %s: %w", filename, err)
	}
	if err := ebnf.Verify(g, string(t.start)); err != nil {
		return fmt.Errorf("verify %s: %w", filename, err)
	}
	return nil
}
