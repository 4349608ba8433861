package grammar

type termSet map[Terminal]bool

func (s termSet) addAll(other termSet) bool {
	changed := false
	for term := range other {
		if !s[term] {
			s[term] = true
			changed = true
		}
	}
	return changed
}

// ordered returns the members of s in the table's terminal order.
func (t *Table) ordered(s termSet) []Terminal {
	var out []Terminal
	for _, term := range t.terminals {
		if s[term] {
			out = append(out, term)
		}
	}
	return out
}

// computeSets fills the nullable, FIRST and FOLLOW sets by fixed-point
// iteration over the distinct productions of every non-terminal.
func (t *Table) computeSets() {
	t.nullable = make(map[NonTerminal]bool)
	t.first = make(map[NonTerminal]termSet)
	t.follow = make(map[NonTerminal]termSet)
	for _, nt := range t.nonTerminals {
		t.first[nt] = termSet{}
		t.follow[nt] = termSet{}
	}

	prods := make(map[NonTerminal][]Production)
	for _, nt := range t.nonTerminals {
		prods[nt] = t.Productions(nt)
	}

	for changed := true; changed; {
		changed = false
		for _, nt := range t.nonTerminals {
			for _, p := range prods[nt] {
				first, nullable := t.firstOf(p)
				if t.first[nt].addAll(first) {
					changed = true
				}
				if nullable && !t.nullable[nt] {
					t.nullable[nt] = true
					changed = true
				}
			}
		}
	}

	t.follow[t.start][EndOfInput] = true
	for changed := true; changed; {
		changed = false
		for _, nt := range t.nonTerminals {
			for _, p := range prods[nt] {
				for i, sym := range p {
					if !sym.IsNonTerminal() {
						continue
					}
					target, ok := t.follow[sym.NonTerminal()]
					if !ok {
						continue
					}
					first, nullable := t.firstOf(p[i+1:])
					if target.addAll(first) {
						changed = true
					}
					if nullable && target.addAll(t.follow[nt]) {
						changed = true
					}
				}
			}
		}
	}
}

func (t *Table) firstOf(seq Production) (termSet, bool) {
	out := termSet{}
	for _, sym := range seq {
		switch sym.Kind {
		case SymbolTerminal:
			out[sym.Terminal()] = true
			return out, false
		case SymbolEndMarker:
			out[EndOfInput] = true
			return out, false
		case SymbolNonTerminal:
			out.addAll(t.first[sym.NonTerminal()])
			if !t.nullable[sym.NonTerminal()] {
				return out, false
			}
		case SymbolEpsilon:
		default:
			return out, false
		}
	}
	return out, true
}

// First returns FIRST(seq) in terminal order and whether seq derives ε.
func (t *Table) First(seq Production) ([]Terminal, bool) {
	first, nullable := t.firstOf(seq)
	return t.ordered(first), nullable
}

// Follow returns FOLLOW(nt) in terminal order.
func (t *Table) Follow(nt NonTerminal) []Terminal {
	return t.ordered(t.follow[nt])
}

// Nullable reports whether nt derives ε.
func (t *Table) Nullable(nt NonTerminal) bool {
	return t.nullable[nt]
}
