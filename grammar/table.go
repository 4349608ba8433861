package grammar

import (
	"errors"
	"fmt"
)

var (
	// ErrConflict reports a second production for an already filled cell.
	ErrConflict = errors.New("conflicting productions")
	// ErrInvalid reports a structural defect in an authored table.
	ErrInvalid = errors.New("invalid grammar")
)

// Key addresses one cell of the parse table.
type Key struct {
	NonTerminal NonTerminal
	Terminal    Terminal
}

func (k Key) String() string {
	return fmt.Sprintf("[%s, %s]", k.NonTerminal, k.Terminal)
}

// Table maps (non-terminal, lookahead) to the production to expand.
type Table struct {
	name         string
	start        NonTerminal
	terminals    []Terminal
	nonTerminals []NonTerminal
	cells        map[Key]Production
	order        []Key

	nullable map[NonTerminal]bool
	first    map[NonTerminal]termSet
	follow   map[NonTerminal]termSet
}

func (t *Table) Name() string { return t.name }

func (t *Table) Start() NonTerminal { return t.start }

// Terminals returns the terminal alphabet in declaration order. EndOfInput
// is always last.
func (t *Table) Terminals() []Terminal {
	return append([]Terminal(nil), t.terminals...)
}

func (t *Table) NonTerminals() []NonTerminal {
	return append([]NonTerminal(nil), t.nonTerminals...)
}

// Lookup returns the production for (nt, lookahead).
func (t *Table) Lookup(nt NonTerminal, lookahead Terminal) (Production, bool) {
	p, ok := t.cells[Key{NonTerminal: nt, Terminal: lookahead}]
	return p, ok
}

// Expected returns the terminals for which nt has a production, in
// declaration order.
func (t *Table) Expected(nt NonTerminal) []Terminal {
	var expected []Terminal
	for _, term := range t.terminals {
		if _, ok := t.cells[Key{NonTerminal: nt, Terminal: term}]; ok {
			expected = append(expected, term)
		}
	}
	return expected
}

// Cells returns the filled cells in authoring order.
func (t *Table) Cells() []Key {
	return append([]Key(nil), t.order...)
}

// Productions returns the distinct productions of nt in authoring order.
func (t *Table) Productions(nt NonTerminal) []Production {
	var prods []Production
	for _, key := range t.order {
		if key.NonTerminal != nt {
			continue
		}
		p := t.cells[key]
		dup := false
		for _, q := range prods {
			if q.equal(p) {
				dup = true
				break
			}
		}
		if !dup {
			prods = append(prods, p)
		}
	}
	return prods
}

// IsTerminal reports whether term belongs to the alphabet.
func (t *Table) IsTerminal(term Terminal) bool {
	for _, x := range t.terminals {
		if x == term {
			return true
		}
	}
	return false
}

func (t *Table) IsNonTerminal(nt NonTerminal) bool {
	for _, x := range t.nonTerminals {
		if x == nt {
			return true
		}
	}
	return false
}

// Builder collects the cells of a Table.
type Builder struct {
	table *Table
	errs  []error
}

func NewBuilder(name string, start NonTerminal) *Builder {
	return &Builder{
		table: &Table{
			name:  name,
			start: start,
			cells: make(map[Key]Production),
		},
	}
}

// Terminals declares terminals. EndOfInput is declared implicitly.
func (b *Builder) Terminals(terms ...Terminal) *Builder {
	for _, term := range terms {
		if term == EndOfInput {
			continue
		}
		b.table.terminals = append(b.table.terminals, term)
	}
	return b
}

func (b *Builder) NonTerminals(nts ...NonTerminal) *Builder {
	b.table.nonTerminals = append(b.table.nonTerminals, nts...)
	return b
}

// Add fills cell (nt, lookahead). Filling a cell twice is recorded as a
// conflict and reported by Build.
func (b *Builder) Add(nt NonTerminal, lookahead Terminal, production Production) *Builder {
	key := Key{NonTerminal: nt, Terminal: lookahead}
	if existing, ok := b.table.cells[key]; ok {
		b.errs = append(b.errs, fmt.Errorf("%w: cell %s holds %s → %s, cannot add %s → %s",
			ErrConflict, key, nt, existing, nt, production))
		return b
	}
	b.table.cells[key] = production
	b.table.order = append(b.table.order, key)
	return b
}

// Rule fills one cell per lookahead with the same production.
func (b *Builder) Rule(nt NonTerminal, production Production, lookaheads ...Terminal) *Builder {
	for _, lookahead := range lookaheads {
		b.Add(nt, lookahead, production)
	}
	return b
}

// Build validates the collected cells and returns the immutable table.
func (b *Builder) Build() (*Table, error) {
	t := b.table
	if !t.IsTerminal(EndOfInput) {
		t.terminals = append(t.terminals, EndOfInput)
	}
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}
