package grammar

import (
	"errors"
	"strings"
	"testing"
)

// toy builds S → a S | ε over {a, b}.
func toy() *Builder {
	b := NewBuilder("toy", "S")
	b.Terminals("a", "b")
	b.NonTerminals("S")
	b.Add("S", "a", P(T("a"), N("S")))
	b.Add("S", EndOfInput, P(Epsilon))
	return b
}

func TestBuildToy(t *testing.T) {
	table, err := toy().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := table.Terminals(); len(got) != 3 || got[2] != EndOfInput {
		t.Errorf("Terminals() = %v, want [a b $]", got)
	}
	p, ok := table.Lookup("S", "a")
	if !ok {
		t.Fatalf("Lookup(S, a) not found")
	}
	if p.String() != "a S" {
		t.Errorf("Lookup(S, a) = %q, want %q", p, "a S")
	}
	if _, ok := table.Lookup("S", "b"); ok {
		t.Errorf("Lookup(S, b) found, want empty cell")
	}
	if got := table.Expected("S"); len(got) != 2 || got[0] != "a" || got[1] != EndOfInput {
		t.Errorf("Expected(S) = %v, want [a $]", got)
	}
	if !table.Nullable("S") {
		t.Errorf("Nullable(S) = false, want true")
	}
}

func TestBuildRejectsConflict(t *testing.T) {
	b := toy()
	b.Add("S", "a", P(T("a")))

	_, err := b.Build()
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("Build() error = %v, want ErrConflict", err)
	}
	if !strings.Contains(err.Error(), "[S, a]") {
		t.Errorf("error %q does not name the cell", err)
	}
}

func TestBuildRejectsDefects(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Builder)
		want  string
	}{
		{
			name:  "undeclared terminal",
			build: func(b *Builder) { b.Add("S", "c", P(T("c"))) },
			want:  "undeclared terminal c",
		},
		{
			name:  "unknown non-terminal in production",
			build: func(b *Builder) { b.Add("S", "b", P(T("b"), N("X"))) },
			want:  `unknown non-terminal "X"`,
		},
		{
			name:  "epsilon with other symbols",
			build: func(b *Builder) { b.Add("S", "b", P(T("b"), Epsilon)) },
			want:  "ε must be the only symbol",
		},
		{
			name:  "end marker in production",
			build: func(b *Builder) { b.Add("S", "b", P(T("b"), EndMarker)) },
			want:  "end marker inside a production",
		},
		{
			name:  "empty production",
			build: func(b *Builder) { b.Add("S", "b", P()) },
			want:  "empty production",
		},
		{
			name: "unreachable non-terminal",
			build: func(b *Builder) {
				b.NonTerminals("U")
				b.Add("U", "b", P(T("b")))
			},
			want: "U is unreachable from S",
		},
		{
			name: "reachable non-terminal without cells",
			build: func(b *Builder) {
				b.NonTerminals("R")
				b.Add("S", "b", P(N("R")))
			},
			want: "R has no productions",
		},
		{
			name:  "cell inconsistent with FIRST",
			build: func(b *Builder) { b.Add("S", "b", P(T("a"))) },
			want:  "cannot start with b",
		},
		{
			name: "epsilon cell outside FOLLOW",
			build: func(b *Builder) {
				b.Add("S", "b", P(Epsilon))
			},
			want: "cannot start with b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := toy()
			tt.build(b)
			_, err := b.Build()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Build() error = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestBuildRejectsUndeclaredStart(t *testing.T) {
	b := NewBuilder("broken", "S")
	b.Terminals("a")
	_, err := b.Build()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Build() error = %v, want ErrInvalid", err)
	}
}

func TestProductionString(t *testing.T) {
	tests := []struct {
		p    Production
		want string
	}{
		{P(Epsilon), "ε"},
		{P(T("id"), N("ID_LIST_TAIL")), "id ID_LIST_TAIL"},
		{P(T(":="), N("EXPR")), ":= EXPR"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSymbolZeroValueIsInvalid(t *testing.T) {
	var s Symbol
	if s.Kind != SymbolInvalid {
		t.Errorf("zero Kind = %v, want %v", s.Kind, SymbolInvalid)
	}
	if s.IsTerminal() || s.IsNonTerminal() || s.IsEpsilon() || s.IsEndMarker() {
		t.Errorf("zero Symbol classified as %v", s.Kind)
	}
}

func TestBuildRejectsLeftRecursion(t *testing.T) {
	b := NewBuilder("left", "A")
	b.Terminals("x")
	b.NonTerminals("A")
	b.Add("A", "x", P(N("A"), T("x")))
	b.Add("A", EndOfInput, P(Epsilon))

	_, err := b.Build()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Build() error = %v, want ErrInvalid", err)
	}
	if !strings.Contains(err.Error(), "left recursion: A → A") {
		t.Errorf("error %q does not report the cycle", err)
	}
}
