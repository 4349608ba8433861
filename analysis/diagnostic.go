package analysis

import (
	"github.com/dhamidi/lalg/lexer"
)

// Category separates the error taxonomies a report can contain.
type Category string

const (
	CategoryLexical     Category = "lexical"
	CategorySyntax      Category = "syntax"
	CategoryTranslation Category = "translation"
)

// Diagnostic is one problem located in the source. Line and Column are
// 1-based; Line 0 means end of input or no position. EndColumn is
// inclusive and 0 when unknown.
type Diagnostic struct {
	Category  Category
	Line      int
	Column    int
	EndColumn int
	Message   string
}

// Diagnostics flattens the report: every lexical error in source order,
// then the translation error or the single syntax error.
func (r *Report) Diagnostics() []Diagnostic {
	var diags []Diagnostic
	for _, e := range r.LexErrors {
		diags = append(diags, Diagnostic{
			Category: CategoryLexical,
			Line:     e.Line,
			Column:   e.Column,
			Message:  e.Message,
		})
	}

	if r.TranslateErr != nil {
		diags = append(diags, Diagnostic{
			Category: CategoryTranslation,
			Message:  r.TranslateErr.Error(),
		})
		return diags
	}

	if r.Result == nil || r.Result.Success {
		return diags
	}
	d := Diagnostic{
		Category: CategorySyntax,
		Message:  r.Result.Message,
	}
	if serr := r.Result.SyntaxError(); serr != nil && !serr.Found.IsEnd() {
		d.Line = serr.Line()
		d.Column = serr.Column()
		d.EndColumn = r.endColumn(serr.Line(), serr.Column())
	}
	return append(diags, d)
}

// endColumn finds the token starting at line:column.
func (r *Report) endColumn(line, column int) int {
	for _, tok := range r.Tokens {
		if tok.Line == line && tok.Column == column {
			return tok.EndColumn
		}
	}
	return column
}

// LastLine is the line of the last token, used to place end-of-input
// diagnostics.
func (r *Report) LastLine() int {
	if len(r.Tokens) == 0 {
		return 1
	}
	return r.Tokens[len(r.Tokens)-1].Line
}

// Kinds lists the token kinds of the report, for compact assertions.
func (r *Report) Kinds() []lexer.Kind {
	kinds := make([]lexer.Kind, len(r.Tokens))
	for i, tok := range r.Tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}
