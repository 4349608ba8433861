package grammar

import (
	"fmt"
	"sync"
)

// LALG terminals.
const (
	TermProgram   Terminal = "program"
	TermVar       Terminal = "var"
	TermProcedure Terminal = "procedure"
	TermIf        Terminal = "if"
	TermThen      Terminal = "then"
	TermWhile     Terminal = "while"
	TermDo        Terminal = "do"
	TermWrite     Terminal = "write"
	TermRead      Terminal = "read"
	TermElse      Terminal = "else"
	TermBegin     Terminal = "begin"
	TermEnd       Terminal = "end"
	TermType      Terminal = "type"
	TermIdent     Terminal = "id"
	TermInt       Terminal = "num_int"
	TermReal      Terminal = "num_real"
	TermLParen    Terminal = "("
	TermRParen    Terminal = ")"
	TermMulOp     Terminal = "mulop"
	TermAddOp     Terminal = "addop"
	TermRelOp     Terminal = "relop"
	TermAssign    Terminal = ":="
	TermSemicolon Terminal = ";"
	TermColon     Terminal = ":"
	TermComma     Terminal = ","
	TermDot       Terminal = "."
)

// LALG non-terminals.
const (
	Program       NonTerminal = "PROGRAM"
	Block         NonTerminal = "BLOCK"
	Decls         NonTerminal = "DECLS"
	Decl          NonTerminal = "DECL"
	VarList       NonTerminal = "VAR_LIST"
	VarListTail   NonTerminal = "VAR_LIST_TAIL"
	VarDecl       NonTerminal = "VAR_DECL"
	IDList        NonTerminal = "ID_LIST"
	IDListTail    NonTerminal = "ID_LIST_TAIL"
	Params        NonTerminal = "PARAMS"
	ParamList     NonTerminal = "PARAM_LIST"
	ParamListTail NonTerminal = "PARAM_LIST_TAIL"
	Param         NonTerminal = "PARAM"
	Compound      NonTerminal = "COMPOUND"
	Stmts         NonTerminal = "STMTS"
	StmtsTail     NonTerminal = "STMTS_TAIL"
	Stmt          NonTerminal = "STMT"
	StmtID        NonTerminal = "STMT_ID"
	ElsePart      NonTerminal = "ELSE_PART"
	Cond          NonTerminal = "COND"
	ExprList      NonTerminal = "EXPR_LIST"
	ExprListTail  NonTerminal = "EXPR_LIST_TAIL"
	Expr          NonTerminal = "EXPR"
	Sign          NonTerminal = "SIGN"
	ExprTail      NonTerminal = "EXPR_TAIL"
	Term          NonTerminal = "TERM"
	TermTail      NonTerminal = "TERM_TAIL"
	Factor        NonTerminal = "FACTOR"
)

var termCategories = map[Terminal]string{
	TermType:   "type",
	TermIdent:  "identifier",
	TermInt:    "integer literal",
	TermReal:   "real literal",
	TermMulOp:  "multiplicative operator",
	TermAddOp:  "additive operator",
	TermRelOp:  "relational operator",
}

// Describe names a lookahead for diagnostics, e.g. "identifier 'b'".
func Describe(t Terminal, lexeme string) string {
	if t == EndOfInput {
		return "end of input"
	}
	if category, ok := termCategories[t]; ok {
		return fmt.Sprintf("%s '%s'", category, lexeme)
	}
	return fmt.Sprintf("'%s'", lexeme)
}

var lalg = sync.OnceValue(func() *Table {
	t, err := buildLALG()
	if err != nil {
		panic(fmt.Sprintf("grammar: LALG table: %v", err))
	}
	return t
})

// LALG returns the canonical LALG parse table. It is built and validated
// once per process; an authoring defect panics.
func LALG() *Table {
	return lalg()
}

func buildLALG() (*Table, error) {
	b := NewBuilder("lalg", Program)
	b.Terminals(
		TermProgram, TermVar, TermProcedure, TermIf, TermThen, TermWhile, TermDo,
		TermWrite, TermRead, TermElse, TermBegin, TermEnd, TermType, TermIdent,
		TermInt, TermReal, TermLParen, TermRParen, TermMulOp, TermAddOp, TermRelOp,
		TermAssign, TermSemicolon, TermColon, TermComma, TermDot,
	)
	b.NonTerminals(
		Program, Block, Decls, Decl, VarList, VarListTail, VarDecl, IDList,
		IDListTail, Params, ParamList, ParamListTail, Param, Compound, Stmts,
		StmtsTail, Stmt, StmtID, ElsePart, Cond, ExprList, ExprListTail, Expr,
		Sign, ExprTail, Term, TermTail, Factor,
	)

	eps := P(Epsilon)
	exprStart := []Terminal{TermAddOp, TermIdent, TermInt, TermReal, TermLParen}
	operandStart := []Terminal{TermIdent, TermInt, TermReal, TermLParen}
	exprFollow := []Terminal{TermRelOp, TermThen, TermDo, TermSemicolon, TermEnd, TermElse, TermComma, TermRParen}
	declStart := []Terminal{TermType, TermVar, TermProcedure}

	b.Add(Program, TermProgram, P(T(TermProgram), T(TermIdent), T(TermSemicolon), N(Block), T(TermDot)))
	b.Rule(Program, P(N(Decls)), append(declStart, EndOfInput)...)

	b.Rule(Block, P(N(Decls), N(Compound)), append(declStart, TermBegin)...)

	b.Rule(Decls, P(N(Decl), N(Decls)), declStart...)
	b.Rule(Decls, eps, TermBegin, EndOfInput)

	b.Add(Decl, TermType, P(T(TermType), N(IDList), T(TermSemicolon)))
	b.Add(Decl, TermVar, P(T(TermVar), N(VarList)))
	b.Add(Decl, TermProcedure, P(T(TermProcedure), T(TermIdent), N(Params), T(TermSemicolon), N(Block), T(TermSemicolon)))

	b.Add(VarList, TermIdent, P(N(VarDecl), N(VarListTail)))
	b.Add(VarListTail, TermIdent, P(N(VarDecl), N(VarListTail)))
	b.Rule(VarListTail, eps, append(declStart, TermBegin, EndOfInput)...)
	b.Add(VarDecl, TermIdent, P(N(IDList), T(TermColon), T(TermType), T(TermSemicolon)))

	b.Add(IDList, TermIdent, P(T(TermIdent), N(IDListTail)))
	b.Add(IDListTail, TermComma, P(T(TermComma), T(TermIdent), N(IDListTail)))
	b.Rule(IDListTail, eps, TermSemicolon, TermColon, TermRParen)

	b.Add(Params, TermLParen, P(T(TermLParen), N(ParamList), T(TermRParen)))
	b.Add(Params, TermSemicolon, eps)
	b.Add(ParamList, TermIdent, P(N(Param), N(ParamListTail)))
	b.Add(ParamListTail, TermSemicolon, P(T(TermSemicolon), N(Param), N(ParamListTail)))
	b.Add(ParamListTail, TermRParen, eps)
	b.Add(Param, TermIdent, P(N(IDList), T(TermColon), T(TermType)))

	b.Add(Compound, TermBegin, P(T(TermBegin), N(Stmts), T(TermEnd)))

	b.Rule(Stmts, P(N(Stmt), N(StmtsTail)),
		TermIdent, TermRead, TermWrite, TermBegin, TermIf, TermWhile, TermSemicolon, TermEnd)
	b.Add(StmtsTail, TermSemicolon, P(T(TermSemicolon), N(Stmt), N(StmtsTail)))
	b.Add(StmtsTail, TermEnd, eps)

	b.Add(Stmt, TermIdent, P(T(TermIdent), N(StmtID)))
	b.Add(Stmt, TermRead, P(T(TermRead), T(TermLParen), N(IDList), T(TermRParen)))
	b.Add(Stmt, TermWrite, P(T(TermWrite), T(TermLParen), N(ExprList), T(TermRParen)))
	b.Add(Stmt, TermBegin, P(N(Compound)))
	b.Add(Stmt, TermIf, P(T(TermIf), N(Cond), T(TermThen), N(Stmt), N(ElsePart)))
	b.Add(Stmt, TermWhile, P(T(TermWhile), N(Cond), T(TermDo), N(Stmt)))
	b.Rule(Stmt, eps, TermSemicolon, TermEnd, TermElse)

	b.Add(StmtID, TermAssign, P(T(TermAssign), N(Expr)))
	b.Add(StmtID, TermLParen, P(T(TermLParen), N(ExprList), T(TermRParen)))
	b.Rule(StmtID, eps, TermSemicolon, TermEnd, TermElse)

	// else binds to the nearest if: the [ELSE_PART, else] cell expands.
	b.Add(ElsePart, TermElse, P(T(TermElse), N(Stmt)))
	b.Rule(ElsePart, eps, TermSemicolon, TermEnd)

	b.Rule(Cond, P(N(Expr), T(TermRelOp), N(Expr)), exprStart...)

	b.Rule(ExprList, P(N(Expr), N(ExprListTail)), exprStart...)
	b.Add(ExprListTail, TermComma, P(T(TermComma), N(Expr), N(ExprListTail)))
	b.Add(ExprListTail, TermRParen, eps)

	b.Rule(Expr, P(N(Sign), N(Term), N(ExprTail)), exprStart...)
	b.Add(Sign, TermAddOp, P(T(TermAddOp)))
	b.Rule(Sign, eps, operandStart...)
	b.Add(ExprTail, TermAddOp, P(T(TermAddOp), N(Term), N(ExprTail)))
	b.Rule(ExprTail, eps, exprFollow...)

	b.Rule(Term, P(N(Factor), N(TermTail)), operandStart...)
	b.Add(TermTail, TermMulOp, P(T(TermMulOp), N(Factor), N(TermTail)))
	b.Rule(TermTail, eps, append([]Terminal{TermAddOp}, exprFollow...)...)

	b.Add(Factor, TermIdent, P(T(TermIdent)))
	b.Add(Factor, TermInt, P(T(TermInt)))
	b.Add(Factor, TermReal, P(T(TermReal)))
	b.Add(Factor, TermLParen, P(T(TermLParen), N(Expr), T(TermRParen)))

	return b.Build()
}
