package lexer

import "fmt"

type Kind int

const (
	KindEOF Kind = iota

	// Single-character symbols
	KindLParen
	KindRParen
	KindStar
	KindSlash
	KindPlus
	KindMinus
	KindGT
	KindLT
	KindEQ
	KindSemicolon
	KindColon
	KindComma
	KindDot

	// Two-character operators
	KindNE
	KindGE
	KindLE
	KindAssign

	// Literals
	KindIntLiteral
	KindRealLiteral

	// Reserved words
	KindProgram
	KindVar
	KindProcedure
	KindIf
	KindThen
	KindWhile
	KindDo
	KindWrite
	KindRead
	KindElse
	KindBegin
	KindEnd
	KindInteger
	KindReal
	KindInt
	KindFloat
	KindChar

	KindIdent
)

var kindNames = map[Kind]string{
	KindEOF:         "EOF",
	KindLParen:      "(",
	KindRParen:      ")",
	KindStar:        "*",
	KindSlash:       "/",
	KindPlus:        "+",
	KindMinus:       "-",
	KindGT:          ">",
	KindLT:          "<",
	KindEQ:          "=",
	KindSemicolon:   ";",
	KindColon:       ":",
	KindComma:       ",",
	KindDot:         ".",
	KindNE:          "<>",
	KindGE:          ">=",
	KindLE:          "<=",
	KindAssign:      ":=",
	KindIntLiteral:  "IntLiteral",
	KindRealLiteral: "RealLiteral",
	KindProgram:     "program",
	KindVar:         "var",
	KindProcedure:   "procedure",
	KindIf:          "if",
	KindThen:        "then",
	KindWhile:       "while",
	KindDo:          "do",
	KindWrite:       "write",
	KindRead:        "read",
	KindElse:        "else",
	KindBegin:       "begin",
	KindEnd:         "end",
	KindInteger:     "integer",
	KindReal:        "real",
	KindInt:         "int",
	KindFloat:       "float",
	KindChar:        "char",
	KindIdent:       "Identifier",
}

// kindCodes holds the classification codes shown in token listings. The gap
// at tok109 is the retired '$' symbol.
var kindCodes = map[Kind]string{
	KindLParen:      "tok100",
	KindRParen:      "tok101",
	KindStar:        "tok102",
	KindSlash:       "tok103",
	KindPlus:        "tok104",
	KindMinus:       "tok105",
	KindGT:          "tok106",
	KindLT:          "tok107",
	KindEQ:          "tok108",
	KindSemicolon:   "tok110",
	KindColon:       "tok111",
	KindComma:       "tok112",
	KindDot:         "tok113",
	KindNE:          "tok200",
	KindGE:          "tok201",
	KindLE:          "tok202",
	KindAssign:      "tok203",
	KindIntLiteral:  "tok300",
	KindRealLiteral: "tok301",
	KindProgram:     "tok400",
	KindVar:         "tok401",
	KindProcedure:   "tok402",
	KindIf:          "tok403",
	KindThen:        "tok404",
	KindWhile:       "tok405",
	KindDo:          "tok406",
	KindWrite:       "tok407",
	KindRead:        "tok408",
	KindElse:        "tok409",
	KindBegin:       "tok410",
	KindEnd:         "tok411",
	KindInteger:     "tok412",
	KindReal:        "tok413",
	KindInt:         "tok414",
	KindFloat:       "tok415",
	KindChar:        "tok416",
	KindIdent:       "tok500",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Code returns the classification code of k, or "" for kinds the scanner
// never emits.
func (k Kind) Code() string {
	return kindCodes[k]
}

// IsReserved reports whether k is a reserved-word kind.
func (k Kind) IsReserved() bool {
	return k >= KindProgram && k <= KindChar
}

// Kinds returns every kind the scanner can emit, in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, int(KindIdent))
	for k := KindLParen; k <= KindIdent; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

type Token struct {
	Kind      Kind
	Literal   string
	Line      int
	Column    int
	EndColumn int
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d-%d %s %q", t.Line, t.Column, t.EndColumn, t.Kind.Code(), t.Literal)
}

var reserved = map[string]Kind{
	"program":   KindProgram,
	"var":       KindVar,
	"procedure": KindProcedure,
	"if":        KindIf,
	"then":      KindThen,
	"while":     KindWhile,
	"do":        KindDo,
	"write":     KindWrite,
	"read":      KindRead,
	"else":      KindElse,
	"begin":     KindBegin,
	"end":       KindEnd,
	"integer":   KindInteger,
	"real":      KindReal,
	"int":       KindInt,
	"float":     KindFloat,
	"char":      KindChar,
}

// LookupReserved returns the reserved-word kind for ident, or KindIdent.
func LookupReserved(ident string) Kind {
	if kind, ok := reserved[ident]; ok {
		return kind
	}
	return KindIdent
}
