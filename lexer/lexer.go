package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

const (
	// MaxIdentifierLength is the longest identifier the scanner accepts.
	MaxIdentifierLength = 255
	// MaxInteger is the largest integer literal value (signed 32-bit).
	MaxInteger = 2147483647
)

type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Lexer struct {
	input  []byte
	pos    int
	line   int
	column int
	errs   []Error
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{
		input:  input,
		pos:    0,
		line:   1,
		column: 1,
	}
}

// Tokenize scans text and returns its tokens in source order together with
// every lexical error found. Each call uses a fresh Lexer.
func Tokenize(text string) ([]Token, []Error) {
	l := NewLexer([]byte(text))
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Kind == KindEOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, l.Errors()
}

func (l *Lexer) Position() Position {
	return Position{Line: l.line, Column: l.column}
}

// Errors returns the lexical errors collected so far.
func (l *Lexer) Errors() []Error {
	return l.errs
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// advance consumes one byte. LF, CR and CRLF each end a line.
func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' || (ch == '\r' && l.peek() != '\n') {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) errorf(kind ErrorKind, pos Position, format string, args ...any) {
	l.errs = append(l.errs, Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Line:    pos.Line,
		Column:  pos.Column,
	})
}

// NextToken returns the next token, skipping whitespace, comments and any
// construct that produced a lexical error. At end of input it returns a
// KindEOF token.
func (l *Lexer) NextToken() Token {
	for !l.atEOF() {
		start := l.Position()
		ch := l.peek()

		switch {
		case ch == '/' && l.peekN(1) == '/':
			l.skipLineComment()
			continue
		case ch == '/' && l.peekN(1) == '*':
			l.skipBlockComment(start)
			continue
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.advance()
			continue
		}

		if kind, ok := l.doubleOperator(); ok {
			l.advanceN(2)
			return l.token(kind, start, 2)
		}
		if kind, ok := singleSymbols[ch]; ok {
			l.advance()
			return l.token(kind, start, 1)
		}
		if isDigit(ch) {
			if tok, ok := l.scanNumber(start); ok {
				return tok
			}
			continue
		}
		if isLetter(ch) {
			if tok, ok := l.scanIdentOrReserved(start); ok {
				return tok
			}
			continue
		}

		r, size := utf8.DecodeRune(l.input[l.pos:])
		l.pos += size
		l.column++
		l.errorf(ErrInvalidCharacter, start, "invalid character '%c'", r)
	}

	return Token{Kind: KindEOF, Line: l.line, Column: l.column, EndColumn: l.column}
}

func (l *Lexer) token(kind Kind, start Position, length int) Token {
	return Token{
		Kind:      kind,
		Literal:   string(l.input[l.pos-length : l.pos]),
		Line:      start.Line,
		Column:    start.Column,
		EndColumn: start.Column + length - 1,
	}
}

func (l *Lexer) skipLineComment() {
	for !l.atEOF() && l.peek() != '\n' && l.peek() != '\r' {
		l.advance()
	}
}

func (l *Lexer) skipBlockComment(start Position) {
	l.advanceN(2)
	last := l.line
	for !l.atEOF() {
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.advanceN(2)
			return
		}
		last = l.line
		l.advance()
	}
	l.errorf(ErrUnterminatedComment, Position{Line: last}, "unterminated comment (opened at %s)", start)
}

var doubleOperators = map[string]Kind{
	"<>": KindNE,
	">=": KindGE,
	"<=": KindLE,
	":=": KindAssign,
}

func (l *Lexer) doubleOperator() (Kind, bool) {
	if l.pos+2 > len(l.input) {
		return KindEOF, false
	}
	kind, ok := doubleOperators[string(l.input[l.pos:l.pos+2])]
	return kind, ok
}

var singleSymbols = map[byte]Kind{
	'(': KindLParen,
	')': KindRParen,
	'*': KindStar,
	'/': KindSlash,
	'+': KindPlus,
	'-': KindMinus,
	'>': KindGT,
	'<': KindLT,
	'=': KindEQ,
	';': KindSemicolon,
	':': KindColon,
	',': KindComma,
	'.': KindDot,
}

func (l *Lexer) scanNumber(start Position) (Token, bool) {
	begin := l.pos
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' {
		l.advance()
		if !isDigit(l.peek()) {
			l.errorf(ErrMalformedReal, start, "malformed real literal: %s", l.input[begin:l.pos])
			return Token{}, false
		}
		for isDigit(l.peek()) {
			l.advance()
		}
		return l.token(KindRealLiteral, start, l.pos-begin), true
	}

	literal := string(l.input[begin:l.pos])
	if _, err := strconv.ParseInt(literal, 10, 32); err != nil {
		l.errorf(ErrIntegerOverflow, start, "integer overflow: %s exceeds %d", literal, MaxInteger)
		return Token{}, false
	}
	return l.token(KindIntLiteral, start, l.pos-begin), true
}

func (l *Lexer) scanIdentOrReserved(start Position) (Token, bool) {
	begin := l.pos
	for isLetter(l.peek()) || isDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}
	length := l.pos - begin
	if length > MaxIdentifierLength {
		l.errorf(ErrIdentifierTooLong, start, "identifier too long: %d characters (max %d)", length, MaxIdentifierLength)
		return Token{}, false
	}
	literal := string(l.input[begin:l.pos])
	return l.token(LookupReserved(literal), start, length), true
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
