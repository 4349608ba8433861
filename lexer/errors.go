package lexer

import "fmt"

type ErrorKind int

const (
	ErrInvalidCharacter ErrorKind = iota + 1
	ErrUnterminatedComment
	ErrMalformedReal
	ErrIntegerOverflow
	ErrIdentifierTooLong
)

var errorKindNames = map[ErrorKind]string{
	ErrInvalidCharacter:    "invalid character",
	ErrUnterminatedComment: "unterminated comment",
	ErrMalformedReal:       "malformed real literal",
	ErrIntegerOverflow:     "integer overflow",
	ErrIdentifierTooLong:   "identifier too long",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Error is a lexical defect. Lexical errors never stop the scan; they are
// collected and returned together with the tokens.
type Error struct {
	Kind    ErrorKind
	Message string
	Line    int
	Column  int // 0 when no single column applies
}

func (e Error) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}
