package parser

import (
	"errors"
	"fmt"

	"github.com/CrimsonDemon567/lumo/internal/lexer"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// Lex means the scanner rejected the source; Err holds the *lexer.Error.
	Lex ErrorKind = iota
	UnexpectedToken
	UnexpectedEOF
	TrailingInput
	NestingTooDeep
)

var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrTrailingInput   = errors.New("trailing input")
	ErrNestingTooDeep  = errors.New("nesting too deep")
)

func (k ErrorKind) String() string {
	switch k {
	case Lex:
		return "Lex"
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case TrailingInput:
		return "TrailingInput"
	case NestingTooDeep:
		return "NestingTooDeep"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is returned by Parse. Token is the offending token and Index its
// position in the token stream.
type Error struct {
	Kind  ErrorKind
	Token lexer.Token
	Index int
	Limit int
	Err   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case Lex:
		return e.Err.Error()
	case UnexpectedToken:
		return fmt.Sprintf("%s: unexpected token %s at index %d", e.Token.Pos, e.Token, e.Index)
	case UnexpectedEOF:
		return fmt.Sprintf("%s: unexpected end of input", e.Token.Pos)
	case TrailingInput:
		return fmt.Sprintf("%s: unexpected %s after expression at index %d", e.Token.Pos, e.Token, e.Index)
	case NestingTooDeep:
		return fmt.Sprintf("%s: expression nested deeper than %d levels", e.Token.Pos, e.Limit)
	}
	return fmt.Sprintf("%s: %s", e.Token.Pos, e.Kind)
}

func (e *Error) Unwrap() error {
	switch e.Kind {
	case Lex:
		return e.Err
	case UnexpectedToken:
		return ErrUnexpectedToken
	case UnexpectedEOF:
		return ErrUnexpectedEOF
	case TrailingInput:
		return ErrTrailingInput
	case NestingTooDeep:
		return ErrNestingTooDeep
	}
	return nil
}

// Position returns where the error occurred.
func (e *Error) Position() lexer.Position {
	var lexErr *lexer.Error
	if e.Kind == Lex && errors.As(e.Err, &lexErr) {
		return lexErr.Pos
	}
	return e.Token.Pos
}
