package lexer

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a lexical failure.
type ErrorKind int

const (
	UnexpectedChar ErrorKind = iota
	UnterminatedString
	NumberOutOfRange
	InconsistentIndent
)

var (
	ErrUnexpectedChar     = errors.New("unexpected character")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrNumberOutOfRange   = errors.New("number out of range")
	ErrInconsistentIndent = errors.New("inconsistent indentation")
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedChar:
		return "UnexpectedChar"
	case UnterminatedString:
		return "UnterminatedString"
	case NumberOutOfRange:
		return "NumberOutOfRange"
	case InconsistentIndent:
		return "InconsistentIndent"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) sentinel() error {
	switch k {
	case UnexpectedChar:
		return ErrUnexpectedChar
	case UnterminatedString:
		return ErrUnterminatedString
	case NumberOutOfRange:
		return ErrNumberOutOfRange
	case InconsistentIndent:
		return ErrInconsistentIndent
	}
	return nil
}

// Error is returned by Scan. Char is set for UnexpectedChar, Text holds
// the offending literal for NumberOutOfRange, and Indent the measured
// column for InconsistentIndent.
type Error struct {
	Kind   ErrorKind
	Char   rune
	Text   string
	Indent int
	Pos    Position
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedChar:
		return fmt.Sprintf("%s: unexpected character %q at offset %d", e.Pos, e.Char, e.Pos.Offset)
	case UnterminatedString:
		return fmt.Sprintf("%s: unterminated string literal", e.Pos)
	case NumberOutOfRange:
		return fmt.Sprintf("%s: number %s out of range", e.Pos, e.Text)
	case InconsistentIndent:
		return fmt.Sprintf("%s: indentation of %d columns does not match any enclosing block", e.Pos, e.Indent)
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Kind)
}

func (e *Error) Unwrap() error { return e.Kind.sentinel() }

// Position returns where the error occurred.
func (e *Error) Position() Position { return e.Pos }
