package lexer

import "fmt"

// TokenType describes the kind of token.
type TokenType string

const (
	// Special
	EOF     TokenType = "EOF"
	NEWLINE TokenType = "NEWLINE"
	INDENT  TokenType = "INDENT"
	DEDENT  TokenType = "DEDENT"

	// Identifiers + literals
	IDENT  TokenType = "IDENT"
	NUMBER TokenType = "NUMBER"
	FLOAT  TokenType = "FLOAT"
	STRING TokenType = "STRING"

	// Keywords
	K_BREAK TokenType = "BREAK"
	K_DO    TokenType = "DO"
	K_IF    TokenType = "IF"
	K_ELIF  TokenType = "ELIF"
	K_GOTO  TokenType = "GOTO"
	K_IN    TokenType = "IN"
	K_TRUE  TokenType = "TRUE"
	K_FALSE TokenType = "FALSE"
	K_NIL   TokenType = "NIL"
	K_FOR   TokenType = "FOR"
	K_PKG   TokenType = "PKG"

	// Operators
	ASSIGN  TokenType = "="
	PLUS    TokenType = "+"
	MINUS   TokenType = "-"
	STAR    TokenType = "*"
	SLASH   TokenType = "/"
	PERCENT TokenType = "%"
	BANG    TokenType = "!"
	LT      TokenType = "<"
	GT      TokenType = ">"
	EQ      TokenType = "=="
	NEQ     TokenType = "!="
	AND     TokenType = "&"
	OR      TokenType = "|"
	LARROW  TokenType = "<-"
	RARROW  TokenType = "->"

	// Delimiters
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	DOT       TokenType = "."
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	LBRACKET  TokenType = "["
	RBRACKET  TokenType = "]"
)

var keywords = map[string]TokenType{
	"break": K_BREAK,
	"do":    K_DO,
	"if":    K_IF,
	"elif":  K_ELIF,
	"goto":  K_GOTO,
	"in":    K_IN,
	"true":  K_TRUE,
	"false": K_FALSE,
	"nil":   K_NIL,
	"for":   K_FOR,
	"pkg":   K_PKG,
}

// LookupIdent returns the keyword type for word, or IDENT.
func LookupIdent(word string) TokenType {
	if t, ok := keywords[word]; ok {
		return t
	}
	return IDENT
}

// Position locates a token or error in the source. Offset counts
// characters from 0; Line and Column count from 1.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a single lexical token.
//
// Int, Float and Str carry the decoded value of NUMBER, FLOAT and
// STRING/IDENT tokens respectively.
type Token struct {
	Type   TokenType
	Lexeme string
	Int    int64
	Float  float64
	Str    string
	Pos    Position
}

func (t Token) String() string {
	switch t.Type {
	case EOF, NEWLINE, INDENT, DEDENT:
		return string(t.Type)
	case NUMBER:
		return fmt.Sprintf("NUMBER(%d)", t.Int)
	case FLOAT:
		return fmt.Sprintf("FLOAT(%g)", t.Float)
	case STRING:
		return fmt.Sprintf("STRING(%q)", t.Str)
	case IDENT:
		return fmt.Sprintf("IDENT(%s)", t.Str)
	}
	return string(t.Type)
}
