package lexer

import (
	"strconv"
	"strings"
	"unicode"
)

// TabWidth is the number of columns a tab contributes to indentation.
const TabWidth = 4

// scanner holds the state of a single Scan call.
type scanner struct {
	src         []rune
	pos         int
	line        int
	col         int
	indentStack []int
	startOfLine bool
	tokens      []Token
}

func newScanner(src string) *scanner {
	return &scanner{
		src:         []rune(src),
		line:        1,
		col:         1,
		indentStack: []int{0},
		startOfLine: true,
	}
}

// Scan tokenizes src. The returned slice always ends with an EOF token,
// and every INDENT in it is matched by a DEDENT.
func Scan(src string) ([]Token, error) {
	return newScanner(src).run()
}

// run tokenizes the entire input. A scanner is used once.
func (l *scanner) run() ([]Token, error) {
	for {
		// Handle indentation only at the start of a line
		if l.startOfLine {
			l.startOfLine = false
			if err := l.lexIndentation(); err != nil {
				return nil, err
			}
			continue
		}

		l.skipWhitespaceExceptNewline()
		if l.isAtEnd() {
			break
		}
		if err := l.lexToken(); err != nil {
			return nil, err
		}
	}

	// Close every block still open
	for len(l.indentStack) > 1 {
		l.indentStack = l.indentStack[:len(l.indentStack)-1]
		l.emit(DEDENT, "", l.here())
	}
	l.emit(EOF, "", l.here())
	return l.tokens, nil
}

func (l *scanner) lexToken() error {
	ch := l.peek()

	if ch == '\n' {
		pos := l.here()
		l.advance()
		l.emit(NEWLINE, "\n", pos)
		l.startOfLine = true
		return nil
	}

	if isDigit(ch) {
		return l.lexNumber()
	}
	if ch == '"' {
		return l.lexString()
	}
	if isLetter(ch) {
		l.lexIdentifierOrKeyword()
		return nil
	}
	return l.lexSymbol()
}

func (l *scanner) isAtEnd() bool {
	return l.pos >= len(l.src)
}

func (l *scanner) advance() rune {
	if l.isAtEnd() {
		return 0
	}
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *scanner) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *scanner) peekNext() rune {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

func (l *scanner) here() Position {
	return Position{Offset: l.pos, Line: l.line, Column: l.col}
}

func (l *scanner) emit(typ TokenType, lexeme string, pos Position) {
	l.tokens = append(l.tokens, Token{Type: typ, Lexeme: lexeme, Pos: pos})
}

func (l *scanner) skipWhitespaceExceptNewline() {
	for !l.isAtEnd() {
		ch := l.peek()
		if ch != '\n' && unicode.IsSpace(ch) {
			l.advance()
		} else {
			break
		}
	}
}

func (l *scanner) lexIndentation() error {
	count := 0
	for !l.isAtEnd() {
		ch := l.peek()
		if ch == ' ' {
			count++
			l.advance()
		} else if ch == '\t' {
			count += TabWidth
			l.advance()
		} else {
			break
		}
	}

	// Blank lines leave the block structure alone
	if l.isAtEnd() || l.peek() == '\n' ||
		(l.peek() == '\r' && (l.peekNext() == '\n' || l.peekNext() == 0)) {
		return nil
	}

	pos := l.here()
	top := l.indentStack[len(l.indentStack)-1]
	if count > top {
		l.indentStack = append(l.indentStack, count)
		l.emit(INDENT, "", pos)
		return nil
	}
	for count < top {
		l.indentStack = l.indentStack[:len(l.indentStack)-1]
		l.emit(DEDENT, "", pos)
		top = l.indentStack[len(l.indentStack)-1]
	}
	if top != count {
		return &Error{Kind: InconsistentIndent, Indent: count, Pos: pos}
	}
	return nil
}

func (l *scanner) lexIdentifierOrKeyword() {
	pos := l.here()
	startPos := l.pos
	for !l.isAtEnd() && (isLetter(l.peek()) || unicode.IsDigit(l.peek())) {
		l.advance()
	}
	lex := string(l.src[startPos:l.pos])

	typ := LookupIdent(lex)
	tok := Token{Type: typ, Lexeme: lex, Pos: pos}
	if typ == IDENT {
		tok.Str = lex
	}
	l.tokens = append(l.tokens, tok)
}

func (l *scanner) lexNumber() error {
	pos := l.here()
	startPos := l.pos
	hasDot := false

	for !l.isAtEnd() {
		ch := l.peek()
		if isDigit(ch) {
			l.advance()
		} else if ch == '.' && !hasDot {
			hasDot = true
			l.advance()
		} else {
			break
		}
	}

	lex := string(l.src[startPos:l.pos])
	tok := Token{Lexeme: lex, Pos: pos}
	if hasDot {
		f, err := strconv.ParseFloat(lex, 64)
		if err != nil {
			return &Error{Kind: NumberOutOfRange, Text: lex, Pos: pos}
		}
		tok.Type = FLOAT
		tok.Float = f
	} else {
		n, err := strconv.ParseInt(lex, 10, 64)
		if err != nil {
			return &Error{Kind: NumberOutOfRange, Text: lex, Pos: pos}
		}
		tok.Type = NUMBER
		tok.Int = n
	}
	l.tokens = append(l.tokens, tok)
	return nil
}

func (l *scanner) lexString() error {
	pos := l.here()
	startPos := l.pos
	l.advance() // consume opening quote

	var sb strings.Builder
	for {
		if l.isAtEnd() {
			return &Error{Kind: UnterminatedString, Pos: pos}
		}
		ch := l.advance()
		switch ch {
		case '"':
			l.tokens = append(l.tokens, Token{
				Type:   STRING,
				Lexeme: string(l.src[startPos:l.pos]),
				Str:    sb.String(),
				Pos:    pos,
			})
			return nil
		case '\\':
			if l.isAtEnd() {
				return &Error{Kind: UnterminatedString, Pos: pos}
			}
			sb.WriteRune(unescape(l.advance()))
		default:
			sb.WriteRune(ch)
		}
	}
}

// unescape maps the character after a backslash. Unknown escapes
// yield the character itself.
func unescape(ch rune) rune {
	if ch == 'n' {
		return '\n'
	}
	return ch
}

func (l *scanner) lexSymbol() error {
	pos := l.here()
	ch := l.advance()

	single := func(typ TokenType) error {
		l.emit(typ, string(ch), pos)
		return nil
	}
	pair := func(next rune, two, one TokenType) error {
		if l.peek() == next {
			l.advance()
			l.emit(two, string([]rune{ch, next}), pos)
			return nil
		}
		l.emit(one, string(ch), pos)
		return nil
	}

	switch ch {
	case ',':
		return single(COMMA)
	case ';':
		return single(SEMICOLON)
	case '.':
		return single(DOT)
	case '(':
		return single(LPAREN)
	case ')':
		return single(RPAREN)
	case '{':
		return single(LBRACE)
	case '}':
		return single(RBRACE)
	case '[':
		return single(LBRACKET)
	case ']':
		return single(RBRACKET)
	case '+':
		return single(PLUS)
	case '*':
		return single(STAR)
	case '/':
		return single(SLASH)
	case '%':
		return single(PERCENT)
	case '>':
		return single(GT)
	case '&':
		return single(AND)
	case '|':
		return single(OR)
	case '-':
		return pair('>', RARROW, MINUS)
	case '<':
		return pair('-', LARROW, LT)
	case '=':
		return pair('=', EQ, ASSIGN)
	case '!':
		return pair('=', NEQ, BANG)
	}

	return &Error{Kind: UnexpectedChar, Char: ch, Pos: pos}
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
