package parser

import (
	"log/slog"

	"github.com/CrimsonDemon567/lumo/internal/ast"
	"github.com/CrimsonDemon567/lumo/internal/lexer"
)

// DefaultMaxDepth bounds parenthesis and unary-operator nesting.
const DefaultMaxDepth = 256

// Options configures parser behavior.
type Options struct {
	MaxDepth int
	Logger   *slog.Logger
}

// DefaultOptions returns the options used by the package-level Parse.
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

// Parser turns source text into a syntax tree. A Parser holds no
// per-parse state and may be shared between goroutines.
type Parser struct {
	opts   Options
	logger *slog.Logger
}

// New creates a parser with the given options. Zero fields fall back to
// their defaults.
func New(opts Options) *Parser {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Parser{
		opts:   opts,
		logger: opts.Logger.With("component", "parser"),
	}
}

var std = New(DefaultOptions())

// Parse scans and parses src as a single expression using default options.
func Parse(src string) (ast.Node, error) {
	return std.Parse(src)
}

// Parse scans src and parses it as a single expression. Scanner failures
// are returned as an *Error of kind Lex wrapping the *lexer.Error.
func (p *Parser) Parse(src string) (ast.Node, error) {
	tokens, err := lexer.Scan(src)
	if err != nil {
		p.logger.Debug("scan failed", "error", err)
		return ast.Node{}, &Error{Kind: Lex, Err: err}
	}
	return p.ParseTokens(tokens)
}

// ParseTokens parses an already scanned token stream. The whole stream
// must form one expression; line ends before EOF are allowed.
func (p *Parser) ParseTokens(tokens []lexer.Token) (ast.Node, error) {
	p.logger.Debug("parse start", "tokens", len(tokens))

	c := &cursor{tokens: tokens, maxDepth: p.opts.MaxDepth}
	node, err := c.parseExpression()
	if err == nil {
		for c.peek().Type == lexer.NEWLINE {
			c.next()
		}
		if tok := c.peek(); tok.Type != lexer.EOF {
			err = &Error{Kind: TrailingInput, Token: tok, Index: c.pos}
		}
	}
	if err != nil {
		p.logger.Debug("parse failed", "error", err)
		return ast.Node{}, err
	}

	p.logger.Debug("parse done", "depth", treeDepth{&node})
	return node, nil
}

// treeDepth defers measuring the tree until a handler asks for it.
type treeDepth struct{ node *ast.Node }

func (d treeDepth) LogValue() slog.Value {
	return slog.IntValue(d.node.Depth())
}

// cursor is the mutable state of a single parse.
type cursor struct {
	tokens   []lexer.Token
	pos      int
	depth    int
	maxDepth int
}

func (c *cursor) peek() lexer.Token {
	if c.pos >= len(c.tokens) {
		if len(c.tokens) > 0 {
			last := c.tokens[len(c.tokens)-1]
			return lexer.Token{Type: lexer.EOF, Pos: last.Pos}
		}
		return lexer.Token{Type: lexer.EOF}
	}
	return c.tokens[c.pos]
}

func (c *cursor) next() lexer.Token {
	tok := c.peek()
	if c.pos < len(c.tokens) {
		c.pos++
	}
	return tok
}

func (c *cursor) expect(typ lexer.TokenType) (lexer.Token, error) {
	tok := c.peek()
	if tok.Type != typ {
		return tok, c.unexpected(tok)
	}
	return c.next(), nil
}

func (c *cursor) unexpected(tok lexer.Token) error {
	if c.atEnd() {
		return &Error{Kind: UnexpectedEOF, Token: tok, Index: c.pos}
	}
	return &Error{Kind: UnexpectedToken, Token: tok, Index: c.pos}
}

// atEnd reports whether only line ends and block closes remain before EOF.
func (c *cursor) atEnd() bool {
	for i := c.pos; i < len(c.tokens); i++ {
		switch c.tokens[i].Type {
		case lexer.NEWLINE, lexer.DEDENT:
		case lexer.EOF:
			return true
		default:
			return false
		}
	}
	return true
}

// enter records one more level of nesting at tok.
func (c *cursor) enter(tok lexer.Token) error {
	c.depth++
	if c.depth > c.maxDepth {
		return &Error{Kind: NestingTooDeep, Token: tok, Index: c.pos, Limit: c.maxDepth}
	}
	return nil
}

func (c *cursor) leave() {
	c.depth--
}
