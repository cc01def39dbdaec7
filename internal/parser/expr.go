package parser

import (
	"github.com/CrimsonDemon567/lumo/internal/ast"
	"github.com/CrimsonDemon567/lumo/internal/lexer"
)

// ---------------------------
// Precedence climbing
// ---------------------------

const precLowest = 1

// Binary operators, lowest binding first. All are left-associative.
var precedences = map[lexer.TokenType]int{
	lexer.OR:      1,
	lexer.AND:     2,
	lexer.EQ:      3,
	lexer.NEQ:     3,
	lexer.LT:      4,
	lexer.GT:      4,
	lexer.LARROW:  4,
	lexer.RARROW:  4,
	lexer.PLUS:    5,
	lexer.MINUS:   5,
	lexer.STAR:    6,
	lexer.SLASH:   6,
	lexer.PERCENT: 6,
}

func getPrecedence(tok lexer.Token) int {
	if p, ok := precedences[tok.Type]; ok {
		return p
	}
	return -1
}

func (c *cursor) parseExpression() (ast.Node, error) {
	return c.parseExpr(precLowest)
}

func (c *cursor) parseExpr(minPrec int) (ast.Node, error) {
	left, err := c.parseUnary()
	if err != nil {
		return ast.Node{}, err
	}

	for {
		tok := c.peek()
		prec := getPrecedence(tok)
		if prec < minPrec {
			break
		}

		c.next() // consume operator
		right, err := c.parseExpr(prec + 1)
		if err != nil {
			return ast.Node{}, err
		}

		left = ast.Node{
			Kind:     ast.Binary,
			Op:       tok.Type,
			Pos:      tok.Pos,
			Children: []ast.Node{left, right},
		}
	}

	return left, nil
}

// ---------------------------
// Unary and primary
// ---------------------------

func (c *cursor) parseUnary() (ast.Node, error) {
	tok := c.peek()
	if tok.Type != lexer.MINUS && tok.Type != lexer.BANG {
		return c.parsePrimary()
	}

	if err := c.enter(tok); err != nil {
		return ast.Node{}, err
	}
	defer c.leave()

	c.next()
	operand, err := c.parseUnary()
	if err != nil {
		return ast.Node{}, err
	}
	return ast.Node{
		Kind:     ast.Unary,
		Op:       tok.Type,
		Pos:      tok.Pos,
		Children: []ast.Node{operand},
	}, nil
}

func (c *cursor) parsePrimary() (ast.Node, error) {
	tok := c.peek()

	switch tok.Type {
	case lexer.NUMBER:
		c.next()
		return ast.Node{Kind: ast.Number, Int: tok.Int, Pos: tok.Pos}, nil

	case lexer.FLOAT:
		c.next()
		return ast.Node{Kind: ast.Float, Float: tok.Float, Pos: tok.Pos}, nil

	case lexer.STRING:
		c.next()
		return ast.Node{Kind: ast.String, Str: tok.Str, Pos: tok.Pos}, nil

	case lexer.IDENT:
		c.next()
		return ast.Node{Kind: ast.Ident, Str: tok.Str, Pos: tok.Pos}, nil

	case lexer.LPAREN:
		if err := c.enter(tok); err != nil {
			return ast.Node{}, err
		}
		defer c.leave()

		c.next()
		inner, err := c.parseExpression()
		if err != nil {
			return ast.Node{}, err
		}
		if _, err := c.expect(lexer.RPAREN); err != nil {
			return ast.Node{}, err
		}
		return ast.Node{Kind: ast.Paren, Pos: tok.Pos, Children: []ast.Node{inner}}, nil
	}

	return ast.Node{}, c.unexpected(tok)
}
