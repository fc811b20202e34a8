/*
Copyright © 2024 the OpenFF Units authors.
This file is part of OpenFF Units.

OpenFF Units is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

OpenFF Units is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with OpenFF Units.  If not, see <http://www.gnu.org/licenses/>.
*/

package unitexpr

import "strings"

// Option configures Parse.
type Option func(*parser)

// ImplicitMultiplication makes juxtaposed operands multiply, so that
// "1.380649e-23 J/K" and "kg m**2" parse as products.
func ImplicitMultiplication() Option {
	return func(p *parser) { p.implicit = true }
}

// Parse parses a unit expression. The grammar follows the usual arithmetic
// precedence:
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = "-" unary | power
//	power   = primary [ ("**" | "^") unary ]
//	primary = number | identifier | "(" expr ")"
//
// Exponentiation is right associative and binds tighter than negation of
// its left operand, so "-2**2" is -(2**2) and "meter**-1" is valid.
// "^" is accepted as an alternate spelling of "**".
func Parse(src string, opts ...Option) (Node, error) {
	if strings.TrimSpace(src) == "" {
		return nil, syntaxErrorf(src, 0, "empty expression")
	}
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	for _, o := range opts {
		o(p)
	}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.Type != EOF {
		return nil, syntaxErrorf(src, t.Pos, "unexpected %s", t.Type)
	}
	return n, nil
}

type parser struct {
	src      string
	toks     []Token
	i        int
	implicit bool
}

func (p *parser) peek() Token { return p.toks[p.i] }

func (p *parser) next() Token {
	t := p.toks[p.i]
	if t.Type != EOF {
		p.i++
	}
	return t
}

func (p *parser) expr() (Node, error) {
	x, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().Type
		if op != PLUS && op != MINUS {
			return x, nil
		}
		p.next()
		y, err := p.term()
		if err != nil {
			return nil, err
		}
		x = &Binary{Op: op, X: x, Y: y}
	}
}

func (p *parser) term() (Node, error) {
	x, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().Type
		switch {
		case op == STAR || op == SLASH:
			p.next()
		case p.implicit && startsOperand(op):
			op = STAR
		default:
			return x, nil
		}
		y, err := p.unary()
		if err != nil {
			return nil, err
		}
		x = &Binary{Op: op, X: x, Y: y}
	}
}

func (p *parser) unary() (Node, error) {
	if p.peek().Type == MINUS {
		p.next()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: MINUS, X: x}, nil
	}
	return p.power()
}

func (p *parser) power() (Node, error) {
	x, err := p.primary()
	if err != nil {
		return nil, err
	}
	if op := p.peek().Type; op == POW || op == CARET {
		p.next()
		y, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Binary{Op: op, X: x, Y: y}, nil
	}
	return x, nil
}

func (p *parser) primary() (Node, error) {
	t := p.next()
	switch t.Type {
	case NUMBER:
		return &Number{Value: t.Value}, nil
	case IDENT:
		return &Ident{Name: t.Text, Pos: t.Pos}, nil
	case LPAREN:
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		if c := p.next(); c.Type != RPAREN {
			return nil, syntaxErrorf(p.src, c.Pos, "expected ')', found %s", c.Type)
		}
		return x, nil
	}
	return nil, syntaxErrorf(p.src, t.Pos, "unexpected %s", t.Type)
}

func startsOperand(t TokenType) bool {
	return t == NUMBER || t == IDENT || t == LPAREN
}
