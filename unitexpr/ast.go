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

import (
	"strconv"
	"strings"
)

// Node is a node of a parsed unit expression.
type Node interface {
	// String returns a fully parenthesized form of the node.
	String() string
	node()
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

// Ident is a unit or constant name.
type Ident struct {
	Name string
	Pos  int
}

// Binary is a binary operation. Op is one of PLUS, MINUS, STAR, SLASH,
// POW or CARET.
type Binary struct {
	Op   TokenType
	X, Y Node
}

// Unary is a negation.
type Unary struct {
	Op TokenType
	X  Node
}

func (*Number) node() {}
func (*Ident) node()  {}
func (*Binary) node() {}
func (*Unary) node()  {}

func (n *Number) String() string { return strconv.FormatFloat(n.Value, 'g', -1, 64) }

func (n *Ident) String() string { return n.Name }

func (n *Binary) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(n.X.String())
	b.WriteByte(' ')
	b.WriteString(opText[n.Op])
	b.WriteByte(' ')
	b.WriteString(n.Y.String())
	b.WriteByte(')')
	return b.String()
}

func (n *Unary) String() string { return "(" + opText[n.Op] + n.X.String() + ")" }

var opText = map[TokenType]string{
	PLUS:  "+",
	MINUS: "-",
	STAR:  "*",
	SLASH: "/",
	POW:   "**",
	CARET: "^",
}

// Idents returns the names of all identifiers in n, in the order they
// appear, without duplicates.
func Idents(n Node) []string {
	var names []string
	seen := make(map[string]bool)
	var walk func(Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case *Ident:
			if !seen[n.Name] {
				seen[n.Name] = true
				names = append(names, n.Name)
			}
		case *Binary:
			walk(n.X)
			walk(n.Y)
		case *Unary:
			walk(n.X)
		}
	}
	walk(n)
	return names
}
