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

// Value is an operand of a unit expression. Implementations supply the unit
// algebra of a particular unit system; the evaluator only sequences the
// operations.
type Value interface {
	Add(Value) (Value, error)
	Sub(Value) (Value, error)
	Mul(Value) (Value, error)
	Div(Value) (Value, error)
	Pow(Value) (Value, error)
	Neg() (Value, error)
}

// Scope resolves the leaves of an expression.
type Scope interface {
	// Number returns the Value of a numeric literal.
	Number(float64) Value
	// Lookup returns the Value of a named unit. The error it returns for an
	// unknown name is passed through Eval unchanged.
	Lookup(name string) (Value, error)
}

// Eval evaluates n in scope s.
func Eval(n Node, s Scope) (Value, error) {
	switch n := n.(type) {
	case *Number:
		return s.Number(n.Value), nil
	case *Ident:
		return s.Lookup(n.Name)
	case *Unary:
		x, err := Eval(n.X, s)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case MINUS:
			return x.Neg()
		default:
			return nil, unsup(n)
		}
	case *Binary:
		x, err := Eval(n.X, s)
		if err != nil {
			return nil, err
		}
		y, err := Eval(n.Y, s)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case PLUS:
			return x.Add(y)
		case MINUS:
			return x.Sub(y)
		case STAR:
			return x.Mul(y)
		case SLASH:
			return x.Div(y)
		case POW, CARET: // '^' means exponent rather than xor
			return x.Pow(y)
		default:
			return nil, unsup(n)
		}
	}
	return nil, unsup(n)
}

// ParseEval parses src and evaluates it in scope s.
func ParseEval(src string, s Scope, opts ...Option) (Value, error) {
	n, err := Parse(src, opts...)
	if err != nil {
		return nil, err
	}
	return Eval(n, s)
}
