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
	"fmt"

	"github.com/go-faster/errors"
)

// ErrMalformedExpression is matched (with errors.Is) by every error that
// reports an expression which cannot be lexed, parsed or evaluated because
// of its shape rather than because of an unknown symbol.
var ErrMalformedExpression = errors.New("malformed unit expression")

// SyntaxError describes a malformed expression.
type SyntaxError struct {
	Expr string
	Pos  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("unitexpr: %s at offset %d in %q", e.Msg, e.Pos, e.Expr)
}

// Unwrap allows errors.Is(err, ErrMalformedExpression).
func (e *SyntaxError) Unwrap() error { return ErrMalformedExpression }

func syntaxErrorf(expr string, pos int, format string, args ...interface{}) error {
	return &SyntaxError{Expr: expr, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func unsup(n Node) error {
	return errors.Wrapf(ErrMalformedExpression, "unitexpr: %T unsupported", n)
}
