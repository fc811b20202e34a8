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
	"unicode"
	"unicode/utf8"
)

// TokenType is the kind of a lexical token.
type TokenType int

const (
	EOF TokenType = iota
	NUMBER
	IDENT
	PLUS   // +
	MINUS  // -
	STAR   // *
	SLASH  // /
	POW    // **
	CARET  // ^
	LPAREN // (
	RPAREN // )
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "end of expression"
	case NUMBER:
		return "number"
	case IDENT:
		return "identifier"
	case PLUS:
		return "'+'"
	case MINUS:
		return "'-'"
	case STAR:
		return "'*'"
	case SLASH:
		return "'/'"
	case POW:
		return "'**'"
	case CARET:
		return "'^'"
	case LPAREN:
		return "'('"
	case RPAREN:
		return "')'"
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Token is a lexical token. Pos is the byte offset of the token in the
// source expression.
type Token struct {
	Type  TokenType
	Text  string
	Value float64 // set for NUMBER
	Pos   int
}

// Lex splits src into tokens. The returned slice always ends with an EOF
// token.
func Lex(src string) ([]Token, error) {
	var toks []Token
	i := 0
	for i < len(src) {
		r, w := utf8.DecodeRuneInString(src[i:])
		switch {
		case unicode.IsSpace(r):
			i += w
		case isDigit(r) || (r == '.' && i+1 < len(src) && isDigit(rune(src[i+1]))):
			end := scanNumber(src, i)
			v, err := strconv.ParseFloat(src[i:end], 64)
			if err != nil {
				return nil, syntaxErrorf(src, i, "invalid number %q", src[i:end])
			}
			toks = append(toks, Token{Type: NUMBER, Text: src[i:end], Value: v, Pos: i})
			i = end
		case isIdentStart(r):
			start := i
			for i < len(src) {
				r, w = utf8.DecodeRuneInString(src[i:])
				if !isIdentPart(r) {
					break
				}
				i += w
			}
			toks = append(toks, Token{Type: IDENT, Text: src[start:i], Pos: start})
		case r == '*':
			if i+1 < len(src) && src[i+1] == '*' {
				toks = append(toks, Token{Type: POW, Text: "**", Pos: i})
				i += 2
				continue
			}
			toks = append(toks, Token{Type: STAR, Text: "*", Pos: i})
			i++
		default:
			t, ok := punct[r]
			if !ok {
				return nil, syntaxErrorf(src, i, "unexpected character %q", r)
			}
			toks = append(toks, Token{Type: t, Text: string(r), Pos: i})
			i += w
		}
	}
	return append(toks, Token{Type: EOF, Pos: len(src)}), nil
}

var punct = map[rune]TokenType{
	'+': PLUS,
	'-': MINUS,
	'/': SLASH,
	'^': CARET,
	'(': LPAREN,
	')': RPAREN,
}

// scanNumber returns the end offset of the numeric literal starting at i:
// digits, an optional fraction and an optional exponent. An 'e' that is not
// followed by exponent digits is left for the identifier scanner.
func scanNumber(src string, i int) int {
	for i < len(src) && isDigit(rune(src[i])) {
		i++
	}
	if i < len(src) && src[i] == '.' {
		i++
		for i < len(src) && isDigit(rune(src[i])) {
			i++
		}
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && isDigit(rune(src[j])) {
			for j < len(src) && isDigit(rune(src[j])) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }

func isIdentPart(r rune) bool { return isIdentStart(r) || unicode.IsDigit(r) }
