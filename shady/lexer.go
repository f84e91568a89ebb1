// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shady

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes Shady source code.
type Lexer struct {
	source string
	pos    int
	line   int
	column int

	// start of the token being scanned
	start Position

	tokens []Token
}

// NewLexer creates a new lexer for the given source.
func NewLexer(source string) *Lexer {
	// Estimate ~1 token per 4 characters of source.
	estTokens := len(source) / 4
	if estTokens < 16 {
		estTokens = 16
	}
	return &Lexer{
		source: source,
		line:   1,
		column: 1,
		tokens: make([]Token, 0, estTokens),
	}
}

// Tokenize is shorthand for NewLexer(source).Tokenize().
func Tokenize(source string) ([]Token, error) {
	return NewLexer(source).Tokenize()
}

// Tokenize returns all tokens from the source, in order. It stops at the
// first character that starts no token.
func (l *Lexer) Tokenize() ([]Token, error) {
	for !l.isAtEnd() {
		l.start = Position{Line: l.line, Column: l.column, Offset: l.pos}
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	return l.tokens, nil
}

func (l *Lexer) scanToken() error {
	r := l.advance()

	switch r {
	case '!':
		l.addToken(UnaryToken(UnaryNot))
	case '+':
		l.addToken(BinaryToken(BinaryAdd))
	case '-':
		l.addToken(BinaryToken(BinarySubtract))
	case '*':
		l.addToken(BinaryToken(BinaryMultiply))
	case '/':
		l.addToken(BinaryToken(BinaryDivide))
	case '%':
		l.addToken(BinaryToken(BinaryModulo))
	case '^':
		l.addToken(BinaryToken(BinaryPower))
	case '=':
		l.addToken(BinaryToken(BinaryEqual))
	case '<':
		l.addToken(BinaryToken(BinaryLessThan))
	case '>':
		l.addToken(BinaryToken(BinaryGreaterThan))
	case '&':
		l.addToken(BinaryToken(BinaryAnd))
	case '|':
		l.addToken(BinaryToken(BinaryOr))
	case ';':
		l.addToken(SymbolToken(TokenSemicolon))
	case ':':
		l.addToken(SymbolToken(TokenColon))
	case '(':
		l.addToken(SymbolToken(TokenLeftParenthesis))
	case ')':
		l.addToken(SymbolToken(TokenRightParenthesis))
	case '{':
		l.addToken(SymbolToken(TokenLeftBrace))
	case '}':
		l.addToken(SymbolToken(TokenRightBrace))
	case ',':
		l.addToken(SymbolToken(TokenComma))

	default:
		switch {
		case unicode.IsSpace(r):
			// Ignore whitespace
		case isDigit(r):
			return l.number()
		case isAlpha(r) || r == '#':
			l.word()
		default:
			return l.errorf("unexpected character %q", r)
		}
	}

	return nil
}

// number scans a run of digits and dots. A dot selects a float literal.
func (l *Lexer) number() error {
	for isDigit(l.peek()) || l.peek() == '.' {
		l.advance()
	}

	text := l.source[l.start.Offset:l.pos]
	if strings.ContainsRune(text, '.') {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return l.errorf("malformed number literal %q", text)
		}
		l.addToken(FloatToken(v))
		return nil
	}

	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return l.errorf("malformed number literal %q", text)
	}
	l.addToken(IntToken(v))
	return nil
}

// word scans a keyword, boolean literal or identifier.
func (l *Lexer) word() {
	for isAlphaNumeric(l.peek()) || l.peek() == '_' {
		l.advance()
	}

	text := l.source[l.start.Offset:l.pos]
	switch {
	case text == "true":
		l.addToken(BoolToken(true))
	case text == "false":
		l.addToken(BoolToken(false))
	case isReserved(text):
		l.addToken(KeywordToken(text))
	default:
		l.addToken(IdentToken(text))
	}
}

var keywords = map[string]struct{}{
	"let":          {},
	"return":       {},
	"if":           {},
	"else":         {},
	"while":        {},
	"for":          {},
	"fn":           {},
	"int":          {},
	"float":        {},
	"bool":         {},
	"vec2":         {},
	"vec3":         {},
	"vec4":         {},
	"mat2":         {},
	"mat3":         {},
	"mat4":         {},
	"sampler1D":    {},
	"sampler2D":    {},
	"sampler3D":    {},
	"#shader_type": {},
}

func isReserved(text string) bool {
	_, ok := keywords[text]
	return ok
}

func (l *Lexer) addToken(tok Token) {
	tok.Pos = l.start
	l.tokens = append(l.tokens, tok)
}

func (l *Lexer) errorf(format string, args ...any) *Error {
	err := newErrorf(ErrorLexical, l.start, format, args...)
	err.Source = l.source
	return err
}

func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.source[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.pos:])
	return r
}

func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
