// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shady

import (
	"fmt"
	"strconv"
)

// TokenKind represents the type of token.
type TokenKind uint8

const (
	// Literals
	TokenInteger TokenKind = iota
	TokenFloat
	TokenBoolean

	// Operators
	TokenUnaryOperator
	TokenBinaryOperator

	// Words
	TokenKeyword
	TokenIdentifier

	// Delimiters
	TokenSemicolon        // ;
	TokenColon            // :
	TokenLeftBrace        // {
	TokenRightBrace       // }
	TokenLeftParenthesis  // (
	TokenRightParenthesis // )
	TokenComma            // ,
)

// String returns the string representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenInteger:
		return "Integer"
	case TokenFloat:
		return "Float"
	case TokenBoolean:
		return "Boolean"
	case TokenUnaryOperator:
		return "UnaryOperator"
	case TokenBinaryOperator:
		return "BinaryOperator"
	case TokenKeyword:
		return "Keyword"
	case TokenIdentifier:
		return "Identifier"
	case TokenSemicolon:
		return ";"
	case TokenColon:
		return ":"
	case TokenLeftBrace:
		return "{"
	case TokenRightBrace:
		return "}"
	case TokenLeftParenthesis:
		return "("
	case TokenRightParenthesis:
		return ")"
	case TokenComma:
		return ","
	default:
		return "Unknown"
	}
}

// Token represents a lexical token.
//
// Only the payload field matching Kind is meaningful: Text for keywords and
// identifiers, Int, Float and Bool for literals, Unary and Binary for
// operators.
type Token struct {
	Kind   TokenKind
	Text   string
	Int    int64
	Float  float64
	Bool   bool
	Unary  UnaryOperator
	Binary BinaryOperator
	Pos    Position
}

// Is reports whether t and other carry the same kind and payload.
// Source positions are ignored.
func (t Token) Is(other Token) bool {
	t.Pos = Position{}
	other.Pos = Position{}
	return t == other
}

// IsKeyword reports whether t is the keyword with the given text.
func (t Token) IsKeyword(text string) bool {
	return t.Kind == TokenKeyword && t.Text == text
}

// String renders the token for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case TokenInteger:
		return fmt.Sprintf("Integer(%d)", t.Int)
	case TokenFloat:
		return fmt.Sprintf("Float(%s)", strconv.FormatFloat(t.Float, 'g', -1, 64))
	case TokenBoolean:
		return fmt.Sprintf("Boolean(%t)", t.Bool)
	case TokenUnaryOperator:
		return fmt.Sprintf("UnaryOperator(%s)", t.Unary)
	case TokenBinaryOperator:
		return fmt.Sprintf("BinaryOperator(%s)", t.Binary)
	case TokenKeyword:
		return fmt.Sprintf("Keyword(%q)", t.Text)
	case TokenIdentifier:
		return fmt.Sprintf("Identifier(%q)", t.Text)
	default:
		return fmt.Sprintf("%q", t.Kind.String())
	}
}

// IntToken returns an Integer token.
func IntToken(v int64) Token { return Token{Kind: TokenInteger, Int: v} }

// FloatToken returns a Float token.
func FloatToken(v float64) Token { return Token{Kind: TokenFloat, Float: v} }

// BoolToken returns a Boolean token.
func BoolToken(v bool) Token { return Token{Kind: TokenBoolean, Bool: v} }

// UnaryToken returns a UnaryOperator token.
func UnaryToken(op UnaryOperator) Token { return Token{Kind: TokenUnaryOperator, Unary: op} }

// BinaryToken returns a BinaryOperator token.
func BinaryToken(op BinaryOperator) Token { return Token{Kind: TokenBinaryOperator, Binary: op} }

// KeywordToken returns a Keyword token.
func KeywordToken(text string) Token { return Token{Kind: TokenKeyword, Text: text} }

// IdentToken returns an Identifier token.
func IdentToken(name string) Token { return Token{Kind: TokenIdentifier, Text: name} }

// SymbolToken returns a payload-free delimiter token such as TokenSemicolon.
func SymbolToken(kind TokenKind) Token { return Token{Kind: kind} }

// Position represents a position in source code.
type Position struct {
	Line   int
	Column int
	Offset int
}

// IsValid reports whether the position points into a source.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
