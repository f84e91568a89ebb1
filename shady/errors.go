// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shady

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a compilation failure.
type ErrorKind uint8

const (
	// ErrorLexical is an unrecognized character or a malformed number.
	ErrorLexical ErrorKind = iota + 1
	// ErrorUnexpectedToken is a token no production expected, including
	// premature end of input.
	ErrorUnexpectedToken
	// ErrorInvalidKernel is a kernel with parameters or a name other than
	// vertex or fragment.
	ErrorInvalidKernel
)

// Sentinel errors matched by errors.Is against an *Error of the same kind.
var (
	ErrLexical         = errors.New("lexical error")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrInvalidKernel   = errors.New("invalid kernel declaration")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case ErrorLexical:
		return ErrLexical
	case ErrorUnexpectedToken:
		return ErrUnexpectedToken
	case ErrorInvalidKernel:
		return ErrInvalidKernel
	default:
		return nil
	}
}

func (k ErrorKind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return "error"
}

// Error represents a compilation error with source location information.
type Error struct {
	Kind    ErrorKind
	Message string
	Pos     Position
	Source  string // Original source code (for context display)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if !e.Pos.IsValid() {
		return e.Message
	}
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Unwrap returns the sentinel error for the error kind.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// FormatWithContext returns the error message with source context.
// Shows the problematic line with a caret pointing to the error location.
func (e *Error) FormatWithContext() string {
	if e.Source == "" || !e.Pos.IsValid() {
		return e.Error()
	}

	lines := strings.Split(e.Source, "\n")
	lineNum := e.Pos.Line
	if lineNum > len(lines) {
		return e.Error()
	}

	line := lines[lineNum-1]
	col := e.Pos.Column
	if col < 1 {
		col = 1
	}
	if col > len(line)+1 {
		col = len(line) + 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "error: %s\n", e.Message)
	fmt.Fprintf(&sb, "  --> line %d:%d\n", lineNum, col)
	sb.WriteString("   |\n")
	fmt.Fprintf(&sb, "%3d| %s\n", lineNum, line)
	fmt.Fprintf(&sb, "   | %s^\n", strings.Repeat(" ", col-1))

	return sb.String()
}

// newErrorf creates a new Error with a formatted message.
func newErrorf(kind ErrorKind, pos Position, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}

// withSource attaches source text to err when it is an *Error.
func withSource(err error, source string) error {
	var e *Error
	if errors.As(err, &e) && e.Source == "" {
		e.Source = source
	}
	return err
}
