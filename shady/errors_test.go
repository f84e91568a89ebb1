// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shady

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatWithContext(t *testing.T) {
	source := "fn fragment() {\n  return 1 + $;\n}"

	_, err := Parse(source)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	var shadyErr *Error
	if !errors.As(err, &shadyErr) {
		t.Fatalf("Expected *Error, got %T", err)
	}
	if shadyErr.Kind != ErrorLexical {
		t.Errorf("Kind = %v, want %v", shadyErr.Kind, ErrorLexical)
	}

	expected := "error: unexpected character '$'\n" +
		"  --> line 2:14\n" +
		"   |\n" +
		"  2|   return 1 + $;\n" +
		"   |              ^\n"
	if got := shadyErr.FormatWithContext(); got != expected {
		t.Errorf("FormatWithContext() =\n%s\nwant\n%s", got, expected)
	}
}

func TestErrorSourceAttachedByParse(t *testing.T) {
	source := "fn vertex(int i) {}"

	_, err := Parse(source)
	var shadyErr *Error
	if !errors.As(err, &shadyErr) {
		t.Fatalf("Expected *Error, got %T", err)
	}
	if shadyErr.Source != source {
		t.Errorf("Source = %q, want %q", shadyErr.Source, source)
	}
	if !strings.Contains(shadyErr.FormatWithContext(), "^") {
		t.Errorf("FormatWithContext() has no caret:\n%s", shadyErr.FormatWithContext())
	}
}

func TestErrorWithoutPosition(t *testing.T) {
	err := &Error{Kind: ErrorUnexpectedToken, Message: "unexpected end of input"}

	if err.Error() != "unexpected end of input" {
		t.Errorf("Error() = %q, want %q", err.Error(), "unexpected end of input")
	}
	if err.FormatWithContext() != err.Error() {
		t.Errorf("FormatWithContext() = %q, want %q", err.FormatWithContext(), err.Error())
	}
}

func TestErrorIsThroughWrapping(t *testing.T) {
	_, err := Parse("fn compute() {}")
	wrapped := fmt.Errorf("parse error: %w", err)

	if !errors.Is(wrapped, ErrInvalidKernel) {
		t.Errorf("errors.Is(wrapped, ErrInvalidKernel) = false for %v", wrapped)
	}
	if errors.Is(wrapped, ErrLexical) {
		t.Errorf("errors.Is(wrapped, ErrLexical) = true for %v", wrapped)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{ErrorLexical, "lexical error"},
		{ErrorUnexpectedToken, "unexpected token"},
		{ErrorInvalidKernel, "invalid kernel declaration"},
		{ErrorKind(0), "error"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}
