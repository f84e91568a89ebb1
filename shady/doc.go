// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package shady provides parsing for Shady, a compact shading language that
// holds several pipeline stages in one file.
//
// # Components
//
//   - Lexer: Tokenizes Shady source code into tokens
//   - Parser: Parses tokens into an AST with one token of lookahead
//   - AST: Type definitions for the abstract syntax tree
//
// # Usage
//
//	source := `
//	#shader_type canvas
//
//	fn fragment() {
//	    let alpha = 1.0;
//	    return alpha;
//	}
//	`
//
//	module, err := shady.Parse(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The stages of Parse can also be driven separately:
//
//	tokens, err := shady.NewLexer(source).Tokenize()
//	...
//	module, err := shady.NewParser(tokens).ParseModule()
//
// # Expressions
//
// Binary operators bind with equal strength, left to right: `1 + 2 * 3`
// parses as `(1 + 2) * 3`. Pass WithPrecedence to the parser for
// conventional arithmetic precedence.
//
// # Errors
//
// The first error aborts parsing. All errors are *Error values carrying a
// source position and match ErrLexical, ErrUnexpectedToken or
// ErrInvalidKernel with errors.Is.
package shady
