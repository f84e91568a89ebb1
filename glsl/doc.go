// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl generates GLSL (OpenGL Shading Language) kernels from a
// parsed Shady module.
//
// Every Shady kernel becomes one kernel.Kernel whose code is a single
// `void main()` function. Helper functions declared inside a kernel are
// written in place.
//
// # Basic Usage
//
//	module, err := shady.Parse(source)
//	...
//	kernels, err := glsl.Compile(module, glsl.Options{Version: "330 core"})
//
// # Expressions
//
// Operators are written with their GLSL symbols. Parentheses are added
// only where GLSL precedence would regroup the parsed tree, so
// `(1 + 2) * 3` parsed left to right is written as `(1 + 2) * 3` and
// `1 + 2` is written as `1 + 2`. The power operator is written as `^`.
//
// # Reserved Words
//
// Identifiers that collide with GLSL reserved words are prefixed with an
// underscore.
package glsl
