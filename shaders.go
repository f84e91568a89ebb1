// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package shaders provides a Pure Go compiler for Shady shader files.
//
// shaders compiles a Shady source file holding several pipeline stages into
// one GLSL kernel per stage:
//
//	source := `
//	#shader_type canvas
//
//	fn fragment() {
//	    return 1 + 2;
//	}
//	`
//	kernels, err := shaders.Compile(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// kernels[0].Stage == gputypes.ShaderStageFragment
//
// The package provides a simple, high-level API as well as access to the
// individual stages through Parse and Generate.
//
// Plain GLSL files split by #shader_type directives are handled by the
// passthrough package, and WGSL files by the WGSL language. A Loader picks
// the language for each file by its extension.
package shaders

import (
	"fmt"

	"github.com/gogpu/shaders/glsl"
	"github.com/gogpu/shaders/kernel"
	"github.com/gogpu/shaders/shady"
)

// Compile compiles Shady source code to GLSL kernels using default options.
//
// This is the simplest way to compile a shader. For more control, use
// CompileWithOptions or the individual Parse/Generate functions.
func Compile(source string) ([]kernel.Kernel, error) {
	return CompileWithOptions(source, DefaultOptions())
}

// CompileWithOptions compiles Shady source code to GLSL kernels with custom
// options.
//
// The compilation pipeline is:
//  1. Tokenize and parse Shady source to AST
//  2. Generate one GLSL kernel per Shady kernel
func CompileWithOptions(source string, opts Options) ([]kernel.Kernel, error) {
	module, err := Parse(source, opts.parserOptions()...)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	kernels, err := Generate(module, opts)
	if err != nil {
		return nil, fmt.Errorf("GLSL generation error: %w", err)
	}

	return kernels, nil
}

// Parse parses Shady source code to AST.
//
// Errors are *shady.Error values carrying the source, so FormatWithContext
// can show the offending line.
func Parse(source string, opts ...shady.ParserOption) (*shady.Module, error) {
	return shady.Parse(source, opts...)
}

// Generate generates GLSL kernels from a parsed module.
func Generate(module *shady.Module, opts Options) ([]kernel.Kernel, error) {
	return glsl.Compile(module, glsl.Options{Version: opts.GLSLVersion})
}

// Shady is the kernel.Language for Shady source files.
type Shady struct {
	Options Options
}

// ParseKernels compiles source with s.Options.
func (s Shady) ParseKernels(source string) ([]kernel.Kernel, error) {
	return CompileWithOptions(source, s.Options)
}
