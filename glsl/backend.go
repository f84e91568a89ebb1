// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/shaders/kernel"
	"github.com/gogpu/shaders/shady"
)

// Options configures GLSL code generation.
type Options struct {
	// Version is written as a `#version` directive at the top of every
	// kernel, e.g. "330 core" or "300 es". Empty omits the directive.
	Version string
}

// DefaultOptions returns the default options: no version directive.
func DefaultOptions() Options {
	return Options{}
}

// Compile generates one GLSL kernel per Shady kernel, in source order.
func Compile(module *shady.Module, options Options) ([]kernel.Kernel, error) {
	kernels := make([]kernel.Kernel, 0, len(module.Kernels))

	for _, k := range module.Kernels {
		stage, err := stageOf(k.Kind)
		if err != nil {
			return nil, fmt.Errorf("glsl: %w", err)
		}

		w := newWriter(&options)
		if err := w.writeKernel(k); err != nil {
			return nil, fmt.Errorf("glsl: kernel %s: %w", k.Name, err)
		}

		kernels = append(kernels, kernel.Kernel{Stage: stage, Code: w.String()})
	}

	return kernels, nil
}

// CompileStatement generates GLSL for a single statement at zero indentation.
func CompileStatement(stmt shady.Stmt) (string, error) {
	w := newWriter(&Options{})
	if err := w.writeStatement(stmt); err != nil {
		return "", fmt.Errorf("glsl: %w", err)
	}
	return w.String(), nil
}

// CompileExpression generates GLSL for a single expression.
func CompileExpression(expr shady.Expr) (string, error) {
	w := newWriter(&Options{})
	s, err := w.writeExpression(expr)
	if err != nil {
		return "", fmt.Errorf("glsl: %w", err)
	}
	return s, nil
}

func stageOf(kind shady.KernelKind) (gputypes.ShaderStage, error) {
	switch kind {
	case shady.KernelVertex:
		return gputypes.ShaderStageVertex, nil
	case shady.KernelFragment:
		return gputypes.ShaderStageFragment, nil
	default:
		return gputypes.ShaderStageNone, fmt.Errorf("unsupported kernel kind %d", kind)
	}
}
