// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shaders

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	nagaglsl "github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/ir"

	"github.com/gogpu/shaders/kernel"
)

// WGSL is the kernel.Language for WGSL source files. Every entry point of
// the module becomes one GLSL kernel, in declaration order.
type WGSL struct {
	// Version is the target GLSL version.
	// Defaults to 330 core if zero.
	Version nagaglsl.Version
}

// ParseKernels parses and lowers source with naga, then translates each
// entry point to GLSL.
func (w WGSL) ParseKernels(source string) ([]kernel.Kernel, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, fmt.Errorf("lowering error: %w", err)
	}

	version := w.Version
	if version.Major == 0 {
		version = nagaglsl.Version330
	}

	kernels := make([]kernel.Kernel, 0, len(module.EntryPoints))
	for _, ep := range module.EntryPoints {
		stage, err := wgslStage(ep.Stage)
		if err != nil {
			return nil, fmt.Errorf("entry point %s: %w", ep.Name, err)
		}

		code, _, err := nagaglsl.Compile(module, nagaglsl.Options{
			LangVersion: version,
			EntryPoint:  ep.Name,
		})
		if err != nil {
			return nil, fmt.Errorf("GLSL generation error: entry point %s: %w", ep.Name, err)
		}

		kernels = append(kernels, kernel.Kernel{Stage: stage, Code: code})
	}

	return kernels, nil
}

func wgslStage(stage ir.ShaderStage) (gputypes.ShaderStage, error) {
	switch stage {
	case ir.StageVertex:
		return gputypes.ShaderStageVertex, nil
	case ir.StageFragment:
		return gputypes.ShaderStageFragment, nil
	case ir.StageCompute:
		return gputypes.ShaderStageCompute, nil
	default:
		return gputypes.ShaderStageNone, fmt.Errorf("unsupported shader stage %d", stage)
	}
}
