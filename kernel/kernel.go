// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package kernel defines the compiled shader stages handed to a graphics
// backend and the Language strategy that produces them.
package kernel

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Kernel is one compiled shader stage.
type Kernel struct {
	Stage gputypes.ShaderStage
	Code  string
}

// Descriptor builds a shader module descriptor carrying the kernel as GLSL.
func (k Kernel) Descriptor(label string) gputypes.ShaderModuleDescriptor {
	return gputypes.ShaderModuleDescriptor{
		Label: label,
		Source: gputypes.ShaderSourceGLSL{
			Code:  k.Code,
			Stage: k.Stage,
		},
	}
}

// Language turns the source text of one shader file into kernels.
//
// Implementations return kernels in source order, or a single error if any
// stage of their pipeline fails.
type Language interface {
	ParseKernels(source string) ([]Kernel, error)
}

// LanguageFunc adapts an ordinary function to the Language interface.
type LanguageFunc func(source string) ([]Kernel, error)

// ParseKernels calls f(source).
func (f LanguageFunc) ParseKernels(source string) ([]Kernel, error) {
	return f(source)
}

// StageName returns the lower-case name of a single stage as used in shader
// directives and file names.
func StageName(stage gputypes.ShaderStage) string {
	switch stage {
	case gputypes.ShaderStageVertex:
		return "vertex"
	case gputypes.ShaderStageFragment:
		return "fragment"
	case gputypes.ShaderStageCompute:
		return "compute"
	default:
		return fmt.Sprintf("stage(%d)", uint32(stage))
	}
}

// ParseStage is the inverse of StageName.
func ParseStage(name string) (gputypes.ShaderStage, bool) {
	switch name {
	case "vertex":
		return gputypes.ShaderStageVertex, true
	case "fragment":
		return gputypes.ShaderStageFragment, true
	case "compute":
		return gputypes.ShaderStageCompute, true
	default:
		return gputypes.ShaderStageNone, false
	}
}
