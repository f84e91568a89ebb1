// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package passthrough implements a GLSL language that splits one source file
// into kernels without parsing GLSL itself.
//
// A file holds several stages separated by directive lines:
//
//	#version 330 core
//	uniform mat4 u_projection;        // shared by every stage
//
//	#shader_type vertex
//	void main() { ... }
//
//	#shader_type fragment
//	#constant MAX_TEXTURES
//	void main() { ... }
//
// Text before the first #shader_type is copied to the start of every kernel.
// #include splices another file from the language's file system and
// #constant declares a constant supplied by the host Environment.
package passthrough

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/shaders/kernel"
	"github.com/gogpu/shaders/vfs"
)

// Sentinel errors wrapped by ParseKernels.
var (
	ErrUnknownStage      = errors.New("unknown shader stage")
	ErrUndefinedConstant = errors.New("undefined constant")
	ErrConstantType      = errors.New("unsupported constant type")
	ErrInclude           = errors.New("invalid include")
)

// Language is the GLSL pass-through kernel.Language.
type Language struct {
	Environment Environment

	// FS resolves #include directives. Nil rejects every include.
	FS fs.FS

	// Path is the name of the parsed file within FS; relative includes are
	// resolved against its directory.
	Path string
}

// ForFile returns a copy of l that resolves includes relative to name.
func (l Language) ForFile(name string) kernel.Language {
	l.Path = name
	return l
}

// ParseKernels splits source into one kernel per #shader_type directive.
func (l Language) ParseKernels(source string) ([]kernel.Kernel, error) {
	s := &splitter{
		lang:      &l,
		including: make(map[string]struct{}),
	}
	if l.Environment.Version != "" {
		fmt.Fprintf(&s.shared, "#version %s\n\n", l.Environment.Version)
	}

	if err := s.splitFile(l.Path, source); err != nil {
		return nil, err
	}

	kernels := make([]kernel.Kernel, len(s.kernels))
	for i, k := range s.kernels {
		kernels[i] = kernel.Kernel{Stage: k.stage, Code: k.code.String()}
	}
	return kernels, nil
}

// splitter accumulates shared code and kernels across included files.
type splitter struct {
	lang *Language

	shared  strings.Builder
	kernels []*pendingKernel

	// including holds the files on the current include chain.
	including map[string]struct{}
}

type pendingKernel struct {
	stage gputypes.ShaderStage
	code  strings.Builder
}

// current returns the buffer new lines go to: the last kernel, or the
// shared code before the first #shader_type.
func (s *splitter) current() *strings.Builder {
	if len(s.kernels) == 0 {
		return &s.shared
	}
	return &s.kernels[len(s.kernels)-1].code
}

func (s *splitter) splitFile(name, source string) error {
	s.including[name] = struct{}{}
	defer delete(s.including, name)

	for i, line := range strings.Split(strings.TrimSuffix(source, "\n"), "\n") {
		if err := s.splitLine(name, i+1, line); err != nil {
			return err
		}
	}
	return nil
}

func (s *splitter) splitLine(name string, lineNum int, line string) error {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "#") {
		s.current().WriteString(line)
		s.current().WriteByte('\n')
		return nil
	}

	d, err := parseDirective(trimmed)
	if err != nil {
		return fmt.Errorf("passthrough: %s:%d: %w", name, lineNum, err)
	}

	errorf := func(sentinel error, format string, args ...any) error {
		return fmt.Errorf("passthrough: %s:%d: %w: %s", name, lineNum, sentinel, fmt.Sprintf(format, args...))
	}

	switch d.name {
	case "#shader_type":
		stage, ok := kernel.ParseStage(d.arg(0))
		if !ok {
			return errorf(ErrUnknownStage, "%q", d.arg(0))
		}
		k := &pendingKernel{stage: stage}
		k.code.WriteString(s.shared.String())
		s.kernels = append(s.kernels, k)

	case "#include":
		return s.include(name, d.arg(0), errorf)

	case "#constant":
		c, ok := s.lang.Environment.Lookup(d.arg(0))
		if !ok {
			return errorf(ErrUndefinedConstant, "%q", d.arg(0))
		}
		decl, err := c.Declaration()
		if err != nil {
			return errorf(ErrConstantType, "%v", err)
		}
		s.current().WriteString(decl)
		s.current().WriteByte('\n')

	case "#version":
		if s.lang.Environment.Version != "" {
			return nil
		}
		s.current().WriteString(line)
		s.current().WriteByte('\n')

	default:
		s.current().WriteString(line)
		s.current().WriteByte('\n')
	}

	return nil
}

func (s *splitter) include(from, path string, errorf func(error, string, ...any) error) error {
	if path == "" {
		return errorf(ErrInclude, "missing path")
	}
	if s.lang.FS == nil {
		return errorf(ErrInclude, "%q: no file system", path)
	}

	name, err := vfs.Resolve(from, path)
	if err != nil {
		return errorf(ErrInclude, "%v", err)
	}
	if _, cyclic := s.including[name]; cyclic {
		return errorf(ErrInclude, "%q includes itself", name)
	}

	source, err := vfs.ReadText(s.lang.FS, name)
	if err != nil {
		return errorf(ErrInclude, "%v", err)
	}
	return s.splitFile(name, source)
}
