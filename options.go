// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shaders

import (
	"fmt"
	"strconv"
	"strings"

	nagaglsl "github.com/gogpu/naga/glsl"

	"github.com/gogpu/shaders/passthrough"
	"github.com/gogpu/shaders/shady"
)

// Options configures shader compilation.
type Options struct {
	// GLSLVersion is written as a `#version` directive at the top of every
	// kernel generated from Shady source, e.g. "330 core". Empty omits it.
	GLSLVersion string

	// Precedence parses binary expressions with conventional operator
	// precedence instead of strictly left to right.
	Precedence bool

	// Environment supplies the version and constants of GLSL pass-through
	// files.
	Environment passthrough.Environment

	// WGSLVersion is the GLSL version WGSL files are translated to.
	// Defaults to 330 core if zero.
	WGSLVersion nagaglsl.Version
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		WGSLVersion: nagaglsl.Version330,
	}
}

// WithVersion returns a copy of o targeting the given GLSL version for every
// language.
func (o Options) WithVersion(v nagaglsl.Version) Options {
	o.GLSLVersion = v.String()
	o.Environment.Version = v.String()
	o.WGSLVersion = v
	return o
}

func (o Options) parserOptions() []shady.ParserOption {
	if o.Precedence {
		return []shady.ParserOption{shady.WithPrecedence()}
	}
	return nil
}

// ParseVersion parses a GLSL version such as "330", "330 core", "450core"
// or "300 es".
func ParseVersion(version string) (nagaglsl.Version, error) {
	s := strings.ToLower(strings.TrimSpace(version))

	es := false
	switch {
	case strings.HasSuffix(s, "es"):
		es = true
		s = strings.TrimSpace(strings.TrimSuffix(s, "es"))
	case strings.HasSuffix(s, "core"):
		s = strings.TrimSpace(strings.TrimSuffix(s, "core"))
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 100 || n > 999 {
		return nagaglsl.Version{}, fmt.Errorf("invalid GLSL version %q", version)
	}

	return nagaglsl.Version{
		Major: uint8(n / 100),
		Minor: uint8(n % 100),
		ES:    es,
	}, nil
}
