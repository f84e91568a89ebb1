// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package passthrough

import (
	"fmt"
	"strconv"
	"strings"
)

// Environment describes the host a pass-through shader is compiled for.
type Environment struct {
	// Version replaces every #version line with `#version <Version>` at the
	// top of each kernel, e.g. "330 core". Empty keeps the source's own
	// #version lines.
	Version string

	// Constants are the values #constant directives may declare.
	Constants []Constant
}

// Lookup returns the constant with the given name.
func (e Environment) Lookup(name string) (Constant, bool) {
	for _, c := range e.Constants {
		if c.Name == name {
			return c, true
		}
	}
	return Constant{}, false
}

// Constant is a named value supplied by the host. Value must be a bool,
// int32, uint32 or float32.
type Constant struct {
	Name  string
	Value any
}

// Declaration returns the GLSL declaration of the constant, e.g.
// `const uint MAX_TEXTURES = 8u;`.
func (c Constant) Declaration() (string, error) {
	var typeName, value string

	switch v := c.Value.(type) {
	case bool:
		typeName, value = "bool", strconv.FormatBool(v)
	case int32:
		typeName, value = "int", strconv.FormatInt(int64(v), 10)
	case uint32:
		typeName, value = "uint", strconv.FormatUint(uint64(v), 10)+"u"
	case float32:
		typeName, value = "float", formatFloat(v)
	default:
		return "", fmt.Errorf("%s has type %T", c.Name, c.Value)
	}

	return fmt.Sprintf("const %s %s = %s;", typeName, c.Name, value), nil
}

func formatFloat(f float32) string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 32)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
