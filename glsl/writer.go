// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/shaders/shady"
)

// Writer generates GLSL source code from a Shady AST.
type Writer struct {
	options *Options

	// Output buffer
	out strings.Builder

	// Current indentation level
	indent int
}

// newWriter creates a new GLSL writer.
func newWriter(options *Options) *Writer {
	return &Writer{options: options}
}

// String returns the generated GLSL source code.
func (w *Writer) String() string {
	return w.out.String()
}

// writeKernel wraps the kernel body in `void main()`.
func (w *Writer) writeKernel(k *shady.Kernel) error {
	if w.options.Version != "" {
		w.writeLine("#version %s", w.options.Version)
		w.writeLine("")
	}

	w.writeLine("void main() {")
	w.pushIndent()
	if err := w.writeBlock(k.Statements); err != nil {
		return err
	}
	w.popIndent()
	w.writeLine("}")
	return nil
}

// writeLine writes an indented line.
func (w *Writer) writeLine(format string, args ...any) {
	if format != "" {
		w.writeIndent()
	}
	if len(args) == 0 {
		w.out.WriteString(format)
	} else {
		fmt.Fprintf(&w.out, format, args...)
	}
	w.out.WriteByte('\n')
}

// writeIndent writes the current indentation.
func (w *Writer) writeIndent() {
	for i := 0; i < w.indent; i++ {
		w.out.WriteString("  ")
	}
}

// pushIndent increases indentation.
func (w *Writer) pushIndent() {
	w.indent++
}

// popIndent decreases indentation.
func (w *Writer) popIndent() {
	if w.indent > 0 {
		w.indent--
	}
}

// primitiveName returns the GLSL type name for a parameter primitive.
func primitiveName(p shady.Primitive) (string, error) {
	switch p.Kind {
	case shady.PrimitiveInteger:
		return "int", nil
	case shady.PrimitiveFloat:
		return "float", nil
	case shady.PrimitiveBoolean:
		return "bool", nil
	case shady.PrimitiveVector:
		if p.Cardinality >= 2 && p.Cardinality <= 4 {
			return fmt.Sprintf("vec%d", p.Cardinality), nil
		}
	case shady.PrimitiveMatrix:
		if p.Cardinality >= 2 && p.Cardinality <= 4 {
			return fmt.Sprintf("mat%d", p.Cardinality), nil
		}
	case shady.PrimitiveSampler:
		if p.Cardinality >= 1 && p.Cardinality <= 3 {
			return fmt.Sprintf("sampler%dD", p.Cardinality), nil
		}
	}
	return "", fmt.Errorf("unsupported primitive %+v", p)
}

// formatFloat formats a float so that GLSL always reads it as a float.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// Ensure it has a decimal point or exponent
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
