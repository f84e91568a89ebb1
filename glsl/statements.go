// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strings"

	"github.com/gogpu/shaders/shady"
)

// writeBlock writes a sequence of statements.
func (w *Writer) writeBlock(block []shady.Stmt) error {
	for _, stmt := range block {
		if err := w.writeStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

// writeStatement writes a single statement.
func (w *Writer) writeStatement(stmt shady.Stmt) error {
	switch s := stmt.(type) {
	case *shady.AssignStmt:
		value, err := w.writeExpression(s.Value)
		if err != nil {
			return err
		}
		w.writeSimple("%s = %s", escapeKeyword(s.Name), value)
		return nil

	case *shady.ReturnStmt:
		value, err := w.writeExpression(s.Value)
		if err != nil {
			return err
		}
		w.writeSimple("return %s", value)
		return nil

	case *shady.FunctionStmt:
		return w.writeFunction(s)

	case *shady.IfStmt:
		return w.writeIf(s)

	case *shady.WhileStmt:
		return w.writeWhile(s)

	default:
		return fmt.Errorf("unsupported statement %T", stmt)
	}
}

// writeSimple writes a single-line statement closed by the statement
// terminator.
func (w *Writer) writeSimple(format string, args ...any) {
	w.writeLine(format+";", args...)
}

// writeFunction writes a nested helper function.
func (w *Writer) writeFunction(fn *shady.FunctionStmt) error {
	params := make([]string, 0, len(fn.Params))
	for _, p := range fn.Params {
		typeName, err := primitiveName(p.Primitive)
		if err != nil {
			return fmt.Errorf("function %s: parameter %s: %w", fn.Name, p.Name, err)
		}
		params = append(params, typeName+" "+escapeKeyword(p.Name))
	}

	w.writeLine("void %s(%s) {", escapeKeyword(fn.Name), strings.Join(params, ", "))
	w.pushIndent()
	if err := w.writeBlock(fn.Body); err != nil {
		return err
	}
	w.popIndent()
	w.writeLine("}")
	return nil
}

// writeIf writes an if statement.
func (w *Writer) writeIf(ifStmt *shady.IfStmt) error {
	condition, err := w.writeExpression(ifStmt.Condition)
	if err != nil {
		return err
	}

	w.writeLine("if (%s) {", condition)
	w.pushIndent()
	if err := w.writeBlock(ifStmt.Then); err != nil {
		return err
	}
	w.popIndent()

	if len(ifStmt.Else) > 0 {
		w.writeLine("} else {")
		w.pushIndent()
		if err := w.writeBlock(ifStmt.Else); err != nil {
			return err
		}
		w.popIndent()
	}

	w.writeLine("}")
	return nil
}

// writeWhile writes a while loop.
func (w *Writer) writeWhile(whileStmt *shady.WhileStmt) error {
	condition, err := w.writeExpression(whileStmt.Condition)
	if err != nil {
		return err
	}

	w.writeLine("while (%s) {", condition)
	w.pushIndent()
	if err := w.writeBlock(whileStmt.Body); err != nil {
		return err
	}
	w.popIndent()
	w.writeLine("}")
	return nil
}
