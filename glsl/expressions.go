// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strconv"

	"github.com/gogpu/shaders/shady"
)

// writeExpression returns the GLSL text of an expression.
func (w *Writer) writeExpression(expr shady.Expr) (string, error) {
	switch e := expr.(type) {
	case *shady.Literal:
		return w.writeLiteral(e)

	case *shady.Ident:
		return escapeKeyword(e.Name), nil

	case *shady.BinaryExpr:
		return w.writeBinary(e)

	case *shady.UnaryExpr:
		op, err := unaryOperatorSymbol(e.Op)
		if err != nil {
			return "", err
		}
		operand, err := w.writeOperand(e.Operand, unaryPrecedence, false)
		if err != nil {
			return "", err
		}
		return op + operand, nil

	default:
		return "", fmt.Errorf("unsupported expression %T", expr)
	}
}

// writeLiteral returns the GLSL text of a literal.
func (w *Writer) writeLiteral(lit *shady.Literal) (string, error) {
	switch lit.Kind {
	case shady.LiteralInteger:
		return strconv.FormatInt(lit.Int, 10), nil
	case shady.LiteralFloat:
		return formatFloat(lit.Float), nil
	case shady.LiteralBoolean:
		if lit.Bool {
			return "true", nil
		}
		return "false", nil
	default:
		return "", fmt.Errorf("unsupported literal kind %d", lit.Kind)
	}
}

// writeBinary writes `left op right`, parenthesizing an operand only where
// GLSL would otherwise group the operators differently from the tree.
func (w *Writer) writeBinary(e *shady.BinaryExpr) (string, error) {
	op, err := binaryOperatorSymbol(e.Op)
	if err != nil {
		return "", err
	}
	prec := binaryPrecedence(e.Op)

	left, err := w.writeOperand(e.Left, prec, false)
	if err != nil {
		return "", err
	}
	right, err := w.writeOperand(e.Right, prec, true)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s %s %s", left, op, right), nil
}

// writeOperand writes an operand of an operator with precedence parent.
// GLSL binary operators are left-associative, so a right operand of equal
// precedence also needs parentheses.
func (w *Writer) writeOperand(expr shady.Expr, parent int, right bool) (string, error) {
	s, err := w.writeExpression(expr)
	if err != nil {
		return "", err
	}

	bin, ok := expr.(*shady.BinaryExpr)
	if !ok {
		return s, nil
	}

	prec := binaryPrecedence(bin.Op)
	if prec < parent || (right && prec == parent) {
		return "(" + s + ")", nil
	}
	return s, nil
}

// binaryOperatorSymbol returns the GLSL symbol for a binary operator.
func binaryOperatorSymbol(op shady.BinaryOperator) (string, error) {
	switch op {
	case shady.BinaryAdd:
		return "+", nil
	case shady.BinarySubtract:
		return "-", nil
	case shady.BinaryMultiply:
		return "*", nil
	case shady.BinaryDivide:
		return "/", nil
	case shady.BinaryModulo:
		return "%", nil
	case shady.BinaryPower:
		return "^", nil
	case shady.BinaryEqual:
		return "==", nil
	case shady.BinaryLessThan:
		return "<", nil
	case shady.BinaryGreaterThan:
		return ">", nil
	case shady.BinaryAnd:
		return "&&", nil
	case shady.BinaryOr:
		return "||", nil
	default:
		return "", fmt.Errorf("unsupported binary operator %d", op)
	}
}

// unaryOperatorSymbol returns the GLSL symbol for a unary operator.
func unaryOperatorSymbol(op shady.UnaryOperator) (string, error) {
	switch op {
	case shady.UnaryNot:
		return "!", nil
	default:
		return "", fmt.Errorf("unsupported unary operator %d", op)
	}
}

// unaryPrecedence is above every binary operator.
const unaryPrecedence = 15

// binaryPrecedence returns the GLSL precedence of the symbol an operator is
// written as. Higher binds tighter.
func binaryPrecedence(op shady.BinaryOperator) int {
	switch op {
	case shady.BinaryMultiply, shady.BinaryDivide, shady.BinaryModulo:
		return 13
	case shady.BinaryAdd, shady.BinarySubtract:
		return 12
	case shady.BinaryLessThan, shady.BinaryGreaterThan:
		return 10
	case shady.BinaryEqual:
		return 9
	case shady.BinaryPower: // bitwise exclusive or
		return 7
	case shady.BinaryAnd:
		return 5
	case shady.BinaryOr:
		return 3
	default:
		return 0
	}
}
