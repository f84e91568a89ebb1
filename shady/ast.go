// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shady

// ModuleKind selects the engine pipeline a module is written for.
type ModuleKind uint8

const (
	ModuleStandard ModuleKind = iota
	ModuleCanvas
	ModuleSprite
	ModuleModel
)

var moduleKindNames = map[string]ModuleKind{
	"standard": ModuleStandard,
	"canvas":   ModuleCanvas,
	"sprite":   ModuleSprite,
	"model":    ModuleModel,
}

func (k ModuleKind) String() string {
	switch k {
	case ModuleStandard:
		return "standard"
	case ModuleCanvas:
		return "canvas"
	case ModuleSprite:
		return "sprite"
	case ModuleModel:
		return "model"
	default:
		return "unknown"
	}
}

// Module is the root of a parsed Shady file.
type Module struct {
	Kind    ModuleKind
	Kernels []*Kernel
}

// KernelKind is the pipeline stage a kernel runs in.
type KernelKind uint8

const (
	KernelVertex KernelKind = iota
	KernelFragment
)

func (k KernelKind) String() string {
	switch k {
	case KernelVertex:
		return "vertex"
	case KernelFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Kernel is a parameterless `fn vertex()` or `fn fragment()` declaration.
type Kernel struct {
	Kind       KernelKind
	Name       string
	Statements []Stmt
}

// PrimitiveKind is the scalar family of a parameter type.
type PrimitiveKind uint8

const (
	PrimitiveInteger PrimitiveKind = iota
	PrimitiveFloat
	PrimitiveBoolean
	PrimitiveVector
	PrimitiveMatrix
	PrimitiveSampler
)

// Primitive is a parameter type. Cardinality distinguishes vec2/vec3/vec4,
// mat2/mat3/mat4 and sampler1D/2D/3D; scalars have cardinality 1.
type Primitive struct {
	Kind        PrimitiveKind
	Cardinality uint8
}

// primitives maps type keywords to primitives.
var primitives = map[string]Primitive{
	"int":       {PrimitiveInteger, 1},
	"float":     {PrimitiveFloat, 1},
	"bool":      {PrimitiveBoolean, 1},
	"vec2":      {PrimitiveVector, 2},
	"vec3":      {PrimitiveVector, 3},
	"vec4":      {PrimitiveVector, 4},
	"mat2":      {PrimitiveMatrix, 2},
	"mat3":      {PrimitiveMatrix, 3},
	"mat4":      {PrimitiveMatrix, 4},
	"sampler1D": {PrimitiveSampler, 1},
	"sampler2D": {PrimitiveSampler, 2},
	"sampler3D": {PrimitiveSampler, 3},
}

// Parameter is a typed parameter of a helper function.
type Parameter struct {
	Name      string
	Primitive Primitive
}

// Stmt is the interface for statements.
type Stmt interface {
	stmtNode()
}

// Expr is the interface for expressions.
type Expr interface {
	exprNode()
}

// AssignStmt represents `let name = value;`.
type AssignStmt struct {
	Name  string
	Value Expr
}

func (*AssignStmt) stmtNode() {}

// ReturnStmt represents `return value;`.
type ReturnStmt struct {
	Value Expr
}

func (*ReturnStmt) stmtNode() {}

// FunctionStmt represents a named function declaration.
type FunctionStmt struct {
	Name   string
	Params []Parameter
	Body   []Stmt
}

func (*FunctionStmt) stmtNode() {}

// IfStmt represents `if condition { ... } else { ... }`. Else is nil when
// there is no else branch.
type IfStmt struct {
	Condition Expr
	Then      []Stmt
	Else      []Stmt
}

func (*IfStmt) stmtNode() {}

// WhileStmt represents `while condition { ... }`.
type WhileStmt struct {
	Condition Expr
	Body      []Stmt
}

func (*WhileStmt) stmtNode() {}

// LiteralKind is the type of a literal value.
type LiteralKind uint8

const (
	LiteralInteger LiteralKind = iota
	LiteralFloat
	LiteralBoolean
)

// Literal represents a literal value.
type Literal struct {
	Kind  LiteralKind
	Int   int64
	Float float64
	Bool  bool
}

func (*Literal) exprNode() {}

// IntLit returns an integer literal.
func IntLit(v int64) *Literal { return &Literal{Kind: LiteralInteger, Int: v} }

// FloatLit returns a float literal.
func FloatLit(v float64) *Literal { return &Literal{Kind: LiteralFloat, Float: v} }

// BoolLit returns a boolean literal.
func BoolLit(v bool) *Literal { return &Literal{Kind: LiteralBoolean, Bool: v} }

// Ident represents an identifier.
type Ident struct {
	Name string
}

func (*Ident) exprNode() {}

// BinaryExpr represents a binary expression.
type BinaryExpr struct {
	Left  Expr
	Op    BinaryOperator
	Right Expr
}

func (*BinaryExpr) exprNode() {}

// UnaryExpr represents a unary expression.
type UnaryExpr struct {
	Op      UnaryOperator
	Operand Expr
}

func (*UnaryExpr) exprNode() {}

// UnaryOperator is a prefix operator.
type UnaryOperator uint8

const (
	UnaryNot UnaryOperator = iota
)

func (op UnaryOperator) String() string {
	switch op {
	case UnaryNot:
		return "Not"
	default:
		return "Unknown"
	}
}

// BinaryOperator is an infix operator.
type BinaryOperator uint8

const (
	BinaryAdd BinaryOperator = iota
	BinarySubtract
	BinaryMultiply
	BinaryDivide
	BinaryModulo
	BinaryPower
	BinaryEqual
	BinaryLessThan
	BinaryGreaterThan
	BinaryAnd
	BinaryOr
)

func (op BinaryOperator) String() string {
	switch op {
	case BinaryAdd:
		return "Add"
	case BinarySubtract:
		return "Subtract"
	case BinaryMultiply:
		return "Multiply"
	case BinaryDivide:
		return "Divide"
	case BinaryModulo:
		return "Modulo"
	case BinaryPower:
		return "Power"
	case BinaryEqual:
		return "Equal"
	case BinaryLessThan:
		return "LessThan"
	case BinaryGreaterThan:
		return "GreaterThan"
	case BinaryAnd:
		return "And"
	case BinaryOr:
		return "Or"
	default:
		return "Unknown"
	}
}

// Precedence returns the binding strength of op when the parser runs with
// WithPrecedence. Higher binds tighter.
func (op BinaryOperator) Precedence() int {
	switch op {
	case BinaryPower:
		return 7
	case BinaryMultiply, BinaryDivide, BinaryModulo:
		return 6
	case BinaryAdd, BinarySubtract:
		return 5
	case BinaryLessThan, BinaryGreaterThan:
		return 4
	case BinaryEqual:
		return 3
	case BinaryAnd:
		return 2
	case BinaryOr:
		return 1
	default:
		return 0
	}
}
