// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shady

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseCanvasModule(t *testing.T) {
	source := `
#shader_type canvas

fn fragment() {
	return 1 + 2;
}
`
	module, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expected := &Module{
		Kind: ModuleCanvas,
		Kernels: []*Kernel{
			{
				Kind: KernelFragment,
				Name: "fragment",
				Statements: []Stmt{
					&ReturnStmt{Value: &BinaryExpr{Left: IntLit(1), Op: BinaryAdd, Right: IntLit(2)}},
				},
			},
		},
	}

	if !reflect.DeepEqual(module, expected) {
		t.Errorf("Parse() = %+v, want %+v", module, expected)
	}
}

func TestParseKernelOrder(t *testing.T) {
	source := `
fn vertex() {
	let position = 1;
}

fn fragment() {
	let color = 2;
}
`
	module, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if module.Kind != ModuleStandard {
		t.Errorf("Kind = %v, want %v", module.Kind, ModuleStandard)
	}
	if len(module.Kernels) != 2 {
		t.Fatalf("Expected 2 kernels, got %d", len(module.Kernels))
	}
	if module.Kernels[0].Kind != KernelVertex {
		t.Errorf("Kernels[0].Kind = %v, want vertex", module.Kernels[0].Kind)
	}
	if module.Kernels[1].Kind != KernelFragment {
		t.Errorf("Kernels[1].Kind = %v, want fragment", module.Kernels[1].Kind)
	}
}

func TestParseModuleKinds(t *testing.T) {
	tests := []struct {
		directive string
		expected  ModuleKind
	}{
		{"", ModuleStandard},
		{"#shader_type standard", ModuleStandard},
		{"#shader_type canvas", ModuleCanvas},
		{"#shader_type sprite", ModuleSprite},
		{"#shader_type model", ModuleModel},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			module, err := Parse(tt.directive + "\nfn vertex() {}")
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if module.Kind != tt.expected {
				t.Errorf("Kind = %v, want %v", module.Kind, tt.expected)
			}
		})
	}
}

func TestParseEmptyModule(t *testing.T) {
	module, err := Parse("#shader_type sprite")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(module.Kernels) != 0 {
		t.Errorf("Expected no kernels, got %d", len(module.Kernels))
	}
}

func TestParseInvalidKernel(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"parameters", "fn vertex(float x) {}"},
		{"several parameters", "fn fragment(vec2 uv, sampler2D tex) {}"},
		{"unknown name", "fn compute() {}"},
		{"second kernel", "fn vertex() {} fn main() {}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.source)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidKernel) {
				t.Errorf("errors.Is(err, ErrInvalidKernel) = false for %v", err)
			}
		})
	}
}

func TestParseUnexpectedToken(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		message string
	}{
		{"trailing operator", "fn fragment() { return 1 +", "unexpected end of input"},
		{"trailing operator before semicolon", "fn fragment() { return 1 + ; }", "unexpected token"},
		{"missing semicolon", "fn fragment() { let x = 1 }", "unexpected token"},
		{"unclosed body", "fn fragment() { let x = 1;", "unexpected end of input"},
		{"unknown shader type", "#shader_type particles", `unknown shader type "particles"`},
		{"missing shader type", "#shader_type", "unexpected end of input"},
		{"kernel without fn", "let x = 1;", "unexpected token"},
		{"for statement", "fn vertex() { for }", "unexpected token"},
		{"trailing tokens", "fn vertex() {} }", "unexpected token"},
		{"literal as name", "fn vertex() { let 1 = 2; }", "unexpected token"},
		{"bad parameter type", "fn vertex() { fn helper(x y) {} }", "unexpected token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.source)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !errors.Is(err, ErrUnexpectedToken) {
				t.Errorf("errors.Is(err, ErrUnexpectedToken) = false for %v", err)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("Error() = %q, want it to contain %q", err.Error(), tt.message)
			}
		})
	}
}

func TestParseStatements(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected Stmt
	}{
		{
			name:     "let",
			source:   "let x = 1 + 2;",
			expected: &AssignStmt{Name: "x", Value: &BinaryExpr{Left: IntLit(1), Op: BinaryAdd, Right: IntLit(2)}},
		},
		{
			name:     "return",
			source:   "return !visible;",
			expected: &ReturnStmt{Value: &UnaryExpr{Op: UnaryNot, Operand: &Ident{Name: "visible"}}},
		},
		{
			name:   "function",
			source: "fn scale(float factor, vec3 v) { return v * factor; }",
			expected: &FunctionStmt{
				Name: "scale",
				Params: []Parameter{
					{Name: "factor", Primitive: Primitive{Kind: PrimitiveFloat, Cardinality: 1}},
					{Name: "v", Primitive: Primitive{Kind: PrimitiveVector, Cardinality: 3}},
				},
				Body: []Stmt{
					&ReturnStmt{Value: &BinaryExpr{Left: &Ident{Name: "v"}, Op: BinaryMultiply, Right: &Ident{Name: "factor"}}},
				},
			},
		},
		{
			name:     "empty function",
			source:   "fn noop() {}",
			expected: &FunctionStmt{Name: "noop"},
		},
		{
			name:   "if",
			source: "if a < b { let c = a; }",
			expected: &IfStmt{
				Condition: &BinaryExpr{Left: &Ident{Name: "a"}, Op: BinaryLessThan, Right: &Ident{Name: "b"}},
				Then:      []Stmt{&AssignStmt{Name: "c", Value: &Ident{Name: "a"}}},
			},
		},
		{
			name:   "if else",
			source: "if done { return 1; } else { return 0; }",
			expected: &IfStmt{
				Condition: &Ident{Name: "done"},
				Then:      []Stmt{&ReturnStmt{Value: IntLit(1)}},
				Else:      []Stmt{&ReturnStmt{Value: IntLit(0)}},
			},
		},
		{
			name:   "else if",
			source: "if a { return 1; } else if b { return 2; }",
			expected: &IfStmt{
				Condition: &Ident{Name: "a"},
				Then:      []Stmt{&ReturnStmt{Value: IntLit(1)}},
				Else: []Stmt{&IfStmt{
					Condition: &Ident{Name: "b"},
					Then:      []Stmt{&ReturnStmt{Value: IntLit(2)}},
				}},
			},
		},
		{
			name:   "while",
			source: "while i < 4 { let i = i + 1; }",
			expected: &WhileStmt{
				Condition: &BinaryExpr{Left: &Ident{Name: "i"}, Op: BinaryLessThan, Right: IntLit(4)},
				Body: []Stmt{&AssignStmt{Name: "i", Value: &BinaryExpr{
					Left: &Ident{Name: "i"}, Op: BinaryAdd, Right: IntLit(1),
				}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.source)
			if err != nil {
				t.Fatalf("Tokenize failed: %v", err)
			}
			stmt, err := NewParser(tokens).ParseStatement()
			if err != nil {
				t.Fatalf("ParseStatement failed: %v", err)
			}
			if !reflect.DeepEqual(stmt, tt.expected) {
				t.Errorf("ParseStatement() = %#v, want %#v", stmt, tt.expected)
			}
		})
	}
}

func TestParseParameter(t *testing.T) {
	tests := []struct {
		source   string
		expected Parameter
	}{
		{"int n", Parameter{"n", Primitive{PrimitiveInteger, 1}}},
		{"bool on", Parameter{"on", Primitive{PrimitiveBoolean, 1}}},
		{"vec4 color", Parameter{"color", Primitive{PrimitiveVector, 4}}},
		{"mat3 normal", Parameter{"normal", Primitive{PrimitiveMatrix, 3}}},
		{"sampler1D ramp", Parameter{"ramp", Primitive{PrimitiveSampler, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens, err := Tokenize(tt.source)
			if err != nil {
				t.Fatalf("Tokenize failed: %v", err)
			}
			param, err := NewParser(tokens).ParseParameter()
			if err != nil {
				t.Fatalf("ParseParameter failed: %v", err)
			}
			if param != tt.expected {
				t.Errorf("ParseParameter() = %+v, want %+v", param, tt.expected)
			}
		})
	}
}

func TestParseExpressionAssociativity(t *testing.T) {
	a, b, c := &Ident{Name: "a"}, &Ident{Name: "b"}, &Ident{Name: "c"}

	tests := []struct {
		name       string
		source     string
		precedence bool
		expected   Expr
	}{
		{
			name:     "flat left to right",
			source:   "a + b * c",
			expected: &BinaryExpr{Left: &BinaryExpr{Left: a, Op: BinaryAdd, Right: b}, Op: BinaryMultiply, Right: c},
		},
		{
			name:       "multiplication binds tighter",
			source:     "a + b * c",
			precedence: true,
			expected:   &BinaryExpr{Left: a, Op: BinaryAdd, Right: &BinaryExpr{Left: b, Op: BinaryMultiply, Right: c}},
		},
		{
			name:       "subtraction is left associative",
			source:     "a - b - c",
			precedence: true,
			expected:   &BinaryExpr{Left: &BinaryExpr{Left: a, Op: BinarySubtract, Right: b}, Op: BinarySubtract, Right: c},
		},
		{
			name:       "power is right associative",
			source:     "a ^ b ^ c",
			precedence: true,
			expected:   &BinaryExpr{Left: a, Op: BinaryPower, Right: &BinaryExpr{Left: b, Op: BinaryPower, Right: c}},
		},
		{
			name:       "comparison below arithmetic",
			source:     "a < b + c",
			precedence: true,
			expected:   &BinaryExpr{Left: a, Op: BinaryLessThan, Right: &BinaryExpr{Left: b, Op: BinaryAdd, Right: c}},
		},
		{
			name:       "or below and",
			source:     "a | b & c",
			precedence: true,
			expected:   &BinaryExpr{Left: a, Op: BinaryOr, Right: &BinaryExpr{Left: b, Op: BinaryAnd, Right: c}},
		},
		{
			name:       "unary binds to operand",
			source:     "!a & b",
			precedence: true,
			expected:   &BinaryExpr{Left: &UnaryExpr{Op: UnaryNot, Operand: a}, Op: BinaryAnd, Right: b},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.source)
			if err != nil {
				t.Fatalf("Tokenize failed: %v", err)
			}
			var opts []ParserOption
			if tt.precedence {
				opts = append(opts, WithPrecedence())
			}
			expr, err := NewParser(tokens, opts...).ParseExpression()
			if err != nil {
				t.Fatalf("ParseExpression failed: %v", err)
			}
			if !reflect.DeepEqual(expr, tt.expected) {
				t.Errorf("ParseExpression() = %#v, want %#v", expr, tt.expected)
			}
		})
	}
}

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		source   string
		expected Expr
	}{
		{"42", IntLit(42)},
		{"0.5", FloatLit(0.5)},
		{"true", BoolLit(true)},
		{"false", BoolLit(false)},
		{"uv", &Ident{Name: "uv"}},
		{"!!on", &UnaryExpr{Op: UnaryNot, Operand: &UnaryExpr{Op: UnaryNot, Operand: &Ident{Name: "on"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens, err := Tokenize(tt.source)
			if err != nil {
				t.Fatalf("Tokenize failed: %v", err)
			}
			expr, err := NewParser(tokens).ParseExpression()
			if err != nil {
				t.Fatalf("ParseExpression failed: %v", err)
			}
			if !reflect.DeepEqual(expr, tt.expected) {
				t.Errorf("ParseExpression() = %#v, want %#v", expr, tt.expected)
			}
		})
	}
}

func TestTokenStream(t *testing.T) {
	tokens, err := Tokenize("let x;")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	p := NewParser(tokens)

	if tok, ok := p.Peek(); !ok || !tok.Is(KeywordToken("let")) {
		t.Errorf("Peek() = %s, %v; want Keyword(\"let\"), true", tok, ok)
	}
	if !p.Matches(isKind(TokenKeyword)) {
		t.Error("Matches(keyword) = false, want true")
	}
	if _, ok := p.TakeIf(isKind(TokenIdentifier)); ok {
		t.Error("TakeIf(identifier) consumed a keyword")
	}
	if tok, ok := p.Take(); !ok || !tok.IsKeyword("let") {
		t.Errorf("Take() = %s, %v; want Keyword(\"let\"), true", tok, ok)
	}
	if _, err := p.TakeExpect(SymbolToken(TokenSemicolon)); !errors.Is(err, ErrUnexpectedToken) {
		t.Errorf("TakeExpect(;) error = %v, want ErrUnexpectedToken", err)
	}
	if _, err := p.TakeExpect(IdentToken("x")); err != nil {
		t.Errorf("TakeExpect(x) error = %v", err)
	}
	if _, err := p.TakeExpect(SymbolToken(TokenSemicolon)); err != nil {
		t.Errorf("TakeExpect(;) error = %v", err)
	}
	if _, ok := p.Take(); ok {
		t.Error("Take() at end of input returned a token")
	}
	if _, ok := p.Peek(); ok {
		t.Error("Peek() at end of input returned a token")
	}
}
