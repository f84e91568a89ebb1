// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shady

// Parser parses Shady tokens into an AST.
//
// The parser is a recursive descent over a FIFO token queue with one token
// of lookahead. Tokens are never revisited once taken.
type Parser struct {
	tokens  []Token
	current int

	// last is the most recently taken token, used to place end-of-input errors.
	last Token

	precedence bool
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithPrecedence makes binary expressions bind by BinaryOperator.Precedence
// instead of strictly left to right.
func WithPrecedence() ParserOption {
	return func(p *Parser) {
		p.precedence = true
	}
}

// NewParser creates a new parser for the given tokens.
func NewParser(tokens []Token, opts ...ParserOption) *Parser {
	p := &Parser{tokens: tokens}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse tokenizes and parses a complete Shady module.
func Parse(source string, opts ...ParserOption) (*Module, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, withSource(err, source)
	}
	module, err := NewParser(tokens, opts...).ParseModule()
	if err != nil {
		return nil, withSource(err, source)
	}
	return module, nil
}

// Peek returns the next token without consuming it.
func (p *Parser) Peek() (Token, bool) {
	if p.current >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.current], true
}

// Matches reports whether the next token exists and satisfies pred.
func (p *Parser) Matches(pred func(Token) bool) bool {
	tok, ok := p.Peek()
	return ok && pred(tok)
}

// Take consumes and returns the next token.
func (p *Parser) Take() (Token, bool) {
	tok, ok := p.Peek()
	if !ok {
		return Token{}, false
	}
	p.current++
	p.last = tok
	return tok, true
}

// TakeIf consumes the next token only if it satisfies pred.
func (p *Parser) TakeIf(pred func(Token) bool) (Token, bool) {
	if !p.Matches(pred) {
		return Token{}, false
	}
	return p.Take()
}

// TakeExpect consumes the next token and requires it to equal want.
func (p *Parser) TakeExpect(want Token) (Token, error) {
	tok, ok := p.TakeIf(want.Is)
	if !ok {
		return Token{}, p.unexpectedNext()
	}
	return tok, nil
}

// ParseModule parses an optional `#shader_type` directive followed by
// kernels until the end of input.
func (p *Parser) ParseModule() (*Module, error) {
	module := &Module{Kind: ModuleStandard}

	if p.Matches(isKeyword("#shader_type")) {
		p.Take()
		tok, ok := p.Take()
		if !ok || tok.Kind != TokenIdentifier {
			return nil, p.unexpectedToken(tok, ok)
		}
		kind, known := moduleKindNames[tok.Text]
		if !known {
			return nil, newErrorf(ErrorUnexpectedToken, tok.Pos, "unknown shader type %q", tok.Text)
		}
		module.Kind = kind
	}

	for p.Matches(isKind(TokenKeyword)) {
		kernel, err := p.ParseKernel()
		if err != nil {
			return nil, err
		}
		module.Kernels = append(module.Kernels, kernel)
	}

	if tok, ok := p.Peek(); ok {
		return nil, p.unexpectedToken(tok, true)
	}

	return module, nil
}

// ParseKernel parses a `fn vertex()` or `fn fragment()` kernel.
func (p *Parser) ParseKernel() (*Kernel, error) {
	if !p.Matches(isKeyword("fn")) {
		return nil, p.unexpectedNext()
	}
	return p.parseFunctionKernel()
}

func (p *Parser) parseFunctionKernel() (*Kernel, error) {
	start, _ := p.Peek()

	stmt, err := p.ParseStatement()
	if err != nil {
		return nil, err
	}
	fn, ok := stmt.(*FunctionStmt)
	if !ok {
		return nil, p.unexpectedToken(start, true)
	}

	if len(fn.Params) != 0 {
		return nil, newErrorf(ErrorInvalidKernel, start.Pos, "function kernels cannot have parameters: %s", fn.Name)
	}

	var kind KernelKind
	switch fn.Name {
	case "vertex":
		kind = KernelVertex
	case "fragment":
		kind = KernelFragment
	default:
		return nil, newErrorf(ErrorInvalidKernel, start.Pos, "invalid kernel name: %s", fn.Name)
	}

	return &Kernel{Kind: kind, Name: fn.Name, Statements: fn.Body}, nil
}

// ParseStatement parses one statement, dispatching on its leading keyword.
func (p *Parser) ParseStatement() (Stmt, error) {
	tok, ok := p.TakeIf(isKind(TokenKeyword))
	if !ok {
		return nil, p.unexpectedNext()
	}

	switch tok.Text {
	case "let":
		return p.letStatement()
	case "return":
		return p.returnStatement()
	case "if":
		return p.ifStatement()
	case "while":
		return p.whileStatement()
	case "fn":
		return p.functionStatement()
	default:
		return nil, p.unexpectedToken(tok, true)
	}
}

// letStatement parses `identifier = expression ;`.
func (p *Parser) letStatement() (Stmt, error) {
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.TakeExpect(BinaryToken(BinaryEqual)); err != nil {
		return nil, err
	}
	value, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.TakeExpect(SymbolToken(TokenSemicolon)); err != nil {
		return nil, err
	}
	return &AssignStmt{Name: name, Value: value}, nil
}

// returnStatement parses `expression ;`.
func (p *Parser) returnStatement() (Stmt, error) {
	value, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.TakeExpect(SymbolToken(TokenSemicolon)); err != nil {
		return nil, err
	}
	return &ReturnStmt{Value: value}, nil
}

// ifStatement parses `expression block [else (block | if ...)]`.
func (p *Parser) ifStatement() (Stmt, error) {
	condition, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	then, err := p.block()
	if err != nil {
		return nil, err
	}

	stmt := &IfStmt{Condition: condition, Then: then}
	if _, ok := p.TakeIf(isKeyword("else")); !ok {
		return stmt, nil
	}

	if p.Matches(isKeyword("if")) {
		p.Take()
		nested, err := p.ifStatement()
		if err != nil {
			return nil, err
		}
		stmt.Else = []Stmt{nested}
		return stmt, nil
	}

	stmt.Else, err = p.block()
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

// whileStatement parses `expression block`.
func (p *Parser) whileStatement() (Stmt, error) {
	condition, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Condition: condition, Body: body}, nil
}

// functionStatement parses `name ( parameters ) block`.
func (p *Parser) functionStatement() (Stmt, error) {
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}

	if _, err := p.TakeExpect(SymbolToken(TokenLeftParenthesis)); err != nil {
		return nil, err
	}

	var params []Parameter
	for !p.Matches(isKind(TokenRightParenthesis)) {
		param, err := p.ParseParameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)

		if _, ok := p.TakeIf(isKind(TokenComma)); !ok {
			break
		}
	}

	if _, err := p.TakeExpect(SymbolToken(TokenRightParenthesis)); err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return &FunctionStmt{Name: name, Params: params, Body: body}, nil
}

// block parses `{ statement* }`.
func (p *Parser) block() ([]Stmt, error) {
	if _, err := p.TakeExpect(SymbolToken(TokenLeftBrace)); err != nil {
		return nil, err
	}

	var statements []Stmt
	for !p.Matches(isKind(TokenRightBrace)) {
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	if _, err := p.TakeExpect(SymbolToken(TokenRightBrace)); err != nil {
		return nil, err
	}
	return statements, nil
}

// ParseParameter parses `primitive identifier`.
func (p *Parser) ParseParameter() (Parameter, error) {
	tok, ok := p.Take()
	if !ok || tok.Kind != TokenKeyword {
		return Parameter{}, p.unexpectedToken(tok, ok)
	}
	primitive, known := primitives[tok.Text]
	if !known {
		return Parameter{}, p.unexpectedToken(tok, true)
	}

	name, err := p.identifier()
	if err != nil {
		return Parameter{}, err
	}
	return Parameter{Name: name, Primitive: primitive}, nil
}

// ParseExpression parses a binary expression.
func (p *Parser) ParseExpression() (Expr, error) {
	if p.precedence {
		return p.parsePrecedenceExpression(1)
	}
	return p.parseBinaryExpression()
}

// parseBinaryExpression chains unary expressions with binary operators,
// strictly left to right.
func (p *Parser) parseBinaryExpression() (Expr, error) {
	left, err := p.parseUnaryExpression()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := p.TakeIf(isKind(TokenBinaryOperator))
		if !ok {
			return left, nil
		}
		right, err := p.parseUnaryExpression()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Op: op.Binary, Right: right}
	}
}

// parsePrecedenceExpression is precedence climbing over BinaryOperator.
// Power is right-associative; every other operator is left-associative.
func (p *Parser) parsePrecedenceExpression(minPrec int) (Expr, error) {
	left, err := p.parseUnaryExpression()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := p.TakeIf(func(tok Token) bool {
			return tok.Kind == TokenBinaryOperator && tok.Binary.Precedence() >= minPrec
		})
		if !ok {
			return left, nil
		}

		next := op.Binary.Precedence() + 1
		if op.Binary == BinaryPower {
			next = op.Binary.Precedence()
		}

		right, err := p.parsePrecedenceExpression(next)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Op: op.Binary, Right: right}
	}
}

func (p *Parser) parseUnaryExpression() (Expr, error) {
	if op, ok := p.TakeIf(isKind(TokenUnaryOperator)); ok {
		operand, err := p.parseUnaryExpression()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: op.Unary, Operand: operand}, nil
	}
	return p.parsePrimaryExpression()
}

func (p *Parser) parsePrimaryExpression() (Expr, error) {
	tok, ok := p.Take()
	if !ok {
		return nil, p.unexpectedToken(tok, false)
	}

	switch tok.Kind {
	case TokenInteger:
		return IntLit(tok.Int), nil
	case TokenFloat:
		return FloatLit(tok.Float), nil
	case TokenBoolean:
		return BoolLit(tok.Bool), nil
	case TokenIdentifier:
		return &Ident{Name: tok.Text}, nil
	default:
		return nil, p.unexpectedToken(tok, true)
	}
}

func (p *Parser) identifier() (string, error) {
	tok, ok := p.Take()
	if !ok || tok.Kind != TokenIdentifier {
		return "", p.unexpectedToken(tok, ok)
	}
	return tok.Text, nil
}

// unexpectedNext reports the next token, or end of input, as unexpected.
func (p *Parser) unexpectedNext() *Error {
	tok, ok := p.Peek()
	return p.unexpectedToken(tok, ok)
}

func (p *Parser) unexpectedToken(tok Token, ok bool) *Error {
	if !ok {
		return newErrorf(ErrorUnexpectedToken, p.last.Pos, "unexpected end of input")
	}
	return newErrorf(ErrorUnexpectedToken, tok.Pos, "unexpected token encountered: %s", tok)
}

func isKind(kind TokenKind) func(Token) bool {
	return func(tok Token) bool {
		return tok.Kind == kind
	}
}

func isKeyword(text string) func(Token) bool {
	return func(tok Token) bool {
		return tok.IsKeyword(text)
	}
}
