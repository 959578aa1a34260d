package parser

import (
	"strings"

	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/token"
)

func wrap(e ast.Expr) *ast.Expression {
	return &ast.Expression{Expr: e}
}

// withIn runs fn with the in operator allowed, as inside brackets.
func (p *parser) withIn(fn func()) {
	old := p.scope.allowIn
	p.scope.allowIn = true
	fn()
	p.scope.allowIn = old
}

func (p *parser) parseIdentifier() *ast.Identifier {
	id := &ast.Identifier{Name: p.token.Value}
	switch {
	case p.token.Kind == token.Identifier:
	case p.token.Kind == token.Await && !p.scope.allowAwait,
		p.token.Kind == token.Yield && !p.scope.allowYield:
	default:
		p.errorUnexpectedToken(p.token)
	}
	p.next()
	return id
}

// isBindingIdentifier reports whether the current token can name a binding.
func (p *parser) isBindingIdentifier() bool {
	switch p.token.Kind {
	case token.Identifier:
		return !strings.HasPrefix(p.token.Value, "#")
	case token.Await:
		return !p.scope.allowAwait
	case token.Yield:
		return !p.scope.allowYield
	}
	return false
}

// parseExpression parses a comma separated sequence of expressions.
func (p *parser) parseExpression() *ast.Expression {
	left := p.parseAssignmentExpression()
	if p.token.Kind != token.Comma {
		return left
	}
	seq := ast.Expressions{*left}
	for p.token.Kind == token.Comma && !p.failed() {
		p.next()
		seq = append(seq, *p.parseAssignmentExpression())
	}
	return wrap(&ast.SequenceExpression{Sequence: seq})
}

func (p *parser) parseAssignmentExpression() *ast.Expression {
	if p.token.Kind == token.Yield && p.scope.allowYield {
		return p.parseYieldExpression()
	}
	if arrow := p.tryParseArrowFunction(); arrow != nil {
		return arrow
	}

	start := p.token
	left := p.parseConditionalExpression()
	if !p.token.Kind.IsAssign() {
		return left
	}
	op := p.token.Kind
	if !p.assignable(left.Expr, op == token.Assign) {
		p.errorAt(start.Offset, "Invalid left-hand side in assignment")
	}
	if op == token.Assign && isPattern(left.Expr) {
		p.coverInit = -1
	}
	p.next()
	right := p.parseAssignmentExpression()
	return wrap(&ast.AssignExpression{Operator: op, Left: left, Right: right})
}

func isPattern(e ast.Expr) bool {
	switch e.(type) {
	case *ast.ObjectLiteral, *ast.ArrayLiteral:
		return true
	}
	return false
}

func (p *parser) assignable(e ast.Expr, pattern bool) bool {
	switch e := e.(type) {
	case *ast.Identifier:
		return !strings.HasPrefix(e.Name, "#")
	case *ast.MemberExpression:
		return !e.Optional
	case *ast.ObjectLiteral, *ast.ArrayLiteral:
		return pattern
	}
	return false
}

func (p *parser) parseYieldExpression() *ast.Expression {
	p.expect(token.Yield)
	n := &ast.YieldExpression{}
	if p.token.OnNewLine {
		return wrap(n)
	}
	if p.token.Kind == token.Multiply {
		n.Delegate = true
		p.next()
	}
	switch p.token.Kind {
	case token.RightParenthesis, token.RightBracket, token.RightBrace, token.Comma,
		token.Semicolon, token.Colon, token.Eof, token.In:
		if n.Delegate {
			p.errorUnexpectedToken(p.token)
		}
		return wrap(n)
	}
	n.Argument = p.parseAssignmentExpression()
	return wrap(n)
}

// tryParseArrowFunction parses an arrow function at the current token, or
// rewinds and returns nil if there is none.
func (p *parser) tryParseArrowFunction() *ast.Expression {
	async := false
	switch {
	case p.isBindingIdentifier():
		next := p.peek()
		if p.is("async") && next.Kind == token.LeftParenthesis && !next.OnNewLine {
			async = true
			break
		}
		if p.is("async") && next.Kind == token.Identifier && !next.OnNewLine {
			m := p.mark()
			p.next()
			param := p.parseIdentifier()
			if p.token.Kind == token.Arrow && !p.token.OnNewLine {
				return p.parseArrowBody(singleParam(param), true)
			}
			p.restore(m)
			return nil
		}
		if next.Kind != token.Arrow || next.OnNewLine {
			return nil
		}
		param := p.parseIdentifier()
		return p.parseArrowBody(singleParam(param), false)
	case p.token.Kind == token.LeftParenthesis:
	default:
		return nil
	}

	m := p.mark()
	if async {
		p.next()
	}
	params := p.parseParameterList()
	if len(p.errors) > m.errors || p.token.Kind != token.Arrow || p.token.OnNewLine {
		p.restore(m)
		return nil
	}
	return p.parseArrowBody(params, async)
}

func singleParam(id *ast.Identifier) *ast.ParameterList {
	return &ast.ParameterList{
		List: ast.VariableDeclarators{{Target: &ast.BindingTarget{Target: id}}},
	}
}

func (p *parser) parseArrowBody(params *ast.ParameterList, async bool) *ast.Expression {
	p.expect(token.Arrow)
	n := &ast.ArrowFunctionLiteral{ParameterList: params, Async: async}

	p.openFunctionScope(async, false)
	if p.token.Kind == token.LeftBrace {
		n.Body = &ast.ConciseBody{Body: p.parseFunctionBody()}
	} else {
		n.Body = &ast.ConciseBody{Body: p.parseAssignmentExpression()}
	}
	p.closeScope()
	return wrap(n)
}

func (p *parser) parseConditionalExpression() *ast.Expression {
	test := p.parseBinaryExpression(0)
	if p.token.Kind != token.QuestionMark {
		return test
	}
	p.next()
	var consequent *ast.Expression
	p.withIn(func() {
		consequent = p.parseAssignmentExpression()
	})
	p.expect(token.Colon)
	alternate := p.parseAssignmentExpression()
	return wrap(&ast.ConditionalExpression{
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
	})
}

// parseBinaryExpression parses operators binding tighter than minPrec.
func (p *parser) parseBinaryExpression(minPrec int) *ast.Expression {
	left := p.parseUnaryExpression()
	for !p.failed() {
		op := p.token.Kind
		prec := op.Precedence(p.scope.allowIn)
		if prec == 0 || prec <= minPrec {
			return left
		}
		p.next()
		var right *ast.Expression
		if op == token.Exponent {
			// Right associative.
			right = p.parseBinaryExpression(prec - 1)
		} else {
			right = p.parseBinaryExpression(prec)
		}
		left = wrap(&ast.BinaryExpression{Operator: op, Left: left, Right: right})
	}
	return left
}

func (p *parser) parseUnaryExpression() *ast.Expression {
	switch p.token.Kind {
	case token.Not, token.BitwiseNot, token.Plus, token.Minus, token.Typeof, token.Void, token.Delete:
		op := p.token.Kind
		p.next()
		operand := p.parseUnaryExpression()
		if p.token.Kind == token.Exponent {
			p.errorf("Unary operator used immediately before exponentiation expression")
		}
		return wrap(&ast.UnaryExpression{Operator: op, Operand: operand})
	case token.Increment, token.Decrement:
		op := p.token.Kind
		start := p.token
		p.next()
		operand := p.parseUnaryExpression()
		if !p.assignable(operand.Expr, false) {
			p.errorAt(start.Offset, "Invalid left-hand side expression in prefix operation")
		}
		return wrap(&ast.UpdateExpression{Operator: op, Operand: operand})
	case token.Await:
		if p.scope.allowAwait {
			p.next()
			return wrap(&ast.AwaitExpression{Argument: p.parseUnaryExpression()})
		}
	}

	start := p.token
	operand := p.parseLeftHandSideExpressionAllowCall()
	switch p.token.Kind {
	case token.Increment, token.Decrement:
		if p.token.OnNewLine {
			break
		}
		if !p.assignable(operand.Expr, false) {
			p.errorAt(start.Offset, "Invalid left-hand side expression in postfix operation")
		}
		op := p.token.Kind
		p.next()
		return wrap(&ast.UpdateExpression{Operator: op, Operand: operand, Postfix: true})
	}
	return operand
}

func (p *parser) parseLeftHandSideExpressionAllowCall() *ast.Expression {
	var left *ast.Expression
	if p.token.Kind == token.New {
		left = p.parseNewExpression()
	} else {
		left = p.parsePrimaryExpression()
	}

	for !p.failed() {
		switch p.token.Kind {
		case token.Period:
			p.next()
			left = wrap(&ast.MemberExpression{
				Object:   left,
				Property: &ast.MemberProperty{Prop: p.parsePropertyName()},
			})
		case token.QuestionDot:
			p.next()
			switch p.token.Kind {
			case token.LeftParenthesis:
				left = wrap(&ast.CallExpression{
					Callee:       left,
					ArgumentList: p.parseArguments(),
					Optional:     true,
				})
			case token.LeftBracket:
				left = wrap(&ast.MemberExpression{
					Object:   left,
					Property: &ast.MemberProperty{Prop: p.parseComputedProperty()},
					Optional: true,
				})
			case token.Template:
				p.errorf("Invalid tagged template on optional chain")
				return left
			default:
				left = wrap(&ast.MemberExpression{
					Object:   left,
					Property: &ast.MemberProperty{Prop: p.parsePropertyName()},
					Optional: true,
				})
			}
		case token.LeftBracket:
			left = wrap(&ast.MemberExpression{
				Object:   left,
				Property: &ast.MemberProperty{Prop: p.parseComputedProperty()},
			})
		case token.LeftParenthesis:
			left = wrap(&ast.CallExpression{Callee: left, ArgumentList: p.parseArguments()})
		case token.Template:
			left = p.parseTemplateLiteral(left)
		default:
			return left
		}
	}
	return left
}

// parsePropertyName parses the name after a dot, which may be any
// identifier name including reserved words and private names.
func (p *parser) parsePropertyName() *ast.Identifier {
	if !token.ID(p.token.Kind) {
		p.errorUnexpectedToken(p.token)
		p.next()
		return &ast.Identifier{}
	}
	id := &ast.Identifier{Name: p.token.Value}
	if strings.HasPrefix(id.Name, "#") && !p.scope.inClass {
		p.errorf("Private field '%s' must be declared in an enclosing class", id.Name)
	}
	p.next()
	return id
}

func (p *parser) parseComputedProperty() *ast.ComputedProperty {
	p.expect(token.LeftBracket)
	n := &ast.ComputedProperty{}
	p.withIn(func() {
		n.Expr = p.parseExpression()
	})
	p.expect(token.RightBracket)
	return n
}

func (p *parser) parseArguments() ast.Expressions {
	p.expect(token.LeftParenthesis)
	var list ast.Expressions
	p.withIn(func() {
		for p.token.Kind != token.RightParenthesis && p.token.Kind != token.Eof && !p.failed() {
			if p.token.Kind == token.Ellipsis {
				p.next()
				list = append(list, *wrap(&ast.SpreadElement{Expression: p.parseAssignmentExpression()}))
			} else {
				list = append(list, *p.parseAssignmentExpression())
			}
			if p.token.Kind != token.RightParenthesis {
				p.expect(token.Comma)
			}
		}
	})
	p.expect(token.RightParenthesis)
	return list
}

func (p *parser) parseNewExpression() *ast.Expression {
	p.expect(token.New)
	if p.token.Kind == token.Period {
		p.next()
		if p.token.Value != "target" || !p.scope.inFunction {
			p.errorUnexpectedToken(p.token)
		}
		p.next()
		return wrap(&ast.MemberExpression{
			Object:   wrap(&ast.Identifier{Name: "new"}),
			Property: &ast.MemberProperty{Prop: &ast.Identifier{Name: "target"}},
		})
	}

	var callee *ast.Expression
	if p.token.Kind == token.New {
		callee = p.parseNewExpression()
	} else {
		callee = p.parsePrimaryExpression()
	}
	for !p.failed() {
		switch p.token.Kind {
		case token.Period:
			p.next()
			callee = wrap(&ast.MemberExpression{
				Object:   callee,
				Property: &ast.MemberProperty{Prop: p.parsePropertyName()},
			})
			continue
		case token.LeftBracket:
			callee = wrap(&ast.MemberExpression{
				Object:   callee,
				Property: &ast.MemberProperty{Prop: p.parseComputedProperty()},
			})
			continue
		case token.Template:
			callee = p.parseTemplateLiteral(callee)
			continue
		case token.QuestionDot:
			p.errorf("Invalid optional chain from new expression")
		}
		break
	}

	n := &ast.NewExpression{Callee: callee}
	if p.token.Kind == token.LeftParenthesis {
		n.ArgumentList = p.parseArguments()
	}
	return wrap(n)
}

func (p *parser) parsePrimaryExpression() *ast.Expression {
	tok := p.token
	switch tok.Kind {
	case token.Identifier:
		if p.is("async") {
			if next := p.peek(); next.Kind == token.Function && !next.OnNewLine {
				p.next()
				return wrap(p.parseFunction(false, true))
			}
		}
		if strings.HasPrefix(tok.Value, "#") {
			// Only valid as the left operand of in.
			p.next()
			if p.token.Kind != token.In {
				p.errorAt(tok.Offset, errUnexpectedToken, tok.Literal)
			}
			return wrap(&ast.Identifier{Name: tok.Value})
		}
		return wrap(p.parseIdentifier())
	case token.Await, token.Yield:
		return wrap(p.parseIdentifier())
	case token.This:
		p.next()
		return wrap(&ast.ThisExpression{})
	case token.Super:
		p.next()
		if p.token.Kind != token.LeftParenthesis && p.token.Kind != token.Period && p.token.Kind != token.LeftBracket {
			p.errorf("'super' keyword unexpected here")
		}
		return wrap(&ast.SuperExpression{})
	case token.Null:
		p.next()
		return wrap(&ast.NullLiteral{})
	case token.Boolean:
		p.next()
		return wrap(&ast.BooleanLiteral{Value: tok.Value == "true"})
	case token.Number:
		p.next()
		raw := tok.Literal
		return wrap(&ast.NumberLiteral{Value: tok.Number, Raw: &raw})
	case token.String:
		p.next()
		raw := tok.Literal
		return wrap(&ast.StringLiteral{Value: tok.Value, Raw: &raw})
	case token.Template:
		return p.parseTemplateLiteral(nil)
	case token.Slash, token.QuotientAssign:
		return p.parseRegExpLiteral()
	case token.LeftBracket:
		return p.parseArrayLiteral()
	case token.LeftBrace:
		return p.parseObjectLiteral()
	case token.LeftParenthesis:
		p.next()
		var n *ast.Expression
		p.withIn(func() {
			n = p.parseExpression()
		})
		p.expect(token.RightParenthesis)
		return n
	case token.Function:
		return wrap(p.parseFunction(false, false))
	case token.Class:
		return wrap(p.parseClass(nil, false))
	case token.At:
		decorators := p.parseDecorators()
		if p.token.Kind != token.Class {
			p.errorUnexpectedToken(p.token)
		}
		return wrap(p.parseClass(decorators, false))
	case token.Import:
		// Dynamic import and import.meta are kept as opaque references.
		p.next()
		if p.token.Kind == token.Period {
			p.next()
			if p.token.Value != "meta" {
				p.errorUnexpectedToken(p.token)
			}
			p.next()
			return wrap(&ast.MemberExpression{
				Object:   wrap(&ast.Identifier{Name: "import"}),
				Property: &ast.MemberProperty{Prop: &ast.Identifier{Name: "meta"}},
			})
		}
		if p.token.Kind != token.LeftParenthesis {
			p.errorUnexpectedToken(p.token)
		}
		return wrap(&ast.Identifier{Name: "import"})
	}

	p.errorUnexpectedToken(tok)
	p.next()
	return wrap(&ast.Identifier{Name: tok.Literal})
}

func (p *parser) parseRegExpLiteral() *ast.Expression {
	offset := p.token.Offset
	pattern, flags := p.lex.scanRegExp(offset)
	for _, f := range flags {
		switch f {
		case 'd', 'g', 'i', 'm', 's', 'u', 'v', 'y':
		default:
			p.errorAt(offset, "Invalid regular expression flags")
		}
	}
	p.token.Literal = p.src[offset:p.lex.pos]
	p.next()
	return wrap(&ast.RegExpLiteral{Pattern: pattern, Flags: flags})
}

// parseTemplateLiteral parses a template starting at the current token.
// Each ${ is matched by a } after which the lexer resumes template text.
func (p *parser) parseTemplateLiteral(tag *ast.Expression) *ast.Expression {
	n := &ast.TemplateLiteral{Tag: tag}
	for !p.failed() {
		tok := p.token
		n.Elements = append(n.Elements, ast.TemplateElement{
			Literal: p.lex.templateRaw(tok),
			Cooked:  tok.Value,
		})
		if tok.Tail {
			p.next()
			break
		}
		p.next()
		p.withIn(func() {
			n.Expressions = append(n.Expressions, *p.parseExpression())
		})
		if p.token.Kind != token.RightBrace {
			p.errorUnexpectedToken(p.token)
			break
		}
		p.rescanTemplate()
	}
	return wrap(n)
}

// rescanTemplate continues template text after the closing brace of a
// substitution.
func (p *parser) rescanTemplate() {
	tok := Token{Offset: p.token.Offset, OnNewLine: p.token.OnNewLine}
	p.lex.pos = tok.Offset + 1
	p.lex.scanTemplate(&tok)
	tok.Literal = p.src[tok.Offset:p.lex.pos]
	p.token = tok
}

func (p *parser) parseArrayLiteral() *ast.Expression {
	p.expect(token.LeftBracket)
	n := &ast.ArrayLiteral{}
	p.withIn(func() {
		for p.token.Kind != token.RightBracket && p.token.Kind != token.Eof && !p.failed() {
			if p.token.Kind == token.Comma {
				p.next()
				n.Value = append(n.Value, ast.Expression{})
				continue
			}
			if p.token.Kind == token.Ellipsis {
				p.next()
				n.Value = append(n.Value, *wrap(&ast.SpreadElement{Expression: p.parseAssignmentExpression()}))
			} else {
				n.Value = append(n.Value, *p.parseAssignmentExpression())
			}
			if p.token.Kind != token.RightBracket {
				p.expect(token.Comma)
			}
		}
	})
	p.expect(token.RightBracket)
	return wrap(n)
}

func (p *parser) parseObjectLiteral() *ast.Expression {
	p.expect(token.LeftBrace)
	n := &ast.ObjectLiteral{}
	p.withIn(func() {
		for p.token.Kind != token.RightBrace && p.token.Kind != token.Eof && !p.failed() {
			n.Value = append(n.Value, ast.Property{Prop: p.parseObjectProperty()})
			if p.token.Kind != token.RightBrace {
				p.expect(token.Comma)
			}
		}
	})
	p.expect(token.RightBrace)
	return wrap(n)
}

// isModifier reports whether the current contextual word modifies the
// property after it rather than naming the property itself.
func (p *parser) isModifier(word string) bool {
	if !p.is(word) {
		return false
	}
	next := p.peek()
	switch next.Kind {
	case token.Comma, token.Colon, token.LeftParenthesis, token.RightBrace, token.Assign, token.Semicolon, token.Eof:
		return false
	}
	if word == "async" && next.OnNewLine {
		return false
	}
	return true
}

func (p *parser) parseObjectProperty() ast.Prop {
	if p.token.Kind == token.Ellipsis {
		p.next()
		return &ast.SpreadElement{Expression: p.parseAssignmentExpression()}
	}

	async, generator := false, false
	kind := ast.PropertyKindValue
	if p.isModifier("async") {
		async = true
		p.next()
	}
	if p.token.Kind == token.Multiply {
		generator = true
		p.next()
	}
	if !async && !generator && (p.isModifier("get") || p.isModifier("set")) {
		kind = ast.PropertyKind(p.token.Value)
		p.next()
	}

	keyTok := p.token
	key, computed := p.parsePropertyKey()
	if kind != ast.PropertyKindValue || async || generator || p.token.Kind == token.LeftParenthesis {
		if kind == ast.PropertyKindValue {
			kind = ast.PropertyKindMethod
		}
		fn := p.parseMethod(async, generator)
		p.checkAccessor(kind, fn, keyTok.Offset)
		return &ast.PropertyKeyed{Key: key, Kind: kind, Value: wrap(fn), Computed: computed}
	}

	if p.token.Kind == token.Colon {
		p.next()
		return &ast.PropertyKeyed{
			Key:      key,
			Kind:     ast.PropertyKindValue,
			Value:    p.parseAssignmentExpression(),
			Computed: computed,
		}
	}

	id, ok := key.Expr.(*ast.Identifier)
	if !ok || computed || keyTok.Kind != token.Identifier && keyTok.Kind != token.Await && keyTok.Kind != token.Yield {
		p.errorUnexpectedToken(p.token)
		return &ast.PropertyKeyed{Key: key, Kind: ast.PropertyKindValue, Value: wrap(&ast.Identifier{}), Computed: computed}
	}
	n := &ast.PropertyShort{Name: id}
	if p.token.Kind == token.Assign {
		if p.coverInit < 0 {
			p.coverInit = p.token.Offset
		}
		p.next()
		n.Initializer = p.parseAssignmentExpression()
	}
	return n
}

func (p *parser) checkAccessor(kind ast.PropertyKind, fn *ast.FunctionLiteral, offset int) {
	switch kind {
	case ast.PropertyKindGet:
		if len(fn.ParameterList.List) != 0 || fn.ParameterList.Rest != nil {
			p.errorAt(offset, "Getter must not have any formal parameters.")
		}
	case ast.PropertyKindSet:
		if len(fn.ParameterList.List) != 1 || fn.ParameterList.Rest != nil {
			p.errorAt(offset, "Setter must have exactly one formal parameter.")
		}
	}
}

// parsePropertyKey parses an object or class member key.
func (p *parser) parsePropertyKey() (key *ast.Expression, computed bool) {
	tok := p.token
	switch {
	case tok.Kind == token.LeftBracket:
		p.next()
		p.withIn(func() {
			key = p.parseAssignmentExpression()
		})
		p.expect(token.RightBracket)
		return key, true
	case tok.Kind == token.String:
		p.next()
		raw := tok.Literal
		return wrap(&ast.StringLiteral{Value: tok.Value, Raw: &raw}), false
	case tok.Kind == token.Number:
		p.next()
		raw := tok.Literal
		return wrap(&ast.NumberLiteral{Value: tok.Number, Raw: &raw}), false
	case token.ID(tok.Kind):
		if strings.HasPrefix(tok.Value, "#") && !p.scope.inClass {
			p.errorUnexpectedToken(tok)
		}
		p.next()
		return wrap(&ast.Identifier{Name: tok.Value}), false
	}
	p.errorUnexpectedToken(tok)
	p.next()
	return wrap(&ast.Identifier{Name: tok.Literal}), false
}

// parseDecorators parses a run of @decorator expressions.
func (p *parser) parseDecorators() ast.Decorators {
	var list ast.Decorators
	for p.token.Kind == token.At && !p.failed() {
		p.next()
		var expr *ast.Expression
		if p.token.Kind == token.LeftParenthesis {
			p.next()
			p.withIn(func() {
				expr = p.parseExpression()
			})
			p.expect(token.RightParenthesis)
		} else {
			expr = wrap(p.parseIdentifier())
			for p.token.Kind == token.Period {
				p.next()
				expr = wrap(&ast.MemberExpression{
					Object:   expr,
					Property: &ast.MemberProperty{Prop: p.parsePropertyName()},
				})
			}
			if p.token.Kind == token.LeftParenthesis {
				expr = wrap(&ast.CallExpression{Callee: expr, ArgumentList: p.parseArguments()})
			}
		}
		list = append(list, ast.Decorator{Expression: expr})
	}
	return list
}
