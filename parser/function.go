package parser

import (
	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/token"
)

// parseFunction parses a function starting at the function keyword. A
// declaration requires a name unless it is a default export.
func (p *parser) parseFunction(declaration, async bool) *ast.FunctionLiteral {
	p.expect(token.Function)
	n := &ast.FunctionLiteral{Async: async}
	if p.token.Kind == token.Multiply {
		n.Generator = true
		p.next()
	}

	if p.token.Kind != token.LeftParenthesis {
		if declaration {
			n.Name = p.parseIdentifier()
		} else {
			// The name of a function expression follows the rules of its
			// own body.
			allowAwait, allowYield := p.scope.allowAwait, p.scope.allowYield
			p.scope.allowAwait, p.scope.allowYield = async, n.Generator
			n.Name = p.parseIdentifier()
			p.scope.allowAwait, p.scope.allowYield = allowAwait, allowYield
		}
	}

	p.openFunctionScope(async, n.Generator)
	n.ParameterList = p.parseParameterList()
	n.Body = p.parseFunctionBody()
	p.closeScope()
	return n
}

// parseMethod parses the parameters and body of an object or class method.
func (p *parser) parseMethod(async, generator bool) *ast.FunctionLiteral {
	n := &ast.FunctionLiteral{Async: async, Generator: generator}
	p.openFunctionScope(async, generator)
	n.ParameterList = p.parseParameterList()
	n.Body = p.parseFunctionBody()
	p.closeScope()
	return n
}

func (p *parser) parseParameterList() *ast.ParameterList {
	p.expect(token.LeftParenthesis)
	n := &ast.ParameterList{}
	p.withIn(func() {
		for p.token.Kind != token.RightParenthesis && p.token.Kind != token.Eof && !p.failed() {
			if p.token.Kind == token.Ellipsis {
				p.next()
				n.Rest = p.parseBindingTarget()
				if p.token.Kind != token.RightParenthesis {
					p.errorf("Rest parameter must be last formal parameter")
				}
				break
			}
			n.List = append(n.List, p.parseBindingElement())
			if p.token.Kind != token.RightParenthesis {
				p.expect(token.Comma)
			}
		}
	})
	p.expect(token.RightParenthesis)
	return n
}

func (p *parser) parseFunctionBody() *ast.BlockStatement {
	p.expect(token.LeftBrace)
	n := &ast.BlockStatement{}
	for p.token.Kind != token.RightBrace && p.token.Kind != token.Eof && !p.failed() {
		n.List = append(n.List, p.parseStatementListItem())
	}
	p.expect(token.RightBrace)
	return n
}

// parseBindingTarget parses an identifier or destructuring pattern in a
// declaration or parameter list.
func (p *parser) parseBindingTarget() *ast.BindingTarget {
	switch p.token.Kind {
	case token.LeftBracket:
		return &ast.BindingTarget{Target: p.parseArrayPattern()}
	case token.LeftBrace:
		return &ast.BindingTarget{Target: p.parseObjectPattern()}
	}
	if !p.isBindingIdentifier() {
		p.errorUnexpectedToken(p.token)
		p.next()
		return &ast.BindingTarget{Target: &ast.Identifier{}}
	}
	return &ast.BindingTarget{Target: p.parseIdentifier()}
}

// parseBindingElement parses a binding target with an optional default.
func (p *parser) parseBindingElement() ast.VariableDeclarator {
	n := ast.VariableDeclarator{Target: p.parseBindingTarget()}
	if p.token.Kind == token.Assign {
		p.next()
		n.Initializer = p.parseAssignmentExpression()
	}
	return n
}

func (p *parser) parseArrayPattern() *ast.ArrayPattern {
	p.expect(token.LeftBracket)
	n := &ast.ArrayPattern{}
	for p.token.Kind != token.RightBracket && p.token.Kind != token.Eof && !p.failed() {
		if p.token.Kind == token.Comma {
			p.next()
			n.Elements = append(n.Elements, ast.VariableDeclarator{})
			continue
		}
		if p.token.Kind == token.Ellipsis {
			p.next()
			n.Rest = p.parseBindingTarget()
			if p.token.Kind != token.RightBracket {
				p.errorf("Rest element must be last element")
			}
			break
		}
		n.Elements = append(n.Elements, p.parseBindingElement())
		if p.token.Kind != token.RightBracket {
			p.expect(token.Comma)
		}
	}
	p.expect(token.RightBracket)
	return n
}

func (p *parser) parseObjectPattern() *ast.ObjectPattern {
	p.expect(token.LeftBrace)
	n := &ast.ObjectPattern{}
	for p.token.Kind != token.RightBrace && p.token.Kind != token.Eof && !p.failed() {
		if p.token.Kind == token.Ellipsis {
			p.next()
			if !p.isBindingIdentifier() {
				p.errorUnexpectedToken(p.token)
			}
			n.Rest = &ast.BindingTarget{Target: p.parseIdentifier()}
			break
		}

		keyTok := p.token
		key, computed := p.parsePropertyKey()
		prop := ast.PatternProperty{Key: key, Computed: computed}
		if p.token.Kind == token.Colon {
			p.next()
			prop.Value = p.parseBindingElement()
		} else {
			if computed || keyTok.Kind != token.Identifier && keyTok.Kind != token.Await && keyTok.Kind != token.Yield {
				p.errorUnexpectedToken(p.token)
			}
			prop.Shorthand = true
			prop.Value.Target = &ast.BindingTarget{Target: &ast.Identifier{Name: keyTok.Value}}
			if p.token.Kind == token.Assign {
				p.next()
				prop.Value.Initializer = p.parseAssignmentExpression()
			}
		}
		n.Properties = append(n.Properties, prop)
		if p.token.Kind != token.RightBrace {
			p.expect(token.Comma)
		}
	}
	p.expect(token.RightBrace)
	return n
}

// parseClass parses a class starting at the class keyword.
func (p *parser) parseClass(decorators ast.Decorators, declaration bool) *ast.ClassLiteral {
	p.expect(token.Class)
	n := &ast.ClassLiteral{Decorators: decorators}
	if p.isBindingIdentifier() && !p.is("extends") {
		n.Name = p.parseIdentifier()
	} else if declaration {
		p.errorUnexpectedToken(p.token)
	}
	if p.token.Kind == token.Extends {
		p.next()
		n.SuperClass = p.parseLeftHandSideExpressionAllowCall()
	}

	inClass := p.scope.inClass
	p.scope.inClass = true
	p.expect(token.LeftBrace)
	for p.token.Kind != token.RightBrace && p.token.Kind != token.Eof && !p.failed() {
		if p.token.Kind == token.Semicolon {
			p.next()
			continue
		}
		if p.token.Kind == token.At {
			p.errorf("Decorators on class members are not supported")
			p.parseDecorators()
		}
		n.Body = append(n.Body, ast.ClassElement{Element: p.parseClassElement()})
	}
	p.expect(token.RightBrace)
	p.scope.inClass = inClass
	return n
}

func (p *parser) parseClassElement() ast.Element {
	static := false
	if p.isModifier("static") {
		p.next()
		if p.token.Kind == token.LeftBrace {
			p.openFunctionScope(false, false)
			p.scope.allowAwait = false
			block := p.parseFunctionBody()
			p.closeScope()
			return &ast.ClassStaticBlock{Block: block}
		}
		static = true
	}

	async, generator := false, false
	kind := ast.PropertyKindMethod
	if p.isModifier("async") {
		async = true
		p.next()
	}
	if p.token.Kind == token.Multiply {
		generator = true
		p.next()
	}
	accessor := false
	if !async && !generator && (p.isModifier("get") || p.isModifier("set")) {
		kind = ast.PropertyKind(p.token.Value)
		accessor = true
		p.next()
	}

	keyTok := p.token
	key, computed := p.parsePropertyKey()
	if accessor || async || generator || p.token.Kind == token.LeftParenthesis {
		fn := p.parseMethod(async, generator)
		p.checkAccessor(kind, fn, keyTok.Offset)
		return &ast.MethodDefinition{
			Key:      key,
			Kind:     kind,
			Body:     fn,
			Computed: computed,
			Static:   static,
		}
	}

	field := &ast.FieldDefinition{Key: key, Computed: computed, Static: static}
	if p.token.Kind == token.Assign {
		p.next()
		p.openFunctionScope(false, false)
		p.withIn(func() {
			field.Initializer = p.parseAssignmentExpression()
		})
		p.closeScope()
	}
	p.semicolon()
	return field
}
