package parser

import (
	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/token"
)

// parseStatementListItem parses a statement or declaration.
func (p *parser) parseStatementListItem() ast.Statement {
	stmt := p.parseDeclarationOrStatement()
	if p.coverInit >= 0 {
		p.errorAt(p.coverInit, "Invalid shorthand property initializer")
		p.coverInit = -1
	}
	return ast.Statement{Stmt: stmt}
}

func (p *parser) parseDeclarationOrStatement() ast.Stmt {
	switch p.token.Kind {
	case token.Function:
		return &ast.FunctionDeclaration{Function: p.parseFunction(true, false)}
	case token.Class:
		return &ast.ClassDeclaration{Class: p.parseClass(nil, true)}
	case token.At:
		decorators := p.parseDecorators()
		if p.token.Kind != token.Class {
			p.errorUnexpectedToken(p.token)
		}
		return &ast.ClassDeclaration{Class: p.parseClass(decorators, true)}
	case token.Const:
		return p.parseVariableStatement()
	case token.Identifier:
		if p.isLetDeclaration() {
			return p.parseVariableStatement()
		}
		if p.is("async") {
			if next := p.peek(); next.Kind == token.Function && !next.OnNewLine {
				p.next()
				return &ast.FunctionDeclaration{Function: p.parseFunction(true, true)}
			}
		}
	}
	return p.parseStatement()
}

// isLetDeclaration reports whether let at the current token starts a
// lexical declaration rather than naming a variable.
func (p *parser) isLetDeclaration() bool {
	if !p.is("let") {
		return false
	}
	switch next := p.peek(); next.Kind {
	case token.LeftBracket, token.LeftBrace, token.Identifier, token.Await, token.Yield:
		return true
	}
	return false
}

// parseStatement parses a statement in a position where declarations other
// than var are not allowed.
func (p *parser) parseStatement() ast.Stmt {
	switch p.token.Kind {
	case token.LeftBrace:
		return p.parseBlockStatement()
	case token.Semicolon:
		p.next()
		return &ast.EmptyStatement{}
	case token.Var:
		return p.parseVariableStatement()
	case token.If:
		return p.parseIfStatement()
	case token.For:
		return p.parseForStatement()
	case token.While:
		return p.parseWhileStatement()
	case token.Do:
		return p.parseDoWhileStatement()
	case token.Continue:
		return p.parseContinueStatement()
	case token.Break:
		return p.parseBreakStatement()
	case token.Return:
		return p.parseReturnStatement()
	case token.Throw:
		return p.parseThrowStatement()
	case token.Try:
		return p.parseTryStatement()
	case token.Switch:
		return p.parseSwitchStatement()
	case token.Debugger:
		p.next()
		p.semicolon()
		return &ast.DebuggerStatement{}
	case token.With:
		p.errorf("The with statement is not supported")
		p.next()
		return &ast.EmptyStatement{}
	case token.Function:
		// Sloppy mode function in statement position.
		return &ast.FunctionDeclaration{Function: p.parseFunction(true, false)}
	case token.Class:
		p.errorUnexpectedToken(p.token)
		return &ast.ClassDeclaration{Class: p.parseClass(nil, true)}
	case token.Import, token.Export:
		if next := p.peek(); p.token.Kind == token.Export || next.Kind != token.LeftParenthesis && next.Kind != token.Period {
			p.errorf("Cannot use import or export outside the top level of a module")
			p.next()
			return &ast.EmptyStatement{}
		}
	case token.Identifier:
		if p.peek().Kind == token.Colon {
			return p.parseLabelledStatement()
		}
	}

	expr := p.parseExpression()
	p.semicolon()
	return &ast.ExpressionStatement{Expression: expr}
}

func (p *parser) parseBlockStatement() *ast.BlockStatement {
	p.expect(token.LeftBrace)
	n := &ast.BlockStatement{}
	for p.token.Kind != token.RightBrace && p.token.Kind != token.Eof && !p.failed() {
		n.List = append(n.List, p.parseStatementListItem())
	}
	p.expect(token.RightBrace)
	return n
}

func (p *parser) parseVariableStatement() *ast.VariableDeclaration {
	offset := p.token.Offset
	n := p.parseVariableDeclaration()
	p.checkInitializers(n, offset)
	p.semicolon()
	return n
}

// parseVariableDeclaration parses var, let or const and its declarators
// without the terminating semicolon.
func (p *parser) parseVariableDeclaration() *ast.VariableDeclaration {
	n := &ast.VariableDeclaration{Token: token.Var}
	switch {
	case p.token.Kind == token.Const:
		n.Token = token.Const
	case p.is("let"):
		n.Token = token.Let
	}
	p.next()

	for !p.failed() {
		d := ast.VariableDeclarator{Target: p.parseBindingTarget()}
		if p.token.Kind == token.Assign {
			p.next()
			d.Initializer = p.parseAssignmentExpression()
		}
		n.List = append(n.List, d)
		if p.token.Kind != token.Comma {
			break
		}
		p.next()
	}
	return n
}

// checkInitializers reports declarators that need an initializer.
func (p *parser) checkInitializers(n *ast.VariableDeclaration, offset int) {
	for _, d := range n.List {
		if d.Initializer != nil {
			continue
		}
		if _, ok := d.Target.Target.(*ast.Identifier); !ok {
			p.errorAt(offset, "Missing initializer in destructuring declaration")
		} else if n.Token == token.Const {
			p.errorAt(offset, "Missing initializer in const declaration")
		}
	}
}

func (p *parser) parseSubStatement() *ast.Statement {
	if p.token.Kind == token.Class || p.token.Kind == token.Const || p.isLetDeclaration() {
		p.errorf("Lexical declaration cannot appear in a single-statement context")
	}
	stmt := p.parseStatement()
	return &ast.Statement{Stmt: stmt}
}

func (p *parser) parseIfStatement() *ast.IfStatement {
	p.expect(token.If)
	p.expect(token.LeftParenthesis)
	n := &ast.IfStatement{}
	p.withIn(func() {
		n.Test = p.parseExpression()
	})
	p.expect(token.RightParenthesis)
	n.Consequent = p.parseSubStatement()
	if p.token.Kind == token.Else {
		p.next()
		n.Alternate = p.parseSubStatement()
	}
	return n
}

func (p *parser) parseIterationBody() *ast.Statement {
	inIteration := p.scope.inIteration
	p.scope.inIteration = true
	body := p.parseSubStatement()
	p.scope.inIteration = inIteration
	return body
}

func (p *parser) parseWhileStatement() *ast.WhileStatement {
	p.expect(token.While)
	p.expect(token.LeftParenthesis)
	n := &ast.WhileStatement{}
	p.withIn(func() {
		n.Test = p.parseExpression()
	})
	p.expect(token.RightParenthesis)
	n.Body = p.parseIterationBody()
	return n
}

func (p *parser) parseDoWhileStatement() *ast.DoWhileStatement {
	p.expect(token.Do)
	n := &ast.DoWhileStatement{}
	n.Body = p.parseIterationBody()
	p.expect(token.While)
	p.expect(token.LeftParenthesis)
	p.withIn(func() {
		n.Test = p.parseExpression()
	})
	p.expect(token.RightParenthesis)
	if p.token.Kind == token.Semicolon {
		p.next()
	}
	return n
}

func (p *parser) parseForStatement() ast.Stmt {
	start := p.token
	p.expect(token.For)
	await := false
	if p.token.Kind == token.Await {
		if !p.scope.allowAwait {
			p.errorUnexpectedToken(p.token)
		}
		await = true
		p.next()
	}
	p.expect(token.LeftParenthesis)

	var (
		decl *ast.VariableDeclaration
		left *ast.Expression
	)
	allowIn := p.scope.allowIn
	p.scope.allowIn = false
	coverInit := p.coverInit
	switch {
	case p.token.Kind == token.Semicolon:
	case p.token.Kind == token.Var, p.token.Kind == token.Const, p.isLetDeclaration():
		decl = p.parseVariableDeclaration()
	default:
		left = p.parseExpression()
	}
	p.scope.allowIn = allowIn

	if p.token.Kind == token.In || p.is("of") {
		of := p.token.Kind != token.In
		p.next()

		into := &ast.ForInto{}
		if decl != nil {
			if len(decl.List) != 1 {
				p.errorAt(start.Offset, "Invalid left-hand side in for-loop: must have a single binding.")
			}
			into.Into = decl
		} else {
			if left == nil || !p.assignable(left.Expr, true) {
				p.errorAt(start.Offset, "Invalid left-hand side in for-loop")
			} else if isPattern(left.Expr) {
				p.coverInit = coverInit
			}
			into.Into = left
		}

		var source *ast.Expression
		p.withIn(func() {
			if of {
				source = p.parseAssignmentExpression()
			} else {
				source = p.parseExpression()
			}
		})
		p.expect(token.RightParenthesis)
		body := p.parseIterationBody()
		if of {
			return &ast.ForOfStatement{Into: into, Source: source, Body: body, Await: await}
		}
		if await {
			p.errorAt(start.Offset, "Unexpected token in")
		}
		return &ast.ForInStatement{Into: into, Source: source, Body: body}
	}

	if await {
		p.errorAt(start.Offset, "Unexpected token for await")
	}
	n := &ast.ForStatement{}
	if decl != nil {
		p.checkInitializers(decl, start.Offset)
		n.Initializer = &ast.ForLoopInitializer{Initializer: decl}
	} else if left != nil {
		n.Initializer = &ast.ForLoopInitializer{Initializer: left}
	}
	p.expect(token.Semicolon)
	p.withIn(func() {
		if p.token.Kind != token.Semicolon {
			n.Test = p.parseExpression()
		}
		p.expect(token.Semicolon)
		if p.token.Kind != token.RightParenthesis {
			n.Update = p.parseExpression()
		}
	})
	p.expect(token.RightParenthesis)
	n.Body = p.parseIterationBody()
	return n
}

func (p *parser) parseLabel() *ast.Identifier {
	if p.token.Kind != token.Identifier || p.token.OnNewLine {
		return nil
	}
	label := p.parseIdentifier()
	if !p.scope.hasLabel(label.Name) {
		p.errorf("Undefined label '%s'", label.Name)
	}
	return label
}

func (p *parser) parseContinueStatement() *ast.ContinueStatement {
	p.expect(token.Continue)
	n := &ast.ContinueStatement{Label: p.parseLabel()}
	if !p.scope.inIteration {
		p.errorf("Illegal continue statement: no surrounding iteration statement")
	}
	p.semicolon()
	return n
}

func (p *parser) parseBreakStatement() *ast.BreakStatement {
	p.expect(token.Break)
	n := &ast.BreakStatement{Label: p.parseLabel()}
	if n.Label == nil && !p.scope.inIteration && !p.scope.inSwitch {
		p.errorf("Illegal break statement")
	}
	p.semicolon()
	return n
}

func (p *parser) parseReturnStatement() *ast.ReturnStatement {
	if !p.scope.inFunction {
		p.errorf("Illegal return statement")
	}
	p.expect(token.Return)
	n := &ast.ReturnStatement{}
	if !p.canInsertSemicolon() {
		n.Argument = p.parseExpression()
	}
	p.semicolon()
	return n
}

func (p *parser) parseThrowStatement() *ast.ThrowStatement {
	p.expect(token.Throw)
	if p.token.OnNewLine {
		p.errorf("Illegal newline after throw")
	}
	n := &ast.ThrowStatement{Argument: p.parseExpression()}
	p.semicolon()
	return n
}

func (p *parser) parseTryStatement() *ast.TryStatement {
	p.expect(token.Try)
	n := &ast.TryStatement{Body: p.parseBlockStatement()}
	if p.token.Kind == token.Catch {
		p.next()
		c := &ast.CatchStatement{}
		if p.token.Kind == token.LeftParenthesis {
			p.next()
			c.Parameter = p.parseBindingTarget()
			p.expect(token.RightParenthesis)
		}
		c.Body = p.parseBlockStatement()
		n.Catch = c
	}
	if p.token.Kind == token.Finally {
		p.next()
		n.Finally = p.parseBlockStatement()
	}
	if n.Catch == nil && n.Finally == nil {
		p.errorf("Missing catch or finally after try")
	}
	return n
}

func (p *parser) parseSwitchStatement() *ast.SwitchStatement {
	p.expect(token.Switch)
	p.expect(token.LeftParenthesis)
	n := &ast.SwitchStatement{}
	p.withIn(func() {
		n.Discriminant = p.parseExpression()
	})
	p.expect(token.RightParenthesis)
	p.expect(token.LeftBrace)

	inSwitch := p.scope.inSwitch
	p.scope.inSwitch = true
	hasDefault := false
	for p.token.Kind != token.RightBrace && p.token.Kind != token.Eof && !p.failed() {
		var c ast.CaseStatement
		if p.token.Kind == token.Default {
			if hasDefault {
				p.errorf("More than one default clause in switch statement")
			}
			hasDefault = true
			p.next()
		} else {
			p.expect(token.Case)
			p.withIn(func() {
				c.Test = p.parseExpression()
			})
		}
		p.expect(token.Colon)
		for !p.failed() {
			switch p.token.Kind {
			case token.Case, token.Default, token.RightBrace, token.Eof:
			default:
				c.Consequent = append(c.Consequent, p.parseStatementListItem())
				continue
			}
			break
		}
		n.Body = append(n.Body, c)
	}
	p.scope.inSwitch = inSwitch
	p.expect(token.RightBrace)
	return n
}

func (p *parser) parseLabelledStatement() *ast.LabelledStatement {
	label := p.parseIdentifier()
	p.expect(token.Colon)
	if p.scope.hasLabel(label.Name) {
		p.errorf("Label '%s' has already been declared", label.Name)
	}
	p.scope.declareLabel(label.Name)
	var body ast.Stmt
	if p.token.Kind == token.Function {
		body = &ast.FunctionDeclaration{Function: p.parseFunction(true, false)}
	} else {
		body = p.parseSubStatement().Stmt
	}
	p.scope.removeLabel()
	return &ast.LabelledStatement{Label: label, Statement: &ast.Statement{Stmt: body}}
}
