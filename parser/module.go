package parser

import (
	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/token"
)

// parseModuleItem parses a top level statement, including import and
// export declarations.
func (p *parser) parseModuleItem() ast.Statement {
	switch p.token.Kind {
	case token.Import:
		if next := p.peek(); next.Kind != token.LeftParenthesis && next.Kind != token.Period {
			return ast.Statement{Stmt: p.parseImportDeclaration()}
		}
	case token.Export:
		return ast.Statement{Stmt: p.parseExportDeclaration(nil)}
	case token.At:
		m := p.mark()
		decorators := p.parseDecorators()
		if p.token.Kind == token.Export {
			return ast.Statement{Stmt: p.parseExportDeclaration(decorators)}
		}
		p.restore(m)
	}
	return p.parseStatementListItem()
}

func (p *parser) parseModuleSource() *ast.StringLiteral {
	tok := p.token
	if tok.Kind != token.String {
		p.errorUnexpectedToken(tok)
		p.next()
		return &ast.StringLiteral{}
	}
	p.next()
	raw := tok.Literal
	return &ast.StringLiteral{Value: tok.Value, Raw: &raw}
}

// parseModuleExportName parses an identifier name or string naming an
// export.
func (p *parser) parseModuleExportName() string {
	tok := p.token
	switch {
	case tok.Kind == token.String:
	case token.ID(tok.Kind):
	default:
		p.errorUnexpectedToken(tok)
	}
	p.next()
	return tok.Value
}

func (p *parser) parseImportDeclaration() *ast.ImportDeclaration {
	p.expect(token.Import)
	n := &ast.ImportDeclaration{}
	if p.token.Kind == token.String {
		n.Source = p.parseModuleSource()
		p.semicolon()
		return n
	}

	if p.isBindingIdentifier() {
		n.Specifiers = append(n.Specifiers, ast.ImportSpecifier{
			Imported: "default",
			Local:    p.parseIdentifier(),
		})
		if p.token.Kind == token.Comma {
			p.next()
		} else {
			p.expectWord("from")
			n.Source = p.parseModuleSource()
			p.semicolon()
			return n
		}
	}

	switch p.token.Kind {
	case token.Multiply:
		p.next()
		p.expectWord("as")
		n.Specifiers = append(n.Specifiers, ast.ImportSpecifier{
			Imported: "*",
			Local:    p.parseIdentifier(),
		})
	case token.LeftBrace:
		p.next()
		for p.token.Kind != token.RightBrace && p.token.Kind != token.Eof && !p.failed() {
			nameTok := p.token
			imported := p.parseModuleExportName()
			var local *ast.Identifier
			if p.is("as") {
				p.next()
				local = p.parseIdentifier()
			} else {
				if nameTok.Kind != token.Identifier {
					p.errorAt(nameTok.Offset, "Unexpected reserved word")
				}
				local = &ast.Identifier{Name: imported}
			}
			n.Specifiers = append(n.Specifiers, ast.ImportSpecifier{Imported: imported, Local: local})
			if p.token.Kind != token.RightBrace {
				p.expect(token.Comma)
			}
		}
		p.expect(token.RightBrace)
	default:
		p.errorUnexpectedToken(p.token)
	}

	p.expectWord("from")
	n.Source = p.parseModuleSource()
	p.semicolon()
	return n
}

func (p *parser) parseExportDeclaration(decorators ast.Decorators) ast.Stmt {
	p.expect(token.Export)
	if len(decorators) == 0 && p.token.Kind == token.At {
		decorators = p.parseDecorators()
	}
	if len(decorators) > 0 {
		switch p.token.Kind {
		case token.Class:
			return &ast.ExportDeclaration{Declaration: &ast.Statement{
				Stmt: &ast.ClassDeclaration{Class: p.parseClass(decorators, true)},
			}}
		case token.Default:
			p.next()
			return &ast.ExportDefaultDeclaration{Declaration: &ast.Statement{
				Stmt: &ast.ClassDeclaration{Class: p.parseClass(decorators, false)},
			}}
		}
		p.errorUnexpectedToken(p.token)
	}

	switch p.token.Kind {
	case token.Default:
		p.next()
		return p.parseExportDefault()
	case token.Multiply:
		p.next()
		n := &ast.ExportDeclaration{Namespace: true}
		if p.is("as") {
			p.next()
			n.Specifiers = append(n.Specifiers, ast.ExportSpecifier{Exported: p.parseModuleExportName()})
		}
		p.expectWord("from")
		n.Source = p.parseModuleSource()
		p.semicolon()
		return n
	case token.LeftBrace:
		return p.parseExportSpecifiers()
	case token.Var, token.Const:
		return &ast.ExportDeclaration{Declaration: &ast.Statement{Stmt: p.parseVariableStatement()}}
	case token.Function:
		return &ast.ExportDeclaration{Declaration: &ast.Statement{
			Stmt: &ast.FunctionDeclaration{Function: p.parseFunction(true, false)},
		}}
	case token.Class:
		return &ast.ExportDeclaration{Declaration: &ast.Statement{
			Stmt: &ast.ClassDeclaration{Class: p.parseClass(nil, true)},
		}}
	case token.Identifier:
		if p.isLetDeclaration() {
			return &ast.ExportDeclaration{Declaration: &ast.Statement{Stmt: p.parseVariableStatement()}}
		}
		if p.is("async") {
			p.next()
			return &ast.ExportDeclaration{Declaration: &ast.Statement{
				Stmt: &ast.FunctionDeclaration{Function: p.parseFunction(true, true)},
			}}
		}
	}
	p.errorUnexpectedToken(p.token)
	p.next()
	return &ast.EmptyStatement{}
}

func (p *parser) parseExportSpecifiers() *ast.ExportDeclaration {
	p.expect(token.LeftBrace)
	n := &ast.ExportDeclaration{}
	var locals []Token
	for p.token.Kind != token.RightBrace && p.token.Kind != token.Eof && !p.failed() {
		localTok := p.token
		local := p.parseModuleExportName()
		exported := local
		if p.is("as") {
			p.next()
			exported = p.parseModuleExportName()
		}
		locals = append(locals, localTok)
		n.Specifiers = append(n.Specifiers, ast.ExportSpecifier{
			Local:    &ast.Identifier{Name: local},
			Exported: exported,
		})
		if p.token.Kind != token.RightBrace {
			p.expect(token.Comma)
		}
	}
	p.expect(token.RightBrace)

	if p.is("from") {
		p.next()
		n.Source = p.parseModuleSource()
	} else {
		// Without a source every local must be a binding in this module.
		for _, tok := range locals {
			if tok.Kind != token.Identifier {
				p.errorUnexpectedToken(tok)
			}
		}
	}
	p.semicolon()
	return n
}

func (p *parser) parseExportDefault() ast.Stmt {
	switch p.token.Kind {
	case token.Function:
		return &ast.ExportDefaultDeclaration{Declaration: &ast.Statement{
			Stmt: &ast.FunctionDeclaration{Function: p.parseFunction(false, false)},
		}}
	case token.Class:
		return &ast.ExportDefaultDeclaration{Declaration: &ast.Statement{
			Stmt: &ast.ClassDeclaration{Class: p.parseClass(nil, false)},
		}}
	case token.At:
		decorators := p.parseDecorators()
		return &ast.ExportDefaultDeclaration{Declaration: &ast.Statement{
			Stmt: &ast.ClassDeclaration{Class: p.parseClass(decorators, false)},
		}}
	case token.Identifier:
		if p.is("async") {
			if next := p.peek(); next.Kind == token.Function && !next.OnNewLine {
				p.next()
				return &ast.ExportDefaultDeclaration{Declaration: &ast.Statement{
					Stmt: &ast.FunctionDeclaration{Function: p.parseFunction(false, true)},
				}}
			}
		}
	}
	n := &ast.ExportDefaultDeclaration{Expression: p.parseAssignmentExpression()}
	p.semicolon()
	return n
}
