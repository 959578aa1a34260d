/*
Package parser implements a parser for JavaScript modules and scripts.

	import (
	    "github.com/t14raptor/jsdce/parser"
	)

Parse and return an AST

	program, err := parser.ParseFile(`
	    if (abc > 1) {
	    }
	`)

# Warning

The parser does not support BigInt literals, the with statement, or JSX.
Labels are not checked against the enclosing statements beyond their
presence in the label set.
*/
package parser

import (
	"errors"

	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/token"
)

type parser struct {
	src string
	lex lexer

	token Token
	// prevEnd is the end offset of the previously consumed token.
	prevEnd int

	scope *scope
	// coverInit is the offset of the first shorthand property initializer
	// ({a = 1}) not yet consumed by a destructuring assignment, or -1.
	coverInit int

	errors []error
	// maxErrors bounds the number of errors collected before parsing stops.
	maxErrors int
}

func newParser(src string) *parser {
	p := &parser{
		src:       src,
		maxErrors: 10,
		coverInit: -1,
	}
	p.lex = lexer{src: src, p: p}
	return p
}

// ParseFile parses the source code of a single JavaScript file and returns
// the corresponding ast.Program node. Syntax errors are joined into the
// returned error.
func ParseFile(src string) (*ast.Program, error) {
	p := newParser(src)
	return p.parse()
}

func (p *parser) parse() (*ast.Program, error) {
	p.openScope()
	defer p.closeScope()
	p.scope.allowAwait = true

	p.next()
	program := &ast.Program{}
	for p.token.Kind != token.Eof && len(p.errors) < p.maxErrors {
		program.Body = append(program.Body, p.parseModuleItem())
	}
	if len(p.errors) > 0 {
		return nil, errors.Join(p.errors...)
	}
	return program, nil
}

// next advances to the next token.
func (p *parser) next() {
	p.prevEnd = p.token.Offset + len(p.token.Literal)
	p.token = p.lex.next()
}

type mark struct {
	token     Token
	pos       int
	prevEnd   int
	errors    int
	coverInit int
}

func (p *parser) mark() mark {
	return mark{
		token:     p.token,
		pos:       p.lex.pos,
		prevEnd:   p.prevEnd,
		errors:    len(p.errors),
		coverInit: p.coverInit,
	}
}

// restore rewinds to m, discarding errors reported since.
func (p *parser) restore(m mark) {
	p.token = m.token
	p.lex.pos = m.pos
	p.prevEnd = m.prevEnd
	p.errors = p.errors[:m.errors]
	p.coverInit = m.coverInit
}

// peek returns the token after the current one.
func (p *parser) peek() Token {
	m := p.mark()
	p.next()
	tok := p.token
	p.restore(m)
	return tok
}

func (p *parser) currentKind() token.Token {
	return p.token.Kind
}

// is returns true if the current token is the contextual identifier word.
func (p *parser) is(word string) bool {
	return p.token.Kind == token.Identifier && p.token.Value == word && p.token.Literal == word
}

func (p *parser) expect(kind token.Token) {
	if p.token.Kind != kind {
		p.errorUnexpectedToken(p.token)
	}
	p.next()
}

func (p *parser) expectWord(word string) {
	if !p.is(word) {
		p.errorUnexpectedToken(p.token)
	}
	p.next()
}

// semicolon consumes a statement terminator, inserting one where the
// grammar allows.
func (p *parser) semicolon() {
	switch {
	case p.token.Kind == token.Semicolon:
		p.next()
	case p.token.Kind == token.RightBrace, p.token.Kind == token.Eof, p.token.OnNewLine:
	default:
		p.errorUnexpectedToken(p.token)
		p.next()
	}
}

// canInsertSemicolon reports whether a statement may end before the
// current token.
func (p *parser) canInsertSemicolon() bool {
	return p.token.Kind == token.Semicolon || p.token.Kind == token.RightBrace ||
		p.token.Kind == token.Eof || p.token.OnNewLine
}

func (p *parser) failed() bool {
	return len(p.errors) >= p.maxErrors
}
