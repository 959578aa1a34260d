package parser

import (
	"fmt"
	"strings"

	"github.com/t14raptor/jsdce/token"
)

const (
	errUnexpectedToken      = "Unexpected token %v"
	errUnexpectedEndOfInput = "Unexpected end of input"
)

// Error is a syntax error at a source position.
type Error struct {
	Line, Column int
	Message      string
}

func (e *Error) Error() string {
	return fmt.Sprintf("Line %d:%d %s", e.Line, e.Column, e.Message)
}

// position returns the 1-based line and column of offset.
func (p *parser) position(offset int) (line, column int) {
	if offset > len(p.src) {
		offset = len(p.src)
	}
	before := p.src[:offset]
	line = strings.Count(before, "\n") + 1
	column = offset - strings.LastIndexByte(before, '\n')
	return
}

func (p *parser) errorAt(offset int, msg string, args ...any) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	line, column := p.position(offset)
	p.errors = append(p.errors, &Error{Line: line, Column: column, Message: msg})
}

func (p *parser) errorf(msg string, args ...any) {
	p.errorAt(p.token.Offset, msg, args...)
}

func (p *parser) errorUnexpectedToken(tok Token) {
	switch tok.Kind {
	case token.Eof:
		p.errorAt(tok.Offset, errUnexpectedEndOfInput)
		return
	case token.Boolean, token.Null:
		p.errorAt(tok.Offset, errUnexpectedToken, tok.Literal)
		return
	case token.Identifier:
		p.errorAt(tok.Offset, "Unexpected identifier")
		return
	case token.Number:
		p.errorAt(tok.Offset, "Unexpected number")
		return
	case token.String:
		p.errorAt(tok.Offset, "Unexpected string")
		return
	case token.Template:
		p.errorAt(tok.Offset, "Unexpected template string")
		return
	}
	if tok.Kind > token.Null {
		p.errorAt(tok.Offset, "Unexpected reserved word")
		return
	}
	p.errorAt(tok.Offset, errUnexpectedToken, tok.Kind)
}
