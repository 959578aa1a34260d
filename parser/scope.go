package parser

import "slices"

type scope struct {
	outer       *scope
	allowIn     bool
	allowLet    bool
	inIteration bool
	inSwitch    bool
	inFunction  bool
	allowAwait  bool
	allowYield  bool
	inClass     bool

	labels []string
}

func (p *parser) openScope() {
	p.scope = &scope{
		outer:    p.scope,
		allowIn:  true,
		allowLet: true,
	}
}

// openFunctionScope opens the scope of a function body. Labels and loop
// context do not cross function boundaries.
func (p *parser) openFunctionScope(async, generator bool) {
	outer := p.scope
	p.openScope()
	p.scope.inFunction = true
	p.scope.allowAwait = async
	p.scope.allowYield = generator
	if outer != nil {
		p.scope.inClass = outer.inClass
	}
}

func (p *parser) closeScope() {
	p.scope = p.scope.outer
}

func (s *scope) declareLabel(name string) {
	s.labels = append(s.labels, name)
}

func (s *scope) removeLabel() {
	s.labels = s.labels[:len(s.labels)-1]
}

func (s *scope) hasLabel(name string) bool {
	return slices.Contains(s.labels, name)
}
