package deadcode

import (
	"github.com/t14raptor/jsdce/ast"
)

// release drops the references held by n, which is about to leave the
// program. Every reference is released at most once per iteration.
func (e *eliminator) release(n ast.VisitableNode) {
	r := &releaser{e: e}
	r.V = r
	n.VisitWith(r)
}

type releaser struct {
	ast.NoopVisitor
	e *eliminator
}

func (r *releaser) VisitIdentifier(n *ast.Identifier) {
	if r.e.released[n] {
		return
	}
	if b := r.e.info.BindingOf(n); b != nil && b.References > 0 {
		r.e.released[n] = true
		b.References--
	}
}

// Dead declarations were released or inlined already.
func (r *releaser) VisitVariableDeclarator(n *ast.VariableDeclarator) {
	if !r.e.dead[n] {
		n.VisitChildrenWith(r)
	}
}

func (r *releaser) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	if !r.e.dead[n] {
		n.VisitChildrenWith(r)
	}
}

func (r *releaser) VisitClassDeclaration(n *ast.ClassDeclaration) {
	if !r.e.dead[n] {
		n.VisitChildrenWith(r)
	}
}

// sweep deletes the declarators and declarations marked dead. Declarations
// left without declarators are removed as well.
func sweep(p *ast.Program, dead map[ast.VisitableNode]bool) {
	if len(dead) == 0 {
		return
	}
	s := &sweeper{dead: dead}
	s.V = s
	p.VisitWith(s)
}

type sweeper struct {
	ast.RemoveVisitor
	dead map[ast.VisitableNode]bool
}

func (s *sweeper) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	w := 0
	for i := range n.List {
		if s.dead[&n.List[i]] {
			continue
		}
		n.List[w] = n.List[i]
		w++
	}
	clear(n.List[w:])
	n.List = n.List[:w]
	s.RemoveVisitor.VisitVariableDeclaration(n)
}

func (s *sweeper) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	if s.dead[n] {
		s.Remove()
		return
	}
	n.VisitChildrenWith(s)
}

func (s *sweeper) VisitClassDeclaration(n *ast.ClassDeclaration) {
	if s.dead[n] {
		s.Remove()
		return
	}
	n.VisitChildrenWith(s)
}
