package ast

// RemoveVisitor is a visitor that can remove nodes from the AST.
type RemoveVisitor struct {
	NoopVisitor
	remove bool
}

// Remove marks the current node for removal.
//
// The mark is consumed by the nearest enclosing slot that can drop a node:
//   - [RemoveVisitor.VisitStatements] deletes the statement from the list
//   - [RemoveVisitor.VisitStatement] replaces the statement with an empty one
//   - [RemoveVisitor.VisitExpressions] deletes the expression from the list
//   - [RemoveVisitor.VisitForLoopInitializer] clears the initializer
//
// If you override one of these, make sure to either call the base
// implementation or handle removal manually.
func (v *RemoveVisitor) Remove() {
	v.remove = true
}

func (v *RemoveVisitor) VisitStatements(n *Statements) {
	w := 0
	for i := range *n {
		(*n)[i].VisitChildrenWith(v.V)
		if v.remove {
			v.remove = false
			continue
		}
		(*n)[w] = (*n)[i]
		w++
	}
	clear((*n)[w:])
	*n = (*n)[:w]
}

func (v *RemoveVisitor) VisitStatement(n *Statement) {
	n.VisitChildrenWith(v.V)
	if v.remove {
		v.remove = false
		n.Stmt = &EmptyStatement{}
	}
}

func (v *RemoveVisitor) VisitExpressions(n *Expressions) {
	w := 0
	for i := range *n {
		(*n)[i].VisitWith(v.V)
		if v.remove {
			v.remove = false
			continue
		}
		(*n)[w] = (*n)[i]
		w++
	}
	clear((*n)[w:])
	*n = (*n)[:w]
}

func (v *RemoveVisitor) VisitForLoopInitializer(n *ForLoopInitializer) {
	n.VisitChildrenWith(v.V)
	if v.remove {
		v.remove = false
		n.Initializer = nil
	}
}

func (v *RemoveVisitor) VisitVariableDeclaration(n *VariableDeclaration) {
	n.VisitChildrenWith(v.V)
	if len(n.List) == 0 {
		v.Remove()
	}
}
