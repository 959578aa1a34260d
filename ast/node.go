package ast

// VisitableNode is implemented by every element of the program tree.
type VisitableNode interface {
	// VisitWith dispatches the node to the matching Visit method of v.
	VisitWith(v Visitor)
	// VisitChildrenWith visits the node's children in source order.
	VisitChildrenWith(v Visitor)
}

// Program is the root of a parsed source file.
type Program struct {
	Body Statements
}
