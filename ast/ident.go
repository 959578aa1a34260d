package ast

type (
	// ScopeContext identifies the scope that declares an identifier.
	ScopeContext int

	Identifier struct {
		Name         string
		ScopeContext ScopeContext
	}
)

func (*Identifier) _expr()           {}
func (*Identifier) _memberProperty() {}
