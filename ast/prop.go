package ast

type PropertyKind string

const (
	PropertyKindValue  PropertyKind = "value"
	PropertyKindGet    PropertyKind = "get"
	PropertyKindSet    PropertyKind = "set"
	PropertyKindMethod PropertyKind = "method"
)

type (
	ObjectLiteral struct {
		Value Properties
	}

	Properties []Property

	Property struct {
		Prop
	}

	// Prop is a *PropertyShort, *PropertyKeyed or *SpreadElement.
	Prop interface {
		VisitableNode
		_property()
	}

	// PropertyShort is the shorthand {name}. Initializer is only set when
	// the object is an assignment pattern ({name = 1} = obj).
	PropertyShort struct {
		Name        *Identifier
		Initializer *Expression `optional:"true"`
	}

	// PropertyKeyed has a non-computed Key holding an *Identifier,
	// *StringLiteral or *NumberLiteral naming the property.
	PropertyKeyed struct {
		Key      *Expression
		Kind     PropertyKind
		Value    *Expression
		Computed bool
	}
)

func (*PropertyShort) _property() {}
func (*PropertyKeyed) _property() {}
func (*SpreadElement) _property() {}
