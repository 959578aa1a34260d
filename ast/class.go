package ast

type (
	ClassLiteral struct {
		Name       *Identifier `optional:"true"`
		SuperClass *Expression `optional:"true"`
		Body       ClassElements
		Decorators Decorators
	}

	Decorators []Decorator

	Decorator struct {
		Expression *Expression
	}

	ClassElements []ClassElement

	ClassElement struct {
		Element
	}

	Element interface {
		VisitableNode
		_classElement()
	}

	FieldDefinition struct {
		Key         *Expression
		Initializer *Expression `optional:"true"`
		Computed    bool
		Static      bool
	}

	MethodDefinition struct {
		Key      *Expression
		Kind     PropertyKind // "method", "get" or "set"
		Body     *FunctionLiteral
		Computed bool
		Static   bool
	}

	ClassStaticBlock struct {
		Block *BlockStatement
	}
)

func (*FieldDefinition) _classElement()  {}
func (*MethodDefinition) _classElement() {}
func (*ClassStaticBlock) _classElement() {}
