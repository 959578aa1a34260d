package ast

type (
	FunctionLiteral struct {
		Name          *Identifier `optional:"true"`
		ParameterList *ParameterList
		Body          *BlockStatement

		Async, Generator bool
	}

	ArrowFunctionLiteral struct {
		ParameterList *ParameterList
		Body          *ConciseBody
		Async         bool
	}

	ConciseBody struct {
		Body
	}

	// Body is a *BlockStatement or an *Expression.
	Body interface {
		VisitableNode
		_conciseBody()
	}

	ParameterList struct {
		List VariableDeclarators
		Rest *BindingTarget `optional:"true"`
	}
)

func (*BlockStatement) _conciseBody() {}
func (*Expression) _conciseBody()     {}
