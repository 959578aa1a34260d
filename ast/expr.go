package ast

import "github.com/t14raptor/jsdce/token"

type (
	Expressions []Expression

	// Expression is a replaceable expression slot.
	Expression struct {
		Expr `optional:"true"`
	}

	// All expression nodes implement the Expr interface.
	Expr interface {
		VisitableNode
		_expr()
	}

	ArrayLiteral struct {
		// An element with a nil Expr is a hole.
		Value Expressions
	}

	AssignExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	AwaitExpression struct {
		Argument *Expression
	}

	BinaryExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	CallExpression struct {
		Callee       *Expression
		ArgumentList Expressions
		Optional     bool
	}

	ConditionalExpression struct {
		Test       *Expression
		Consequent *Expression
		Alternate  *Expression
	}

	MemberExpression struct {
		Object   *Expression
		Property *MemberProperty
		Optional bool
	}

	MemberProperty struct {
		Prop MemberProp
	}

	// MemberProp is an *Identifier for dot access or a *ComputedProperty.
	MemberProp interface {
		VisitableNode
		_memberProperty()
	}

	ComputedProperty struct {
		Expr *Expression
	}

	NewExpression struct {
		Callee       *Expression
		ArgumentList Expressions
	}

	SequenceExpression struct {
		Sequence Expressions
	}

	SpreadElement struct {
		Expression *Expression
	}

	SuperExpression struct{}

	ThisExpression struct{}

	UnaryExpression struct {
		Operator token.Token
		Operand  *Expression
	}

	UpdateExpression struct {
		Operator token.Token
		Operand  *Expression
		Postfix  bool
	}

	YieldExpression struct {
		Argument *Expression `optional:"true"`
		Delegate bool
	}

	TemplateLiteral struct {
		Tag         *Expression `optional:"true"`
		Elements    []TemplateElement
		Expressions Expressions
	}

	// TemplateElement is a chunk of template text. Literal is the source
	// text and Cooked its value with escapes resolved.
	TemplateElement struct {
		Literal string
		Cooked  string
	}
)

func (*ComputedProperty) _memberProperty() {}

func (*ArrayLiteral) _expr()          {}
func (*ArrowFunctionLiteral) _expr()  {}
func (*AssignExpression) _expr()      {}
func (*AwaitExpression) _expr()       {}
func (*BinaryExpression) _expr()      {}
func (*BooleanLiteral) _expr()        {}
func (*CallExpression) _expr()        {}
func (*ClassLiteral) _expr()          {}
func (*ConditionalExpression) _expr() {}
func (*FunctionLiteral) _expr()       {}
func (*MemberExpression) _expr()      {}
func (*NewExpression) _expr()         {}
func (*NullLiteral) _expr()           {}
func (*NumberLiteral) _expr()         {}
func (*ObjectLiteral) _expr()         {}
func (*RegExpLiteral) _expr()         {}
func (*SequenceExpression) _expr()    {}
func (*SpreadElement) _expr()         {}
func (*StringLiteral) _expr()         {}
func (*SuperExpression) _expr()       {}
func (*TemplateLiteral) _expr()       {}
func (*ThisExpression) _expr()        {}
func (*UnaryExpression) _expr()       {}
func (*UpdateExpression) _expr()      {}
func (*YieldExpression) _expr()       {}
