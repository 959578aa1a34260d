package ext

import (
	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/token"
)

// Facts answers binding questions for IsPureConstant.
type Facts interface {
	// ConstantRef returns true if id resolves to a binding that is never
	// reassigned and is initialized before every read.
	ConstantRef(id *ast.Identifier) bool
	// PrimitiveRef returns true if id is a constant reference whose value
	// is a primitive, so converting it runs no user code.
	PrimitiveRef(id *ast.Identifier) bool
}

// IsPureConstant returns true if evaluating expr has no observable side
// effect and always yields the same value. It only accepts literals and
// compositions of other pure constants; identifiers are pure when facts
// reports them as constant references. Operands that an operator converts
// to a primitive must already be primitive, since converting an object
// calls its valueOf or toString. A nil expression is undefined and
// therefore pure.
func IsPureConstant(expr *ast.Expression, facts Facts) bool {
	if expr == nil || expr.Expr == nil {
		return true
	}
	switch e := expr.Expr.(type) {
	case *ast.NumberLiteral, *ast.StringLiteral, *ast.BooleanLiteral, *ast.NullLiteral, *ast.RegExpLiteral,
		*ast.FunctionLiteral, *ast.ArrowFunctionLiteral:
		return true
	case *ast.Identifier:
		if IsUndefined(expr) || IsNaN(expr) || IsGlobalRefTo(expr, "Infinity") {
			return true
		}
		return facts != nil && facts.ConstantRef(e)
	case *ast.TemplateLiteral:
		if e.Tag != nil {
			return false
		}
		for i := range e.Expressions {
			if !IsPrimitiveConstant(&e.Expressions[i], facts) {
				return false
			}
		}
		return true
	case *ast.UnaryExpression:
		switch e.Operator {
		case token.Delete:
			return false
		case token.Typeof, token.Void, token.Not:
			return IsPureConstant(e.Operand, facts)
		}
		return IsPrimitiveConstant(e.Operand, facts)
	case *ast.BinaryExpression:
		switch e.Operator {
		case token.In, token.InstanceOf:
			return false
		case token.LogicalAnd, token.LogicalOr, token.Coalesce, token.StrictEqual, token.StrictNotEqual:
			return IsPureConstant(e.Left, facts) && IsPureConstant(e.Right, facts)
		}
		return IsPrimitiveConstant(e.Left, facts) && IsPrimitiveConstant(e.Right, facts)
	case *ast.ConditionalExpression:
		return IsPureConstant(e.Test, facts) && IsPureConstant(e.Consequent, facts) &&
			IsPureConstant(e.Alternate, facts)
	case *ast.SequenceExpression:
		return allPure(e.Sequence, facts)
	case *ast.ArrayLiteral:
		for i := range e.Value {
			if _, ok := e.Value[i].Expr.(*ast.SpreadElement); ok {
				return false
			}
		}
		return allPure(e.Value, facts)
	case *ast.ObjectLiteral:
		for _, prop := range e.Value {
			switch p := prop.Prop.(type) {
			case *ast.PropertyShort:
				if p.Initializer != nil || !IsPureConstant(&ast.Expression{Expr: p.Name}, facts) {
					return false
				}
			case *ast.PropertyKeyed:
				if p.Computed && !IsPrimitiveConstant(p.Key, facts) {
					return false
				}
				if PropNameEq(p.Key, "__proto__") || !IsPureConstant(p.Value, facts) {
					return false
				}
			default:
				return false
			}
		}
		return true
	case *ast.ClassLiteral:
		return pureClass(e, facts)
	}
	return false
}

// IsPrimitiveConstant returns true if expr is a pure constant that always
// yields a primitive value.
func IsPrimitiveConstant(expr *ast.Expression, facts Facts) bool {
	if expr == nil || expr.Expr == nil {
		return true
	}
	switch e := expr.Expr.(type) {
	case *ast.NumberLiteral, *ast.StringLiteral, *ast.BooleanLiteral, *ast.NullLiteral:
		return true
	case *ast.Identifier:
		if IsUndefined(expr) || IsNaN(expr) || IsGlobalRefTo(expr, "Infinity") {
			return true
		}
		return facts != nil && facts.PrimitiveRef(e)
	case *ast.TemplateLiteral, *ast.UnaryExpression:
		return IsPureConstant(expr, facts)
	case *ast.BinaryExpression:
		switch e.Operator {
		case token.LogicalAnd, token.LogicalOr, token.Coalesce:
			return IsPrimitiveConstant(e.Left, facts) && IsPrimitiveConstant(e.Right, facts)
		}
		return IsPureConstant(expr, facts)
	case *ast.ConditionalExpression:
		return IsPureConstant(e.Test, facts) && IsPrimitiveConstant(e.Consequent, facts) &&
			IsPrimitiveConstant(e.Alternate, facts)
	case *ast.SequenceExpression:
		n := len(e.Sequence)
		return n > 0 && allPure(e.Sequence[:n-1], facts) && IsPrimitiveConstant(&e.Sequence[n-1], facts)
	}
	return false
}

func allPure(list ast.Expressions, facts Facts) bool {
	for i := range list {
		if !IsPureConstant(&list[i], facts) {
			return false
		}
	}
	return true
}

func pureClass(c *ast.ClassLiteral, facts Facts) bool {
	if ast.HasDecorators(c) {
		return false
	}
	if c.SuperClass != nil && !IsPureConstant(c.SuperClass, facts) {
		return false
	}
	for _, elem := range c.Body {
		switch e := elem.Element.(type) {
		case *ast.MethodDefinition:
			if e.Computed && !IsPrimitiveConstant(e.Key, facts) {
				return false
			}
		case *ast.FieldDefinition:
			if e.Computed && !IsPrimitiveConstant(e.Key, facts) {
				return false
			}
			if e.Static && !IsPureConstant(e.Initializer, facts) {
				return false
			}
		default:
			return false
		}
	}
	return true
}
