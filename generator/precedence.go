package generator

import (
	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/token"
)

const (
	precSequence    = 0
	precAssign      = 1
	precConditional = 2
	// Binary operators take precBinary plus their token precedence, from
	// 3 for ?? to 14 for **.
	precBinary  = 2
	precUnary   = 15
	precPostfix = 16
	precCall    = 17
	precPrimary = 18
)

func binaryPrecedence(op token.Token) int {
	return precBinary + op.Precedence(true)
}

// precedence returns the binding strength of an expression.
func precedence(e ast.Expr) int {
	switch e := e.(type) {
	case *ast.SequenceExpression:
		return precSequence
	case *ast.AssignExpression, *ast.ArrowFunctionLiteral, *ast.YieldExpression, *ast.SpreadElement:
		return precAssign
	case *ast.ConditionalExpression:
		return precConditional
	case *ast.BinaryExpression:
		return binaryPrecedence(e.Operator)
	case *ast.UnaryExpression, *ast.AwaitExpression:
		return precUnary
	case *ast.UpdateExpression:
		if e.Postfix {
			return precPostfix
		}
		return precUnary
	case *ast.NumberLiteral:
		if e.Value < 0 {
			return precUnary
		}
	case *ast.CallExpression, *ast.MemberExpression, *ast.NewExpression:
		return precCall
	case *ast.TemplateLiteral:
		if e.Tag != nil {
			return precCall
		}
	}
	return precPrimary
}

// startsWithBrace returns true if printing e would begin with a token that
// a statement cannot start with: {, function or class.
func startsWithBrace(e ast.Expr) bool {
	for {
		switch n := e.(type) {
		case *ast.ObjectLiteral, *ast.FunctionLiteral, *ast.ClassLiteral:
			return true
		case *ast.BinaryExpression:
			e = n.Left.Expr
		case *ast.AssignExpression:
			e = n.Left.Expr
		case *ast.ConditionalExpression:
			e = n.Test.Expr
		case *ast.CallExpression:
			e = n.Callee.Expr
		case *ast.MemberExpression:
			e = n.Object.Expr
		case *ast.SequenceExpression:
			if len(n.Sequence) == 0 {
				return false
			}
			e = n.Sequence[0].Expr
		case *ast.UpdateExpression:
			if !n.Postfix {
				return false
			}
			e = n.Operand.Expr
		case *ast.TemplateLiteral:
			if n.Tag == nil {
				return false
			}
			e = n.Tag.Expr
		default:
			return false
		}
	}
}
