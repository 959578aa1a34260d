package evaluator

import (
	"math"
	"strings"
	"unicode/utf16"

	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/ast/ext"
	"github.com/t14raptor/jsdce/token"
)

// Eval folds a constant, side effect free expression into a literal.
func Eval(n *ast.Expression) (*ast.Expression, bool) {
	v, ok := evaluate(n)
	if !ok {
		return nil, false
	}
	return toExpression(v), true
}

// EvaluateTruthy reports whether n is statically known to convert to true
// or false. The result is only known when evaluating n has no side effects.
func EvaluateTruthy(n *ast.Expression) ext.BoolValue {
	if v, ok := evaluate(n); ok {
		return ext.Known(v.bool())
	}
	return ext.AsPureBool(n)
}

func toExpression(v Value) *ast.Expression {
	switch v.kind {
	case valueNull:
		return &ast.Expression{Expr: &ast.NullLiteral{}}
	case valueBoolean:
		return &ast.Expression{Expr: &ast.BooleanLiteral{Value: v.value.(bool)}}
	case valueString:
		return &ast.Expression{Expr: &ast.StringLiteral{Value: v.value.(string)}}
	case valueNumber:
		f := v.value.(float64)
		switch {
		case math.IsNaN(f):
			return &ast.Expression{Expr: &ast.Identifier{Name: "NaN"}}
		case math.IsInf(f, 0):
			inf := &ast.Expression{Expr: &ast.Identifier{Name: "Infinity"}}
			if f < 0 {
				return negative(inf)
			}
			return inf
		case f < 0 || (f == 0 && math.Signbit(f)):
			return negative(&ast.Expression{Expr: &ast.NumberLiteral{Value: -f}})
		}
		return &ast.Expression{Expr: &ast.NumberLiteral{Value: f}}
	}
	return &ast.Expression{Expr: &ast.UnaryExpression{
		Operator: token.Void,
		Operand:  &ast.Expression{Expr: &ast.NumberLiteral{Value: 0}},
	}}
}

func negative(n *ast.Expression) *ast.Expression {
	return &ast.Expression{Expr: &ast.UnaryExpression{Operator: token.Minus, Operand: n}}
}

func evaluate(n *ast.Expression) (Value, bool) {
	if n == nil || n.Expr == nil {
		return Value{}, false
	}
	switch expr := n.Expr.(type) {
	case *ast.NumberLiteral:
		return float64Value(expr.Value), true
	case *ast.StringLiteral:
		return stringValue(expr.Value), true
	case *ast.BooleanLiteral:
		return boolValue(expr.Value), true
	case *ast.NullLiteral:
		return nullValue, true
	case *ast.Identifier:
		switch {
		case ext.IsUndefined(n):
			return undefinedValue, true
		case ext.IsNaN(n):
			return NaNValue(), true
		case ext.IsGlobalRefTo(n, "Infinity"):
			return float64Value(math.Inf(1)), true
		}
	case *ast.TemplateLiteral:
		if expr.Tag != nil {
			return Value{}, false
		}
		var sb strings.Builder
		for i, elem := range expr.Elements {
			sb.WriteString(elem.Cooked)
			if i < len(expr.Expressions) {
				v, ok := evaluate(&expr.Expressions[i])
				if !ok {
					return Value{}, false
				}
				sb.WriteString(v.string())
			}
		}
		return stringValue(sb.String()), true
	case *ast.SequenceExpression:
		if len(expr.Sequence) == 0 {
			return Value{}, false
		}
		last := len(expr.Sequence) - 1
		for i := range expr.Sequence[:last] {
			if ext.MayHaveSideEffects(&expr.Sequence[i]) {
				return Value{}, false
			}
		}
		return evaluate(&expr.Sequence[last])
	case *ast.ConditionalExpression:
		test, ok := evaluate(expr.Test)
		if !ok {
			return Value{}, false
		}
		if test.bool() {
			return evaluate(expr.Consequent)
		}
		return evaluate(expr.Alternate)
	case *ast.MemberExpression:
		if strLit, ok := expr.Object.Expr.(*ast.StringLiteral); ok && isLength(expr.Property) {
			return float64Value(float64(len(utf16.Encode([]rune(strLit.Value))))), true
		}
	case *ast.UnaryExpression:
		return evaluateUnary(expr)
	case *ast.BinaryExpression:
		return evaluateBinary(expr)
	}
	return Value{}, false
}

func isLength(p *ast.MemberProperty) bool {
	switch p := p.Prop.(type) {
	case *ast.Identifier:
		return p.Name == "length"
	case *ast.ComputedProperty:
		s, ok := p.Expr.Expr.(*ast.StringLiteral)
		return ok && s.Value == "length"
	}
	return false
}

func evaluateUnary(expr *ast.UnaryExpression) (Value, bool) {
	switch expr.Operator {
	case token.Void:
		if ext.MayHaveSideEffects(expr.Operand) {
			return Value{}, false
		}
		return undefinedValue, true
	case token.Typeof:
		switch expr.Operand.Expr.(type) {
		case *ast.FunctionLiteral, *ast.ArrowFunctionLiteral:
			return stringValue("function"), true
		case *ast.ObjectLiteral, *ast.ArrayLiteral, *ast.RegExpLiteral:
			if !ext.MayHaveSideEffects(expr.Operand) {
				return stringValue("object"), true
			}
			return Value{}, false
		}
	}

	arg, ok := evaluate(expr.Operand)
	if !ok {
		return Value{}, false
	}
	switch expr.Operator {
	case token.Not:
		return boolValue(!arg.bool()), true
	case token.Minus:
		return float64Value(-arg.float64()), true
	case token.Plus:
		return float64Value(arg.float64()), true
	case token.BitwiseNot:
		return int32Value(^toInt32(arg)), true
	case token.Typeof:
		return stringValue(arg.typeOf()), true
	}
	return Value{}, false
}

func evaluateBinary(expr *ast.BinaryExpression) (Value, bool) {
	left, ok := evaluate(expr.Left)
	if !ok {
		return Value{}, false
	}

	// The right side of a decided short circuit never runs.
	switch expr.Operator {
	case token.LogicalAnd:
		if !left.bool() {
			return left, true
		}
		return evaluate(expr.Right)
	case token.LogicalOr:
		if left.bool() {
			return left, true
		}
		return evaluate(expr.Right)
	case token.Coalesce:
		if !left.IsNull() && !left.IsUndefined() {
			return left, true
		}
		return evaluate(expr.Right)
	}

	right, ok := evaluate(expr.Right)
	if !ok {
		return Value{}, false
	}
	return calculateBinaryExpression(expr.Operator, left, right)
}

func evaluateDivide(left float64, right float64) Value {
	// IEEE 754 division matches ECMA 262 for every operand, including zeros
	// and infinities.
	return float64Value(left / right)
}

func evaluateExponent(base float64, exponent float64) Value {
	if math.IsNaN(exponent) {
		return NaNValue()
	}
	if math.Abs(base) == 1 && math.IsInf(exponent, 0) {
		return NaNValue()
	}
	return float64Value(math.Pow(base, exponent))
}

func strictEquals(left Value, right Value) bool {
	if left.kind != right.kind {
		return false
	}
	switch left.kind {
	case valueUndefined, valueNull:
		return true
	case valueNumber:
		return left.float64() == right.float64()
	}
	return left.value == right.value
}

func looseEquals(left Value, right Value) bool {
	if left.kind == right.kind {
		return strictEquals(left, right)
	}
	nullish := func(v Value) bool { return v.IsNull() || v.IsUndefined() }
	if nullish(left) || nullish(right) {
		return nullish(left) && nullish(right)
	}
	// Remaining primitives compare as numbers.
	return left.float64() == right.float64()
}

// compare implements the abstract relational comparison left < right. The
// second result is false when the comparison is undefined (NaN operands).
func compare(left Value, right Value) (less bool, ok bool) {
	if left.IsString() && right.IsString() {
		return compareUTF16(left.string(), right.string()) < 0, true
	}
	l, r := left.float64(), right.float64()
	if math.IsNaN(l) || math.IsNaN(r) {
		return false, false
	}
	return l < r, true
}

func compareUTF16(a string, b string) int {
	ua := utf16.Encode([]rune(a))
	ub := utf16.Encode([]rune(b))
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			if ua[i] < ub[i] {
				return -1
			}
			return 1
		}
	}
	return len(ua) - len(ub)
}

func calculateBinaryExpression(operator token.Token, left Value, right Value) (Value, bool) {
	switch operator {
	// Additive
	case token.Plus:
		if left.IsString() || right.IsString() {
			return stringValue(left.string() + right.string()), true
		}
		return float64Value(left.float64() + right.float64()), true
	case token.Minus:
		return float64Value(left.float64() - right.float64()), true

	// Multiplicative
	case token.Multiply:
		return float64Value(left.float64() * right.float64()), true
	case token.Slash:
		return evaluateDivide(left.float64(), right.float64()), true
	case token.Remainder:
		return float64Value(math.Mod(left.float64(), right.float64())), true
	case token.Exponent:
		return evaluateExponent(left.float64(), right.float64()), true

	// Equality
	case token.StrictEqual:
		return boolValue(strictEquals(left, right)), true
	case token.StrictNotEqual:
		return boolValue(!strictEquals(left, right)), true
	case token.Equal:
		return boolValue(looseEquals(left, right)), true
	case token.NotEqual:
		return boolValue(!looseEquals(left, right)), true

	// Relational
	case token.Less:
		less, ok := compare(left, right)
		return boolValue(ok && less), true
	case token.Greater:
		less, ok := compare(right, left)
		return boolValue(ok && less), true
	case token.LessOrEqual:
		less, ok := compare(right, left)
		return boolValue(ok && !less), true
	case token.GreaterOrEqual:
		less, ok := compare(left, right)
		return boolValue(ok && !less), true

	// Bitwise
	case token.And:
		return int32Value(toInt32(left) & toInt32(right)), true
	case token.Or:
		return int32Value(toInt32(left) | toInt32(right)), true
	case token.ExclusiveOr:
		return int32Value(toInt32(left) ^ toInt32(right)), true

	// Shift
	// (Masking of 0x1f is to restrict the shift to a maximum of 31 places)
	case token.ShiftLeft:
		return int32Value(toInt32(left) << (toUint32(right) & 0x1f)), true
	case token.ShiftRight:
		return int32Value(toInt32(left) >> (toUint32(right) & 0x1f)), true
	case token.UnsignedShiftRight:
		// Shifting an unsigned integer is a logical shift
		return uint32Value(toUint32(left) >> (toUint32(right) & 0x1f)), true
	}

	return Value{}, false
}
