package ext

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/resolver"
	"github.com/t14raptor/jsdce/token"
)

// IsNumber returns true if the expression is a number.
func IsNumber(n *ast.Expression) bool {
	_, ok := n.Expr.(*ast.NumberLiteral)
	return ok
}

// IsStr returns true if the expression is a string.
func IsStr(n *ast.Expression) bool {
	switch n := n.Expr.(type) {
	case *ast.StringLiteral:
		return true
	case *ast.TemplateLiteral:
		return n.Tag == nil
	case *ast.UnaryExpression:
		if n.Operator == token.Typeof {
			return true
		}
	case *ast.BinaryExpression:
		if n.Operator == token.Plus {
			return IsStr(n.Left) || IsStr(n.Right)
		}
	case *ast.AssignExpression:
		if n.Operator == token.Assign || n.Operator == token.AddAssign {
			return IsStr(n.Right)
		}
	case *ast.SequenceExpression:
		if len(n.Sequence) == 0 {
			return false
		}
		return IsStr(&n.Sequence[len(n.Sequence)-1])
	case *ast.ConditionalExpression:
		return IsStr(n.Consequent) && IsStr(n.Alternate)
	}
	return false
}

// IsArrayLiteral returns true if the expression is an array literal.
func IsArrayLiteral(n *ast.Expression) bool {
	_, ok := n.Expr.(*ast.ArrayLiteral)
	return ok
}

// IsNaN returns true if expr is a global reference to NaN.
func IsNaN(expr *ast.Expression) bool {
	return IsGlobalRefTo(expr, "NaN")
}

// IsUndefined returns true if expr is a global reference to undefined.
func IsUndefined(expr *ast.Expression) bool {
	return IsGlobalRefTo(expr, "undefined")
}

// IsVoid returns true if expr is a void operator.
func IsVoid(expr *ast.Expression) bool {
	if unary, ok := expr.Expr.(*ast.UnaryExpression); ok {
		return unary.Operator == token.Void
	}
	return false
}

// IsGlobalRefTo returns true if id references a global object.
func IsGlobalRefTo(expr *ast.Expression, id string) bool {
	if ident, ok := expr.Expr.(*ast.Identifier); ok {
		return ident.Name == id && ident.ScopeContext == resolver.UnresolvedMark
	}
	return false
}

// AsPureBool gets the boolean value if it does not have any side effects.
func AsPureBool(expr *ast.Expression) BoolValue {
	if v, pure := CastToBool(expr); pure {
		return v
	}
	return Unknown[bool]()
}

// CastToBool emulates the Boolean() JavaScript cast function.
func CastToBool(expr *ast.Expression) (value BoolValue, pure bool) {
	if IsUndefined(expr) || IsNaN(expr) {
		return False, true
	}
	if IsGlobalRefTo(expr, "Infinity") {
		return True, true
	}

	value = Unknown[bool]()
	switch e := expr.Expr.(type) {
	case *ast.AssignExpression:
		if e.Operator == token.Assign {
			v, _ := CastToBool(e.Right)
			return v, false
		}
	case *ast.UnaryExpression:
		switch e.Operator {
		case token.Minus:
			n := AsPureNumber(e.Operand)
			if n.Unknown() {
				return Unknown[bool](), false
			}
			value = Known(!(math.IsNaN(n.Value()) || n.Value() == 0))
		case token.Not:
			b, pure := CastToBool(e.Operand)
			return Not(b), pure
		case token.Void:
			value = False
		case token.Typeof:
			// typeof always yields a non-empty string.
			value = True
		}
	case *ast.SequenceExpression:
		if len(e.Sequence) != 0 {
			value, _ = CastToBool(&e.Sequence[len(e.Sequence)-1])
		}
	case *ast.BinaryExpression:
		switch e.Operator {
		case token.Minus:
			nl, pl := CastToNumber(e.Left)
			nr, pr := CastToNumber(e.Right)
			if nl.Unknown() || nr.Unknown() {
				return Unknown[bool](), false
			}
			n := nl.Value() - nr.Value()
			return Known(!(math.IsNaN(n) || n == 0)), pl && pr
		case token.Slash:
			nl := AsPureNumber(e.Left)
			nr := AsPureNumber(e.Right)
			if !nl.Unknown() && !nr.Unknown() {
				n := nl.Value() / nr.Value()
				return Known(!(math.IsNaN(n) || n == 0)), true
			}
		case token.LogicalOr:
			lv, lp := CastToBool(e.Left)
			if IsTrue(lv) {
				return lv, lp
			}
			rv, rp := CastToBool(e.Right)
			if IsFalse(lv) {
				return rv, lp && rp
			}
			if IsTrue(rv) {
				return rv, false
			}
		case token.LogicalAnd:
			lv, lp := CastToBool(e.Left)
			if IsFalse(lv) {
				return lv, lp
			}
			rv, rp := CastToBool(e.Right)
			if IsTrue(lv) {
				return rv, lp && rp
			}
			if IsFalse(rv) {
				return rv, false
			}
		case token.Plus:
			if strLit, ok := e.Left.Expr.(*ast.StringLiteral); ok && strLit.Value != "" {
				return True, !MayHaveSideEffects(e.Right)
			}
			if strLit, ok := e.Right.Expr.(*ast.StringLiteral); ok && strLit.Value != "" {
				return True, !MayHaveSideEffects(e.Left)
			}
		}
	case *ast.FunctionLiteral, *ast.ArrowFunctionLiteral, *ast.ClassLiteral,
		*ast.NewExpression, *ast.ArrayLiteral, *ast.ObjectLiteral:
		value = True
	case *ast.TemplateLiteral:
		if s, ok := AsPureString(expr); ok {
			return Known(s != ""), true
		}
	case *ast.NumberLiteral:
		return Known(!(e.Value == 0.0 || math.IsNaN(e.Value))), true
	case *ast.BooleanLiteral:
		return Known(e.Value), true
	case *ast.StringLiteral:
		return Known(e.Value != ""), true
	case *ast.NullLiteral:
		return False, true
	case *ast.RegExpLiteral:
		return True, true
	}

	return value, !MayHaveSideEffects(expr)
}

// AsPureNumber gets the number value if it does not have any side effects.
func AsPureNumber(expr *ast.Expression) Value[float64] {
	if v, pure := CastToNumber(expr); pure {
		return v
	}
	return Unknown[float64]()
}

// CastToNumber emulates the Number() JavaScript cast function.
func CastToNumber(expr *ast.Expression) (value Value[float64], pure bool) {
	switch e := expr.Expr.(type) {
	case *ast.BooleanLiteral:
		if e.Value {
			return Known(1.0), true
		}
		return Known(0.0), true
	case *ast.NumberLiteral:
		return Known(e.Value), true
	case *ast.StringLiteral:
		return numFromStr(e.Value), true
	case *ast.NullLiteral:
		return Known(0.0), true
	case *ast.ArrayLiteral:
		s, ok := AsPureString(expr)
		if !ok {
			return Unknown[float64](), false
		}
		return numFromStr(s), true
	case *ast.Identifier:
		if e.ScopeContext == resolver.UnresolvedMark {
			switch e.Name {
			case "undefined", "NaN":
				return Known(math.NaN()), true
			case "Infinity":
				return Known(math.Inf(1)), true
			}
		}
		return Unknown[float64](), true
	case *ast.UnaryExpression:
		switch e.Operator {
		case token.Minus:
			n, pure := CastToNumber(e.Operand)
			if !n.Unknown() && pure {
				return Known(-n.Value()), true
			}
			return Unknown[float64](), false
		case token.Not:
			b, pure := CastToBool(e.Operand)
			if !b.Unknown() && pure {
				if b.Value() {
					return Known(0.0), true
				}
				return Known(1.0), true
			}
			return Unknown[float64](), false
		case token.Void:
			return Known(math.NaN()), !MayHaveSideEffects(e.Operand)
		}
	case *ast.TemplateLiteral:
		if s, ok := AsPureString(expr); ok {
			return numFromStr(s), true
		}
	case *ast.SequenceExpression:
		if len(e.Sequence) != 0 {
			v, _ := CastToNumber(&e.Sequence[len(e.Sequence)-1])
			return v, false
		}
	}
	return Unknown[float64](), false
}

// AsPureString gets the string value if it does not have any side effects.
func AsPureString(expr *ast.Expression) (value string, ok bool) {
	objectToStr := func(name string) string {
		return fmt.Sprintf("[object %s]", name)
	}
	funcToStr := func(name string) string {
		return fmt.Sprintf("function %s() { [native code] }", name)
	}

	switch e := expr.Expr.(type) {
	case *ast.StringLiteral:
		return e.Value, true
	case *ast.NumberLiteral:
		return NumberToString(e.Value), true
	case *ast.BooleanLiteral:
		return strconv.FormatBool(e.Value), true
	case *ast.NullLiteral:
		return "null", true
	case *ast.TemplateLiteral:
		if e.Tag != nil {
			return "", false
		}
		var sb strings.Builder
		for i, elem := range e.Elements {
			sb.WriteString(elem.Cooked)
			if i < len(e.Expressions) {
				s, ok := AsPureString(&e.Expressions[i])
				if !ok {
					return "", false
				}
				sb.WriteString(s)
			}
		}
		return sb.String(), true
	case *ast.Identifier:
		if e.ScopeContext != resolver.UnresolvedMark {
			return "", false
		}
		switch e.Name {
		case "undefined", "Infinity", "NaN":
			return e.Name, true
		case "Math", "JSON":
			return objectToStr(e.Name), true
		case "Date":
			return funcToStr(e.Name), true
		}
	case *ast.UnaryExpression:
		switch e.Operator {
		case token.Void:
			if !MayHaveSideEffects(e.Operand) {
				return "undefined", true
			}
		case token.Not:
			if b := AsPureBool(e.Operand); !b.Unknown() {
				return strconv.FormatBool(!b.Value()), true
			}
		}
	case *ast.ArrayLiteral:
		var sb strings.Builder
		for idx, elem := range e.Value {
			if idx > 0 {
				sb.WriteString(",")
			}
			// Holes, null and undefined join as the empty string.
			if elem.Expr == nil || IsUndefined(&elem) {
				continue
			}
			switch el := elem.Expr.(type) {
			case *ast.NullLiteral:
				continue
			case *ast.UnaryExpression:
				if el.Operator == token.Void && !MayHaveSideEffects(el.Operand) {
					continue
				}
			}
			s, ok := AsPureString(&elem)
			if !ok {
				return "", false
			}
			sb.WriteString(s)
		}
		return sb.String(), true
	case *ast.MemberExpression:
		name, ok := memberName(e)
		if !ok {
			return "", false
		}
		switch obj := e.Object.Expr.(type) {
		case *ast.Identifier:
			if obj.ScopeContext != resolver.UnresolvedMark {
				return "", false
			}
			switch obj.Name {
			case "Math":
				if slices.Contains(mathSymbols, name) {
					return funcToStr(name), true
				}
			case "JSON":
				if name == "parse" || name == "stringify" {
					return funcToStr(name), true
				}
			case "Date":
				if name == "now" || name == "parse" || name == "UTC" {
					return funcToStr(name), true
				}
			}
		case *ast.StringLiteral:
			if name != "length" && IsStringSymbol(name) {
				return funcToStr(name), true
			}
		case *ast.NumberLiteral:
			if IsNumberSymbol(name) {
				return funcToStr(name), true
			}
		case *ast.BooleanLiteral:
			if IsBooleanSymbol(name) {
				return funcToStr(name), true
			}
		case *ast.ArrayLiteral:
			if name != "length" && IsArraySymbol(name) {
				return funcToStr(name), true
			}
		case *ast.ObjectLiteral:
			if name != "__proto__" && IsObjectSymbol(name) {
				return funcToStr(name), true
			}
		}
	}
	return "", false
}

// NumberToString formats n the way JavaScript's String(n) does for the
// common cases.
func NumberToString(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}
	abs := math.Abs(n)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(n, 'e', -1, 64)
		// Go writes e+21 and e-07, JavaScript e+21 and e-7.
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[0]
		exp = strings.TrimLeft(exp[1:], "0")
		return mant + "e" + string(sign) + exp
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// memberName returns the static property name of a member expression.
func memberName(e *ast.MemberExpression) (string, bool) {
	switch p := e.Property.Prop.(type) {
	case *ast.Identifier:
		return p.Name, true
	case *ast.ComputedProperty:
		if s, ok := p.Expr.Expr.(*ast.StringLiteral); ok {
			return s.Value, true
		}
	}
	return "", false
}

// GetType returns the type of the expression.
func GetType(expr *ast.Expression) (typ Type, ok bool) {
	switch e := expr.Expr.(type) {
	case *ast.AssignExpression:
		switch e.Operator {
		case token.Assign:
			return GetType(e.Right)
		case token.AddAssign:
			rt, rok := GetType(e.Right)
			if rok && rt == (StringType{}) {
				return StringType{}, true
			}
		case token.AndAssign, token.ExclusiveOrAssign, token.OrAssign,
			token.ShiftLeftAssign, token.ShiftRightAssign, token.UnsignedShiftRightAssign,
			token.SubtractAssign, token.MultiplyAssign, token.ExponentAssign, token.QuotientAssign, token.RemainderAssign:
			return NumberType{}, true
		}
	case *ast.MemberExpression:
		if name, ok := memberName(e); ok && name == "length" {
			switch obj := e.Object.Expr.(type) {
			case *ast.ArrayLiteral, *ast.StringLiteral:
				return NumberType{}, true
			case *ast.Identifier:
				if obj.Name == "arguments" {
					return NumberType{}, true
				}
			}
		}
	case *ast.SequenceExpression:
		if len(e.Sequence) != 0 {
			return GetType(&e.Sequence[len(e.Sequence)-1])
		}
	case *ast.BinaryExpression:
		switch e.Operator {
		case token.LogicalAnd, token.LogicalOr, token.Coalesce:
			lt, lok := GetType(e.Left)
			rt, rok := GetType(e.Right)
			if lok && rok && lt == rt {
				return lt, true
			}
		case token.Plus:
			rt, rok := GetType(e.Right)
			if rok && rt == (StringType{}) {
				return StringType{}, true
			}
			lt, lok := GetType(e.Left)
			if lok && lt == (StringType{}) {
				return StringType{}, true
			}
			// There are some pretty weird cases for object types:
			//   {} + [] === "0"
			//   [] + {} ==== "[object Object]"
			if rok && rt == (ObjectType{}) {
				return UndefinedType{}, false
			}
			if lok && lt == (ObjectType{}) {
				return UndefinedType{}, false
			}
			if rok && lok && !mayBeStr(lt) && !mayBeStr(rt) {
				return NumberType{}, true
			}
		case token.Or, token.ExclusiveOr, token.And, token.ShiftLeft, token.ShiftRight, token.UnsignedShiftRight,
			token.Minus, token.Multiply, token.Remainder, token.Slash, token.Exponent:
			return NumberType{}, true
		case token.Equal, token.NotEqual, token.StrictEqual, token.StrictNotEqual, token.Less, token.LessOrEqual,
			token.Greater, token.GreaterOrEqual, token.In, token.InstanceOf:
			return BoolType{}, true
		}
	case *ast.ConditionalExpression:
		ct, cok := GetType(e.Consequent)
		at, aok := GetType(e.Alternate)
		if cok && aok && ct == at {
			return ct, true
		}
	case *ast.NumberLiteral:
		return NumberType{}, true
	case *ast.UnaryExpression:
		switch e.Operator {
		case token.Minus, token.Plus, token.BitwiseNot:
			return NumberType{}, true
		case token.Not, token.Delete:
			return BoolType{}, true
		case token.Typeof:
			return StringType{}, true
		case token.Void:
			return UndefinedType{}, true
		}
	case *ast.UpdateExpression:
		return NumberType{}, true
	case *ast.BooleanLiteral:
		return BoolType{}, true
	case *ast.StringLiteral:
		return StringType{}, true
	case *ast.TemplateLiteral:
		if e.Tag == nil {
			return StringType{}, true
		}
	case *ast.NullLiteral:
		return NullType{}, true
	case *ast.FunctionLiteral, *ast.ArrowFunctionLiteral, *ast.ClassLiteral, *ast.NewExpression,
		*ast.ArrayLiteral, *ast.ObjectLiteral, *ast.RegExpLiteral:
		return ObjectType{}, true
	case *ast.Identifier:
		if IsUndefined(expr) {
			return UndefinedType{}, true
		}
		if IsNaN(expr) || IsGlobalRefTo(expr, "Infinity") {
			return NumberType{}, true
		}
	}
	return UndefinedType{}, false
}

// IsPureCallee returns true if calling the expression has no side effects
// beyond evaluating its arguments.
func IsPureCallee(expr *ast.Expression) bool {
	if IsGlobalRefTo(expr, "Date") {
		return true
	}
	switch e := expr.Expr.(type) {
	case *ast.MemberExpression:
		if IsGlobalRefTo(e.Object, "Math") {
			name, ok := memberName(e)
			return ok && name != "random" && slices.Contains(mathSymbols, name)
		}
		// Some methods of string literals are pure.
		if _, ok := e.Object.Expr.(*ast.StringLiteral); ok {
			if name, ok := memberName(e); ok && slices.Contains(pureStringMethods, name) {
				return true
			}
		}
	case *ast.FunctionLiteral:
		return len(e.ParameterList.List) == 0 && e.ParameterList.Rest == nil && len(e.Body.List) == 0
	case *ast.ArrowFunctionLiteral:
		if block, ok := e.Body.Body.(*ast.BlockStatement); ok {
			return len(e.ParameterList.List) == 0 && e.ParameterList.Rest == nil && len(block.List) == 0
		}
	}
	return false
}

// MayHaveSideEffects returns true if evaluating the expression may have
// side effects.
func MayHaveSideEffects(expr *ast.Expression) bool {
	if expr == nil || expr.Expr == nil {
		return false
	}
	switch e := expr.Expr.(type) {
	case *ast.Identifier:
		// Reading an undeclared global throws.
		if e.ScopeContext == resolver.UnresolvedMark && !slices.Contains(knownGlobals, e.Name) {
			return true
		}
		return false
	case *ast.StringLiteral, *ast.NumberLiteral, *ast.BooleanLiteral, *ast.NullLiteral, *ast.RegExpLiteral,
		*ast.ThisExpression:
		return false
	// Function expression does not have any side effect if it's not used.
	case *ast.FunctionLiteral, *ast.ArrowFunctionLiteral:
		return false
	case *ast.ClassLiteral:
		return classHasSideEffect(e)
	case *ast.ArrayLiteral:
		for i := range e.Value {
			if _, ok := e.Value[i].Expr.(*ast.SpreadElement); ok {
				return true
			}
			if MayHaveSideEffects(&e.Value[i]) {
				return true
			}
		}
		return false
	case *ast.UnaryExpression:
		if e.Operator == token.Delete {
			return true
		}
		if e.Operator == token.Typeof {
			if _, ok := e.Operand.Expr.(*ast.Identifier); ok {
				return false
			}
		}
		return MayHaveSideEffects(e.Operand)
	case *ast.BinaryExpression:
		switch e.Operator {
		case token.In, token.InstanceOf:
			// Throws if the right side is not an object.
			return true
		}
		return MayHaveSideEffects(e.Left) || MayHaveSideEffects(e.Right)
	case *ast.MemberExpression:
		switch obj := e.Object.Expr.(type) {
		case *ast.ObjectLiteral, *ast.FunctionLiteral, *ast.ArrowFunctionLiteral, *ast.ClassLiteral:
			if MayHaveSideEffects(e.Object) {
				return true
			}
			switch obj := obj.(type) {
			case *ast.ClassLiteral:
				for _, elem := range obj.Body {
					if m, ok := elem.Element.(*ast.MethodDefinition); ok && m.Static {
						if m.Kind == ast.PropertyKindGet || m.Kind == ast.PropertyKindSet {
							return true
						}
					}
				}
			case *ast.ObjectLiteral:
				for _, prop := range obj.Value {
					switch p := prop.Prop.(type) {
					case *ast.SpreadElement:
						return true
					case *ast.PropertyShort:
						if p.Name.Name == "__proto__" {
							return true
						}
					case *ast.PropertyKeyed:
						if p.Computed || PropNameEq(p.Key, "__proto__") {
							return true
						}
						if p.Kind == ast.PropertyKindGet || p.Kind == ast.PropertyKindSet {
							return true
						}
					}
				}
			}
			if c, ok := e.Property.Prop.(*ast.ComputedProperty); ok {
				return MayHaveSideEffects(c.Expr)
			}
			return false
		}
	case *ast.TemplateLiteral:
		if e.Tag != nil {
			return true
		}
		for i := range e.Expressions {
			if MayHaveSideEffects(&e.Expressions[i]) {
				return true
			}
		}
		return false
	case *ast.CallExpression:
		if IsPureCallee(e.Callee) {
			for i := range e.ArgumentList {
				if MayHaveSideEffects(&e.ArgumentList[i]) {
					return true
				}
			}
			return false
		}
	case *ast.SequenceExpression:
		for i := range e.Sequence {
			if MayHaveSideEffects(&e.Sequence[i]) {
				return true
			}
		}
		return false
	case *ast.ConditionalExpression:
		return MayHaveSideEffects(e.Test) || MayHaveSideEffects(e.Consequent) || MayHaveSideEffects(e.Alternate)
	case *ast.ObjectLiteral:
		for _, prop := range e.Value {
			switch p := prop.Prop.(type) {
			case *ast.SpreadElement:
				return true
			case *ast.PropertyShort:
				if MayHaveSideEffects(&ast.Expression{Expr: p.Name}) {
					return true
				}
			case *ast.PropertyKeyed:
				if p.Computed && MayHaveSideEffects(p.Key) {
					return true
				}
				if MayHaveSideEffects(p.Value) {
					return true
				}
			}
		}
		return false
	}
	return true
}
