package ext

import (
	"math"
	"strconv"
	"strings"

	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/token"
)

// classHasSideEffect returns true if defining the class may have side
// effects.
func classHasSideEffect(class *ast.ClassLiteral) bool {
	if ast.HasDecorators(class) {
		return true
	}
	if class.SuperClass != nil && MayHaveSideEffects(class.SuperClass) {
		return true
	}
	for _, elem := range class.Body {
		switch e := elem.Element.(type) {
		case *ast.MethodDefinition:
			if e.Computed && MayHaveSideEffects(e.Key) {
				return true
			}
		case *ast.FieldDefinition:
			if e.Computed && MayHaveSideEffects(e.Key) {
				return true
			}
			if e.Static && MayHaveSideEffects(e.Initializer) {
				return true
			}
		case *ast.ClassStaticBlock:
			for _, stmt := range e.Block.List {
				if MayHaveSideEffectsStmt(stmt) {
					return true
				}
			}
		}
	}
	return false
}

// mayBeStr returns if the node is possibly a string.
func mayBeStr(ty Type) bool {
	switch ty.(type) {
	case BoolType, NullType, NumberType, UndefinedType:
		return false
	}
	return true
}

// numFromStr converts a string to a number.
func numFromStr(str string) Value[float64] {
	if strings.ContainsRune(str, '\u000B') {
		return Unknown[float64]()
	}
	s := strings.TrimSpace(str)
	if s == "" {
		return Known(0.0)
	}
	if len(s) >= 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			if n, err := strconv.ParseUint(s[2:], base, 64); err == nil {
				return Known(float64(n))
			}
			return Known(math.NaN())
		}
	}
	if (strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+")) &&
		(strings.HasPrefix(s[1:], "0x") || strings.HasPrefix(s[1:], "0X")) {
		return Unknown[float64]()
	}
	switch s {
	case "Infinity", "+Infinity":
		return Known(math.Inf(1))
	case "-Infinity":
		return Known(math.Inf(-1))
	}
	// ParseFloat accepts spellings JavaScript does not, like "inf" and "1_0".
	if strings.ContainsAny(s, "_iInN") {
		return Known(math.NaN())
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return Known(n)
	}
	return Known(math.NaN())
}

// PropNameEq returns true if the property name of the expression is equal to key.
func PropNameEq(p *ast.Expression, key string) bool {
	switch e := p.Expr.(type) {
	case *ast.Identifier:
		return e.Name == key
	case *ast.StringLiteral:
		return e.Value == key
	case *ast.NumberLiteral:
		return NumberToString(e.Value) == key
	}
	return false
}

// Negate returns the logical negation of a test expression. A test that is
// already a negation is unwrapped, which keeps its truthiness but not its
// value, so the result is only valid in a boolean context.
func Negate(expr *ast.Expression) *ast.Expression {
	if u, ok := expr.Expr.(*ast.UnaryExpression); ok && u.Operator == token.Not {
		return u.Operand
	}
	return &ast.Expression{Expr: &ast.UnaryExpression{Operator: token.Not, Operand: expr}}
}
