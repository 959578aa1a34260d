package token

import (
	"strconv"
)

// Token is the set of lexical tokens in JavaScript.
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Precedence returns the binding power of a binary operator, or 0 if t is
// not one. The in operator only binds when in is true, which lets for-in
// heads stop before it.
func (t Token) Precedence(in bool) int {
	switch t {
	case Coalesce:
		return 1
	case LogicalOr:
		return 2
	case LogicalAnd:
		return 3
	case Or:
		return 4
	case ExclusiveOr:
		return 5
	case And:
		return 6
	case Equal, NotEqual, StrictEqual, StrictNotEqual:
		return 7
	case Less, Greater, LessOrEqual, GreaterOrEqual, InstanceOf:
		return 8
	case In:
		if in {
			return 8
		}
		return 0
	case ShiftLeft, ShiftRight, UnsignedShiftRight:
		return 9
	case Plus, Minus:
		return 10
	case Multiply, Slash, Remainder:
		return 11
	case Exponent:
		return 12
	}
	return 0
}

// IsLogical reports whether t is one of &&, || or ??.
func (t Token) IsLogical() bool {
	return t == LogicalAnd || t == LogicalOr || t == Coalesce
}

// IsAssign reports whether t is = or a compound assignment operator.
func (t Token) IsAssign() bool {
	return t == Assign || t >= AddAssign && t <= CoalesceAssign
}

// LiteralKeyword returns the keyword token for literal, if it is one.
// Contextual words (let, async, of, static, get, set, from, as) are not
// keywords and lex as identifiers.
func LiteralKeyword(literal string) (Token, bool) {
	tkn, exists := keywordTable[literal]
	return tkn, exists
}

// ID reports whether the token can name a property.
func ID(token Token) bool {
	return token >= Identifier
}

// Keyword reports whether the token is a reserved word.
func Keyword(token Token) bool {
	return token > Identifier
}
