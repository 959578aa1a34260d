package evaluator

import (
	"math"
	"strconv"
	"strings"

	"github.com/t14raptor/jsdce/ast/ext"
)

const builtinStringTrimWhitespace = "\u0009\u000A\u000B\u000C\u000D\u0020\u00A0\u1680\u180E\u2000\u2001\u2002\u2003\u2004\u2005\u2006\u2007\u2008\u2009\u200A\u2028\u2029\u202F\u205F\u3000\uFEFF"

func parseNumber(value string) float64 {
	value = strings.Trim(value, builtinStringTrimWhitespace)
	if value == "" {
		return 0
	}

	switch value {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(value) > 2 && value[0] == '0' {
		base := 0
		switch value[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			number, err := strconv.ParseUint(value[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(number)
		}
	}

	// ParseFloat accepts "inf", "nan", underscores and hex floats.
	if strings.ContainsAny(value, "_iInNxXpP") {
		return math.NaN()
	}
	number, err := strconv.ParseFloat(value, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return number
		}
		return math.NaN()
	}
	return number
}

type valueKind int

const (
	valueUndefined valueKind = iota
	valueNull
	valueNumber
	valueString
	valueBoolean
)

var (
	undefinedValue = Value{kind: valueUndefined}
	nullValue      = Value{kind: valueNull}
	falseValue     = Value{kind: valueBoolean, value: false}
	trueValue      = Value{kind: valueBoolean, value: true}
)

// Value is the representation of a primitive JavaScript value.
type Value struct {
	value any
	kind  valueKind
}

func (v Value) string() string {
	switch v.kind {
	case valueUndefined:
		return "undefined"
	case valueNull:
		return "null"
	case valueBoolean:
		return strconv.FormatBool(v.value.(bool))
	case valueNumber:
		return ext.NumberToString(v.value.(float64))
	}
	return v.value.(string)
}

func (v Value) float64() float64 {
	switch v.kind {
	case valueUndefined:
		return math.NaN()
	case valueNull:
		return 0
	case valueBoolean:
		if v.value.(bool) {
			return 1
		}
		return 0
	case valueNumber:
		return v.value.(float64)
	}
	return parseNumber(v.value.(string))
}

func (v Value) bool() bool {
	switch v.kind {
	case valueUndefined, valueNull:
		return false
	case valueBoolean:
		return v.value.(bool)
	case valueNumber:
		f := v.value.(float64)
		return !(math.IsNaN(f) || f == 0)
	}
	return v.value.(string) != ""
}

// typeOf returns the result of the typeof operator.
func (v Value) typeOf() string {
	switch v.kind {
	case valueUndefined:
		return "undefined"
	case valueNull:
		return "object"
	case valueBoolean:
		return "boolean"
	case valueNumber:
		return "number"
	}
	return "string"
}

// IsBoolean will return true if value is a boolean (primitive).
func (v Value) IsBoolean() bool {
	return v.kind == valueBoolean
}

// IsNumber will return true if value is a number (primitive).
func (v Value) IsNumber() bool {
	return v.kind == valueNumber
}

// IsString will return true if value is a string (primitive).
func (v Value) IsString() bool {
	return v.kind == valueString
}

// IsNull will return true if the value is null, and false otherwise.
func (v Value) IsNull() bool {
	return v.kind == valueNull
}

// IsUndefined will return true if the value is undefined, and false otherwise.
func (v Value) IsUndefined() bool {
	return v.kind == valueUndefined
}

// ECMA 262: 7.1.6.
func toInt32(value Value) int32 {
	return int32(toUint32(value))
}

// ECMA 262: 7.1.7.
func toUint32(value Value) uint32 {
	f := value.float64()
	if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return 0
	}
	f = math.Mod(math.Trunc(f), 1<<32)
	if f < 0 {
		f += 1 << 32
	}
	return uint32(f)
}

// NaNValue will return a value representing NaN.
func NaNValue() Value {
	return Value{kind: valueNumber, value: math.NaN()}
}

func stringValue(value string) Value {
	return Value{kind: valueString, value: value}
}

func float64Value(value float64) Value {
	return Value{kind: valueNumber, value: value}
}

func boolValue(value bool) Value {
	if value {
		return trueValue
	}
	return falseValue
}

func int32Value(value int32) Value {
	return float64Value(float64(value))
}

func uint32Value(value uint32) Value {
	return float64Value(float64(value))
}
