package ext

type (
	Type interface {
		_type()
	}

	UndefinedType struct{}
	NullType      struct{}
	BoolType      struct{}
	StringType    struct{}
	SymbolType    struct{}
	NumberType    struct{}
	ObjectType    struct{}
)

// Value is a statically computed value which may be unknown.
type Value[T any] struct {
	val     T
	unknown bool
}

func Known[T any](v T) Value[T] {
	return Value[T]{val: v}
}

func Unknown[T any]() Value[T] {
	return Value[T]{unknown: true}
}

func (v Value[T]) Value() T {
	return v.val
}

func (v Value[T]) Unknown() bool {
	return v.unknown
}

// BoolValue is the tri-state result of a truthiness check.
type BoolValue = Value[bool]

var (
	True  = Known(true)
	False = Known(false)
)

// Not negates a known value.
func Not(v BoolValue) BoolValue {
	if v.Unknown() {
		return v
	}
	return Known(!v.Value())
}

// IsTrue returns true if v is known to be true.
func IsTrue(v BoolValue) bool {
	return !v.unknown && v.val
}

// IsFalse returns true if v is known to be false.
func IsFalse(v BoolValue) bool {
	return !v.unknown && !v.val
}

func (UndefinedType) _type() {}
func (NullType) _type()      {}
func (BoolType) _type()      {}
func (StringType) _type()    {}
func (SymbolType) _type()    {}
func (NumberType) _type()    {}
func (ObjectType) _type()    {}
