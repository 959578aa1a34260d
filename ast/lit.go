package ast

type (
	BooleanLiteral struct {
		Value bool
	}

	NullLiteral struct{}

	NumberLiteral struct {
		// Note: NaN should not be stored here, use an identifier instead.
		Value float64

		Raw *string
	}

	RegExpLiteral struct {
		Pattern string
		Flags   string
	}

	StringLiteral struct {
		Value string

		Raw *string
	}
)
