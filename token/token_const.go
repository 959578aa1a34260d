package token

const (
	Undetermined Token = iota

	Illegal
	Eof

	String
	Number
	RegExp
	Template

	Plus      // +
	Minus     // -
	Multiply  // *
	Exponent  // **
	Slash     // /
	Remainder // %

	And                // &
	Or                 // |
	ExclusiveOr        // ^
	ShiftLeft          // <<
	ShiftRight         // >>
	UnsignedShiftRight // >>>

	AddAssign                // +=
	SubtractAssign           // -=
	MultiplyAssign           // *=
	ExponentAssign           // **=
	QuotientAssign           // /=
	RemainderAssign          // %=
	AndAssign                // &=
	OrAssign                 // |=
	ExclusiveOrAssign        // ^=
	ShiftLeftAssign          // <<=
	ShiftRightAssign         // >>=
	UnsignedShiftRightAssign // >>>=
	LogicalAndAssign         // &&=
	LogicalOrAssign          // ||=
	CoalesceAssign           // ??=

	LogicalAnd // &&
	LogicalOr  // ||
	Coalesce   // ??
	Increment  // ++
	Decrement  // --

	Equal       // ==
	StrictEqual // ===
	Less        // <
	Greater     // >
	Assign      // =
	Not         // !

	BitwiseNot // ~

	NotEqual       // !=
	StrictNotEqual // !==
	LessOrEqual    // <=
	GreaterOrEqual // >=

	LeftParenthesis // (
	LeftBracket     // [
	LeftBrace       // {
	Comma           // ,
	Period          // .

	RightParenthesis // )
	RightBracket     // ]
	RightBrace       // }
	Semicolon        // ;
	Colon            // :
	QuestionMark     // ?
	QuestionDot      // ?.
	Arrow            // =>
	Ellipsis         // ...
	At               // @

	Identifier

	Boolean
	Null

	If
	In
	Do

	Var
	For
	New
	Try

	This
	Else
	Case
	Void
	With

	Const
	While
	Break
	Catch
	Throw
	Class
	Super
	Await
	Yield

	Return
	Typeof
	Delete
	Switch
	Export
	Import

	Default
	Finally
	Extends

	Function
	Continue
	Debugger

	InstanceOf

	// Let is never produced by the lexer, let is contextual and lexes as an
	// identifier. It marks let declarations in the tree.
	Let
)

var token2string = [...]string{
	Illegal:                  "Illegal",
	Eof:                      "Eof",
	String:                   "String",
	Number:                   "Number",
	RegExp:                   "RegExp",
	Template:                 "Template",
	Boolean:                  "Boolean",
	Null:                     "Null",
	Identifier:               "Identifier",
	Plus:                     "+",
	Minus:                    "-",
	Exponent:                 "**",
	Multiply:                 "*",
	Slash:                    "/",
	Remainder:                "%",
	And:                      "&",
	Or:                       "|",
	ExclusiveOr:              "^",
	ShiftLeft:                "<<",
	ShiftRight:               ">>",
	UnsignedShiftRight:       ">>>",
	AddAssign:                "+=",
	SubtractAssign:           "-=",
	MultiplyAssign:           "*=",
	ExponentAssign:           "**=",
	QuotientAssign:           "/=",
	RemainderAssign:          "%=",
	AndAssign:                "&=",
	OrAssign:                 "|=",
	ExclusiveOrAssign:        "^=",
	ShiftLeftAssign:          "<<=",
	ShiftRightAssign:         ">>=",
	UnsignedShiftRightAssign: ">>>=",
	LogicalAndAssign:         "&&=",
	LogicalOrAssign:          "||=",
	CoalesceAssign:           "??=",
	LogicalAnd:               "&&",
	LogicalOr:                "||",
	Coalesce:                 "??",
	Increment:                "++",
	Decrement:                "--",
	Equal:                    "==",
	StrictEqual:              "===",
	Less:                     "<",
	Greater:                  ">",
	Assign:                   "=",
	Not:                      "!",
	BitwiseNot:               "~",
	NotEqual:                 "!=",
	StrictNotEqual:           "!==",
	LessOrEqual:              "<=",
	GreaterOrEqual:           ">=",
	LeftParenthesis:          "(",
	LeftBracket:              "[",
	LeftBrace:                "{",
	Comma:                    ",",
	Period:                   ".",
	RightParenthesis:         ")",
	RightBracket:             "]",
	RightBrace:               "}",
	Semicolon:                ";",
	Colon:                    ":",
	QuestionMark:             "?",
	QuestionDot:              "?.",
	Arrow:                    "=>",
	Ellipsis:                 "...",
	At:                       "@",
	If:                       "if",
	In:                       "in",
	Do:                       "do",
	Var:                      "var",
	For:                      "for",
	New:                      "new",
	Try:                      "try",
	This:                     "this",
	Else:                     "else",
	Case:                     "case",
	Void:                     "void",
	With:                     "with",
	Const:                    "const",
	While:                    "while",
	Break:                    "break",
	Catch:                    "catch",
	Throw:                    "throw",
	Class:                    "class",
	Super:                    "super",
	Await:                    "await",
	Yield:                    "yield",
	Return:                   "return",
	Typeof:                   "typeof",
	Delete:                   "delete",
	Switch:                   "switch",
	Export:                   "export",
	Import:                   "import",
	Default:                  "default",
	Finally:                  "finally",
	Extends:                  "extends",
	Function:                 "function",
	Continue:                 "continue",
	Debugger:                 "debugger",
	InstanceOf:               "instanceof",
	Let:                      "let",
}

var keywordTable = map[string]Token{
	"if":         If,
	"in":         In,
	"do":         Do,
	"var":        Var,
	"for":        For,
	"new":        New,
	"try":        Try,
	"this":       This,
	"else":       Else,
	"case":       Case,
	"void":       Void,
	"with":       With,
	"const":      Const,
	"while":      While,
	"break":      Break,
	"catch":      Catch,
	"throw":      Throw,
	"class":      Class,
	"super":      Super,
	"await":      Await,
	"yield":      Yield,
	"return":     Return,
	"typeof":     Typeof,
	"delete":     Delete,
	"switch":     Switch,
	"export":     Export,
	"import":     Import,
	"default":    Default,
	"finally":    Finally,
	"extends":    Extends,
	"function":   Function,
	"continue":   Continue,
	"debugger":   Debugger,
	"instanceof": InstanceOf,
	"true":       Boolean,
	"false":      Boolean,
	"null":       Null,
}
