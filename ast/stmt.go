package ast

type (
	Statements []Statement

	// Statement is a replaceable statement slot.
	Statement struct {
		Stmt `optional:"true"`
	}

	// All statement nodes implement the Stmt interface.
	Stmt interface {
		VisitableNode
		_stmt()
	}

	BlockStatement struct {
		List Statements
	}

	BreakStatement struct {
		Label *Identifier `optional:"true"`
	}

	ContinueStatement struct {
		Label *Identifier `optional:"true"`
	}

	CaseStatement struct {
		Test       *Expression `optional:"true"`
		Consequent Statements
	}

	CatchStatement struct {
		Parameter *BindingTarget `optional:"true"`
		Body      *BlockStatement
	}

	DebuggerStatement struct{}

	DoWhileStatement struct {
		Test *Expression
		Body *Statement
	}

	EmptyStatement struct{}

	ExpressionStatement struct {
		Expression *Expression
	}

	IfStatement struct {
		Test       *Expression
		Consequent *Statement
		Alternate  *Statement `optional:"true"`
	}

	LabelledStatement struct {
		Label     *Identifier
		Statement *Statement
	}

	ReturnStatement struct {
		Argument *Expression `optional:"true"`
	}

	SwitchStatement struct {
		Discriminant *Expression
		Body         []CaseStatement
	}

	ThrowStatement struct {
		Argument *Expression
	}

	TryStatement struct {
		Body    *BlockStatement
		Catch   *CatchStatement `optional:"true"`
		Finally *BlockStatement `optional:"true"`
	}

	WhileStatement struct {
		Test *Expression
		Body *Statement
	}

	ForStatement struct {
		Initializer *ForLoopInitializer `optional:"true"`
		Test        *Expression         `optional:"true"`
		Update      *Expression         `optional:"true"`
		Body        *Statement
	}

	ForLoopInitializer struct {
		Initializer ForLoopInit
	}

	// ForLoopInit is either a *VariableDeclaration or an *Expression.
	ForLoopInit interface {
		VisitableNode
		_forLoopInitializer()
	}

	ForInStatement struct {
		Into   *ForInto
		Source *Expression
		Body   *Statement
	}

	ForOfStatement struct {
		Into   *ForInto
		Source *Expression
		Body   *Statement
		Await  bool
	}

	ForInto struct {
		Into
	}

	// Into is either a *VariableDeclaration or an *Expression.
	Into interface {
		VisitableNode
		_forInto()
	}
)

func (*VariableDeclaration) _forLoopInitializer() {}
func (*Expression) _forLoopInitializer()          {}

func (*VariableDeclaration) _forInto() {}
func (*Expression) _forInto()          {}

func (*BlockStatement) _stmt()           {}
func (*BreakStatement) _stmt()           {}
func (*ContinueStatement) _stmt()        {}
func (*DebuggerStatement) _stmt()        {}
func (*DoWhileStatement) _stmt()         {}
func (*EmptyStatement) _stmt()           {}
func (*ExpressionStatement) _stmt()      {}
func (*ForInStatement) _stmt()           {}
func (*ForOfStatement) _stmt()           {}
func (*ForStatement) _stmt()             {}
func (*IfStatement) _stmt()              {}
func (*LabelledStatement) _stmt()        {}
func (*ReturnStatement) _stmt()          {}
func (*SwitchStatement) _stmt()          {}
func (*ThrowStatement) _stmt()           {}
func (*TryStatement) _stmt()             {}
func (*WhileStatement) _stmt()           {}
func (*VariableDeclaration) _stmt()      {}
func (*FunctionDeclaration) _stmt()      {}
func (*ClassDeclaration) _stmt()         {}
func (*ImportDeclaration) _stmt()        {}
func (*ExportDeclaration) _stmt()        {}
func (*ExportDefaultDeclaration) _stmt() {}
