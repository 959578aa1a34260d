package ast

import "github.com/t14raptor/jsdce/token"

type (
	FunctionDeclaration struct {
		Function *FunctionLiteral
	}

	ClassDeclaration struct {
		Class *ClassLiteral
	}

	VariableDeclaration struct {
		Token token.Token // Var, Let or Const
		List  VariableDeclarators
	}

	VariableDeclarators []VariableDeclarator

	VariableDeclarator struct {
		Target      *BindingTarget
		Initializer *Expression `optional:"true"`
	}

	BindingTarget struct {
		Target
	}

	// Target is an *Identifier, *ArrayPattern or *ObjectPattern.
	Target interface {
		VisitableNode
		_bindingTarget()
	}

	ArrayPattern struct {
		// A declarator with a nil Target is a hole.
		Elements VariableDeclarators
		Rest     *BindingTarget `optional:"true"`
	}

	ObjectPattern struct {
		Properties []PatternProperty
		Rest       *BindingTarget `optional:"true"`
	}

	PatternProperty struct {
		Key       *Expression
		Computed  bool
		Shorthand bool
		Value     VariableDeclarator
	}

	ImportDeclaration struct {
		Specifiers []ImportSpecifier
		Source     *StringLiteral
	}

	// ImportSpecifier binds Local to the export Imported of the source
	// module. Imported is "default" for default imports and "*" for
	// namespace imports.
	ImportSpecifier struct {
		Imported string
		Local    *Identifier
	}

	// ExportDeclaration is export <declaration>, export { a as b } or a
	// re-export from Source.
	ExportDeclaration struct {
		Declaration *Statement `optional:"true"`
		Specifiers  []ExportSpecifier
		Source      *StringLiteral `optional:"true"`
		Namespace   bool // export * from Source
	}

	// ExportSpecifier exports Local as Exported. Local is nil for
	// export * as Exported from Source.
	ExportSpecifier struct {
		Local    *Identifier `optional:"true"`
		Exported string
	}

	// ExportDefaultDeclaration holds either a function or class
	// declaration (whose name may be absent) or an expression.
	ExportDefaultDeclaration struct {
		Declaration *Statement  `optional:"true"`
		Expression  *Expression `optional:"true"`
	}
)

func (*Identifier) _bindingTarget()    {}
func (*ArrayPattern) _bindingTarget()  {}
func (*ObjectPattern) _bindingTarget() {}
