package ext

import (
	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/token"
)

// MayHaveSideEffectsStmt returns true if the statement may have side effects.
func MayHaveSideEffectsStmt(stmt ast.Statement) bool {
	switch s := stmt.Stmt.(type) {
	case *ast.BlockStatement:
		return mayHaveSideEffectsList(s.List)
	case *ast.EmptyStatement:
		return false
	case *ast.LabelledStatement:
		return MayHaveSideEffectsStmt(*s.Statement)
	case *ast.IfStatement:
		if MayHaveSideEffects(s.Test) || MayHaveSideEffectsStmt(*s.Consequent) {
			return true
		}
		return s.Alternate != nil && MayHaveSideEffectsStmt(*s.Alternate)
	case *ast.SwitchStatement:
		if MayHaveSideEffects(s.Discriminant) {
			return true
		}
		for _, c := range s.Body {
			if MayHaveSideEffects(c.Test) || mayHaveSideEffectsList(c.Consequent) {
				return true
			}
		}
		return false
	case *ast.TryStatement:
		if mayHaveSideEffectsList(s.Body.List) {
			return true
		}
		if s.Catch != nil && mayHaveSideEffectsList(s.Catch.Body.List) {
			return true
		}
		return s.Finally != nil && mayHaveSideEffectsList(s.Finally.List)
	case *ast.ClassDeclaration:
		return classHasSideEffect(s.Class)
	case *ast.FunctionDeclaration:
		return false
	case *ast.VariableDeclaration:
		if s.Token == token.Var {
			return true
		}
		for _, d := range s.List {
			if _, ok := d.Target.Target.(*ast.Identifier); !ok {
				return true
			}
			if MayHaveSideEffects(d.Initializer) {
				return true
			}
		}
		return false
	case *ast.ExpressionStatement:
		return MayHaveSideEffects(s.Expression)
	}
	return true
}

func mayHaveSideEffectsList(list ast.Statements) bool {
	for _, stmt := range list {
		if MayHaveSideEffectsStmt(stmt) {
			return true
		}
	}
	return false
}
